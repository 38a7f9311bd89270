// Package module provides mountable HTTP sub-applications. A Module owns a
// single-level URL prefix, a handler, and the middleware applied to it.
package module

import (
	"fmt"
	"net/http"
	"strings"
)

// Module is an http.Handler mounted beneath a prefix.
type Module struct {
	prefix     string
	router     http.Handler
	middleware []func(http.Handler) http.Handler
}

// New creates a module serving router beneath prefix.
// It panics if prefix is empty, lacks a leading slash, or spans more than
// one path segment.
func New(prefix string, router http.Handler) *Module {
	if err := validatePrefix(prefix); err != nil {
		panic(err)
	}
	return &Module{
		prefix: prefix,
		router: router,
	}
}

// Prefix returns the URL prefix the module is mounted at.
func (m *Module) Prefix() string {
	return m.prefix
}

// Use appends middleware. Middleware registered first runs outermost.
func (m *Module) Use(mw func(http.Handler) http.Handler) {
	m.middleware = append(m.middleware, mw)
}

// Handler returns the router wrapped in the module middleware and prefix
// stripping. Middleware added after Handler is called is not applied to the
// returned handler.
func (m *Module) Handler() http.Handler {
	h := m.router
	for i := len(m.middleware) - 1; i >= 0; i-- {
		h = m.middleware[i](h)
	}
	return stripPrefix(m.prefix, h)
}

// stripPrefix removes prefix from the request path. A request for the bare
// prefix is served as the module root "/".
func stripPrefix(prefix string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := strings.TrimPrefix(r.URL.Path, prefix)
		if path == "" {
			path = "/"
		}

		r2 := r.Clone(r.Context())
		r2.URL.Path = path
		r2.URL.RawPath = ""

		next.ServeHTTP(w, r2)
	})
}

func validatePrefix(prefix string) error {
	if prefix == "" {
		return fmt.Errorf("module prefix must not be empty")
	}
	if !strings.HasPrefix(prefix, "/") {
		return fmt.Errorf("module prefix must begin with /: %s", prefix)
	}
	if strings.Contains(prefix[1:], "/") {
		return fmt.Errorf("module prefix must be a single path segment: %s", prefix)
	}
	if len(prefix) == 1 {
		return fmt.Errorf("module prefix must name a segment: %s", prefix)
	}
	return nil
}
