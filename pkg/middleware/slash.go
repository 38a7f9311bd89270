// Package middleware provides reusable net/http middleware.
package middleware

import (
	"net/http"
	"strings"
)

// Canonical returns middleware for route sets that mix slash conventions.
// When canonical reports a registered form of the request path, the request
// is redirected there; otherwise it passes through unchanged.
//
// The redirect target is resolved against the module base, so basePath is
// prepended to the canonical path.
func Canonical(basePath string, canonical func(path string) (string, bool)) func(http.Handler) http.Handler {
	base := strings.TrimSuffix(basePath, "/")
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodGet || r.Method == http.MethodHead {
				if target, ok := canonical(r.URL.Path); ok {
					redirect(w, r, base+target)
					return
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

func redirect(w http.ResponseWriter, r *http.Request, target string) {
	if r.URL.RawQuery != "" {
		target += "?" + r.URL.RawQuery
	}
	http.Redirect(w, r, target, http.StatusMovedPermanently)
}
