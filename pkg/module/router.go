package module

import (
	"net/http"
	"strings"
)

// Router dispatches requests to mounted modules by prefix and falls back to
// natively registered handlers.
type Router struct {
	native  *http.ServeMux
	modules map[string]http.Handler
}

// NewRouter creates an empty Router.
func NewRouter() *Router {
	return &Router{
		native:  http.NewServeMux(),
		modules: make(map[string]http.Handler),
	}
}

// HandleNative registers a handler directly on the root mux.
func (r *Router) HandleNative(pattern string, handler http.HandlerFunc) {
	r.native.HandleFunc(pattern, handler)
}

// Mount registers m under its prefix. The module middleware chain is
// captured at mount time.
func (r *Router) Mount(m *Module) {
	r.modules[m.Prefix()] = m.Handler()
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if h, ok := r.modules[firstSegment(req.URL.Path)]; ok {
		h.ServeHTTP(w, req)
		return
	}
	r.native.ServeHTTP(w, req)
}

func firstSegment(path string) string {
	if !strings.HasPrefix(path, "/") {
		return ""
	}
	if i := strings.Index(path[1:], "/"); i >= 0 {
		return path[:i+1]
	}
	return path
}
