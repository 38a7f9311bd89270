package web

import (
	"net/http"
	"path"
	"strings"
)

var knownMethods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
}

// Router wraps http.ServeMux with an optional fallback handler that serves
// requests no registered pattern matches.
//
// Redirects the mux would issue for unclean paths or missing trailing
// slashes are issued by the Router instead, relative to its base path, so
// a router served beneath a stripped prefix never redirects outside it.
type Router struct {
	mux      *http.ServeMux
	fallback http.HandlerFunc
	basePath string
}

// NewRouter creates an empty Router.
func NewRouter() *Router {
	return &Router{mux: http.NewServeMux()}
}

// Handle registers the handler for the given ServeMux pattern.
func (r *Router) Handle(pattern string, handler http.Handler) {
	r.mux.Handle(pattern, handler)
}

// HandleFunc registers the handler function for the given ServeMux pattern.
func (r *Router) HandleFunc(pattern string, handler http.HandlerFunc) {
	r.mux.HandleFunc(pattern, handler)
}

// SetFallback sets the handler used when no pattern matches.
func (r *Router) SetFallback(handler http.HandlerFunc) {
	r.fallback = handler
}

// SetBasePath sets the prefix the router is mounted beneath. It is
// prepended to redirect targets.
func (r *Router) SetBasePath(basePath string) {
	r.basePath = strings.TrimSuffix(basePath, "/")
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodConnect {
		if target, ok := r.redirectTarget(req); ok {
			if req.URL.RawQuery != "" {
				target += "?" + req.URL.RawQuery
			}
			http.Redirect(w, req, r.basePath+target, http.StatusMovedPermanently)
			return
		}
	}

	if r.fallback != nil {
		if _, pattern := r.mux.Handler(req); pattern == "" && !r.matchesOtherMethod(req) {
			r.fallback(w, req)
			return
		}
	}
	r.mux.ServeHTTP(w, req)
}

// redirectTarget reports the router-relative path a request should be
// redirected to: the cleaned form of an unclean path, or the slash-suffixed
// form of a path whose subtree pattern is registered.
func (r *Router) redirectTarget(req *http.Request) (string, bool) {
	p := req.URL.Path
	cleaned := cleanPath(p)

	if cleaned != p {
		if r.matches(req, cleaned) {
			return cleaned, true
		}
		return "", false
	}

	if !strings.HasSuffix(p, "/") {
		// ServeMux reports its own trailing-slash redirect as the
		// slash-suffixed path in place of a registered pattern.
		if _, pattern := r.mux.Handler(req); pattern == p+"/" {
			return p + "/", true
		}
	}
	return "", false
}

func (r *Router) matches(req *http.Request, p string) bool {
	alt := req.Clone(req.Context())
	alt.URL.Path = p
	alt.URL.RawPath = ""
	_, pattern := r.mux.Handler(alt)
	return pattern != ""
}

// matchesOtherMethod reports whether the path is registered for a method
// other than the request's, in which case ServeMux answers 405.
func (r *Router) matchesOtherMethod(req *http.Request) bool {
	for _, m := range knownMethods {
		if m == req.Method {
			continue
		}
		alt := req.Clone(req.Context())
		alt.Method = m
		if _, pattern := r.mux.Handler(alt); pattern != "" {
			return true
		}
	}
	return false
}

func cleanPath(p string) string {
	if p == "" {
		return "/"
	}
	if p[0] != '/' {
		p = "/" + p
	}
	cleaned := path.Clean(p)
	if strings.HasSuffix(p, "/") && cleaned != "/" {
		cleaned += "/"
	}
	return cleaned
}
