package web

import (
	"bytes"
	"io/fs"
	"net/http"
	"path"
	"time"
)

// Route is a method, pattern, and handler produced by the static helpers.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
}

// DistServer serves files from subdir of fsys under the URL prefix.
func DistServer(fsys fs.FS, subdir, prefix string) http.HandlerFunc {
	sub, err := fs.Sub(fsys, subdir)
	if err != nil {
		return http.NotFound
	}
	return http.StripPrefix(prefix, http.FileServer(http.FS(sub))).ServeHTTP
}

// PublicFile serves a single file from subdir of fsys.
func PublicFile(fsys fs.FS, subdir, name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := fs.ReadFile(fsys, path.Join(subdir, name))
		if err != nil {
			http.NotFound(w, r)
			return
		}
		http.ServeContent(w, r, name, time.Time{}, bytes.NewReader(data))
	}
}

// PublicFileRoutes returns a GET route at "/<name>" for each named file.
func PublicFileRoutes(fsys fs.FS, subdir string, names ...string) []Route {
	routes := make([]Route, 0, len(names))
	for _, name := range names {
		routes = append(routes, Route{
			Method:  "GET",
			Pattern: "/" + name,
			Handler: PublicFile(fsys, subdir, name),
		})
	}
	return routes
}
