// Package app provides the console web module with embedded templates and assets.
package app

import (
	"embed"
	"net/http"

	"github.com/JaimeStill/ops-console/pkg/handlers"
	"github.com/JaimeStill/ops-console/pkg/middleware"
	"github.com/JaimeStill/ops-console/pkg/module"
	"github.com/JaimeStill/ops-console/pkg/routes"
	"github.com/JaimeStill/ops-console/pkg/web"
	"github.com/JaimeStill/ops-console/web/app/components"
	"github.com/JaimeStill/ops-console/web/app/pages"
)

//go:embed dist/*
var distFS embed.FS

//go:embed public/*
var publicFS embed.FS

//go:embed server/layouts/*
var layoutFS embed.FS

//go:embed server/views/*
var viewFS embed.FS

const layout = "app.html"

var publicFiles = []string{
	"favicon.svg",
	"site.webmanifest",
}

// ManifestEntry describes one route for navigation. The layout renders the
// manifest as the console nav and serves it as JSON for the client bundle.
type ManifestEntry struct {
	Path      string `json:"path"`
	Component string `json:"component"`
	Title     string `json:"title"`
	Bundle    string `json:"bundle"`
}

// NewModule creates the app module configured for the given base path.
func NewModule(basePath string) (*module.Module, error) {
	table, err := pages.Table()
	if err != nil {
		return nil, err
	}

	views := append(table.Components(), components.NotFound)
	ts, err := web.NewTemplateSet(
		layoutFS,
		viewFS,
		"server/layouts/*.html",
		"server/views",
		basePath,
		views,
	)
	if err != nil {
		return nil, err
	}

	ts.SetData(Manifest(table))

	m := module.New(basePath, buildRouter(ts, table))
	m.Use(middleware.Canonical(basePath, table.Canonical))
	return m, nil
}

// Manifest lists the table's routes in path order.
func Manifest(table *routes.Table) []ManifestEntry {
	entries := table.Entries()
	result := make([]ManifestEntry, 0, len(entries))
	for _, e := range entries {
		result = append(result, ManifestEntry{
			Path:      e.Path,
			Component: e.Component.Name,
			Title:     e.Component.Title,
			Bundle:    e.Component.Bundle,
		})
	}
	return result
}

func buildRouter(ts *web.TemplateSet, table *routes.Table) http.Handler {
	r := web.NewRouter()
	r.SetBasePath(ts.BasePath())
	r.SetFallback(ts.ErrorHandler(layout, components.NotFound, http.StatusNotFound))

	for _, e := range table.Entries() {
		r.HandleFunc(e.Pattern("GET"), ts.PageHandler(layout, e.Component))
	}

	manifest := Manifest(table)
	r.HandleFunc("GET /routes.json", func(w http.ResponseWriter, req *http.Request) {
		handlers.RespondJSON(w, http.StatusOK, manifest)
	})

	r.HandleFunc("GET /dist/", web.DistServer(distFS, "dist", "/dist/"))

	for _, route := range web.PublicFileRoutes(publicFS, "public", publicFiles...) {
		r.HandleFunc(route.Method+" "+route.Pattern, route.Handler)
	}

	return r
}
