// Package web provides infrastructure for serving web pages with Go templates.
// It supports pre-parsed templates for zero per-request overhead and
// declarative component definitions for simplified route generation.
package web

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
)

// Component is a reference to a renderable page shell. The server renders the
// shell template; the named client bundle mounts the component in the browser.
type Component struct {
	Name     string
	Template string
	Title    string
	Bundle   string
}

// IsZero reports whether c carries no template to render.
func (c Component) IsZero() bool {
	return c.Template == ""
}

// ViewData contains the data passed to templates during rendering.
// BasePath enables portable URL generation in templates via {{ .BasePath }}.
type ViewData struct {
	Title     string
	Bundle    string
	Component string
	BasePath  string
	Data      any
}

// TemplateSet holds pre-parsed templates and a base path for URL generation.
// Templates are parsed once at startup, avoiding per-request overhead.
type TemplateSet struct {
	views    map[string]*template.Template
	basePath string
	data     any
}

// NewTemplateSet parses the layout templates and clones them for each
// component template. Parsing at startup surfaces missing or malformed
// templates before the server accepts requests.
func NewTemplateSet(layoutFS, viewFS fs.FS, layoutGlob, viewSubdir, basePath string, components []Component) (*TemplateSet, error) {
	layouts, err := template.ParseFS(layoutFS, layoutGlob)
	if err != nil {
		return nil, err
	}

	viewSub, err := fs.Sub(viewFS, viewSubdir)
	if err != nil {
		return nil, err
	}

	views := make(map[string]*template.Template, len(components))
	for _, c := range components {
		if _, ok := views[c.Template]; ok {
			continue
		}
		t, err := layouts.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layouts for %s: %w", c.Template, err)
		}
		if _, err := t.ParseFS(viewSub, c.Template); err != nil {
			return nil, fmt.Errorf("parse template: %s: %w", c.Template, err)
		}
		views[c.Template] = t
	}

	return &TemplateSet{
		views:    views,
		basePath: basePath,
	}, nil
}

// BasePath returns the base path included in all rendered ViewData.
func (ts *TemplateSet) BasePath() string {
	return ts.basePath
}

// SetData sets the value rendered as ViewData.Data by the page and error
// handlers. It must be called before the handlers serve requests.
func (ts *TemplateSet) SetData(data any) {
	ts.data = data
}

func (ts *TemplateSet) viewData(c Component) ViewData {
	return ViewData{
		Title:     c.Title,
		Bundle:    c.Bundle,
		Component: c.Name,
		BasePath:  ts.basePath,
		Data:      ts.data,
	}
}

// ErrorHandler returns an HTTP handler that renders an error component with
// the given status code. If the component cannot be rendered, a plain-text
// response with the same status is written instead.
func (ts *TemplateSet) ErrorHandler(layout string, c Component, status int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := ts.renderStatus(w, layout, c.Template, status, ts.viewData(c)); err != nil {
			http.Error(w, http.StatusText(status), status)
		}
	}
}

// PageHandler returns an HTTP handler that renders the given component.
func (ts *TemplateSet) PageHandler(layout string, c Component) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := ts.Render(w, layout, c.Template, ts.viewData(c)); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}
}

// Render executes the named layout template with the given view data.
// Output is buffered, so nothing is written to w when execution fails.
func (ts *TemplateSet) Render(w http.ResponseWriter, layoutName, viewPath string, data ViewData) error {
	return ts.renderStatus(w, layoutName, viewPath, http.StatusOK, data)
}

func (ts *TemplateSet) renderStatus(w http.ResponseWriter, layoutName, viewPath string, status int, data ViewData) error {
	t, ok := ts.views[viewPath]
	if !ok {
		return fmt.Errorf("template not found: %s", viewPath)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, layoutName, data); err != nil {
		return fmt.Errorf("execute template: %s: %w", viewPath, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
