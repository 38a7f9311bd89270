// Package routes binds static URL paths to web components and aggregates the
// bindings into a table that can be resolved and mounted on a router.
package routes

import (
	"fmt"
	"strings"

	"github.com/JaimeStill/ops-console/pkg/web"
)

// Entry is an immutable association between a static path and a component.
type Entry struct {
	Path      string
	Component web.Component
}

// NewEntry validates path and returns the entry binding it to c.
// It has no side effects; entries take effect once aggregated by NewTable.
func NewEntry(path string, c web.Component) (Entry, error) {
	if err := validatePath(path); err != nil {
		return Entry{}, err
	}
	if c.IsZero() {
		return Entry{}, fmt.Errorf("%w: %s", ErrEmptyComponent, path)
	}
	return Entry{Path: path, Component: c}, nil
}

// MustEntry is like NewEntry but panics if the entry is invalid.
// It simplifies package-level route declarations.
func MustEntry(path string, c web.Component) Entry {
	e, err := NewEntry(path, c)
	if err != nil {
		panic(err)
	}
	return e
}

// Pattern returns the http.ServeMux pattern that matches the entry path
// exactly. Paths ending in a slash are anchored with {$} so they do not
// match the subtree below them.
func (e Entry) Pattern(method string) string {
	p := e.Path
	if strings.HasSuffix(p, "/") {
		p += "{$}"
	}
	if method == "" {
		return p
	}
	return method + " " + p
}

func validatePath(path string) error {
	if path == "" {
		return fmt.Errorf("%w: empty", ErrInvalidPath)
	}
	if path[0] != '/' {
		return fmt.Errorf("%w: %q must begin with /", ErrInvalidPath, path)
	}
	if strings.ContainsAny(path, " \t\r\n?#{}") {
		return fmt.Errorf("%w: %q contains reserved characters", ErrInvalidPath, path)
	}
	if path == "/" {
		return nil
	}

	segments := strings.Split(strings.TrimSuffix(path[1:], "/"), "/")
	for _, seg := range segments {
		switch seg {
		case "":
			return fmt.Errorf("%w: %q contains an empty segment", ErrInvalidPath, path)
		case ".", "..":
			return fmt.Errorf("%w: %q contains a relative segment", ErrInvalidPath, path)
		}
	}
	return nil
}
