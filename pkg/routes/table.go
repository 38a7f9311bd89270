package routes

import (
	"fmt"
	"slices"
	"strings"

	"github.com/JaimeStill/ops-console/pkg/web"
)

// Table is the aggregated, read-only set of route entries.
type Table struct {
	entries map[string]Entry
}

// NewTable aggregates entries into a table. Declaring the same entry more
// than once is collapsed into a single registration; binding one path to
// two different components is an error.
func NewTable(entries ...Entry) (*Table, error) {
	t := &Table{entries: make(map[string]Entry, len(entries))}

	for _, e := range entries {
		if err := validatePath(e.Path); err != nil {
			return nil, err
		}
		if e.Component.IsZero() {
			return nil, fmt.Errorf("%w: %s", ErrEmptyComponent, e.Path)
		}
		if existing, ok := t.entries[e.Path]; ok {
			if existing == e {
				continue
			}
			return nil, fmt.Errorf(
				"%w: %s bound to %s and %s",
				ErrDuplicatePath, e.Path, existing.Component.Name, e.Component.Name,
			)
		}
		t.entries[e.Path] = e
	}

	return t, nil
}

// Len returns the number of registered paths.
func (t *Table) Len() int {
	return len(t.entries)
}

// Resolve returns the component registered at exactly path.
func (t *Table) Resolve(path string) (web.Component, bool) {
	e, ok := t.entries[path]
	return e.Component, ok
}

// Canonical returns the registered path that differs from path only by a
// trailing slash. It reports false when path is itself registered or when
// no such sibling exists.
func (t *Table) Canonical(path string) (string, bool) {
	if _, ok := t.entries[path]; ok {
		return "", false
	}

	var alt string
	if strings.HasSuffix(path, "/") {
		alt = strings.TrimSuffix(path, "/")
	} else {
		alt = path + "/"
	}

	if _, ok := t.entries[alt]; ok {
		return alt, true
	}
	return "", false
}

// Entries returns all entries sorted by path.
func (t *Table) Entries() []Entry {
	result := make([]Entry, 0, len(t.entries))
	for _, e := range t.entries {
		result = append(result, e)
	}
	slices.SortFunc(result, func(a, b Entry) int {
		return strings.Compare(a.Path, b.Path)
	})
	return result
}

// Components returns the distinct components referenced by the table,
// ordered by the path of their first entry.
func (t *Table) Components() []web.Component {
	seen := make(map[web.Component]bool, len(t.entries))
	result := make([]web.Component, 0, len(t.entries))
	for _, e := range t.Entries() {
		if seen[e.Component] {
			continue
		}
		seen[e.Component] = true
		result = append(result, e.Component)
	}
	return result
}
