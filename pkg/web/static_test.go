package web_test

import (
	"embed"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JaimeStill/ops-console/pkg/web"
)

//go:embed testdata/static/*
var staticFS embed.FS

func TestDistServer(t *testing.T) {
	handler := web.DistServer(staticFS, "testdata/static", "/dist/")

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantBody   string
	}{
		{"serves file", "/dist/app.js", http.StatusOK, "console.log"},
		{"missing file", "/dist/nonexistent.js", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			handler(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			resp := w.Result()
			defer resp.Body.Close()

			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
			body, _ := io.ReadAll(resp.Body)
			if !strings.Contains(string(body), tt.wantBody) {
				t.Errorf("body does not contain %q", tt.wantBody)
			}
		})
	}
}

func TestPublicFile(t *testing.T) {
	handler := web.PublicFile(staticFS, "testdata/static", "test.txt")

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest(http.MethodGet, "/test.txt", nil))

	resp := w.Result()
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}

	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "test content") {
		t.Error("response body does not contain expected content")
	}
}

func TestPublicFileNotFound(t *testing.T) {
	handler := web.PublicFile(staticFS, "testdata/static", "nonexistent.txt")

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest(http.MethodGet, "/nonexistent.txt", nil))

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestPublicFileRoutes(t *testing.T) {
	routes := web.PublicFileRoutes(staticFS, "testdata/static", "test.txt", "app.js")

	if len(routes) != 2 {
		t.Fatalf("PublicFileRoutes() returned %d routes, want 2", len(routes))
	}

	expectedPatterns := []string{"/test.txt", "/app.js"}
	for i, route := range routes {
		if route.Method != "GET" {
			t.Errorf("route %d: Method = %q, want GET", i, route.Method)
		}
		if route.Pattern != expectedPatterns[i] {
			t.Errorf("route %d: Pattern = %q, want %q", i, route.Pattern, expectedPatterns[i])
		}
		if route.Handler == nil {
			t.Errorf("route %d: Handler is nil", i)
		}
	}
}
