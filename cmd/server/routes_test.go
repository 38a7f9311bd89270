package main

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/JaimeStill/ops-console/internal/config"
	"github.com/JaimeStill/ops-console/pkg/middleware"
	"github.com/JaimeStill/ops-console/pkg/module"
)

type fakeReadiness bool

func (f fakeReadiness) Ready() bool { return bool(f) }

func TestHealthz(t *testing.T) {
	router := module.NewRouter()
	registerRoutes(router, fakeReadiness(false))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if w.Body.String() != "OK" {
		t.Errorf("body = %q, want %q", w.Body.String(), "OK")
	}
}

func TestReadyz(t *testing.T) {
	tests := []struct {
		name       string
		ready      bool
		wantStatus int
		wantBody   string
	}{
		{"ready", true, http.StatusOK, "READY"},
		{"not ready", false, http.StatusServiceUnavailable, "NOT READY"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := module.NewRouter()
			registerRoutes(router, fakeReadiness(tt.ready))

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if w.Body.String() != tt.wantBody {
				t.Errorf("body = %q, want %q", w.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestBuildHandlerLogsEveryResponse(t *testing.T) {
	modules, err := NewModules(&config.Config{App: config.AppConfig{BasePath: "/app"}})
	if err != nil {
		t.Fatalf("NewModules() error = %v", err)
	}

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{"canonical redirect", http.MethodGet, "/app/maintenance", http.StatusMovedPermanently},
		{"page", http.MethodGet, "/app/signals/viewer", http.StatusOK},
		{"method not allowed", http.MethodPost, "/app/signals/viewer", http.StatusMethodNotAllowed},
		{"not found", http.MethodGet, "/app/unknown", http.StatusNotFound},
		{"native route", http.MethodGet, "/healthz", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, nil))
			h := buildHandler(modules, fakeReadiness(true), logger)

			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if w.Header().Get(middleware.HeaderRequestID) == "" {
				t.Error("missing request ID header")
			}

			out := buf.String()
			if n := strings.Count(out, "msg=request"); n != 1 {
				t.Errorf("logged %d request lines, want 1: %s", n, out)
			}
			if !strings.Contains(out, "uri="+tt.path) {
				t.Errorf("log missing uri=%s: %s", tt.path, out)
			}
			if want := "status=" + strconv.Itoa(tt.wantStatus); !strings.Contains(out, want) {
				t.Errorf("log missing %s: %s", want, out)
			}
		})
	}
}
