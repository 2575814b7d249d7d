package middleware_test

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/JaimeStill/promptlab/pkg/middleware"
)

func ok(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestApplyOrder(t *testing.T) {
	var order []string
	mw := middleware.New()

	for _, name := range []string{"first", "second"} {
		mw.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		})
	}

	handler := mw.Apply(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))

	if len(order) != 3 || order[0] != "first" || order[1] != "second" || order[2] != "handler" {
		t.Errorf("order: got %v, want [first second handler]", order)
	}
}

func TestCORS(t *testing.T) {
	tests := []struct {
		name       string
		cfg        middleware.CORSConfig
		origin     string
		wantOrigin string
	}{
		{
			name:       "disabled",
			cfg:        middleware.CORSConfig{Enabled: false, Origins: []string{"*"}},
			origin:     "http://example.com",
			wantOrigin: "",
		},
		{
			name:       "listed origin",
			cfg:        middleware.CORSConfig{Enabled: true, Origins: []string{"http://example.com"}},
			origin:     "http://example.com",
			wantOrigin: "http://example.com",
		},
		{
			name:       "unlisted origin",
			cfg:        middleware.CORSConfig{Enabled: true, Origins: []string{"http://example.com"}},
			origin:     "http://evil.com",
			wantOrigin: "",
		},
		{
			name:       "wildcard echoes origin",
			cfg:        middleware.CORSConfig{Enabled: true, Origins: []string{"*"}},
			origin:     "http://anywhere.dev",
			wantOrigin: "http://anywhere.dev",
		},
		{
			name:       "wildcard without origin header",
			cfg:        middleware.CORSConfig{Enabled: true, Origins: []string{"*"}},
			origin:     "",
			wantOrigin: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := middleware.CORS(&tt.cfg)(http.HandlerFunc(ok))

			rec := httptest.NewRecorder()
			req := httptest.NewRequest("GET", "/", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			handler.ServeHTTP(rec, req)

			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tt.wantOrigin {
				t.Errorf("allow-origin: got %q, want %q", got, tt.wantOrigin)
			}
		})
	}
}

func TestCORSPreflight(t *testing.T) {
	cfg := &middleware.CORSConfig{
		Enabled:          true,
		Origins:          []string{"*"},
		AllowedMethods:   []string{"GET", "PATCH"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
		MaxAge:           600,
	}

	var reached bool
	handler := middleware.CORS(cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("OPTIONS", "/prompts", nil)
	req.Header.Set("Origin", "http://example.com")
	handler.ServeHTTP(rec, req)

	if reached {
		t.Error("preflight should not reach the handler")
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status: got %d, want 200", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Methods"); got != "GET, PATCH" {
		t.Errorf("methods: got %q", got)
	}
	if rec.Header().Get("Access-Control-Allow-Credentials") != "true" {
		t.Error("credentials header missing")
	}
	if rec.Header().Get("Access-Control-Max-Age") != "600" {
		t.Errorf("max-age: got %q", rec.Header().Get("Access-Control-Max-Age"))
	}
}

func TestCORSConfigFinalize(t *testing.T) {
	t.Setenv("TEST_CORS_ENABLED", "true")
	t.Setenv("TEST_CORS_ORIGINS", "http://a.dev, http://b.dev")

	cfg := middleware.CORSConfig{}
	err := cfg.Finalize(&middleware.CORSEnv{
		Enabled: "TEST_CORS_ENABLED",
		Origins: "TEST_CORS_ORIGINS",
	})
	if err != nil {
		t.Fatalf("finalize failed: %v", err)
	}

	if !cfg.Enabled {
		t.Error("enabled should be true from env")
	}
	if len(cfg.Origins) != 2 || cfg.Origins[1] != "http://b.dev" {
		t.Errorf("origins: got %v", cfg.Origins)
	}
	if !strings.Contains(strings.Join(cfg.AllowedMethods, ","), "PATCH") {
		t.Errorf("default methods should include PATCH: %v", cfg.AllowedMethods)
	}
	if cfg.MaxAge != 3600 {
		t.Errorf("max_age: got %d, want 3600", cfg.MaxAge)
	}
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	handler := middleware.Logger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/prompts/abc?x=1", nil))

	out := buf.String()
	for _, want := range []string{"method=GET", "uri=\"/prompts/abc?x=1\"", "status=404"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %s: %s", want, out)
		}
	}
}

func TestMaxBodySize(t *testing.T) {
	handler := middleware.MaxBodySize(8)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := io.ReadAll(r.Body); err != nil {
			w.WriteHeader(http.StatusRequestEntityTooLarge)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("POST", "/", strings.NewReader("small")))
	if rec.Code != http.StatusOK {
		t.Errorf("small body: got %d, want 200", rec.Code)
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("POST", "/", strings.NewReader("this body is too large")))
	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("large body: got %d, want 413", rec.Code)
	}
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := middleware.NewHTTPMetrics("test", reg)
	if err != nil {
		t.Fatalf("new metrics: %v", err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /prompts/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	handler := middleware.Metrics(m)(mux)

	for _, id := range []string{"a", "b"} {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/prompts/"+id, nil))
	}
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/nowhere", nil))

	expected := `
# HELP test_http_requests_total HTTP requests by method, route pattern, and status.
# TYPE test_http_requests_total counter
test_http_requests_total{method="GET",route="GET /prompts/{id}",status="404"} 2
test_http_requests_total{method="GET",route="unmatched",status="404"} 1
`
	if err := testutil.GatherAndCompare(reg, strings.NewReader(expected), "test_http_requests_total"); err != nil {
		t.Error(err)
	}

	if _, err := middleware.NewHTTPMetrics("test", reg); err == nil {
		t.Error("registering twice should fail")
	}
}

func TestCORSConfigMerge(t *testing.T) {
	base := middleware.CORSConfig{Enabled: true, Origins: []string{"*"}, MaxAge: 600}

	base.Merge(&middleware.CORSConfig{})
	if !base.Enabled || base.MaxAge != 600 {
		t.Errorf("empty overlay changed config: %+v", base)
	}

	base.Merge(&middleware.CORSConfig{Origins: []string{"http://example.com"}})
	if base.Enabled {
		t.Error("overlay with origins should apply enabled=false")
	}
	if base.Origins[0] != "http://example.com" {
		t.Errorf("origins: got %v", base.Origins)
	}
}
