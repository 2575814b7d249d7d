package scalar_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JaimeStill/promptlab/web/scalar"
)

func TestReferencePage(t *testing.T) {
	m := scalar.NewModule("/docs", scalar.Page{Title: "PromptLab API", SpecURL: "/api/openapi.json"})

	rec := httptest.NewRecorder()
	m.Serve(rec, httptest.NewRequest("GET", "/docs", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `data-url="/api/openapi.json"`) {
		t.Errorf("spec url missing from page: %s", body)
	}
	if !strings.Contains(body, "<title>PromptLab API</title>") {
		t.Errorf("title missing from page")
	}
}

func TestReferencePageUnknownPath(t *testing.T) {
	m := scalar.NewModule("/docs", scalar.Page{})

	rec := httptest.NewRecorder()
	m.Serve(rec, httptest.NewRequest("GET", "/docs/missing", nil))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want 404", rec.Code)
	}
}
