package routes_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/promptlab/pkg/openapi"
	"github.com/JaimeStill/promptlab/pkg/routes"
)

func okHandler(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}
}

func TestRegister(t *testing.T) {
	mux := http.NewServeMux()
	routes.Register(mux, routes.Group{
		Prefix: "/items",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: okHandler("list")},
			{Method: "GET", Pattern: "/{id}", Handler: okHandler("find")},
		},
		Children: []routes.Group{
			{
				Prefix: "/{id}/parts",
				Routes: []routes.Route{
					{Method: "GET", Pattern: "", Handler: okHandler("parts")},
				},
			},
		},
	})

	tests := []struct {
		path string
		want string
	}{
		{"/items", "list"},
		{"/items/abc", "find"},
		{"/items/abc/parts", "parts"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest("GET", tt.path, nil))

			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", rec.Code)
			}
			if got := rec.Body.String(); got != tt.want {
				t.Errorf("body = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDocument(t *testing.T) {
	spec := openapi.NewSpec("Test", "1.0.0")

	routes.Document(spec, "/api", routes.Group{
		Prefix: "/items",
		Tags:   []string{"Items"},
		Schemas: map[string]*openapi.Schema{
			"Item": {Type: "object"},
		},
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: okHandler(""), OpenAPI: &openapi.Operation{Summary: "List"}},
			{Method: "PATCH", Pattern: "/{id}", Handler: okHandler(""), OpenAPI: &openapi.Operation{Summary: "Patch"}},
			{Method: "DELETE", Pattern: "/{id}", Handler: okHandler("")},
		},
	})

	list, ok := spec.Paths["/api/items"]
	if !ok || list.Get == nil {
		t.Fatalf("missing GET /api/items: %+v", spec.Paths)
	}
	if len(list.Get.Tags) != 1 || list.Get.Tags[0] != "Items" {
		t.Errorf("tags = %v, want [Items]", list.Get.Tags)
	}

	item := spec.Paths["/api/items/{id}"]
	if item == nil || item.Patch == nil {
		t.Fatal("missing PATCH /api/items/{id}")
	}
	if item.Delete != nil {
		t.Error("undocumented route should not appear")
	}

	if _, ok := spec.Components.Schemas["Item"]; !ok {
		t.Error("group schema not registered")
	}
}

func TestDocumentRootBasePath(t *testing.T) {
	spec := openapi.NewSpec("Test", "1.0.0")

	routes.Document(spec, "/", routes.Group{
		Prefix: "/items",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "", Handler: okHandler(""), OpenAPI: &openapi.Operation{Summary: "Create"}},
		},
	})

	if item := spec.Paths["/items"]; item == nil || item.Post == nil {
		t.Fatalf("missing POST /items: %+v", spec.Paths)
	}
}
