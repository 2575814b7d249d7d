package collections_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/JaimeStill/promptlab/internal/collections"
	"github.com/JaimeStill/promptlab/pkg/validate"
)

type mockSystem struct {
	listFn   func(ctx context.Context) (*collections.List, error)
	findFn   func(ctx context.Context, id string) (*collections.Collection, error)
	createFn func(ctx context.Context, cmd collections.CreateCommand) (*collections.Collection, error)
	deleteFn func(ctx context.Context, id string) error
}

func (m *mockSystem) Handler() *collections.Handler {
	return collections.NewHandler(m, discard())
}

func (m *mockSystem) List(ctx context.Context) (*collections.List, error) {
	return m.listFn(ctx)
}

func (m *mockSystem) Find(ctx context.Context, id string) (*collections.Collection, error) {
	return m.findFn(ctx, id)
}

func (m *mockSystem) Create(ctx context.Context, cmd collections.CreateCommand) (*collections.Collection, error) {
	return m.createFn(ctx, cmd)
}

func (m *mockSystem) Delete(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}

func setupMux(h *collections.Handler) *http.ServeMux {
	mux := http.NewServeMux()
	group := h.Routes()
	for _, route := range group.Routes {
		pattern := route.Method + " " + group.Prefix + route.Pattern
		mux.HandleFunc(pattern, route.Handler)
	}
	return mux
}

func sampleCollection() collections.Collection {
	return collections.Collection{
		ID:        "c1",
		Name:      "Writing",
		CreatedAt: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestHandlerList(t *testing.T) {
	c := sampleCollection()
	sys := &mockSystem{
		listFn: func(context.Context) (*collections.List, error) {
			return &collections.List{Collections: []collections.Collection{c}, Total: 1}, nil
		},
	}

	rec := httptest.NewRecorder()
	setupMux(sys.Handler()).ServeHTTP(rec, httptest.NewRequest("GET", "/collections", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var result collections.List
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if result.Total != 1 || len(result.Collections) != 1 || result.Collections[0].ID != "c1" {
		t.Errorf("unexpected list: %+v", result)
	}
}

func TestHandlerFind(t *testing.T) {
	c := sampleCollection()
	sys := &mockSystem{
		findFn: func(_ context.Context, id string) (*collections.Collection, error) {
			if id == c.ID {
				return &c, nil
			}
			return nil, collections.ErrNotFound
		},
	}
	mux := setupMux(sys.Handler())

	t.Run("found", func(t *testing.T) {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest("GET", "/collections/c1", nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}

		var got map[string]any
		json.NewDecoder(rec.Body).Decode(&got)
		if got["name"] != "Writing" {
			t.Errorf("name = %v, want Writing", got["name"])
		}
		if v, ok := got["description"]; !ok || v != nil {
			t.Errorf("description should be present and null, got %v", v)
		}
	})

	t.Run("not found", func(t *testing.T) {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest("GET", "/collections/nope", nil))

		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", rec.Code)
		}

		var body map[string]string
		json.NewDecoder(rec.Body).Decode(&body)
		if body["error"] != collections.ErrNotFound.Error() {
			t.Errorf("error = %q", body["error"])
		}
	})
}

func TestHandlerCreate(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		createFn func(context.Context, collections.CreateCommand) (*collections.Collection, error)
		wantCode int
	}{
		{
			name: "created",
			body: `{"name":"Writing"}`,
			createFn: func(_ context.Context, cmd collections.CreateCommand) (*collections.Collection, error) {
				c := sampleCollection()
				c.Name = cmd.Name
				return &c, nil
			},
			wantCode: http.StatusCreated,
		},
		{
			name:     "malformed json",
			body:     `{"name":`,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "validation failure",
			body: `{"name":""}`,
			createFn: func(_ context.Context, cmd collections.CreateCommand) (*collections.Collection, error) {
				return nil, cmd.Validate()
			},
			wantCode: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sys := &mockSystem{createFn: tt.createFn}

			rec := httptest.NewRecorder()
			req := httptest.NewRequest("POST", "/collections", bytes.NewBufferString(tt.body))
			setupMux(sys.Handler()).ServeHTTP(rec, req)

			if rec.Code != tt.wantCode {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantCode)
			}
		})
	}
}

func TestHandlerDelete(t *testing.T) {
	sys := &mockSystem{
		deleteFn: func(_ context.Context, id string) error {
			if id == "c1" {
				return nil
			}
			return collections.ErrNotFound
		},
	}
	mux := setupMux(sys.Handler())

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("DELETE", "/collections/c1", nil))
	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("body should be empty, got %q", rec.Body.String())
	}

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("DELETE", "/collections/missing", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestMapHTTPStatus(t *testing.T) {
	if got := collections.MapHTTPStatus(validate.ErrInvalid); got != http.StatusUnprocessableEntity {
		t.Errorf("validation: got %d", got)
	}
	if got := collections.MapHTTPStatus(collections.ErrNotFound); got != http.StatusNotFound {
		t.Errorf("not found: got %d", got)
	}
}
