// Package scalar serves the Scalar API reference UI for the OpenAPI document.
package scalar

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/JaimeStill/promptlab/pkg/module"
)

//go:embed index.html
var staticFS embed.FS

// Page holds the values rendered into the reference page.
type Page struct {
	Title   string
	SpecURL string
}

// NewModule creates a module that serves the reference UI at basePath,
// loading the document from page.SpecURL.
func NewModule(basePath string, page Page) *module.Module {
	return module.New(basePath, buildRouter(page))
}

func buildRouter(page Page) http.Handler {
	mux := http.NewServeMux()

	tmpl := template.Must(template.ParseFS(staticFS, "index.html"))
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		tmpl.Execute(w, page)
	})

	return mux
}
