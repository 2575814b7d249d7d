package api

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/promptlab/internal/config"
	"github.com/JaimeStill/promptlab/internal/store"
	"github.com/JaimeStill/promptlab/pkg/openapi"
	"github.com/JaimeStill/promptlab/pkg/routes"
)

func (d *Domain) groups() []routes.Group {
	return []routes.Group{
		d.Prompts.Handler().Routes(),
		d.Collections.Handler().Routes(),
	}
}

func registerRoutes(mux *http.ServeMux, domain *Domain, cfg *config.Config) error {
	groups := domain.groups()
	routes.Register(mux, groups...)

	data, err := openapi.MarshalJSON(buildSpec(cfg, groups))
	if err != nil {
		return fmt.Errorf("marshal openapi: %w", err)
	}
	mux.HandleFunc("GET /openapi.json", openapi.ServeSpec(data))

	return nil
}

func buildSpec(cfg *config.Config, groups []routes.Group) *openapi.Spec {
	spec := openapi.NewSpec(cfg.API.OpenAPI.Title, cfg.Version)
	spec.SetDescription(cfg.API.OpenAPI.Description)
	spec.AddServer(cfg.API.BasePath)
	routes.Document(spec, cfg.API.BasePath, groups...)
	return spec
}

// Document builds the OpenAPI document for the API without starting any
// infrastructure.
func Document(cfg *config.Config) *openapi.Spec {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	domain := NewDomain(store.New(logger), logger)
	return buildSpec(cfg, domain.groups())
}
