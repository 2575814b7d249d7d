// Package api assembles the API module with all domain systems and route registration.
package api

import (
	"fmt"
	"net/http"

	"github.com/JaimeStill/promptlab/internal/config"
	"github.com/JaimeStill/promptlab/internal/infrastructure"
	"github.com/JaimeStill/promptlab/pkg/middleware"
	"github.com/JaimeStill/promptlab/pkg/module"
)

// NewModule creates the API module with all domain handlers and middleware.
func NewModule(cfg *config.Config, infra *infrastructure.Infrastructure) (*module.Module, error) {
	runtime := NewRuntime(cfg, infra)
	domain := NewDomain(runtime.Store, runtime.Logger)

	mux := http.NewServeMux()
	if err := registerRoutes(mux, domain, cfg); err != nil {
		return nil, err
	}

	metrics, err := middleware.NewHTTPMetrics("promptlab", runtime.Metrics)
	if err != nil {
		return nil, fmt.Errorf("http metrics: %w", err)
	}

	m := module.New(cfg.API.BasePath, mux)
	m.Use(middleware.Metrics(metrics))
	m.Use(middleware.Logger(runtime.Logger))
	m.Use(middleware.CORS(&cfg.API.CORS))
	m.Use(middleware.MaxBodySize(runtime.MaxBodySize))

	return m, nil
}
