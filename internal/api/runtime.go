package api

import (
	"github.com/JaimeStill/promptlab/internal/config"
	"github.com/JaimeStill/promptlab/internal/infrastructure"
)

// Runtime extends Infrastructure with API-specific configuration.
type Runtime struct {
	*infrastructure.Infrastructure
	MaxBodySize int64
}

// NewRuntime creates an API runtime with a module-scoped logger.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) *Runtime {
	return &Runtime{
		Infrastructure: &infrastructure.Infrastructure{
			Lifecycle: infra.Lifecycle,
			Logger:    infra.Logger.With("module", "api"),
			Store:     infra.Store,
			Metrics:   infra.Metrics,
		},
		MaxBodySize: cfg.API.MaxBodySizeBytes(),
	}
}
