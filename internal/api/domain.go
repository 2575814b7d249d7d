package api

import (
	"log/slog"

	"github.com/JaimeStill/promptlab/internal/collections"
	"github.com/JaimeStill/promptlab/internal/prompts"
	"github.com/JaimeStill/promptlab/internal/store"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Prompts     prompts.System
	Collections collections.System
}

// NewDomain creates all domain systems over the given store.
// Collection deletes release member prompts through the prompts system.
func NewDomain(s *store.Store, logger *slog.Logger) *Domain {
	promptsSystem := prompts.New(
		s.Prompts,
		s.Collections,
		logger,
	)

	collectionsSystem := collections.New(
		s.Collections,
		promptsSystem,
		logger,
	)

	return &Domain{
		Prompts:     promptsSystem,
		Collections: collectionsSystem,
	}
}
