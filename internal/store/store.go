// Package store owns the process-local tables that back the prompt and
// collection domains. A Store is built once at startup, injected into the
// domain systems, and dropped at shutdown. Nothing is persisted.
package store

import (
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/JaimeStill/promptlab/internal/collections"
	"github.com/JaimeStill/promptlab/internal/prompts"
	"github.com/JaimeStill/promptlab/pkg/lifecycle"
	"github.com/JaimeStill/promptlab/pkg/memstore"
)

// Store holds one table per entity type. Each table carries its own lock.
type Store struct {
	Prompts     *memstore.Table[prompts.Prompt]
	Collections *memstore.Table[collections.Collection]

	logger *slog.Logger
	ready  atomic.Bool
}

// New creates an empty Store. Call Start to register it with the lifecycle.
func New(logger *slog.Logger) *Store {
	return &Store{
		Prompts:     memstore.NewTable(prompts.Key),
		Collections: memstore.NewTable(collections.Key),
		logger:      logger.With("system", "store"),
	}
}

// Start registers startup and shutdown hooks and a readiness check.
func (s *Store) Start(lc *lifecycle.Coordinator) error {
	s.logger.Info("starting store")
	lc.Check("store", s)

	lc.OnStartup(func() {
		s.ready.Store(true)
		s.logger.Info("store ready")
	})

	lc.OnShutdown(func() {
		<-lc.Context().Done()
		s.ready.Store(false)
		s.logger.Info(
			"store dropped",
			"prompts", s.Prompts.Len(),
			"collections", s.Collections.Len(),
		)
	})

	return nil
}

// Ready reports whether the store has started and not yet shut down.
func (s *Store) Ready() bool {
	return s.ready.Load()
}

// Clear empties every table.
func (s *Store) Clear() {
	s.Prompts.Clear()
	s.Collections.Clear()
}

// Register exposes table sizes as the promptlab_store_entities gauge.
func (s *Store) Register(reg prometheus.Registerer) error {
	gauges := map[string]func() int{
		"prompts":     s.Prompts.Len,
		"collections": s.Collections.Len,
	}

	for entity, size := range gauges {
		g := prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Namespace:   "promptlab",
				Subsystem:   "store",
				Name:        "entities",
				Help:        "Number of entities held in memory.",
				ConstLabels: prometheus.Labels{"entity": entity},
			},
			func() float64 { return float64(size()) },
		)
		if err := reg.Register(g); err != nil {
			return fmt.Errorf("register %s gauge: %w", entity, err)
		}
	}

	return nil
}
