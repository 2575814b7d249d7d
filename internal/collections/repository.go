package collections

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/JaimeStill/promptlab/pkg/memstore"
)

type repo struct {
	table    *memstore.Table[Collection]
	releaser Releaser
	logger   *slog.Logger
}

// New creates a collection repository implementing the System interface.
// releaser runs after every successful delete and may be nil.
func New(
	table *memstore.Table[Collection],
	releaser Releaser,
	logger *slog.Logger,
) System {
	return &repo{
		table:    table,
		releaser: releaser,
		logger:   logger.With("system", "collections"),
	}
}

// Key is the memstore key function for collections.
func Key(c Collection) string {
	return c.ID
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger)
}

func (r *repo) List(ctx context.Context) (*List, error) {
	all := r.table.All()
	return &List{Collections: all, Total: len(all)}, nil
}

func (r *repo) Find(ctx context.Context, id string) (*Collection, error) {
	c, ok := r.table.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &c, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Collection, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	c := r.table.Create(Collection{
		ID:          uuid.NewString(),
		Name:        cmd.Name,
		Description: cmd.Description,
		CreatedAt:   time.Now().UTC(),
	})

	r.logger.Info("collection created", "id", c.ID, "name", c.Name)
	return &c, nil
}

// Delete is not atomic with the release: readers between the two steps
// can observe prompts referencing a collection that no longer exists.
func (r *repo) Delete(ctx context.Context, id string) error {
	if !r.table.Delete(id) {
		return ErrNotFound
	}
	r.logger.Info("collection deleted", "id", id)

	if r.releaser == nil {
		return nil
	}

	released, err := r.releaser.Release(ctx, id)
	if err != nil {
		return fmt.Errorf("release prompts of collection %s: %w", id, err)
	}
	if released > 0 {
		r.logger.Info("prompts released", "collection_id", id, "count", released)
	}
	return nil
}
