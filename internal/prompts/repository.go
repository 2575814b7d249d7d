package prompts

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/JaimeStill/promptlab/internal/collections"
	"github.com/JaimeStill/promptlab/pkg/memstore"
)

type repo struct {
	prompts     *memstore.Table[Prompt]
	collections *memstore.Table[collections.Collection]
	logger      *slog.Logger
}

// New creates a prompt repository implementing the System interface.
// The collections table is read to resolve collection references.
func New(
	prompts *memstore.Table[Prompt],
	refs *memstore.Table[collections.Collection],
	logger *slog.Logger,
) System {
	return &repo{
		prompts:     prompts,
		collections: refs,
		logger:      logger.With("system", "prompts"),
	}
}

// Key is the memstore key function for prompts.
func Key(p Prompt) string {
	return p.ID
}

func now() time.Time {
	return time.Now().UTC()
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger)
}

func (r *repo) List(ctx context.Context, filters Filters) (*List, error) {
	prompts := filters.Apply(r.prompts.All())
	return &List{Prompts: prompts, Total: len(prompts)}, nil
}

func (r *repo) Find(ctx context.Context, id string) (*Prompt, error) {
	p, ok := r.prompts.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (r *repo) Variables(ctx context.Context, id string) (*Variables, error) {
	p, err := r.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	return &Variables{
		ID:        p.ID,
		Variables: ExtractVariables(p.Content),
		Valid:     ValidContent(p.Content),
	}, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Prompt, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	ref := normalizeRef(cmd.CollectionID)
	if ref != nil && !r.collectionExists(*ref) {
		return nil, ErrInvalidReference
	}

	ts := now()
	p := r.prompts.Create(Prompt{
		ID:           uuid.NewString(),
		Title:        cmd.Title,
		Content:      cmd.Content,
		Description:  cmd.Description,
		CollectionID: ref,
		CreatedAt:    ts,
		UpdatedAt:    ts,
	})

	r.logger.Info("prompt created", "id", p.ID, "title", p.Title)
	return &p, nil
}

func (r *repo) Update(ctx context.Context, id string, cmd UpdateCommand) (*Prompt, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	existing, ok := r.prompts.Get(id)
	if !ok {
		return nil, ErrNotFound
	}

	ref := normalizeRef(cmd.CollectionID)
	if ref != nil && !r.collectionExists(*ref) {
		return nil, ErrCollectionNotFound
	}

	p, ok := r.prompts.Update(id, Prompt{
		ID:           existing.ID,
		Title:        cmd.Title,
		Content:      cmd.Content,
		Description:  cmd.Description,
		CollectionID: ref,
		CreatedAt:    existing.CreatedAt,
		UpdatedAt:    now(),
	})
	if !ok {
		return nil, ErrNotFound
	}

	r.logger.Info("prompt updated", "id", p.ID, "title", p.Title)
	return &p, nil
}

func (r *repo) Patch(ctx context.Context, id string, cmd PatchCommand) (*Prompt, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	p, ok := r.prompts.UpdateFunc(id, func(existing Prompt) Prompt {
		merged := cmd.Apply(existing)
		merged.UpdatedAt = now()
		return merged
	})
	if !ok {
		return nil, ErrNotFound
	}

	r.logger.Info("prompt patched", "id", p.ID)
	return &p, nil
}

func (r *repo) Delete(ctx context.Context, id string) error {
	if !r.prompts.Delete(id) {
		return ErrNotFound
	}

	r.logger.Info("prompt deleted", "id", id)
	return nil
}

func (r *repo) ByCollection(ctx context.Context, collectionID string) ([]Prompt, error) {
	return r.prompts.Select(func(p Prompt) bool {
		return p.CollectionID != nil && *p.CollectionID == collectionID
	}), nil
}

func (r *repo) Release(ctx context.Context, collectionID string) (int, error) {
	members, err := r.ByCollection(ctx, collectionID)
	if err != nil {
		return 0, err
	}

	released := 0
	for _, m := range members {
		r.prompts.UpdateFunc(m.ID, func(p Prompt) Prompt {
			if p.CollectionID == nil || *p.CollectionID != collectionID {
				return p
			}
			p.CollectionID = nil
			p.UpdatedAt = now()
			released++
			return p
		})
	}
	return released, nil
}

func (r *repo) collectionExists(id string) bool {
	_, ok := r.collections.Get(id)
	return ok
}
