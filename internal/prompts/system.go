package prompts

import "context"

// System defines the public contract for prompt domain operations.
type System interface {
	Handler() *Handler

	List(ctx context.Context, filters Filters) (*List, error)
	Find(ctx context.Context, id string) (*Prompt, error)
	Variables(ctx context.Context, id string) (*Variables, error)
	Create(ctx context.Context, cmd CreateCommand) (*Prompt, error)
	Update(ctx context.Context, id string, cmd UpdateCommand) (*Prompt, error)
	Patch(ctx context.Context, id string, cmd PatchCommand) (*Prompt, error)
	Delete(ctx context.Context, id string) error

	// ByCollection returns the prompts assigned to a collection in creation order.
	ByCollection(ctx context.Context, collectionID string) ([]Prompt, error)

	// Release clears the collection reference of every prompt assigned to
	// collectionID and returns how many prompts were changed.
	Release(ctx context.Context, collectionID string) (int, error)
}
