package collections

import "context"

// System defines the public contract for collection domain operations.
type System interface {
	Handler() *Handler

	List(ctx context.Context) (*List, error)
	Find(ctx context.Context, id string) (*Collection, error)
	Create(ctx context.Context, cmd CreateCommand) (*Collection, error)
	Delete(ctx context.Context, id string) error
}

// Releaser detaches every prompt that references a deleted collection
// and reports how many were released.
type Releaser interface {
	Release(ctx context.Context, collectionID string) (int, error)
}
