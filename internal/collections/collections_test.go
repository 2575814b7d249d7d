package collections_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaimeStill/promptlab/internal/collections"
	"github.com/JaimeStill/promptlab/pkg/memstore"
	"github.com/JaimeStill/promptlab/pkg/validate"
)

type releaseFunc func(ctx context.Context, id string) (int, error)

func (f releaseFunc) Release(ctx context.Context, id string) (int, error) {
	return f(ctx, id)
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newSystem(r collections.Releaser) (collections.System, *memstore.Table[collections.Collection]) {
	table := memstore.NewTable(collections.Key)
	return collections.New(table, r, discard()), table
}

func ptr[T any](v T) *T { return &v }

func TestCreateThenFind(t *testing.T) {
	sys, _ := newSystem(nil)
	ctx := context.Background()

	created, err := sys.Create(ctx, collections.CreateCommand{Name: "C1", Description: ptr("first")})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	found, err := sys.Find(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, found)
}

func TestCreateValidation(t *testing.T) {
	sys, table := newSystem(nil)

	tests := []struct {
		name string
		cmd  collections.CreateCommand
	}{
		{"empty name", collections.CreateCommand{Name: ""}},
		{"name too long", collections.CreateCommand{Name: strings.Repeat("n", collections.NameMaxLength+1)}},
		{"description too long", collections.CreateCommand{Name: "ok", Description: ptr(strings.Repeat("d", collections.DescriptionMaxLength+1))}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := sys.Create(context.Background(), tt.cmd)
			require.ErrorIs(t, err, validate.ErrInvalid)
			assert.Equal(t, 422, collections.MapHTTPStatus(err))
		})
	}

	assert.Zero(t, table.Len())
}

func TestNameLengthCountsCharacters(t *testing.T) {
	sys, _ := newSystem(nil)

	_, err := sys.Create(context.Background(), collections.CreateCommand{Name: strings.Repeat("é", collections.NameMaxLength)})
	assert.NoError(t, err)
}

func TestListPreservesCreationOrder(t *testing.T) {
	sys, _ := newSystem(nil)
	ctx := context.Background()

	empty, err := sys.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empty.Collections)
	assert.Zero(t, empty.Total)

	var ids []string
	for _, name := range []string{"a", "b", "c"} {
		c, err := sys.Create(ctx, collections.CreateCommand{Name: name})
		require.NoError(t, err)
		ids = append(ids, c.ID)
	}

	list, err := sys.List(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, list.Total)
	for i, c := range list.Collections {
		assert.Equal(t, ids[i], c.ID)
	}
}

func TestDeleteReleasesPrompts(t *testing.T) {
	var released []string
	sys, _ := newSystem(releaseFunc(func(_ context.Context, id string) (int, error) {
		released = append(released, id)
		return 2, nil
	}))
	ctx := context.Background()

	c, err := sys.Create(ctx, collections.CreateCommand{Name: "C1"})
	require.NoError(t, err)

	require.NoError(t, sys.Delete(ctx, c.ID))
	assert.Equal(t, []string{c.ID}, released)

	_, err = sys.Find(ctx, c.ID)
	assert.ErrorIs(t, err, collections.ErrNotFound)
}

func TestDeleteMissingSkipsRelease(t *testing.T) {
	var called bool
	sys, _ := newSystem(releaseFunc(func(context.Context, string) (int, error) {
		called = true
		return 0, nil
	}))

	err := sys.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, collections.ErrNotFound)
	assert.False(t, called)
}

func TestDeleteReleaseFailure(t *testing.T) {
	boom := errors.New("boom")
	sys, table := newSystem(releaseFunc(func(context.Context, string) (int, error) {
		return 0, boom
	}))
	ctx := context.Background()

	c, err := sys.Create(ctx, collections.CreateCommand{Name: "C1"})
	require.NoError(t, err)

	err = sys.Delete(ctx, c.ID)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 500, collections.MapHTTPStatus(err))
	assert.Zero(t, table.Len(), "collection delete is not rolled back")
}
