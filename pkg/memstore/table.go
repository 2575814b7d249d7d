// Package memstore provides process-local keyed containers that preserve insertion order.
package memstore

import (
	"slices"
	"sync"
)

// KeyFunc extracts the storage key from a value.
type KeyFunc[T any] func(T) string

// Table is an ordered, concurrency-safe keyed container.
// Values are returned in insertion order. Replacing a value keeps its position.
type Table[T any] struct {
	mu     sync.RWMutex
	key    KeyFunc[T]
	order  []string
	values map[string]T
}

// NewTable creates an empty Table that keys values with key.
func NewTable[T any](key KeyFunc[T]) *Table[T] {
	return &Table[T]{
		key:    key,
		order:  []string{},
		values: make(map[string]T),
	}
}

// Create stores v under its own key. An existing value with the same key
// is overwritten in place.
func (t *Table[T]) Create(v T) T {
	t.mu.Lock()
	defer t.mu.Unlock()

	k := t.key(v)
	if _, ok := t.values[k]; !ok {
		t.order = append(t.order, k)
	}
	t.values[k] = v
	return v
}

// Get returns the value stored at id and whether it was found.
func (t *Table[T]) Get(id string) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	v, ok := t.values[id]
	return v, ok
}

// All returns every stored value in insertion order.
func (t *Table[T]) All() []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	result := make([]T, 0, len(t.order))
	for _, k := range t.order {
		result = append(result, t.values[k])
	}
	return result
}

// Update replaces the value at id only if id is already present.
// Returns false and performs no write when id is absent.
func (t *Table[T]) Update(id string, v T) (T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.values[id]; !ok {
		var zero T
		return zero, false
	}
	t.values[id] = v
	return v, true
}

// UpdateFunc replaces the value at id with fn applied to the current value,
// holding the write lock across the read and the write. Returns false and
// does not call fn when id is absent.
func (t *Table[T]) UpdateFunc(id string, fn func(T) T) (T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	current, ok := t.values[id]
	if !ok {
		var zero T
		return zero, false
	}
	v := fn(current)
	t.values[id] = v
	return v, true
}

// Delete removes the value at id, reporting whether anything was removed.
func (t *Table[T]) Delete(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.values[id]; !ok {
		return false
	}
	delete(t.values, id)
	if i := slices.Index(t.order, id); i >= 0 {
		t.order = slices.Delete(t.order, i, i+1)
	}
	return true
}

// Select returns, in insertion order, every value for which match returns true.
func (t *Table[T]) Select(match func(T) bool) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	result := make([]T, 0)
	for _, k := range t.order {
		if v := t.values[k]; match(v) {
			result = append(result, v)
		}
	}
	return result
}

// Len returns the number of stored values.
func (t *Table[T]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.order)
}

// Clear removes every stored value.
func (t *Table[T]) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.order = []string{}
	t.values = make(map[string]T)
}
