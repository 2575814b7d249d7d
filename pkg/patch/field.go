// Package patch provides a field wrapper for partial-update request bodies
// that distinguishes an omitted field from an explicit JSON null.
package patch

import (
	"bytes"
	"encoding/json"
)

var jsonNull = []byte("null")

// Field records whether a JSON key was present and whether it was null.
// The zero value represents an omitted key.
type Field[T any] struct {
	Value T
	Set   bool
	Null  bool
}

// Some returns a Field set to v.
func Some[T any](v T) Field[T] {
	return Field[T]{Value: v, Set: true}
}

// Null returns a Field explicitly set to null.
func Null[T any]() Field[T] {
	return Field[T]{Set: true, Null: true}
}

// UnmarshalJSON marks the field present and decodes the value unless it is null.
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.Set = true
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		f.Null = true
		var zero T
		f.Value = zero
		return nil
	}
	f.Null = false
	return json.Unmarshal(data, &f.Value)
}

// MarshalJSON encodes null for an explicit null, otherwise the value.
// Pair with the omitzero tag option to drop omitted fields.
func (f Field[T]) MarshalJSON() ([]byte, error) {
	if f.Null {
		return jsonNull, nil
	}
	return json.Marshal(f.Value)
}

// HasValue reports whether the field was present with a non-null value.
func (f Field[T]) HasValue() bool {
	return f.Set && !f.Null
}

// Resolve returns the supplied value when present and non-null, otherwise current.
func (f Field[T]) Resolve(current T) T {
	if f.HasValue() {
		return f.Value
	}
	return current
}

// ResolvePtr applies the field to a nullable value: omitted keeps current,
// null clears it, and a value replaces it.
func (f Field[T]) ResolvePtr(current *T) *T {
	if !f.Set {
		return current
	}
	if f.Null {
		return nil
	}
	v := f.Value
	return &v
}
