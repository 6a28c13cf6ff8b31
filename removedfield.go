package versig

import "github.com/versig/versig/schema"

// RemovedField marks a struct field whose type has been deleted from
// the in-memory type, while older files on disk may still carry its
// bytes. It occupies no useful state: the struct's hand-written Decode
// method routes the discarded value here, and the field's position in
// the struct literal stays stable.
type RemovedField[T any] struct{}

// Schema delegates to T's own Schema method when T implements
// WithSchema. Most removed fields wrap a built-in primitive type,
// which has no Schema method of its own, so this falls back to
// Undefined in that common case: the enclosing struct's Schema method
// must describe the field's historical primitive shape directly
// instead of relying on this delegation.
func (RemovedField[T]) Schema(version uint32) schema.Schema {
	var zero T
	if ws, ok := any(zero).(WithSchema); ok {
		return ws.Schema(version)
	}
	return schema.Undefined
}

// Encode always fails: a live RemovedField value must never reach the
// wire. The enclosing struct's Encode method is responsible for
// excluding this field once it no longer exists at the version being
// written.
func (RemovedField[T]) Encode(s *Serializer) error {
	return ErrRemovedFieldWritten
}

// DiscardRemoved decodes and drops a value of the removed field's
// former type, returning a RemovedField placeholder in its place.
func DiscardRemoved[T any](d *Deserializer, decode func(*Deserializer) (T, error)) (RemovedField[T], error) {
	if _, err := decode(d); err != nil {
		return RemovedField[T]{}, err
	}
	return RemovedField[T]{}, nil
}
