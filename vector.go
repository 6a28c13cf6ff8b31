package versig

import (
	"github.com/versig/versig/reprc"
	"github.com/versig/versig/schema"
)

// VectorSchema builds the Schema node for Vector<T> given the element
// schema at version.
func VectorSchema(element schema.Schema) schema.Schema {
	return schema.OfVector(element)
}

// WriteVector encodes items as a usize length followed by each
// element via encode. Callers of a POD-eligible element type should
// prefer WritePodVector, which skips the per-element call entirely.
func WriteVector[T any](s *Serializer, items []T, encode func(*Serializer, T) error) error {
	if err := s.WriteUsize(uint64(len(items))); err != nil {
		return err
	}
	for _, item := range items {
		if err := encode(s, item); err != nil {
			return err
		}
	}
	return nil
}

// ReadVector decodes a usize length followed by that many elements via
// decode.
func ReadVector[T any](d *Deserializer, decode func(*Deserializer) (T, error)) ([]T, error) {
	n, err := d.ReadUsize()
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, n)
	for i := uint64(0); i < n; i++ {
		v, err := decode(d)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// WritePodVector encodes items with the bulk-copy fast path when T is
// POD-eligible at s.Version, falling back to WriteVector otherwise.
func WritePodVector[T any](s *Serializer, items []T, encode func(*Serializer, T) error) error {
	if err := s.WriteUsize(uint64(len(items))); err != nil {
		return err
	}
	if reprc.Eligible[T](s.Version) {
		return reprc.WriteSlice(s.raw().Raw(), items)
	}
	for _, item := range items {
		if err := encode(s, item); err != nil {
			return err
		}
	}
	return nil
}

// ReadPodVector decodes a vector with the bulk-copy fast path when T
// is POD-eligible at d.FileVersion, falling back to ReadVector
// otherwise.
func ReadPodVector[T any](d *Deserializer, decode func(*Deserializer) (T, error)) ([]T, error) {
	n, err := d.ReadUsize()
	if err != nil {
		return nil, err
	}
	if reprc.Eligible[T](d.FileVersion) {
		return reprc.ReadSlice[T](d.raw().Raw(), n)
	}
	out := make([]T, 0, n)
	for i := uint64(0); i < n; i++ {
		v, err := decode(d)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
