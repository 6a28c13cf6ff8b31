package versig

import "github.com/versig/versig/schema"

// WithSchema is the pure half of the serialize/deserialize contract:
// Schema(version) must not consult any value of the implementing type,
// and must return a structurally equal tree for the same (T, version)
// in any process built from the same type definitions.
type WithSchema interface {
	Schema(version uint32) schema.Schema
}

// Encoder is a type that can write its own bytes to a Serializer. It
// must not write a length prefix for itself, any framing is the
// caller's responsibility.
type Encoder interface {
	WithSchema
	Encode(s *Serializer) error
}

// decoderPtr constrains a type parameter E such that *E implements
// WithSchema and can decode into itself. This is the same generics
// idiom encoding/json's Unmarshaler and encoding/gob use for "decode
// into an existing value": the method takes a pointer receiver because
// Decode mutates the zero value in place.
type decoderPtr[E any] interface {
	*E
	WithSchema
	Decode(d *Deserializer) error
}
