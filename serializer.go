package versig

import (
	"io"

	"github.com/versig/versig/codec"
)

// Serializer is a save session: it holds a sink and the version being
// written, and is owned for the duration of exactly one top-level Save
// call. It borrows w, and never closes or flushes it.
type Serializer struct {
	w       *codec.Writer
	Version uint32
}

// NewRawSerializer builds a Serializer fixed at version 0, for writing
// values outside a Save session. Save does not use it: the schema
// header is written by schema.Write directly on the session's sink.
func NewRawSerializer(w io.Writer) *Serializer {
	return &Serializer{w: codec.NewWriter(w), Version: 0}
}

func newSerializer(w io.Writer, version uint32) *Serializer {
	return &Serializer{w: codec.NewWriter(w), Version: version}
}

func (s *Serializer) WriteU8(v uint8) error   { return s.w.WriteU8(v) }
func (s *Serializer) WriteI8(v int8) error    { return s.w.WriteI8(v) }
func (s *Serializer) WriteU16(v uint16) error { return s.w.WriteU16(v) }
func (s *Serializer) WriteI16(v int16) error  { return s.w.WriteI16(v) }
func (s *Serializer) WriteU32(v uint32) error { return s.w.WriteU32(v) }
func (s *Serializer) WriteI32(v int32) error  { return s.w.WriteI32(v) }
func (s *Serializer) WriteU64(v uint64) error { return s.w.WriteU64(v) }
func (s *Serializer) WriteI64(v int64) error  { return s.w.WriteI64(v) }

// WriteUsize writes a platform-independent usize (always 8 bytes LE).
func (s *Serializer) WriteUsize(v uint64) error { return s.w.WriteUsize(v) }

// WriteIsize writes a platform-independent isize (always 8 bytes LE).
func (s *Serializer) WriteIsize(v int64) error { return s.w.WriteIsize(v) }

// WriteBuf writes raw bytes with no length prefix.
func (s *Serializer) WriteBuf(buf []byte) error { return s.w.WriteBuf(buf) }

// WriteString writes a length-prefixed, UTF-8-validated string.
func (s *Serializer) WriteString(v string) error {
	if err := s.w.WriteString(v); err != nil {
		if err == codec.ErrInvalidUTF8 {
			return ErrInvalidUTF8
		}
		return err
	}
	return nil
}

// raw exposes the underlying sink for the generic container and
// POD-fast-path helpers, which write directly to avoid an extra hop
// through every single primitive method.
func (s *Serializer) raw() *codec.Writer { return s.w }
