package versig

import (
	"io"

	"github.com/versig/versig/codec"
)

// Deserializer is a load session: it holds a source, the version the
// stream claims to be, and the version the in-memory code understands.
// It is owned for the duration of exactly one top-level Load call, and
// never closes the underlying reader.
type Deserializer struct {
	r             *codec.Reader
	FileVersion   uint32
	MemoryVersion uint32
}

// NewRawDeserializer builds a Deserializer fixed at version 0, the
// counterpart to NewRawSerializer for reading values outside a Load
// session. Load does not use it: the schema header is read by
// schema.Read directly on the session's source.
func NewRawDeserializer(r io.Reader) *Deserializer {
	return &Deserializer{r: codec.NewReader(r), FileVersion: 0, MemoryVersion: 0}
}

func newDeserializer(r io.Reader, fileVersion, memVersion uint32) *Deserializer {
	return &Deserializer{r: codec.NewReader(r), FileVersion: fileVersion, MemoryVersion: memVersion}
}

func (d *Deserializer) ReadU8() (uint8, error)   { return d.r.ReadU8() }
func (d *Deserializer) ReadI8() (int8, error)    { return d.r.ReadI8() }
func (d *Deserializer) ReadU16() (uint16, error) { return d.r.ReadU16() }
func (d *Deserializer) ReadI16() (int16, error)  { return d.r.ReadI16() }
func (d *Deserializer) ReadU32() (uint32, error) { return d.r.ReadU32() }
func (d *Deserializer) ReadI32() (int32, error)  { return d.r.ReadI32() }
func (d *Deserializer) ReadU64() (uint64, error) { return d.r.ReadU64() }
func (d *Deserializer) ReadI64() (int64, error)  { return d.r.ReadI64() }

// ReadUsize reads a platform-independent usize (always 8 bytes LE).
func (d *Deserializer) ReadUsize() (uint64, error) { return d.r.ReadUsize() }

// ReadIsize reads a platform-independent isize (always 8 bytes LE).
func (d *Deserializer) ReadIsize() (int64, error) { return d.r.ReadIsize() }

// ReadString reads a length-prefixed, UTF-8-validated string.
func (d *Deserializer) ReadString() (string, error) {
	s, err := d.r.ReadString()
	if err != nil {
		if err == codec.ErrInvalidUTF8 {
			return "", ErrInvalidUTF8
		}
		return "", err
	}
	return s, nil
}

// raw exposes the underlying source for the generic container and
// POD-fast-path helpers.
func (d *Deserializer) raw() *codec.Reader { return d.r }
