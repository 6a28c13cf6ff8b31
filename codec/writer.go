// Package codec implements the fixed-width, little-endian primitive
// encoding every other package in this module builds on. It knows
// nothing about schemas, containers, or versions, only how to move
// bytes on and off the wire.
package codec

import (
	"encoding/binary"
	"io"
	"unicode/utf8"
)

// Writer is a sink: fixed-width little-endian primitive writes over an
// underlying io.Writer. It is borrowed, not owned: Writer never closes
// or flushes the wrapped stream.
type Writer struct {
	w       io.Writer
	scratch [8]byte
}

// NewWriter wraps w as a codec sink.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (w *Writer) WriteU8(v uint8) error {
	w.scratch[0] = v
	_, err := w.w.Write(w.scratch[:1])
	return err
}

func (w *Writer) WriteI8(v int8) error {
	return w.WriteU8(uint8(v))
}

func (w *Writer) WriteU16(v uint16) error {
	binary.LittleEndian.PutUint16(w.scratch[:2], v)
	_, err := w.w.Write(w.scratch[:2])
	return err
}

func (w *Writer) WriteI16(v int16) error {
	return w.WriteU16(uint16(v))
}

func (w *Writer) WriteU32(v uint32) error {
	binary.LittleEndian.PutUint32(w.scratch[:4], v)
	_, err := w.w.Write(w.scratch[:4])
	return err
}

func (w *Writer) WriteI32(v int32) error {
	return w.WriteU32(uint32(v))
}

func (w *Writer) WriteU64(v uint64) error {
	binary.LittleEndian.PutUint64(w.scratch[:8], v)
	_, err := w.w.Write(w.scratch[:8])
	return err
}

func (w *Writer) WriteI64(v int64) error {
	return w.WriteU64(uint64(v))
}

// WriteUsize writes a platform-independent usize: always 8 bytes LE,
// regardless of the host's native int width.
func (w *Writer) WriteUsize(v uint64) error {
	return w.WriteU64(v)
}

// WriteIsize writes a platform-independent isize: always 8 bytes LE.
func (w *Writer) WriteIsize(v int64) error {
	return w.WriteI64(v)
}

// WriteBuf writes a raw byte slice with no length prefix. Callers that
// need a length-delimited buffer write the length themselves first.
func (w *Writer) WriteBuf(buf []byte) error {
	_, err := w.w.Write(buf)
	return err
}

// WriteString writes len(s) as a usize followed by s's UTF-8 bytes.
func (w *Writer) WriteString(s string) error {
	if !utf8.ValidString(s) {
		return ErrInvalidUTF8
	}
	if err := w.WriteUsize(uint64(len(s))); err != nil {
		return err
	}
	return w.WriteBuf([]byte(s))
}

// Raw exposes the wrapped sink, for callers (e.g. the POD fast path)
// that need to issue one bulk write.
func (w *Writer) Raw() io.Writer {
	return w.w
}
