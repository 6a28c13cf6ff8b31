package codec

import (
	"encoding/binary"
	"io"
	"unicode/utf8"
)

// Reader is a source: fixed-width little-endian primitive reads over an
// underlying io.Reader. Every read is exact-length: a short read
// surfaces whatever io.ReadFull returns (io.ErrUnexpectedEOF or the
// underlying error), never a partial value.
type Reader struct {
	r       io.Reader
	scratch [8]byte
}

// NewReader wraps r as a codec source.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

func (r *Reader) readExact(n int) ([]byte, error) {
	buf := r.scratch[:n]
	if _, err := io.ReadFull(r.r, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

func (r *Reader) ReadU8() (uint8, error) {
	b, err := r.readExact(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *Reader) ReadI8() (int8, error) {
	v, err := r.ReadU8()
	return int8(v), err
}

func (r *Reader) ReadU16() (uint16, error) {
	b, err := r.readExact(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (r *Reader) ReadI16() (int16, error) {
	v, err := r.ReadU16()
	return int16(v), err
}

func (r *Reader) ReadU32() (uint32, error) {
	b, err := r.readExact(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (r *Reader) ReadI32() (int32, error) {
	v, err := r.ReadU32()
	return int32(v), err
}

func (r *Reader) ReadU64() (uint64, error) {
	b, err := r.readExact(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

func (r *Reader) ReadI64() (int64, error) {
	v, err := r.ReadU64()
	return int64(v), err
}

// ReadUsize reads a platform-independent usize: always 8 bytes LE.
func (r *Reader) ReadUsize() (uint64, error) {
	return r.ReadU64()
}

// ReadIsize reads a platform-independent isize: always 8 bytes LE.
func (r *Reader) ReadIsize() (int64, error) {
	return r.ReadI64()
}

// ReadFull reads exactly len(buf) bytes into buf.
func (r *Reader) ReadFull(buf []byte) error {
	_, err := io.ReadFull(r.r, buf)
	return err
}

// Raw exposes the wrapped source, for callers (e.g. the POD fast path)
// that need to issue one bulk read without going through ReadFull's
// already-allocated-buffer assumption.
func (r *Reader) Raw() io.Reader {
	return r.r
}

// ReadString reads a usize length then exactly that many bytes,
// validating them as UTF-8.
func (r *Reader) ReadString() (string, error) {
	n, err := r.ReadUsize()
	if err != nil {
		return "", err
	}
	buf := make([]byte, n)
	if err := r.ReadFull(buf); err != nil {
		return "", err
	}
	if !utf8.Valid(buf) {
		return "", ErrInvalidUTF8
	}
	return string(buf), nil
}
