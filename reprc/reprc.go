// Package reprc implements an optional bulk-copy fast path for
// packed, trivially-copyable element types. A type parameter gives us
// the address of the first slice element directly, so no reflection
// is needed to find it, unlike an offset-based reflect.Type approach.
package reprc

import (
	"errors"
	"fmt"
	"io"
	"unsafe"
)

// ErrOutOfMemory is returned when the allocator refuses a POD
// fast-path buffer.
var ErrOutOfMemory = errors.New("reprc: allocation failed")

// ErrLayout is returned when the requested (size, align) cannot form a
// valid memory layout: a zero-size element, a length/size product
// that overflows, or a total above maxAlloc.
var ErrLayout = errors.New("reprc: requested layout cannot be formed")

// maxAlloc bounds a single fast-path allocation. Not part of the wire
// format.
const maxAlloc = 1 << 34 // 16 GiB

// PodSafe is the capability a composite type declares to participate
// in the fast path beyond the hardcoded numeric allow-list: "at this
// version, I am trivially copyable, have a deterministic field order
// with no padding, and every field is itself PodSafe".
type PodSafe interface {
	PodSafeAt(version uint32) bool
}

// hostLittleEndian is computed once. The on-disk format is fixed
// little-endian; the fast path reinterprets native memory directly,
// so it must refuse to run at all on a big-endian host.
var hostLittleEndian = func() bool {
	var x uint16 = 1
	b := (*[2]byte)(unsafe.Pointer(&x))
	return b[0] == 1
}()

// Eligible reports whether a []T can use the POD fast path at version.
// Built-in fixed-width integer kinds are always eligible; any other T
// is eligible only if it implements PodSafe and reports true. int/uint
// are eligible only when the host's native width is 8 bytes,
// preserving the isize/usize LE-u64 wire guarantee.
func Eligible[T any](version uint32) bool {
	if !hostLittleEndian {
		return false
	}

	var zero T
	switch any(zero).(type) {
	case int8, uint8, int16, uint16, int32, uint32, int64, uint64:
		return true
	case int, uint:
		return unsafe.Sizeof(zero) == 8
	}

	if ps, ok := any(zero).(PodSafe); ok {
		return ps.PodSafeAt(version)
	}

	return false
}

// WriteSlice writes items as one contiguous copy of their backing
// storage: the fast-path encode. Callers must only call this after
// confirming Eligible[T](version).
func WriteSlice[T any](w io.Writer, items []T) error {
	if len(items) == 0 {
		return nil
	}
	elemSize := unsafe.Sizeof(items[0])
	total := uintptr(len(items)) * elemSize
	raw := unsafe.Slice((*byte)(unsafe.Pointer(&items[0])), total)
	_, err := w.Write(raw)
	return err
}

// ReadSlice allocates a raw buffer sized n*sizeof(T), reads exactly
// that many bytes in one call, and reinterprets the buffer as []T:
// the fast-path decode. On any failure the partially or un-filled
// backing array is simply left unreferenced for the garbage collector.
func ReadSlice[T any](r io.Reader, n uint64) (out []T, err error) {
	if n == 0 {
		return []T{}, nil
	}

	var zero T
	elemSize := uint64(unsafe.Sizeof(zero))
	if elemSize == 0 {
		return nil, ErrLayout
	}

	total, overflowed := mulOverflows(n, elemSize)
	if overflowed || total > maxAlloc {
		return nil, ErrLayout
	}

	defer func() {
		if rec := recover(); rec != nil {
			out = nil
			err = fmt.Errorf("%w: %v", ErrOutOfMemory, rec)
		}
	}()

	out = make([]T, n)
	raw := unsafe.Slice((*byte)(unsafe.Pointer(&out[0])), total)
	if _, rerr := io.ReadFull(r, raw); rerr != nil {
		return nil, rerr
	}
	return out, nil
}

func mulOverflows(a, b uint64) (uint64, bool) {
	if a == 0 || b == 0 {
		return 0, false
	}
	product := a * b
	return product, product/a != b
}
