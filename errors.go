package versig

import (
	"errors"
	"fmt"
)

// ErrRemovedFieldWritten is returned by RemovedField[T].Encode. A live
// value of this type must never reach the wire. The enclosing
// container's hand-written Encode method must exclude it from any
// version where the field no longer exists. Reaching this path is a
// programming bug, not a data problem.
var ErrRemovedFieldWritten = errors.New("versig: attempted to serialize a removed field")

// ErrInvalidUTF8 mirrors codec.ErrInvalidUTF8 at this package's level:
// Serializer.WriteString and Deserializer.ReadString return it in place
// of the codec error, so payload string errors can be checked with
// errors.Is without importing codec. A bad string inside the embedded
// schema header is reported by Save/Load as codec.ErrInvalidUTF8.
var ErrInvalidUTF8 = errors.New("versig: string bytes are not valid utf-8")

// IncompatibleSchemaError is returned by Load when the file's embedded
// schema differs from the schema the in-memory type describes for the
// file's version.
type IncompatibleSchemaError struct {
	Message string
}

func (e *IncompatibleSchemaError) Error() string {
	return fmt.Sprintf("versig: incompatible schema: %s", e.Message)
}

// NewerFileVersionError is returned by Load when the stream's version
// is newer than the version the caller's in-memory code understands:
// the memory code is older than the file and cannot safely decode it.
// This is fatal: no payload bytes are consumed.
type NewerFileVersionError struct {
	File   uint32
	Memory uint32
}

func (e *NewerFileVersionError) Error() string {
	return fmt.Sprintf("versig: file version %d is newer than memory version %d", e.File, e.Memory)
}
