package schema

import "errors"

// ErrCorruptStream is returned when a schema-tag or primitive
// discriminator read off the wire falls outside its closed set
// ({1..5} for schema kinds, {1..11} for primitives). This is a fatal,
// non-recoverable condition: the stream cannot be interpreted any
// further once a tag is unrecognized.
var ErrCorruptStream = errors.New("schema: corrupt stream (unrecognized tag)")

// ErrUndefined is returned by Diff when either side of a comparison is
// the Undefined variant. The schema guard refuses to certify
// compatibility when any reachable payload node is undefined.
var ErrUndefined = errors.New("schema: undefined schema encountered")
