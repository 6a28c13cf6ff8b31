// Package versig implements a versioned binary serialization library
// for in-process data structures: a compact, endian-stable wire format
// with an optional self-describing schema header, plus a
// layout-preserving bulk path for packed-POD sequences.
//
// A type participates by implementing WithSchema plus Encoder, a
// pointer-receiver Decode method, or both. Save and Load frame a
// top-level value with a version number and, optionally, that
// version's derived Schema, which Load diffs against the schema the
// in-memory types describe for the same version before trusting the
// payload bytes.
package versig
