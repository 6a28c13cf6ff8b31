package versig

import (
	"fmt"
	"io"

	"github.com/versig/versig/schema"
)

// Save writes version, followed by value's schema at that version,
// followed by value's encoded bytes. The schema lets a later Load
// detect an incompatible type change before trusting the payload.
func Save[T Encoder](w io.Writer, version uint32, value T) error {
	return save(w, version, value, true)
}

// SaveNoSchema writes version and value's bytes with no embedded
// schema, for callers who manage compatibility themselves (e.g. a
// network protocol where both ends are always rebuilt together) and
// want to save the bytes a schema costs.
func SaveNoSchema[T Encoder](w io.Writer, version uint32, value T) error {
	return save(w, version, value, false)
}

func save[T Encoder](w io.Writer, version uint32, value T, withSchema bool) error {
	header := newSerializer(w, version)
	if err := header.WriteU32(version); err != nil {
		return err
	}
	if withSchema {
		if err := schema.Write(header.raw(), value.Schema(version)); err != nil {
			return err
		}
	}
	body := newSerializer(w, version)
	return value.Encode(body)
}

// Load reads a versig stream written with the embedded schema present,
// verifies the file is not newer than memVersion, diffs the embedded
// schema against the schema E describes at the file's version, and
// decodes the payload into a new E.
//
// E is the concrete value type; PE is its pointer, constrained so the
// caller never has to spell out &zero themselves.
func Load[E any, PE decoderPtr[E]](r io.Reader, memVersion uint32) (E, error) {
	return load[E, PE](r, memVersion, true)
}

// LoadNoSchema reads a versig stream written by SaveNoSchema: there is
// no embedded schema to check, so the caller is trusting memVersion's
// type definition matches whatever wrote the file.
func LoadNoSchema[E any, PE decoderPtr[E]](r io.Reader, memVersion uint32) (E, error) {
	return load[E, PE](r, memVersion, false)
}

func load[E any, PE decoderPtr[E]](r io.Reader, memVersion uint32, withSchema bool) (E, error) {
	var zero E
	header := newDeserializer(r, 0, memVersion)
	fileVersion, err := header.ReadU32()
	if err != nil {
		return zero, err
	}
	if fileVersion > memVersion {
		return zero, &NewerFileVersionError{File: fileVersion, Memory: memVersion}
	}

	if withSchema {
		fileSchema, err := schema.Read(header.raw())
		if err != nil {
			return zero, err
		}
		var target E
		memSchema := PE(&target).Schema(fileVersion)
		msg, err := schema.Diff(fileSchema, memSchema, ".")
		if err != nil {
			return zero, &IncompatibleSchemaError{Message: fmt.Sprintf("schema undefined during compatibility check: %v", err)}
		}
		if msg != "" {
			return zero, &IncompatibleSchemaError{Message: msg}
		}
	}

	body := newDeserializer(r, fileVersion, memVersion)
	var value E
	if err := PE(&value).Decode(body); err != nil {
		return zero, err
	}
	return value, nil
}
