package schema

import "fmt"

// Diff performs a single-pass structural walk of two schema trees. It
// returns ("", nil) iff a and b are structurally equal. Otherwise it
// returns the first mismatch found, annotated with a '/'-joined path
// like "./users/*/name". If either side reaches an Undefined node, Diff
// stops and returns ErrUndefined instead of a message. The schema
// guard refuses to certify compatibility past that point.
func Diff(a, b Schema, path string) (string, error) {
	if a.Kind == KindUndefined || b.Kind == KindUndefined {
		return "", ErrUndefined
	}

	if a.Kind != b.Kind {
		return fmt.Sprintf("%s: kind mismatch: %s vs %s", path, a.Kind, b.Kind), nil
	}

	switch a.Kind {
	case KindStruct:
		return diffFieldLists(a.DebugName, b.DebugName, a.Fields, b.Fields, path)

	case KindEnum:
		if len(a.Variants) != len(b.Variants) {
			return fmt.Sprintf("%s: variant count mismatch: %d vs %d", path, len(a.Variants), len(b.Variants)), nil
		}
		for i := range a.Variants {
			av, bv := a.Variants[i], b.Variants[i]
			if av.Name != bv.Name {
				return fmt.Sprintf("%s: variant name mismatch at index %d: %q vs %q", path, i, av.Name, bv.Name), nil
			}
			if av.Discriminator != bv.Discriminator {
				return fmt.Sprintf("%s/%s: discriminator mismatch: %d vs %d", path, av.Name, av.Discriminator, bv.Discriminator), nil
			}
			if msg, err := diffFieldLists(av.Name, bv.Name, av.Fields, bv.Fields, path+"/"+av.Name); err != nil || msg != "" {
				return msg, err
			}
		}
		return "", nil

	case KindPrimitive:
		if a.Primitive != b.Primitive {
			return fmt.Sprintf("%s: primitive mismatch: %s vs %s", path, a.Primitive, b.Primitive), nil
		}
		return "", nil

	case KindVector:
		return Diff(*a.Element, *b.Element, path+"/*")

	default:
		return fmt.Sprintf("%s: unrecognized schema kind %d", path, a.Kind), nil
	}
}

// diffFieldLists compares two ordered field lists field-by-field: a
// count mismatch reports both debug names for disambiguation, a name
// mismatch stops immediately, and only then do field schemas recurse.
func diffFieldLists(aName, bName string, aFields, bFields []Field, path string) (string, error) {
	if len(aFields) != len(bFields) {
		return fmt.Sprintf("%s: field count mismatch: %s has %d, %s has %d", path, aName, len(aFields), bName, len(bFields)), nil
	}
	for i := range aFields {
		af, bf := aFields[i], bFields[i]
		if af.Name != bf.Name {
			return fmt.Sprintf("%s: field name mismatch at index %d: %q vs %q", path, i, af.Name, bf.Name), nil
		}
		if msg, err := Diff(af.Schema, bf.Schema, path+"/"+af.Name); err != nil || msg != "" {
			return msg, err
		}
	}
	return "", nil
}
