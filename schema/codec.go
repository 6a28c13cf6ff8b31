package schema

import "github.com/versig/versig/codec"

// Write encodes a Schema tree. Every child's tag immediately follows
// its parent's. The wire representation is a prefix-determinant tree
// with no sharing and no back-references.
func Write(w *codec.Writer, s Schema) error {
	if err := w.WriteU8(uint8(s.Kind)); err != nil {
		return err
	}

	switch s.Kind {
	case KindStruct:
		if err := w.WriteString(s.DebugName); err != nil {
			return err
		}
		if err := w.WriteUsize(uint64(len(s.Fields))); err != nil {
			return err
		}
		for _, f := range s.Fields {
			if err := writeField(w, f); err != nil {
				return err
			}
		}
	case KindEnum:
		if err := w.WriteUsize(uint64(len(s.Variants))); err != nil {
			return err
		}
		for _, v := range s.Variants {
			if err := w.WriteString(v.Name); err != nil {
				return err
			}
			if err := w.WriteU16(v.Discriminator); err != nil {
				return err
			}
			if err := w.WriteUsize(uint64(len(v.Fields))); err != nil {
				return err
			}
			for _, f := range v.Fields {
				if err := writeField(w, f); err != nil {
					return err
				}
			}
		}
	case KindPrimitive:
		return w.WriteU16(uint16(s.Primitive))
	case KindVector:
		return Write(w, *s.Element)
	case KindUndefined:
		// tag only
	default:
		return ErrCorruptStream
	}

	return nil
}

func writeField(w *codec.Writer, f Field) error {
	if err := w.WriteString(f.Name); err != nil {
		return err
	}
	return Write(w, f.Schema)
}

// Read decodes a Schema tree. A Kind or Primitive discriminator outside
// its closed set ({1..5}, {1..11}) is ErrCorruptStream, a fatal,
// non-recoverable condition.
func Read(r *codec.Reader) (Schema, error) {
	rawKind, err := r.ReadU8()
	if err != nil {
		return Schema{}, err
	}

	kind := Kind(rawKind)

	switch kind {
	case KindStruct:
		name, err := r.ReadString()
		if err != nil {
			return Schema{}, err
		}
		n, err := r.ReadUsize()
		if err != nil {
			return Schema{}, err
		}
		fields := make([]Field, 0, n)
		for i := uint64(0); i < n; i++ {
			f, err := readField(r)
			if err != nil {
				return Schema{}, err
			}
			fields = append(fields, f)
		}
		return Struct(name, fields...), nil

	case KindEnum:
		n, err := r.ReadUsize()
		if err != nil {
			return Schema{}, err
		}
		variants := make([]Variant, 0, n)
		for i := uint64(0); i < n; i++ {
			name, err := r.ReadString()
			if err != nil {
				return Schema{}, err
			}
			disc, err := r.ReadU16()
			if err != nil {
				return Schema{}, err
			}
			fn, err := r.ReadUsize()
			if err != nil {
				return Schema{}, err
			}
			fields := make([]Field, 0, fn)
			for j := uint64(0); j < fn; j++ {
				f, err := readField(r)
				if err != nil {
					return Schema{}, err
				}
				fields = append(fields, f)
			}
			variants = append(variants, Variant{Name: name, Discriminator: disc, Fields: fields})
		}
		return Enum(variants...), nil

	case KindPrimitive:
		raw, err := r.ReadU16()
		if err != nil {
			return Schema{}, err
		}
		p := Primitive(raw)
		if p < PrimitiveI8 || p > PrimitiveString {
			return Schema{}, ErrCorruptStream
		}
		return OfPrimitive(p), nil

	case KindVector:
		elem, err := Read(r)
		if err != nil {
			return Schema{}, err
		}
		return OfVector(elem), nil

	case KindUndefined:
		return Undefined, nil

	default:
		return Schema{}, ErrCorruptStream
	}
}

func readField(r *codec.Reader) (Field, error) {
	name, err := r.ReadString()
	if err != nil {
		return Field{}, err
	}
	s, err := Read(r)
	if err != nil {
		return Field{}, err
	}
	return Field{Name: name, Schema: s}, nil
}
