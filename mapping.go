package versig

import "github.com/versig/versig/schema"

// MappingSchema builds the Schema node for Mapping<K,V>: a Vector over
// a synthetic KeyValuePair struct, since the wire format has no
// dedicated map representation.
func MappingSchema(key, value schema.Schema) schema.Schema {
	pair := schema.Struct(schema.KeyValuePairName,
		schema.Field{Name: "key", Schema: key},
		schema.Field{Name: "value", Schema: value},
	)
	return schema.OfVector(pair)
}

// WriteMapping encodes m as a length-prefixed sequence of key/value
// pairs, in whatever order Go's map iteration gives. The order is not
// deterministic: two calls with the same m may write the pairs in
// different orders.
func WriteMapping[K comparable, V any](s *Serializer, m map[K]V, encodeKey func(*Serializer, K) error, encodeValue func(*Serializer, V) error) error {
	if err := s.WriteUsize(uint64(len(m))); err != nil {
		return err
	}
	for k, v := range m {
		if err := encodeKey(s, k); err != nil {
			return err
		}
		if err := encodeValue(s, v); err != nil {
			return err
		}
	}
	return nil
}

// ReadMapping decodes a length-prefixed sequence of key/value pairs
// into a map. A duplicate key is not an error: the last occurrence on
// the wire wins, overwriting any earlier value for that key.
func ReadMapping[K comparable, V any](d *Deserializer, decodeKey func(*Deserializer) (K, error), decodeValue func(*Deserializer) (V, error)) (map[K]V, error) {
	n, err := d.ReadUsize()
	if err != nil {
		return nil, err
	}
	out := make(map[K]V, n)
	for i := uint64(0); i < n; i++ {
		k, err := decodeKey(d)
		if err != nil {
			return nil, err
		}
		v, err := decodeValue(d)
		if err != nil {
			return nil, err
		}
		out[k] = v
	}
	return out, nil
}
