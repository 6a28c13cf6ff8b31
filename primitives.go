package versig

import "github.com/versig/versig/schema"

// U8Schema is the schema node for uint8.
func U8Schema() schema.Schema { return schema.OfPrimitive(schema.PrimitiveU8) }

// I8Schema is the schema node for int8.
func I8Schema() schema.Schema { return schema.OfPrimitive(schema.PrimitiveI8) }

// U16Schema is the schema node for uint16.
func U16Schema() schema.Schema { return schema.OfPrimitive(schema.PrimitiveU16) }

// I16Schema is the schema node for int16.
func I16Schema() schema.Schema { return schema.OfPrimitive(schema.PrimitiveI16) }

// U32Schema is the schema node for uint32.
func U32Schema() schema.Schema { return schema.OfPrimitive(schema.PrimitiveU32) }

// I32Schema is the schema node for int32.
func I32Schema() schema.Schema { return schema.OfPrimitive(schema.PrimitiveI32) }

// U64Schema is the schema node for uint64.
func U64Schema() schema.Schema { return schema.OfPrimitive(schema.PrimitiveU64) }

// I64Schema is the schema node for int64.
func I64Schema() schema.Schema { return schema.OfPrimitive(schema.PrimitiveI64) }

// UsizeSchema is the schema node for a platform-independent usize.
func UsizeSchema() schema.Schema { return schema.OfPrimitive(schema.PrimitiveUSize) }

// IsizeSchema is the schema node for a platform-independent isize.
func IsizeSchema() schema.Schema { return schema.OfPrimitive(schema.PrimitiveISize) }

// StringSchema is the schema node for a UTF-8 string.
func StringSchema() schema.Schema { return schema.OfPrimitive(schema.PrimitiveString) }

// EncodeU8 and its siblings adapt the primitive Write* methods to the
// encode(*Serializer, T) error shape WriteVector and WriteMapping
// expect for their element type.
func EncodeU8(s *Serializer, v uint8) error      { return s.WriteU8(v) }
func EncodeI8(s *Serializer, v int8) error       { return s.WriteI8(v) }
func EncodeU16(s *Serializer, v uint16) error    { return s.WriteU16(v) }
func EncodeI16(s *Serializer, v int16) error     { return s.WriteI16(v) }
func EncodeU32(s *Serializer, v uint32) error    { return s.WriteU32(v) }
func EncodeI32(s *Serializer, v int32) error     { return s.WriteI32(v) }
func EncodeU64(s *Serializer, v uint64) error    { return s.WriteU64(v) }
func EncodeI64(s *Serializer, v int64) error     { return s.WriteI64(v) }
func EncodeString(s *Serializer, v string) error { return s.WriteString(v) }

func DecodeU8(d *Deserializer) (uint8, error)      { return d.ReadU8() }
func DecodeI8(d *Deserializer) (int8, error)       { return d.ReadI8() }
func DecodeU16(d *Deserializer) (uint16, error)     { return d.ReadU16() }
func DecodeI16(d *Deserializer) (int16, error)      { return d.ReadI16() }
func DecodeU32(d *Deserializer) (uint32, error)     { return d.ReadU32() }
func DecodeI32(d *Deserializer) (int32, error)      { return d.ReadI32() }
func DecodeU64(d *Deserializer) (uint64, error)     { return d.ReadU64() }
func DecodeI64(d *Deserializer) (int64, error)      { return d.ReadI64() }
func DecodeString(d *Deserializer) (string, error)  { return d.ReadString() }
