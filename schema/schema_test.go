package schema_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/versig/versig/codec"
	"github.com/versig/versig/schema"
)

func roundTrip(t *testing.T, s schema.Schema) schema.Schema {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, schema.Write(codec.NewWriter(&buf), s))
	got, err := schema.Read(codec.NewReader(&buf))
	require.NoError(t, err)
	return got
}

func TestStructRoundTrip(t *testing.T) {
	s := schema.Struct("Point",
		schema.Field{Name: "x", Schema: schema.OfPrimitive(schema.PrimitiveI32)},
		schema.Field{Name: "y", Schema: schema.OfPrimitive(schema.PrimitiveI32)},
	)
	got := roundTrip(t, s)
	msg, err := schema.Diff(s, got, ".")
	require.NoError(t, err)
	require.Empty(t, msg)
}

func TestEnumRoundTrip(t *testing.T) {
	s := schema.Enum(
		schema.Variant{Name: "Circle", Discriminator: 0, Fields: []schema.Field{
			{Name: "radius", Schema: schema.OfPrimitive(schema.PrimitiveU32)},
		}},
		schema.Variant{Name: "Rect", Discriminator: 1, Fields: []schema.Field{
			{Name: "width", Schema: schema.OfPrimitive(schema.PrimitiveU32)},
			{Name: "height", Schema: schema.OfPrimitive(schema.PrimitiveU32)},
		}},
	)
	got := roundTrip(t, s)
	msg, err := schema.Diff(s, got, ".")
	require.NoError(t, err)
	require.Empty(t, msg)
}

func TestVectorRoundTrip(t *testing.T) {
	s := schema.OfVector(schema.OfPrimitive(schema.PrimitiveString))
	got := roundTrip(t, s)
	require.Equal(t, schema.KindVector, got.Kind)
	require.Equal(t, schema.PrimitiveString, got.Element.Primitive)
}

func TestUndefinedRoundTrip(t *testing.T) {
	got := roundTrip(t, schema.Undefined)
	require.Equal(t, schema.KindUndefined, got.Kind)
}

// TestCorruptPrimitiveDiscriminator checks that a primitive
// discriminator outside {1..11} is CorruptStream.
func TestCorruptPrimitiveDiscriminator(t *testing.T) {
	var buf bytes.Buffer
	w := codec.NewWriter(&buf)
	require.NoError(t, w.WriteU8(uint8(schema.KindPrimitive)))
	require.NoError(t, w.WriteU16(99))

	_, err := schema.Read(codec.NewReader(&buf))
	require.ErrorIs(t, err, schema.ErrCorruptStream)
}

func TestCorruptKindTag(t *testing.T) {
	var buf bytes.Buffer
	w := codec.NewWriter(&buf)
	require.NoError(t, w.WriteU8(42))

	_, err := schema.Read(codec.NewReader(&buf))
	require.ErrorIs(t, err, schema.ErrCorruptStream)
}

func TestCatalogDuplicateRegistration(t *testing.T) {
	var c schema.Catalog
	producer := func(version uint32) schema.Schema { return schema.Undefined }

	require.NoError(t, c.Register("Point", producer))
	require.Error(t, c.Register("Point", producer))

	got, ok := c.Lookup("Point", 1)
	require.True(t, ok)
	require.Equal(t, schema.KindUndefined, got.Kind)

	_, ok = c.Lookup("Missing", 1)
	require.False(t, ok)
}
