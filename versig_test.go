package versig_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/versig/versig"
	"github.com/versig/versig/schema"
)

type u32Box struct {
	V uint32
}

func (u32Box) Schema(version uint32) schema.Schema { return versig.U32Schema() }
func (u u32Box) Encode(s *versig.Serializer) error { return s.WriteU32(u.V) }
func (u *u32Box) Decode(d *versig.Deserializer) error {
	v, err := d.ReadU32()
	if err != nil {
		return err
	}
	u.V = v
	return nil
}

// TestSaveNoSchemaPrimitiveBytes checks the literal wire layout of
// scenario 1: a u32 saved without a schema at version 1.
func TestSaveNoSchemaPrimitiveBytes(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, versig.SaveNoSchema(&buf, 1, u32Box{V: 0x01020304}))
	require.Equal(t, []byte{
		0x01, 0x00, 0x00, 0x00,
		0x04, 0x03, 0x02, 0x01,
	}, buf.Bytes())

	got, err := versig.LoadNoSchema[u32Box, *u32Box](bytes.NewReader(buf.Bytes()), 1)
	require.NoError(t, err)
	require.Equal(t, uint32(0x01020304), got.V)
}

type xyU32 struct{ X, Y uint32 }

func (xyU32) Schema(version uint32) schema.Schema {
	return schema.Struct("XY",
		schema.Field{Name: "x", Schema: versig.U32Schema()},
		schema.Field{Name: "y", Schema: versig.U32Schema()},
	)
}
func (v xyU32) Encode(s *versig.Serializer) error {
	if err := s.WriteU32(v.X); err != nil {
		return err
	}
	return s.WriteU32(v.Y)
}
func (v *xyU32) Decode(d *versig.Deserializer) error {
	x, err := d.ReadU32()
	if err != nil {
		return err
	}
	y, err := d.ReadU32()
	if err != nil {
		return err
	}
	v.X, v.Y = x, y
	return nil
}

type xyU64 struct {
	X uint32
	Y uint64
}

func (xyU64) Schema(version uint32) schema.Schema {
	return schema.Struct("XY",
		schema.Field{Name: "x", Schema: versig.U32Schema()},
		schema.Field{Name: "y", Schema: versig.U64Schema()},
	)
}
func (v xyU64) Encode(s *versig.Serializer) error {
	if err := s.WriteU32(v.X); err != nil {
		return err
	}
	return s.WriteU64(v.Y)
}
func (v *xyU64) Decode(d *versig.Deserializer) error {
	x, err := d.ReadU32()
	if err != nil {
		return err
	}
	y, err := d.ReadU64()
	if err != nil {
		return err
	}
	v.X, v.Y = x, y
	return nil
}

// TestLoadIncompatibleSchemaReportsFieldPath checks scenario 5: a
// struct field that changed primitive type reports the path and both
// kinds in the IncompatibleSchemaError.
func TestLoadIncompatibleSchemaReportsFieldPath(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, versig.Save(&buf, 1, xyU32{X: 1, Y: 2}))

	_, err := versig.Load[xyU64, *xyU64](bytes.NewReader(buf.Bytes()), 1)
	require.Error(t, err)

	var incompatible *versig.IncompatibleSchemaError
	require.ErrorAs(t, err, &incompatible)
	require.Contains(t, incompatible.Message, "./y")
	require.Contains(t, incompatible.Message, "u32")
	require.Contains(t, incompatible.Message, "u64")
}

// TestLoadRejectsNewerFile checks scenario 6: a file claiming a newer
// version than the caller understands is rejected before any payload
// byte is read.
func TestLoadRejectsNewerFile(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, versig.Save(&buf, 2, u32Box{V: 7}))

	_, err := versig.Load[u32Box, *u32Box](bytes.NewReader(buf.Bytes()), 1)
	require.Error(t, err)

	var newer *versig.NewerFileVersionError
	require.ErrorAs(t, err, &newer)
	require.Equal(t, uint32(2), newer.File)
	require.Equal(t, uint32(1), newer.Memory)
}

type byteSeq struct{ Items []byte }

func (byteSeq) Schema(version uint32) schema.Schema {
	return versig.VectorSchema(versig.U8Schema())
}
func (b byteSeq) Encode(s *versig.Serializer) error {
	return versig.WritePodVector(s, b.Items, versig.EncodeU8)
}
func (b *byteSeq) Decode(d *versig.Deserializer) error {
	items, err := versig.ReadPodVector[byte](d, versig.DecodeU8)
	if err != nil {
		return err
	}
	b.Items = items
	return nil
}

// TestPodVectorWireLayout checks scenario 3: a []uint8 saved without a
// schema at version 0 round-trips with the exact byte layout the fast
// path and the general path must agree on.
func TestPodVectorWireLayout(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, versig.SaveNoSchema(&buf, 0, byteSeq{Items: []byte{1, 2, 3}}))
	require.Equal(t, []byte{
		0x00, 0x00, 0x00, 0x00,
		0x03, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x01, 0x02, 0x03,
	}, buf.Bytes())

	got, err := versig.LoadNoSchema[byteSeq, *byteSeq](bytes.NewReader(buf.Bytes()), 0)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3}, got.Items)
}

func TestMappingRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	s := versig.NewRawSerializer(&buf)
	m := map[string]uint32{"a": 1, "b": 2}
	require.NoError(t, versig.WriteMapping(s, m, versig.EncodeString, versig.EncodeU32))

	d := versig.NewRawDeserializer(&buf)
	got, err := versig.ReadMapping(d, versig.DecodeString, versig.DecodeU32)
	require.NoError(t, err)
	require.Equal(t, m, got)
}

func TestMappingDuplicateKeyLastWins(t *testing.T) {
	var buf bytes.Buffer
	s := versig.NewRawSerializer(&buf)
	require.NoError(t, s.WriteUsize(2))
	require.NoError(t, s.WriteString("k"))
	require.NoError(t, s.WriteU32(1))
	require.NoError(t, s.WriteString("k"))
	require.NoError(t, s.WriteU32(2))

	d := versig.NewRawDeserializer(&buf)
	got, err := versig.ReadMapping(d, versig.DecodeString, versig.DecodeU32)
	require.NoError(t, err)
	require.Equal(t, map[string]uint32{"k": 2}, got)
}

func TestRemovedFieldEncodeIsAlwaysAnError(t *testing.T) {
	var buf bytes.Buffer
	s := versig.NewRawSerializer(&buf)
	var field versig.RemovedField[uint32]
	require.ErrorIs(t, field.Encode(s), versig.ErrRemovedFieldWritten)
}

// TestRemovedFieldDiscardConsumesValue checks the "RemovedField
// discard" property: decoding a stream containing a live u32 at the
// position of a RemovedField[uint32] consumes exactly that value and
// yields a placeholder equal to a freshly constructed one.
func TestRemovedFieldDiscardConsumesValue(t *testing.T) {
	var buf bytes.Buffer
	s := versig.NewRawSerializer(&buf)
	require.NoError(t, s.WriteU32(0xdeadbeef))
	require.NoError(t, s.WriteU32(0x11223344))

	d := versig.NewRawDeserializer(&buf)
	placeholder, err := versig.DiscardRemoved[uint32](d, versig.DecodeU32)
	require.NoError(t, err)
	require.Equal(t, versig.RemovedField[uint32]{}, placeholder)

	remaining, err := d.ReadU32()
	require.NoError(t, err)
	require.Equal(t, uint32(0x11223344), remaining)
}

func TestInvalidUTF8SurfacesRootError(t *testing.T) {
	var buf bytes.Buffer
	s := versig.NewRawSerializer(&buf)
	err := s.WriteString(string([]byte{0xff, 0xfe}))
	require.ErrorIs(t, err, versig.ErrInvalidUTF8)
}
