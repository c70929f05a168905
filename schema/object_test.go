package schema

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zfmt-go/zfmt/buffer"
	"github.com/zfmt-go/zfmt/codec"
	"github.com/zfmt-go/zfmt/errs"
)

type ab struct {
	A int32
	B int64
}

func abSchema() *ObjectSchema[ab] {
	return NewObjectSchema(
		ObjectFieldOf(0, func(v ab) int32 { return v.A }, func(v *ab, f int32) { v.A = f }, codec.EncodeInt32, codec.DecodeInt32),
		ObjectFieldOf(1, func(v ab) int64 { return v.B }, func(v *ab, f int64) { v.B = f }, codec.EncodeInt64, codec.DecodeInt64),
	)
}

func TestObject_SpecScenario(t *testing.T) {
	// {a=1, b=2} at offset 0: byte_size=28, last_index=1, offsets 16 and 20,
	// then i32 1, then i64 2.
	buf := buffer.New()
	s := abSchema()
	n, err := s.Encode(buf, 0, ab{A: 1, B: 2})
	require.NoError(t, err)
	require.Equal(t, 28, n)

	expected := []byte{
		0x1C, 0x00, 0x00, 0x00,
		0x01, 0x00, 0x00, 0x00,
		0x10, 0x00, 0x00, 0x00,
		0x14, 0x00, 0x00, 0x00,
		0x01, 0x00, 0x00, 0x00,
		0x02, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	}
	require.Equal(t, expected, buf.Bytes())

	var cursor int64
	v, err := s.Decode(buf, &cursor)
	require.NoError(t, err)
	require.Equal(t, ab{A: 1, B: 2}, v)
	require.Equal(t, int64(28), cursor)
}

func TestObject_DecodeAgainstExtendedSchema(t *testing.T) {
	// Producer wrote {a, b}; consumer's schema also knows field 2 (c), which
	// is absent from the buffer and must decode to its zero value.
	type abc struct {
		A int32
		B int64
		C int32
	}

	producer := abSchema()
	buf := buffer.New()
	_, err := producer.Encode(buf, 0, ab{A: 1, B: 2})
	require.NoError(t, err)

	consumer := NewObjectSchema(
		ObjectFieldOf(0, func(v abc) int32 { return v.A }, func(v *abc, f int32) { v.A = f }, codec.EncodeInt32, codec.DecodeInt32),
		ObjectFieldOf(1, func(v abc) int64 { return v.B }, func(v *abc, f int64) { v.B = f }, codec.EncodeInt64, codec.DecodeInt64),
		ObjectFieldOf(2, func(v abc) int32 { return v.C }, func(v *abc, f int32) { v.C = f }, codec.EncodeInt32, codec.DecodeInt32),
	)

	var cursor int64
	v, err := consumer.Decode(buf, &cursor)
	require.NoError(t, err)
	require.Equal(t, abc{A: 1, B: 2, C: 0}, v)
}

func TestObject_DecodeAgainstOlderSchemaIgnoresExtraFields(t *testing.T) {
	type abc struct {
		A int32
		B int64
		C int32
	}

	producer := NewObjectSchema(
		ObjectFieldOf(0, func(v abc) int32 { return v.A }, func(v *abc, f int32) { v.A = f }, codec.EncodeInt32, codec.DecodeInt32),
		ObjectFieldOf(1, func(v abc) int64 { return v.B }, func(v *abc, f int64) { v.B = f }, codec.EncodeInt64, codec.DecodeInt64),
		ObjectFieldOf(2, func(v abc) int32 { return v.C }, func(v *abc, f int32) { v.C = f }, codec.EncodeInt32, codec.DecodeInt32),
	)

	buf := buffer.New()
	_, err := producer.Encode(buf, 0, abc{A: 1, B: 2, C: 99})
	require.NoError(t, err)

	consumer := abSchema()
	var cursor int64
	v, err := consumer.Decode(buf, &cursor)
	require.NoError(t, err)
	require.Equal(t, ab{A: 1, B: 2}, v)
}

func TestObject_GapIndexDefaultsOnDecode(t *testing.T) {
	type sparse struct {
		Zero int32
		Five int32
	}

	s := NewObjectSchema(
		ObjectFieldOf(0, func(v sparse) int32 { return v.Zero }, func(v *sparse, f int32) { v.Zero = f }, codec.EncodeInt32, codec.DecodeInt32),
		ObjectFieldOf(5, func(v sparse) int32 { return v.Five }, func(v *sparse, f int32) { v.Five = f }, codec.EncodeInt32, codec.DecodeInt32),
	)

	buf := buffer.New()
	_, err := s.Encode(buf, 0, sparse{Zero: 7, Five: 9})
	require.NoError(t, err)

	var cursor int64
	v, err := s.Decode(buf, &cursor)
	require.NoError(t, err)
	require.Equal(t, sparse{Zero: 7, Five: 9}, v)
}

func TestObject_NullableAbsent(t *testing.T) {
	buf := buffer.New()
	s := abSchema()
	n, err := s.EncodeNullable(buf, 0, nil)
	require.NoError(t, err)
	require.Equal(t, 4, n)
	require.Equal(t, []byte{0xFF, 0xFF, 0xFF, 0xFF}, buf.Bytes())

	var cursor int64
	v, err := s.DecodeNullable(buf, &cursor)
	require.NoError(t, err)
	require.Nil(t, v)
	require.Equal(t, int64(4), cursor)
}

func TestObject_NullablePresent(t *testing.T) {
	buf := buffer.New()
	s := abSchema()
	val := ab{A: 1, B: 2}
	n, err := s.EncodeNullable(buf, 0, &val)
	require.NoError(t, err)
	require.Equal(t, 28, n)

	var cursor int64
	v, err := s.DecodeNullable(buf, &cursor)
	require.NoError(t, err)
	require.Equal(t, &val, v)
}

func TestObject_RequiredNegativeByteSizeIsInvalid(t *testing.T) {
	buf := buffer.New()
	_, err := codec.EncodeInt32(buf, 0, -1)
	require.NoError(t, err)

	s := abSchema()
	var cursor int64
	_, err = s.Decode(buf, &cursor)
	require.ErrorIs(t, err, errs.ErrInvalidBinary)
}

func TestObject_ByteSizeBelowNegativeOneIsInvalid(t *testing.T) {
	buf := buffer.New()
	_, err := codec.EncodeInt32(buf, 0, -5)
	require.NoError(t, err)

	s := abSchema()
	var cursor int64
	_, err = s.DecodeNullable(buf, &cursor)
	require.ErrorIs(t, err, errs.ErrInvalidBinary)
}

func TestObject_DuplicateIndexPanics(t *testing.T) {
	require.Panics(t, func() {
		NewObjectSchema(
			ObjectFieldOf(0, func(v ab) int32 { return v.A }, func(v *ab, f int32) { v.A = f }, codec.EncodeInt32, codec.DecodeInt32),
			ObjectFieldOf(0, func(v ab) int32 { return int32(v.B) }, func(v *ab, f int32) { v.B = int64(f) }, codec.EncodeInt32, codec.DecodeInt32),
		)
	})
}
