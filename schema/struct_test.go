package schema

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zfmt-go/zfmt/buffer"
	"github.com/zfmt-go/zfmt/codec"
)

type point struct {
	X int32
	Y int32
}

func pointSchema() *StructSchema[point] {
	return NewStructSchema(
		Field(func(p point) int32 { return p.X }, func(p *point, v int32) { p.X = v }, codec.EncodeInt32, codec.DecodeInt32),
		Field(func(p point) int32 { return p.Y }, func(p *point, v int32) { p.Y = v }, codec.EncodeInt32, codec.DecodeInt32),
	)
}

func TestStruct_SequentialConcatenation(t *testing.T) {
	buf := buffer.New()
	s := pointSchema()
	n, err := s.Encode(buf, 0, point{X: 3, Y: 4})
	require.NoError(t, err)
	require.Equal(t, 8, n)
	require.Equal(t, []byte{3, 0, 0, 0, 4, 0, 0, 0}, buf.Bytes())

	var cursor int64
	v, err := s.Decode(buf, &cursor)
	require.NoError(t, err)
	require.Equal(t, point{X: 3, Y: 4}, v)
	require.Equal(t, int64(8), cursor)
}

func TestStruct_NullablePresent(t *testing.T) {
	buf := buffer.New()
	s := pointSchema()
	p := &point{X: 1, Y: 2}
	n, err := s.EncodeNullable(buf, 0, p)
	require.NoError(t, err)
	require.Equal(t, 9, n)

	var cursor int64
	got, err := s.DecodeNullable(buf, &cursor)
	require.NoError(t, err)
	require.Equal(t, p, got)
}

func TestStruct_NullableAbsent(t *testing.T) {
	buf := buffer.New()
	s := pointSchema()
	n, err := s.EncodeNullable(buf, 0, nil)
	require.NoError(t, err)
	require.Equal(t, 1, n)

	var cursor int64
	got, err := s.DecodeNullable(buf, &cursor)
	require.NoError(t, err)
	require.Nil(t, got)
}
