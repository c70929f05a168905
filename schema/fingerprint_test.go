package schema

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zfmt-go/zfmt/codec"
)

func TestObjectSchema_FingerprintIsDeterministic(t *testing.T) {
	s1 := abSchema()
	s2 := abSchema()
	require.Equal(t, s1.Fingerprint(), s2.Fingerprint())
}

func TestObjectSchema_FingerprintDiffersOnShapeChange(t *testing.T) {
	s1 := abSchema()
	s2 := NewObjectSchema(
		ObjectFieldOf(0, func(v ab) int32 { return v.A }, func(v *ab, f int32) { v.A = f }, codec.EncodeInt32, codec.DecodeInt32),
	)
	require.NotEqual(t, s1.Fingerprint(), s2.Fingerprint())
}

func TestUnionSchema_FingerprintIsDeterministic(t *testing.T) {
	u1 := abUnionSchema()
	u2 := abUnionSchema()
	require.Equal(t, u1.Fingerprint(), u2.Fingerprint())
}
