package collision

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zfmt-go/zfmt/errs"
)

func TestIndexTracker_ClaimIndex(t *testing.T) {
	tr := NewIndexTracker()
	require.NoError(t, tr.ClaimIndex(0))
	require.NoError(t, tr.ClaimIndex(1))
	require.ErrorIs(t, tr.ClaimIndex(0), errs.ErrDuplicateIndex)
	require.Equal(t, 2, tr.Count())
}

func TestIndexTracker_ClaimKey(t *testing.T) {
	tr := NewIndexTracker()
	require.NoError(t, tr.ClaimKey(7))
	require.ErrorIs(t, tr.ClaimKey(7), errs.ErrDuplicateKey)
}

func TestIndexTracker_SharedKeyNamespace(t *testing.T) {
	// ClaimIndex and ClaimKey share the same underlying set on one tracker
	// instance, so callers must use one tracker per schema, not one tracker
	// shared across an Object schema and a Union schema.
	tr := NewIndexTracker()
	require.NoError(t, tr.ClaimIndex(5))
	require.ErrorIs(t, tr.ClaimKey(5), errs.ErrDuplicateKey)
}
