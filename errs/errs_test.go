package errs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInvalidBinaryError_Is(t *testing.T) {
	err := NewInvalidBinary(42, "negative byte_size")
	require.True(t, errors.Is(err, ErrInvalidBinary))
	require.False(t, errors.Is(err, ErrIO))

	var target *InvalidBinaryError
	require.True(t, errors.As(err, &target))
	require.Equal(t, int64(42), target.Offset)
}

func TestIOError_Unwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := NewIO("write uint32 at offset 16", cause)
	require.True(t, errors.Is(err, ErrIO))
	require.ErrorIs(t, err, cause)
}

func TestNewIO_NilPassthrough(t *testing.T) {
	require.NoError(t, NewIO("noop", nil))
}
