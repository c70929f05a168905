package codec

import (
	"github.com/zfmt-go/zfmt/buffer"
	"github.com/zfmt-go/zfmt/errs"
)

// CheckNonNull reads the i32 at *cursor that precedes every composite shape
// carrying a byte-size or sequence count: a value >= 0 is returned as-is and
// *cursor advances by 4, -1 means the caller should treat the composite (or
// sequence) as absent and *cursor advances by 4, and anything below -1 fails
// as invalid binary at the offset where it was read, with *cursor left
// unchanged.
func CheckNonNull(buf *buffer.Buffer, cursor *int64) (size int32, present bool, err error) {
	before := *cursor

	n, err := DecodeInt32(buf, cursor)
	if err != nil {
		return 0, false, err
	}

	switch {
	case n >= 0:
		return n, true, nil
	case n == -1:
		return 0, false, nil
	default:
		*cursor = before
		return 0, false, errs.NewInvalidBinary(before, "byte-size or count below -1")
	}
}
