// Package schema implements the composite wire shapes layered on top of the
// codec package's primitives: sequences, tuples, sequential structs, indexed
// versioned objects, and unions. Every type here is generic over the element
// or field types it composes, following the same
//
//	func(buf *buffer.Buffer, offset int64, value T) (int, error)
//	func(buf *buffer.Buffer, cursor *int64) (T, error)
//
// Encoder/Decoder shape codec uses, so a sequence of ObjectSchema values or a
// Tuple2[int32, string] compose without any type-specific glue.
package schema

import (
	"github.com/zfmt-go/zfmt/buffer"
	"github.com/zfmt-go/zfmt/codec"
	"github.com/zfmt-go/zfmt/errs"
)

// EncodeSequence writes a 32-bit element count followed by each element
// encoded in order, at offset. It returns the total bytes written.
func EncodeSequence[T any](buf *buffer.Buffer, offset int64, values []T, encode codec.Encoder[T]) (int, error) {
	n, err := codec.EncodeInt32(buf, offset, int32(len(values)))
	if err != nil {
		return 0, err
	}

	cursor := offset + int64(n)
	for _, v := range values {
		w, err := encode(buf, cursor, v)
		if err != nil {
			return 0, err
		}
		cursor += int64(w)
	}

	return int(cursor - offset), nil
}

// DecodeSequence reads a 32-bit element count at *cursor, then decodes that
// many elements in order, advancing *cursor past each. A count of -1 decodes
// to a nil slice (the absent-sequence convention); a count below -1, or a
// count larger than the number of bytes remaining after it, fails as invalid
// binary.
func DecodeSequence[T any](buf *buffer.Buffer, cursor *int64, decode codec.Decoder[T]) ([]T, error) {
	countOffset := *cursor

	size, present, err := codec.CheckNonNull(buf, cursor)
	if err != nil {
		return nil, err
	}
	if !present {
		return nil, nil
	}
	if int64(size) > buf.Remaining() {
		return nil, errs.NewInvalidBinary(countOffset, "sequence count exceeds buffer")
	}

	count := int(size)
	values := make([]T, 0, count)
	for i := 0; i < count; i++ {
		v, err := decode(buf, cursor)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}

	return values, nil
}

// EncodeNullableSequence writes count -1 for a nil slice, or delegates to
// EncodeSequence otherwise.
func EncodeNullableSequence[T any](buf *buffer.Buffer, offset int64, values []T, encode codec.Encoder[T]) (int, error) {
	if values == nil {
		return codec.EncodeInt32(buf, offset, -1)
	}

	return EncodeSequence(buf, offset, values, encode)
}
