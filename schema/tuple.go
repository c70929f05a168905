package schema

import (
	"github.com/zfmt-go/zfmt/buffer"
	"github.com/zfmt-go/zfmt/codec"
)

// Tuple2 is a positional pair of two possibly-different-typed values.
type Tuple2[A, B any] struct {
	First  A
	Second B
}

// EncodeTuple2 writes First at offset, then Second immediately after it, with
// no padding or header.
func EncodeTuple2[A, B any](buf *buffer.Buffer, offset int64, v Tuple2[A, B], encodeA codec.Encoder[A], encodeB codec.Encoder[B]) (int, error) {
	n1, err := encodeA(buf, offset, v.First)
	if err != nil {
		return 0, err
	}

	n2, err := encodeB(buf, offset+int64(n1), v.Second)
	if err != nil {
		return 0, err
	}

	return n1 + n2, nil
}

// DecodeTuple2 decodes First then Second in order, advancing *cursor past
// each.
func DecodeTuple2[A, B any](buf *buffer.Buffer, cursor *int64, decodeA codec.Decoder[A], decodeB codec.Decoder[B]) (Tuple2[A, B], error) {
	a, err := decodeA(buf, cursor)
	if err != nil {
		return Tuple2[A, B]{}, err
	}

	b, err := decodeB(buf, cursor)
	if err != nil {
		return Tuple2[A, B]{}, err
	}

	return Tuple2[A, B]{First: a, Second: b}, nil
}

// EncodeNullableTuple2 writes the one-byte present/absent flag followed by
// both elements when v is non-nil, matching the nullable-of-primitive
// convention (tuples have no byte-size header of their own).
func EncodeNullableTuple2[A, B any](buf *buffer.Buffer, offset int64, v *Tuple2[A, B], encodeA codec.Encoder[A], encodeB codec.Encoder[B]) (int, error) {
	if v == nil {
		return codec.EncodeBool(buf, offset, false)
	}

	n1, err := codec.EncodeBool(buf, offset, true)
	if err != nil {
		return 0, err
	}

	n2, err := EncodeTuple2(buf, offset+int64(n1), *v, encodeA, encodeB)
	if err != nil {
		return 0, err
	}

	return n1 + n2, nil
}

// DecodeNullableTuple2 reads the one-byte present/absent flag, then the tuple
// if present.
func DecodeNullableTuple2[A, B any](buf *buffer.Buffer, cursor *int64, decodeA codec.Decoder[A], decodeB codec.Decoder[B]) (*Tuple2[A, B], error) {
	present, err := codec.DecodeBool(buf, cursor)
	if err != nil {
		return nil, err
	}
	if !present {
		return nil, nil
	}

	v, err := DecodeTuple2(buf, cursor, decodeA, decodeB)
	if err != nil {
		return nil, err
	}

	return &v, nil
}
