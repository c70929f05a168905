package schema

import (
	"fmt"

	"github.com/zfmt-go/zfmt/buffer"
	"github.com/zfmt-go/zfmt/codec"
	"github.com/zfmt-go/zfmt/errs"
)

// UnionCase binds one discriminant key value of a union over T to the codec
// for the payload that key carries.
type UnionCase[K comparable, T any] struct {
	Key    K
	encode func(buf *buffer.Buffer, offset int64, v T) (int, error)
	decode func(buf *buffer.Buffer, cursor *int64) (T, error)
}

// UnionCaseOf constructs a UnionCase. The encode/decode pair is usually a
// closure over a case-specific payload type boxed into T (e.g. via a sum type
// or an interface), matching however the caller models its variants.
func UnionCaseOf[K comparable, T any](key K, encode func(*buffer.Buffer, int64, T) (int, error), decode func(*buffer.Buffer, *int64) (T, error)) UnionCase[K, T] {
	return UnionCase[K, T]{Key: key, encode: encode, decode: decode}
}

// UnionSchema is the tagged-union shape: a byte-size header, a discriminant
// key of type K (int8/16/32/64 keys are all supported — the wire width is
// fixed by whichever Encode* the caller uses for K), and the active case's
// payload.
type UnionSchema[K comparable, T any] struct {
	cases      []UnionCase[K, T]
	encodeKey  codec.Encoder[K]
	decodeKey  codec.Decoder[K]
	selectCase func(T) K
}

// NewUnionSchema builds a UnionSchema. selectCase must return the key
// identifying which case a given value of T represents. Duplicate case keys
// panic, since a schema with two cases sharing a key can never decode
// unambiguously.
func NewUnionSchema[K comparable, T any](encodeKey codec.Encoder[K], decodeKey codec.Decoder[K], selectCase func(T) K, cases ...UnionCase[K, T]) *UnionSchema[K, T] {
	seen := make(map[K]struct{}, len(cases))
	for _, c := range cases {
		if _, dup := seen[c.Key]; dup {
			panic(fmt.Errorf("%w: key %v", errs.ErrDuplicateKey, c.Key))
		}
		seen[c.Key] = struct{}{}
	}

	return &UnionSchema[K, T]{cases: cases, encodeKey: encodeKey, decodeKey: decodeKey, selectCase: selectCase}
}

// Encode writes the byte-size header, the active case's key, and its payload,
// then backfills the byte-size. The active case is chosen by selectCase(v).
func (s *UnionSchema[K, T]) Encode(buf *buffer.Buffer, offset int64, v T) (int, error) {
	key := s.selectCase(v)

	active, err := s.find(key, offset)
	if err != nil {
		return 0, err
	}

	cursor := offset + 4
	nKey, err := s.encodeKey(buf, cursor, key)
	if err != nil {
		return 0, err
	}
	cursor += int64(nKey)

	nPayload, err := active.encode(buf, cursor, v)
	if err != nil {
		return 0, err
	}
	cursor += int64(nPayload)

	byteSize := cursor - offset
	if _, err := codec.EncodeInt32(buf, offset, int32(byteSize)); err != nil {
		return 0, err
	}

	if err := buf.Seek(offset + byteSize); err != nil {
		return 0, err
	}

	return int(byteSize), nil
}

// EncodeNullable writes the -1 byte-size sentinel when v is nil, or delegates
// to Encode otherwise.
func (s *UnionSchema[K, T]) EncodeNullable(buf *buffer.Buffer, offset int64, v *T) (int, error) {
	if v == nil {
		return codec.EncodeInt32(buf, offset, -1)
	}

	return s.Encode(buf, offset, *v)
}

// Decode validates the byte-size header, reads the key, and dispatches to the
// matching case's decoder. An unmatched key fails as invalid binary.
func (s *UnionSchema[K, T]) Decode(buf *buffer.Buffer, cursor *int64) (T, error) {
	startOffset := *cursor

	byteSize, err := codec.DecodeInt32(buf, cursor)
	if err != nil {
		var zero T
		return zero, err
	}
	if byteSize < 0 {
		var zero T
		return zero, errs.NewInvalidBinary(startOffset, "required union has negative byte-size")
	}

	return s.decodeBody(buf, cursor, startOffset, byteSize)
}

// DecodeNullable reads the byte-size header and returns nil if it is the -1
// sentinel; otherwise it decodes the full union.
func (s *UnionSchema[K, T]) DecodeNullable(buf *buffer.Buffer, cursor *int64) (*T, error) {
	startOffset := *cursor

	byteSize, present, err := codec.CheckNonNull(buf, cursor)
	if err != nil {
		return nil, err
	}
	if !present {
		return nil, nil
	}

	v, err := s.decodeBody(buf, cursor, startOffset, byteSize)
	if err != nil {
		return nil, err
	}

	return &v, nil
}

func (s *UnionSchema[K, T]) decodeBody(buf *buffer.Buffer, cursor *int64, startOffset int64, byteSize int32) (T, error) {
	keyOffset := *cursor

	key, err := s.decodeKey(buf, cursor)
	if err != nil {
		var zero T
		return zero, err
	}

	active, err := s.find(key, keyOffset)
	if err != nil {
		var zero T
		return zero, err
	}

	v, err := active.decode(buf, cursor)
	if err != nil {
		var zero T
		return zero, err
	}

	if err := buf.Seek(startOffset + int64(byteSize)); err != nil {
		var zero T
		return zero, err
	}
	*cursor = startOffset + int64(byteSize)

	return v, nil
}

func (s *UnionSchema[K, T]) find(key K, offset int64) (*UnionCase[K, T], error) {
	for i := range s.cases {
		if s.cases[i].Key == key {
			return &s.cases[i], nil
		}
	}

	return nil, errs.NewInvalidBinary(offset, fmt.Sprintf("union key %v does not match any declared case", key))
}
