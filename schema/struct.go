package schema

import (
	"github.com/zfmt-go/zfmt/buffer"
	"github.com/zfmt-go/zfmt/codec"
)

// StructField binds one field of T to its codec: Encode writes the field's
// current value, Decode reads a value and stores it into *T. Build one with
// Field; a StructSchema is just an ordered list of these.
type StructField[T any] struct {
	Encode func(buf *buffer.Buffer, offset int64, v T) (int, error)
	Decode func(buf *buffer.Buffer, cursor *int64, out *T) error
}

// Field constructs a StructField from a getter, a setter, and the field
// type's own codec. F is almost always inferred from encode/decode.
func Field[T, F any](get func(T) F, set func(*T, F), encode func(*buffer.Buffer, int64, F) (int, error), decode func(*buffer.Buffer, *int64) (F, error)) StructField[T] {
	return StructField[T]{
		Encode: func(buf *buffer.Buffer, offset int64, v T) (int, error) {
			return encode(buf, offset, get(v))
		},
		Decode: func(buf *buffer.Buffer, cursor *int64, out *T) error {
			f, err := decode(buf, cursor)
			if err != nil {
				return err
			}
			set(out, f)

			return nil
		},
	}
}

// StructSchema is the sequential concatenation of fields in declaration
// order: no byte-size header, no offset table, no versioning. Reordering,
// adding, or removing fields breaks wire compatibility — use an ObjectSchema
// when evolution needs to be tolerated.
type StructSchema[T any] struct {
	Fields []StructField[T]
}

// NewStructSchema builds a StructSchema from its fields in declaration order.
func NewStructSchema[T any](fields ...StructField[T]) *StructSchema[T] {
	return &StructSchema[T]{Fields: fields}
}

// Encode writes each field in declaration order starting at offset, with no
// gaps or padding between them, and returns the total bytes written.
func (s *StructSchema[T]) Encode(buf *buffer.Buffer, offset int64, v T) (int, error) {
	cursor := offset
	for _, f := range s.Fields {
		w, err := f.Encode(buf, cursor, v)
		if err != nil {
			return 0, err
		}
		cursor += int64(w)
	}

	return int(cursor - offset), nil
}

// Decode reads each field in declaration order starting at *cursor, advancing
// it past each field in turn.
func (s *StructSchema[T]) Decode(buf *buffer.Buffer, cursor *int64) (T, error) {
	var out T
	for _, f := range s.Fields {
		if err := f.Decode(buf, cursor, &out); err != nil {
			var zero T
			return zero, err
		}
	}

	return out, nil
}

// EncodeNullable writes the one-byte present/absent flag followed by the
// struct's fields when v is non-nil.
func (s *StructSchema[T]) EncodeNullable(buf *buffer.Buffer, offset int64, v *T) (int, error) {
	if v == nil {
		return codec.EncodeBool(buf, offset, false)
	}

	n1, err := codec.EncodeBool(buf, offset, true)
	if err != nil {
		return 0, err
	}

	n2, err := s.Encode(buf, offset+int64(n1), *v)
	if err != nil {
		return 0, err
	}

	return n1 + n2, nil
}

// DecodeNullable reads the one-byte present/absent flag, then the struct's
// fields if present.
func (s *StructSchema[T]) DecodeNullable(buf *buffer.Buffer, cursor *int64) (*T, error) {
	present, err := codec.DecodeBool(buf, cursor)
	if err != nil {
		return nil, err
	}
	if !present {
		return nil, nil
	}

	v, err := s.Decode(buf, cursor)
	if err != nil {
		return nil, err
	}

	return &v, nil
}
