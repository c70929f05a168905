package schema

import (
	"github.com/zfmt-go/zfmt/buffer"
	"github.com/zfmt-go/zfmt/codec"
	"github.com/zfmt-go/zfmt/errs"
	"github.com/zfmt-go/zfmt/internal/collision"
)

// ObjectField binds one indexed field of T to its codec. Index need not be
// dense — a schema may declare indices 0 and 5 with nothing in between, and
// the gap is simply zeroed on the wire.
type ObjectField[T any] struct {
	Index  int
	encode func(buf *buffer.Buffer, offset int64, v T) (int, error)
	decode func(buf *buffer.Buffer, cursor *int64, out *T) error
}

// ObjectFieldOf constructs an ObjectField at the given index from a getter, a
// setter, and the field type's own codec.
func ObjectFieldOf[T, F any](index int, get func(T) F, set func(*T, F), encode func(*buffer.Buffer, int64, F) (int, error), decode func(*buffer.Buffer, *int64) (F, error)) ObjectField[T] {
	return ObjectField[T]{
		Index: index,
		encode: func(buf *buffer.Buffer, offset int64, v T) (int, error) {
			return encode(buf, offset, get(v))
		},
		decode: func(buf *buffer.Buffer, cursor *int64, out *T) error {
			f, err := decode(buf, cursor)
			if err != nil {
				return err
			}
			set(out, f)

			return nil
		},
	}
}

// ObjectSchema is the indexed, versioned object shape: a self-describing
// byte-size header, a last-index field, a per-index absolute offset table,
// then payloads. Missing fields (gaps in the index space, or a field absent
// from an older producer's schema) decode to T's zero value for that field;
// extra fields present in the buffer but unknown to this schema are never
// visited and therefore silently ignored. This is what makes the shape
// forward- and backward-compatible, unlike StructSchema.
type ObjectSchema[T any] struct {
	lastIndex int
	fields    []ObjectField[T]
}

// NewObjectSchema builds an ObjectSchema from its fields. Fields may be given
// in any order; duplicate indices panic, since a schema with a repeated index
// is a programming error, not a wire-level failure.
func NewObjectSchema[T any](fields ...ObjectField[T]) *ObjectSchema[T] {
	tracker := collision.NewIndexTracker()
	lastIndex := -1
	for _, f := range fields {
		if err := tracker.ClaimIndex(int64(f.Index)); err != nil {
			panic(err)
		}
		if f.Index > lastIndex {
			lastIndex = f.Index
		}
	}

	return &ObjectSchema[T]{lastIndex: lastIndex, fields: fields}
}

// Encode implements the seven-step indexed-object encode algorithm: reserve
// the header (byte-size + last-index + offset table), zero every table slot,
// write each field's payload while recording its absolute offset in its slot,
// then backfill the final byte-size.
func (s *ObjectSchema[T]) Encode(buf *buffer.Buffer, offset int64, v T) (int, error) {
	headerSize := int64(8 + 4*(s.lastIndex+1))

	if err := buf.Seek(offset + 4); err != nil {
		return 0, err
	}
	buf.WriteInt32(int32(s.lastIndex))

	for i := 0; i <= s.lastIndex; i++ {
		if _, err := codec.EncodeInt32(buf, offset+8+4*int64(i), 0); err != nil {
			return 0, err
		}
	}

	byteSize := headerSize
	for _, f := range s.fields {
		slot := offset + 8 + 4*int64(f.Index)
		if _, err := codec.EncodeInt32(buf, slot, int32(offset+byteSize)); err != nil {
			return 0, err
		}

		w, err := f.encode(buf, offset+byteSize, v)
		if err != nil {
			return 0, err
		}
		byteSize += int64(w)
	}

	if _, err := codec.EncodeInt32(buf, offset, int32(byteSize)); err != nil {
		return 0, err
	}

	if err := buf.Seek(offset + byteSize); err != nil {
		return 0, err
	}

	return int(byteSize), nil
}

// EncodeNullable writes the -1 byte-size sentinel when v is nil, or delegates
// to Encode otherwise. This is the composite nullable convention, distinct
// from the one-byte flag used for nullable primitives.
func (s *ObjectSchema[T]) EncodeNullable(buf *buffer.Buffer, offset int64, v *T) (int, error) {
	if v == nil {
		return codec.EncodeInt32(buf, offset, -1)
	}

	return s.Encode(buf, offset, *v)
}

// Decode implements the five-step indexed-object decode algorithm for a
// required (non-nullable) field: byte-size must be non-negative.
func (s *ObjectSchema[T]) Decode(buf *buffer.Buffer, cursor *int64) (T, error) {
	startOffset := *cursor

	byteSize, err := codec.DecodeInt32(buf, cursor)
	if err != nil {
		var zero T
		return zero, err
	}
	if byteSize < 0 {
		var zero T
		return zero, errs.NewInvalidBinary(startOffset, "required object has negative byte-size")
	}

	return s.decodeBody(buf, cursor, startOffset, byteSize)
}

// DecodeNullable reads the byte-size header and returns nil if it is the -1
// sentinel; otherwise it decodes the full object.
func (s *ObjectSchema[T]) DecodeNullable(buf *buffer.Buffer, cursor *int64) (*T, error) {
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

func (s *ObjectSchema[T]) decodeBody(buf *buffer.Buffer, cursor *int64, startOffset int64, byteSize int32) (T, error) {
	var out T

	lastIndexCursor := startOffset + 4
	lastIndex, err := codec.DecodeInt32(buf, &lastIndexCursor)
	if err != nil {
		var zero T
		return zero, err
	}

	for _, f := range s.fields {
		if int64(f.Index) > int64(lastIndex) {
			continue // producer used an older schema without this field; out keeps its zero value
		}

		slotCursor := startOffset + 8 + 4*int64(f.Index)
		fieldOffset, err := codec.DecodeInt32(buf, &slotCursor)
		if err != nil {
			var zero T
			return zero, err
		}
		if fieldOffset == 0 {
			continue // gap: field not emitted by this producer
		}

		fieldCursor := int64(fieldOffset)
		if err := f.decode(buf, &fieldCursor, &out); err != nil {
			var zero T
			return zero, err
		}
	}

	if err := buf.Seek(startOffset + int64(byteSize)); err != nil {
		var zero T
		return zero, err
	}
	*cursor = startOffset + int64(byteSize)

	return out, nil
}
