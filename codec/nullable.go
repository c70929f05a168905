package codec

import "github.com/zfmt-go/zfmt/buffer"

// EncodeNullable writes the boolean-prefixed nullable-of-primitive encoding:
// [0x00] when value is nil, or [0x01][payload] when present. It returns 1 for
// absent, or 1+payload_size for present.
//
// This is the primitive nullable convention (a one-byte flag). Nullable Object
// and Union use a different convention (a -1 byte-size sentinel) — see the
// EncodeNullable/DecodeNullable methods of schema.ObjectSchema and
// schema.UnionSchema; the two conventions are
// intentionally not unified.
func EncodeNullable[T any](buf *buffer.Buffer, offset int64, value *T, encode Encoder[T]) (int, error) {
	if value == nil {
		return EncodeBool(buf, offset, false)
	}

	n1, err := EncodeBool(buf, offset, true)
	if err != nil {
		return 0, err
	}

	n2, err := encode(buf, offset+int64(n1), *value)
	if err != nil {
		return 0, err
	}

	return n1 + n2, nil
}

// DecodeNullable reads the one-byte present/absent flag at *cursor, advancing by
// 1; if present, it recursively decodes the payload with decode and returns a
// pointer to it. It returns nil for absent.
func DecodeNullable[T any](buf *buffer.Buffer, cursor *int64, decode Decoder[T]) (*T, error) {
	present, err := DecodeBool(buf, cursor)
	if err != nil {
		return nil, err
	}
	if !present {
		return nil, nil
	}

	v, err := decode(buf, cursor)
	if err != nil {
		return nil, err
	}

	return &v, nil
}
