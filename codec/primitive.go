// Package codec implements the leaf wire-format codecs: fixed-width primitives,
// the length-prefixed UTF-8 string, the boolean-prefixed nullable-of-primitive
// wrapper, and the 12-byte time values. Every composite shape in the schema
// package (sequence, tuple, struct, object, union) is built by recursively
// calling into this package or into itself.
//
// Every Encode function has the shape
//
//	func(buf *buffer.Buffer, offset int64, value T) (int, error)
//
// and every Decode function has the shape
//
//	func(buf *buffer.Buffer, cursor *int64) (T, error)
//
// matching the programmatic surface described by the wire format: a serializer
// takes a target offset and returns the byte count written; a deserializer takes
// a mutable cursor, advances it by exactly the bytes consumed, and returns the
// decoded value.
package codec

import (
	"unicode/utf8"

	"github.com/zfmt-go/zfmt/buffer"
	"github.com/zfmt-go/zfmt/errs"
	"github.com/zfmt-go/zfmt/internal/pool"
)

// Encoder serializes a value of type T to buf at offset, returning the number of
// bytes written.
type Encoder[T any] func(buf *buffer.Buffer, offset int64, value T) (int, error)

// Decoder deserializes a value of type T from buf starting at *cursor, advancing
// *cursor by exactly the number of bytes consumed.
type Decoder[T any] func(buf *buffer.Buffer, cursor *int64) (T, error)

// EncodeUint8 writes v as a single byte at offset.
func EncodeUint8(buf *buffer.Buffer, offset int64, v uint8) (int, error) {
	if err := buf.Seek(offset); err != nil {
		return 0, err
	}

	return buf.WriteUint8(v), nil
}

// DecodeUint8 reads a single byte at *cursor.
func DecodeUint8(buf *buffer.Buffer, cursor *int64) (uint8, error) {
	if err := buf.Seek(*cursor); err != nil {
		return 0, err
	}

	v, err := buf.ReadUint8()
	if err != nil {
		return 0, err
	}
	*cursor = buf.Pos()

	return v, nil
}

// EncodeInt8 writes v as a single byte at offset.
func EncodeInt8(buf *buffer.Buffer, offset int64, v int8) (int, error) {
	return EncodeUint8(buf, offset, uint8(v))
}

// DecodeInt8 reads a single byte at *cursor.
func DecodeInt8(buf *buffer.Buffer, cursor *int64) (int8, error) {
	v, err := DecodeUint8(buf, cursor)
	return int8(v), err
}

// EncodeBool writes 0x01 for true or 0x00 for false at offset.
func EncodeBool(buf *buffer.Buffer, offset int64, v bool) (int, error) {
	if v {
		return EncodeUint8(buf, offset, 0x01)
	}

	return EncodeUint8(buf, offset, 0x00)
}

// DecodeBool reads one byte at *cursor. Only 0x01 decodes true; any other byte
// value, including other nonzero bytes, decodes false (strict decode).
func DecodeBool(buf *buffer.Buffer, cursor *int64) (bool, error) {
	v, err := DecodeUint8(buf, cursor)
	if err != nil {
		return false, err
	}

	return v == 0x01, nil
}

// EncodeUint16 writes v little-endian at offset.
func EncodeUint16(buf *buffer.Buffer, offset int64, v uint16) (int, error) {
	if err := buf.Seek(offset); err != nil {
		return 0, err
	}

	return buf.WriteUint16(v), nil
}

// DecodeUint16 reads a little-endian uint16 at *cursor.
func DecodeUint16(buf *buffer.Buffer, cursor *int64) (uint16, error) {
	if err := buf.Seek(*cursor); err != nil {
		return 0, err
	}

	v, err := buf.ReadUint16()
	if err != nil {
		return 0, err
	}
	*cursor = buf.Pos()

	return v, nil
}

// EncodeInt16 writes v little-endian at offset.
func EncodeInt16(buf *buffer.Buffer, offset int64, v int16) (int, error) {
	return EncodeUint16(buf, offset, uint16(v))
}

// DecodeInt16 reads a little-endian int16 at *cursor.
func DecodeInt16(buf *buffer.Buffer, cursor *int64) (int16, error) {
	v, err := DecodeUint16(buf, cursor)
	return int16(v), err
}

// EncodeUint32 writes v little-endian at offset.
func EncodeUint32(buf *buffer.Buffer, offset int64, v uint32) (int, error) {
	if err := buf.Seek(offset); err != nil {
		return 0, err
	}

	return buf.WriteUint32(v), nil
}

// DecodeUint32 reads a little-endian uint32 at *cursor.
func DecodeUint32(buf *buffer.Buffer, cursor *int64) (uint32, error) {
	if err := buf.Seek(*cursor); err != nil {
		return 0, err
	}

	v, err := buf.ReadUint32()
	if err != nil {
		return 0, err
	}
	*cursor = buf.Pos()

	return v, nil
}

// EncodeInt32 writes v little-endian at offset.
func EncodeInt32(buf *buffer.Buffer, offset int64, v int32) (int, error) {
	return EncodeUint32(buf, offset, uint32(v))
}

// DecodeInt32 reads a little-endian int32 at *cursor.
func DecodeInt32(buf *buffer.Buffer, cursor *int64) (int32, error) {
	v, err := DecodeUint32(buf, cursor)
	return int32(v), err
}

// EncodeUint64 writes v little-endian at offset.
func EncodeUint64(buf *buffer.Buffer, offset int64, v uint64) (int, error) {
	if err := buf.Seek(offset); err != nil {
		return 0, err
	}

	return buf.WriteUint64(v), nil
}

// DecodeUint64 reads a little-endian uint64 at *cursor.
func DecodeUint64(buf *buffer.Buffer, cursor *int64) (uint64, error) {
	if err := buf.Seek(*cursor); err != nil {
		return 0, err
	}

	v, err := buf.ReadUint64()
	if err != nil {
		return 0, err
	}
	*cursor = buf.Pos()

	return v, nil
}

// EncodeInt64 writes v little-endian at offset.
func EncodeInt64(buf *buffer.Buffer, offset int64, v int64) (int, error) {
	return EncodeUint64(buf, offset, uint64(v))
}

// DecodeInt64 reads a little-endian int64 at *cursor.
func DecodeInt64(buf *buffer.Buffer, cursor *int64) (int64, error) {
	v, err := DecodeUint64(buf, cursor)
	return int64(v), err
}

// EncodeFloat32 writes v's IEEE-754 bit pattern little-endian at offset.
func EncodeFloat32(buf *buffer.Buffer, offset int64, v float32) (int, error) {
	if err := buf.Seek(offset); err != nil {
		return 0, err
	}

	return buf.WriteFloat32(v), nil
}

// DecodeFloat32 reads a little-endian IEEE-754 float32 at *cursor.
func DecodeFloat32(buf *buffer.Buffer, cursor *int64) (float32, error) {
	if err := buf.Seek(*cursor); err != nil {
		return 0, err
	}

	v, err := buf.ReadFloat32()
	if err != nil {
		return 0, err
	}
	*cursor = buf.Pos()

	return v, nil
}

// EncodeFloat64 writes v's IEEE-754 bit pattern little-endian at offset.
func EncodeFloat64(buf *buffer.Buffer, offset int64, v float64) (int, error) {
	if err := buf.Seek(offset); err != nil {
		return 0, err
	}

	return buf.WriteFloat64(v), nil
}

// DecodeFloat64 reads a little-endian IEEE-754 float64 at *cursor.
func DecodeFloat64(buf *buffer.Buffer, cursor *int64) (float64, error) {
	if err := buf.Seek(*cursor); err != nil {
		return 0, err
	}

	v, err := buf.ReadFloat64()
	if err != nil {
		return 0, err
	}
	*cursor = buf.Pos()

	return v, nil
}

// EncodeString writes a 32-bit little-endian byte length followed by the UTF-8
// payload at offset, returning length+4.
func EncodeString(buf *buffer.Buffer, offset int64, v string) (int, error) {
	if err := buf.Seek(offset); err != nil {
		return 0, err
	}

	payload := []byte(v)
	n1 := buf.WriteInt32(int32(len(payload)))
	n2 := buf.WriteBytes(payload)

	return n1 + n2, nil
}

// DecodeString reads a 32-bit little-endian byte length followed by that many
// UTF-8 bytes at *cursor, advancing *cursor by length+4.
func DecodeString(buf *buffer.Buffer, cursor *int64) (string, error) {
	if err := buf.Seek(*cursor); err != nil {
		return "", err
	}

	lengthOffset := buf.Pos()
	length, err := buf.ReadInt32()
	if err != nil {
		return "", err
	}
	if length < 0 {
		return "", errs.NewInvalidBinary(lengthOffset, "negative string length")
	}
	if int64(length) > buf.Remaining() {
		return "", errs.NewInvalidBinary(lengthOffset, "string length exceeds buffer")
	}

	scratch, cleanup := pool.GetByteSlice(int(length))
	defer cleanup()

	if err := buf.ReadInto(scratch); err != nil {
		return "", err
	}
	if !utf8.Valid(scratch) {
		return "", errs.ErrInvalidUTF8
	}

	s := string(scratch)
	*cursor = buf.Pos()

	return s, nil
}
