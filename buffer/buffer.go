// Package buffer implements the random-access byte buffer every zfmt codec is
// layered on: absolute seek, typed little-endian primitive read/write, and a
// movable cursor.
//
// A Buffer is the only mutable state any codec in this module touches — there is
// no global state anywhere else. A serializer always seeks to its target offset
// before writing and a deserializer always seeks before reading; no operation
// assumes the cursor already sits where the caller wants it, because Object
// encoding writes its offset table and its field payloads out of order (the table
// entry for index 0 is written, then the cursor jumps forward to the first
// payload, then back to the table for index 1, and so on).
//
// Buffer is not safe for concurrent use: exactly one goroutine may touch a given
// Buffer at a time, matching the single-threaded-per-buffer resource model the
// whole codec is built on.
package buffer

import (
	"io"
	"math"

	"github.com/zfmt-go/zfmt/endian"
	"github.com/zfmt-go/zfmt/errs"
	"github.com/zfmt-go/zfmt/internal/options"
)

const (
	defaultGrowChunk = 4096                  // small buffers grow by this many bytes at a time
	growThreshold    = 4 * defaultGrowChunk // above this capacity, grow by 25% instead
)

// engine is the byte-order engine every Buffer uses. Stage-1 fixes little-endian
// as the only wire byte order, so this is never configurable per-Buffer.
var engine = endian.GetLittleEndianEngine()

// Buffer is a growable, seekable, little-endian byte buffer.
type Buffer struct {
	data []byte
	pos  int64
}

// Option configures a Buffer at construction time.
type Option = options.Option[*Buffer]

// WithInitialCapacity pre-allocates cap bytes of backing storage, avoiding
// reallocation for callers who know their payload size up front.
func WithInitialCapacity(cap int) Option {
	return options.NoError(func(b *Buffer) {
		if cap > 0 {
			b.data = make([]byte, 0, cap)
		}
	})
}

// New creates an empty Buffer ready for encoding at offset 0.
func New(opts ...Option) *Buffer {
	b := &Buffer{}
	_ = options.Apply(b, opts...) // the options above never fail

	return b
}

// NewFromBytes wraps an existing byte slice for decoding. The slice is used
// directly, not copied; the caller must not mutate it while decoding is in
// progress.
func NewFromBytes(data []byte) *Buffer {
	return &Buffer{data: data}
}

// Bytes returns the buffer's contents. The returned slice is valid until the next
// write that grows the buffer.
func (b *Buffer) Bytes() []byte { return b.data }

// Len returns the number of bytes currently allocated in the buffer (the
// high-water mark of positions written or wrapped, not the cursor position).
func (b *Buffer) Len() int { return len(b.data) }

// Pos returns the current cursor position.
func (b *Buffer) Pos() int64 { return b.pos }

// Remaining returns the number of bytes available to read from the current
// cursor position to the end of the buffer.
func (b *Buffer) Remaining() int64 {
	r := int64(len(b.data)) - b.pos
	if r < 0 {
		return 0
	}

	return r
}

// Seek moves the cursor to an absolute offset. offset must be non-negative;
// seeking past the end of the buffer is legal (a subsequent write grows the
// buffer to reach it) but a subsequent read at that position fails.
func (b *Buffer) Seek(offset int64) error {
	if offset < 0 {
		return errs.NewInvalidBinary(offset, "negative seek offset")
	}

	b.pos = offset

	return nil
}

// ensureLen grows the backing array so that len(b.data) >= minLen, zero-filling
// any newly exposed bytes. Small buffers grow by a fixed chunk; large buffers
// grow by 25% of their current capacity, amortizing reallocation cost the same
// way a repeatedly-appended-to buffer does.
func (b *Buffer) ensureLen(minLen int64) {
	if minLen <= int64(len(b.data)) {
		return
	}

	if minLen <= int64(cap(b.data)) {
		old := len(b.data)
		b.data = b.data[:minLen]
		clear(b.data[old:])

		return
	}

	newCap := int64(cap(b.data))
	if newCap == 0 {
		newCap = defaultGrowChunk
	}
	for newCap < minLen {
		if newCap > growThreshold {
			newCap += newCap / 4
		} else {
			newCap += defaultGrowChunk
		}
	}

	newData := make([]byte, minLen, newCap)
	copy(newData, b.data)
	b.data = newData
}

// WriteUint8 writes v at the cursor, advances the cursor by 1, and returns 1.
func (b *Buffer) WriteUint8(v uint8) int {
	b.ensureLen(b.pos + 1)
	b.data[b.pos] = v
	b.pos++

	return 1
}

// WriteInt8 writes v at the cursor, advances the cursor by 1, and returns 1.
func (b *Buffer) WriteInt8(v int8) int { return b.WriteUint8(uint8(v)) }

// WriteBool writes 0x01 for true or 0x00 for false, advances the cursor by 1,
// and returns 1.
func (b *Buffer) WriteBool(v bool) int {
	if v {
		return b.WriteUint8(0x01)
	}

	return b.WriteUint8(0x00)
}

// WriteUint16 writes v little-endian at the cursor, advances the cursor by 2,
// and returns 2.
func (b *Buffer) WriteUint16(v uint16) int {
	b.ensureLen(b.pos + 2)
	engine.PutUint16(b.data[b.pos:], v)
	b.pos += 2

	return 2
}

// WriteInt16 writes v little-endian at the cursor, advances the cursor by 2, and
// returns 2.
func (b *Buffer) WriteInt16(v int16) int { return b.WriteUint16(uint16(v)) }

// WriteUint32 writes v little-endian at the cursor, advances the cursor by 4,
// and returns 4.
func (b *Buffer) WriteUint32(v uint32) int {
	b.ensureLen(b.pos + 4)
	engine.PutUint32(b.data[b.pos:], v)
	b.pos += 4

	return 4
}

// WriteInt32 writes v little-endian at the cursor, advances the cursor by 4, and
// returns 4.
func (b *Buffer) WriteInt32(v int32) int { return b.WriteUint32(uint32(v)) }

// WriteUint64 writes v little-endian at the cursor, advances the cursor by 8,
// and returns 8.
func (b *Buffer) WriteUint64(v uint64) int {
	b.ensureLen(b.pos + 8)
	engine.PutUint64(b.data[b.pos:], v)
	b.pos += 8

	return 8
}

// WriteInt64 writes v little-endian at the cursor, advances the cursor by 8, and
// returns 8.
func (b *Buffer) WriteInt64(v int64) int { return b.WriteUint64(uint64(v)) }

// WriteFloat32 writes v's IEEE-754 bit pattern little-endian at the cursor,
// advances the cursor by 4, and returns 4.
func (b *Buffer) WriteFloat32(v float32) int { return b.WriteUint32(math.Float32bits(v)) }

// WriteFloat64 writes v's IEEE-754 bit pattern little-endian at the cursor,
// advances the cursor by 8, and returns 8.
func (b *Buffer) WriteFloat64(v float64) int { return b.WriteUint64(math.Float64bits(v)) }

// WriteBytes copies p at the cursor, advances the cursor by len(p), and returns
// len(p).
func (b *Buffer) WriteBytes(p []byte) int {
	b.ensureLen(b.pos + int64(len(p)))
	copy(b.data[b.pos:], p)
	b.pos += int64(len(p))

	return len(p)
}

func (b *Buffer) checkReadable(n int64, op string) error {
	if n < 0 {
		return errs.NewInvalidBinary(b.pos, "negative read length")
	}
	if b.pos+n > int64(len(b.data)) {
		return errs.NewIO(op, io.ErrUnexpectedEOF)
	}

	return nil
}

// ReadUint8 reads one byte at the cursor and advances the cursor by 1.
func (b *Buffer) ReadUint8() (uint8, error) {
	if err := b.checkReadable(1, "read uint8"); err != nil {
		return 0, err
	}
	v := b.data[b.pos]
	b.pos++

	return v, nil
}

// ReadInt8 reads one byte at the cursor and advances the cursor by 1.
func (b *Buffer) ReadInt8() (int8, error) {
	v, err := b.ReadUint8()
	return int8(v), err
}

// ReadBool reads one byte at the cursor and advances the cursor by 1. Only
// 0x01 decodes to true; every other byte value, including other nonzero bytes,
// decodes to false (strict decode, matching the original implementation).
func (b *Buffer) ReadBool() (bool, error) {
	v, err := b.ReadUint8()
	if err != nil {
		return false, err
	}

	return v == 0x01, nil
}

// ReadUint16 reads a little-endian uint16 at the cursor and advances the cursor
// by 2.
func (b *Buffer) ReadUint16() (uint16, error) {
	if err := b.checkReadable(2, "read uint16"); err != nil {
		return 0, err
	}
	v := engine.Uint16(b.data[b.pos:])
	b.pos += 2

	return v, nil
}

// ReadInt16 reads a little-endian int16 at the cursor and advances the cursor by
// 2.
func (b *Buffer) ReadInt16() (int16, error) {
	v, err := b.ReadUint16()
	return int16(v), err
}

// ReadUint32 reads a little-endian uint32 at the cursor and advances the cursor
// by 4.
func (b *Buffer) ReadUint32() (uint32, error) {
	if err := b.checkReadable(4, "read uint32"); err != nil {
		return 0, err
	}
	v := engine.Uint32(b.data[b.pos:])
	b.pos += 4

	return v, nil
}

// ReadInt32 reads a little-endian int32 at the cursor and advances the cursor by
// 4.
func (b *Buffer) ReadInt32() (int32, error) {
	v, err := b.ReadUint32()
	return int32(v), err
}

// ReadUint64 reads a little-endian uint64 at the cursor and advances the cursor
// by 8.
func (b *Buffer) ReadUint64() (uint64, error) {
	if err := b.checkReadable(8, "read uint64"); err != nil {
		return 0, err
	}
	v := engine.Uint64(b.data[b.pos:])
	b.pos += 8

	return v, nil
}

// ReadInt64 reads a little-endian int64 at the cursor and advances the cursor by
// 8.
func (b *Buffer) ReadInt64() (int64, error) {
	v, err := b.ReadUint64()
	return int64(v), err
}

// ReadFloat32 reads a little-endian IEEE-754 float32 at the cursor and advances
// the cursor by 4.
func (b *Buffer) ReadFloat32() (float32, error) {
	v, err := b.ReadUint32()
	return math.Float32frombits(v), err
}

// ReadFloat64 reads a little-endian IEEE-754 float64 at the cursor and advances
// the cursor by 8.
func (b *Buffer) ReadFloat64() (float64, error) {
	v, err := b.ReadUint64()
	return math.Float64frombits(v), err
}

// ReadBytes reads exactly n bytes at the cursor into a freshly allocated slice
// and advances the cursor by n. It fails if n is negative or would read past the
// end of the buffer.
func (b *Buffer) ReadBytes(n int) ([]byte, error) {
	if err := b.checkReadable(int64(n), "read bytes"); err != nil {
		return nil, err
	}

	out := make([]byte, n)
	copy(out, b.data[b.pos:b.pos+int64(n)])
	b.pos += int64(n)

	return out, nil
}

// ReadInto fills dst completely from the cursor and advances the cursor by
// len(dst), without allocating. Callers who already own scratch space (e.g. a
// pooled slice) should prefer this over ReadBytes.
func (b *Buffer) ReadInto(dst []byte) error {
	n := int64(len(dst))
	if err := b.checkReadable(n, "read bytes"); err != nil {
		return err
	}

	copy(dst, b.data[b.pos:b.pos+n])
	b.pos += n

	return nil
}
