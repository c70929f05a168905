package codec

import (
	"time"

	"github.com/zfmt-go/zfmt/buffer"
)

// Instant is a point in time represented the way the wire format stores it:
// a signed 64-bit count of seconds since the Unix epoch plus a signed 32-bit
// nanosecond remainder, independent of any particular Go clock source.
type Instant struct {
	Seconds int64
	Nanos   int32
}

// InstantFromTime converts a time.Time to the wire Instant representation.
func InstantFromTime(t time.Time) Instant {
	return Instant{Seconds: t.Unix(), Nanos: int32(t.Nanosecond())}
}

// Time converts an Instant back to a time.Time in UTC.
func (i Instant) Time() time.Time {
	return time.Unix(i.Seconds, int64(i.Nanos)).UTC()
}

// Duration is a span of time represented as signed seconds plus a signed
// nanosecond remainder, matching Instant's layout so the two shapes share one
// codec shape.
type Duration struct {
	Seconds int64
	Nanos   int32
}

// DurationFromStd converts a time.Duration to the wire Duration representation.
func DurationFromStd(d time.Duration) Duration {
	sec := int64(d / time.Second)
	nanos := int32(d % time.Second)

	return Duration{Seconds: sec, Nanos: nanos}
}

// Std converts a Duration back to a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d.Seconds)*time.Second + time.Duration(d.Nanos)
}

// EncodeInstant writes a 12-byte [i64 seconds][i32 nanos] value at offset.
func EncodeInstant(buf *buffer.Buffer, offset int64, v Instant) (int, error) {
	if err := buf.Seek(offset); err != nil {
		return 0, err
	}

	n1 := buf.WriteInt64(v.Seconds)
	n2 := buf.WriteInt32(v.Nanos)

	return n1 + n2, nil
}

// DecodeInstant reads a 12-byte [i64 seconds][i32 nanos] value at *cursor.
func DecodeInstant(buf *buffer.Buffer, cursor *int64) (Instant, error) {
	if err := buf.Seek(*cursor); err != nil {
		return Instant{}, err
	}

	sec, err := buf.ReadInt64()
	if err != nil {
		return Instant{}, err
	}
	nanos, err := buf.ReadInt32()
	if err != nil {
		return Instant{}, err
	}
	*cursor = buf.Pos()

	return Instant{Seconds: sec, Nanos: nanos}, nil
}

// EncodeDuration writes a 12-byte [i64 seconds][i32 nanos] value at offset.
func EncodeDuration(buf *buffer.Buffer, offset int64, v Duration) (int, error) {
	return EncodeInstant(buf, offset, Instant(v))
}

// DecodeDuration reads a 12-byte [i64 seconds][i32 nanos] value at *cursor.
func DecodeDuration(buf *buffer.Buffer, cursor *int64) (Duration, error) {
	v, err := DecodeInstant(buf, cursor)
	return Duration(v), err
}
