package codec

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/zfmt-go/zfmt/buffer"
)

func TestDuration_SpecScenario(t *testing.T) {
	// Duration of 1 second, 2 nanoseconds.
	buf := buffer.New()
	n, err := EncodeDuration(buf, 0, Duration{Seconds: 1, Nanos: 2})
	require.NoError(t, err)
	require.Equal(t, 12, n)

	expected := []byte{
		0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x02, 0x00, 0x00, 0x00,
	}
	require.Equal(t, expected, buf.Bytes())

	var cursor int64
	v, err := DecodeDuration(buf, &cursor)
	require.NoError(t, err)
	require.Equal(t, Duration{Seconds: 1, Nanos: 2}, v)
	require.Equal(t, int64(12), cursor)
}

func TestInstant_RoundTrip(t *testing.T) {
	buf := buffer.New()
	_, err := EncodeInstant(buf, 0, Instant{Seconds: -5, Nanos: 999})
	require.NoError(t, err)

	var cursor int64
	v, err := DecodeInstant(buf, &cursor)
	require.NoError(t, err)
	require.Equal(t, Instant{Seconds: -5, Nanos: 999}, v)
}

func TestInstant_FromTimeRoundTrip(t *testing.T) {
	now := time.Date(2026, 7, 31, 12, 0, 0, 123000000, time.UTC)
	i := InstantFromTime(now)
	require.Equal(t, now, i.Time())
}

func TestDuration_FromStdRoundTrip(t *testing.T) {
	d := 90*time.Second + 250*time.Millisecond
	wd := DurationFromStd(d)
	require.Equal(t, d, wd.Std())
}

func TestDuration_NegativeStd(t *testing.T) {
	d := -2 * time.Second
	wd := DurationFromStd(d)
	require.Equal(t, d, wd.Std())
}
