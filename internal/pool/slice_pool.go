// Package pool provides sync.Pool-backed scratch buffers for decoding.
//
// The string codec (decoding of a length-prefixed UTF-8 payload) needs a
// short-lived []byte to read the wire payload into before it is validated and
// copied into its final owned form. Pooling these scratch slices avoids an
// allocation per decoded string on the hot path, the same trade-off the teacher's internal/pool package makes
// for its typed int64/float64/string slices.
package pool

import "sync"

var byteSlicePool = sync.Pool{
	New: func() any { return &[]byte{} },
}

// GetByteSlice retrieves a scratch []byte of exactly size bytes from the pool.
//
// The returned slice's contents are unspecified (not zeroed). The caller must call
// the returned cleanup function, typically via defer, to return the slice to the
// pool.
func GetByteSlice(size int) ([]byte, func()) {
	ptr, _ := byteSlicePool.Get().(*[]byte)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]byte, size)
	} else {
		slice = slice[:size]
	}
	*ptr = slice

	return slice, func() { byteSlicePool.Put(ptr) }
}
