// Package hash provides the xxHash64 digest used to fingerprint schema
// descriptors. It carries no wire-format meaning: nothing it computes is ever
// serialized. It exists purely so a caller can compare two schemas for structural
// equality before leaning on the object/union codec's version tolerance.
package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of the given string.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}
