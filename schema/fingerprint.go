package schema

import (
	"fmt"
	"strings"

	"github.com/zfmt-go/zfmt/internal/hash"
)

// Fingerprint returns a deterministic, non-wire identifier for an ObjectSchema's
// shape: its last index and the declared field indices in declaration order. Two
// schemas with the same fingerprint declare the same field-index layout; this
// is purely a diagnostic aid (schema registries, mismatch logging) and is
// never read from or written to the wire.
func (s *ObjectSchema[T]) Fingerprint() uint64 {
	var b strings.Builder
	fmt.Fprintf(&b, "object/last=%d/fields=", s.lastIndex)
	for _, f := range s.fields {
		fmt.Fprintf(&b, "%d,", f.Index)
	}

	return hash.ID(b.String())
}

// Fingerprint returns a deterministic, non-wire identifier for a UnionSchema's
// shape: the declared case keys in declaration order.
func (s *UnionSchema[K, T]) Fingerprint() uint64 {
	var b strings.Builder
	b.WriteString("union/keys=")
	for _, c := range s.cases {
		fmt.Fprintf(&b, "%v,", c.Key)
	}

	return hash.ID(b.String())
}
