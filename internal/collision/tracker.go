// Package collision detects duplicate field indices and union case keys at
// schema-construction time.
//
// An Object schema must not declare the same field index twice (the field-offset
// table has exactly one slot per index) and a Union schema must not declare two
// cases sharing the same discriminant key (the key must uniquely select a case on
// decode). Both are programmer errors in the schema descriptor, not wire-format
// errors, so they are caught once, when the schema is built, rather than on every
// encode/decode call.
package collision

import "github.com/zfmt-go/zfmt/errs"

// IndexTracker tracks a set of int64-valued keys (field indices or union case
// keys) and reports whether a key has already been claimed.
type IndexTracker struct {
	seen map[int64]struct{}
}

// NewIndexTracker creates an empty tracker.
func NewIndexTracker() *IndexTracker {
	return &IndexTracker{seen: make(map[int64]struct{})}
}

// Claim registers key, returning dupErr if key has already been claimed.
func (t *IndexTracker) Claim(key int64, dupErr error) error {
	if _, exists := t.seen[key]; exists {
		return dupErr
	}

	t.seen[key] = struct{}{}

	return nil
}

// ClaimIndex registers a field index, returning errs.ErrDuplicateIndex on
// collision.
func (t *IndexTracker) ClaimIndex(index int64) error {
	return t.Claim(index, errs.ErrDuplicateIndex)
}

// ClaimKey registers a union case key, returning errs.ErrDuplicateKey on
// collision.
func (t *IndexTracker) ClaimKey(key int64) error {
	return t.Claim(key, errs.ErrDuplicateKey)
}

// Count returns the number of distinct keys claimed so far.
func (t *IndexTracker) Count() int {
	return len(t.seen)
}
