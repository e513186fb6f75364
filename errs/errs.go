// Package errs defines the sentinel errors returned by the postcodec core.
//
// Every failure in the core is one of two kinds: an invalid argument
// rejected before any work is done, or a decode error raised while
// parsing a byte buffer. Callers should use errors.Is against the
// sentinels below rather than matching on error text, though the text
// is stable for the cases the spec pins down (e.g. the arity error
// always contains "3 integers").
package errs

import "errors"

var (
	// ErrNegativeInteger is returned when a value that must be
	// non-negative (a varint input, or a posting field) is negative.
	ErrNegativeInteger = errors.New("value must be non-negative")

	// ErrInvalidPostingArity is returned when a posting is not a
	// 3-tuple of (doc_id, content_freq, title_freq).
	ErrInvalidPostingArity = errors.New("posting must have 3 integers")

	// ErrInvalidSortKeys is returned when a sort-keys string does not
	// match the "(k1, k2, ...)" grammar.
	ErrInvalidSortKeys = errors.New("invalid sort-keys string")

	// ErrTruncatedVarint is returned when a varint's continuation byte
	// is never terminated before the buffer ends.
	ErrTruncatedVarint = errors.New("truncated varint")

	// ErrOverlongVarint is returned when a varint reads more
	// continuation bytes than any 64-bit value requires.
	ErrOverlongVarint = errors.New("overlong varint")

	// ErrTrailingBytes is returned when a posting list buffer ends in
	// the middle of a (doc_id, content_freq, title_freq) triple.
	ErrTrailingBytes = errors.New("posting list ends mid-triple")
)
