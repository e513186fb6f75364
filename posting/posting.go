// Package posting implements the delta-encoded posting list format and
// the stable multi-key sort that orders postings before encoding.
//
// A posting is a (doc_id, content_freq, title_freq) triple belonging to
// one indexed term. An encoded posting list is a flat concatenation of
// 3*N varints (see the varint package): for each posting in order, the
// doc_id delta against the previous posting's doc_id, then content_freq,
// then title_freq, both encoded raw. There is no length prefix, framing,
// or magic byte anywhere in the wire format.
package posting

import (
	"fmt"

	"github.com/nilsson-labs/postcodec/errs"
	"github.com/nilsson-labs/postcodec/internal/pool"
	"github.com/nilsson-labs/postcodec/varint"
)

// Posting is one (doc_id, content_freq, title_freq) triple. All three
// fields are 64-bit unsigned — wide enough to hold values well beyond
// 32 bits, per spec.md §3 — so a Posting built through New or FromInts
// can never itself hold a negative value; validation only needs to
// happen once, at construction.
type Posting struct {
	DocID       uint64
	ContentFreq uint64
	TitleFreq   uint64
}

// New builds a Posting directly from already-non-negative components.
// It never fails: Go's uint64 type enforces the "non-negative" invariant
// statically, so there is nothing left to validate at this layer.
func New(docID, contentFreq, titleFreq uint64) Posting {
	return Posting{DocID: docID, ContentFreq: contentFreq, TitleFreq: titleFreq}
}

// FromInts builds a Posting from the signed-integer triple a host
// binding would typically hand across an embedding boundary (JSON,
// cgo, a scripting-language tuple). It is the one place arity and sign
// are checked at runtime, since Go's type system can't enforce either
// property on a bare []int64.
//
// fields must have exactly 3 elements (doc_id, content_freq, title_freq)
// or FromInts fails with an error whose message contains "3 integers",
// matching spec.md §7. Any negative element fails with ErrNegativeInteger.
func FromInts(fields []int64) (Posting, error) {
	if len(fields) != 3 {
		return Posting{}, fmt.Errorf("%w: got %d, want 3 integers", errs.ErrInvalidPostingArity, len(fields))
	}

	for _, v := range fields {
		if v < 0 {
			return Posting{}, fmt.Errorf("%w: posting field %d must be non-negative", errs.ErrNegativeInteger, v)
		}
	}

	return New(uint64(fields[0]), uint64(fields[1]), uint64(fields[2])), nil
}

// EncodePostingList serializes postings into the delta-encoded wire
// format described in the package doc comment.
//
// If assumeSorted is false, postings are stably sorted first using the
// comparator parsed from sortKeys (DefaultSortKeys if sortKeys is
// empty); the input slice itself is left untouched — encoding operates
// on a copy, so this call never mutates memory the caller still owns.
//
// If assumeSorted is true, sortKeys is still parsed for validation (an
// implementer is allowed to skip this — see DESIGN.md's Open Questions
// resolution — but this implementation validates unconditionally) and
// then discarded: the input order is preserved verbatim.
//
// An empty postings slice encodes to an empty (non-nil) byte slice.
func EncodePostingList(postings []Posting, assumeSorted bool, sortKeys string) ([]byte, error) {
	if len(postings) == 0 {
		return []byte{}, nil
	}

	working := postings

	if assumeSorted {
		if sortKeys != "" {
			if _, err := ParseSortKeys(sortKeys); err != nil {
				return nil, err
			}
		}
	} else {
		keys := sortKeys
		if keys == "" {
			keys = DefaultSortKeys
		}

		parsed, err := ParseSortKeys(keys)
		if err != nil {
			return nil, err
		}

		working = append(make([]Posting, 0, len(postings)), postings...)
		stableSort(working, parsed)
	}

	buf := pool.Get(len(working))
	defer pool.Put(buf)

	var prevDocID uint64
	for _, p := range working {
		buf.B = varint.Encode(buf.B, p.DocID-prevDocID)
		buf.B = varint.Encode(buf.B, p.ContentFreq)
		buf.B = varint.Encode(buf.B, p.TitleFreq)
		prevDocID = p.DocID
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	return out, nil
}

// DecodePostingList parses data produced by EncodePostingList (or any
// conforming encoder) back into the sequence of postings it represents.
// Decoding never sorts, deduplicates, or otherwise reorders: it is the
// algebraic inverse of encoding under modular 64-bit arithmetic.
//
// An empty buffer decodes to an empty (non-nil) slice. A buffer that
// ends in the middle of a (doc_id, content_freq, title_freq) triple
// fails with a wrapped decode error.
func DecodePostingList(data []byte) ([]Posting, error) {
	if len(data) == 0 {
		return []Posting{}, nil
	}

	postings := make([]Posting, 0, len(data)/3+1)

	pos := 0
	var prevDocID uint64

	for pos < len(data) {
		delta, next, err := varint.Decode(data, pos)
		if err != nil {
			return nil, err
		}
		pos = next

		contentFreq, next, err := varint.Decode(data, pos)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", errs.ErrTrailingBytes, err)
		}
		pos = next

		titleFreq, next, err := varint.Decode(data, pos)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", errs.ErrTrailingBytes, err)
		}
		pos = next

		docID := prevDocID + delta
		postings = append(postings, Posting{DocID: docID, ContentFreq: contentFreq, TitleFreq: titleFreq})
		prevDocID = docID
	}

	return postings, nil
}
