// Package merge implements the k-way merge of already-encoded posting
// lists into one canonically encoded, sorted list.
//
// The implementation follows the "decode all, concatenate, sort,
// re-encode" contract literally for auditability (spec.md §4.4); any
// algorithm that produces byte-identical output — e.g. a true streaming
// k-way merge over already-sorted runs — is an equally conforming
// substitute, since the contract is defined purely in terms of the
// output byte string.
package merge

import (
	"fmt"

	"github.com/nilsson-labs/postcodec/posting"
)

// PostingLists merges encoded, each produced by posting.EncodePostingList,
// into a single encoded posting list: every input is decoded, the
// decoded postings from all inputs are concatenated, and the
// concatenation is re-encoded with assumeSorted=false, so
// posting.EncodePostingList does the actual stable sort under sortKeys
// (posting.DefaultSortKeys if sortKeys is empty).
//
// A decode error in any input is fatal and is returned immediately,
// annotated with which input (by index) failed; successfully decoded
// siblings are not salvaged. Duplicate postings across inputs — even
// identical (doc_id, content_freq, title_freq) triples — are preserved:
// merging never deduplicates.
//
// An empty encoded slice, or a slice containing only empty inputs,
// yields an empty encoded posting list.
func PostingLists(encoded [][]byte, sortKeys string) ([]byte, error) {
	var all []posting.Posting

	for i, enc := range encoded {
		decoded, err := posting.DecodePostingList(enc)
		if err != nil {
			return nil, fmt.Errorf("merge: input %d: %w", i, err)
		}

		all = append(all, decoded...)
	}

	return posting.EncodePostingList(all, false, sortKeys)
}
