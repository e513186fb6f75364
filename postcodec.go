// Package postcodec provides a compact codec and merge engine for
// inverted-index posting lists.
//
// A posting is a (doc_id, content_freq, title_freq) triple of
// non-negative 64-bit integers describing one term occurrence in one
// document. This package serializes a posting list to a dense byte
// string using unsigned LEB128 varints with delta-encoded document
// identifiers, sorts postings under a small caller-specified multi-key
// DSL, and merges multiple already-encoded lists into one.
//
// # Layering
//
// Four layers, leaves first, each unaware of the one above it:
//
//   - varint: pure byte-string <-> uint64 conversion (package varint)
//   - posting.ParseSortKeys / the internal comparator it builds: the
//     sort-keys DSL and the stable total ordering over postings
//   - posting.EncodePostingList / posting.DecodePostingList: the
//     delta-encoded wire format
//   - merge.PostingLists: decodes several encoded lists, applies the
//     comparator, and re-encodes a single canonical result
//
// # Basic usage
//
//	postings := []posting.Posting{
//		posting.New(7, 5, 2),
//		posting.New(1, 10, 4),
//		posting.New(3, 15, 6),
//	}
//	encoded, err := postcodec.EncodePostingList(postings, false, "")
//	// encoded now holds content_freq-desc, doc_id-desc sorted postings
//
//	decoded, err := postcodec.DecodePostingList(encoded)
//
//	merged, err := postcodec.MergePostingLists([][]byte{encodedA, encodedB}, "(0)")
//
// This package is purely functional and single-threaded per call: no
// component owns shared mutable state, performs I/O, or blocks on
// external events, so every entry point may be called concurrently from
// any goroutine with any other. Host-language bindings, disk I/O,
// compression beyond varint, query planning, and the inverted index
// that stores these lists are all external collaborators, out of scope
// for this package.
package postcodec

import (
	"github.com/nilsson-labs/postcodec/merge"
	"github.com/nilsson-labs/postcodec/posting"
	"github.com/nilsson-labs/postcodec/varint"
)

// EncodeVarint encodes a non-negative integer as an unsigned LEB128
// varint. It fails with an error containing "non-negative" if n is
// negative.
func EncodeVarint(n int64) ([]byte, error) {
	return varint.EncodeInt64(n)
}

// DecodeVarint reads a single varint from buf starting at pos and
// returns its value along with the offset of the first byte after it.
func DecodeVarint(buf []byte, pos int) (uint64, int, error) {
	return varint.Decode(buf, pos)
}

// EncodePostingList serializes postings into the delta-encoded wire
// format. If assumeSorted is false, postings are stably sorted first
// using sortKeys (posting.DefaultSortKeys if sortKeys is empty); the
// caller's slice is never mutated.
func EncodePostingList(postings []posting.Posting, assumeSorted bool, sortKeys string) ([]byte, error) {
	return posting.EncodePostingList(postings, assumeSorted, sortKeys)
}

// DecodePostingList parses an encoded posting list back into its
// sequence of postings, without sorting, deduplicating, or reordering.
func DecodePostingList(data []byte) ([]posting.Posting, error) {
	return posting.DecodePostingList(data)
}

// MergePostingLists decodes every entry in encoded, concatenates the
// results, stably sorts under sortKeys (posting.DefaultSortKeys if
// empty), and re-encodes a single canonical posting list. A decode
// error in any input is fatal and is returned immediately.
func MergePostingLists(encoded [][]byte, sortKeys string) ([]byte, error) {
	return merge.PostingLists(encoded, sortKeys)
}
