// Package fingerprint computes a stable digest of an encoded posting
// list, adapted from mebo's internal/hash metric-ID hasher.
//
// It exists purely as a human-facing convenience for cmd/postcodec —
// something short to print and diff between merge runs — and never
// participates in the wire format: the encoded posting list format has
// no room for a checksum (no framing, no magic bytes, per spec.md §3),
// so this digest is computed over already-encoded bytes and travels
// alongside them, never inside them.
package fingerprint

import "github.com/cespare/xxhash/v2"

// Of returns the 64-bit xxHash digest of an encoded posting list.
func Of(encoded []byte) uint64 {
	return xxhash.Sum64(encoded)
}
