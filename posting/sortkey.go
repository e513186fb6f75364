package posting

import (
	"fmt"
	"sort"
	"strings"

	"github.com/nilsson-labs/postcodec/errs"
)

// DefaultSortKeys is the sort-keys string used when a caller asks for
// sorting but supplies none: content_freq descending, then doc_id
// descending. It mirrors the behavior of the original py_rust_encode_varint
// implementation this package was distilled from.
const DefaultSortKeys = "(-1, -0)"

// SortKey names one field of a Posting and the direction to compare it
// in. Field is always 0 (doc_id), 1 (content_freq), or 2 (title_freq).
type SortKey struct {
	Field      int
	Descending bool
}

// ParseSortKeys parses the sort-keys DSL described in spec.md §3/§6:
//
//	SPEC := '(' WS? KEY (WS? ',' WS? KEY)* WS? ')'
//	KEY  := '-'? [0-2]
//
// Whitespace (anything strings.TrimSpace removes) around keys and around
// the whole string is tolerated; anything else
// that deviates from the grammar — missing parentheses, an empty body,
// a non-digit field, a field outside 0..2, or trailing junk after the
// closing paren — is rejected.
func ParseSortKeys(s string) ([]SortKey, error) {
	s = strings.TrimSpace(s)

	if len(s) < 2 || s[0] != '(' || s[len(s)-1] != ')' {
		return nil, fmt.Errorf("%w: %q: missing enclosing parentheses", errs.ErrInvalidSortKeys, s)
	}

	body := s[1 : len(s)-1]

	keys := make([]SortKey, 0, 4)
	for _, rawKey := range strings.Split(body, ",") {
		key := strings.TrimSpace(rawKey)
		if key == "" {
			return nil, fmt.Errorf("%w: %q: empty key list", errs.ErrInvalidSortKeys, s)
		}

		sk, err := parseKey(key)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %s", errs.ErrInvalidSortKeys, s, err)
		}

		keys = append(keys, sk)
	}

	return keys, nil
}

func parseKey(key string) (SortKey, error) {
	descending := false
	if strings.HasPrefix(key, "-") {
		descending = true
		key = key[1:]
	}

	if len(key) != 1 || key[0] < '0' || key[0] > '2' {
		return SortKey{}, fmt.Errorf("field %q must be a single digit in 0..2", key)
	}

	return SortKey{Field: int(key[0] - '0'), Descending: descending}, nil
}

// field returns the value of p's Field'th column (0=doc_id,
// 1=content_freq, 2=title_freq). Callers of ParseSortKeys guarantee
// Field is in range, so this never needs a fallback case.
func (p Posting) field(i int) uint64 {
	switch i {
	case 0:
		return p.DocID
	case 1:
		return p.ContentFreq
	default:
		return p.TitleFreq
	}
}

// comparator builds a less-than predicate over []Posting from an ordered
// list of sort keys: for each key in order, compare the named field,
// invert on descending, and return the first non-equal result. Ties
// across every key compare equal, letting sort.SliceStable preserve
// input order.
func comparator(keys []SortKey) func(a, b Posting) bool {
	return func(a, b Posting) bool {
		for _, k := range keys {
			av, bv := a.field(k.Field), b.field(k.Field)
			if av == bv {
				continue
			}

			if k.Descending {
				return av > bv
			}

			return av < bv
		}

		return false
	}
}

// stableSort sorts postings in place under the ordering described by
// keys, preserving the relative order of postings that compare equal —
// this stability is what lets a partial key list (e.g. a single field)
// leave ties in their original input order.
func stableSort(postings []Posting, keys []SortKey) {
	less := comparator(keys)
	sort.SliceStable(postings, func(i, j int) bool {
		return less(postings[i], postings[j])
	})
}
