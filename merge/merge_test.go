package merge_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/nilsson-labs/postcodec/merge"
	"github.com/nilsson-labs/postcodec/posting"
)

func encode(t *testing.T, rows ...[3]uint64) []byte {
	t.Helper()

	postings := make([]posting.Posting, len(rows))
	for i, r := range rows {
		postings[i] = posting.New(r[0], r[1], r[2])
	}

	out, err := posting.EncodePostingList(postings, true, "")
	require.NoError(t, err)

	return out
}

func TestMerge_EmptyInputList(t *testing.T) {
	out, err := merge.PostingLists(nil, "")
	require.NoError(t, err)
	assert.Equal(t, []byte{}, out)
}

func TestMerge_OnlyEmptyInputs(t *testing.T) {
	out, err := merge.PostingLists([][]byte{{}, {}}, "")
	require.NoError(t, err)
	assert.Equal(t, []byte{}, out)
}

func TestMerge_SingleList(t *testing.T) {
	encoded := encode(t, [3]uint64{1, 5, 2}, [3]uint64{3, 10, 4})

	out, err := merge.PostingLists([][]byte{encoded}, "")
	require.NoError(t, err)

	decoded, err := posting.DecodePostingList(out)
	require.NoError(t, err)

	// Default sort keys (-1, -0): content_freq desc, then doc_id desc.
	want := []posting.Posting{
		posting.New(3, 10, 4),
		posting.New(1, 5, 2),
	}
	assert.Equal(t, want, decoded)
}

func TestMerge_MultipleLists(t *testing.T) {
	l1 := encode(t, [3]uint64{1, 5, 2}, [3]uint64{3, 10, 4})
	l2 := encode(t, [3]uint64{5, 15, 6}, [3]uint64{7, 20, 8})
	l3 := encode(t, [3]uint64{2, 8, 3})

	out, err := merge.PostingLists([][]byte{l1, l2, l3}, "")
	require.NoError(t, err)

	decoded, err := posting.DecodePostingList(out)
	require.NoError(t, err)

	want := []posting.Posting{
		posting.New(7, 20, 8),
		posting.New(5, 15, 6),
		posting.New(3, 10, 4),
		posting.New(2, 8, 3),
		posting.New(1, 5, 2),
	}
	assert.Equal(t, want, decoded)
}

func TestMerge_DuplicateDocIDsPreserved(t *testing.T) {
	l1 := encode(t, [3]uint64{1, 5, 2}, [3]uint64{3, 10, 4})
	l2 := encode(t, [3]uint64{1, 8, 3}, [3]uint64{5, 15, 6})

	out, err := merge.PostingLists([][]byte{l1, l2}, "")
	require.NoError(t, err)

	decoded, err := posting.DecodePostingList(out)
	require.NoError(t, err)
	require.Len(t, decoded, 4)

	count := 0
	for _, p := range decoded {
		if p.DocID == 1 {
			count++
		}
	}
	assert.Equal(t, 2, count)
}

func TestMerge_CustomSortKeys(t *testing.T) {
	l1 := encode(t, [3]uint64{7, 5, 2}, [3]uint64{1, 10, 4})
	l2 := encode(t, [3]uint64{3, 15, 6}, [3]uint64{5, 8, 3})

	out, err := merge.PostingLists([][]byte{l1, l2}, "(0)")
	require.NoError(t, err)

	decoded, err := posting.DecodePostingList(out)
	require.NoError(t, err)

	want := []posting.Posting{
		posting.New(1, 10, 4),
		posting.New(3, 15, 6),
		posting.New(5, 8, 3),
		posting.New(7, 5, 2),
	}
	assert.Equal(t, want, decoded)
}

func TestMerge_DecodeErrorPropagatesWithInputIndex(t *testing.T) {
	good := encode(t, [3]uint64{1, 2, 3})
	bad := []byte{0x80} // truncated varint

	_, err := merge.PostingLists([][]byte{good, bad}, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "input 1")
}

func TestMerge_InvalidSortKeys(t *testing.T) {
	good := encode(t, [3]uint64{1, 2, 3})

	_, err := merge.PostingLists([][]byte{good}, "(9)")
	require.Error(t, err)
}

// TestMerge_EqualsSortOfConcatenation exercises testable property 6 from
// spec.md §8: merge(encode(Li) for Li in inputs) decodes to the stable
// sort of the concatenation of all Li, under the same sort keys.
func TestMerge_EqualsSortOfConcatenation(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		numLists := rapid.IntRange(0, 4).Draw(t, "numLists")

		var encodedLists [][]byte
		var all []posting.Posting

		for i := 0; i < numLists; i++ {
			n := rapid.IntRange(0, 8).Draw(t, "n")
			var list []posting.Posting
			for j := 0; j < n; j++ {
				p := posting.New(
					rapid.Uint64Range(0, 1000).Draw(t, "doc_id"),
					rapid.Uint64Range(0, 1000).Draw(t, "content_freq"),
					rapid.Uint64Range(0, 1000).Draw(t, "title_freq"),
				)
				list = append(list, p)
			}

			encodedList, err := posting.EncodePostingList(list, true, "")
			require.NoError(t, err)

			encodedLists = append(encodedLists, encodedList)
			all = append(all, list...)
		}

		merged, err := merge.PostingLists(encodedLists, "")
		require.NoError(t, err)

		decoded, err := posting.DecodePostingList(merged)
		require.NoError(t, err)

		expected, err := posting.EncodePostingList(all, false, "")
		require.NoError(t, err)
		want, err := posting.DecodePostingList(expected)
		require.NoError(t, err)

		if len(want) == 0 {
			assert.Empty(t, decoded)
		} else {
			assert.Equal(t, want, decoded)
		}
	})
}
