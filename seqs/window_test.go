package seqs_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itertools/seqs"
)

func TestPairwise(t *testing.T) {
	type pair = seqs.Pair[int, int]
	tests := []struct {
		name  string
		input []int
		want  []pair
	}{
		{"Empty", []int{}, []pair{}},
		{"Single", []int{1}, []pair{}},
		{"Two", []int{1, 2}, []pair{{1, 2}}},
		{"Three", []int{0, 1, 2}, []pair{{0, 1}, {1, 2}}},
		{"Four", []int{1, 2, 3, 4}, []pair{{1, 2}, {2, 3}, {3, 4}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collect(seqs.Pairwise(slices.Values(tt.input)))
			assert.Equal(t, tt.want, got)
			assert.Len(t, got, max(0, len(tt.input)-1))
			for i := 0; i+1 < len(got); i++ {
				assert.Equal(t, got[i].V2, got[i+1].V1, "consecutive pairs must share an element")
			}
		})
	}
}

func TestPairwiseInfinite(t *testing.T) {
	got := collect(seqs.ITake(seqs.Pairwise(seqs.Count(0, 1)), 2))
	assert.Equal(t, []seqs.Pair[int, int]{{0, 1}, {1, 2}}, got)
}

func TestChunked(t *testing.T) {
	tests := []struct {
		name  string
		input []int
		size  int
		want  [][]int
	}{
		{"Empty", []int{}, 3, [][]int{}},
		{"SmallerThanSize", []int{1}, 3, [][]int{{1}}},
		{"Uneven", []int{1, 2, 3, 4, 5}, 3, [][]int{{1, 2, 3}, {4, 5}}},
		{"Even", []int{1, 2, 3, 4}, 2, [][]int{{1, 2}, {3, 4}}},
		{"SizeOne", []int{1, 2}, 1, [][]int{{1}, {2}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chunks, err := seqs.Chunked(slices.Values(tt.input), tt.size)
			require.NoError(t, err)

			got := collect(chunks)
			assert.Equal(t, tt.want, got)

			for i, c := range got {
				if i < len(got)-1 {
					assert.Len(t, c, tt.size)
				}
			}
			assert.Equal(t, tt.input, collect(seqs.FlattenSlices(slices.Values(got))))
		})
	}
}

func TestChunkedInvalidSize(t *testing.T) {
	for _, size := range []int{0, -1} {
		chunks, err := seqs.Chunked(slices.Values([]int{1, 2}), size)
		require.Error(t, err)
		assert.True(t, errors.Is(err, seqs.ErrInvalidSize))
		assert.Nil(t, chunks)
	}
}

func TestChunkedNotAliased(t *testing.T) {
	chunks, err := seqs.Chunked(slices.Values([]int{1, 2, 3, 4}), 2)
	require.NoError(t, err)

	var kept [][]int
	for c := range chunks {
		kept = append(kept, c)
	}
	kept[0][0] = 99
	assert.Equal(t, []int{3, 4}, kept[1])
}

func TestChunkedInfinite(t *testing.T) {
	chunks, err := seqs.Chunked(seqs.Count(1, 1), 2)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 2}, {3, 4}}, collect(seqs.ITake(chunks, 2)))
}
