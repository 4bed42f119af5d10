package seqs

import (
	"iter"

	"golang.org/x/xerrors"
)

type Pair[T1, T2 any] struct {
	V1 T1
	V2 T2
}

// Pairwise yields each pair of consecutive elements: (e0, e1), (e1, e2), ...
// Sequences with fewer than two elements yield nothing.
func Pairwise[T any](seq iter.Seq[T]) iter.Seq[Pair[T, T]] {
	return func(yield func(Pair[T, T]) bool) {
		var prev T
		started := false
		for v := range seq {
			if started {
				if !yield(Pair[T, T]{V1: prev, V2: v}) {
					return
				}
			}
			prev = v
			started = true
		}
	}
}

// Chunked splits seq into consecutive chunks of size elements.
// The last chunk may be smaller if there are not enough elements; an empty seq yields no chunks.
// Every chunk is a fresh slice, so callers may keep or modify it.
func Chunked[T any](seq iter.Seq[T], size int) (iter.Seq[[]T], error) {
	if size <= 0 {
		return nil, xerrors.Errorf("chunked %d: %w", size, ErrInvalidSize)
	}
	return func(yield func([]T) bool) {
		batch := make([]T, 0, size)

		for v := range seq {
			batch = append(batch, v)
			if len(batch) == size {
				if !yield(batch) {
					return
				}
				batch = make([]T, 0, size)
			}
		}
		if len(batch) > 0 {
			yield(batch)
		}
	}, nil
}
