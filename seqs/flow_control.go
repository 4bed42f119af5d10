package seqs

import (
	"iter"

	"golang.org/x/xerrors"
)

// ITake yields at most the first n elements of seq.
// Element n+1 is never requested, so seq may be infinite.
func ITake[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		count := 0
		for v := range seq {
			if !yield(v) {
				return
			}
			count++
			if count >= n {
				return
			}
		}
	}
}

// Take collects at most the first n elements of seq into a slice.
// A source shorter than n is not an error: the result is simply shorter.
// A negative n fails before anything is drawn from seq.
func Take[T any](seq iter.Seq[T], n int) ([]T, error) {
	if n < 0 {
		return nil, xerrors.Errorf("take %d: %w", n, ErrNegativeCount)
	}
	res := make([]T, 0, min(n, 64))
	for v := range ITake(seq, n) {
		res = append(res, v)
	}
	return res, nil
}
