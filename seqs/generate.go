package seqs

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Range yields start, start+step, ... up to but excluding end.
// A zero step yields nothing.
func Range[T constraints.Integer](start, end, step T) iter.Seq[T] {
	return func(yield func(T) bool) {
		if step == 0 {
			return
		}
		for i := start; step > 0 && i < end || step < 0 && i > end; {
			if !yield(i) {
				return
			}
			next := i + step
			// wrapped around the bounds of T
			if step > 0 && next < i || step < 0 && next > i {
				return
			}
			i = next
		}
	}
}

// Count yields start, start+step, ... without end.
func Count[T constraints.Integer](start, step T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := start; ; i += step {
			if !yield(i) {
				return
			}
		}
	}
}
