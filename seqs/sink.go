package seqs

import "iter"

// First returns the first element of seq. The boolean is false if seq is empty,
// so a zero value found in seq is distinguishable from absence.
func First[T any](seq iter.Seq[T]) (T, bool) {
	for v := range seq {
		return v, true
	}
	var zero T
	return zero, false
}

// FirstFunc returns the first element of seq satisfying predicate.
func FirstFunc[T any](seq iter.Seq[T], predicate func(T) bool) (T, bool) {
	for v := range seq {
		if predicate(v) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// Partition splits seq in a single pass into the elements satisfying predicate
// and the rest, each in input order. Both slices are non-nil.
//
// seq must be finite.
func Partition[T any](seq iter.Seq[T], predicate func(T) bool) (matched, unmatched []T) {
	matched, unmatched = []T{}, []T{}
	for v := range seq {
		if predicate(v) {
			matched = append(matched, v)
		} else {
			unmatched = append(unmatched, v)
		}
	}
	return matched, unmatched
}
