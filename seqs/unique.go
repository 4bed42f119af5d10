package seqs

import "iter"

// UniqueJustseen drops elements equal to the element immediately before them.
// Repeats that are not adjacent are kept.
func UniqueJustseen[T comparable](seq iter.Seq[T]) iter.Seq[T] {
	return UniqueJustseenBy(seq, func(v T) T { return v })
}

// UniqueJustseenBy is like UniqueJustseen, but compares the keys returned by key.
// key is called once per element; the original elements are yielded.
func UniqueJustseenBy[T any, K comparable](seq iter.Seq[T], key func(T) K) iter.Seq[T] {
	return func(yield func(T) bool) {
		var last K
		started := false
		for v := range seq {
			k := key(v)
			if started && k == last {
				continue
			}
			last = k
			started = true
			if !yield(v) {
				return
			}
		}
	}
}

// UniqueEverseen yields the first occurrence of each element.
// It keeps every element seen so far, so memory grows with the number of distinct elements.
func UniqueEverseen[T comparable](seq iter.Seq[T]) iter.Seq[T] {
	return UniqueEverseenBy(seq, func(v T) T { return v })
}

// UniqueEverseenBy yields the first element for each distinct key.
func UniqueEverseenBy[T any, K comparable](seq iter.Seq[T], key func(T) K) iter.Seq[T] {
	return func(yield func(T) bool) {
		seen := make(map[K]struct{})
		for v := range seq {
			k := key(v)
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			if !yield(v) {
				return
			}
		}
	}
}
