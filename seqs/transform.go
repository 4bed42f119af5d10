package seqs

import (
	"iter"

	"itertools/lists"
)

// Flatten concatenates the inner sequences of nested, removing one level of nesting.
func Flatten[T any](nested iter.Seq[iter.Seq[T]]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for inner := range nested {
			for v := range inner {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// FlattenSlices is Flatten for a sequence of slices, such as the output of Chunked.
func FlattenSlices[T any](nested iter.Seq[[]T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for inner := range nested {
			for _, v := range inner {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Intersperse yields the elements of seq with sep between each consecutive pair.
// No separator is ever placed before the first or after the last element.
func Intersperse[T any](sep T, seq iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		first := true
		for v := range seq {
			if !first && !yield(sep) {
				return
			}
			first = false
			if !yield(v) {
				return
			}
		}
	}
}

// RoundRobin interleaves the given sequences, taking one element from each in turn.
// A sequence that runs out is dropped from later rounds; the others keep their relative order.
//
//	RoundRobin(slices.Values([]int{1, 2, 3, 4, 5}), slices.Values([]int{6, 7})) // 1 6 2 7 3 4 5
//
// With no sources, or only empty ones, the result is empty.
func RoundRobin[T any](sources ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		active := lists.NewLinkedList[*PullCursor[T]]()
		for _, src := range sources {
			active.Add(Pull(src))
		}
		defer func() {
			for c := range active.All() {
				c.Stop()
			}
		}()

		for !active.IsEmpty() {
			cur := active.FrontCursor()
			for cur.IsValid() {
				v, ok := cur.Value().Next()
				if !ok {
					// exhausted cursors stop themselves
					_, _ = cur.Remove()
					continue
				}
				if !yield(v) {
					return
				}
				cur.Next()
			}
		}
	}
}
