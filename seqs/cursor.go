package seqs

import (
	"iter"
	"unicode/utf8"
)

// Cursor is a single-use, forward-only view over a sequence.
// Next reports false once the sequence is exhausted, and keeps reporting false afterwards.
type Cursor[T any] interface {
	Next() (T, bool)
}

type sliceCursor[T any] struct {
	items []T
	pos   int
}

// SliceCursor returns a cursor over items. The slice is read, never copied or modified.
func SliceCursor[T any](items []T) Cursor[T] {
	return &sliceCursor[T]{items: items}
}

func (c *sliceCursor[T]) Next() (v T, ok bool) {
	if c.pos >= len(c.items) {
		return v, false
	}
	v = c.items[c.pos]
	c.pos++
	return v, true
}

type stringCursor struct {
	s   string
	pos int
}

// StringCursor returns a cursor producing each character of s as a one-character string.
// Invalid UTF-8 bytes are produced as "�", one per byte.
func StringCursor(s string) Cursor[string] {
	return &stringCursor{s: s}
}

func (c *stringCursor) Next() (string, bool) {
	if c.pos >= len(c.s) {
		return "", false
	}
	r, size := utf8.DecodeRuneInString(c.s[c.pos:])
	c.pos += size
	if r == utf8.RuneError && size == 1 {
		return string(utf8.RuneError), true
	}
	return c.s[c.pos-size : c.pos], true
}

// PullCursor drives an iter.Seq one element at a time.
// It must be stopped once the caller is done with it, unless Next has already reported false.
type PullCursor[T any] struct {
	next func() (T, bool)
	stop func()
	done bool
}

// Pull returns a cursor over seq. Nothing is drawn from seq until the first call to Next.
func Pull[T any](seq iter.Seq[T]) *PullCursor[T] {
	next, stop := iter.Pull(seq)
	return &PullCursor[T]{next: next, stop: stop}
}

func (c *PullCursor[T]) Next() (v T, ok bool) {
	if c.done {
		return v, false
	}
	v, ok = c.next()
	if !ok {
		c.Stop()
	}
	return v, ok
}

// Stop releases the underlying sequence. It is safe to call more than once.
func (c *PullCursor[T]) Stop() {
	if c.done {
		return
	}
	c.done = true
	c.stop()
}

// Drain returns a sequence yielding the remaining elements of c.
// Since a cursor cannot be rewound, the sequence can be traversed only once.
func Drain[T any](c Cursor[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := c.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Chars returns a sequence of the characters of s, each as a one-character string.
func Chars(s string) iter.Seq[string] {
	return func(yield func(string) bool) {
		c := stringCursor{s: s}
		for {
			v, ok := c.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Runes returns a sequence of the runes of s.
func Runes(s string) iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for _, r := range s {
			if !yield(r) {
				return
			}
		}
	}
}
