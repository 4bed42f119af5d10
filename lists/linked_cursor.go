package lists

import (
	"fmt"

	"golang.org/x/xerrors"
)

var ErrInvalidOperation = xerrors.New("invalid operation on cursor")

/*
LinkedListCursor walks a LinkedList front to back and can remove the element
it points at without disturbing the order of the others.
*/
type LinkedListCursor[T any] struct {
	current *node[T]
	list    *LinkedList[T]
}

// FrontCursor returns a cursor positioned at the first element.
// If the list is empty, the cursor is invalid.
func (ll *LinkedList[T]) FrontCursor() *LinkedListCursor[T] {
	// head.next may be the tail sentinel; the cursor keeps its link to the list either way
	return &LinkedListCursor[T]{current: ll.headSentinel.next, list: ll}
}

// IsValid checks if the cursor is at a valid element
func (llc *LinkedListCursor[T]) IsValid() bool {
	// removeNode clears next, so a detached node is never valid
	return llc.current != nil && llc.current.next != nil && llc.list != nil &&
		llc.current != llc.list.headSentinel && llc.current != llc.list.tailSentinel
}

// Value returns the value at the current cursor position,
// or the zero value of T if the cursor is invalid.
func (llc *LinkedListCursor[T]) Value() (val T) {
	if !llc.IsValid() {
		return val
	}
	return llc.current.val
}

// Next moves the cursor to the next element.
// Past the last element it rests on the tail sentinel and becomes invalid.
func (llc *LinkedListCursor[T]) Next() {
	if !llc.IsValid() {
		return
	}
	llc.current = llc.current.next
}

// Remove removes the element at the current cursor position and moves the
// cursor to the element that followed it.
func (llc *LinkedListCursor[T]) Remove() (val T, err error) {
	if !llc.IsValid() {
		return val, ErrInvalidOperation
	}
	next := llc.current.next
	val = llc.list.removeNode(llc.current)
	llc.current = next
	return val, nil
}

func (llc *LinkedListCursor[T]) String() string {
	if llc.IsValid() {
		return fmt.Sprintf("Cursor[%v]", llc.current.val)
	}
	return "Cursor[invalid]"
}
