package lists

import (
	"fmt"
	"iter"
	"strings"
)

type node[T any] struct {
	prev *node[T]
	next *node[T]
	val  T
}

// LinkedList is a doubly linked list with head and tail sentinels.
// Removal through a LinkedListCursor is O(1) and never reorders the remaining nodes.
type LinkedList[T any] struct {
	headSentinel *node[T]
	tailSentinel *node[T]
	size         int
}

func NewLinkedList[T any](values ...T) *LinkedList[T] {
	ll := &LinkedList[T]{
		headSentinel: &node[T]{},
		tailSentinel: &node[T]{},
	}
	ll.headSentinel.next = ll.tailSentinel
	ll.tailSentinel.prev = ll.headSentinel
	ll.Add(values...)
	return ll
}

// insertNodeAt insert newNode after indexNode
func (ll *LinkedList[T]) insertNodeAt(indexNode *node[T], newNode *node[T]) {
	newNode.prev = indexNode
	newNode.next = indexNode.next
	indexNode.next.prev = newNode
	indexNode.next = newNode
	ll.size++
}

// removeNode unlinks targetNode and returns its value.
// The node's pointers are cleared, which is how a cursor detects a removed node.
func (ll *LinkedList[T]) removeNode(targetNode *node[T]) T {
	targetNode.prev.next = targetNode.next
	targetNode.next.prev = targetNode.prev
	res := targetNode.val
	// Help GC
	targetNode.prev = nil
	targetNode.next = nil
	var zero T
	targetNode.val = zero
	ll.size--
	return res
}

// Add appends values to the end of the list.
func (ll *LinkedList[T]) Add(values ...T) {
	for _, value := range values {
		ll.insertNodeAt(ll.tailSentinel.prev, &node[T]{val: value})
	}
}

// Size returns the current number of elements in the list
func (ll *LinkedList[T]) Size() int {
	return ll.size
}

func (ll *LinkedList[T]) IsEmpty() bool {
	return ll.size == 0
}

// Clear unlinks every node.
func (ll *LinkedList[T]) Clear() {
	current := ll.headSentinel.next
	for current != ll.tailSentinel {
		next := current.next
		ll.removeNode(current)
		current = next
	}
}

// All returns a sequence over the elements from front to back.
// The list must not be modified while the sequence is being consumed.
func (ll *LinkedList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for current := ll.headSentinel.next; current != ll.tailSentinel; current = current.next {
			if !yield(current.val) {
				return
			}
		}
	}
}

// ToSlice returns the elements as a new slice.
func (ll *LinkedList[T]) ToSlice() []T {
	res := make([]T, 0, ll.size)
	for v := range ll.All() {
		res = append(res, v)
	}
	return res
}

func (ll *LinkedList[T]) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	first := true
	for v := range ll.All() {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&sb, "%v", v)
	}
	sb.WriteString("]")
	return sb.String()
}
