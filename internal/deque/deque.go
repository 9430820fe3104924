// Package deque provides a double-ended queue backed by
// internal/linkedlist, adapted from Zubayear/ryushin's deque package.
// The hint search uses it in State.Path() to rebuild a state's
// predecessor chain for debug tracing: predecessors are pushed at the
// front as the chain is walked backward, yielding the path in
// forward (input-to-hint) order without a second reversal pass.
package deque

import "github.com/mzalewska/spellkeep/internal/linkedlist"

// Deque is a generic double-ended queue.
type Deque[T any] struct {
	data *linkedlist.DoublyLinkedList[T]
}

// New returns an empty deque.
func New[T any]() *Deque[T] {
	return &Deque[T]{data: linkedlist.New[T]()}
}

// PushFront inserts elem at the front of the deque.
func (d *Deque[T]) PushFront(elem T) {
	d.data.AddFirst(elem)
}

// PushBack inserts elem at the back of the deque.
func (d *Deque[T]) PushBack(elem T) {
	d.data.AddLast(elem)
}

// PopFront removes and returns the front element.
func (d *Deque[T]) PopFront() (T, error) {
	return d.data.RemoveFirst()
}

// PopBack removes and returns the back element.
func (d *Deque[T]) PopBack() (T, error) {
	return d.data.RemoveLast()
}

// Size returns the number of elements in the deque.
func (d *Deque[T]) Size() int {
	return d.data.Size()
}

// IsEmpty reports whether the deque has no elements.
func (d *Deque[T]) IsEmpty() bool {
	return d.data.IsEmpty()
}

// Values returns every element from front to back.
func (d *Deque[T]) Values() []T {
	return d.data.Values()
}
