// File: list/list.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package list

import (
	"iter"

	"github.com/momentics/hioload-containers/api"
	"github.com/momentics/hioload-containers/internal/nocopy"
)

// Ensure compile-time interface compliance.
var _ api.Deque[any] = (*List[any])(nil)

type node[T any] struct {
	value T
	next  *node[T]
	prev  *node[T]
	// owner is nil once the node has been unlinked.
	owner *List[T]
}

// List is a doubly-linked list of T. The zero value is an empty list.
type List[T any] struct {
	noCopy nocopy.NoCopy

	head    *node[T]
	tail    *node[T]
	size    int
	release func(T)
}

// Option customizes list construction.
type Option[T any] func(*List[T])

// WithRelease registers fn to be called exactly once for every value that
// leaves the list (pop or Clear).
func WithRelease[T any](fn func(T)) Option[T] {
	return func(l *List[T]) {
		l.release = fn
	}
}

// New returns a list holding values in order.
func New[T any](values ...T) *List[T] {
	return NewWithOptions[T](nil, values...)
}

// NewWithOptions applies opts and then pushes values in order.
func NewWithOptions[T any](opts []Option[T], values ...T) *List[T] {
	l := &List[T]{}
	for _, opt := range opts {
		opt(l)
	}
	for _, v := range values {
		l.PushBack(v)
	}
	return l
}

// PushBack appends v after the last element.
func (l *List[T]) PushBack(v T) {
	n := &node[T]{value: v, owner: l}
	if l.tail == nil {
		l.head, l.tail = n, n
	} else {
		l.tail.next = n
		n.prev = l.tail
		l.tail = n
	}
	l.size++
}

// PushFront inserts v before the first element.
func (l *List[T]) PushFront(v T) {
	n := &node[T]{value: v, owner: l}
	if l.head == nil {
		l.head, l.tail = n, n
	} else {
		l.head.prev = n
		n.next = l.head
		l.head = n
	}
	l.size++
}

// PopFront removes the first element and returns it.
// Panics with api.ErrEmpty on an empty list.
func (l *List[T]) PopFront() T {
	if l.head == nil {
		panic(api.Violation(api.ErrCodeContractViolation, "list.PopFront", api.ErrEmpty))
	}
	n := l.head
	l.head = n.next
	if l.head == nil {
		l.tail = nil
	} else {
		l.head.prev = nil
	}
	return l.unlink(n)
}

// PopBack removes the last element and returns it.
// Panics with api.ErrEmpty on an empty list.
func (l *List[T]) PopBack() T {
	if l.tail == nil {
		panic(api.Violation(api.ErrCodeContractViolation, "list.PopBack", api.ErrEmpty))
	}
	n := l.tail
	l.tail = n.prev
	if l.tail == nil {
		l.head = nil
	} else {
		l.tail.next = nil
	}
	return l.unlink(n)
}

// unlink detaches n, which the caller already removed from the chain.
func (l *List[T]) unlink(n *node[T]) T {
	v := n.value
	var zero T
	n.value = zero
	n.next, n.prev, n.owner = nil, nil, nil
	l.size--
	if l.release != nil {
		l.release(v)
	}
	return v
}

// Front returns the first element. Panics with api.ErrEmpty on an empty list.
func (l *List[T]) Front() T {
	if l.head == nil {
		panic(api.Violation(api.ErrCodeContractViolation, "list.Front", api.ErrEmpty))
	}
	return l.head.value
}

// Back returns the last element. Panics with api.ErrEmpty on an empty list.
func (l *List[T]) Back() T {
	if l.tail == nil {
		panic(api.Violation(api.ErrCodeContractViolation, "list.Back", api.ErrEmpty))
	}
	return l.tail.value
}

// Empty reports whether the list holds no elements.
func (l *List[T]) Empty() bool {
	return l.head == nil
}

// Len returns the number of elements.
func (l *List[T]) Len() int {
	return l.size
}

// Clear releases every element front to back. Safe on an empty list.
func (l *List[T]) Clear() {
	for l.head != nil {
		l.PopFront()
	}
}

// All yields the elements front to back.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; {
			next := n.next
			if !yield(n.value) {
				return
			}
			n = next
		}
	}
}

// Backward yields the elements back to front.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.tail; n != nil; {
			prev := n.prev
			if !yield(n.value) {
				return
			}
			n = prev
		}
	}
}
