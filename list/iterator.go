// File: list/iterator.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package list

import "github.com/momentics/hioload-containers/api"

// Iterator references a list node or the nil position, which stands for
// both "one past the back" and "one before the front".
//
// An iterator over a removed node is no longer valid; Value, Set, Next and
// Prev panic with api.ErrDetachedIterator on it and on the nil position.
type Iterator[T any] struct {
	n *node[T]
}

// Begin returns an iterator at the first element, or End() if empty.
func (l *List[T]) Begin() Iterator[T] {
	return Iterator[T]{n: l.head}
}

// End returns the nil position following the last element.
func (l *List[T]) End() Iterator[T] {
	return Iterator[T]{}
}

// RBegin returns an iterator at the last element, or REnd() if empty.
func (l *List[T]) RBegin() Iterator[T] {
	return Iterator[T]{n: l.tail}
}

// REnd returns the nil position preceding the first element.
func (l *List[T]) REnd() Iterator[T] {
	return Iterator[T]{}
}

// Valid reports whether the iterator references a live element.
func (it Iterator[T]) Valid() bool {
	return it.n != nil && it.n.owner != nil
}

func (it Iterator[T]) mustValid(op string) {
	if !it.Valid() {
		panic(api.Violation(api.ErrCodeContractViolation, op, api.ErrDetachedIterator))
	}
}

// Value returns the referenced element.
func (it Iterator[T]) Value() T {
	it.mustValid("list.Iterator.Value")
	return it.n.value
}

// Set replaces the referenced element in place.
func (it Iterator[T]) Set(v T) {
	it.mustValid("list.Iterator.Set")
	it.n.value = v
}

// Next returns an iterator at the following element.
func (it Iterator[T]) Next() Iterator[T] {
	it.mustValid("list.Iterator.Next")
	return Iterator[T]{n: it.n.next}
}

// Prev returns an iterator at the preceding element.
func (it Iterator[T]) Prev() Iterator[T] {
	it.mustValid("list.Iterator.Prev")
	return Iterator[T]{n: it.n.prev}
}

// Equal reports whether both iterators reference the same position.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.n == other.n
}
