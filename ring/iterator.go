// File: ring/iterator.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package ring

import "github.com/momentics/hioload-containers/api"

// Iterator walks a Buffer from head towards tail, wrapping at the end of the
// backing slots. Mutating the buffer invalidates outstanding iterators.
type Iterator[T any] struct {
	b   *Buffer[T]
	idx Index
}

// Begin returns an iterator at the front element.
func (b *Buffer[T]) Begin() Iterator[T] {
	return Iterator[T]{b: b, idx: b.head}
}

// End returns the position one past the back element.
func (b *Buffer[T]) End() Iterator[T] {
	return Iterator[T]{b: b, idx: b.tail}
}

// Next returns an iterator one slot further. Panics with
// api.ErrDetachedIterator when called at End() or outside the live range.
func (it Iterator[T]) Next() Iterator[T] {
	it.mustValid("ring.Iterator.Next")
	return Iterator[T]{b: it.b, idx: it.idx.Add(1)}
}

// Index returns the backing slot the iterator points at.
func (it Iterator[T]) Index() Index {
	return it.idx
}

// Offset returns the logical position relative to the front.
func (it Iterator[T]) Offset() int {
	return it.idx.Distance(it.b.head)
}

// Valid reports whether the iterator points at a live element.
func (it Iterator[T]) Valid() bool {
	return it.b != nil && it.Offset() < it.b.Len()
}

// Value returns the element under the iterator. Panics with
// api.ErrDetachedIterator at End() or outside the live range.
func (it Iterator[T]) Value() T {
	it.mustValid("ring.Iterator.Value")
	return it.b.data[it.idx.Int()]
}

// Set overwrites the element under the iterator.
func (it Iterator[T]) Set(v T) {
	it.mustValid("ring.Iterator.Set")
	it.b.data[it.idx.Int()] = v
}

func (it Iterator[T]) mustValid(op string) {
	if !it.Valid() {
		panic(api.Violation(api.ErrCodeContractViolation, op, api.ErrDetachedIterator))
	}
}

// Equal reports whether both iterators point at the same slot of the same
// buffer.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.b == other.b && it.idx.Equal(other.idx)
}
