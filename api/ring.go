// Package api
// Author: momentics@gmail.com
//
// Container contracts implemented by the list and ring packages.

package api

// Deque is a double-ended container contract.
//
// Pop, Front and Back require a non-empty container and panic with *Error
// otherwise.
type Deque[T any] interface {
	// PushBack appends a copy of v after the last element.
	PushBack(v T)
	// PushFront inserts a copy of v before the first element.
	PushFront(v T)
	// PopBack removes and returns the last element.
	PopBack() T
	// PopFront removes and returns the first element.
	PopFront() T
	// Front returns the first element.
	Front() T
	// Back returns the last element.
	Back() T
	// Empty reports whether the container holds no elements.
	Empty() bool
	// Len returns current number of items.
	Len() int
	// Clear releases every element.
	Clear()
}

// Ring is a fixed-capacity deque that overwrites on overflow.
type Ring[T any] interface {
	Deque[T]
	// Full reports whether one more push would evict an element.
	Full() bool
	// Cap returns buffer capacity.
	Cap() int
	// At returns the element at a signed offset from the front (i >= 0)
	// or from the back (i < 0).
	At(i int) T
}
