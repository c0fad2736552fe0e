// File: ring/ring.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Buffer is a fixed-size ring with two modular cursors. Live elements occupy
// [head, tail) in circular order.

package ring

import (
	"fmt"
	"iter"

	"go.uber.org/multierr"

	"github.com/momentics/hioload-containers/api"
	"github.com/momentics/hioload-containers/internal/nocopy"
)

// Ensure compile-time interface compliance.
var _ api.Ring[any] = (*Buffer[any])(nil)

// Buffer is a fixed-capacity ring buffer of T. Use New; the zero value is
// not usable.
type Buffer[T any] struct {
	noCopy nocopy.NoCopy

	data       []T
	head, tail Index
	release    func(T)
	onEvict    func(T)
}

// New allocates a buffer with size slots (capacity size-1) and pushes values
// in order. Values beyond capacity evict the oldest ones, so only the last
// size-1 values survive.
func New[T any](size int, values ...T) (*Buffer[T], error) {
	return NewWithOptions[T](size, nil, values...)
}

// NewWithOptions is New with functional options. All option errors are
// reported together.
func NewWithOptions[T any](size int, opts []Option[T], values ...T) (*Buffer[T], error) {
	if size < 2 {
		return nil, fmt.Errorf("%w: got %d", api.ErrInvalidCapacity, size)
	}
	b := &Buffer[T]{
		data: make([]T, size),
		head: NewIndex(0, size),
		tail: NewIndex(0, size),
	}
	var err error
	for _, opt := range opts {
		err = multierr.Append(err, opt(b))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to apply ring buffer options: %w", err)
	}
	for _, v := range values {
		b.PushBack(v)
	}
	return b, nil
}

// MustNew is New that panics on error.
func MustNew[T any](size int, values ...T) *Buffer[T] {
	b, err := New[T](size, values...)
	if err != nil {
		panic(err)
	}
	return b
}

// PushBack stores v after the last element. On a full buffer the front
// element is evicted.
func (b *Buffer[T]) PushBack(v T) {
	b.data[b.tail.Inc().Int()] = v
	if b.head.Equal(b.tail) {
		b.evict(b.head.Inc())
	}
}

// PushFront stores v before the first element. On a full buffer the back
// element is evicted.
func (b *Buffer[T]) PushFront(v T) {
	b.data[b.head.PreDec().Int()] = v
	if b.head.Equal(b.tail) {
		b.evict(b.tail.PreDec())
	}
}

func (b *Buffer[T]) evict(at Index) {
	v := b.take(at)
	if b.onEvict != nil {
		b.onEvict(v)
	}
}

// take clears the slot and hands its value to the release hook.
func (b *Buffer[T]) take(at Index) T {
	var zero T
	v := b.data[at.Int()]
	b.data[at.Int()] = zero
	if b.release != nil {
		b.release(v)
	}
	return v
}

// PopBack removes the last element and returns it.
// Panics with api.ErrEmpty on an empty buffer.
func (b *Buffer[T]) PopBack() T {
	b.mustNotEmpty("ring.PopBack")
	return b.take(b.tail.PreDec())
}

// PopFront removes the first element and returns it.
// Panics with api.ErrEmpty on an empty buffer.
func (b *Buffer[T]) PopFront() T {
	b.mustNotEmpty("ring.PopFront")
	return b.take(b.head.Inc())
}

// Front returns the element at head.
func (b *Buffer[T]) Front() T {
	b.mustNotEmpty("ring.Front")
	return b.data[b.head.Int()]
}

// Back returns the element at tail-1.
func (b *Buffer[T]) Back() T {
	b.mustNotEmpty("ring.Back")
	return b.data[b.tail.Sub(1).Int()]
}

func (b *Buffer[T]) mustNotEmpty(op string) {
	if b.Empty() {
		panic(api.Violation(api.ErrCodeContractViolation, op, api.ErrEmpty))
	}
}

// Full reports whether exactly one free slot remains.
func (b *Buffer[T]) Full() bool {
	return b.head.Equal(b.tail.Add(1))
}

// Empty reports whether head == tail.
func (b *Buffer[T]) Empty() bool {
	return b.head.Equal(b.tail)
}

// Len returns (tail - head) mod size, in [0, Cap()].
func (b *Buffer[T]) Len() int {
	return b.tail.Distance(b.head)
}

// Cap returns size-1; one slot is reserved to tell full from empty.
func (b *Buffer[T]) Cap() int {
	return len(b.data) - 1
}

// slot resolves a signed offset: i >= 0 counts from head, i < 0 from tail.
// The caller must keep -Len() <= i < Len(); anything else panics with
// api.ErrOutOfRange.
func (b *Buffer[T]) slot(op string, i int) Index {
	n := b.Len()
	if i >= n || i < -n {
		panic(api.Violation(api.ErrCodeOutOfRange, op, api.ErrOutOfRange).
			WithContext("offset", i).
			WithContext("len", n))
	}
	if i >= 0 {
		return b.head.Add(i)
	}
	return b.tail.Add(i)
}

// At returns the element at signed offset i; At(0) is the front and At(-1)
// the back.
func (b *Buffer[T]) At(i int) T {
	return b.data[b.slot("ring.At", i).Int()]
}

// Set overwrites the element at signed offset i.
func (b *Buffer[T]) Set(i int, v T) {
	b.data[b.slot("ring.Set", i).Int()] = v
}

// Clear releases every live element front to back and empties the buffer.
func (b *Buffer[T]) Clear() {
	for !b.Empty() {
		b.PopFront()
	}
}

// All yields (offset, value) pairs front to back.
func (b *Buffer[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, idx := 0, b.head; !idx.Equal(b.tail); i, idx = i+1, idx.Add(1) {
			if !yield(i, b.data[idx.Int()]) {
				return
			}
		}
	}
}

// Values yields the elements front to back.
func (b *Buffer[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range b.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Backward yields (offset, value) pairs back to front.
func (b *Buffer[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		idx := b.tail
		for i := b.Len() - 1; i >= 0; i-- {
			idx.Dec()
			if !yield(i, b.data[idx.Int()]) {
				return
			}
		}
	}
}
