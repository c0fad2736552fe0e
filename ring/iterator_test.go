package ring_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-containers/api"
	"github.com/momentics/hioload-containers/ring"
)

func TestIterator_ForwardWalk(t *testing.T) {
	rb := ring.MustNew[int](10)
	for i := 0; i < 9; i++ {
		rb.PushBack(i)
		require.Equal(t, 0, rb.Front())
		require.Equal(t, i, rb.Back())

		j := 0
		for it := rb.Begin(); !it.Equal(rb.End()); it = it.Next() {
			require.Equal(t, j, it.Value())
			require.Equal(t, j, it.Offset())
			j++
		}
		require.Equal(t, i+1, j)
	}
}

func TestIterator_FullBufferVisitsCapacity(t *testing.T) {
	for n := 2; n <= 9; n++ {
		rb := ring.MustNew[int](n)
		for i := 0; i < 3*n; i++ {
			rb.PushBack(i)
		}
		require.True(t, rb.Full())

		visited := 0
		for it := rb.Begin(); !it.Equal(rb.End()); it = it.Next() {
			visited++
		}
		assert.Equal(t, rb.Cap(), visited, "n=%d", n)

		visited = 0
		for range rb.All() {
			visited++
		}
		assert.Equal(t, rb.Cap(), visited, "n=%d", n)
	}
}

func TestIterator_WrapsAround(t *testing.T) {
	rb := ring.MustNew[int](4)
	for i := 0; i < 6; i++ {
		rb.PushBack(i)
	}
	require.Greater(t, rb.Begin().Index().Int(), rb.End().Index().Int(), "data should wrap")
	assert.Equal(t, []int{3, 4, 5}, slices.Collect(rb.Values()))

	var offsets, backward []int
	for i, v := range rb.Backward() {
		offsets = append(offsets, i)
		backward = append(backward, v)
	}
	assert.Equal(t, []int{2, 1, 0}, offsets)
	assert.Equal(t, []int{5, 4, 3}, backward)
}

func TestIterator_Set(t *testing.T) {
	rb := ring.MustNew(5, 1, 2, 3)
	for it := rb.Begin(); it.Valid(); it = it.Next() {
		it.Set(it.Value() + 100)
	}
	assert.Equal(t, []int{101, 102, 103}, slices.Collect(rb.Values()))
}

func TestIterator_EndIsNotDereferenceable(t *testing.T) {
	rb := ring.MustNew(5, 1, 2)
	assert.False(t, rb.End().Valid())
	requirePanicIs(t, api.ErrDetachedIterator, func() { rb.End().Value() })

	var zero ring.Iterator[int]
	requirePanicIs(t, api.ErrDetachedIterator, func() { zero.Value() })

	it := rb.Begin().Next()
	rb.PopBack()
	assert.False(t, it.Valid(), "popped element is outside the live range")
}

func TestIterator_AllStopsEarly(t *testing.T) {
	rb := ring.MustNew(6, 1, 2, 3, 4, 5)
	var got []int
	for i, v := range rb.All() {
		if i == 2 {
			break
		}
		got = append(got, v)
	}
	assert.Equal(t, []int{1, 2}, got)
}

func TestIterator_CannotStepPastEnd(t *testing.T) {
	full := ring.MustNew(4, 1, 2, 3)
	require.True(t, full.Full())
	requirePanicIs(t, api.ErrDetachedIterator, func() { full.End().Next() })

	empty := ring.MustNew[int](4)
	requirePanicIs(t, api.ErrDetachedIterator, func() { empty.Begin().Next() })

	last := full.Begin().Next().Next()
	assert.Equal(t, 3, last.Value())
	assert.True(t, last.Next().Equal(full.End()))
}
