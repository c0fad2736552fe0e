package ring_test

import (
	"testing"

	"github.com/eapache/queue"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/momentics/hioload-containers/ring"
)

// TestRing_FIFOMatchesQueue checks push-back/pop-front traffic against an
// unbounded queue that drops its head whenever the ring would evict.
func TestRing_FIFOMatchesQueue(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(2, 32).Draw(t, "n")
		rb := ring.MustNew[int](n)
		q := queue.New()

		ops := rapid.IntRange(1, 300).Draw(t, "ops")
		for i := 0; i < ops; i++ {
			if rapid.IntRange(0, 2).Draw(t, "op") < 2 {
				v := rapid.Int().Draw(t, "v")
				if q.Length() == rb.Cap() {
					q.Remove()
				}
				q.Add(v)
				rb.PushBack(v)
			} else if q.Length() > 0 {
				require.Equal(t, q.Remove(), rb.PopFront())
			}

			require.Equal(t, q.Length(), rb.Len())
			require.Equal(t, q.Length() == rb.Cap(), rb.Full())
			for j := 0; j < q.Length(); j++ {
				require.Equal(t, q.Get(j), rb.At(j))
				require.Equal(t, q.Get(-j-1), rb.At(-j-1))
			}
		}
	})
}

// TestRing_DequeMatchesSliceModel covers both ends, including eviction from
// the back on PushFront.
func TestRing_DequeMatchesSliceModel(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(2, 16).Draw(t, "n")
		rb := ring.MustNew[int](n)
		var model []int

		ops := rapid.IntRange(1, 200).Draw(t, "ops")
		for i := 0; i < ops; i++ {
			switch op := rapid.IntRange(0, 4).Draw(t, "op"); {
			case op == 0:
				v := rapid.Int().Draw(t, "v")
				rb.PushBack(v)
				model = append(model, v)
				if len(model) > n-1 {
					model = model[1:]
				}
			case op == 1:
				v := rapid.Int().Draw(t, "v")
				rb.PushFront(v)
				model = append([]int{v}, model...)
				if len(model) > n-1 {
					model = model[:len(model)-1]
				}
			case op == 2 && len(model) > 0:
				require.Equal(t, model[len(model)-1], rb.PopBack())
				model = model[:len(model)-1]
			case op == 3 && len(model) > 0:
				require.Equal(t, model[0], rb.PopFront())
				model = model[1:]
			case op == 4:
				rb.Clear()
				model = nil
			}

			require.Equal(t, len(model), rb.Len())
			require.Equal(t, len(model) == 0, rb.Empty())
			if diff := cmp.Diff(model, values(rb), cmpopts.EquateEmpty()); diff != "" {
				t.Fatalf("ring diverged from model (-want +got):\n%s", diff)
			}
		}
	})
}
