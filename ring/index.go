// File: ring/index.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Index is the modular cursor type used by Buffer.

package ring

import (
	"fmt"

	"github.com/momentics/hioload-containers/api"
)

// Index is an integer kept in [0, n) by modular arithmetic.
//
// Equal, Compare and Less look at the raw wrapped value only, not at circular
// order: an index that wrapped past n compares as less than one that did not,
// even if it is circularly ahead. Use Distance for circular ordering.
type Index struct {
	v int
	n int
}

// NewIndex returns v reduced modulo n. n must be at least 2.
func NewIndex(v, n int) Index {
	if n < 2 {
		panic(api.Violation(api.ErrCodeInvalidArgument, "ring.NewIndex", api.ErrInvalidCapacity).
			WithContext("modulus", n))
	}
	return Index{v: wrap(v, n), n: n}
}

func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// Int returns the wrapped value.
func (i Index) Int() int { return i.v }

// Mod returns the modulus.
func (i Index) Mod() int { return i.n }

// Add returns i+k mod n.
func (i Index) Add(k int) Index {
	return Index{v: wrap(i.v+k, i.n), n: i.n}
}

// Sub returns i-k mod n.
func (i Index) Sub(k int) Index {
	return Index{v: wrap(i.v-k, i.n), n: i.n}
}

// AddIndex returns i+o mod n. Both indices must share the modulus.
func (i Index) AddIndex(o Index) Index {
	i.sameMod("ring.Index.AddIndex", o)
	return i.Add(o.v)
}

// SubIndex returns i-o mod n. Both indices must share the modulus.
func (i Index) SubIndex(o Index) Index {
	i.sameMod("ring.Index.SubIndex", o)
	return i.Sub(o.v)
}

func (i Index) sameMod(op string, o Index) {
	if i.n != o.n {
		panic(api.Violation(api.ErrCodeInvalidArgument, op, api.ErrIndexModMismatch).
			WithContext("left", i.n).
			WithContext("right", o.n))
	}
}

// Inc advances i by one and returns the previous value.
func (i *Index) Inc() Index {
	prev := *i
	i.v = (i.v + 1) % i.n
	return prev
}

// Dec moves i back by one and returns the previous value.
func (i *Index) Dec() Index {
	prev := *i
	i.v = (i.n + i.v - 1) % i.n
	return prev
}

// PreInc advances i by one and returns the new value.
func (i *Index) PreInc() Index {
	i.Inc()
	return *i
}

// PreDec moves i back by one and returns the new value.
func (i *Index) PreDec() Index {
	i.Dec()
	return *i
}

// Equal compares raw wrapped values.
func (i Index) Equal(o Index) bool {
	return i.v == o.v
}

// Compare returns -1, 0 or +1 comparing raw wrapped values.
func (i Index) Compare(o Index) int {
	switch {
	case i.v < o.v:
		return -1
	case i.v > o.v:
		return 1
	default:
		return 0
	}
}

// Less compares raw wrapped values.
func (i Index) Less(o Index) bool {
	return i.v < o.v
}

// Distance returns how many forward steps lead from `from` to i, in [0, n).
func (i Index) Distance(from Index) int {
	return i.SubIndex(from).v
}

func (i Index) String() string {
	return fmt.Sprintf("%d (mod %d)", i.v, i.n)
}
