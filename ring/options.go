// File: ring/options.go
// Package ring defines functional options for Buffer construction.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package ring

import (
	"fmt"

	"github.com/momentics/hioload-containers/api"
)

// Option customizes buffer initialization.
type Option[T any] func(*Buffer[T]) error

// WithRelease registers fn to be called exactly once for every value that
// leaves the buffer: pop, eviction or Clear.
func WithRelease[T any](fn func(T)) Option[T] {
	return func(b *Buffer[T]) error {
		if fn == nil {
			return fmt.Errorf("release hook: %w", api.ErrInvalidArgument)
		}
		b.release = fn
		return nil
	}
}

// WithEvictionObserver registers fn to be called with every value a push
// overwrites. It runs after the release hook and must not mutate the buffer.
func WithEvictionObserver[T any](fn func(T)) Option[T] {
	return func(b *Buffer[T]) error {
		if fn == nil {
			return fmt.Errorf("eviction observer: %w", api.ErrInvalidArgument)
		}
		b.onEvict = fn
		return nil
	}
}
