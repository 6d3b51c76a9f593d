// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gamut

import "sync/atomic"

// Scoped resource release.
// A Scoped pairs a value with the action that releases it and guarantees the
// action runs at most once no matter how often release is requested.

// Scoped holds a value together with its one-shot release action.
type Scoped[T any] struct {
	used    atomic.Uintptr
	value   T
	release func(T)
}

// Acquire pairs a value with its release action.
// The conventional use defers the release at the acquisition site, which
// covers every exit path of the enclosing function:
//
//	h := gamut.Acquire(open(), close)
//	defer h.Release()
func Acquire[T any](v T, release func(T)) *Scoped[T] {
	return &Scoped[T]{value: v, release: release}
}

// Get returns the held value.
func (s *Scoped[T]) Get() T {
	return s.value
}

// Release runs the release action with the held value.
// Only the first call runs the action; later calls are no-ops, so an early
// Release composes with a deferred one.
func (s *Scoped[T]) Release() {
	if s.used.Add(1) != 1 {
		return
	}
	s.release(s.value)
}

// With runs use with a value whose release is guaranteed afterward, on
// normal return and on panic unwinding alike.
func With[T, A any](v T, release func(T), use func(T) A) A {
	defer release(v)
	return use(v)
}
