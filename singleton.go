// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gamut

import (
	"sync"
	"weak"
)

// Singleton hands out a shared instance of T, constructing it on demand and
// retaining it only weakly: the instance stays alive exactly while callers
// hold a returned pointer, and the first GetOrCreate after the collector
// reclaims it constructs a fresh one. The garbage collector plays the role
// of the reference count.
//
// The zero value is ready for use. A Singleton must not be copied after
// first use.
type Singleton[T any] struct {
	mu  sync.Mutex
	ref weak.Pointer[T]
}

// GetOrCreate returns the live shared instance, constructing one via factory
// when none exists. Upgrade and create both happen under the Singleton's
// lock, so concurrent callers observe exactly one construction per instance
// lifetime, and the factory never runs twice concurrently.
//
// A nil factory result is returned but not retained.
func (s *Singleton[T]) GetOrCreate(factory func() *T) *T {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p := s.ref.Value(); p != nil {
		return p
	}
	p := factory()
	s.ref = weak.Make(p)
	return p
}
