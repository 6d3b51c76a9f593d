// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gamut

import "golang.org/x/exp/constraints"

// Bounded-domain dispatch.
// A runtime selector drawn from the dense domain {0 … bound-1} chooses one
// handler invocation; selectors outside the domain choose nothing. The
// non-match is a supported outcome, not a fault: no call here panics or
// returns an error.

// Enum constrains the selector type of a bounded domain: any integer-kinded
// type, typically a named enumeration whose constants run 0 … bound-1 with a
// terminal counter as the bound:
//
//	type Color int
//	const (
//		Red Color = iota
//		Green
//		Blue
//		colorCount
//	)
//
// The bound is part of the enumeration's declaration, which keeps the domain
// a build-time constant at every call site.
type Enum interface {
	constraints.Integer
}

// Apply dispatches value against the domain {0 … bound-1} in value mode.
// When value lies in the domain, fn is invoked exactly once with the matched
// constant and the result is returned present; otherwise fn is never invoked
// and the result is absent. bound <= 0 is the empty domain and never matches.
//
// Apply is referentially transparent given its arguments: it has no state
// across calls and no side effects beyond fn's own.
//
// With A = Option[X] the two layers of absence stay separate — an absent
// outer Option means "not dispatched", Some(None) means "dispatched, handler
// returned no value". Use [ApplyOption] when the collapsed form is wanted.
func Apply[E Enum, A any](value, bound E, fn func(E) A) Option[A] {
	if value < 0 || value >= bound {
		return None[A]()
	}
	return Some(fn(value))
}

// ApplyOption dispatches like [Apply] and collapses the handler's own
// optional result into the dispatch result: a matched handler's return value
// passes through unchanged, a non-match yields the absent Option. The two
// absences are indistinguishable here by construction; callers that need the
// distinction use [Apply] directly.
func ApplyOption[E Enum, A any](value, bound E, fn func(E) Option[A]) Option[A] {
	return Flatten(Apply(value, bound, fn))
}

// Signal dispatches value against the domain {0 … bound-1} in signal mode,
// for handlers invoked purely for their side effects. Returns true iff fn
// was invoked; a non-match returns false with fn never invoked.
func Signal[E Enum](value, bound E, fn func(E)) bool {
	if value < 0 || value >= bound {
		return false
	}
	fn(value)
	return true
}
