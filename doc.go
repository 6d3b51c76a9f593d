// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package gamut provides bounded-domain dispatch and small generic companions
// in Go.
//
// The core operation [Apply] dispatches a runtime selector drawn from a
// dense, statically bounded domain — typically a named enumeration — to a
// single handler invocation. Selectors outside the domain dispatch nothing:
// the non-match is a supported outcome carried in the result, never a fault.
//
// # Design Philosophy
//
// gamut provides:
//   - One-match dispatch over dense enumerated domains, in two worlds
//   - Absence carried in values ([Option], bool), not in errors or panics
//   - Total numeric helpers with type-set constraints
//
// # Bounded Domains
//
// A domain is the dense constant set {0 … bound-1} of an integer-kinded type
// satisfying [Enum]. The bound is the enumeration's terminal counter, a
// build-time constant at every call site:
//
//	type Color int
//	const (
//		Red Color = iota
//		Green
//		Blue
//		colorCount
//	)
//
//   - [Apply]: value-mode dispatch, result in an [Option]
//   - [ApplyOption]: value-mode dispatch with the handler's own Option collapsed
//   - [Signal]: signal-mode dispatch for side-effect handlers, result a bool
//   - [Domain]: iterator over every constant of a domain
//
// # Dispatch Tables
//
// The second world materializes dispatch: [Unroll] runs a generator once per
// domain constant at construction time, baking each constant into a
// specialized branch, and [Table.Dispatch] indexes the matching branch in
// constant time. Per-constant work — lookup capture, precomputation, type
// selection — happens exactly once, up front.
//
//   - [Table], [Unroll]: value-mode branch table
//   - [SignalTable], [UnrollSignal]: signal-mode branch table
//
// Both worlds share the same observable contract: at most one handler runs
// per dispatch, and the two return conventions (Option vs bool) line up.
//
// # Option
//
// [Option] carries the value-mode result:
//
//   - [Some], [None]: Constructors
//   - [Option.IsSome], [Option.IsNone]: Predicates
//   - [Option.Get], [Option.Or], [Option.Unwrap]: Accessors
//   - [MatchOption]: Pattern matching
//   - [MapOption]: Functor map
//   - [FlatMapOption]: Monadic bind
//   - [Flatten]: Collapse one level of nesting
//
// # Scoped Release
//
// [Acquire] pairs a value with its release action; [Scoped.Release] runs the
// action at most once, so an early release composes with a deferred one.
// [With] brackets a whole scope, releasing on normal return and on panic
// unwinding alike.
//
// # Numeric Helpers
//
// Total functions over x/exp/constraints type sets:
//
//   - [Min], [Max]: Variadic ordering folds
//   - [Abs]: Absolute value
//   - [Range], [Span], [Range.Include], [Range.Contains]: Closed intervals
//   - [Range.Clamp], [ClampAbs]: Clamping
//   - [Epsilon], [EqualEps]: Machine-epsilon float comparison
//   - [RoundToward]: Direction-driven rounding
//
// # Shared Instances
//
// [Singleton.GetOrCreate] hands out a lazily constructed process-wide
// instance held behind a weak reference: alive exactly while callers hold a
// pointer, rebuilt on the first request after collection. Upgrade and create
// run under the Singleton's lock.
//
// # Example
//
//	type Color int
//	const (
//		Red Color = iota
//		Green
//		Blue
//		colorCount
//	)
//
//	names := gamut.Unroll(colorCount, func(c Color) func() string {
//		name := [...]string{"red", "green", "blue"}[c]
//		return func() string { return name }
//	})
//
//	names.Dispatch(Green).Or("unknown") // "green"
//	names.Dispatch(Color(7)).IsNone()   // true
package gamut
