// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gamut

// Materialized dispatch tables.
// Unroll runs a generator once per domain constant at construction time,
// baking each constant into a specialized branch; Dispatch then indexes the
// matching branch directly. The per-constant work — type selection, lookup
// capture, precomputation — happens exactly once, up front, so the dispatch
// path does none of it. All branches of one table share the single result
// type parameter; a branch set that cannot agree on one does not compile.

// Table dispatches a bounded domain to value-returning branches.
// A Table is immutable after construction and safe for concurrent dispatch.
// The zero value has an empty domain and never matches.
type Table[E Enum, A any] struct {
	branches []func() A
}

// Unroll builds a Table by instantiating one branch per domain constant.
// gen is invoked exactly once for every constant 0 … bound-1 in ascending
// order; the branch it returns runs whenever Dispatch matches that constant.
// bound <= 0 yields the empty table and gen is never invoked.
func Unroll[E Enum, A any](bound E, gen func(E) func() A) Table[E, A] {
	if bound <= 0 {
		return Table[E, A]{}
	}
	branches := make([]func() A, bound)
	for c := range Domain(bound) {
		branches[c] = gen(c)
	}
	return Table[E, A]{branches: branches}
}

// Dispatch invokes the branch matching value in value mode.
// Exactly one branch runs on a match; the result is absent when value falls
// outside the table's domain.
func (t Table[E, A]) Dispatch(value E) Option[A] {
	if value < 0 || value >= E(len(t.branches)) {
		return None[A]()
	}
	return Some(t.branches[value]())
}

// Bound returns the domain bound the table was built for.
func (t Table[E, A]) Bound() E {
	return E(len(t.branches))
}

// SignalTable dispatches a bounded domain to side-effect branches.
// A SignalTable is immutable after construction and safe for concurrent
// dispatch. The zero value has an empty domain and never matches.
type SignalTable[E Enum] struct {
	branches []func()
}

// UnrollSignal builds a SignalTable by instantiating one branch per domain
// constant; the instantiation contract is that of [Unroll].
func UnrollSignal[E Enum](bound E, gen func(E) func()) SignalTable[E] {
	if bound <= 0 {
		return SignalTable[E]{}
	}
	branches := make([]func(), bound)
	for c := range Domain(bound) {
		branches[c] = gen(c)
	}
	return SignalTable[E]{branches: branches}
}

// Dispatch invokes the branch matching value in signal mode.
// Returns true iff a branch ran.
func (t SignalTable[E]) Dispatch(value E) bool {
	if value < 0 || value >= E(len(t.branches)) {
		return false
	}
	t.branches[value]()
	return true
}

// Bound returns the domain bound the table was built for.
func (t SignalTable[E]) Bound() E {
	return E(len(t.branches))
}
