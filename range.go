// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gamut

import "golang.org/x/exp/constraints"

// Range is a closed interval [Min, Max].
type Range[T constraints.Ordered] struct {
	Min T
	Max T
}

// Span returns the tightest Range containing every argument.
func Span[T constraints.Ordered](first T, rest ...T) Range[T] {
	return Range[T]{Min: Min(first, rest...), Max: Max(first, rest...)}
}

// Include widens the range to contain v.
func (r *Range[T]) Include(v T) {
	r.Min = min(r.Min, v)
	r.Max = max(r.Max, v)
}

// Contains reports whether v lies in [Min, Max].
func (r Range[T]) Contains(v T) bool {
	return r.Min <= v && v <= r.Max
}

// Clamp limits v to the range: min(max(v, r.Min), r.Max).
// A malformed range (Min > Max) follows the formula and yields Max.
func (r Range[T]) Clamp(v T) T {
	return min(max(v, r.Min), r.Max)
}

// ClampAbs limits v to the symmetric range [-absMax, absMax].
// Signed types only: the bound is negated.
func ClampAbs[T constraints.Signed | constraints.Float](v, absMax T) T {
	return Range[T]{Min: -absMax, Max: absMax}.Clamp(v)
}
