// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gamut

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Epsilon returns the machine epsilon of T: the gap between 1 and the next
// representable value, 2⁻²³ for float32 and 2⁻⁵² for float64.
func Epsilon[T constraints.Float]() T {
	// 1 + 2⁻²⁴ is representable in float64 but rounds to 1 in float32.
	if T(1)+T(0x1p-24) == T(1) {
		return T(0x1p-23)
	}
	return T(0x1p-52)
}

// EqualEps reports whether |a-b| <= [Epsilon].
// The tolerance is not scaled, so the comparison is only meaningful for
// values near magnitude 1; larger magnitudes need a scaled tolerance.
func EqualEps[T constraints.Float](a, b T) bool {
	return Abs(a-b) <= Epsilon[T]()
}

// RoundToward rounds x up when dir >= 0 and down otherwise.
func RoundToward[T constraints.Float](x, dir T) T {
	if dir >= 0 {
		return T(math.Ceil(float64(x)))
	}
	return T(math.Floor(float64(x)))
}
