// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gamut

import "golang.org/x/exp/constraints"

// Min returns the smallest of its arguments.
// Unlike the min builtin it accepts a runtime argument list: Min(v, vs...).
func Min[T constraints.Ordered](first T, rest ...T) T {
	m := first
	for _, v := range rest {
		m = min(m, v)
	}
	return m
}

// Max returns the largest of its arguments.
// Unlike the max builtin it accepts a runtime argument list: Max(v, vs...).
func Max[T constraints.Ordered](first T, rest ...T) T {
	m := first
	for _, v := range rest {
		m = max(m, v)
	}
	return m
}

// Abs returns the absolute value of x.
func Abs[T constraints.Signed | constraints.Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}
