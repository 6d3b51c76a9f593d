// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gamut

import "iter"

// Domain returns an iterator over the domain constants 0 … bound-1 in
// ascending order. The sequence is empty for bound <= 0.
//
// Domain is the exhaustive counterpart of [Apply]: ranging over it visits
// every constant, dispatch visits at most one. [Unroll] consumes it to
// instantiate one branch per constant.
func Domain[E Enum](bound E) iter.Seq[E] {
	return func(yield func(E) bool) {
		for c := E(0); c < bound; c++ {
			if !yield(c) {
				return
			}
		}
	}
}
