// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gamut_test

import (
	"math"
	"testing"

	"code.hybscloud.com/gamut"
)

func TestEpsilonFloat32(t *testing.T) {
	eps := gamut.Epsilon[float32]()
	if eps != float32(0x1p-23) {
		t.Fatalf("got %v, want %v", eps, float32(0x1p-23))
	}
	if float32(1)+eps == float32(1) {
		t.Fatal("1 + eps must be distinguishable from 1")
	}
	if float32(1)+eps/2 != float32(1) {
		t.Fatal("1 + eps/2 must round back to 1")
	}
}

func TestEpsilonFloat64(t *testing.T) {
	eps := gamut.Epsilon[float64]()
	if eps != 0x1p-52 {
		t.Fatalf("got %v, want %v", eps, 0x1p-52)
	}
	if 1+eps == 1 {
		t.Fatal("1 + eps must be distinguishable from 1")
	}
	if 1+eps/2 != 1 {
		t.Fatal("1 + eps/2 must round back to 1")
	}
}

func TestEqualEps(t *testing.T) {
	if !gamut.EqualEps(1.0, 1.0) {
		t.Fatal("expected exact equality to hold")
	}

	eps := gamut.Epsilon[float64]()
	if !gamut.EqualEps(1.0, 1.0+eps) {
		t.Fatal("expected values one epsilon apart to compare equal")
	}
	if gamut.EqualEps(1.0, 1.0+3*eps) {
		t.Fatal("expected values three epsilons apart to differ")
	}

	// The canonical accumulated-error case. The operands are variables so
	// the sum is computed in float64, not folded exactly by the compiler.
	a, b := 0.1, 0.2
	if !gamut.EqualEps(a+b, 0.3) {
		t.Fatal("expected 0.1+0.2 to compare equal to 0.3")
	}
	if a+b == 0.3 {
		t.Fatal("exact comparison should have failed here")
	}
}

func TestEqualEpsFloat32(t *testing.T) {
	eps := gamut.Epsilon[float32]()
	if !gamut.EqualEps(float32(1), float32(1)+eps) {
		t.Fatal("expected values one epsilon apart to compare equal")
	}
	if gamut.EqualEps(float32(1), float32(1)+3*eps) {
		t.Fatal("expected values three epsilons apart to differ")
	}
}

func TestEqualEpsNaN(t *testing.T) {
	nan := math.NaN()
	if gamut.EqualEps(nan, nan) {
		t.Fatal("NaN must not compare equal to anything")
	}
	if gamut.EqualEps(nan, 0) {
		t.Fatal("NaN must not compare equal to anything")
	}
}

func TestRoundToward(t *testing.T) {
	for _, tc := range []struct {
		x, dir, want float64
	}{
		{2.3, 1, 3},
		{2.3, -1, 2},
		{-2.3, 1, -2},
		{-2.3, -1, -3},
		{2, 1, 2},
		{2, -1, 2},
		{2.5, 0, 3},
	} {
		if got := gamut.RoundToward(tc.x, tc.dir); got != tc.want {
			t.Fatalf("RoundToward(%v, %v): got %v, want %v", tc.x, tc.dir, got, tc.want)
		}
	}
}

func TestRoundTowardFloat32(t *testing.T) {
	if got := gamut.RoundToward(float32(1.2), 1); got != 2 {
		t.Fatalf("got %v, want 2", got)
	}
	if got := gamut.RoundToward(float32(1.8), -1); got != 1 {
		t.Fatalf("got %v, want 1", got)
	}
}
