// Copyright 2026 The Pffdtd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package boundary

import (
	"testing"

	"github.com/jward-usu/pffdtd/grid"

	"github.com/cpmech/gosl/chk"
)

func TestApplyOnZeroFieldStaysZero(tst *testing.T) {
	chk.PrintTitle("boundary: ABC on an all-zero grid leaves the outer shell at zero")

	g, err := grid.New(8, 8, 8, 1e-3, 1e-3, 1e-3, 2.998e8)
	if err != nil {
		tst.Fatalf("grid.New failed: %v", err)
	}
	abc := New(g)
	abc.Apply(g, 2.998e8)
	chk.Scalar(tst, "ey at x=1 face", 1e-20, g.EY().Cur(1, 4, 4), 0)
}

func TestKappaIsBoundedForCourantLimitedDt(tst *testing.T) {
	chk.PrintTitle("boundary: kappa stays in (-1,1) for dt below the Courant limit")

	k := kappa(2.998e8, 1e-3/(2*2.998e8), 1e-3)
	if k <= -1 || k >= 1 {
		tst.Errorf("kappa out of range: got %g", k)
	}
}

func TestClearZeroesHistoryPlanes(tst *testing.T) {
	chk.PrintTitle("boundary: Clear zeros previously-written history planes")

	g, err := grid.New(6, 6, 6, 1e-3, 1e-3, 1e-3, 2.998e8)
	if err != nil {
		tst.Fatalf("grid.New failed: %v", err)
	}
	abc := New(g)
	abc.x0.set(1, 1, 5, 7)
	abc.Clear()
	a, b := abc.x0.get(1, 1)
	chk.Scalar(tst, "cleared a", 1e-20, a, 0)
	chk.Scalar(tst, "cleared b", 1e-20, b, 0)
}
