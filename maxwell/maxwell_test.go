// Copyright 2026 The Pffdtd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package maxwell

import (
	"testing"

	"github.com/jward-usu/pffdtd/grid"

	"github.com/cpmech/gosl/chk"
)

func newTestGrid(tst *testing.T) *grid.Grid {
	g, err := grid.New(10, 10, 10, 1e-3, 1e-3, 1e-3, 2.998e8)
	if err != nil {
		tst.Fatalf("grid.New failed: %v", err)
	}
	return g
}

func TestUpdateEVacuumHoldsStillWithZeroFields(tst *testing.T) {
	chk.PrintTitle("maxwell: UpdateE on an all-zero vacuum grid stays zero")

	g := newTestGrid(tst)
	UpdateE(g, nil)
	chk.Scalar(tst, "ex interior", 1e-20, g.EX().Cur(5, 5, 5), 0)
}

func TestUpdateEPECCellSuppressed(tst *testing.T) {
	chk.PrintTitle("maxwell: UpdateE leaves a PEC cell's E at zero regardless of B")

	g := newTestGrid(tst)
	g.ERX().Set(5, 5, 5, 0) // PEC
	g.BZ().SetCur(5, 6, 5, 10)
	g.BY().SetCur(5, 5, 6, 10)
	UpdateE(g, nil)
	chk.Scalar(tst, "ex at PEC cell", 1e-20, g.EX().Cur(5, 5, 5), 0)
}

func TestUpdateBAdvancesFromCurlE(tst *testing.T) {
	chk.PrintTitle("maxwell: UpdateB advances from curl(E)")

	g := newTestGrid(tst)
	g.EY().SetCur(5, 5, 5, 1.0)
	UpdateB(g)
	cx := g.Dt / g.Dx
	expected := -1.0 * cx
	chk.Scalar(tst, "bz from curl(E)", 1e-15, g.BZ().Cur(5, 5, 5), expected)
}

type fakeCurrent struct{ jx, jy, jz, sig float64 }

func (f fakeCurrent) JX(i, j, k int) float64    { return f.jx }
func (f fakeCurrent) JY(i, j, k int) float64    { return f.jy }
func (f fakeCurrent) JZ(i, j, k int) float64    { return f.jz }
func (f fakeCurrent) Sigma(i, j, k int) float64 { return f.sig }

func TestUpdateEAppliesConductionCurrent(tst *testing.T) {
	chk.PrintTitle("maxwell: UpdateE subtracts the plasma conduction current")

	g := newTestGrid(tst)
	cur := fakeCurrent{jx: 3.0, sig: 1.0}
	UpdateE(g, cur)
	if g.EX().Cur(5, 5, 5) >= 0 {
		tst.Errorf("expected a negative perturbation from a positive JX, got %g", g.EX().Cur(5, 5, 5))
	}
}
