// Copyright 2026 The Pffdtd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package maxwell implements the C3 component: advancing E from curl B
// (plus plasma conduction current, when enabled) and B from curl E, over
// the interior domain 2<=i<sx, 2<=j<sy, 2<=k<sz (spec.md §4.3). The outer
// one-cell shell on every side is owned by package boundary.
package maxwell

import (
	"github.com/jward-usu/pffdtd/grid"
	"github.com/jward-usu/pffdtd/internal/constants"
)

// Current supplies the plasma conduction current at (i,j,k) for each axis;
// package plasma implements this. Passing nil disables the plasma term
// (vacuum mode).
type Current interface {
	JX(i, j, k int) float64
	JY(i, j, k int) float64
	JZ(i, j, k int) float64
	Sigma(i, j, k int) float64
}

// UpdateE advances E from curl(B), augmented by the plasma conduction
// current when j is non-nil (spec.md §4.3). PEC cells (ER==0) are
// suppressed exactly by the ER multiplier.
func UpdateE(g *grid.Grid, j Current) {
	cx := g.Dt / (constants.MU0 * constants.Eps0 * g.Dx)
	cy := g.Dt / (constants.MU0 * constants.Eps0 * g.Dy)
	cz := g.Dt / (constants.MU0 * constants.Eps0 * g.Dz)
	cMu := g.Dt / (2 * constants.Eps0)

	ex, ey, ez := g.EX(), g.EY(), g.EZ()
	bx, by, bz := g.BX(), g.BY(), g.BZ()
	erx, ery, erz := g.ERX(), g.ERY(), g.ERZ()

	for i := 2; i < g.Sx; i++ {
		for jj := 2; jj < g.Sy; jj++ {
			for k := 2; k < g.Sz; k++ {
				ex.SaveOld(i, jj, k)
				ey.SaveOld(i, jj, k)
				ez.SaveOld(i, jj, k)

				erX := erx.At(i, jj, k)
				erY := ery.At(i, jj, k)
				erZ := erz.At(i, jj, k)

				newX := ex.Prev(i, jj, k) + ((bz.Cur(i, jj+1, k)-bz.Cur(i, jj, k))*cy-(by.Cur(i, jj, k+1)-by.Cur(i, jj, k))*cz)*erX
				newY := ey.Prev(i, jj, k) + ((bx.Cur(i, jj, k+1)-bx.Cur(i, jj, k))*cz-(bz.Cur(i+1, jj, k)-bz.Cur(i, jj, k))*cx)*erY
				newZ := ez.Prev(i, jj, k) + ((by.Cur(i+1, jj, k)-by.Cur(i, jj, k))*cx-(bx.Cur(i, jj+1, k)-bx.Cur(i, jj, k))*cy)*erZ

				if j != nil {
					sig := j.Sigma(i, jj, k)
					newX -= cMu * sig * j.JX(i, jj, k) * erX
					newY -= cMu * sig * j.JY(i, jj, k) * erY
					newZ -= cMu * sig * j.JZ(i, jj, k) * erZ
				}

				ex.SetCur(i, jj, k, newX)
				ey.SetCur(i, jj, k, newY)
				ez.SetCur(i, jj, k, newZ)
			}
		}
	}
}

// UpdateB advances B from curl(E). B always uses the vacuum stencil; there
// is no material term (spec.md §4.3).
func UpdateB(g *grid.Grid) {
	cx := g.Dt / g.Dx
	cy := g.Dt / g.Dy
	cz := g.Dt / g.Dz

	ex, ey, ez := g.EX(), g.EY(), g.EZ()
	bx, by, bz := g.BX(), g.BY(), g.BZ()

	for i := 2; i < g.Sx; i++ {
		for j := 2; j < g.Sy; j++ {
			for k := 2; k < g.Sz; k++ {
				bx.SaveOld(i, j, k)
				by.SaveOld(i, j, k)
				bz.SaveOld(i, j, k)

				newX := bx.Prev(i, j, k) + (ey.Cur(i, j, k)-ey.Cur(i, j, k-1))*cz - (ez.Cur(i, j, k)-ez.Cur(i, j-1, k))*cy
				newY := by.Prev(i, j, k) + (ez.Cur(i, j, k)-ez.Cur(i-1, j, k))*cx - (ex.Cur(i, j, k)-ex.Cur(i, j, k-1))*cz
				newZ := bz.Prev(i, j, k) + (ex.Cur(i, j, k)-ex.Cur(i, j-1, k))*cy - (ey.Cur(i, j, k)-ey.Cur(i-1, j, k))*cx

				bx.SetCur(i, j, k, newX)
				by.SetCur(i, j, k, newY)
				bz.SetCur(i, j, k, newZ)
			}
		}
	}
}
