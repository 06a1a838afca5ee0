// Copyright 2026 The Pffdtd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plasma

import (
	"math"

	"github.com/jward-usu/pffdtd/grid"
	"github.com/jward-usu/pffdtd/internal/constants"
)

// bias holds the magnetization bias vector and the static effective-E
// term, both constant for the duration of a step (spec.md §4.5).
type bias struct {
	bx0, by0, bz0 float64
	eeX, eeY, eeZ float64
}

func (s *State) computeBias() bias {
	omega := 2 * math.Pi * s.Cyclotron.FreqCyc
	thetaE := s.Cyclotron.ElevationDeg * math.Pi / 180
	thetaA := s.Cyclotron.AzimuthDeg * math.Pi / 180
	k := omega * constants.MassElectron / constants.ChargeElectron
	bx0 := k * math.Sin(thetaE) * math.Cos(thetaA)
	by0 := k * math.Sin(thetaE) * math.Sin(thetaA)
	bz0 := k * math.Cos(thetaE)
	ux0, uy0, uz0 := s.Drift[0], s.Drift[1], s.Drift[2]
	return bias{
		bx0: bx0, by0: by0, bz0: bz0,
		eeX: uy0*bz0 - uz0*by0,
		eeY: uz0*bx0 - ux0*bz0,
		eeZ: ux0*by0 - uy0*bx0,
	}
}

// Ucalc advances the bulk velocity U for every species on the active
// plasma band 4<=i<sx-3 (etc.), per spec.md §4.5. The momentum equation is
// reproduced literally, including the grouping of terms: QF gates only the
// electric/magnetic group; the thermal-pressure term sits outside QF but
// is still divided by mass; the collisional-damping term is wholly
// separate (not divided by mass, not gated by QF), matching
// src/physics/plasma.h's Ucalc.
func (s *State) Ucalc(g *grid.Grid) {
	dt := g.Dt
	cU1 := 2 * dt
	cU2 := 4 * math.Pi * dt
	cUTx := constants.Boltzmann * s.TempK * dt / g.Dx
	cUTy := constants.Boltzmann * s.TempK * dt / g.Dy
	cUTz := constants.Boltzmann * s.TempK * dt / g.Dz

	b := s.computeBias()
	ux0, uy0, uz0 := s.Drift[0], s.Drift[1], s.Drift[2]

	bx, by, bz := g.BX(), g.BY(), g.BZ()
	ex, ey, ez := g.EX(), g.EY(), g.EZ()

	ns := s.NumSpecies()
	for i := 4; i < g.Sx-3; i++ {
		for j := 4; j < g.Sy-3; j++ {
			for k := 4; k < g.Sz-3; k++ {
				qf := s.qf.At(i, j, k)

				abx := (bx.Prev(i, j, k) + bx.Prev(i, j+1, k) + bx.Prev(i, j+1, k+1) + bx.Prev(i, j, k+1) +
					bx.Cur(i, j, k) + bx.Cur(i, j+1, k) + bx.Cur(i, j+1, k+1) + bx.Cur(i, j, k+1)) / 8
				aby := (by.Prev(i, j, k) + by.Prev(i+1, j, k) + by.Prev(i+1, j, k+1) + by.Prev(i, j, k+1) +
					by.Cur(i, j, k) + by.Cur(i+1, j, k) + by.Cur(i+1, j, k+1) + by.Cur(i, j, k+1)) / 8
				abz := (bz.Prev(i, j, k) + bz.Prev(i+1, j, k) + bz.Prev(i+1, j+1, k) + bz.Prev(i, j+1, k) +
					bz.Cur(i, j, k) + bz.Cur(i+1, j, k) + bz.Cur(i+1, j+1, k) + bz.Cur(i, j+1, k)) / 8

				for m := 0; m < ns; m++ {
					s.ux.Shift(i, j, k, m)
					s.uy.Shift(i, j, k, m)
					s.uz.Shift(i, j, k, m)

					q, mass := s.Species[m].Charge, s.Species[m].Mass
					n0 := s.Ambient.N0(m, i, j, k)

					u0x := s.ux.At(0, i, j, k, m)
					u1x := s.ux.At(1, i, j, k, m)
					u1y := s.uy.At(1, i, j, k, m)
					u1z := s.uz.At(1, i, j, k, m)

					nNext := s.n.At(2, i+1, j, k, m)
					nPrev := s.n.At(2, i-1, j, k, m)
					newX := u0x + (qf*(q*dt*(ex.Cur(i, j, k)+ex.Cur(i+1, j, k))+
						q*cU1*(u1y*b.bz0+uy0*abz-u1z*b.by0-uz0*aby+b.eeX))-
						cUTx*(nNext-nPrev)/n0)/mass -
						cU2*s.FreqCol*s.FreqPlasma*(u1x-ux0)
					s.ux.Set(2, i, j, k, m, newX)

					u0y := s.uy.At(0, i, j, k, m)
					nNextY := s.n.At(2, i, j+1, k, m)
					nPrevY := s.n.At(2, i, j-1, k, m)
					newY := u0y + (qf*(q*dt*(ey.Cur(i, j, k)+ey.Cur(i, j+1, k))+
						q*cU1*(u1z*b.bx0+uz0*abx-u1x*b.bz0-ux0*abz+b.eeY))-
						cUTy*(nNextY-nPrevY)/n0)/mass -
						cU2*s.FreqCol*s.FreqPlasma*(u1y-uy0)
					s.uy.Set(2, i, j, k, m, newY)

					u0z := s.uz.At(0, i, j, k, m)
					nNextZ := s.n.At(2, i, j, k+1, m)
					nPrevZ := s.n.At(2, i, j, k-1, m)
					newZ := u0z + (qf*(q*dt*(ez.Cur(i, j, k)+ez.Cur(i, j, k+1))+
						q*cU1*(u1x*b.by0+ux0*aby-u1y*b.bx0-uy0*abx+b.eeZ))-
						cUTz*(nNextZ-nPrevZ)/n0)/mass -
						cU2*s.FreqCol*s.FreqPlasma*(u1z-uz0)
					s.uz.Set(2, i, j, k, m, newZ)
				}
			}
		}
	}
}

// Ncalc advances the perturbation density N for every species on
// 5<=i<sx-4 (etc.), per spec.md §4.5.
func (s *State) Ncalc(g *grid.Grid) {
	cx, cy, cz := g.Dt/g.Dx, g.Dt/g.Dy, g.Dt/g.Dz
	ux0, uy0, uz0 := s.Drift[0], s.Drift[1], s.Drift[2]
	ns := s.NumSpecies()

	for i := 5; i < g.Sx-4; i++ {
		for j := 5; j < g.Sy-4; j++ {
			for k := 5; k < g.Sz-4; k++ {
				for m := 0; m < ns; m++ {
					s.n.Shift(i, j, k, m)
					n0 := s.Ambient.N0(m, i, j, k)
					n0term := n0 * ((s.ux.At(1, i+1, j, k, m)-s.ux.At(1, i-1, j, k, m))*cx +
						(s.uy.At(1, i, j+1, k, m)-s.uy.At(1, i, j-1, k, m))*cy +
						(s.uz.At(1, i, j, k+1, m)-s.uz.At(1, i, j, k-1, m))*cz)
					advect := ux0*(s.n.At(1, i+1, j, k, m)-s.n.At(1, i-1, j, k, m))*cx +
						uy0*(s.n.At(1, i, j+1, k, m)-s.n.At(1, i, j-1, k, m))*cy +
						uz0*(s.n.At(1, i, j, k+1, m)-s.n.At(1, i, j, k-1, m))*cz
					newN := s.n.At(0, i, j, k, m) - (n0term + advect)
					s.n.Set(2, i, j, k, m, newN)
				}
			}
		}
	}
}

// band returns the active-band margins used by UBC/NBC: three cells, per
// spec.md §4.5 ("clamp the fluid state on the outermost three cells of
// the active band to the interior value at band_start/band_end").
type band struct {
	loI, hiI int
	loJ, hiJ int
	loK, hiK int
}

func ubcBand(g *grid.Grid) band {
	return band{loI: 4, hiI: g.Sx - 4, loJ: 4, hiJ: g.Sy - 4, loK: 4, hiK: g.Sz - 4}
}

func nbcBand(g *grid.Grid) band {
	return band{loI: 5, hiI: g.Sx - 5, loJ: 5, hiJ: g.Sy - 5, loK: 5, hiK: g.Sz - 5}
}

// UBC clamps U on the outermost three cells of the momentum band to the
// interior value at the band edge, on all three axes independently.
func (s *State) UBC(g *grid.Grid) {
	b := ubcBand(g)
	ns := s.NumSpecies()
	for m := 0; m < ns; m++ {
		clampAxisI(s.ux, b, m, 3)
		clampAxisI(s.uy, b, m, 3)
		clampAxisI(s.uz, b, m, 3)
		clampAxisJ(s.ux, b, m, 3)
		clampAxisJ(s.uy, b, m, 3)
		clampAxisJ(s.uz, b, m, 3)
		clampAxisK(s.ux, b, m, 3)
		clampAxisK(s.uy, b, m, 3)
		clampAxisK(s.uz, b, m, 3)
	}
}

// NBC clamps N on the outermost three cells of the continuity band.
func (s *State) NBC(g *grid.Grid) {
	b := nbcBand(g)
	ns := s.NumSpecies()
	for m := 0; m < ns; m++ {
		clampAxisI(s.n, b, m, 3)
		clampAxisJ(s.n, b, m, 3)
		clampAxisK(s.n, b, m, 3)
	}
}

func clampAxisI(f *speciesField, b band, m, margin int) {
	for j := b.loJ; j <= b.hiJ; j++ {
		for k := b.loK; k <= b.hiK; k++ {
			loVal := f.At(2, b.loI, j, k, m)
			hiVal := f.At(2, b.hiI, j, k, m)
			for d := 1; d <= margin; d++ {
				f.Set(2, b.loI-d, j, k, m, loVal)
				f.Set(2, b.hiI+d, j, k, m, hiVal)
			}
		}
	}
}

func clampAxisJ(f *speciesField, b band, m, margin int) {
	for i := b.loI; i <= b.hiI; i++ {
		for k := b.loK; k <= b.hiK; k++ {
			loVal := f.At(2, i, b.loJ, k, m)
			hiVal := f.At(2, i, b.hiJ, k, m)
			for d := 1; d <= margin; d++ {
				f.Set(2, i, b.loJ-d, k, m, loVal)
				f.Set(2, i, b.hiJ+d, k, m, hiVal)
			}
		}
	}
}

func clampAxisK(f *speciesField, b band, m, margin int) {
	for i := b.loI; i <= b.hiI; i++ {
		for j := b.loJ; j <= b.hiJ; j++ {
			loVal := f.At(2, i, j, b.loK, m)
			hiVal := f.At(2, i, j, b.hiK, m)
			for d := 1; d <= margin; d++ {
				f.Set(2, i, j, b.loK-d, m, loVal)
				f.Set(2, i, j, b.hiK+d, m, hiVal)
			}
		}
	}
}
