// Copyright 2026 The Pffdtd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plasma implements the C5 component: per-species bulk velocity U
// and perturbation density N with three time slots each, the conductivity
// and charging masks, and the momentum/continuity kernels that feed
// conduction current back into package maxwell (spec.md §4.5).
package plasma

import "github.com/jward-usu/pffdtd/grid"

// Species holds the per-species constants of spec.md §3: mass, charge, and
// the population fraction used to split ambient density across ions.
type Species struct {
	Mass, Charge, PopulationFraction float64
}

// scalarVolume is a single-slot (i,j,k) scalar field, used for SIG and QF.
// Kept local to this package (rather than reusing grid's unexported
// volume) since its only clients are the plasma kernels.
type scalarVolume struct {
	sx, sy, sz         int
	strideI, strideJ   int
	data               []float64
}

func newScalarVolume(sx, sy, sz int) *scalarVolume {
	ny, nz := sy+2, sz+2
	return &scalarVolume{sx: sx, sy: sy, sz: sz, strideI: ny * nz, strideJ: nz, data: make([]float64, (sx+2)*ny*nz)}
}

func (v *scalarVolume) idx(i, j, k int) int { return i*v.strideI + j*v.strideJ + k }
func (v *scalarVolume) At(i, j, k int) float64 { return v.data[v.idx(i, j, k)] }
func (v *scalarVolume) Set(i, j, k int, value float64) { v.data[v.idx(i, j, k)] = value }

// speciesField is the three-time-slot, per-species (i,j,k) storage used
// for UX, UY, UZ and N. The species axis is innermost, per spec.md §4.1's
// "slot/species axis innermost" convention, since the conduction-current
// sum (maxwell.Current) sweeps over species at fixed (i,j,k).
type speciesField struct {
	sx, sy, sz, ns   int
	strideI, strideJ int
	slots            [3][]float64
}

func newSpeciesField(sx, sy, sz, ns int) *speciesField {
	ny, nz := sy+2, sz+2
	ncells := (sx + 2) * ny * nz
	f := &speciesField{sx: sx, sy: sy, sz: sz, ns: ns, strideI: ny * nz * ns, strideJ: nz * ns}
	for s := range f.slots {
		f.slots[s] = make([]float64, ncells*ns)
	}
	return f
}

func (f *speciesField) idx(i, j, k, m int) int {
	return i*f.strideI + j*f.strideJ + k*f.ns + m
}

// At returns the value at time slot (0, 1 or 2) for species m at (i,j,k).
func (f *speciesField) At(slot, i, j, k, m int) float64 { return f.slots[slot][f.idx(i, j, k, m)] }

// Set writes the value at time slot (0, 1 or 2) for species m at (i,j,k).
func (f *speciesField) Set(slot, i, j, k, m int, value float64) {
	f.slots[slot][f.idx(i, j, k, m)] = value
}

// Shift performs the rolling-slot update at (i,j,k,m): [0]<-[1], [1]<-[2],
// per spec.md §3's "rolling rule invariant".
func (f *speciesField) Shift(i, j, k, m int) {
	n := f.idx(i, j, k, m)
	f.slots[0][n] = f.slots[1][n]
	f.slots[1][n] = f.slots[2][n]
}

// CyclotronAngles holds the magnetization-bias parameters of spec.md §4.5,
// in degrees as loaded from the scenario (converted to radians inside the
// kernel).
type CyclotronAngles struct {
	FreqCyc     float64
	ElevationDeg float64
	AzimuthDeg  float64
}

// State owns the full plasma fluid state for one run: per-species U/N,
// the conductivity (SIG) and charging (QF) masks, the species table, and
// the scalar run parameters (collision ratio, temperature, drift, cone or
// uniform ambient density).
type State struct {
	g       *grid.Grid
	Species []Species
	Ambient Ambient

	ux, uy, uz *speciesField
	n          *speciesField
	sig        *scalarVolume
	qf         *scalarVolume

	FreqPlasma float64
	FreqCol    float64 // ratio of FreqPlasma
	Cyclotron  CyclotronAngles
	Drift      [3]float64 // UX0, UY0, UZ0
	TempK      float64
	Charge     float64 // antenna charging delta, spec.md §3
}

// New allocates plasma state for a grid of the given size and species
// table. U and N start at zero everywhere (spec.md "Initial conditions").
func New(g *grid.Grid, species []Species, ambient Ambient) *State {
	ns := len(species)
	return &State{
		g:       g,
		Species: species,
		Ambient: ambient,
		ux:      newSpeciesField(g.Sx, g.Sy, g.Sz, ns),
		uy:      newSpeciesField(g.Sx, g.Sy, g.Sz, ns),
		uz:      newSpeciesField(g.Sx, g.Sy, g.Sz, ns),
		n:       newSpeciesField(g.Sx, g.Sy, g.Sz, ns),
		sig:     newScalarVolume(g.Sx, g.Sy, g.Sz),
		qf:      newScalarVolume(g.Sx, g.Sy, g.Sz),
	}
}

// NumSpecies returns the species count NS.
func (s *State) NumSpecies() int { return len(s.Species) }

// SIG returns the plasma conductivity mask value at (i,j,k).
func (s *State) SIG(i, j, k int) float64 { return s.sig.At(i, j, k) }

// QF returns the per-cell electron charging factor at (i,j,k).
func (s *State) QF(i, j, k int) float64 { return s.qf.At(i, j, k) }

// UX, UY, UZ sample species m's current-time bulk velocity at (i,j,k) (slot
// 1, the "current physics time" per spec.md §3's rolling-slot convention).
// Used by the .fd snapshot writer's Ue/Ui tuples.
func (s *State) UX(i, j, k, m int) float64 { return s.ux.At(1, i, j, k, m) }
func (s *State) UY(i, j, k, m int) float64 { return s.uy.At(1, i, j, k, m) }
func (s *State) UZ(i, j, k, m int) float64 { return s.uz.At(1, i, j, k, m) }

// N samples species m's current-time perturbation density at (i,j,k) (slot
// 1). N already holds the deviation from ambient (spec.md §3's "state
// variable actually simulated"), so no ambient subtraction is needed here.
func (s *State) N(i, j, k, m int) float64 { return s.n.At(1, i, j, k, m) }

// InitMasks sets SIG=1 on interior cells 6..sx-5 (etc.) where all three ER
// components are vacuum (==1), and QF=1 everywhere except antenna cells,
// which are set to Charge (spec.md §3). antennas is the set of antenna cell
// indices; both loops are driven by the scenario loader.
func (s *State) InitMasks(antennas [][3]int) {
	g := s.g
	for i := 1; i <= g.Sx; i++ {
		for j := 1; j <= g.Sy; j++ {
			for k := 1; k <= g.Sz; k++ {
				s.qf.Set(i, j, k, 1)
				s.sig.Set(i, j, k, 0)
			}
		}
	}
	for i := 6; i <= g.Sx-5; i++ {
		for j := 6; j <= g.Sy-5; j++ {
			for k := 6; k <= g.Sz-5; k++ {
				if g.ERX().At(i, j, k) == 1 && g.ERY().At(i, j, k) == 1 && g.ERZ().At(i, j, k) == 1 {
					s.sig.Set(i, j, k, 1)
				}
			}
		}
	}
	for _, ant := range antennas {
		s.qf.Set(ant[0], ant[1], ant[2], s.Charge)
	}
}
