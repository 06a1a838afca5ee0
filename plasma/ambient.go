// Copyright 2026 The Pffdtd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plasma

import "math"

// Ambient supplies the per-species ambient number density N0 used to
// linearize the fluid equations. spec.md §9 treats this as a pluggable
// design variant: the legacy sources ship two incompatible versions,
// plasma.h (uniform ambient) and plasmaN3.h (cone-profile ambient); both
// are kept here as Ambient implementations selected at load time.
type Ambient interface {
	// N0 returns the ambient density of species m at cell (i,j,k).
	N0(m, i, j, k int) float64
}

// UniformAmbient is a scalar ambient density per species, constant over
// the whole grid -- the archive/plasma.h behavior.
type UniformAmbient struct {
	Values []float64 // per species
}

// NewUniformAmbient derives the electron ambient density from the plasma
// frequency and distributes it over the ion species by population
// fraction, matching spec.md §3 invariant 4 and §4 ("N_0[0] =
// 4*pi^2*fp^2*Me*eps0/Qe^2").
func NewUniformAmbient(freqPlasma float64, massElectron, chargeElectron, eps0 float64, populationFractions []float64) *UniformAmbient {
	n0e := 4 * math.Pi * math.Pi * freqPlasma * freqPlasma * massElectron * eps0 / (chargeElectron * chargeElectron)
	values := make([]float64, len(populationFractions)+1)
	values[0] = n0e
	for m, pop := range populationFractions {
		values[m+1] = n0e * pop
	}
	return &UniformAmbient{Values: values}
}

func (a *UniformAmbient) N0(m, i, j, k int) float64 { return a.Values[m] }

// ConeGeometry parameterizes the cone-profile ambient of plasmaN3.h: a cone
// of height Height cells along x starting at StartX, with a circular
// base of Diameter cells in y and z. Inside the cone, a point in the
// one-cell-wide shell R gets 1.18*(R+1)/(Rad+1) times the baseline, so the
// density rises from 1.18/(Rad+1) times the baseline at the axis to about
// 1.18 times at the outer radius, matching the legacy taper.
type ConeGeometry struct {
	Height, Diameter, StartX int
}

// ConeAmbient is the plasmaN3.h "cone-profile" ambient density variant.
type ConeAmbient struct {
	uniform *UniformAmbient
	geom    ConeGeometry
	sx, sy, sz int
}

// NewConeAmbient builds a cone-profile ambient density field over a grid
// of the given size, using the same electron/ion population split as
// NewUniformAmbient for the baseline (off-cone) density.
func NewConeAmbient(freqPlasma float64, massElectron, chargeElectron, eps0 float64, populationFractions []float64, geom ConeGeometry, sx, sy, sz int) *ConeAmbient {
	return &ConeAmbient{
		uniform: NewUniformAmbient(freqPlasma, massElectron, chargeElectron, eps0, populationFractions),
		geom:    geom,
		sx:      sx, sy: sy, sz: sz,
	}
}

func (a *ConeAmbient) N0(m, i, j, k int) float64 {
	base := a.uniform.Values[m]
	height, diameter, start := a.geom.Height, a.geom.Diameter, a.geom.StartX
	if height <= 0 || diameter <= 0 {
		return base
	}
	boxX := height
	if boxX > a.sx {
		boxX = a.sx
	}
	// center of the cone's circular cross-section in the y-z plane, and
	// the center of the base (same geometry as plasmaN3.h's c1/c2 vs c11/c22)
	cz := a.sz / 2
	cy := a.sy / 2
	if a.sz%2 != 0 {
		cz = (a.sz + 1) / 2
	}
	cBaseZ := diameter / 2

	if i < start || i > start+boxX-1 || i > a.sx {
		return base
	}
	// radius of the outer circle at this height: tapers linearly from the
	// base radius down to zero at the apex.
	frac := float64(i-start) / float64(boxX)
	rad := math.Abs(float64(cBaseZ) - frac*float64(cBaseZ))

	r := math.Sqrt(float64((j-cy)*(j-cy) + (k-cz)*(k-cz)))
	if rad <= 0 || r > rad {
		return base
	}
	// the concentric shell this point falls into: shells are one cell
	// wide, R=Rad at the outer edge down to R=0 at the axis.
	shell := math.Ceil(r)
	return base * 1.18 * (shell + 1) / (rad + 1)
}
