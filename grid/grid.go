// Copyright 2026 The Pffdtd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package grid implements the C1 component: the staggered Yee-grid field
// store (E, B, relative-inverse-permittivity volumes) and the source
// location/parameter table, plus the run-wide simulation constants.
package grid

import (
	"github.com/jward-usu/pffdtd/internal/status"
)

// Axis names an E-component / Yee edge direction.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	default:
		return "?"
	}
}

// Kind enumerates the seven waveform kinds of spec.md §4.2. Defined here
// (rather than in package source) because the source table is part of the
// grid's data model (spec.md §3).
type Kind int

const (
	Sine Kind = iota
	Pulse
	RaisedCosine
	Gaussian
	GaussianDerivative
	DC
	Sinc
)

// Source is one entry of the source table (spec.md §3). Loc is 1-based.
type Source struct {
	Loc      [3]int // (i,j,k)
	Axis     Axis
	Kind     Kind
	Param    float64
	Volt     float64
	Current  float64
}

// Grid owns the staggered field arrays, the relative-inverse-permittivity
// volumes, the source table, and the simulation constants for one run. It
// is created once by the scenario loader and lives for the lifetime of the
// simulation (spec.md "Ownership & lifecycle").
type Grid struct {
	Sx, Sy, Sz int
	Dx, Dy, Dz float64
	Dt         float64
	Df         float64

	ex, ey, ez *field
	bx, by, bz *field

	erx, ery, erz *volume

	Sources []*Source
}

// New allocates a grid of the given cell counts and cell sizes. Dt is
// derived per spec.md §3 (dt = dx/(2c)); allocation failure is fatal
// (status.AllocFail, exit code 2) and is surfaced as an error rather than
// a raw Go panic so that main can map it to the documented exit code.
func New(sx, sy, sz int, dx, dy, dz, lightSpeed float64) (g *Grid, err error) {
	if sx <= 0 || sy <= 0 || sz <= 0 {
		return nil, status.New(status.AllocFail, "grid dimensions must be positive: got (%d,%d,%d)", sx, sy, sz)
	}
	defer func() {
		if r := recover(); r != nil {
			g = nil
			err = status.New(status.AllocFail, "failed to allocate grid arrays: %v", r)
		}
	}()
	g = &Grid{
		Sx: sx, Sy: sy, Sz: sz,
		Dx: dx, Dy: dy, Dz: dz,
	}
	g.Dt = dx / (2 * lightSpeed)
	g.ex, g.ey, g.ez = newField(sx, sy, sz), newField(sx, sy, sz), newField(sx, sy, sz)
	g.bx, g.by, g.bz = newField(sx, sy, sz), newField(sx, sy, sz), newField(sx, sy, sz)
	g.erx, g.ery, g.erz = newVolume(sx, sy, sz), newVolume(sx, sy, sz), newVolume(sx, sy, sz)
	g.erx.Fill(1.0)
	g.ery.Fill(1.0)
	g.erz.Fill(1.0)
	return g, nil
}

// EX, EY, EZ and BX, BY, BZ expose the two-time-slot field accessors per
// axis. E() and B() route by grid.Axis so callers that already loop over
// an Axis (e.g. the source generator) don't need a switch of their own.
func (g *Grid) EX() *field { return g.ex }
func (g *Grid) EY() *field { return g.ey }
func (g *Grid) EZ() *field { return g.ez }
func (g *Grid) BX() *field { return g.bx }
func (g *Grid) BY() *field { return g.by }
func (g *Grid) BZ() *field { return g.bz }

// E returns the field for a given axis.
func (g *Grid) E(a Axis) *field {
	switch a {
	case AxisY:
		return g.ey
	case AxisZ:
		return g.ez
	default:
		return g.ex
	}
}

// B returns the field for a given axis.
func (g *Grid) B(a Axis) *field {
	switch a {
	case AxisY:
		return g.by
	case AxisZ:
		return g.bz
	default:
		return g.bx
	}
}

// ERX, ERY, ERZ expose the relative-inverse-permittivity volumes: 1.0 in
// vacuum, 1/epsilon_r in dielectric, 0.0 on a PEC cell (spec.md §3).
func (g *Grid) ERX() *volume { return g.erx }
func (g *Grid) ERY() *volume { return g.ery }
func (g *Grid) ERZ() *volume { return g.erz }

// ER returns the relative-inverse-permittivity volume for a given axis.
func (g *Grid) ER(a Axis) *volume {
	switch a {
	case AxisY:
		return g.ery
	case AxisZ:
		return g.erz
	default:
		return g.erx
	}
}

// DCell returns the cell size along the given axis.
func (g *Grid) DCell(a Axis) float64 {
	switch a {
	case AxisY:
		return g.Dy
	case AxisZ:
		return g.Dz
	default:
		return g.Dx
	}
}

// IsPEC reports whether the given axis is a perfect-electric-conductor at
// (i,j,k): spec.md invariant "ERX/Y/Z = 0 at PEC cells suppresses the
// update exactly".
func (g *Grid) IsPEC(a Axis, i, j, k int) bool {
	return g.ER(a).At(i, j, k) == 0
}
