// Copyright 2026 The Pffdtd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package source

import (
	"github.com/jward-usu/pffdtd/grid"
	"github.com/jward-usu/pffdtd/internal/constants"
	"github.com/jward-usu/pffdtd/internal/status"
)

// Generator drives every configured source: it owns one Waveform per
// grid.Source entry and imprints/samples them each step (spec.md §4.2).
type Generator struct {
	g         *grid.Grid
	waveforms []Waveform
}

// NewGenerator builds a Waveform for each source already registered on g.
func NewGenerator(g *grid.Grid) (*Generator, error) {
	gen := &Generator{g: g, waveforms: make([]Waveform, len(g.Sources))}
	for a, src := range g.Sources {
		wf, err := New(src.Kind, src.Param)
		if err != nil {
			return nil, status.New(status.ScenarioFormat, "source %d: %v", a+1, err)
		}
		gen.waveforms[a] = wf
	}
	return gen, nil
}

// Esource imprints the injected value for source a at time t into the
// driven E-component, normalized by the corresponding cell size (spec.md
// §4.2).
func (gen *Generator) Esource(t float64, a int) {
	src := gen.g.Sources[a]
	value := gen.waveforms[a].Value(t, gen.g.Dt, gen.g.Df)
	i, j, k := src.Loc[0], src.Loc[1], src.Loc[2]
	f := gen.g.E(src.Axis)
	d := gen.g.DCell(src.Axis)
	f.SetCur(i, j, k, value/d)
}

// EsourceAll imprints every configured source at time t (driver step 3).
func (gen *Generator) EsourceAll(t float64) {
	for a := range gen.g.Sources {
		gen.Esource(t, a)
	}
}

// Rcalc samples the terminal voltage and current at source a (spec.md
// §4.2): CURRENT is the contour integral of H around the dual face
// orthogonal to the driven axis, divided by mu0; VOLT is -E*d along that
// axis.
func (gen *Generator) Rcalc(a int) {
	src := gen.g.Sources[a]
	i, j, k := src.Loc[0], src.Loc[1], src.Loc[2]
	dx, dy, dz := gen.g.Dx, gen.g.Dy, gen.g.Dz

	switch src.Axis {
	case grid.AxisX:
		by, bz := gen.g.BY(), gen.g.BZ()
		src.Current = ((by.Cur(i, j, k)-by.Cur(i, j, k+1))*dx + (bz.Cur(i, j+1, k)-bz.Cur(i, j, k))*dy) / constants.MU0
		src.Volt = -gen.g.EX().Cur(i, j, k) * dx
	case grid.AxisY:
		bx, bz := gen.g.BX(), gen.g.BZ()
		src.Current = ((bx.Cur(i, j, k+1)-bx.Cur(i, j, k))*dx + (bz.Cur(i, j, k)-bz.Cur(i+1, j, k))*dy) / constants.MU0
		src.Volt = -gen.g.EY().Cur(i, j, k) * dy
	case grid.AxisZ:
		bx, by := gen.g.BX(), gen.g.BY()
		src.Current = ((bx.Cur(i, j, k)-bx.Cur(i, j+1, k))*dx + (by.Cur(i+1, j, k)-by.Cur(i, j, k))*dy) / constants.MU0
		src.Volt = -gen.g.EZ().Cur(i, j, k) * dz
	}
}

// RcalcAll samples every configured source (driver step 6).
func (gen *Generator) RcalcAll() {
	for a := range gen.g.Sources {
		gen.Rcalc(a)
	}
}

// Sample evaluates source a's waveform over ts without touching any grid
// field, for offline inspection (scenario's debug plotting hook).
func (gen *Generator) Sample(a int, ts []float64) []float64 {
	ys := make([]float64, len(ts))
	for n, t := range ts {
		ys[n] = gen.waveforms[a].Value(t, gen.g.Dt, gen.g.Df)
	}
	return ys
}

// NumSources reports how many sources this generator drives.
func (gen *Generator) NumSources() int { return len(gen.waveforms) }
