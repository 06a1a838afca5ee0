// Copyright 2026 The Pffdtd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package source

import (
	"math"
	"testing"

	"github.com/jward-usu/pffdtd/grid"

	"github.com/cpmech/gosl/chk"
)

func newTestGrid(tst *testing.T) *grid.Grid {
	g, err := grid.New(8, 8, 8, 1e-3, 1e-3, 1e-3, 2.998e8)
	if err != nil {
		tst.Fatalf("grid.New failed: %v", err)
	}
	return g
}

func TestEsourceImprintsDCAndSamplesVolt(tst *testing.T) {
	chk.PrintTitle("source: DC imprint and Rcalc voltage sign")

	g := newTestGrid(tst)
	g.Sources = append(g.Sources, &grid.Source{Loc: [3]int{4, 4, 4}, Axis: grid.AxisX, Kind: grid.DC, Param: 2.0})

	gen, err := NewGenerator(g)
	if err != nil {
		tst.Fatalf("NewGenerator failed: %v", err)
	}
	gen.EsourceAll(0)
	chk.Scalar(tst, "ex at source", 1e-12, g.EX().Cur(4, 4, 4), 2.0/g.Dx)

	gen.RcalcAll()
	chk.Scalar(tst, "volt = -E*dx", 1e-12, g.Sources[0].Volt, -2.0)
}

func TestSineWaveformPeriod(tst *testing.T) {
	chk.PrintTitle("source: sine waveform follows cos(2*pi*p*t)")

	wf, err := New(grid.Sine, 1e6)
	if err != nil {
		tst.Fatalf("New failed: %v", err)
	}
	v0 := wf.Value(0, 1e-12, 0)
	chk.Scalar(tst, "sine(t=0)", 1e-9, v0, math.Cos(0))
}

func TestUnknownKindErrors(tst *testing.T) {
	chk.PrintTitle("source: unknown waveform kind is rejected")

	if _, err := New(grid.Kind(99), 1.0); err == nil {
		tst.Errorf("expected an error for an unrecognized waveform kind")
	}
}
