// Copyright 2026 The Pffdtd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestNewAllocatesVacuumGrid(tst *testing.T) {
	chk.PrintTitle("grid.New: dimensions and vacuum defaults")

	g, err := New(8, 8, 8, 1e-3, 1e-3, 1e-3, 2.998e8)
	if err != nil {
		tst.Fatalf("New failed: %v", err)
	}
	chk.Scalar(tst, "dt", 1e-20, g.Dt, 1e-3/(2*2.998e8))
	chk.Scalar(tst, "erx(4,4,4)", 1e-15, g.ERX().At(4, 4, 4), 1.0)
	chk.Scalar(tst, "ery(4,4,4)", 1e-15, g.ERY().At(4, 4, 4), 1.0)
	chk.Scalar(tst, "erz(4,4,4)", 1e-15, g.ERZ().At(4, 4, 4), 1.0)
	if g.IsPEC(AxisX, 4, 4, 4) {
		tst.Errorf("fresh grid cell should not be PEC")
	}
}

func TestNewRejectsNonPositiveDims(tst *testing.T) {
	chk.PrintTitle("grid.New: rejects non-positive dimensions")

	if _, err := New(0, 4, 4, 1e-3, 1e-3, 1e-3, 2.998e8); err == nil {
		tst.Errorf("expected AllocFail error for sx=0")
	}
}

func TestFieldSaveOldAndStamp(tst *testing.T) {
	chk.PrintTitle("field: SaveOld/Stamp preserve the two-time-slot invariant")

	g, err := New(8, 8, 8, 1e-3, 1e-3, 1e-3, 2.998e8)
	if err != nil {
		tst.Fatalf("New failed: %v", err)
	}
	ex := g.EX()
	ex.SetCur(4, 4, 4, 1.5)
	ex.SaveOld(4, 4, 4)
	ex.SetCur(4, 4, 4, 2.5)
	chk.Scalar(tst, "prev", 1e-15, ex.Prev(4, 4, 4), 1.5)
	chk.Scalar(tst, "cur", 1e-15, ex.Cur(4, 4, 4), 2.5)

	ex.Stamp(5, 5, 5, 0.25, 0.75)
	chk.Scalar(tst, "stamped prev", 1e-15, ex.Prev(5, 5, 5), 0.25)
	chk.Scalar(tst, "stamped cur", 1e-15, ex.Cur(5, 5, 5), 0.75)
}

func TestSnapshotRoundTrip(tst *testing.T) {
	chk.PrintTitle("grid.Snapshot/Restore round-trips field state")

	g, err := New(6, 6, 6, 1e-3, 1e-3, 1e-3, 2.998e8)
	if err != nil {
		tst.Fatalf("New failed: %v", err)
	}
	g.EX().SetCur(3, 3, 3, 42)
	g.EX().SaveOld(3, 3, 3)
	g.EX().SetCur(3, 3, 3, 43)
	g.Sources = append(g.Sources, &Source{Loc: [3]int{3, 3, 3}, Volt: 1.0, Current: 0.5})

	snap := g.Snapshot()

	g.EX().SetCur(3, 3, 3, 0)
	g.Sources[0].Volt = 0

	g.Restore(snap)
	chk.Scalar(tst, "restored cur", 1e-15, g.EX().Cur(3, 3, 3), 43)
	chk.Scalar(tst, "restored prev", 1e-15, g.EX().Prev(3, 3, 3), 42)
	chk.Scalar(tst, "restored source volt", 1e-15, g.Sources[0].Volt, 1.0)
}
