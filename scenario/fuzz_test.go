// Copyright 2026 The Pffdtd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scenario

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/rnd"
)

// TestLoadRandomizedGridSizes fuzzes the grid-dimension and source-count
// fields of a well-formed .str file across a range of random sizes,
// checking only the structural invariants Load documents (no panic, the
// parsed dimensions/source count echo the input) rather than exact
// numerics. Mirrors the teacher's use of gosl/rnd for randomized
// parameter sampling in inp/sim.go, applied here to fuzz the loader
// boundary instead of a material parameter distribution.
func TestLoadRandomizedGridSizes(tst *testing.T) {
	chk.PrintTitle("scenario.Load: randomized well-formed grid sizes never panic")

	rnd.Init(1234)
	for trial := 0; trial < 8; trial++ {
		sx := rnd.Int(6, 16)
		sy := rnd.Int(6, 16)
		sz := rnd.Int(6, 16)
		snum := rnd.Int(0, 3)

		body := fmt.Sprintf("fuzz run %d\n", trial)
		body += "Grid Parameters\n"
		body += fmt.Sprintf("%d\t%d\t%d\n", sx, sy, sz)
		body += "1e-3\t1e-3\t1e-3\n"
		body += "Fail Safe Parameters\n"
		body += "10\n0\n"
		body += "Source Parameters\n"
		body += fmt.Sprintf("%d\n", snum)
		for s := 0; s < snum; s++ {
			body += "4\t4\t4\t0\t5\t1.0\n"
		}
		body += "Dielectric Parameters\n2.0\n3.0\n"
		body += "Antenna Parameters\n0\n"

		dir := tst.TempDir()
		stem := filepath.Join(dir, "fuzz")
		if err := os.WriteFile(stem+".str", []byte(body), 0o644); err != nil {
			tst.Fatalf("failed to write fixture: %v", err)
		}

		sc, err := Load(stem, 0, 0, 0, 0, 0, 0)
		if err != nil {
			tst.Fatalf("trial %d: Load failed on well-formed input: %v", trial, err)
		}
		if sc.Grid.Sx != sx || sc.Grid.Sy != sy || sc.Grid.Sz != sz {
			tst.Errorf("trial %d: dims mismatch: got (%d,%d,%d), want (%d,%d,%d)",
				trial, sc.Grid.Sx, sc.Grid.Sy, sc.Grid.Sz, sx, sy, sz)
		}
		if len(sc.Grid.Sources) != snum {
			tst.Errorf("trial %d: source count mismatch: got %d, want %d", trial, len(sc.Grid.Sources), snum)
		}
	}
}
