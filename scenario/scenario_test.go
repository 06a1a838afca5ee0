// Copyright 2026 The Pffdtd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scenario

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jward-usu/pffdtd/plasma"

	"github.com/cpmech/gosl/chk"
)

func writeScenario(tst *testing.T, body string) string {
	dir := tst.TempDir()
	stem := filepath.Join(dir, "run")
	if err := os.WriteFile(stem+".str", []byte(body), 0o644); err != nil {
		tst.Fatalf("failed to write scenario fixture: %v", err)
	}
	return stem
}

const minimalVacuum = "test run\n" +
	"Grid Parameters\n" +
	"8\t8\t8\n" +
	"1e-3\t1e-3\t1e-3\n" +
	"Fail Safe Parameters\n" +
	"100\n" +
	"0\n" +
	"Source Parameters\n" +
	"1\n" +
	"4\t4\t4\t0\t5\t2.0\n" +
	"Dielectric Parameters\n" +
	"2.0\n" +
	"3.0\n" +
	"Antenna Parameters\n" +
	"0\n"

func TestLoadMinimalVacuumScenario(tst *testing.T) {
	chk.PrintTitle("scenario.Load: minimal vacuum scenario, no plasma")

	stem := writeScenario(tst, minimalVacuum)
	sc, err := Load(stem, 0, 0, 0, 0, 0, 0)
	if err != nil {
		tst.Fatalf("Load failed: %v", err)
	}
	chk.Scalar(tst, "sx", 1e-12, float64(sc.Grid.Sx), 8)
	chk.Scalar(tst, "failsafe", 1e-12, float64(sc.FailSafe), 100)
	if sc.PlasmaEnabled {
		tst.Errorf("plasma should be disabled when f_plasma==0")
	}
	if sc.Plasma != nil {
		tst.Errorf("Plasma should be nil when disabled")
	}
	if len(sc.Grid.Sources) != 1 {
		tst.Fatalf("expected 1 source, got %d", len(sc.Grid.Sources))
	}
}

func TestLoadEnablesPlasmaWhenFPlasmaPositive(tst *testing.T) {
	chk.PrintTitle("scenario.Load: f_plasma>0 enables the plasma state")

	stem := writeScenario(tst, minimalVacuum)
	sc, err := Load(stem, 1e8, 0.01, 1e6, 0, 0, 300)
	if err != nil {
		tst.Fatalf("Load failed: %v", err)
	}
	if !sc.PlasmaEnabled || sc.Plasma == nil {
		tst.Fatalf("expected plasma enabled with f_plasma=1e8")
	}
	chk.Scalar(tst, "df = dt*fplasma", 1e-20, sc.Grid.Df, sc.Grid.Dt*1e8)
}

func TestLoadRejectsMalformedFieldCount(tst *testing.T) {
	chk.PrintTitle("scenario.Load: malformed field count yields ScenarioFormat error")

	bad := "test run\n" +
		"Grid Parameters\n" +
		"8\t8\n" + // missing sz
		"1e-3\t1e-3\t1e-3\n"
	stem := writeScenario(tst, bad)
	if _, err := Load(stem, 0, 0, 0, 0, 0, 0); err == nil {
		tst.Errorf("expected a ScenarioFormat error for a short field line")
	}
}

func TestLoadRejectsUnparseableNumber(tst *testing.T) {
	chk.PrintTitle("scenario.Load: unparseable number yields ScenarioFormat error")

	bad := "test run\n" +
		"Grid Parameters\n" +
		"eight\t8\t8\n" +
		"1e-3\t1e-3\t1e-3\n"
	stem := writeScenario(tst, bad)
	if _, err := Load(stem, 0, 0, 0, 0, 0, 0); err == nil {
		tst.Errorf("expected a ScenarioFormat error for a non-numeric field")
	}
}

func TestLoadDefaultsToUniformAmbient(tst *testing.T) {
	chk.PrintTitle("scenario.Load: no trailing ambient block keeps plasma.UniformAmbient")

	stem := writeScenario(tst, minimalVacuum)
	sc, err := Load(stem, 1e8, 0.01, 1e6, 0, 0, 300)
	if err != nil {
		tst.Fatalf("Load failed: %v", err)
	}
	if _, ok := sc.Plasma.Ambient.(*plasma.UniformAmbient); !ok {
		tst.Errorf("expected *plasma.UniformAmbient, got %T", sc.Plasma.Ambient)
	}
}

func TestLoadSelectsConeAmbientFromTrailingBlock(tst *testing.T) {
	chk.PrintTitle("scenario.Load: a trailing Cone Ambient Parameters block selects plasma.ConeAmbient")

	withCone := minimalVacuum +
		"Cone Ambient Parameters\n" +
		"4\t3\t2\n"
	stem := writeScenario(tst, withCone)
	sc, err := Load(stem, 1e8, 0.01, 1e6, 0, 0, 300)
	if err != nil {
		tst.Fatalf("Load failed: %v", err)
	}
	if _, ok := sc.Plasma.Ambient.(*plasma.ConeAmbient); !ok {
		tst.Fatalf("expected *plasma.ConeAmbient, got %T", sc.Plasma.Ambient)
	}
}

func TestLoadOutputThenConeBlockBothParse(tst *testing.T) {
	chk.PrintTitle("scenario.Load: output block followed by cone-ambient block both parse")

	withBoth := minimalVacuum +
		"Output Parameters\n" +
		"5\t1\t1\t0\t0\t0\t0\n" +
		"1\t1\t1\n" +
		"8\t8\t8\n" +
		"Cone Ambient Parameters\n" +
		"4\t3\t2\n"
	stem := writeScenario(tst, withBoth)
	sc, err := Load(stem, 1e8, 0.01, 1e6, 0, 0, 300)
	if err != nil {
		tst.Fatalf("Load failed: %v", err)
	}
	if !sc.Output.Enabled || sc.Output.Frate != 5 {
		tst.Errorf("expected output block enabled with frate=5, got %+v", sc.Output)
	}
	if _, ok := sc.Plasma.Ambient.(*plasma.ConeAmbient); !ok {
		tst.Errorf("expected *plasma.ConeAmbient, got %T", sc.Plasma.Ambient)
	}
}

func TestIsAntennaMembership(tst *testing.T) {
	chk.PrintTitle("scenario: IsAntenna reports membership via the antenna table")

	antennaScenario := "test run\n" +
		"Grid Parameters\n" +
		"8\t8\t8\n" +
		"1e-3\t1e-3\t1e-3\n" +
		"Fail Safe Parameters\n" +
		"100\n" +
		"0\n" +
		"Source Parameters\n" +
		"0\n" +
		"Dielectric Parameters\n" +
		"2.0\n" +
		"3.0\n" +
		"Antenna Parameters\n" +
		"1\n" +
		"4\t4\t4\t1\t0\t0\n"
	stem := writeScenario(tst, antennaScenario)
	sc, err := Load(stem, 1e8, 0.01, 1e6, 0, 0, 300)
	if err != nil {
		tst.Fatalf("Load failed: %v", err)
	}
	if !sc.IsAntenna(4, 4, 4) {
		tst.Errorf("expected (4,4,4) to be an antenna cell")
	}
	if sc.IsAntenna(5, 5, 5) {
		tst.Errorf("(5,5,5) was never declared an antenna cell")
	}
}
