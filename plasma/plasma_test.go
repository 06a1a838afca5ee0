// Copyright 2026 The Pffdtd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plasma

import (
	"testing"

	"github.com/jward-usu/pffdtd/grid"
	"github.com/jward-usu/pffdtd/internal/constants"

	"github.com/cpmech/gosl/chk"
)

func newTestGrid(tst *testing.T) *grid.Grid {
	g, err := grid.New(12, 12, 12, 1e-3, 1e-3, 1e-3, constants.LightC)
	if err != nil {
		tst.Fatalf("grid.New failed: %v", err)
	}
	return g
}

func testSpecies() []Species {
	return []Species{
		{Mass: constants.MassElectron, Charge: constants.ChargeElectron, PopulationFraction: 1},
		{Mass: 32 * constants.AMU, Charge: -constants.ChargeElectron, PopulationFraction: 0.5},
		{Mass: 30 * constants.AMU, Charge: -constants.ChargeElectron, PopulationFraction: 0.5},
	}
}

func TestInitMasksSetsInteriorConductivity(tst *testing.T) {
	chk.PrintTitle("plasma: InitMasks marks the vacuum interior conductive")

	g := newTestGrid(tst)
	species := testSpecies()
	ambient := NewUniformAmbient(1e8, constants.MassElectron, constants.ChargeElectron, constants.Eps0, []float64{0.5, 0.5})
	st := New(g, species, ambient)
	st.Charge = 2.0
	st.InitMasks(nil)

	chk.Scalar(tst, "QF off antenna", 1e-15, st.QF(6, 6, 6), 1)
	chk.Scalar(tst, "SIG interior", 1e-15, st.SIG(6, 6, 6), 1)
}

func TestInitMasksChargesAntennaCells(tst *testing.T) {
	chk.PrintTitle("plasma: InitMasks sets QF=Charge at antenna cells")

	g := newTestGrid(tst)
	species := testSpecies()
	ambient := NewUniformAmbient(1e8, constants.MassElectron, constants.ChargeElectron, constants.Eps0, []float64{0.5, 0.5})
	st := New(g, species, ambient)
	st.Charge = 3.5
	st.InitMasks([][3]int{{6, 6, 6}})

	chk.Scalar(tst, "QF at antenna", 1e-15, st.QF(6, 6, 6), 3.5)
}

func TestNcalcContinuityHoldsAtRest(tst *testing.T) {
	chk.PrintTitle("plasma: Ncalc leaves perturbation density at zero with no velocity field")

	g := newTestGrid(tst)
	species := testSpecies()
	ambient := NewUniformAmbient(1e8, constants.MassElectron, constants.ChargeElectron, constants.Eps0, []float64{0.5, 0.5})
	st := New(g, species, ambient)
	st.Ncalc(g)
	chk.Scalar(tst, "n at rest", 1e-20, st.n.At(2, 6, 6, 6, 0), 0)
}

func TestSnapshotRoundTrip(tst *testing.T) {
	chk.PrintTitle("plasma: Snapshot/Restore round-trips the U/N arrays")

	g := newTestGrid(tst)
	species := testSpecies()
	ambient := NewUniformAmbient(1e8, constants.MassElectron, constants.ChargeElectron, constants.Eps0, []float64{0.5, 0.5})
	st := New(g, species, ambient)
	st.n.Set(2, 6, 6, 6, 0, 7.0)

	snap := st.Snapshot()
	st.n.Set(2, 6, 6, 6, 0, 0)
	st.Restore(snap)

	chk.Scalar(tst, "restored n", 1e-15, st.n.At(2, 6, 6, 6, 0), 7.0)
}

func TestConeAmbientTapersFromUniform(tst *testing.T) {
	chk.PrintTitle("plasma: ConeAmbient matches UniformAmbient off-cone")

	geom := ConeGeometry{Height: 0, Diameter: 0, StartX: 0}
	cone := NewConeAmbient(1e8, constants.MassElectron, constants.ChargeElectron, constants.Eps0, []float64{0.5, 0.5}, geom, 12, 12, 12)
	uniform := NewUniformAmbient(1e8, constants.MassElectron, constants.ChargeElectron, constants.Eps0, []float64{0.5, 0.5})
	chk.Scalar(tst, "cone==uniform when geometry is empty", 1e-15, cone.N0(0, 6, 6, 6), uniform.N0(0, 6, 6, 6))
}
