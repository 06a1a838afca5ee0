// Copyright 2026 The Pffdtd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scenario implements the C6 component: the tab-separated
// `<input-stem>.str` parser of spec.md §6.2, materializing a grid.Grid, a
// plasma.State and the optional output-volume selection. Line-for-line it
// follows original_source/src/io/file_handler.cpp's setup1/setup2 two-pass
// reader, reimagined as a Go scanner returning errors instead of exiting.
package scenario

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/jward-usu/pffdtd/boundary"
	"github.com/jward-usu/pffdtd/grid"
	"github.com/jward-usu/pffdtd/internal/constants"
	"github.com/jward-usu/pffdtd/internal/status"
	"github.com/jward-usu/pffdtd/plasma"
	"github.com/jward-usu/pffdtd/source"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// OutputSpec is the optional trailing output block of spec.md §6.2 item 13.
type OutputSpec struct {
	Enabled bool
	Frate   int
	FE, FB, FUe, FNe, FUi, FNi bool
	Lower, Upper [3]int
}

// Scenario is the materialized result of loading a .str file: a ready grid,
// a ready plasma state (nil when plasma is disabled), the source generator,
// the absorbing boundary, and run-wide scalar parameters.
type Scenario struct {
	Title string

	Grid     *grid.Grid
	Source   *source.Generator
	Boundary *boundary.ABC
	Plasma   *plasma.State // nil when PlasmaEnabled is false

	FailSafe     int
	PlasmaCycle  int
	PlasmaEnabled bool

	Output OutputSpec

	antennaKeys []int
}

// defaultSpecies is the NS=3 electron/ion population used whenever the
// scenario doesn't override it (spec.md §3 invariant 4; population
// fractions of the two ion species sum to 1). The ion masses/charges and
// the 0.5/0.5 split are invented defaults satisfying that invariant, not a
// reproduction of plasmaN3.h's specific numbers (it hardcodes a 16 AMU
// species at a 0.75/0.25 split).
func defaultSpecies() []plasma.Species {
	return []plasma.Species{
		{Mass: constants.MassElectron, Charge: constants.ChargeElectron, PopulationFraction: 1},
		{Mass: 32 * constants.AMU, Charge: -constants.ChargeElectron, PopulationFraction: 0.5},
		{Mass: 30 * constants.AMU, Charge: -constants.ChargeElectron, PopulationFraction: 0.5},
	}
}

// Load reads and parses stem+".str", and builds the grid/plasma/source/
// boundary state. fPlasma, fColRatio, fCyc, thetaE, thetaA and tempK are the
// optional plasma CLI arguments of spec.md §6.1; fPlasma==0 disables plasma
// and pins df=0 (plasma cycle gate disabled, per spec.md "Grid constants").
func Load(stem string, fPlasma, fColRatio, fCyc, thetaE, thetaA, tempK float64) (*Scenario, error) {
	path := stem + ".str"
	f, err := os.Open(path)
	if err != nil {
		return nil, status.New(status.FileOpen, "cannot open scenario file %q: %v", path, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 4096), 1<<20)
	p := &parser{sc: sc, path: path}

	title := p.line()
	io.Pf("\t%s\n", title)

	p.line() // "Grid Parameters" header
	sx, sy, sz := p.int3()
	io.Pf("\tsx=%d   \tsy=%d   \tsz=%d\n", sx, sy, sz)

	dx, dy, dz := p.float3()
	io.Pf("\tdx=%5.3f\tdy=%5.3f\tdz=%5.3f\n", dx, dy, dz)

	p.line() // "Fail Safe Parameters" header
	failSafe := p.int1()
	plasmaCycle := p.int1()
	io.Pf("\tMax Iteration = %d\tMax Plasma Cycles = %d\n", failSafe, plasmaCycle)

	p.line() // "Source Parameters" header
	snum := p.int1()

	if p.err != nil {
		return nil, p.err
	}

	g, err := grid.New(sx, sy, sz, dx, dy, dz, constants.LightC)
	if err != nil {
		return nil, err
	}
	plasmaEnabled := fPlasma > 0
	if plasmaEnabled {
		g.Df = g.Dt * fPlasma
	}

	for a := 0; a < snum; a++ {
		i, j, k, axis, kind, param := p.sourceLine()
		g.Sources = append(g.Sources, &grid.Source{
			Loc: [3]int{i, j, k}, Axis: grid.Axis(axis), Kind: grid.Kind(kind), Param: param,
		})
	}
	if p.err != nil {
		return nil, p.err
	}
	if snum > 0 {
		first := g.Sources[0]
		io.Pf("\t#1 (%d,%d,%d) axis=%s kind=%d param=%5.3f\n", first.Loc[0], first.Loc[1], first.Loc[2], first.Axis, first.Kind, first.Param)
	}

	p.line() // "Dielectric Parameters" header
	er1 := p.float1()
	er2 := p.float1()
	io.Pf("\tEr 1 = %5.3f\tEr 2 = %5.3f\n", er1, er2)

	p.line() // "Antenna Parameters" header
	nAnt := p.int1()

	var st *plasma.State
	var charge float64
	var antennas [][3]int
	if plasmaEnabled {
		charge = deriveCharge(fPlasma)
	}

	for a := 0; a < nAnt; a++ {
		i, j, k, cx, cy, cz := p.antennaLine()
		setEr(g.ERX(), i, j, k, cx, er1, er2)
		setEr(g.ERY(), i, j, k, cy, er1, er2)
		setEr(g.ERZ(), i, j, k, cz, er1, er2)
		if cx == 1 || cy == 1 || cz == 1 {
			antennas = append(antennas, [3]int{i, j, k})
		}
	}
	if p.err != nil {
		return nil, p.err
	}

	var out OutputSpec
	var coneGeom *plasma.ConeGeometry
	// Both trailing blocks are optional and, when present, appear in this
	// order: the output block of spec.md §6.2 item 13, then the cone-ambient
	// block (a supplemental extension beyond spec.md's fixed grammar, wiring
	// plasma.ConeAmbient in as the second half of spec.md §9's "pluggable
	// ambient density provider" design variant, which otherwise has no .str
	// selector at all). Each is recognized by its header line, so a file
	// with neither, either, or both trailing blocks parses correctly.
	for p.scanOptional() {
		if strings.Contains(strings.ToLower(p.peek), "cone") {
			coneGeom = p.coneAmbientLine()
			continue
		}
		frate, fE, fB, fUe, fNe, fUi, fNi := p.outputHeaderLine()
		lx, ly, lz := p.int3()
		ux, uy, uz := p.int3()
		if p.err != nil {
			return nil, p.err
		}
		out = OutputSpec{
			Enabled: true, Frate: frate,
			FE: fE, FB: fB, FUe: fUe, FNe: fNe, FUi: fUi, FNi: fNi,
			Lower: [3]int{lx, ly, lz},
			Upper: [3]int{ux, uy, uz},
		}
	}
	if p.err != nil {
		return nil, p.err
	}

	gen, err := source.NewGenerator(g)
	if err != nil {
		return nil, err
	}

	if plasmaEnabled {
		species := defaultSpecies()
		var ambient plasma.Ambient
		if coneGeom != nil {
			ambient = plasma.NewConeAmbient(fPlasma, constants.MassElectron, constants.ChargeElectron, constants.Eps0, populationFractions(species), *coneGeom, g.Sx, g.Sy, g.Sz)
		} else {
			ambient = plasma.NewUniformAmbient(fPlasma, constants.MassElectron, constants.ChargeElectron, constants.Eps0, populationFractions(species))
		}
		st = plasma.New(g, species, ambient)
		st.FreqPlasma = fPlasma
		st.FreqCol = fColRatio
		st.Cyclotron = plasma.CyclotronAngles{FreqCyc: fCyc, ElevationDeg: thetaE, AzimuthDeg: thetaA}
		st.TempK = tempK
		st.Charge = charge
		st.InitMasks(antennas)
	}

	abc := boundary.New(g)

	return &Scenario{
		Title: title, Grid: g, Source: gen, Boundary: abc, Plasma: st,
		FailSafe: failSafe, PlasmaCycle: plasmaCycle, PlasmaEnabled: plasmaEnabled,
		Output: out, antennaKeys: antennaKeys(antennas, g),
	}, nil
}

// antennaKeys flattens each antenna cell to a single int (i*sy*sz+j*sz+k)
// so membership can be tested with utl.IntIndexSmall, the same kind of
// small-slice skip-list lookup gofem's inp/func.go uses (StrIndexSmall,
// func.go:61) to filter the function registry.
func antennaKeys(antennas [][3]int, g *grid.Grid) []int {
	keys := make([]int, len(antennas))
	for n, a := range antennas {
		keys[n] = a[0]*g.Sy*g.Sz + a[1]*g.Sz + a[2]
	}
	return keys
}

// IsAntenna reports whether (i,j,k) was marked as an antenna cell in the
// scenario's antenna table.
func (s *Scenario) IsAntenna(i, j, k int) bool {
	key := i*s.Grid.Sy*s.Grid.Sz + j*s.Grid.Sz + k
	return utl.IntIndexSmall(s.antennaKeys, key) >= 0
}

// deriveCharge computes the antenna charging factor per archive/plasma.h's
// electron-charging convention: charge scales inversely with the driving
// plasma frequency so a higher frequency source injects a
// proportionally smaller perturbation relative to ambient.
func deriveCharge(fPlasma float64) float64 {
	if fPlasma <= 0 {
		return 1
	}
	return 1e6 / fPlasma
}

func populationFractions(species []plasma.Species) []float64 {
	fracs := make([]float64, len(species)-1)
	for m := 1; m < len(species); m++ {
		fracs[m-1] = species[m].PopulationFraction
	}
	return fracs
}

func setEr(v interface{ Set(i, j, k int, value float64) }, i, j, k, code int, er1, er2 float64) {
	switch code {
	case 1:
		v.Set(i, j, k, 0)
	case 2:
		v.Set(i, j, k, 1/er1)
	case 3:
		v.Set(i, j, k, 1/er2)
	default:
		v.Set(i, j, k, 1)
	}
}

// parser wraps a bufio.Scanner with the field-count validation of spec.md
// §6.2 / §7 ("malformed field count or unparseable number ⇒ ScenarioFormat,
// exit 3"), short-circuiting after the first error.
type parser struct {
	sc   *bufio.Scanner
	path string
	err  error
	peek string
	has  bool
}

func (p *parser) line() string {
	if p.err != nil {
		return ""
	}
	if p.has {
		p.has = false
		return p.peek
	}
	if !p.sc.Scan() {
		p.err = status.New(status.ScenarioFormat, "%s: unexpected end of file", p.path)
		return ""
	}
	return p.sc.Text()
}

func (p *parser) fields(n int) []string {
	line := p.line()
	if p.err != nil {
		return nil
	}
	parts := strings.Split(line, "\t")
	if len(parts) != n {
		p.err = status.New(status.ScenarioFormat, "%s: expected %d tab-separated fields, got %d: %q", p.path, n, len(parts), line)
		return nil
	}
	return parts
}

// atoi/atof wrap io.Atoi/io.Atof, which follow the teacher's convention of
// chk.Panic-ing on a malformed number rather than returning an error; the
// parser recovers that panic and turns it into a ScenarioFormat error so a
// bad .str file never crashes the loader (spec.md §7).
func (p *parser) atoi(s string) (v int) {
	defer func() {
		if r := recover(); r != nil {
			p.err = status.New(status.ScenarioFormat, "%s: not an integer: %q (%v)", p.path, s, r)
		}
	}()
	return io.Atoi(s)
}

func (p *parser) atof(s string) (v float64) {
	defer func() {
		if r := recover(); r != nil {
			p.err = status.New(status.ScenarioFormat, "%s: not a number: %q (%v)", p.path, s, r)
		}
	}()
	return io.Atof(s)
}

func (p *parser) int1() int {
	fs := p.fields(1)
	if p.err != nil {
		return 0
	}
	return p.atoi(fs[0])
}

func (p *parser) float1() float64 {
	fs := p.fields(1)
	if p.err != nil {
		return 0
	}
	return p.atof(fs[0])
}

func (p *parser) int3() (int, int, int) {
	fs := p.fields(3)
	if p.err != nil {
		return 0, 0, 0
	}
	return p.atoi(fs[0]), p.atoi(fs[1]), p.atoi(fs[2])
}

func (p *parser) float3() (float64, float64, float64) {
	fs := p.fields(3)
	if p.err != nil {
		return 0, 0, 0
	}
	return p.atof(fs[0]), p.atof(fs[1]), p.atof(fs[2])
}

func (p *parser) sourceLine() (i, j, k, axis, kind int, param float64) {
	fs := p.fields(6)
	if p.err != nil {
		return
	}
	i = p.atoi(fs[0])
	j = p.atoi(fs[1])
	k = p.atoi(fs[2])
	axis = p.atoi(fs[3])
	kind = p.atoi(fs[4])
	param = p.atof(fs[5])
	return
}

func (p *parser) antennaLine() (i, j, k, cx, cy, cz int) {
	fs := p.fields(6)
	if p.err != nil {
		return
	}
	i = p.atoi(fs[0])
	j = p.atoi(fs[1])
	k = p.atoi(fs[2])
	cx = p.atoi(fs[3])
	cy = p.atoi(fs[4])
	cz = p.atoi(fs[5])
	return
}

// scanOptional reports whether another trailing block (output, spec.md §6.2
// item 13, or the supplemental cone-ambient block) follows; it peeks one
// line ahead into p.peek without consuming it, returning false at EOF.
func (p *parser) scanOptional() bool {
	if p.err != nil {
		return false
	}
	if !p.sc.Scan() {
		return false
	}
	p.peek = p.sc.Text()
	p.has = true
	return true
}

// coneAmbientLine reads the optional "Cone Ambient Parameters" block:
// header, then "height\tdiameter\tstartX" (ints), selecting plasma.ConeAmbient
// over the default plasma.UniformAmbient.
func (p *parser) coneAmbientLine() *plasma.ConeGeometry {
	p.line() // header text, already peeked/consumed by scanOptional; skip it
	h, d, x := p.int3()
	if p.err != nil {
		return nil
	}
	return &plasma.ConeGeometry{Height: h, Diameter: d, StartX: x}
}

func (p *parser) outputHeaderLine() (frate int, fE, fB, fUe, fNe, fUi, fNi bool) {
	p.line() // header text, already peeked/consumed by scanOptional; skip it
	fs := p.fields(7)
	if p.err != nil {
		return
	}
	frate = p.atoi(fs[0])
	fE = fs[1] == "1"
	fB = fs[2] == "1"
	fUe = fs[3] == "1"
	fNe = fs[4] == "1"
	fUi = fs[5] == "1"
	fNi = fs[6] == "1"
	return
}

// String satisfies fmt.Stringer for Scenario, used by the version banner.
func (s *Scenario) String() string {
	return fmt.Sprintf("%s: %dx%dx%d cells, %d sources, plasma=%v", s.Title, s.Grid.Sx, s.Grid.Sy, s.Grid.Sz, len(s.Grid.Sources), s.PlasmaEnabled)
}
