// Copyright 2026 The Pffdtd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sim implements the C7 component: the per-step driver loop
// (spec.md §4.6), its termination conditions, and checkpoint/restore.
package sim

import (
	"context"

	"github.com/jward-usu/pffdtd/boundary"
	"github.com/jward-usu/pffdtd/grid"
	"github.com/jward-usu/pffdtd/internal/constants"
	"github.com/jward-usu/pffdtd/maxwell"
	"github.com/jward-usu/pffdtd/plasma"
	"github.com/jward-usu/pffdtd/scenario"
	"github.com/jward-usu/pffdtd/source"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/mpi"
)

// Recorder receives one completed step's record; output.VCWriter and
// output.FDWriter implement it. Keeping this narrow interface here (rather
// than importing package output directly) means the step loop writes no
// files itself; package sim touches the filesystem only in
// Checkpoint/Restore.
type Recorder interface {
	RecordStep(rec StepRecord) error
}

// StepRecord is everything one step emits: time, per-source V/I, and
// (when enabled) the iteration count for snapshot-rate gating.
type StepRecord struct {
	Iter int
	T    float64
	Volt []float64
	Cur  []float64
}

// Driver sequences the nine sub-steps of spec.md §4.6 over a loaded
// Scenario, and implements the termination conditions of step 9.
type Driver struct {
	Scenario *scenario.Scenario
	Current  maxwell.Current // nil when plasma disabled

	t    float64
	iter int

	quit bool // cooperative "stop after this step" flag (spec.md §6.4)

	recorders []Recorder
}

// New builds a Driver ready to Step/Run over sc. If sc.Plasma is non-nil,
// the plasma conduction current is wired into the Maxwell E-update; the
// driver otherwise runs vacuum-only.
func New(sc *scenario.Scenario, recorders ...Recorder) *Driver {
	d := &Driver{Scenario: sc, recorders: recorders}
	if sc.Plasma != nil {
		d.Current = sc.Plasma
	}
	return d
}

// T returns the current simulation time.
func (d *Driver) T() float64 { return d.t }

// Iter returns the current iteration counter.
func (d *Driver) Iter() int { return d.iter }

// RequestStop sets the cooperative quit flag that Done checks. Run calls
// this when its context is cancelled, which is what the SIGINT handler in
// main.go does (spec.md §6.4).
func (d *Driver) RequestStop() { d.quit = true }

// Step advances the simulation by exactly one dt, performing sub-steps 1-8
// of spec.md §4.6 in order; the step-9 termination check is Done.
func (d *Driver) Step() error {
	g := d.Scenario.Grid

	// 1. E-update: plasma-augmented when enabled, else vacuum.
	maxwell.UpdateE(g, d.Current)

	// 2. Absorbing boundary.
	d.Scenario.Boundary.Apply(g, constants.LightC)

	// 3. Source imprint.
	d.Scenario.Source.EsourceAll(d.t)

	// 4. B-update.
	maxwell.UpdateB(g)

	// 5. Plasma fluid update.
	if st := d.Scenario.Plasma; st != nil {
		st.Ucalc(g)
		st.UBC(g)
		st.Ncalc(g)
		st.NBC(g)
	}

	// 6. Sample V/I at every source.
	d.Scenario.Source.RcalcAll()

	// 7. Emit a V/I record (and, if enabled and on-rate, a field snapshot).
	rec := d.record()
	for _, r := range d.recorders {
		if err := r.RecordStep(rec); err != nil {
			return err
		}
	}

	// 8. Advance time/iteration.
	d.t += g.Dt
	d.iter++

	return nil
}

func (d *Driver) record() StepRecord {
	srcs := d.Scenario.Grid.Sources
	rec := StepRecord{Iter: d.iter, T: d.t, Volt: make([]float64, len(srcs)), Cur: make([]float64, len(srcs))}
	for a, s := range srcs {
		rec.Volt[a] = s.Volt
		rec.Cur[a] = s.Current
	}
	return rec
}

// Done reports whether the driver's termination condition (spec.md §4.6
// step 9) has been reached: fail-safe iteration count, plasma-cycle gate,
// or an explicit/interrupt stop request.
func (d *Driver) Done() bool {
	sc := d.Scenario
	if d.quit {
		return true
	}
	if d.iter >= sc.FailSafe {
		return true
	}
	if sc.PlasmaEnabled && sc.Grid.Df > 0 {
		if float64(d.iter)*sc.Grid.Df > float64(sc.PlasmaCycle) {
			return true
		}
	}
	return false
}

// Run steps the driver to completion, checking ctx cooperatively at the
// top of each step (Go-idiomatic rendering of spec.md §5's interrupt
// flag). Returns nil on a normal or interrupted stop (both are exit code
// 0 per spec.md §6.1); only a Step error propagates.
func (d *Driver) Run(ctx context.Context) error {
	for !d.Done() {
		select {
		case <-ctx.Done():
			d.RequestStop()
			return nil
		default:
		}
		if err := d.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Summary logs a one-line end-of-run status, mirroring fem.go's onexit
// success banner. Gated to rank 0, matching the teacher's
// "if mpi.Rank() == 0" print convention even though pffdtd never fans work
// out across ranks (spec.md §5 is single-threaded/sequential).
func (d *Driver) Summary() {
	if mpi.Rank() == 0 {
		io.PfGreen("> finished at iter=%d t=%e\n", d.iter, d.t)
	}
}

// PlasmaState, SourceGen, Boundary and GridRef expose the Scenario's
// components individually, for callers that need only one of them.
func (d *Driver) PlasmaState() *plasma.State     { return d.Scenario.Plasma }
func (d *Driver) SourceGen() *source.Generator   { return d.Scenario.Source }
func (d *Driver) Boundary() *boundary.ABC        { return d.Scenario.Boundary }
func (d *Driver) GridRef() *grid.Grid            { return d.Scenario.Grid }
