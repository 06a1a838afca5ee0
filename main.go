// Copyright 2026 The Pffdtd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/jward-usu/pffdtd/internal/status"
	"github.com/jward-usu/pffdtd/output"
	"github.com/jward-usu/pffdtd/scenario"
	"github.com/jward-usu/pffdtd/sim"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/mpi"
	"github.com/cpmech/gosl/utl"
)

var plotFlag = flag.Bool("plot", false, "save a PNG of each source's waveform alongside the run")

func main() {
	exitCode := constantsExitOK

	defer func() {
		if err := recover(); err != nil {
			if mpi.Rank() == 0 {
				chk.Verbose = true
				for i := 8; i > 3; i-- {
					chk.CallerInfo(i)
				}
				io.PfRed("ERROR: %v\n", err)
			}
			exitCode = exitCodeOf(err)
		}
		mpi.Stop(false)
		os.Exit(exitCode)
	}()
	mpi.Start(false)

	if mpi.Rank() == 0 {
		io.PfWhite("\npffdtd -- warm-plasma FDTD simulator\n\n")
	}

	flag.Parse()
	args := flag.Args()
	if len(args) < 1 {
		chk.Panic("please provide an input scenario stem. Ex.: myrun")
	}
	inStem := args[0]
	outStem := inStem
	if len(args) > 1 {
		outStem = args[1]
	}

	var fPlasma, fColRatio, fCyc, thetaE, thetaA, tempK float64
	if len(args) > 2 {
		fPlasma = io.Atof(args[2])
	}
	if len(args) > 3 {
		fColRatio = io.Atof(args[3])
	}
	if len(args) > 4 {
		fCyc = io.Atof(args[4])
	}
	if len(args) > 5 {
		thetaE = io.Atof(args[5])
	}
	if len(args) > 6 {
		thetaA = io.Atof(args[6])
	}
	if len(args) > 7 {
		tempK = io.Atof(args[7])
	}

	defer utl.DoProf(false)()

	sc, err := scenario.Load(inStem, fPlasma, fColRatio, fCyc, thetaE, thetaA, tempK)
	if err != nil {
		panic(err)
	}
	if mpi.Rank() == 0 {
		io.Pf("%s\n", sc.String())
	}

	if *plotFlag && mpi.Rank() == 0 {
		sc.PlotWaveforms(filepath.Dir(outStem), filepath.Base(outStem))
	}

	vc, err := output.NewVCWriter(outStem, len(sc.Grid.Sources))
	if err != nil {
		panic(err)
	}
	defer vc.Close()

	recorders := []sim.Recorder{vc}
	if sc.Output.Enabled {
		fd, err := output.NewFDWriter(outStem, sc.Grid, toSelection(sc.Output), plasmaSamplerOf(sc))
		if err != nil {
			panic(err)
		}
		defer fd.Close()
		recorders = append(recorders, fd)
	}

	d := sim.New(sc, recorders...)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	installSignalHandler(cancel)

	if err := d.Run(ctx); err != nil {
		panic(err)
	}
	d.Summary()
}

const constantsExitOK = 0

func exitCodeOf(err interface{}) int {
	if se, ok := err.(*status.Error); ok {
		return se.ExitCode()
	}
	return 1
}

func toSelection(o scenario.OutputSpec) output.FieldSelection {
	return output.FieldSelection{
		E: o.FE, B: o.FB, Ue: o.FUe, Ne: o.FNe, Ui: o.FUi, Ni: o.FNi,
		Lower: o.Lower, Upper: o.Upper, Rate: o.Frate,
	}
}

// plasmaSampler mirrors output.plasmaSampler so main can name the return
// type of plasmaSamplerOf without importing plasma just for this signature.
type plasmaSampler interface {
	NumSpecies() int
	UX(i, j, k, m int) float64
	UY(i, j, k, m int) float64
	UZ(i, j, k, m int) float64
	N(i, j, k, m int) float64
}

// plasmaSamplerOf returns sc.Plasma as the narrow plasmaSampler interface
// output.NewFDWriter wants, or a true nil interface value when plasma is
// disabled -- passing a *plasma.State(nil) directly would produce a
// non-nil interface and trip FDWriter's "fw.p != nil" gate.
func plasmaSamplerOf(sc *scenario.Scenario) plasmaSampler {
	if sc.Plasma == nil {
		return nil
	}
	return sc.Plasma
}

// installSignalHandler renders spec.md §6.4: the first SIGINT cancels ctx
// cooperatively (Driver.Run checks it at the top of each step and stops
// cleanly, exit 0); a second SIGINT terminates the process immediately.
func installSignalHandler(cancel context.CancelFunc) {
	ch := make(chan os.Signal, 2)
	signal.Notify(ch, syscall.SIGINT)
	go func() {
		<-ch
		io.PfYel("\n> SIGINT received, stopping after current step (press Ctrl-C again to force quit)\n")
		cancel()
		<-ch
		io.PfRed("> second SIGINT, terminating\n")
		os.Exit(1)
	}()
}
