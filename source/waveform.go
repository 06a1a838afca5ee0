// Copyright 2026 The Pffdtd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package source implements the C2 component: the per-kind waveform
// generator (Esource) and the terminal voltage/current sampler (Rcalc).
//
// Waveforms are registered the same way gofem's inp.FuncsData registers
// named functions via fun.New(type, prms): each grid.Kind maps to a small
// constructor that validates its dbf.Params and returns a Waveform closure.
package source

import (
	"math"

	"github.com/jward-usu/pffdtd/grid"
	"github.com/jward-usu/pffdtd/internal/status"

	"github.com/cpmech/gosl/fun/dbf"
)

// Waveform evaluates a source's injected value at time t, given the grid's
// dt and (when plasma is enabled) df. Implementations close over their own
// validated parameters.
type Waveform interface {
	Value(t, dt, df float64) float64
}

// New builds the Waveform for a source's kind and parameter. It rejects
// p<=0 and unknown kinds with a ScenarioFormat error, which NewGenerator
// passes on so that the scenario load fails; it never panics. The
// GaussianDerivative sigma bounds are not checked.
func New(kind grid.Kind, param float64) (Waveform, error) {
	if param <= 0 {
		return nil, status.New(status.ScenarioFormat, "source parameter must be > 0, got %g", param)
	}
	prms := dbf.Params{&dbf.P{N: "p", V: param}}
	switch kind {
	case grid.Sine:
		return newSine(prms), nil
	case grid.Pulse:
		return newPulse(prms), nil
	case grid.RaisedCosine:
		return newRaisedCosine(prms), nil
	case grid.Gaussian:
		return newGaussian(prms), nil
	case grid.GaussianDerivative:
		return newGaussianDerivative(prms), nil
	case grid.DC:
		return newDC(prms), nil
	case grid.Sinc:
		return newSinc(prms), nil
	default:
		return nil, status.New(status.ScenarioFormat, "unknown source kind %d", kind)
	}
}

func paramValue(prms dbf.Params, name string) float64 {
	for _, p := range prms {
		if p.N == name {
			return p.V
		}
	}
	return 0
}

type sine struct{ p float64 }

func newSine(prms dbf.Params) Waveform { return sine{p: paramValue(prms, "p")} }

func (s sine) Value(t, dt, df float64) float64 {
	return math.Cos(2 * math.Pi * s.p * t)
}

type pulse struct{ p float64 }

func newPulse(prms dbf.Params) Waveform { return pulse{p: paramValue(prms, "p")} }

func (s pulse) Value(t, dt, df float64) float64 {
	if t*s.p/4 < 1 {
		return -1
	}
	return 0
}

type raisedCosine struct{ p float64 }

func newRaisedCosine(prms dbf.Params) Waveform { return raisedCosine{p: paramValue(prms, "p")} }

func (s raisedCosine) Value(t, dt, df float64) float64 {
	if t*s.p/4 < 1 {
		return 0.5*math.Cos(2*math.Pi*s.p*t) - 0.5
	}
	return 0
}

type gaussian struct{ sigma float64 }

func newGaussian(prms dbf.Params) Waveform { return gaussian{sigma: paramValue(prms, "p")} }

func (s gaussian) Value(t, dt, df float64) float64 {
	sigmaT := s.sigma * dt
	tau := 5 * sigmaT
	temp := (tau - t) / sigmaT
	return -1e-7 / sigmaT * math.Exp(-0.5*temp*temp)
}

// gaussianDerivative is the peak-normalized derivative of a Gaussian
// centered at tau=5*sigma with sigma=0.25/p, matching spec.md §4.2.
type gaussianDerivative struct{ p float64 }

func newGaussianDerivative(prms dbf.Params) Waveform {
	return gaussianDerivative{p: paramValue(prms, "p")}
}

func (s gaussianDerivative) Value(t, dt, df float64) float64 {
	sigma := 0.25 / s.p
	tau := 5 * sigma
	shifted := t - tau
	temp := shifted / (sigma * sigma * sigma * 2.50662827463) * math.Exp(-(shifted*shifted)/(2*sigma*sigma))
	peak := 0.241970724519 / (sigma * sigma)
	return temp / peak
}

type dcSource struct{ p float64 }

func newDC(prms dbf.Params) Waveform { return dcSource{p: paramValue(prms, "p")} }

func (s dcSource) Value(t, dt, df float64) float64 { return s.p }

type sinc struct{ p float64 }

func newSinc(prms dbf.Params) Waveform { return sinc{p: paramValue(prms, "p")} }

func (s sinc) Value(t, dt, df float64) float64 {
	offset := 10/df*dt + dt/2
	gain := 2 * s.p * dt
	x := s.p * (t - offset) * 2 * math.Pi
	if x == 0 {
		return gain
	}
	return math.Sin(x) / x * gain
}
