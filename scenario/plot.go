// Copyright 2026 The Pffdtd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scenario

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
)

// PlotWaveforms renders every configured source's waveform over one
// plasma period (or, with plasma disabled, 64 timesteps) and saves a PNG
// per source under dirout. Grounded on inp/func.go's PlotAll: a
// plt.Reset/plt.Plot/plt.Save triple per function, gated here behind the
// CLI's "-plot" flag rather than run unconditionally since it is a
// debugging aid, not part of the simulated output (spec.md's output
// surface is exactly .vc/.fd).
func (s *Scenario) PlotWaveforms(dirout, fnkey string) {
	n := s.Source.NumSources()
	if n == 0 {
		return
	}
	const np = 200
	tEnd := 64 * s.Grid.Dt
	if s.PlasmaEnabled && s.Grid.Df > 0 {
		tEnd = s.Grid.Dt / s.Grid.Df
	}
	ts := make([]float64, np)
	for i := range ts {
		ts[i] = tEnd * float64(i) / float64(np-1)
	}

	for a := 0; a < n; a++ {
		ys := s.Source.Sample(a, ts)
		plt.Reset(false, nil)
		plt.Plot(ts, ys, nil)
		plt.Save(dirout, io.Sf("%s-source-%d", fnkey, a+1))
	}
}
