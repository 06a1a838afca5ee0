// Copyright 2026 The Pffdtd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plasma

// JX, JY, JZ and Sigma implement maxwell.Current, feeding the linearized
// conduction current back into the E update. The sum is reproduced
// literally from src/physics/plasma.h's Ecalcmod: each species contributes
// a perturbation-velocity term, a perturbation-density term riding on the
// drift, and a constant drift/ambient cross term.
func (s *State) JX(i, j, k int) float64 {
	var sum float64
	ux0 := s.Drift[0]
	for m, sp := range s.Species {
		n0 := s.Ambient.N0(m, i, j, k)
		sum += sp.Charge * (n0*(s.ux.At(2, i, j, k, m)+s.ux.At(2, i-1, j, k, m)) +
			ux0*(s.n.At(2, i, j, k, m)+s.n.At(2, i-1, j, k, m)) +
			2*n0*ux0)
	}
	return sum
}

func (s *State) JY(i, j, k int) float64 {
	var sum float64
	uy0 := s.Drift[1]
	for m, sp := range s.Species {
		n0 := s.Ambient.N0(m, i, j, k)
		sum += sp.Charge * (n0*(s.uy.At(2, i, j, k, m)+s.uy.At(2, i, j-1, k, m)) +
			uy0*(s.n.At(2, i, j, k, m)+s.n.At(2, i, j-1, k, m)) +
			2*n0*uy0)
	}
	return sum
}

func (s *State) JZ(i, j, k int) float64 {
	var sum float64
	uz0 := s.Drift[2]
	for m, sp := range s.Species {
		n0 := s.Ambient.N0(m, i, j, k)
		sum += sp.Charge * (n0*(s.uz.At(2, i, j, k, m)+s.uz.At(2, i, j, k-1, m)) +
			uz0*(s.n.At(2, i, j, k, m)+s.n.At(2, i, j, k-1, m)) +
			2*n0*uz0)
	}
	return sum
}

// Sigma returns the conductivity mask: 1 where the plasma term applies,
// 0 outside the InitMasks interior band and on any cell whose ER is not
// vacuum (dielectric or PEC).
func (s *State) Sigma(i, j, k int) float64 { return s.SIG(i, j, k) }
