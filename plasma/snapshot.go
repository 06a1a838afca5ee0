// Copyright 2026 The Pffdtd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plasma

func (f *speciesField) snapshot() [3][]float64 {
	var out [3][]float64
	for i, slot := range f.slots {
		out[i] = append([]float64(nil), slot...)
	}
	return out
}

func (f *speciesField) restore(s [3][]float64) {
	for i := range f.slots {
		copy(f.slots[i], s[i])
	}
}

// Snapshot is the exported, gob-encodable image of a State's mutable
// fields (the rolling three-slot U/N arrays), used by sim.Checkpoint for
// spec.md §8's round-trip property. SIG/QF are excluded: they are set once
// by InitMasks and never mutated by the step kernels.
type Snapshot struct {
	UX, UY, UZ [3][]float64
	N          [3][]float64
}

// Snapshot copies s's mutable U/N state into a value safe to gob-encode.
func (s *State) Snapshot() Snapshot {
	return Snapshot{
		UX: s.ux.snapshot(), UY: s.uy.snapshot(), UZ: s.uz.snapshot(),
		N: s.n.snapshot(),
	}
}

// Restore overwrites s's mutable U/N state from a prior Snapshot. s must
// have been allocated with the same grid dimensions and species count the
// snapshot was taken from.
func (s *State) Restore(snap Snapshot) {
	s.ux.restore(snap.UX)
	s.uy.restore(snap.UY)
	s.uz.restore(snap.UZ)
	s.n.restore(snap.N)
}
