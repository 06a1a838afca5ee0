// Copyright 2026 The Pffdtd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

// FieldSnapshot is the gob-encodable contents of one two-time-slot field
// (an E or B component), used by Grid.Snapshot/Restore for spec.md §8's
// checkpoint/restore round-trip.
type FieldSnapshot struct {
	Cur  []float64
	Prev []float64
}

func (f *field) snapshot() FieldSnapshot {
	return FieldSnapshot{
		Cur:  append([]float64(nil), f.data...),
		Prev: append([]float64(nil), f.prev.data...),
	}
}

func (f *field) restore(s FieldSnapshot) {
	copy(f.data, s.Cur)
	copy(f.prev.data, s.Prev)
}

// Snapshot is the exported, gob-encodable image of a Grid's mutable state:
// the six field components and the source table's accumulated
// Volt/Current. The ER volumes are not included; they are unchanged after
// load.
type Snapshot struct {
	EX, EY, EZ FieldSnapshot
	BX, BY, BZ FieldSnapshot
	Sources    []Source
}

// Snapshot copies g's mutable state into a value safe to gob-encode.
func (g *Grid) Snapshot() Snapshot {
	srcs := make([]Source, len(g.Sources))
	for a, s := range g.Sources {
		srcs[a] = *s
	}
	return Snapshot{
		EX: g.ex.snapshot(), EY: g.ey.snapshot(), EZ: g.ez.snapshot(),
		BX: g.bx.snapshot(), BY: g.by.snapshot(), BZ: g.bz.snapshot(),
		Sources: srcs,
	}
}

// Restore overwrites g's mutable state from a prior Snapshot. g must have
// been allocated with the same dimensions the snapshot was taken from.
func (g *Grid) Restore(s Snapshot) {
	g.ex.restore(s.EX)
	g.ey.restore(s.EY)
	g.ez.restore(s.EZ)
	g.bx.restore(s.BX)
	g.by.restore(s.BY)
	g.bz.restore(s.BZ)
	for a, src := range s.Sources {
		if a < len(g.Sources) {
			*g.Sources[a] = src
		}
	}
}
