// Copyright 2026 The Pffdtd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import "github.com/cpmech/gosl/chk"

// volume is a single-slot, strided scalar field over the Yee lattice,
// indexed (i,j,k) with 1<=i<=sx, 1<=j<=sy, 1<=k<=sz. One extra cell of
// slack is kept on every upper axis so that the ABC and source routines
// can safely probe one cell past the nominal upper bound without a
// separate edge case.
type volume struct {
	sx, sy, sz int
	strideI    int
	strideJ    int
	data       []float64
}

func newVolume(sx, sy, sz int) *volume {
	ny := sy + 2
	nz := sz + 2
	v := &volume{
		sx:      sx,
		sy:      sy,
		sz:      sz,
		strideI: ny * nz,
		strideJ: nz,
	}
	v.data = make([]float64, (sx+2)*ny*nz)
	return v
}

func (v *volume) idx(i, j, k int) int {
	if debugBounds {
		if i < 0 || i > v.sx+1 || j < 0 || j > v.sy+1 || k < 0 || k > v.sz+1 {
			chk.Panic("volume index out of range: (%d,%d,%d) outside [0,%d]x[0,%d]x[0,%d]", i, j, k, v.sx+1, v.sy+1, v.sz+1)
		}
	}
	return i*v.strideI + j*v.strideJ + k
}

func (v *volume) At(i, j, k int) float64 { return v.data[v.idx(i, j, k)] }

func (v *volume) Set(i, j, k int, value float64) { v.data[v.idx(i, j, k)] = value }

func (v *volume) Fill(value float64) {
	for n := range v.data {
		v.data[n] = value
	}
}

// field is the two-time-slot (prev, cur) storage for one E or B component.
type field struct {
	*volume
	prev *volume
}

func newField(sx, sy, sz int) *field {
	return &field{volume: newVolume(sx, sy, sz), prev: newVolume(sx, sy, sz)}
}

// Cur returns the current-time-level value at (i,j,k).
func (f *field) Cur(i, j, k int) float64 { return f.At(i, j, k) }

// SetCur overwrites the current-time-level value at (i,j,k).
func (f *field) SetCur(i, j, k int, value float64) { f.Set(i, j, k, value) }

// Prev returns the previous-time-level value at (i,j,k).
func (f *field) Prev(i, j, k int) float64 { return f.prev.At(i, j, k) }

// SaveOld copies cur into prev at (i,j,k); must be called before Cur is
// overwritten at that cell in a given step so that the invariant
// "prev equals last step's cur" holds (spec.md §3).
func (f *field) SaveOld(i, j, k int) {
	f.prev.Set(i, j, k, f.At(i, j, k))
}

func (f *field) Fill(value float64) {
	f.volume.Fill(value)
	f.prev.Fill(value)
}

// Stamp sets both time slots explicitly at (i,j,k). Used by the absorbing
// boundary, which must set prev to a pre-step snapshot rather than
// whatever SaveOld would currently see -- a cell on a grid edge can be
// touched by more than one face pass within a single step (spec.md §4.4).
func (f *field) Stamp(i, j, k int, prevValue, curValue float64) {
	f.prev.Set(i, j, k, prevValue)
	f.Set(i, j, k, curValue)
}
