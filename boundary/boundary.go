// Copyright 2026 The Pffdtd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package boundary implements the C4 component: a retarded-time
// ("first-order Mur-style") absorbing condition on the six outer faces of
// E (spec.md §4.4).
package boundary

import (
	"github.com/jward-usu/pffdtd/grid"

	"github.com/cpmech/gosl/la"
)

// plane snapshots the two tangential E components on one outer face,
// captured before any face pass writes to it this step. Backed by
// la.Vector (gosl's dense vector type) rather than a bare []float64,
// matching the teacher's numeric-container idiom (gosl/la is used
// elsewhere in gofem for exactly this kind of flat numeric buffer).
type plane struct {
	a, b   la.Vector // tangential components, row-major over the 2D face
	na, nb int       // face extents, 1-based logical size
}

func newPlane(na, nb int) *plane {
	return &plane{a: make(la.Vector, na*nb), b: make(la.Vector, na*nb), na: na, nb: nb}
}

func (p *plane) idx(u, v int) int { return (u-1)*p.nb + (v - 1) }

func (p *plane) get(u, v int) (a, b float64) {
	n := p.idx(u, v)
	return p.a[n], p.b[n]
}

func (p *plane) set(u, v int, a, b float64) {
	n := p.idx(u, v)
	p.a[n] = a
	p.b[n] = b
}

// ABC owns the six one-cell-thick history planes and applies the retarded
// time condition over them each step.
type ABC struct {
	x0, x1 *plane // tangential EY,EZ at i=1, i=sx
	y0, y1 *plane // tangential EX,EZ at j=1, j=sy
	z0, z1 *plane // tangential EX,EY at k=1, k=sz
}

// New allocates the history planes for a grid of the given size. Planes
// start zeroed, per spec.md §4.4.
func New(g *grid.Grid) *ABC {
	return &ABC{
		x0: newPlane(g.Sy, g.Sz),
		x1: newPlane(g.Sy, g.Sz),
		y0: newPlane(g.Sx, g.Sz),
		y1: newPlane(g.Sx, g.Sz),
		z0: newPlane(g.Sx, g.Sy),
		z1: newPlane(g.Sx, g.Sy),
	}
}

// Clear zeros the history planes; called by the same routine that
// initializes the field store (spec.md §4.4).
func (abc *ABC) Clear() {
	for _, p := range []*plane{abc.x0, abc.x1, abc.y0, abc.y1, abc.z0, abc.z1} {
		for n := range p.a {
			p.a[n] = 0
			p.b[n] = 0
		}
	}
}

func kappa(lightSpeed, dt, d float64) float64 {
	return (lightSpeed*dt - d) / (lightSpeed*dt + d)
}

// Apply overwrites E on the outer shell with the retarded-time absorbing
// condition. Face passes run in axis order X, Y, Z; a cell shared by two
// or more faces (an edge or corner) is written once per face that owns
// it, with the later axis's pass winning. No separate along-edge
// condition is applied.
func (abc *ABC) Apply(g *grid.Grid, lightSpeed float64) {
	abc.snapshot(g)

	kx := kappa(lightSpeed, g.Dt, g.Dx)
	ky := kappa(lightSpeed, g.Dt, g.Dy)
	kz := kappa(lightSpeed, g.Dt, g.Dz)

	abc.applyX(g, kx)
	abc.applyY(g, ky)
	abc.applyZ(g, kz)
}

// snapshot captures the current (pre-step) boundary values of every
// tangential component on every face, before any face pass runs.
func (abc *ABC) snapshot(g *grid.Grid) {
	ey, ez, ex := g.EY(), g.EZ(), g.EX()
	for j := 1; j <= g.Sy; j++ {
		for k := 1; k <= g.Sz; k++ {
			abc.x0.set(j, k, ey.Cur(1, j, k), ez.Cur(1, j, k))
			abc.x1.set(j, k, ey.Cur(g.Sx, j, k), ez.Cur(g.Sx, j, k))
		}
	}
	for i := 1; i <= g.Sx; i++ {
		for k := 1; k <= g.Sz; k++ {
			abc.y0.set(i, k, ex.Cur(i, 1, k), ez.Cur(i, 1, k))
			abc.y1.set(i, k, ex.Cur(i, g.Sy, k), ez.Cur(i, g.Sy, k))
		}
	}
	for i := 1; i <= g.Sx; i++ {
		for j := 1; j <= g.Sy; j++ {
			abc.z0.set(i, j, ex.Cur(i, j, 1), ey.Cur(i, j, 1))
			abc.z1.set(i, j, ex.Cur(i, j, g.Sz), ey.Cur(i, j, g.Sz))
		}
	}
}

func (abc *ABC) applyX(g *grid.Grid, kx float64) {
	ey, ez := g.EY(), g.EZ()
	for j := 1; j <= g.Sy; j++ {
		for k := 1; k <= g.Sz; k++ {
			oldEY, oldEZ := abc.x0.get(j, k)
			newEY := ey.Prev(2, j, k) + kx*(ey.Cur(2, j, k)-oldEY)
			newEZ := ez.Prev(2, j, k) + kx*(ez.Cur(2, j, k)-oldEZ)
			ey.Stamp(1, j, k, oldEY, newEY)
			ez.Stamp(1, j, k, oldEZ, newEZ)

			oldEY, oldEZ = abc.x1.get(j, k)
			newEY = ey.Prev(g.Sx-1, j, k) + kx*(ey.Cur(g.Sx-1, j, k)-oldEY)
			newEZ = ez.Prev(g.Sx-1, j, k) + kx*(ez.Cur(g.Sx-1, j, k)-oldEZ)
			ey.Stamp(g.Sx, j, k, oldEY, newEY)
			ez.Stamp(g.Sx, j, k, oldEZ, newEZ)
		}
	}
}

func (abc *ABC) applyY(g *grid.Grid, ky float64) {
	ex, ez := g.EX(), g.EZ()
	for i := 1; i <= g.Sx; i++ {
		for k := 1; k <= g.Sz; k++ {
			oldEX, oldEZ := abc.y0.get(i, k)
			newEX := ex.Prev(i, 2, k) + ky*(ex.Cur(i, 2, k)-oldEX)
			newEZ := ez.Prev(i, 2, k) + ky*(ez.Cur(i, 2, k)-oldEZ)
			ex.Stamp(i, 1, k, oldEX, newEX)
			ez.Stamp(i, 1, k, oldEZ, newEZ)

			oldEX, oldEZ = abc.y1.get(i, k)
			newEX = ex.Prev(i, g.Sy-1, k) + ky*(ex.Cur(i, g.Sy-1, k)-oldEX)
			newEZ = ez.Prev(i, g.Sy-1, k) + ky*(ez.Cur(i, g.Sy-1, k)-oldEZ)
			ex.Stamp(i, g.Sy, k, oldEX, newEX)
			ez.Stamp(i, g.Sy, k, oldEZ, newEZ)
		}
	}
}

func (abc *ABC) applyZ(g *grid.Grid, kz float64) {
	ex, ey := g.EX(), g.EY()
	for i := 1; i <= g.Sx; i++ {
		for j := 1; j <= g.Sy; j++ {
			oldEX, oldEY := abc.z0.get(i, j)
			newEX := ex.Prev(i, j, 2) + kz*(ex.Cur(i, j, 2)-oldEX)
			newEY := ey.Prev(i, j, 2) + kz*(ey.Cur(i, j, 2)-oldEY)
			ex.Stamp(i, j, 1, oldEX, newEX)
			ey.Stamp(i, j, 1, oldEY, newEY)

			oldEX, oldEY = abc.z1.get(i, j)
			newEX = ex.Prev(i, j, g.Sz-1) + kz*(ex.Cur(i, j, g.Sz-1)-oldEX)
			newEY = ey.Prev(i, j, g.Sz-1) + kz*(ey.Cur(i, j, g.Sz-1)-oldEY)
			ex.Stamp(i, j, g.Sz, oldEX, newEX)
			ey.Stamp(i, j, g.Sz, oldEY, newEY)
		}
	}
}
