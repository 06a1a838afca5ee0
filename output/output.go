// Copyright 2026 The Pffdtd Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package output implements the ambient `.vc`/`.fd` writers of spec.md
// §6.3. It is a thin consumer of sim.Recorder/sim.StepRecord so the
// driver's step loop never writes files itself.
package output

import (
	"bufio"
	"bytes"
	"os"

	"github.com/jward-usu/pffdtd/grid"
	"github.com/jward-usu/pffdtd/internal/status"
	"github.com/jward-usu/pffdtd/sim"

	"github.com/cpmech/gosl/io"
)

// VCWriter writes the per-step V,I record to "<stem>.vc": column 0 is t,
// then two columns per source (VOLT[a], CURRENT[a]), tab-separated, %e
// format, matching original_source/src/io/output.cpp's headvc/body loop.
//
// Unlike the teacher's one-shot io.WriteFile(path, buf) dumps — which build
// a whole VTU file in memory before a single write — a .vc file is appended
// to once per simulation step over a run that can last thousands of steps.
// io.Ff still does the %e/\t formatting (gosl's convention), but each
// formatted line lands in a scratch *bytes.Buffer that is then streamed to
// the open file through a *bufio.Writer, so the writer holds at most one
// formatted line plus the bufio buffer in memory.
type VCWriter struct {
	f   *os.File
	w   *bufio.Writer
	buf bytes.Buffer
}

// NewVCWriter opens "<stem>.vc" for writing and emits the header line
// ("0", then "a1", "a2" per source, per output.cpp's headvc).
func NewVCWriter(stem string, nSources int) (*VCWriter, error) {
	f, err := os.Create(stem + ".vc")
	if err != nil {
		return nil, status.New(status.FileOpen, "cannot open %q: %v", stem+".vc", err)
	}
	vc := &VCWriter{f: f, w: bufio.NewWriter(f)}
	vc.buf.WriteString("0")
	for a := 1; a <= nSources; a++ {
		io.Ff(&vc.buf, "\t%d1\t%d2", a, a)
	}
	vc.buf.WriteString("\n")
	vc.flushLine()
	return vc, nil
}

func (vc *VCWriter) flushLine() {
	vc.w.Write(vc.buf.Bytes())
	vc.buf.Reset()
}

// RecordStep implements sim.Recorder.
func (vc *VCWriter) RecordStep(rec sim.StepRecord) error {
	io.Ff(&vc.buf, "%e", rec.T)
	for a := range rec.Volt {
		io.Ff(&vc.buf, "\t%e\t%e", rec.Volt[a], rec.Cur[a])
	}
	vc.buf.WriteString("\n")
	vc.flushLine()
	return nil
}

// Close flushes and closes the underlying file.
func (vc *VCWriter) Close() error {
	if err := vc.w.Flush(); err != nil {
		return err
	}
	return vc.f.Close()
}

// FieldSelection names which field tuples are enabled in an .fd snapshot,
// and the output sub-volume they're sampled over (spec.md §6.2 item 13).
type FieldSelection struct {
	E, B, Ue, Ne, Ui, Ni bool
	Lower, Upper         [3]int
	Rate                 int // emit every Rate-th step
}

// FDWriter writes periodic field snapshots to "<stem>.fd": a single
// four-line header covering every enabled field tuple (a field id line,
// then one coordinate line per axis, with one column per sampled value),
// followed by one line per emitted step (t, then samples in i,j,k order),
// matching output.cpp's headfd/body loop.
type FDWriter struct {
	f   *os.File
	w   *bufio.Writer
	buf bytes.Buffer
	sel FieldSelection
	g   *grid.Grid
	p   plasmaSampler
}

// plasmaSampler is the narrow view of plasma.State the snapshot writer
// needs; satisfied by *plasma.State without an import cycle back through
// sim. Ue/Ne always sample species 0 (electrons) and Ui/Ni always sample
// species 1 (the first ion), matching original_source/src/io/output.cpp's
// outputfd, which indexes UX/UY/UZ/N at the fixed species slots [0] and [1].
type plasmaSampler interface {
	NumSpecies() int
	UX(i, j, k, m int) float64
	UY(i, j, k, m int) float64
	UZ(i, j, k, m int) float64
	N(i, j, k, m int) float64
}

// NewFDWriter opens "<stem>.fd", writes the header block, and returns a
// writer that will be invoked by sim.Driver once per Rate-th step.
func NewFDWriter(stem string, g *grid.Grid, sel FieldSelection, p plasmaSampler) (*FDWriter, error) {
	f, err := os.Create(stem + ".fd")
	if err != nil {
		return nil, status.New(status.FileOpen, "cannot open %q: %v", stem+".fd", err)
	}
	fw := &FDWriter{f: f, w: bufio.NewWriter(f), sel: sel, g: g, p: p}
	fw.writeHeader()
	return fw, nil
}

func (fw *FDWriter) flushLine() {
	fw.w.Write(fw.buf.Bytes())
	fw.buf.Reset()
}

// plasmaTuples reports which of the four plasma tuples are both requested
// by FieldSelection and actually samplable, i.e. plasma is enabled and the
// species table is large enough for the fixed electron (0) / first-ion (1)
// indices outputfd uses. writeHeader and RecordStep both call this so the
// header's declared columns and each row's written columns can never drift
// apart.
func (fw *FDWriter) plasmaTuples() (ue, ne, ui, ni bool) {
	if fw.p == nil {
		return false, false, false, false
	}
	ns := fw.p.NumSpecies()
	ue = fw.sel.Ue && ns >= 1
	ne = fw.sel.Ne && ns >= 1
	ui = fw.sel.Ui && ns >= 2
	ni = fw.sel.Ni && ns >= 2
	return
}

func (fw *FDWriter) tuples() []string {
	var ids []string
	if fw.sel.E {
		ids = append(ids, "11", "12", "13")
	}
	if fw.sel.B {
		ids = append(ids, "21", "22", "23")
	}
	ue, ne, ui, ni := fw.plasmaTuples()
	if ue {
		ids = append(ids, "31", "32", "33")
	}
	if ne {
		ids = append(ids, "40")
	}
	if ui {
		ids = append(ids, "51", "52", "53")
	}
	if ni {
		ids = append(ids, "60")
	}
	return ids
}

func (fw *FDWriter) writeHeader() {
	ids := fw.tuples()
	lo, hi := fw.sel.Lower, fw.sel.Upper

	fw.buf.WriteString("0")
	for i := lo[0]; i <= hi[0]; i++ {
		for j := lo[1]; j <= hi[1]; j++ {
			for k := lo[2]; k <= hi[2]; k++ {
				for _, id := range ids {
					io.Ff(&fw.buf, "\t%s", id)
				}
			}
		}
	}
	fw.buf.WriteString("\n")
	fw.flushLine()

	for axis := 0; axis < 3; axis++ {
		fw.buf.WriteString("0")
		for i := lo[0]; i <= hi[0]; i++ {
			for j := lo[1]; j <= hi[1]; j++ {
				for k := lo[2]; k <= hi[2]; k++ {
					coord := [3]int{i, j, k}[axis]
					for range ids {
						io.Ff(&fw.buf, "\t%d", coord)
					}
				}
			}
		}
		fw.buf.WriteString("\n")
		fw.flushLine()
	}
}

// RecordStep implements sim.Recorder, emitting a field snapshot every
// Rate-th step: "((i-1) mod frate == 0)" per spec.md §4.6 step 7.
func (fw *FDWriter) RecordStep(rec sim.StepRecord) error {
	if fw.sel.Rate <= 0 || (rec.Iter-1)%fw.sel.Rate != 0 {
		return nil
	}
	lo, hi := fw.sel.Lower, fw.sel.Upper
	io.Ff(&fw.buf, "%e", rec.T)
	ex, ey, ez := fw.g.EX(), fw.g.EY(), fw.g.EZ()
	bx, by, bz := fw.g.BX(), fw.g.BY(), fw.g.BZ()
	ue, ne, ui, ni := fw.plasmaTuples()
	for i := lo[0]; i <= hi[0]; i++ {
		for j := lo[1]; j <= hi[1]; j++ {
			for k := lo[2]; k <= hi[2]; k++ {
				if fw.sel.E {
					io.Ff(&fw.buf, "\t%e\t%e\t%e", ex.Cur(i, j, k), ey.Cur(i, j, k), ez.Cur(i, j, k))
				}
				if fw.sel.B {
					io.Ff(&fw.buf, "\t%e\t%e\t%e", bx.Cur(i, j, k), by.Cur(i, j, k), bz.Cur(i, j, k))
				}
				if ue {
					io.Ff(&fw.buf, "\t%e\t%e\t%e", fw.p.UX(i, j, k, 0), fw.p.UY(i, j, k, 0), fw.p.UZ(i, j, k, 0))
				}
				if ne {
					io.Ff(&fw.buf, "\t%e", fw.p.N(i, j, k, 0))
				}
				if ui {
					io.Ff(&fw.buf, "\t%e\t%e\t%e", fw.p.UX(i, j, k, 1), fw.p.UY(i, j, k, 1), fw.p.UZ(i, j, k, 1))
				}
				if ni {
					io.Ff(&fw.buf, "\t%e", fw.p.N(i, j, k, 1))
				}
			}
		}
	}
	fw.buf.WriteString("\n")
	fw.flushLine()
	return nil
}

// Close flushes and closes the underlying file.
func (fw *FDWriter) Close() error {
	if err := fw.w.Flush(); err != nil {
		return err
	}
	return fw.f.Close()
}
