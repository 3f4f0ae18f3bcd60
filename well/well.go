// Copyright 2026 The Gowell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package well

import (
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/cpmech/gowell/grid"
	"github.com/cpmech/gowell/rock"
)

// Opts holds the options controlling well-index computation
type Opts struct {
	Scheme       string    // inner-product scheme name; e.g. "tpf", "mimetic"
	Gravity      []float64 // gravity direction vector (grid-dimension length)
	RefDepth     float64   // reference depth for hydrostatic corrections
	HaveRefDepth bool      // RefDepth was set by the caller
	Kh           []float64 // permeability-thickness override; negative entries mean "compute"
	PerPerf      bool      // representative radius: dispatch fracture/matrix per perforation
}

// GetPrms returns the default well parameters
func GetPrms() dbf.Params {
	return dbf.Params{
		&dbf.P{N: "radius", V: 0.1}, // wellbore radius
		&dbf.P{N: "skin", V: 0.0},   // skin factor
		&dbf.P{N: "kh", V: -1.0},    // permeability-thickness; negative = compute
	}
}

// DefaultOpts returns options with the default scheme and no gravity
func DefaultOpts() *Opts {
	return &Opts{Scheme: "tpf"}
}

// Well holds one well record: its completions (perforated cells), the
// per-perforation wellbore data, and the computed coupling coefficients
type Well struct {

	// input
	Name   string    // well name
	Cells  []int     // perforated cell ids (matrix or fracture)
	Radius []float64 // wellbore radius; scalar entries broadcast to all perforations
	Skin   []float64 // skin factor; broadcastable
	Dirs   []Dir     // well direction per perforation; broadcastable

	// computed
	WI        []float64 // well index per perforation
	RepRadius []float64 // representative radius per perforation
	Dz        []float64 // vertical depth offset per perforation
}

// Compute fills WI, RepRadius and Dz for every perforation of this well.
// Perforations are partitioned into matrix and fracture cells; matrix cells
// go through the Peaceman-type formula, fracture cells through the
// Moinfar-type line-source formula. Pre-supplied (positive) WI entries are
// left untouched.
func (o *Well) Compute(g *grid.Grid, rk *rock.Rock, opt *Opts) (err error) {
	if opt == nil {
		opt = DefaultOpts()
	}
	n := len(o.Cells)

	// broadcast per-perforation data
	prms := GetPrms()
	o.Radius, err = Broadcast(o.Radius, n, prms.Find("radius").V, "radius")
	if err != nil {
		return
	}
	o.Skin, err = Broadcast(o.Skin, n, prms.Find("skin").V, "skin")
	if err != nil {
		return
	}
	o.Dirs, err = BroadcastDirs(o.Dirs, n)
	if err != nil {
		return
	}
	kh, err := Broadcast(opt.Kh, n, prms.Find("kh").V, "kh")
	if err != nil {
		return
	}

	// partition perforations needing computation
	if len(o.WI) != n {
		o.WI = make([]float64, n)
	}
	var matPos, matIds, frcPos, frcIds []int
	for i, c := range o.Cells {
		if o.WI[i] > 0 { // pre-supplied
			continue
		}
		if g.IsFracCell(c) {
			frcPos = append(frcPos, i)
			frcIds = append(frcIds, c)
		} else {
			matPos = append(matPos, i)
			matIds = append(matIds, c)
		}
	}

	// matrix perforations
	if len(matIds) > 0 {
		wi, e := MatrixWI(g, rk,
			gather(o.Radius, matPos), gatherDirs(o.Dirs, matPos), matIds,
			opt.Scheme, gather(o.Skin, matPos), gather(kh, matPos))
		if e != nil {
			return e
		}
		for j, i := range matPos {
			o.WI[i] = wi[j]
		}
	}

	// fracture perforations
	if len(frcIds) > 0 {
		wi, e := FracWI(g, gather(o.Radius, frcPos), frcIds, gather(o.Skin, frcPos))
		if e != nil {
			return e
		}
		for j, i := range frcPos {
			o.WI[i] = wi[j]
		}
	}

	// auxiliary outputs over all perforations
	o.RepRadius, err = RepRadius(g, o.Radius, o.Dirs, o.Cells, opt.PerPerf)
	if err != nil {
		return
	}
	o.Dz = g.Depths(opt.Gravity, opt.RefDepth, opt.HaveRefDepth, o.Cells)
	return
}

// gather extracts the entries of vals at the given positions
func gather(vals []float64, pos []int) (out []float64) {
	out = make([]float64, len(pos))
	for j, i := range pos {
		out[j] = vals[i]
	}
	return
}

// gatherDirs extracts the entries of dirs at the given positions
func gatherDirs(dirs []Dir, pos []int) (out []Dir) {
	out = make([]Dir, len(pos))
	for j, i := range pos {
		out[j] = dirs[i]
	}
	return
}
