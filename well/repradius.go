// Copyright 2026 The Gowell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package well

import (
	"math"

	"github.com/cpmech/gowell/grid"
)

// RepRadius computes the representative radius of each perforation, an
// auxiliary quantity used by shear-dependent (e.g. non-Newtonian) flow
// models. It never feeds back into the well index itself and needs no
// permeability.
//
// Matrix perforations use the equivalent-area radius of the cell cross
// section:
//
//	re = sqrt(d1·d2/π)   rR = sqrt(re·rw)
//
// Fracture perforations use the fracture closed form re = 0.14·sqrt(lf²+hf²)
// with the same rR = sqrt(re·rw).
//
// When perPerf is false and the grid carries fracture sub-grids, the
// fracture form is applied uniformly to every perforation of the call,
// matrix or fracture alike. Set perPerf to true to dispatch per perforation
// instead.
func RepRadius(g *grid.Grid, radius []float64, dirs []Dir, cells []int, perPerf bool) (rr []float64, err error) {

	// shape checks
	n := len(cells)
	if len(radius) != n || len(dirs) != n {
		return nil, newErr(ShapeError, -1, "radius/direction sequences must have %d entries", n)
	}
	rr = make([]float64, n)

	// uniform fracture form on grids with fracture sub-grids
	if len(g.Fracs) > 0 && !perPerf {
		for i, c := range cells {
			lf, hf, _, _, e := fracGeom(g, c, i)
			if e != nil {
				return nil, e
			}
			re := 0.14 * math.Sqrt(lf*lf+hf*hf)
			rr[i] = math.Sqrt(re * radius[i])
		}
		return
	}

	// per-perforation dispatch
	var dx, dy, dz []float64
	var matPos []int // positions of matrix perforations within cells
	var matIds []int
	for i, c := range cells {
		if !g.IsFracCell(c) {
			matPos = append(matPos, i)
			matIds = append(matIds, c)
		}
	}
	if len(matIds) > 0 {
		dx, dy, dz, err = g.Bbox(g.DefaultBboxMode(), matIds)
		if err != nil {
			return nil, wrapErr(GeometryError, err)
		}
	}
	for j, i := range matPos {
		d := [3]float64{dx[j], dy[j], dz[j]}
		d1, d2, _, _, _ := crossSection(dirs[i], d, [3]float64{})
		re := math.Sqrt(d1 * d2 / math.Pi)
		rr[i] = math.Sqrt(re * radius[i])
	}
	for i, c := range cells {
		if !g.IsFracCell(c) {
			continue
		}
		lf, hf, _, _, e := fracGeom(g, c, i)
		if e != nil {
			return nil, e
		}
		re := 0.14 * math.Sqrt(lf*lf+hf*hf)
		rr[i] = math.Sqrt(re * radius[i])
	}
	return
}
