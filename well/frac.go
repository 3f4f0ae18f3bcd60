// Copyright 2026 The Gowell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package well

import (
	"math"

	"github.com/cpmech/gowell/grid"
)

// fracGeom resolves the fracture-plane geometry of one fracture-cell
// perforation: the in-plane length lf, taken as the distance between the
// centroids defining the local fracture cell along its length axis, and the
// fracture height hf. Only 2D host grids are supported: the closed-form
// line-source model has no 3D counterpart here.
func fracGeom(g *grid.Grid, cell, perf int) (lf, hf float64, fg *grid.FracGrid, loc int, err error) {
	_, loc, fg, e := g.FracCell(cell)
	if e != nil {
		err = wrapErr(DataError, e)
		return
	}
	if g.Ndim != 2 {
		err = newErr(GeometryError, perf, "fracture-plane length is not implemented for 3D host grids")
		return
	}
	n := len(fg.Centroids)
	if n < 2 {
		err = newErr(GeometryError, perf, "fracture sub-grid has a single cell; the in-plane length cannot be measured")
		return
	}
	j := loc + 1
	if j >= n {
		j = loc - 1
	}
	a, b := fg.Centroids[loc], fg.Centroids[j]
	sum := 0.0
	for i := range a {
		sum += (a[i] - b[i]) * (a[i] - b[i])
	}
	lf = math.Sqrt(sum)
	hf = fg.Height
	return lf, hf, fg, loc, nil
}

// FracWI computes the well index of perforations connecting a well directly
// to embedded fracture cells, using the Moinfar-type line-source model:
//
//	re = 0.14·sqrt(lf² + hf²)
//	WI = 2π·kf·wf / (ln(re/rw) + skin)
//
// where kf is the local fracture permeability and wf the grid-wide fracture
// aperture. The same positivity contract as the matrix formula applies.
func FracWI(g *grid.Grid, radius []float64, cells []int, skin []float64) (wi []float64, err error) {
	n := len(cells)
	if len(radius) != n || len(skin) != n {
		return nil, newErr(ShapeError, -1, "radius/skin sequences must have %d entries", n)
	}
	wi = make([]float64, n)
	for i, c := range cells {
		lf, hf, fg, loc, e := fracGeom(g, c, i)
		if e != nil {
			return nil, e
		}
		re := 0.14 * math.Sqrt(lf*lf+hf*hf)
		kf := fg.Perm[loc]
		wf := fg.Aperture
		wi[i] = 2.0 * math.Pi * kf * wf / (math.Log(re/radius[i]) + skin[i])
		if !(wi[i] > 0) {
			if re < radius[i] {
				return nil, newErr(WellRadiusError, i, "fracture equivalent radius re=%g is smaller than the wellbore radius rw=%g in cell %d", re, radius[i], c)
			}
			return nil, newErr(SkinError, i, "skin factor %g makes the fracture well index non-positive in cell %d", skin[i], c)
		}
	}
	return
}
