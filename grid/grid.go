// Copyright 2026 The Gowell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package grid implements read-only reservoir grid descriptors: polyhedral
// cells with bounding faces, optional vertex coordinates, and optional
// embedded fracture sub-grids (EDFM). It provides the geometric queries
// needed by well-index computations: cell bounding boxes and centroid
// projections along the gravity direction.
package grid

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// Face holds one bounding face of a cell
type Face struct {
	Area   float64   // face area
	Normal []float64 // outward unit normal
	Verts  []int     // vertex ids; empty when the grid carries no vertex coordinates
}

// Cell holds one grid cell
type Cell struct {
	Faces    []*Face   // bounding faces
	Vol      float64   // cell volume
	Centroid []float64 // cell centroid
}

// FracGrid holds one embedded fracture sub-grid. Fracture cells occupy their
// own global cell-id range, past the matrix cells, and carry their own
// centroids and permeability. Aperture and height are grid-wide scalars.
type FracGrid struct {
	FirstCell int         // first global cell id of this sub-grid
	LastCell  int         // last global cell id of this sub-grid (inclusive)
	Centroids [][]float64 // [nlocal] fracture cell centroids
	Perm      []float64   // [nlocal] fracture permeability
	Aperture  float64     // fracture aperture
	Height    float64     // fracture height (out-of-plane, 2D host grids)
}

// Grid holds an immutable grid
type Grid struct {
	Ndim  int               // space dimension: 2 or 3
	Verts [][]float64       // [nverts] vertex coordinates; empty for face-area-only grids
	Cells []*Cell           // [ncells] matrix cells
	Fracs map[int]*FracGrid // fracture sub-grids keyed by fracture-grid id; may be nil
}

// NumFracCells returns the total number of fracture cells over all sub-grids
func (o *Grid) NumFracCells() (n int) {
	for _, fg := range o.Fracs {
		n += fg.LastCell - fg.FirstCell + 1
	}
	return
}

// IsFracCell tells whether a global cell id addresses a fracture cell
func (o *Grid) IsFracCell(cell int) bool {
	for _, fg := range o.Fracs {
		if cell >= fg.FirstCell && cell <= fg.LastCell {
			return true
		}
	}
	return false
}

// FracCell resolves a global cell id into its fracture sub-grid: it returns
// the fracture-grid id, the local cell index within that sub-grid, and the
// sub-grid record itself
func (o *Grid) FracCell(cell int) (fid, loc int, fg *FracGrid, err error) {
	for id, f := range o.Fracs {
		if cell >= f.FirstCell && cell <= f.LastCell {
			return id, cell - f.FirstCell, f, nil
		}
	}
	err = chk.Err("cell %d does not belong to any fracture sub-grid", cell)
	return
}

// CellCentroid returns the centroid of a matrix or fracture cell
func (o *Grid) CellCentroid(cell int) []float64 {
	if cell >= 0 && cell < len(o.Cells) {
		return o.Cells[cell].Centroid
	}
	if _, loc, fg, err := o.FracCell(cell); err == nil {
		return fg.Centroids[loc]
	}
	chk.Panic("cell id %d is out of range", cell)
	return nil
}

// Depths projects cell centroids onto the gravity direction and subtracts a
// reference depth:
//
//	Z[i] = centroid[i] · unit(gravity) - refDepth
//
// A zero gravity vector selects the last spatial axis as the projection
// direction. When haveRef is false, refDepth defaults to the minimum
// projected vertex depth (0 for a zero gravity vector).
func (o *Grid) Depths(gravity []float64, refDepth float64, haveRef bool, cells []int) (z []float64) {

	// unit projection direction
	unit := make([]float64, o.Ndim)
	norm := 0.0
	if len(gravity) == o.Ndim {
		norm = math.Sqrt(la.VecDot(gravity, gravity))
	}
	if norm > 0 {
		for i := 0; i < o.Ndim; i++ {
			unit[i] = gravity[i] / norm
		}
	} else {
		unit[o.Ndim-1] = 1
	}

	// default reference depth
	if !haveRef {
		refDepth = 0
		if norm > 0 {
			refDepth = o.minProjectedDepth(unit)
		}
	}

	// project centroids
	z = make([]float64, len(cells))
	for i, c := range cells {
		z[i] = la.VecDot(o.CellCentroid(c), unit) - refDepth
	}
	return
}

// minProjectedDepth returns the minimum vertex depth along unit. Grids
// without vertex data fall back to cell centroids.
func (o *Grid) minProjectedDepth(unit []float64) (zmin float64) {
	zmin = math.Inf(1)
	if len(o.Verts) > 0 {
		for _, v := range o.Verts {
			if d := la.VecDot(v, unit); d < zmin {
				zmin = d
			}
		}
		return
	}
	for _, cell := range o.Cells {
		if d := la.VecDot(cell.Centroid, unit); d < zmin {
			zmin = d
		}
	}
	if math.IsInf(zmin, 1) {
		zmin = 0
	}
	return
}
