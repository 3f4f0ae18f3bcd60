// Copyright 2026 The Gowell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"sort"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/floats"
)

// BboxMode selects how cell bounding boxes are extracted
type BboxMode int

const (
	// BboxNodes extracts bounding boxes from min/max vertex coordinates
	BboxNodes BboxMode = iota + 1

	// BboxFaceAreas derives bounding boxes from face areas and the cell
	// volume; requires hexahedral cells (exactly 6 bounding faces)
	BboxFaceAreas
)

// DefaultBboxMode returns the extraction mode matching the data carried by
// the grid: node-based when vertex coordinates are present, face-area based
// otherwise
func (o *Grid) DefaultBboxMode() BboxMode {
	if len(o.Verts) > 0 {
		return BboxNodes
	}
	return BboxFaceAreas
}

// Bbox computes the physical extent (dx, dy, dz) of the given cells along
// each Cartesian axis, one value per cell.
//
// In node mode the extents are the edge lengths of the axis-aligned bounding
// box of the cell's vertices. For 2D grids the out-of-plane extent dy is
// defined as 1 (unit thickness) and the second in-plane extent is returned
// in dz. For 3D grids whose cells are flat along z (quasi-2D), dz is
// inferred as Vol/(dx·dy).
//
// In face-area mode each cell must have exactly 6 bounding faces; for each
// axis the two faces whose normals are most aligned with that axis are
// paired and the extent is 2·Vol/(A1+A2).
func (o *Grid) Bbox(mode BboxMode, cells []int) (dx, dy, dz []float64, err error) {
	n := len(cells)
	dx = make([]float64, n)
	dy = make([]float64, n)
	dz = make([]float64, n)
	switch mode {

	// node-based bounding boxes
	case BboxNodes:
		for i, c := range cells {
			cell := o.Cells[c]
			seen := make(map[int]bool)
			var xs, ys, zs []float64
			for _, f := range cell.Faces {
				for _, v := range f.Verts {
					if seen[v] {
						continue
					}
					seen[v] = true
					xs = append(xs, o.Verts[v][0])
					ys = append(ys, o.Verts[v][1])
					if o.Ndim == 3 {
						zs = append(zs, o.Verts[v][2])
					}
				}
			}
			if len(xs) == 0 {
				return nil, nil, nil, chk.Err("cell %d carries no vertex data; node-based bounding boxes are unavailable", c)
			}
			ex := floats.Max(xs) - floats.Min(xs)
			ey := floats.Max(ys) - floats.Min(ys)
			if o.Ndim == 2 {
				dx[i], dy[i], dz[i] = ex, 1.0, ey
				continue
			}
			ez := floats.Max(zs) - floats.Min(zs)
			if ez == 0 { // quasi-2D: flat cells along z
				ez = cell.Vol / (ex * ey)
			}
			dx[i], dy[i], dz[i] = ex, ey, ez
		}

	// face-area bounding boxes
	case BboxFaceAreas:
		for i, c := range cells {
			cell := o.Cells[c]
			if len(cell.Faces) != 6 {
				return nil, nil, nil, chk.Err("face-area bounding boxes require hexahedral cells: cell %d has %d faces", c, len(cell.Faces))
			}
			var d [3]float64
			idx := make([]int, len(cell.Faces))
			for axis := 0; axis < 3; axis++ {
				for j := range idx {
					idx[j] = j
				}
				sort.Slice(idx, func(a, b int) bool {
					na := abs(cell.Faces[idx[a]].Normal[axis])
					nb := abs(cell.Faces[idx[b]].Normal[axis])
					return na > nb
				})
				asum := cell.Faces[idx[0]].Area + cell.Faces[idx[1]].Area
				d[axis] = 2.0 * cell.Vol / asum
			}
			dx[i], dy[i], dz[i] = d[0], d[1], d[2]
		}

	default:
		return nil, nil, nil, chk.Err("unknown bounding-box extraction mode %d", mode)
	}
	return
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
