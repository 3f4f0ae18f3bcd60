// Copyright 2026 The Gowell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

// NewHexGrid builds a 3D Cartesian grid with nx×ny×nz hexahedral cells over
// a box of side lengths lx×ly×lz. Vertices, face areas, outward normals,
// volumes and centroids are all filled in.
func NewHexGrid(nx, ny, nz int, lx, ly, lz float64) (o *Grid) {
	o = new(Grid)
	o.Ndim = 3
	dx := lx / float64(nx)
	dy := ly / float64(ny)
	dz := lz / float64(nz)

	// vertices
	nvx, nvy, nvz := nx+1, ny+1, nz+1
	o.Verts = make([][]float64, nvx*nvy*nvz)
	vid := func(i, j, k int) int { return (k*nvy+j)*nvx + i }
	for k := 0; k < nvz; k++ {
		for j := 0; j < nvy; j++ {
			for i := 0; i < nvx; i++ {
				o.Verts[vid(i, j, k)] = []float64{float64(i) * dx, float64(j) * dy, float64(k) * dz}
			}
		}
	}

	// cells
	o.Cells = make([]*Cell, nx*ny*nz)
	for k := 0; k < nz; k++ {
		for j := 0; j < ny; j++ {
			for i := 0; i < nx; i++ {
				cell := new(Cell)
				cell.Vol = dx * dy * dz
				cell.Centroid = []float64{
					(float64(i) + 0.5) * dx,
					(float64(j) + 0.5) * dy,
					(float64(k) + 0.5) * dz,
				}
				cell.Faces = []*Face{
					{Area: dy * dz, Normal: []float64{-1, 0, 0}, Verts: []int{vid(i, j, k), vid(i, j+1, k), vid(i, j+1, k+1), vid(i, j, k+1)}},
					{Area: dy * dz, Normal: []float64{1, 0, 0}, Verts: []int{vid(i+1, j, k), vid(i+1, j+1, k), vid(i+1, j+1, k+1), vid(i+1, j, k+1)}},
					{Area: dx * dz, Normal: []float64{0, -1, 0}, Verts: []int{vid(i, j, k), vid(i+1, j, k), vid(i+1, j, k+1), vid(i, j, k+1)}},
					{Area: dx * dz, Normal: []float64{0, 1, 0}, Verts: []int{vid(i, j+1, k), vid(i+1, j+1, k), vid(i+1, j+1, k+1), vid(i, j+1, k+1)}},
					{Area: dx * dy, Normal: []float64{0, 0, -1}, Verts: []int{vid(i, j, k), vid(i+1, j, k), vid(i+1, j+1, k), vid(i, j+1, k)}},
					{Area: dx * dy, Normal: []float64{0, 0, 1}, Verts: []int{vid(i, j, k+1), vid(i+1, j, k+1), vid(i+1, j+1, k+1), vid(i, j+1, k+1)}},
				}
				o.Cells[(k*ny+j)*nx+i] = cell
			}
		}
	}
	return
}

// NewQuadGrid builds a 2D Cartesian grid with nx×ny quadrilateral cells over
// a rectangle of side lengths lx×ly
func NewQuadGrid(nx, ny int, lx, ly float64) (o *Grid) {
	o = new(Grid)
	o.Ndim = 2
	dx := lx / float64(nx)
	dy := ly / float64(ny)

	// vertices
	nvx, nvy := nx+1, ny+1
	o.Verts = make([][]float64, nvx*nvy)
	vid := func(i, j int) int { return j*nvx + i }
	for j := 0; j < nvy; j++ {
		for i := 0; i < nvx; i++ {
			o.Verts[vid(i, j)] = []float64{float64(i) * dx, float64(j) * dy}
		}
	}

	// cells
	o.Cells = make([]*Cell, nx*ny)
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			cell := new(Cell)
			cell.Vol = dx * dy
			cell.Centroid = []float64{
				(float64(i) + 0.5) * dx,
				(float64(j) + 0.5) * dy,
			}
			cell.Faces = []*Face{
				{Area: dy, Normal: []float64{-1, 0}, Verts: []int{vid(i, j), vid(i, j+1)}},
				{Area: dy, Normal: []float64{1, 0}, Verts: []int{vid(i+1, j), vid(i+1, j+1)}},
				{Area: dx, Normal: []float64{0, -1}, Verts: []int{vid(i, j), vid(i+1, j)}},
				{Area: dx, Normal: []float64{0, 1}, Verts: []int{vid(i, j+1), vid(i+1, j+1)}},
			}
			o.Cells[j*nx+i] = cell
		}
	}
	return
}

// StripNodes removes vertex data from the grid, leaving face areas and
// normals only. Useful to exercise the face-area bounding-box mode on grids
// built with NewHexGrid.
func (o *Grid) StripNodes() {
	o.Verts = nil
	for _, cell := range o.Cells {
		for _, f := range cell.Faces {
			f.Verts = nil
		}
	}
}
