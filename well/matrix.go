// Copyright 2026 The Gowell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package well implements well-index (WI) computations for reservoir grids:
// the classical Peaceman-type formula for matrix cells, the Moinfar-type
// line-source formula for wells perforating embedded fracture cells (EDFM),
// representative radii for shear-dependent flow models, and vertical depth
// offsets for hydrostatic corrections.
package well

import (
	"math"
	"strings"

	"github.com/cpmech/gowell/grid"
	"github.com/cpmech/gowell/rock"
)

// Dir is a principal well direction
type Dir int

// principal well directions
const (
	DirX Dir = iota
	DirY
	DirZ
)

// String returns the direction code
func (o Dir) String() string {
	return [...]string{"x", "y", "z"}[o]
}

// ParseDir converts a direction code (x, y or z, case-insensitive) into a
// Dir value
func ParseDir(code string) (Dir, error) {
	switch strings.ToLower(code) {
	case "x":
		return DirX, nil
	case "y":
		return DirY, nil
	case "z":
		return DirZ, nil
	}
	return 0, newErr(ConfigError, -1, "direction code %q is not one of x, y, z", code)
}

// Broadcast expands a scalar sequence to n entries, or verifies that an
// n-entry sequence was given. Empty input uses def for every entry.
func Broadcast(vals []float64, n int, def float64, label string) ([]float64, error) {
	switch len(vals) {
	case n:
		return vals, nil
	case 0:
		vals = make([]float64, n)
		for i := 0; i < n; i++ {
			vals[i] = def
		}
		return vals, nil
	case 1:
		out := make([]float64, n)
		for i := 0; i < n; i++ {
			out[i] = vals[0]
		}
		return out, nil
	}
	return nil, newErr(ShapeError, -1, "%s has %d entries but there are %d perforations", label, len(vals), n)
}

// BroadcastDirs expands a scalar direction to n entries or verifies the
// length of a per-perforation sequence. Empty input defaults to z.
func BroadcastDirs(dirs []Dir, n int) ([]Dir, error) {
	switch len(dirs) {
	case n:
		return dirs, nil
	case 0:
		dirs = []Dir{DirZ}
		fallthrough
	case 1:
		out := make([]Dir, n)
		for i := 0; i < n; i++ {
			out[i] = dirs[0]
		}
		return out, nil
	}
	return nil, newErr(ShapeError, -1, "direction has %d entries but there are %d perforations", len(dirs), n)
}

// crossSection selects, for a well running along dir through a cell of
// extents d=(dx,dy,dz) and diagonal permeability k=(kx,ky,kz), the two
// cross-sectional extents (d1,d2), the along-well extent ell, and the two
// cross-sectional permeabilities (k1,k2)
func crossSection(dir Dir, d, k [3]float64) (d1, d2, ell, k1, k2 float64) {
	switch dir {
	case DirX:
		return d[1], d[2], d[0], k[1], k[2]
	case DirY:
		return d[0], d[2], d[1], k[0], k[2]
	}
	return d[0], d[1], d[2], k[0], k[1]
}

// MatrixWI computes the Peaceman-type well index of each matrix-cell
// perforation. The radius, skin and kh sequences must already have one entry
// per perforation (see Broadcast); a negative kh entry means "compute the
// permeability-thickness from cell geometry".
//
// Per perforation:
//
//	re = 2C·sqrt(d1²·sqrt(k2/k1) + d2²·sqrt(k1/k2)) / ((k2/k1)^¼ + (k1/k2)^¼)
//	ke = sqrt(k1·k2)
//	Kh = ell·ke (3D) or ke (2D), unless overridden
//	WI = 2π·Kh / (ln(re/rw) + skin)
//
// A non-positive WI is never returned: it is classified as a
// WellRadiusError (re < rw) or a SkinError and reported with the offending
// perforation index.
func MatrixWI(g *grid.Grid, rk *rock.Rock, radius []float64, dirs []Dir, cells []int, scheme string, skin, kh []float64) (wi []float64, err error) {

	// shape checks
	n := len(cells)
	if len(radius) != n || len(dirs) != n || len(skin) != n || len(kh) != n {
		return nil, newErr(ShapeError, -1, "radius/direction/skin/kh sequences must have %d entries", n)
	}

	// cell geometry and canonical diagonal permeability
	dx, dy, dz, err := g.Bbox(g.DefaultBboxMode(), cells)
	if err != nil {
		return nil, wrapErr(GeometryError, err)
	}
	kd, err := rk.Diag(cells, g.Ndim)
	if err != nil {
		return nil, wrapErr(DataError, err)
	}

	wi = make([]float64, n)
	for i := range cells {

		// per-cell extents and permeabilities
		d := [3]float64{dx[i], dy[i], dz[i]}
		var k [3]float64
		if g.Ndim == 2 {
			k = [3]float64{kd[i][0], kd[i][1], rock.Harmonic(kd[i][0], kd[i][1])}
		} else {
			k = [3]float64{kd[i][0], kd[i][1], kd[i][2]}
		}
		d1, d2, ell, k1, k2 := crossSection(dirs[i], d, k)

		// equivalent drainage radius
		c, e := WellConstant(d1, d2, scheme)
		if e != nil {
			return nil, e
		}
		re := 2.0 * c * math.Sqrt(d1*d1*math.Sqrt(k2/k1)+d2*d2*math.Sqrt(k1/k2)) /
			(math.Pow(k2/k1, 0.25) + math.Pow(k1/k2, 0.25))

		// permeability-thickness
		ke := math.Sqrt(k1 * k2)
		khVal := kh[i]
		if khVal < 0 {
			if g.Ndim == 3 {
				khVal = ell * ke
			} else {
				khVal = ke
			}
		}

		// well index with positivity check
		wi[i] = 2.0 * math.Pi * khVal / (math.Log(re/radius[i]) + skin[i])
		if !(wi[i] > 0) {
			if re < radius[i] {
				return nil, newErr(WellRadiusError, i, "equivalent radius re=%g is smaller than the wellbore radius rw=%g in cell %d", re, radius[i], cells[i])
			}
			return nil, newErr(SkinError, i, "skin factor %g makes the well index non-positive in cell %d", skin[i], cells[i])
		}
	}
	return
}
