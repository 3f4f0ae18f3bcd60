// Copyright 2026 The Gowell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package rock implements immutable rock property storage with per-cell
// permeability given as a scalar, a diagonal tensor, or a full symmetric
// tensor, and the extraction of canonical diagonal forms used by well-index
// formulae
package rock

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/gonum/mat"
)

// Kind labels the permeability storage variant
type Kind int

const (
	// Isotropic means one scalar permeability per cell
	Isotropic Kind = iota + 1

	// Diagonal2D means (kx, ky) per cell
	Diagonal2D

	// Diagonal3D means (kx, ky, kz) per cell
	Diagonal3D

	// FullTensor means a full symmetric tensor per cell, given in
	// upper-triangular order (kxx, kxy, kxz, kyy, kyz, kzz)
	FullTensor
)

// Rock holds per-cell permeability. The storage variant is resolved once at
// construction from the number of columns of the input table; it is never
// re-inferred afterwards.
type Rock struct {
	Kind Kind            // storage variant
	K    [][]float64     // [ncells] rows with 1, 2 or 3 columns
	Ksym []*mat.SymDense // [ncells] full symmetric tensors (FullTensor only)
}

// New builds a Rock from a permeability table with a fixed number of
// columns: 1 (isotropic), 2 (diagonal 2D), 3 (diagonal 3D) or 6 (full
// symmetric tensor, upper-triangular order)
func New(kvals [][]float64, ndim int) (o *Rock, err error) {
	if len(kvals) < 1 {
		return nil, chk.Err("rock: permeability table is empty")
	}
	ncol := len(kvals[0])
	for i, row := range kvals {
		if len(row) != ncol {
			return nil, chk.Err("rock: permeability row %d has %d columns instead of %d", i, len(row), ncol)
		}
	}
	o = new(Rock)
	switch ncol {
	case 1:
		o.Kind = Isotropic
		o.K = kvals
	case 2:
		if ndim != 2 {
			return nil, chk.Err("rock: 2-column permeability requires a 2D grid")
		}
		o.Kind = Diagonal2D
		o.K = kvals
	case 3:
		o.Kind = Diagonal3D
		o.K = kvals
	case 6:
		o.Kind = FullTensor
		o.Ksym = make([]*mat.SymDense, len(kvals))
		for i, row := range kvals {
			o.Ksym[i] = mat.NewSymDense(3, []float64{
				row[0], row[1], row[2],
				row[1], row[3], row[4],
				row[2], row[4], row[5],
			})
		}
	default:
		return nil, chk.Err("rock: permeability tables must have 1, 2, 3 or 6 columns; got %d", ncol)
	}
	return
}

// Diag renders the permeability of the given cells to the canonical diagonal
// form: 3 columns (kx, ky, kz) for ndim=3 or 2 columns for ndim=2. Full
// tensors contribute their diagonal entries only; 3D-shaped storage used on
// a 2D grid keeps the 1st and 3rd diagonal ordinals.
func (o *Rock) Diag(cells []int, ndim int) (kd [][]float64, err error) {
	if o == nil || (len(o.K) == 0 && len(o.Ksym) == 0) {
		return nil, chk.Err("rock permeability data is missing")
	}
	kd = utl.Alloc(len(cells), ndim)
	for i, c := range cells {
		if err = o.diagCell(kd[i], c, ndim); err != nil {
			return nil, err
		}
	}
	return
}

func (o *Rock) diagCell(out []float64, c, ndim int) error {
	switch o.Kind {
	case Isotropic:
		for j := 0; j < ndim; j++ {
			out[j] = o.K[c][0]
		}
	case Diagonal2D:
		if ndim != 2 {
			return chk.Err("rock: 2D diagonal permeability cannot serve a %dD grid", ndim)
		}
		out[0], out[1] = o.K[c][0], o.K[c][1]
	case Diagonal3D:
		if ndim == 2 {
			out[0], out[1] = o.K[c][0], o.K[c][2]
			return nil
		}
		out[0], out[1], out[2] = o.K[c][0], o.K[c][1], o.K[c][2]
	case FullTensor:
		t := o.Ksym[c]
		if ndim == 2 {
			out[0], out[1] = t.At(0, 0), t.At(2, 2)
			return nil
		}
		out[0], out[1], out[2] = t.At(0, 0), t.At(1, 1), t.At(2, 2)
	default:
		return chk.Err("rock: unknown permeability kind %d", o.Kind)
	}
	return nil
}

// Harmonic returns the effective vertical permeability derived from two
// in-plane components on 2D grids: kz = 1/(1/kx + 1/ky)
func Harmonic(kx, ky float64) float64 {
	return 1.0 / (1.0/kx + 1.0/ky)
}
