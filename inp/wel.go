// Copyright 2026 The Gowell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.wel) JSON file: grid
// description, rock permeability table, and well completion data
package inp

import (
	"encoding/json"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gowell/grid"
	"github.com/cpmech/gowell/rock"
	"github.com/cpmech/gowell/well"
)

// FracDat holds input data for one embedded fracture sub-grid
type FracDat struct {
	Id        int         `json:"id"`        // fracture-grid id
	FirstCell int         `json:"firstcell"` // first global cell id
	LastCell  int         `json:"lastcell"`  // last global cell id (inclusive)
	Centroids [][]float64 `json:"centroids"` // fracture cell centroids
	Perm      []float64   `json:"perm"`      // fracture permeability per cell
	Aperture  float64     `json:"aperture"`  // fracture aperture
	Height    float64     `json:"height"`    // fracture height
}

// GridDat holds input data for a Cartesian grid plus optional fracture
// sub-grids
type GridDat struct {
	Ndim  int        `json:"ndim"`  // space dimension: 2 or 3
	Nx    int        `json:"nx"`    // number of cells along x
	Ny    int        `json:"ny"`    // number of cells along y
	Nz    int        `json:"nz"`    // number of cells along z (3D only)
	Lx    float64    `json:"lx"`    // domain length along x
	Ly    float64    `json:"ly"`    // domain length along y
	Lz    float64    `json:"lz"`    // domain length along z (3D only)
	Fracs []*FracDat `json:"fracs"` // fracture sub-grids
}

// RockDat holds the input permeability table
type RockDat struct {
	Kvals [][]float64 `json:"kvals"` // per-cell permeability rows: 1, 2, 3 or 6 columns
}

// WellDat holds input data for one well
type WellDat struct {
	Name   string    `json:"name"`   // well name
	Cells  []int     `json:"cells"`  // perforated cell ids
	Radius []float64 `json:"radius"` // wellbore radius; scalar broadcasts
	Skin   []float64 `json:"skin"`   // skin factor; scalar broadcasts
	Dir    []string  `json:"dir"`    // direction codes; scalar broadcasts
}

// Input holds all data read from a .wel file
type Input struct {

	// essential
	Desc  string     `json:"desc"`  // description of the case
	Grid  GridDat    `json:"grid"`  // grid data
	Rock  RockDat    `json:"rock"`  // rock data
	Wells []*WellDat `json:"wells"` // well data

	// options
	Scheme   string    `json:"scheme"`   // inner-product scheme; e.g. "tpf"
	Gravity  []float64 `json:"gravity"`  // gravity direction vector
	RefDepth *float64  `json:"refdepth"` // reference depth; nil = default

	// derived
	Fnamepath string // filename path of the input file
}

// Read reads a .wel input file
func Read(fnamepath string) (o *Input, err error) {
	b, err := io.ReadFile(fnamepath)
	if err != nil {
		return nil, chk.Err("cannot read input file %q:\n%v", fnamepath, err)
	}
	o = new(Input)
	if err = json.Unmarshal(b, o); err != nil {
		return nil, chk.Err("cannot parse input file %q:\n%v", fnamepath, err)
	}
	o.Fnamepath = fnamepath
	if o.Scheme == "" {
		o.Scheme = "tpf"
	}
	if o.Grid.Ndim != 2 && o.Grid.Ndim != 3 {
		return nil, chk.Err("input file %q: grid ndim must be 2 or 3; got %d", filepath.Base(fnamepath), o.Grid.Ndim)
	}
	if len(o.Wells) == 0 {
		return nil, chk.Err("input file %q has no wells", filepath.Base(fnamepath))
	}
	return
}

// GetGrid materializes the grid descriptor
func (o *Input) GetGrid() (g *grid.Grid, err error) {
	if o.Grid.Ndim == 2 {
		g = grid.NewQuadGrid(o.Grid.Nx, o.Grid.Ny, o.Grid.Lx, o.Grid.Ly)
	} else {
		g = grid.NewHexGrid(o.Grid.Nx, o.Grid.Ny, o.Grid.Nz, o.Grid.Lx, o.Grid.Ly, o.Grid.Lz)
	}
	if len(o.Grid.Fracs) > 0 {
		g.Fracs = make(map[int]*grid.FracGrid)
		for _, f := range o.Grid.Fracs {
			if len(f.Centroids) != f.LastCell-f.FirstCell+1 {
				return nil, chk.Err("fracture sub-grid %d: %d centroids given for cell range [%d,%d]", f.Id, len(f.Centroids), f.FirstCell, f.LastCell)
			}
			if len(f.Perm) != len(f.Centroids) {
				return nil, chk.Err("fracture sub-grid %d: permeability and centroid counts differ", f.Id)
			}
			g.Fracs[f.Id] = &grid.FracGrid{
				FirstCell: f.FirstCell,
				LastCell:  f.LastCell,
				Centroids: f.Centroids,
				Perm:      f.Perm,
				Aperture:  f.Aperture,
				Height:    f.Height,
			}
		}
	}
	return
}

// GetRock materializes the rock descriptor
func (o *Input) GetRock() (*rock.Rock, error) {
	return rock.New(o.Rock.Kvals, o.Grid.Ndim)
}

// GetWells materializes the well records
func (o *Input) GetWells() (wells []*well.Well, err error) {
	wells = make([]*well.Well, len(o.Wells))
	for i, w := range o.Wells {
		dirs := make([]well.Dir, len(w.Dir))
		for j, code := range w.Dir {
			if dirs[j], err = well.ParseDir(code); err != nil {
				return nil, err
			}
		}
		wells[i] = &well.Well{
			Name:   w.Name,
			Cells:  w.Cells,
			Radius: w.Radius,
			Skin:   w.Skin,
			Dirs:   dirs,
		}
	}
	return
}

// GetOpts materializes the computation options
func (o *Input) GetOpts() (opt *well.Opts) {
	opt = well.DefaultOpts()
	opt.Scheme = o.Scheme
	opt.Gravity = o.Gravity
	if o.RefDepth != nil {
		opt.RefDepth = *o.RefDepth
		opt.HaveRefDepth = true
	}
	return
}
