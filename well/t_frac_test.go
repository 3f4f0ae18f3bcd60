// Copyright 2026 The Gowell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package well

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gowell/grid"
	"github.com/cpmech/gowell/rock"
)

// edfmGrid builds a 2D host grid with 2 matrix cells and one embedded
// fracture sub-grid holding 2 cells (global ids 2 and 3) whose centroids
// are 5 apart
func edfmGrid() *grid.Grid {
	g := grid.NewQuadGrid(2, 1, 10, 5)
	g.Fracs = map[int]*grid.FracGrid{
		1: {
			FirstCell: 2,
			LastCell:  3,
			Centroids: [][]float64{{2.5, 2.5}, {7.5, 2.5}},
			Perm:      []float64{50, 50},
			Aperture:  0.01,
			Height:    2,
		},
	}
	return g
}

func Test_frac01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("frac01. Moinfar line-source well index")

	g := edfmGrid()
	wi, err := FracWI(g, []float64{0.1}, []int{2}, []float64{0})
	if err != nil {
		tst.Errorf("FracWI failed: %v\n", err)
		return
	}

	// lf=5, hf=2: re = 0.14·sqrt(29) ~ 0.754
	re := 0.14 * math.Sqrt(29.0)
	correct := 2.0 * math.Pi * 50.0 * 0.01 / math.Log(re/0.1)
	chk.Float64(tst, "WI", 1e-14, wi[0], correct)
}

func Test_frac02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("frac02. 3D host grids are not supported")

	g := grid.NewHexGrid(2, 1, 1, 10, 5, 5)
	g.Fracs = map[int]*grid.FracGrid{
		1: {
			FirstCell: 2,
			LastCell:  3,
			Centroids: [][]float64{{2.5, 2.5, 2.5}, {7.5, 2.5, 2.5}},
			Perm:      []float64{50, 50},
			Aperture:  0.01,
			Height:    2,
		},
	}
	_, err := FracWI(g, []float64{0.1}, []int{2}, []float64{0})
	if err == nil {
		tst.Errorf("FracWI should have failed for a 3D host grid\n")
		return
	}
	chk.Int(tst, "kind", int(err.(*Error).Kind), int(GeometryError))
}

func Test_frac03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("frac03. fracture positivity contract")

	g := edfmGrid()

	// rw larger than re ~ 0.754
	_, err := FracWI(g, []float64{1.0}, []int{2}, []float64{0})
	if err == nil {
		tst.Errorf("FracWI should have failed for rw=1\n")
		return
	}
	chk.Int(tst, "kind (radius)", int(err.(*Error).Kind), int(WellRadiusError))

	// large negative skin
	_, err = FracWI(g, []float64{0.1}, []int{2}, []float64{-10})
	if err == nil {
		tst.Errorf("FracWI should have failed for skin=-10\n")
		return
	}
	chk.Int(tst, "kind (skin)", int(err.(*Error).Kind), int(SkinError))
}

func Test_rr01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("rr01. representative radius, matrix cells")

	g := grid.NewQuadGrid(2, 1, 10, 5)
	rr, err := RepRadius(g, []float64{0.1, 0.1}, []Dir{DirZ, DirZ}, []int{0, 1}, false)
	if err != nil {
		tst.Errorf("RepRadius failed: %v\n", err)
		return
	}

	// 2D cell: dx=5, dy=1; direction z: re = sqrt(5·1/pi)
	re := math.Sqrt(5.0 / math.Pi)
	correct := math.Sqrt(re * 0.1)
	chk.Array(tst, "rR", 1e-14, rr, []float64{correct, correct})
}

func Test_rr02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("rr02. representative radius dispatch on fractured grids")

	g := edfmGrid()
	reF := 0.14 * math.Sqrt(29.0)
	rrF := math.Sqrt(reF * 0.1)

	// uniform fracture form over fracture perforations
	rr, err := RepRadius(g, []float64{0.1, 0.1}, []Dir{DirZ, DirZ}, []int{2, 3}, false)
	if err != nil {
		tst.Errorf("RepRadius failed: %v\n", err)
		return
	}
	chk.Array(tst, "rR (uniform)", 1e-14, rr, []float64{rrF, rrF})

	// the uniform form cannot serve matrix perforations
	_, err = RepRadius(g, []float64{0.1, 0.1}, []Dir{DirZ, DirZ}, []int{0, 2}, false)
	if err == nil {
		tst.Errorf("RepRadius should have failed for a matrix perforation\n")
		return
	}

	// per-perforation dispatch mixes both closed forms
	rr, err = RepRadius(g, []float64{0.1, 0.1}, []Dir{DirY, DirZ}, []int{0, 2}, true)
	if err != nil {
		tst.Errorf("RepRadius failed: %v\n", err)
		return
	}

	// 2D cell: dx=5, dz=5; direction y: re = sqrt(5·5/pi)
	reM := math.Sqrt(25.0 / math.Pi)
	chk.Float64(tst, "rR (matrix)", 1e-14, rr[0], math.Sqrt(reM*0.1))
	chk.Float64(tst, "rR (frac)", 1e-14, rr[1], rrF)
}

func Test_edfm01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("edfm01. well record over a mixed matrix/fracture completion")

	g := edfmGrid()
	rk, err := rock.New([][]float64{{100, 100}, {100, 100}}, 2)
	if err != nil {
		tst.Errorf("rock.New failed: %v\n", err)
		return
	}

	w := &Well{
		Name:   "EDFM1",
		Cells:  []int{0, 2},
		Radius: []float64{0.1},
		Skin:   []float64{0},
		Dirs:   []Dir{DirY},
	}
	opt := DefaultOpts()
	opt.PerPerf = true
	if err = w.Compute(g, rk, opt); err != nil {
		tst.Errorf("Compute failed: %v\n", err)
		return
	}

	// matrix perforation: 2D, dir y: d1=dx=5, d2=dz=5, ell=dy=1,
	// k1=kx=100, k2=harmonic(100,100)=50, Kh=ke (no thickness factor)
	k2 := rock.Harmonic(100, 100)
	re := 2.0 * 0.14 * math.Sqrt(25.0*math.Sqrt(k2/100.0)+25.0*math.Sqrt(100.0/k2)) /
		(math.Pow(k2/100.0, 0.25) + math.Pow(100.0/k2, 0.25))
	ke := math.Sqrt(100.0 * k2)
	chk.Float64(tst, "WI (matrix)", 1e-12, w.WI[0], 2.0*math.Pi*ke/math.Log(re/0.1))

	// fracture perforation
	reF := 0.14 * math.Sqrt(29.0)
	chk.Float64(tst, "WI (frac)", 1e-12, w.WI[1], 2.0*math.Pi*50.0*0.01/math.Log(reF/0.1))

	// auxiliary outputs are aligned with the perforation sequence
	chk.Int(tst, "len(rR)", len(w.RepRadius), 2)
	chk.Int(tst, "len(dz)", len(w.Dz), 2)
}
