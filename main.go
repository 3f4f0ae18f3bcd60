// Copyright 2026 The Gowell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gowell/inp"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "data/onewell", ".wel", true)
	verbose := io.ArgToBool(1, true)

	// message
	if verbose {
		io.PfWhite("\nGowell -- well indices for reservoir grids\n")
		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
		))
	}

	// input data
	dat, err := inp.Read(fnamepath)
	if err != nil {
		chk.Panic("cannot read input file:\n%v", err)
	}
	g, err := dat.GetGrid()
	if err != nil {
		chk.Panic("cannot build grid:\n%v", err)
	}
	rck, err := dat.GetRock()
	if err != nil {
		chk.Panic("cannot build rock:\n%v", err)
	}
	wells, err := dat.GetWells()
	if err != nil {
		chk.Panic("cannot build wells:\n%v", err)
	}
	opts := dat.GetOpts()

	// compute well indices
	for _, w := range wells {
		err = w.Compute(g, rck, opts)
		if err != nil {
			chk.Panic("well %q failed:\n%v", w.Name, err)
		}
		if verbose {
			io.PfYel("\nwell %q (%d perforations, scheme %q)\n", w.Name, len(w.Cells), opts.Scheme)
			io.Pf("%8s%16s%16s%16s\n", "cell", "WI", "repRadius", "dz")
			for i, c := range w.Cells {
				io.Pf("%8d%16.8f%16.8f%16.8f\n", c, w.WI[i], w.RepRadius[i], w.Dz[i])
			}
		}
	}
}
