// Copyright 2026 The Gowell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package well

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_table01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("table01. well constants per inner-product scheme")

	// two-point-flux schemes: fixed constant
	c, err := WellConstant(10, 10, "tpf")
	if err != nil {
		tst.Errorf("WellConstant failed: %v\n", err)
		return
	}
	chk.Float64(tst, "C (tpf)", 1e-17, c, 0.14)
	c, _ = WellConstant(100, 1, "quasi-tpf")
	chk.Float64(tst, "C (quasi-tpf)", 1e-17, c, 0.14)

	// exact table hit at ratio 1
	c, err = WellConstant(10, 10, "quasi-rt")
	if err != nil {
		tst.Errorf("WellConstant failed: %v\n", err)
		return
	}
	chk.Float64(tst, "C (ratio=1)", 1e-17, c, 0.292)

	// interpolation between anchors: ratio 6 between 5 and 8
	c, _ = WellConstant(6, 1, "simple")
	chk.Float64(tst, "C (ratio=6)", 1e-15, c, 0.244+(0.231-0.244)/3.0)

	// rounding of the aspect ratio: 2.4 rounds to 2
	c, _ = WellConstant(2.4, 1, "mimetic")
	chk.Float64(tst, "C (ratio=2.4)", 1e-17, c, 0.278)

	// linear extrapolation beyond the last anchor, not clamping: the final
	// segment (64,0.210)-(65,0.210) is flat, so ratio 100 stays at 0.210
	c, _ = WellConstant(100, 1, "mimetic")
	chk.Float64(tst, "C (ratio=100)", 1e-15, c, 0.210)

	// unknown scheme
	_, err = WellConstant(1, 1, "two-point-ish")
	if err == nil {
		tst.Errorf("WellConstant should have failed for an unknown scheme\n")
		return
	}
	e, ok := err.(*Error)
	if !ok {
		tst.Errorf("error should carry a kind; got %v\n", err)
		return
	}
	chk.Int(tst, "kind", int(e.Kind), int(ConfigError))
}

func Test_table02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("table02. direction parsing")

	d, err := ParseDir("X")
	if err != nil {
		tst.Errorf("ParseDir failed: %v\n", err)
		return
	}
	chk.Int(tst, "dir x", int(d), int(DirX))
	d, _ = ParseDir("z")
	chk.Int(tst, "dir z", int(d), int(DirZ))

	_, err = ParseDir("w")
	if err == nil {
		tst.Errorf("ParseDir should have failed for code \"w\"\n")
		return
	}
	chk.Int(tst, "kind", int(err.(*Error).Kind), int(ConfigError))
}
