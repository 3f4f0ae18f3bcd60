// Copyright 2026 The Gowell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package well

import (
	"math"
	"strings"
)

// wcRatios and wcConsts anchor the empirical geometric constant of the
// Peaceman formula as a function of the (rounded) in-plane aspect ratio of
// the cell, for mimetic-type inner products. Peaceman's isotropic value for
// a square cell is 0.14.
var (
	wcRatios = []float64{1, 2, 3, 4, 5, 8, 9, 16, 17, 32, 33, 64, 65}
	wcConsts = []float64{0.292, 0.278, 0.262, 0.252, 0.244, 0.231, 0.229, 0.220, 0.219, 0.213, 0.213, 0.210, 0.210}
)

// WellConstant returns the empirical geometric constant used by the
// Peaceman-type well-index formula, given the two cross-sectional extents of
// the cell and the inner-product scheme name. Two-point-flux-consistent
// schemes ("tpf", "quasi-tpf") always use 0.14; mimetic-type schemes
// ("mimetic", "simple", "quasi-rt") interpolate the anchor table on the
// aspect ratio max(d1/d2, d2/d1) rounded to the nearest integer, with linear
// extrapolation beyond the anchors.
func WellConstant(d1, d2 float64, scheme string) (float64, error) {
	switch strings.ToLower(scheme) {
	case "tpf", "quasi-tpf":
		return 0.14, nil
	case "mimetic", "simple", "quasi-rt":
		ratio := math.Round(math.Max(d1/d2, d2/d1))
		return interpExtrap(wcRatios, wcConsts, ratio), nil
	}
	return 0, newErr(ConfigError, -1, "unknown inner-product scheme %q", scheme)
}

// interpExtrap performs piecewise-linear interpolation of y(x) with linear
// extrapolation beyond both ends, using the slope of the nearest segment
func interpExtrap(xs, ys []float64, x float64) float64 {
	n := len(xs)
	j := n - 2 // segment index
	for i := 1; i < n; i++ {
		if x <= xs[i] {
			j = i - 1
			break
		}
	}
	t := (x - xs[j]) / (xs[j+1] - xs[j])
	return ys[j] + t*(ys[j+1]-ys[j])
}
