// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

// A Dist2 is a continuous bivariate statistical distribution.
type Dist2 interface {
	// PDF returns the value of the joint probability density
	// function of this distribution at (x, y).
	PDF(x, y float64) float64

	// Bounds returns the bounding box of the data this
	// distribution was constructed from, as the low and high
	// corners (x, y).
	Bounds() (low, high [2]float64)
}

