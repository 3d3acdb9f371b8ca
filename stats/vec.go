// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Linspace returns num values spaced evenly between lo and hi,
// inclusive. If num is 1, the result is just lo.
func Linspace(lo, hi float64, num int) []float64 {
	switch {
	case num <= 0:
		panic("Linspace: num must be positive")
	case num == 1:
		return []float64{lo}
	}
	return floats.Span(make([]float64, num), lo, hi)
}

// Grid evaluates d.PDF at every point of the grid xs × ys. Row i of
// the result corresponds to xs[i] and column j to ys[j].
func Grid(d Dist2, xs, ys []float64) *mat.Dense {
	g := mat.NewDense(len(xs), len(ys), nil)
	for i, x := range xs {
		for j, y := range ys {
			g.Set(i, j, d.PDF(x, y))
		}
	}
	return g
}
