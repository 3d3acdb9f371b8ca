// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Sample2 is a collection of possibly weighted (x, y) points.
//
// A weighted Sample2 is equivalent to the unweighted sample in which
// each point is repeated Weights[i] times, which is how large
// resampled point clouds with few distinct values are stored.
type Sample2 struct {
	// Xs and Ys are the coordinates of the points. They must have
	// the same length.
	Xs, Ys []float64

	// Weights[i] is the weight of point i. If Weights is nil,
	// all points have weight 1.
	Weights []float64
}

func (s Sample2) check() {
	if len(s.Xs) != len(s.Ys) {
		panic("len(xs) != len(ys)")
	}
	if s.Weights != nil && len(s.Xs) != len(s.Weights) {
		panic("len(xs) != len(weights)")
	}
}

// Weight returns the total weight of the points in the sample.
func (s Sample2) Weight() float64 {
	if s.Weights == nil {
		return float64(len(s.Xs))
	}
	return floats.Sum(s.Weights)
}

// Bounds returns the bounding box of the points with non-zero
// weight, as the low and high corners. If there are no such points,
// Bounds returns NaN corners.
func (s Sample2) Bounds() (low, high [2]float64) {
	s.check()
	low = [2]float64{inf, inf}
	high = [2]float64{-inf, -inf}
	for i := range s.Xs {
		if s.Weights != nil && s.Weights[i] == 0 {
			continue
		}
		x, y := s.Xs[i], s.Ys[i]
		if x < low[0] {
			low[0] = x
		}
		if x > high[0] {
			high[0] = x
		}
		if y < low[1] {
			low[1] = y
		}
		if y > high[1] {
			high[1] = y
		}
	}
	if low[0] > high[0] {
		return [2]float64{nan, nan}, [2]float64{nan, nan}
	}
	return low, high
}

// Mean returns the weighted mean of the sample.
func (s Sample2) Mean() [2]float64 {
	s.check()
	return [2]float64{stat.Mean(s.Xs, s.Weights), stat.Mean(s.Ys, s.Weights)}
}

// Cov returns the 2×2 covariance matrix of the sample.
//
// Weights are treated as frequencies, so the normalization is
// Weight()-1 and Cov agrees with the unbiased covariance of the
// expanded sample.
func (s Sample2) Cov() *mat.SymDense {
	s.check()
	data := mat.NewDense(len(s.Xs), 2, nil)
	data.SetCol(0, s.Xs)
	data.SetCol(1, s.Ys)
	var cov mat.SymDense
	stat.CovarianceMatrix(&cov, data, s.Weights)
	return &cov
}

// Expand returns the equivalent unweighted sample, repeating each
// point int(Weights[i]) times. Fractional weights are truncated.
func (s Sample2) Expand() Sample2 {
	s.check()
	if s.Weights == nil {
		return Sample2{Xs: append([]float64(nil), s.Xs...), Ys: append([]float64(nil), s.Ys...)}
	}
	var out Sample2
	for i, w := range s.Weights {
		for k := 0; k < int(w); k++ {
			out.Xs = append(out.Xs, s.Xs[i])
			out.Ys = append(out.Ys, s.Ys[i])
		}
	}
	return out
}
