// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// SummaryQuantiles are the quantiles reported by Summarize when none
// are requested.
var SummaryQuantiles = []float64{0, 0.01, 0.05, 0.25, 0.5, 0.75, 0.95, 0.99, 1}

// Summary describes a weighted one-dimensional distribution, such as
// a marginal of a probability matrix.
type Summary struct {
	// N is the number of values, including zero-weight values.
	N int

	// Weight is the total weight of the values.
	Weight float64

	// Mean and StdDev are the weighted population mean and
	// standard deviation.
	Mean, StdDev float64

	// Mode is the value with the greatest weight.
	Mode float64

	// Entropy is the entropy, in nats, of the normalized weights.
	Entropy float64

	// Ps and Quantiles are the requested quantile levels and the
	// empirical quantiles at those levels.
	Ps, Quantiles []float64
}

// Summarize computes a Summary of xs weighted by weights. xs must be
// sorted in increasing order. If weights is nil, all values have
// weight 1. If ps is nil, SummaryQuantiles is used.
func Summarize(xs, weights, ps []float64) Summary {
	if len(xs) == 0 {
		panic("Summarize: no values")
	}
	if weights != nil && len(xs) != len(weights) {
		panic("len(xs) != len(weights)")
	}
	if !sort.Float64sAreSorted(xs) {
		panic("Summarize: values are not sorted")
	}
	if ps == nil {
		ps = SummaryQuantiles
	}

	s := Summary{N: len(xs), Ps: ps}
	if weights == nil {
		s.Weight = float64(len(xs))
	} else {
		s.Weight = floats.Sum(weights)
	}
	s.Mean, s.StdDev = stat.PopMeanStdDev(xs, weights)
	s.Mode, _ = stat.Mode(xs, weights)

	p := make([]float64, len(xs))
	for i := range p {
		if weights == nil {
			p[i] = 1 / s.Weight
		} else {
			p[i] = weights[i] / s.Weight
		}
	}
	s.Entropy = stat.Entropy(p)

	s.Quantiles = make([]float64, len(ps))
	for i, q := range ps {
		s.Quantiles[i] = stat.Quantile(q, stat.Empirical, xs, weights)
	}
	return s
}
