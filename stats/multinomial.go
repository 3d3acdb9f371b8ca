// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// MultinomialDist is a multinomial distribution: the counts of each
// category after N independent draws from a categorical
// distribution.
type MultinomialDist struct {
	// N is the number of independent draws. N >= 0.
	N int

	// P[i] is the probability of category i. The elements of P
	// must be non-negative. They are normalized by their sum, so
	// they need not sum exactly to 1.
	P []float64
}

// Rand draws one vector of category counts from d using src. The
// counts sum to d.N and categories with zero probability always
// get a count of zero.
//
// Counts are drawn by the conditional binomial method: category i
// receives Binomial(remaining draws, P[i] / remaining mass), and the
// last category with non-zero probability takes whatever is left.
func (d MultinomialDist) Rand(src rand.Source) []int {
	total := floats.Sum(d.P)
	if !(total > 0) {
		panic("MultinomialDist: probabilities sum to zero")
	}
	last := -1
	for i, p := range d.P {
		if p < 0 {
			panic("MultinomialDist: negative probability")
		}
		if p > 0 {
			last = i
		}
	}

	counts := make([]int, len(d.P))
	left, mass := d.N, total
	for i, p := range d.P {
		if left == 0 || p == 0 {
			continue
		}
		if i == last {
			counts[i] = left
			break
		}
		q := p / mass
		var c int
		if q >= 1 {
			c = left
		} else {
			c = int(distuv.Binomial{N: float64(left), P: q, Src: src}.Rand())
		}
		counts[i] = c
		left -= c
		mass -= p
	}
	return counts
}

// Mean returns the expected count of each category.
func (d MultinomialDist) Mean() []float64 {
	total := floats.Sum(d.P)
	res := make([]float64, len(d.P))
	for i, p := range d.P {
		res[i] = float64(d.N) * p / total
	}
	return res
}

// Variance returns the variance of the count of each category.
func (d MultinomialDist) Variance() []float64 {
	total := floats.Sum(d.P)
	res := make([]float64, len(d.P))
	for i, p := range d.P {
		q := p / total
		res[i] = float64(d.N) * q * (1 - q)
	}
	return res
}
