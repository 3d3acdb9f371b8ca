// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bequest

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"github.com/ogusa/bequestkde/stats"
)

// PointCloud is a synthetic population of (age, income) pairs drawn
// from the marginals of a proportion matrix.
type PointCloud struct {
	// AgeCounts[i] and IncomeCounts[j] are the number of draws
	// that landed in age category i and income group j. Both sum
	// to N.
	AgeCounts, IncomeCounts []int

	// FirstAge and FirstIncome are the values of the first age
	// category and the first income group.
	FirstAge, FirstIncome int

	// Sample holds the distinct pairs of the cloud, weighted by
	// how many times each occurs.
	Sample stats.Sample2
}

// Resample draws n values from each marginal of m, age first and
// then income, and pairs the two expanded samples by position.
func Resample(m Marginals, n, firstAge, firstIncome int, src rand.Source) PointCloud {
	pc := PointCloud{
		AgeCounts:    stats.MultinomialDist{N: n, P: m.Age}.Rand(src),
		IncomeCounts: stats.MultinomialDist{N: n, P: m.Income}.Rand(src),
		FirstAge:     firstAge,
		FirstIncome:  firstIncome,
	}
	pc.Sample = pair(pc.AgeCounts, pc.IncomeCounts, firstAge, firstIncome)
	return pc
}

// pair zips the sorted expansions of two count vectors with equal
// totals without materializing them. Each run of identical pairs
// becomes one weighted point, so there are at most
// len(ages)+len(incomes)-1 points.
func pair(ages, incomes []int, firstAge, firstIncome int) stats.Sample2 {
	var s stats.Sample2
	i, j := 0, 0
	ra, rb := 0, 0
	for {
		for ra == 0 && i < len(ages) {
			ra = ages[i]
			i++
		}
		for rb == 0 && j < len(incomes) {
			rb = incomes[j]
			j++
		}
		if ra == 0 || rb == 0 {
			break
		}
		k := min(ra, rb)
		s.Xs = append(s.Xs, float64(firstAge+i-1))
		s.Ys = append(s.Ys, float64(firstIncome+j-1))
		s.Weights = append(s.Weights, float64(k))
		ra -= k
		rb -= k
	}
	return s
}

// N returns the number of points in the cloud.
func (pc PointCloud) N() int {
	n := 0
	for _, c := range pc.AgeCounts {
		n += c
	}
	return n
}

// Expand returns the cloud as an explicit N×2 matrix of (age, income)
// rows, in the order they were paired. It returns nil for an empty
// cloud.
func (pc PointCloud) Expand() *mat.Dense {
	e := pc.Sample.Expand()
	if len(e.Xs) == 0 {
		return nil
	}
	pts := mat.NewDense(len(e.Xs), 2, nil)
	pts.SetCol(0, e.Xs)
	pts.SetCol(1, e.Ys)
	return pts
}
