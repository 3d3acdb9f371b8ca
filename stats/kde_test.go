// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"errors"
	"math"
	"testing"
)

func TestOneSample(t *testing.T) {
	// A single point collapses both axes, so the kernel is a
	// standard bivariate normal scaled by the bandwidth.
	kde, err := KDE2{Bandwidth: FixedBandwidth(1)}.FromSample(Sample2{Xs: []float64{5}, Ys: []float64{2}})
	if err != nil {
		t.Fatal(err)
	}
	if e, g := 1/(2*math.Pi), kde.PDF(5, 2); !aeq(e, g) {
		t.Errorf("bad PDF value at sample: expected %g, got %g", e, g)
	}
	if e, g := math.Exp(-0.5)/(2*math.Pi), kde.PDF(6, 2); !aeq(e, g) {
		t.Errorf("bad PDF value one unit away: expected %g, got %g", e, g)
	}
	if e, g := 0.0, kde.PDF(-10000, 2); !aeq(e, g) {
		t.Errorf("bad PDF value at low tail: expected %g, got %g", e, g)
	}
	if e, g := 0.0, kde.PDF(5, 10000); !aeq(e, g) {
		t.Errorf("bad PDF value at high tail: expected %g, got %g", e, g)
	}
	low, high := kde.Bounds()
	if low != [2]float64{5, 2} || high != [2]float64{5, 2} {
		t.Errorf("bad bounds: expected [5 2]-[5 2], got %v-%v", low, high)
	}

	_, err = KDE2{Bandwidth: FixedBandwidth(1), Strict: true}.FromSample(Sample2{Xs: []float64{5}, Ys: []float64{2}})
	if !errors.Is(err, ErrSamplesEqual) {
		t.Errorf("strict: expected ErrSamplesEqual, got %v", err)
	}
}

func TestThreeSamples(t *testing.T) {
	// Σ = [[4/3, -2/3], [-2/3, 4/3]], det Σ = 4/3,
	// Σ⁻¹ = [[1, 1/2], [1/2, 1]].
	s := Sample2{Xs: []float64{0, 2, 0}, Ys: []float64{0, 0, 2}}
	norm := 1 / (2 * math.Pi * math.Sqrt(4.0/3))

	kde, err := KDE2{Bandwidth: FixedBandwidth(1)}.FromSample(s)
	if err != nil {
		t.Fatal(err)
	}
	testFunc2(t, "PDF", kde.PDF, map[[2]float64]float64{
		{0, 0}: norm * (1 + 2*math.Exp(-2)) / 3,
		{1, 1}: norm * (math.Exp(-1.5) + 2*math.Exp(-0.5)) / 3,
	})

	// Doubling the bandwidth quadruples the kernel covariance.
	kde, err = KDE2{Bandwidth: FixedBandwidth(2)}.FromSample(s)
	if err != nil {
		t.Fatal(err)
	}
	testFunc2(t, "PDF", kde.PDF, map[[2]float64]float64{
		{0, 0}: norm / 4 * (1 + 2*math.Exp(-0.5)) / 3,
	})
	kc := kde.(*kdeDist2).kernelCov()
	if !aeq(16.0/3, kc.At(0, 0)) || !aeq(-8.0/3, kc.At(0, 1)) {
		t.Errorf("bad kernel covariance: %v", kc)
	}
}

func TestWeightedMatchesExpanded(t *testing.T) {
	w := Sample2{
		Xs:      []float64{18, 19, 19, 20, 21},
		Ys:      []float64{1, 1, 2, 2, 3},
		Weights: []float64{5, 2, 7, 3, 1},
	}
	kw, err := KDE2{Bandwidth: FixedBandwidth(0.5)}.FromSample(w)
	if err != nil {
		t.Fatal(err)
	}
	ke, err := KDE2{Bandwidth: FixedBandwidth(0.5)}.FromSample(w.Expand())
	if err != nil {
		t.Fatal(err)
	}
	for _, x := range Linspace(18, 21, 7) {
		for _, y := range Linspace(1, 3, 5) {
			if e, g := ke.PDF(x, y), kw.PDF(x, y); !aeq(e, g) {
				t.Errorf("PDF(%v, %v): expanded %g, weighted %g", x, y, e, g)
			}
		}
	}
}

func TestCollinearSamples(t *testing.T) {
	s := Sample2{Xs: []float64{1, 3}, Ys: []float64{1, 3}}
	kde, err := KDE2{Bandwidth: FixedBandwidth(1)}.FromSample(s)
	if err != nil {
		t.Fatal(err)
	}
	// Correlation is dropped: each axis has variance 2.
	if e, g := math.Exp(-0.5)/(4*math.Pi), kde.PDF(2, 2); !aeq(e, g) {
		t.Errorf("bad PDF value at midpoint: expected %g, got %g", e, g)
	}

	_, err = KDE2{Bandwidth: FixedBandwidth(1), Strict: true}.FromSample(s)
	if !errors.Is(err, ErrSingular) {
		t.Errorf("strict: expected ErrSingular, got %v", err)
	}
}

func TestNoWeight(t *testing.T) {
	if _, err := (KDE2{}).FromSample(Sample2{}); !errors.Is(err, ErrNoWeight) {
		t.Errorf("empty sample: expected ErrNoWeight, got %v", err)
	}
	s := Sample2{Xs: []float64{1, 2}, Ys: []float64{1, 2}, Weights: []float64{0, 0}}
	if _, err := (KDE2{}).FromSample(s); !errors.Is(err, ErrNoWeight) {
		t.Errorf("zero weights: expected ErrNoWeight, got %v", err)
	}
}

func TestBandwidthEstimators(t *testing.T) {
	s := Sample2{Xs: []float64{1, 2}, Ys: []float64{3, 5}, Weights: []float64{60, 4}}
	if e, g := 0.5, Scott.Bandwidth(s); !aeq(e, g) {
		t.Errorf("Scott: expected %g, got %g", e, g)
	}
	if e, g := 0.5, Silverman.Bandwidth(s); !aeq(e, g) {
		t.Errorf("Silverman: expected %g, got %g", e, g)
	}
	if e, g := 0.25, FixedBandwidth(0.25).Bandwidth(s); e != g {
		t.Errorf("FixedBandwidth: expected %g, got %g", e, g)
	}
}
