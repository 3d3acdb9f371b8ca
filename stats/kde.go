// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distmv"
)

// KDE2 represents options for constructing a bivariate kernel
// density estimate.
//
// Kernel density estimation is a method for constructing an estimate
// ƒ̂(x, y) of an unknown distribution ƒ(x, y) given a sample from that
// distribution. The estimate is the average of Gaussian kernels
// centered at each sample point. The kernels share a covariance
// matrix equal to the sample's own covariance scaled by the square
// of a bandwidth factor h, so the factor is unitless and the kernel
// follows the correlation structure of the data.
//
// The default (zero) value of KDE2 is a reasonable default
// configuration.
type KDE2 struct {
	// Bandwidth is the bandwidth factor estimator to use for
	// the KDE.
	//
	// If this is nil, the default estimator is used (currently
	// Scott).
	Bandwidth BandwidthEstimator

	// Strict disables the fallbacks for degenerate samples.
	//
	// By default, an axis along which every sample has the same
	// value is given unit reference variance, and if the
	// covariance of the sample is singular its correlation term
	// is dropped. If Strict is set, FromSample instead returns
	// ErrSamplesEqual or ErrSingular.
	Strict bool
}

// BandwidthEstimator computes the bandwidth factor of a KDE2.
type BandwidthEstimator interface {
	// Bandwidth returns the bandwidth factor for a sample.
	Bandwidth(s Sample2) float64
}

// Scott is a bandwidth estimator implementing Scott's Rule for d
// dimensions, n^(-1/(d+4)), where n is the sample weight.
//
// Scott, D. W. (1992) Multivariate Density Estimation: Theory,
// Practice, and Visualization.
var Scott scott

type scott struct{}

func (scott) Bandwidth(s Sample2) float64 {
	return math.Pow(s.Weight(), -1.0/6)
}

// Silverman is a bandwidth estimator implementing Silverman's Rule of
// Thumb for d dimensions, (n(d+2)/4)^(-1/(d+4)). In two dimensions
// this coincides with Scott's Rule.
//
// Silverman, B. W. (1986) Density Estimation.
var Silverman silverman

type silverman struct{}

func (silverman) Bandwidth(s Sample2) float64 {
	const d = 2
	return math.Pow(s.Weight()*(d+2)/4, -1.0/(d+4))
}

// FixedBandwidth is a bandwidth estimator that simply returns its
// value.
type FixedBandwidth float64

func (bw FixedBandwidth) Bandwidth(s Sample2) float64 {
	return float64(bw)
}

// FromSample returns the probability density function of the kernel
// density estimate for s.
func (k KDE2) FromSample(s Sample2) (Dist2, error) {
	s.check()
	if len(s.Xs) == 0 || !(s.Weight() > 0) {
		return nil, ErrNoWeight
	}

	// Compute bandwidth
	bw := k.Bandwidth
	if bw == nil {
		bw = Scott
	}
	h := bw.Bandwidth(s)
	if !(h > 0) || math.IsInf(h, 0) {
		panic(fmt.Sprint("bad bandwidth ", h))
	}

	// Reference covariance, with unit variance along collapsed axes
	low, high := s.Bounds()
	cov := s.Cov()
	for i := 0; i < 2; i++ {
		if low[i] != high[i] {
			continue
		}
		if k.Strict {
			return nil, ErrSamplesEqual
		}
		cov.SetSym(i, i, 1)
		cov.SetSym(0, 1, 0)
	}

	c00, c11, c01 := cov.At(0, 0), cov.At(1, 1), cov.At(0, 1)
	if c00*c11-c01*c01 <= singularTol*c00*c11 {
		if k.Strict {
			return nil, ErrSingular
		}
		// Points lie on a line. Smooth each axis separately.
		cov.SetSym(0, 1, 0)
	}

	var kcov mat.SymDense
	kcov.ScaleSym(h*h, cov)
	kernel, ok := distmv.NewNormal([]float64{0, 0}, &kcov, nil)
	if !ok {
		return nil, ErrSingular
	}

	return &kdeDist2{
		kernel:  kernel,
		h:       h,
		xs:      s.Xs,
		ys:      s.Ys,
		weights: s.Weights,
		total:   s.Weight(),
		low:     low,
		high:    high,
	}, nil
}

// singularTol is the smallest determinant of the covariance matrix,
// relative to the product of its variances, that is treated as
// non-singular.
const singularTol = 1e-10

type kdeDist2 struct {
	kernel    *distmv.Normal
	h         float64
	xs, ys    []float64
	weights   []float64
	total     float64
	low, high [2]float64 // Sample bounds
}

// PDF shifts the kernel to each sample point and averages the
// kernel densities at (x, y), weighted by the sample weights.
func (kde *kdeDist2) PDF(x, y float64) float64 {
	d := make([]float64, 2)
	sum := 0.0
	for i := range kde.xs {
		w := 1.0
		if kde.weights != nil {
			w = kde.weights[i]
			if w == 0 {
				continue
			}
		}
		d[0], d[1] = x-kde.xs[i], y-kde.ys[i]
		sum += w * kde.kernel.Prob(d)
	}
	return sum / kde.total
}

func (kde *kdeDist2) Bounds() (low, high [2]float64) {
	return kde.low, kde.high
}

// kernelCov returns the kernel covariance matrix.
func (kde *kdeDist2) kernelCov() *mat.SymDense {
	var c mat.SymDense
	kde.kernel.CovarianceMatrix(&c)
	return &c
}
