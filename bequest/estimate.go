// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bequest

import (
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"github.com/ogusa/bequestkde/internal/surface"
	"github.com/ogusa/bequestkde/stats"
)

const (
	// DefaultSampleSize is the number of draws taken from each
	// marginal.
	DefaultSampleSize = 70000

	// DefaultBandwidth is the bandwidth factor used when none is
	// given.
	DefaultBandwidth = 0.25

	// CalibrationBandwidth is the bandwidth factor of the
	// production calibration run.
	CalibrationBandwidth = 0.5

	// DefaultFirstAge is the age of the first age category.
	DefaultFirstAge = 18

	// DefaultFirstIncome is the label of the first income group.
	DefaultFirstIncome = 1
)

// GridSpan selects the coordinates the density is evaluated at.
type GridSpan int

const (
	// SpanObserved spans each axis from the smallest to the largest
	// value in the resampled cloud. An axis whose values are all
	// equal spans its full category range instead.
	SpanObserved GridSpan = iota

	// SpanCategories spans each axis over its full category range,
	// so grid point (i, j) always sits on cell (i, j).
	SpanCategories
)

func (g GridSpan) String() string {
	switch g {
	case SpanObserved:
		return "observed"
	case SpanCategories:
		return "categories"
	}
	return fmt.Sprintf("GridSpan(%d)", int(g))
}

// ParseGridSpan parses the String form of a GridSpan.
func ParseGridSpan(s string) (GridSpan, error) {
	switch s {
	case "", "observed":
		return SpanObserved, nil
	case "categories":
		return SpanCategories, nil
	}
	return 0, fmt.Errorf("bequest: unknown grid span %q", s)
}

// Estimator smooths proportion matrices with a bivariate Gaussian
// kernel density estimate.
//
// The zero value of Estimator is the reference configuration.
type Estimator struct {
	// SampleSize is the number of draws from each marginal. If 0,
	// DefaultSampleSize is used.
	SampleSize int

	// Bandwidth is the factor applied to the covariance of the
	// resampled cloud to obtain the kernel covariance, which is
	// Bandwidth² times that covariance. Larger values give
	// smoother, flatter results. If 0, DefaultBandwidth is used.
	Bandwidth float64

	// FirstAge and FirstIncome are the values assigned to the
	// first row and first column. If 0, DefaultFirstAge and
	// DefaultFirstIncome are used.
	FirstAge, FirstIncome int

	// Span selects the evaluation grid.
	Span GridSpan

	// Strict makes Estimate return ErrDegenerate when an axis of
	// the cloud collapses to one value or its covariance is
	// singular. Otherwise a collapsed axis gets unit variance and
	// a singular covariance loses its correlation term.
	Strict bool

	// PlotPath, if not empty, is where a heat map of the result
	// is saved. The format follows the file extension.
	PlotPath string

	// Src is the source of randomness for resampling. If nil, a
	// source seeded from the current time is used.
	Src rand.Source

	// Logger receives debug output. If nil, nothing is logged.
	Logger *zap.Logger
}

// Result is a smoothed bequest distribution.
type Result struct {
	// Density is the S×J normalized density grid. It sums to 1.
	Density *mat.Dense

	// Ages and Incomes are the grid coordinates of the rows and
	// columns of Density.
	Ages, Incomes []float64

	// Bandwidth is the bandwidth factor that was used.
	Bandwidth float64

	// Marginals are the marginals of the input matrix.
	Marginals Marginals

	// Cloud is the resampled point cloud the density was fitted
	// to.
	Cloud PointCloud
}

// MVKDE smooths the S×J proportion matrix pm with the given bandwidth
// and returns the normalized S×J density grid. If plotPath is not
// empty, a heat map of the grid is saved there. A bandwidth of 0
// selects DefaultBandwidth; a nil src selects a time-seeded source.
func MVKDE(S, J int, pm mat.Matrix, bandwidth float64, plotPath string, src rand.Source) (*mat.Dense, error) {
	e := Estimator{Bandwidth: bandwidth, PlotPath: plotPath, Src: src}
	res, err := e.Estimate(S, J, pm)
	if err != nil {
		return nil, err
	}
	return res.Density, nil
}

// Estimate smooths the S×J proportion matrix pm.
//
// All validation happens before any sampling, and nothing is written
// unless estimation succeeds.
func (e Estimator) Estimate(S, J int, pm mat.Matrix) (*Result, error) {
	log := e.Logger
	if log == nil {
		log = zap.NewNop()
	}

	n := e.SampleSize
	if n == 0 {
		n = DefaultSampleSize
	} else if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrSampleSize, n)
	}
	h := e.Bandwidth
	if h == 0 {
		h = DefaultBandwidth
	} else if !(h > 0) || math.IsInf(h, 0) {
		return nil, fmt.Errorf("%w: %g", ErrBandwidth, h)
	}
	firstAge, firstIncome := e.FirstAge, e.FirstIncome
	if firstAge == 0 {
		firstAge = DefaultFirstAge
	}
	if firstIncome == 0 {
		firstIncome = DefaultFirstIncome
	}

	m, err := MarginalsOf(S, J, pm)
	if err != nil {
		return nil, err
	}

	src := e.Src
	if src == nil {
		src = rand.NewSource(uint64(time.Now().UnixNano()))
	}
	cloud := Resample(m, n, firstAge, firstIncome, src)
	log.Debug("resampled marginals",
		zap.Int("samples", n),
		zap.Int("distinct_points", len(cloud.Sample.Xs)))

	kde, err := stats.KDE2{Bandwidth: stats.FixedBandwidth(h), Strict: e.Strict}.FromSample(cloud.Sample)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDegenerate, err)
	}

	low, high := kde.Bounds()
	ages := e.axis(low[0], high[0], firstAge, S)
	incomes := e.axis(low[1], high[1], firstIncome, J)
	density := stats.Grid(kde, ages, incomes)

	total := mat.Sum(density)
	if !(total > 0) || math.IsInf(total, 0) {
		return nil, fmt.Errorf("%w: density grid sums to %g", ErrDegenerate, total)
	}
	density.Scale(1/total, density)
	log.Debug("evaluated density grid",
		zap.Float64("bandwidth", h),
		zap.Float64("raw_total", total),
		zap.Float64s("age_range", []float64{ages[0], ages[len(ages)-1]}),
		zap.Float64s("income_range", []float64{incomes[0], incomes[len(incomes)-1]}))

	if e.PlotPath != "" {
		if err := surface.Save(e.PlotPath, density, ages, incomes); err != nil {
			return nil, fmt.Errorf("bequest: %w", err)
		}
		log.Debug("saved density plot", zap.String("path", e.PlotPath))
	}

	return &Result{
		Density:   density,
		Ages:      ages,
		Incomes:   incomes,
		Bandwidth: h,
		Marginals: m,
		Cloud:     cloud,
	}, nil
}

// axis returns the n grid coordinates of one axis whose observed
// values lie in [lo, hi] and whose categories start at first.
func (e Estimator) axis(lo, hi float64, first, n int) []float64 {
	if e.Span == SpanCategories || lo == hi {
		lo, hi = float64(first), float64(first+n-1)
	}
	return stats.Linspace(lo, hi, n)
}
