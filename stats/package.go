// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats holds the statistical machinery behind the bequest
// estimator: weighted two-dimensional samples, multivariate kernel
// density estimation, multinomial resampling and descriptive
// summaries.
package stats // import "github.com/ogusa/bequestkde/stats"

import (
	"errors"
	"math"
)

var inf = math.Inf(1)
var nan = math.NaN()

var (
	// ErrSamplesEqual is returned by strict estimators when every
	// sample has the same value along some axis.
	ErrSamplesEqual = errors.New("stats: all samples are equal")

	// ErrSingular is returned by strict estimators when a
	// sample's covariance matrix is not positive definite.
	ErrSingular = errors.New("stats: singular covariance")

	// ErrNoWeight is returned when a sample has no points or its
	// total weight is zero.
	ErrNoWeight = errors.New("stats: sample has zero weight")
)
