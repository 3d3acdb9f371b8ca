// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bequest

import "errors"

// Errors returned by the estimator. Callers match them with errors.Is;
// returned errors usually wrap one of these with the offending values.
var (
	// ErrShape is returned when S or J is not positive or the
	// proportion matrix is not S×J.
	ErrShape = errors.New("bequest: proportion matrix shape mismatch")

	// ErrInvalidEntry is returned when the proportion matrix holds a
	// negative, NaN or infinite value.
	ErrInvalidEntry = errors.New("bequest: invalid proportion")

	// ErrDegenerate is returned when a marginal sums to zero, when
	// strict estimation meets a collapsed axis or a singular
	// covariance, or when the evaluated grid has no mass.
	ErrDegenerate = errors.New("bequest: degenerate distribution")

	// ErrBandwidth is returned for a negative or non-finite bandwidth.
	ErrBandwidth = errors.New("bequest: bandwidth must be positive and finite")

	// ErrSampleSize is returned for a negative sample size.
	ErrSampleSize = errors.New("bequest: sample size must be positive")
)
