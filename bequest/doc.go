// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bequest estimates a smoothed joint distribution of bequests
// over age and lifetime-income group.
//
// The estimator takes an S×J proportion matrix (rows are age
// categories, columns are income groups), resamples each of its two
// marginals independently, pairs the two samples by position, fits a
// bivariate Gaussian kernel density estimate to the resulting point
// cloud and evaluates it on an S×J grid normalized to sum to 1.
//
// Pairing the independently drawn marginal samples by position is
// the documented behavior of the calibration procedure. Both samples
// are in category order, so the pairing is comonotone: it does not
// reproduce the joint structure of the input matrix, and it is not a
// joint resampling.
package bequest // import "github.com/ogusa/bequestkde/bequest"
