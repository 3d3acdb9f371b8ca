// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bequest

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Marginals are the two one-dimensional marginal distributions of a
// proportion matrix.
type Marginals struct {
	// Age[i] is the sum of row i, rescaled so Age sums to 1.
	Age []float64

	// Income[j] is the sum of column j, rescaled so Income sums
	// to 1.
	Income []float64
}

// MarginalsOf validates pm as an S×J proportion matrix and returns
// its marginals. The matrix need not sum exactly to 1, but it must
// have some mass.
func MarginalsOf(S, J int, pm mat.Matrix) (Marginals, error) {
	if err := validate(S, J, pm); err != nil {
		return Marginals{}, err
	}

	m := Marginals{Age: make([]float64, S), Income: make([]float64, J)}
	for i := range m.Age {
		m.Age[i] = floats.Sum(mat.Row(nil, i, pm))
	}
	for j := range m.Income {
		m.Income[j] = floats.Sum(mat.Col(nil, j, pm))
	}
	if err := normalize("age", m.Age); err != nil {
		return Marginals{}, err
	}
	if err := normalize("income", m.Income); err != nil {
		return Marginals{}, err
	}
	return m, nil
}

func validate(S, J int, pm mat.Matrix) error {
	if S <= 0 || J <= 0 {
		return fmt.Errorf("%w: S=%d, J=%d", ErrShape, S, J)
	}
	if pm == nil {
		return fmt.Errorf("%w: nil matrix", ErrShape)
	}
	if r, c := pm.Dims(); r != S || c != J {
		return fmt.Errorf("%w: got %d×%d, want %d×%d", ErrShape, r, c, S, J)
	}
	for i := 0; i < S; i++ {
		for j := 0; j < J; j++ {
			v := pm.At(i, j)
			if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: [%d,%d] = %g", ErrInvalidEntry, i, j, v)
			}
		}
	}
	return nil
}

func normalize(axis string, p []float64) error {
	total := floats.Sum(p)
	if !(total > 0) || math.IsInf(total, 0) {
		return fmt.Errorf("%w: %s marginal sums to %g", ErrDegenerate, axis, total)
	}
	floats.Scale(1/total, p)
	return nil
}
