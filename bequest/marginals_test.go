// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bequest

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestMarginalsOf(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-12)
	pm := mat.NewDense(2, 3, []float64{
		0.1, 0.2, 0.0,
		0.3, 0.0, 0.4,
	})
	want := Marginals{
		Age:    []float64{0.3, 0.7},
		Income: []float64{0.4, 0.2, 0.4},
	}

	got, err := MarginalsOf(2, 3, pm)
	require.NoError(t, err)
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("MarginalsOf mismatch (-want +got):\n%s", diff)
	}

	// Marginals are rescaled, so the matrix need not sum to 1.
	var scaled mat.Dense
	scaled.Scale(5, pm)
	got, err = MarginalsOf(2, 3, &scaled)
	require.NoError(t, err)
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("MarginalsOf(5×pm) mismatch (-want +got):\n%s", diff)
	}
}

func TestMarginalsOfErrors(t *testing.T) {
	bad := func(v float64) *mat.Dense {
		m := pointMass(2, 2, 0, 0)
		m.Set(1, 1, v)
		return m
	}
	tests := []struct {
		name string
		S, J int
		pm   mat.Matrix
		want error
	}{
		{"zero S", 0, 2, mat.NewDense(1, 2, nil), ErrShape},
		{"negative J", 2, -1, mat.NewDense(2, 1, nil), ErrShape},
		{"nil matrix", 2, 2, nil, ErrShape},
		{"wrong rows", 3, 2, pointMass(2, 2, 0, 0), ErrShape},
		{"transposed", 2, 3, pointMass(3, 2, 0, 0), ErrShape},
		{"negative entry", 2, 2, bad(-0.5), ErrInvalidEntry},
		{"NaN entry", 2, 2, bad(math.NaN()), ErrInvalidEntry},
		{"infinite entry", 2, 2, bad(math.Inf(1)), ErrInvalidEntry},
		{"all zero", 2, 2, mat.NewDense(2, 2, nil), ErrDegenerate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := MarginalsOf(tt.S, tt.J, tt.pm)
			require.ErrorIs(t, err, tt.want)
		})
	}
}
