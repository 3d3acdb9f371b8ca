// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/ogusa/bequestkde/bequest"
	"github.com/ogusa/bequestkde/internal/matrixio"
	"github.com/ogusa/bequestkde/stats"
)

func (a *app) describeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe <matrix.csv>",
		Short: "Describe the age and income marginals of a matrix",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runDescribe,
	}
}

func (a *app) runDescribe(cmd *cobra.Command, args []string) error {
	m, err := matrixio.ReadFile(args[0])
	if err != nil {
		return err
	}
	r, c := m.Dims()
	marg, err := bequest.MarginalsOf(r, c, m)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%d×%d matrix  sum %.6g  max %.6g\n\n", r, c, mat.Sum(m), mat.Max(m))
	describe(w, "age", a.cfg.FirstAge, marg.Age)
	describe(w, "income group", a.cfg.FirstIncome, marg.Income)
	return nil
}

// describe prints summary statistics and a bar chart of the
// distribution p over the categories first, first+1, ....
func describe(w io.Writer, name string, first int, p []float64) {
	xs := make([]float64, len(p))
	for i := range xs {
		xs[i] = float64(first + i)
	}
	s := stats.Summarize(xs, p, nil)

	fmt.Fprintf(w, "%s: N %d  mean %.6g  std dev %.6g  mode %.6g  entropy %.6g\n",
		name, s.N, s.Mean, s.StdDev, s.Mode, s.Entropy)

	// Quartiles and tails.
	labels := map[float64]string{0: "min", 0.5: "median", 1: "max"}
	for i, q := range s.Ps {
		label, ok := labels[q]
		if !ok {
			label = fmt.Sprintf("%.0f%%ile", q*100)
		}
		fmt.Fprintf(w, "%8s %.6g\n", label, s.Quantiles[i])
	}
	fmt.Fprintln(w)

	fprintBars(w, xs, p)
	fmt.Fprintln(w)
}

// fprintBars prints one bar per category, scaled so the largest is
// barWidth characters wide.
func fprintBars(w io.Writer, xs, p []float64) {
	const barWidth = 50
	top := floats.Max(p)
	for i, x := range xs {
		n := 0
		if top > 0 {
			n = int(p[i]/top*barWidth + 0.5)
		}
		fmt.Fprintf(w, "%8.6g %8.4f %s\n", x, p[i], strings.Repeat("*", n))
	}
}
