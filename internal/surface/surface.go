// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package surface renders a density grid as a heat map image.
package surface

import (
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Image size.
const (
	Width  = 6 * vg.Inch
	Height = 4 * vg.Inch
)

// grid adapts a density matrix to plotter.GridXYZ. Rows of m are
// ages (the x axis) and columns are income groups (the y axis).
type grid struct {
	m      mat.Matrix
	xs, ys []float64
}

func (g grid) Dims() (c, r int)   { return len(g.xs), len(g.ys) }
func (g grid) Z(c, r int) float64 { return g.m.At(c, r) }
func (g grid) X(c int) float64    { return g.xs[c] }
func (g grid) Y(r int) float64    { return g.ys[r] }

// Save renders density as a heat map over the age coordinates ages
// and the income coordinates incomes and saves it to path, creating
// parent directories as needed. The image format is chosen by the
// extension of path (png, svg, pdf, ...).
func Save(path string, density mat.Matrix, ages, incomes []float64) error {
	if r, c := density.Dims(); r != len(ages) || c != len(incomes) {
		return fmt.Errorf("surface: %d×%d grid with %d ages and %d incomes", r, c, len(ages), len(incomes))
	}

	p := plot.New()
	p.Title.Text = "Received proportion of total bequests"
	p.X.Label.Text = "Age"
	p.Y.Label.Text = "Ability Types"

	hm := plotter.NewHeatMap(grid{m: density, xs: ages, ys: incomes}, palette.Heat(16, 1))
	if hm.Max == hm.Min {
		hm.Max = hm.Min + 1
	}
	p.Add(hm)

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("surface: %w", err)
		}
	}
	if err := p.Save(Width, Height, path); err != nil {
		return fmt.Errorf("surface: saving %s: %w", path, err)
	}
	return nil
}
