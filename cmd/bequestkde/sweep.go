// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"

	"github.com/ogusa/bequestkde/bequest"
	"github.com/ogusa/bequestkde/internal/matrixio"
	"github.com/ogusa/bequestkde/internal/surface"
)

func (a *app) sweepCmd() *cobra.Command {
	var bandwidths []float64
	cmd := &cobra.Command{
		Use:   "sweep <proportions.csv>",
		Short: "Smooth a proportion matrix at several bandwidths",
		Long: `Smooths the same proportion matrix once per bandwidth. All runs use the
same seed, so they differ only in bandwidth. Writes
bequest_matrix_kde_bw<bandwidth>.csv for each bandwidth.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSweep(cmd, args[0], bandwidths)
		},
	}
	cmd.Flags().Float64SliceVar(&bandwidths, "bandwidths",
		[]float64{bequest.DefaultBandwidth, bequest.CalibrationBandwidth}, "bandwidth factors to try")
	return cmd
}

func (a *app) runSweep(cmd *cobra.Command, input string, bandwidths []float64) error {
	pm, err := matrixio.ReadFile(input)
	if err != nil {
		return err
	}
	seed := a.cfg.SeedOrNow()
	e, err := a.cfg.Estimator(seed, a.logger)
	if err != nil {
		return err
	}
	results, err := e.Sweep(cmd.Context(), a.cfg.S, a.cfg.J, pm, bandwidths, seed, a.cfg.Workers)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	for _, res := range results {
		suffix := "_bw" + strconv.FormatFloat(res.Bandwidth, 'g', -1, 64)
		path := filepath.Join(a.cfg.OutputDir, withSuffix(kdeFile, suffix))
		if err := matrixio.WriteFile(path, res.Density); err != nil {
			return err
		}
		if a.cfg.Plot {
			img := filepath.Join(a.cfg.ImageDir, withSuffix(plotFile, suffix))
			if err := surface.Save(img, res.Density, res.Ages, res.Incomes); err != nil {
				return err
			}
		}
		a.logger.Info("wrote smoothed matrix",
			zap.Float64("bandwidth", res.Bandwidth),
			zap.Float64("peak", mat.Max(res.Density)),
			zap.String("path", path))
		fmt.Fprintln(w, path)
	}
	return nil
}

// withSuffix inserts suffix before the extension of name.
func withSuffix(name, suffix string) string {
	ext := filepath.Ext(name)
	return strings.TrimSuffix(name, ext) + suffix + ext
}

