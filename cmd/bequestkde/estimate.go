// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"

	"github.com/ogusa/bequestkde/bequest"
	"github.com/ogusa/bequestkde/internal/matrixio"
	"github.com/ogusa/bequestkde/internal/survey"
)

func (a *app) estimateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "estimate <proportions.csv>",
		Short: "Smooth an S×J proportion matrix",
		Long: `Reads a comma-delimited S×J proportion matrix and writes the smoothed
matrix to bequest_matrix_kde.csv in the output directory.`,
		Args: cobra.ExactArgs(1),
		RunE: a.runEstimate,
	}
}

func (a *app) buildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build <records.csv>",
		Short: "Build the smoothed bequest matrix from survey records",
		Long: `Reads survey records with age, li_group, year_data and inheritance
columns, tabulates the share of inheritance received in each (age,
income group) cell from min_year onwards and smooths it.

Writes bequest_matrix.csv and bequest_matrix_kde.csv to the output
directory, and inheritance_kde.png to the image directory with --plot.`,
		Args: cobra.ExactArgs(1),
		RunE: a.runBuild,
	}
}

func (a *app) runEstimate(cmd *cobra.Command, args []string) error {
	pm, err := matrixio.ReadFile(args[0])
	if err != nil {
		return err
	}
	res, err := a.estimate(pm)
	if err != nil {
		return err
	}
	out := filepath.Join(a.cfg.OutputDir, kdeFile)
	if err := matrixio.WriteFile(out, res.Density); err != nil {
		return err
	}
	a.logger.Info("wrote smoothed matrix", zap.String("input", args[0]), zap.String("path", out))
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

func (a *app) runBuild(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()
	recs, err := survey.ReadRecords(f)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	tab, err := survey.Tabulate(recs, a.cfg.SurveyOptions())
	if err != nil {
		return err
	}
	a.logger.Info("tabulated survey records",
		zap.Int("used", tab.Used),
		zap.Int("skipped", tab.Skipped),
		zap.Int("out_of_grid", tab.OutOfGrid),
		zap.Float64("total", tab.Total))

	res, err := a.estimate(tab.Proportions)
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	for _, o := range []struct {
		name string
		m    mat.Matrix
	}{
		{matrixFile, tab.Proportions},
		{kdeFile, res.Density},
	} {
		path := filepath.Join(a.cfg.OutputDir, o.name)
		if err := matrixio.WriteFile(path, o.m); err != nil {
			return err
		}
		a.logger.Info("wrote matrix", zap.String("path", path))
		fmt.Fprintln(w, path)
	}
	return nil
}

// estimate runs the configured estimator on pm, saving a plot if
// requested.
func (a *app) estimate(pm mat.Matrix) (*bequest.Result, error) {
	seed := a.cfg.SeedOrNow()
	e, err := a.cfg.Estimator(seed, a.logger)
	if err != nil {
		return nil, err
	}
	if a.cfg.Plot {
		e.PlotPath = filepath.Join(a.cfg.ImageDir, plotFile)
	}
	res, err := e.Estimate(a.cfg.S, a.cfg.J, pm)
	if err != nil {
		return nil, err
	}
	a.logger.Info("estimated bequest distribution",
		zap.Int("S", a.cfg.S),
		zap.Int("J", a.cfg.J),
		zap.Float64("bandwidth", res.Bandwidth),
		zap.Uint64("seed", seed))
	return res, nil
}
