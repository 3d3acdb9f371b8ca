// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command bequestkde estimates the distribution of bequests received
// by age and lifetime-income group.
//
// Usage:
//
//	bequestkde build records.csv         # survey records to smoothed matrix
//	bequestkde estimate proportions.csv  # smooth a proportion matrix
//	bequestkde sweep proportions.csv --bandwidths 0.25,0.5
//	bequestkde describe matrix.csv       # summarize the marginals
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ogusa/bequestkde/internal/config"
)

// Output file names, as read by the downstream model.
const (
	matrixFile = "bequest_matrix.csv"
	kdeFile    = "bequest_matrix_kde.csv"
	plotFile   = "inheritance_kde.png"
)

// app carries the flags and the state shared by all subcommands.
type app struct {
	cfgPath string
	verbose bool

	// Flags that override the configuration file.
	s, j      int
	bandwidth float64
	plot      bool
	seed      uint64
	samples   int
	out       string

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "bequestkde",
		Short: "Smooth the distribution of bequests by age and lifetime income",
		Long: `bequestkde turns an age by lifetime-income proportion matrix of bequests
into a smooth joint distribution over the same grid, for use as a
calibration input.

Each marginal of the matrix is resampled, the samples are paired in
category order and a bivariate Gaussian kernel density estimate of the
pairs is evaluated on the grid and normalized to sum to 1.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "bequestkde.yaml", "configuration file (defaults apply if missing)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	pf.IntVar(&a.s, "S", 0, "number of age categories")
	pf.IntVar(&a.j, "J", 0, "number of lifetime-income groups")
	pf.Float64Var(&a.bandwidth, "bandwidth", 0, "kernel bandwidth factor")
	pf.BoolVar(&a.plot, "plot", false, "save a heat map of the result")
	pf.Uint64Var(&a.seed, "seed", 0, "random seed (0 for a time-based seed)")
	pf.IntVar(&a.samples, "samples", 0, "draws from each marginal")
	pf.StringVar(&a.out, "out", "", "output directory")

	root.AddCommand(a.buildCmd(), a.estimateCmd(), a.sweepCmd(), a.describeCmd())
	return root
}

// setup loads the configuration, layers the flags on top and builds
// the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}

	f := cmd.Flags()
	if f.Changed("S") {
		cfg.S = a.s
	}
	if f.Changed("J") {
		cfg.J = a.j
	}
	if f.Changed("bandwidth") {
		cfg.Bandwidth = a.bandwidth
	}
	if f.Changed("plot") {
		cfg.Plot = a.plot
	}
	if f.Changed("seed") {
		cfg.Seed = a.seed
	}
	if f.Changed("samples") {
		cfg.SampleSize = a.samples
	}
	if f.Changed("out") {
		cfg.OutputDir = a.out
	}
	if a.verbose {
		cfg.Logging.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(cfg.Level())
	logger, err := zcfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.cfg, a.logger = cfg, logger
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
