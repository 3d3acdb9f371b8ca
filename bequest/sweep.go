// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bequest

import (
	"context"
	"fmt"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
)

// Sweep estimates pm once for each bandwidth in bandwidths, running
// up to workers estimations at a time (GOMAXPROCS if workers <= 0).
//
// Every run draws from a fresh source seeded with seed, so the runs
// share the same point cloud and differ only in bandwidth. e.Src and
// e.PlotPath are ignored. Results are returned in the order of
// bandwidths. Sweep stops at the first error or when ctx is done.
func (e Estimator) Sweep(ctx context.Context, S, J int, pm mat.Matrix, bandwidths []float64, seed uint64, workers int) ([]*Result, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	log := e.Logger
	if log == nil {
		log = zap.NewNop()
	}

	results := make([]*Result, len(bandwidths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, h := range bandwidths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			run := e
			run.Bandwidth = h
			run.Src = rand.NewSource(seed)
			run.PlotPath = ""
			res, err := run.Estimate(S, J, pm)
			if err != nil {
				return fmt.Errorf("bandwidth %g: %w", h, err)
			}
			log.Debug("sweep run done", zap.Int("index", i), zap.Float64("bandwidth", res.Bandwidth))
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
