package model

import (
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

var defaultFlipPool = NewFlipPool()

// FlipsParallel returns the same cells as Flips, scanning horizontal bands
// of rows concurrently. Bands are joined in order so the result stays
// row-major. workers <= 0 uses one worker per CPU.
func (g *Grid) FlipsParallel(workers int) ([]Cell, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers == 1 || g.height <= 1 {
		return g.Flips(), nil
	}

	var (
		eg            errgroup.Group
		rowsPerWorker = (g.height + workers - 1) / workers // Ceiling division
		bands         = make([]*[]Cell, 0, workers)
	)

	for i := 0; i < workers; i++ {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, g.height)
		)
		if startRow >= g.height {
			break
		}

		buf := defaultFlipPool.Get()
		bands = append(bands, buf)

		eg.Go(func() error {
			*buf = g.flipsInRows(*buf, startRow, endRow)
			return nil
		})
	}

	defer func() {
		for _, buf := range bands {
			defaultFlipPool.Put(buf)
		}
	}()

	if err := eg.Wait(); err != nil {
		return nil, errors.Wrap(err, "[FlipsParallel] band scan failed")
	}

	total := 0
	for _, buf := range bands {
		total += len(*buf)
	}
	flips := make([]Cell, 0, total)
	for _, buf := range bands {
		flips = append(flips, *buf...)
	}
	return flips, nil
}

// AdvanceParallel is Advance with the scan spread over workers goroutines.
// The apply step always runs on the caller's goroutine.
func (g *Grid) AdvanceParallel(workers int) ([]Cell, error) {
	flips, err := g.FlipsParallel(workers)
	if err != nil {
		return nil, err
	}
	g.Apply(flips)
	return flips, nil
}
