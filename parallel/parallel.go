// SPDX-License-Identifier: MIT

// Package parallel provides the fork-join loops used by the dense kernels.
//
// Purpose:
//   - Split an index range (or a 2-D block grid) into contiguous chunks and run
//     them on a bounded errgroup; join before returning.
//   - Gate forking by estimated work so small problems stay on the caller goroutine.
//
// Contract:
//   - Callers must only write disjoint output locations from different chunks.
//   - The split never changes what a single index computes, so sequential and
//     parallel runs of the same loop body give identical results.
//   - A panic in a worker is re-raised on the calling goroutine after the join.
//   - No cancellation, no timeouts: every call runs to completion.
package parallel

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Config bounds a parallel region.
type Config struct {
	// Workers is the maximum number of concurrent chunks; 0 means GOMAXPROCS.
	Workers int
	// Threshold is the minimum estimated work (items × cost) before forking.
	Threshold int
}

// Sequential is a Config that never forks.
var Sequential = Config{Workers: 1}

// EffectiveWorkers resolves Workers=0 to GOMAXPROCS.
func (c Config) EffectiveWorkers() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.GOMAXPROCS(0)
}

// ShouldFork reports whether n items of the given per-item cost are worth splitting.
func (c Config) ShouldFork(n, cost int) bool {
	if n < 2 || c.EffectiveWorkers() < 2 {
		return false
	}
	if cost < 1 {
		cost = 1
	}
	return n*cost >= c.Threshold
}

// workerPanic carries a recovered panic value across the errgroup boundary.
type workerPanic struct{ value any }

func (p workerPanic) Error() string { return fmt.Sprintf("parallel: worker panic: %v", p.value) }

// For runs fn over [0,n) as contiguous [lo,hi) chunks.
// cost is the estimated work per index and only feeds the fork decision.
// Complexity: O(n·cost) total work, one goroutine per chunk at most Workers at a time.
func For(n, cost int, cfg Config, fn func(lo, hi int)) {
	if n <= 0 {
		return
	}
	if !cfg.ShouldFork(n, cost) {
		fn(0, n)
		return
	}

	workers := cfg.EffectiveWorkers()
	if workers > n {
		workers = n
	}
	chunk := (n + workers - 1) / workers

	var g errgroup.Group
	g.SetLimit(workers)
	for lo := 0; lo < n; lo += chunk {
		lo, hi := lo, min(lo+chunk, n)
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = workerPanic{value: r}
				}
			}()
			fn(lo, hi)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		if p, ok := err.(workerPanic); ok {
			panic(p.value)
		}
		panic(err)
	}
}

// ForGrid runs fn once per (bi, bj) cell of a rowBlocks × colBlocks grid.
// Each cell is an independent task; cost is the estimated work of one cell.
func ForGrid(rowBlocks, colBlocks, cost int, cfg Config, fn func(bi, bj int)) {
	if rowBlocks <= 0 || colBlocks <= 0 {
		return
	}
	For(rowBlocks*colBlocks, cost, cfg, func(lo, hi int) {
		for t := lo; t < hi; t++ {
			fn(t/colBlocks, t%colBlocks)
		}
	})
}

// Reduce evaluates partial over fixed-size chunks of [0,n) and folds the
// partial results with combine in chunk order. The chunk boundaries depend
// only on n and chunk, never on Workers, so the result is reproducible.
func Reduce[T any](n, chunk int, cfg Config, partial func(lo, hi int) T, combine func(acc, v T) T) T {
	var zero T
	if n <= 0 {
		return zero
	}
	if chunk <= 0 {
		chunk = n
	}
	chunks := (n + chunk - 1) / chunk
	parts := make([]T, chunks)
	For(chunks, chunk, cfg, func(lo, hi int) {
		for c := lo; c < hi; c++ {
			parts[c] = partial(c*chunk, min((c+1)*chunk, n))
		}
	})

	acc := parts[0]
	for _, p := range parts[1:] {
		acc = combine(acc, p)
	}
	return acc
}
