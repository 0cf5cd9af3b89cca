// Package census runs batches of independently seeded Life grids and reports
// how each one ends up.
package census

import (
	"context"
	"slices"
	"sort"

	"golang.org/x/sync/errgroup"

	"canvas-life/internal/core"
	"canvas-life/internal/sims/life"
)

// Result summarises one run.
type Result struct {
	Seed       int64
	Population int
	// StableAt is the first generation identical to its predecessor, or 0
	// if the grid was still changing when the run ended.
	StableAt int
}

// Run simulates runs grids for generations ticks each. Run i uses seed
// base.Seed+i. At most workers grids are stepped at once; every grid is
// stepped on a single goroutine. Results are sorted by population, largest
// first, then by seed.
func Run(ctx context.Context, base life.Config, runs, generations, workers int) ([]Result, error) {
	if workers <= 0 {
		workers = 1
	}
	results := make([]Result, runs)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < runs; i++ {
		cfg := base
		cfg.Seed = base.Seed + int64(i)
		g.Go(func() error {
			res, err := runOne(ctx, cfg, generations)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Population != results[j].Population {
			return results[i].Population > results[j].Population
		}
		return results[i].Seed < results[j].Seed
	})
	return results, nil
}

func runOne(ctx context.Context, cfg life.Config, generations int) (Result, error) {
	sim, err := life.New(cfg)
	if err != nil {
		return Result{}, err
	}
	res := Result{Seed: cfg.Seed}
	grid := sim.Grid()
	before := make([]bool, grid.Len())
	for gen := 0; gen < generations; gen++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		copy(before, grid.Cells(core.Previous))
		sim.Tick(nil)
		if res.StableAt == 0 && slices.Equal(before, grid.Cells(core.Previous)) {
			res.StableAt = sim.Generation()
		}
	}
	res.Population = sim.Population()
	return res, nil
}
