package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/integrii/flaggy"
	"github.com/logrusorgru/aurora"

	"canvas-life/internal/census"
	"canvas-life/internal/sims/life"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("life-census: ")

	cfg := life.DefaultConfig()
	cfg.Pattern = "random"
	runs := 32
	generations := 500
	workers := runtime.NumCPU()
	top := 10

	p := flaggy.NewParser("life-census")
	p.Description = "Run many seeded grids and rank how they end up"
	p.Int(&cfg.Size, "n", "size", "cells per row and column")
	p.String(&cfg.Pattern, "p", "pattern", "seed pattern")
	p.Float64(&cfg.Density, "d", "density", "live cell ratio for randomised patterns")
	p.Int64(&cfg.Seed, "s", "seed", "seed of the first run")
	p.Int(&runs, "r", "runs", "number of grids")
	p.Int(&generations, "g", "generations", "ticks per grid")
	p.Int(&workers, "w", "workers", "grids stepped at once")
	p.Int(&top, "t", "top", "rows to print")
	if err := p.Parse(); err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log.Printf("running %d grids of %dx%d for %d generations (%d workers)", runs, cfg.Size, cfg.Size, generations, workers)
	start := time.Now()
	results, err := census.Run(ctx, cfg, runs, generations, workers)
	if err != nil {
		log.Fatal(err)
	}
	elapsed := time.Since(start).Round(time.Millisecond)

	stable := 0
	for _, res := range results {
		if res.StableAt > 0 {
			stable++
		}
	}
	fmt.Printf("%d/%d grids settled (elapsed %s)\n\n", stable, len(results), elapsed)
	fmt.Printf("%4s  %12s  %10s  %s\n", "rank", "seed", "population", "stable at")
	for i := 0; i < len(results) && i < top; i++ {
		res := results[i]
		settled := aurora.Red("never").String()
		if res.StableAt > 0 {
			settled = aurora.Green(fmt.Sprintf("gen %d", res.StableAt)).String()
		}
		fmt.Printf("%4d  %12d  %10d  %s\n", i+1, res.Seed, res.Population, settled)
	}
}
