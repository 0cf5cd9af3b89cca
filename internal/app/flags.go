package app

import (
	"github.com/integrii/flaggy"

	"canvas-life/internal/sims/life"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Size     int
	CellSize int
	TPS      int
	Seed     int64
	Pattern  string
	Density  float64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	d := life.DefaultConfig()
	return &Config{
		Size:     d.Size,
		CellSize: d.CellSize,
		TPS:      60,
		Seed:     d.Seed,
		Pattern:  d.Pattern,
		Density:  d.Density,
	}
}

// Bind attaches the configuration to the provided parser.
func (c *Config) Bind(p *flaggy.Parser) {
	p.Int(&c.Size, "n", "size", "cells per row and column")
	p.Int(&c.CellSize, "c", "cell", "pixels per cell")
	p.Int(&c.TPS, "t", "tps", "ticks per second")
	p.Int64(&c.Seed, "s", "seed", "seed for randomised patterns")
	p.String(&c.Pattern, "p", "pattern", "seed pattern [glider|noise|random|random-scene]")
	p.Float64(&c.Density, "d", "density", "live cell ratio for randomised patterns")
}

// Life returns the simulation configuration.
func (c *Config) Life() life.Config {
	return life.Config{
		Size:     c.Size,
		CellSize: c.CellSize,
		Pattern:  c.Pattern,
		Seed:     c.Seed,
		Density:  c.Density,
	}
}
