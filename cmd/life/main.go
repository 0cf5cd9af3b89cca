//go:build ebiten

package main

import (
	"errors"
	"log"

	"canvas-life/internal/app"
	"canvas-life/internal/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/integrii/flaggy"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("life: ")

	cfg := app.NewConfig()
	p := flaggy.NewParser("life")
	p.Description = "Conway's Game of Life in a window"
	cfg.Bind(p)
	if err := p.Parse(); err != nil {
		log.Fatal(err)
	}

	sim, err := life.New(cfg.Life())
	if err != nil {
		log.Fatalf("create simulation: %v", err)
	}

	game := app.New(sim, cfg.CellSize, cfg.Seed)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("canvas-life — " + cfg.Pattern)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
