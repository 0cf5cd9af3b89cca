package main

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"log"
	"os"
	"os/signal"

	"github.com/integrii/flaggy"

	"canvas-life/internal/app"
	"canvas-life/internal/core"
	"canvas-life/internal/render"
	"canvas-life/internal/sims/life"
	"canvas-life/internal/view"
)

type termOptions struct {
	generations int
	quiet       bool
	noColor     bool
	interactive bool
	pngPath     string
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("life: ")

	cfg := app.NewConfig()
	cfg.TPS = 10
	opts := termOptions{generations: 100}

	p := flaggy.NewParser("life-term")
	p.Description = "Conway's Game of Life in the terminal"
	p.ShowHelpOnUnexpected = true
	cfg.Bind(p)
	p.Int(&opts.generations, "g", "generations", "number of ticks to run")
	p.Bool(&opts.quiet, "q", "quiet", "only print a summary")
	p.Bool(&opts.noColor, "", "no-color", "disable ANSI colours")
	p.Bool(&opts.interactive, "i", "interactive", "start the interactive console")
	p.String(&opts.pngPath, "o", "png", "write the final frame to this PNG file")
	if err := p.Parse(); err != nil {
		log.Fatal(err)
	}

	sim, err := life.New(cfg.Life())
	if err != nil {
		log.Fatalf("create simulation: %v", err)
	}

	if opts.interactive {
		console, err := view.NewConsole(sim, core.NewFixedStep(cfg.TPS).Interval())
		if err != nil {
			log.Fatal(err)
		}
		if err := console.Run(); err != nil {
			log.Fatal(err)
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, sim, cfg, opts); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, sim *life.Life, cfg *app.Config, opts termOptions) error {
	clock := core.NewFixedStep(cfg.TPS)
	term := render.NewTerminal(sim.Size().W, !opts.noColor)

	for sim.Generation() < opts.generations {
		if err := clock.Wait(ctx); err != nil {
			if errors.Is(err, context.Canceled) {
				log.Printf("interrupted at generation %d", sim.Generation())
				break
			}
			return err
		}
		sim.Tick(term)
		if !opts.quiet {
			fmt.Print("\x1b[H\x1b[2J")
			fmt.Printf("generation %d, %d live cells\n", sim.Generation(), sim.Population())
			if _, err := term.WriteTo(os.Stdout); err != nil {
				return err
			}
		}
	}
	log.Printf("finished at generation %d with %d live cells", sim.Generation(), sim.Population())

	if opts.pngPath == "" {
		return nil
	}
	return writePNG(opts.pngPath, sim, cfg.CellSize)
}

func writePNG(path string, sim *life.Life, cellSize int) error {
	canvas := render.NewCanvas(sim.Size().W, cellSize, color.Black, color.White)
	core.Render(canvas, sim.Grid(), sim.Frame())

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := canvas.WritePNG(f); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	log.Printf("wrote %s", path)
	return nil
}
