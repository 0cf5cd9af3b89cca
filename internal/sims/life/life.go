package life

import (
	"fmt"
	"strconv"

	"canvas-life/internal/core"
	"canvas-life/internal/seed"
)

// Life implements Conway's Game of Life on a double-buffered square grid.
type Life struct {
	cfg     Config
	grid    *core.Grid
	seeder  seed.Seeder
	gen     int
	pending bool
}

// New returns a Life simulation seeded with cfg.Pattern.
func New(cfg Config) (*Life, error) {
	grid, err := core.NewGrid(cfg.Size)
	if err != nil {
		return nil, err
	}
	l := &Life{cfg: cfg, grid: grid}
	if err := l.setSeeder(cfg.Seed); err != nil {
		return nil, err
	}
	l.load()
	return l, nil
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Config returns the configuration the simulation was built with.
func (l *Life) Config() Config { return l.cfg }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return l.grid.Size() }

// Grid exposes the underlying double buffer.
func (l *Life) Grid() *core.Grid { return l.grid }

// Generation returns the number of committed generations since the last reset.
func (l *Life) Generation() int { return l.gen }

// Reset clears the board and reseeds it. Only randomised patterns depend on
// the seed.
func (l *Life) Reset(seed int64) {
	if err := l.setSeeder(seed); err != nil {
		// The pattern name was validated in New.
		panic(err)
	}
	l.load()
}

// Clear kills every cell and resets the generation counter.
func (l *Life) Clear() {
	l.grid.Clear()
	l.gen = 0
	l.pending = false
}

// Step computes the next generation into the current buffer.
func (l *Life) Step() {
	Step(l.grid)
	l.pending = true
}

// Commit promotes the pending generation. It is a no-op when Step has not run
// since the last commit.
func (l *Life) Commit() {
	if !l.pending {
		return
	}
	l.grid.Commit()
	l.pending = false
	l.gen++
}

// Pending reports whether a stepped generation awaits Commit.
func (l *Life) Pending() bool { return l.pending }

// Frame returns the buffer a renderer should paint: the freshly stepped
// generation before commit, the committed one otherwise.
func (l *Life) Frame() core.Buffer {
	if l.pending {
		return core.Current
	}
	return core.Previous
}

// ForEachLiveCell enumerates the live cells of the frame buffer.
func (l *Life) ForEachLiveCell(fn func(x, y int)) {
	l.grid.ForEachLive(l.Frame(), fn)
}

// Population returns the number of live cells in the frame buffer.
func (l *Life) Population() int { return l.grid.LiveCount(l.Frame()) }

// Tick runs one full driver cycle: step, render the new generation, commit.
func (l *Life) Tick(sink core.Sink) {
	l.Step()
	if sink != nil {
		core.Render(sink, l.grid, l.Frame())
	}
	l.Commit()
}

// Toggle flips a cell of the committed generation. Any pending step is
// committed first so the edit is not lost.
func (l *Life) Toggle(x, y int) error {
	l.Commit()
	alive, err := l.grid.Get(core.Previous, x, y)
	if err != nil {
		return err
	}
	return l.grid.Set(core.Previous, x, y, !alive)
}

// Parameters reports the values shown on the HUD.
func (l *Life) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				{Key: "size", Label: "Size", Value: fmt.Sprintf("%dx%d", l.cfg.Size, l.cfg.Size)},
				{Key: "pattern", Label: "Pattern", Value: l.cfg.Pattern},
			},
		},
		{
			Name: "Run",
			Params: []core.Parameter{
				{Key: "generation", Label: "Generation", Value: strconv.Itoa(l.gen)},
				{Key: "population", Label: "Live cells", Value: strconv.Itoa(l.Population())},
			},
		},
	}}
}

func (l *Life) setSeeder(s int64) error {
	seeder, err := seed.Lookup(l.cfg.Pattern, seed.Options{Seed: s, Density: l.cfg.Density})
	if err != nil {
		return err
	}
	l.cfg.Seed = s
	l.seeder = seeder
	return nil
}

func (l *Life) load() {
	l.Clear()
	n := l.grid.Side()
	// Seeders always return an n*n buffer.
	_ = l.grid.Load(l.seeder(make([]bool, n*n), n))
}
