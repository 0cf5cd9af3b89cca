//go:build ebiten

package app

import (
	"image/color"
	"time"

	"canvas-life/internal/core"
	"canvas-life/internal/render"
	"canvas-life/internal/sims/life"
	"canvas-life/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 180

// Game adapts a Life simulation to the ebiten.Game interface.
//
// Update commits the generation drawn during the previous frame and then
// steps; Draw paints the freshly stepped buffer before it is committed.
type Game struct {
	sim     *life.Life
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD

	cellSize int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation.
func New(sim *life.Life, cellSize int, seed int64) *Game {
	n := sim.Size().W
	return &Game{
		sim:      sim,
		painter:  render.NewGridPainter(n, color.Black, color.White),
		overlay:  ui.NewOverlay(sim, cellSize),
		hud:      ui.NewHUD(sim, hudWidth),
		cellSize: cellSize,
		seed:     seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		// Clicks on the HUD fall outside the grid and are rejected by Toggle.
		_ = g.sim.Toggle(x/g.cellSize, y/g.cellSize)
	}

	g.overlay.Update()

	g.sim.Commit()
	if !g.paused || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	g.hud.Update(g.paused)
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	core.Render(g.painter, g.sim.Grid(), g.sim.Frame())
	g.painter.Blit(screen, g.cellSize)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.sim.Size().W*g.cellSize)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.cellSize + hudWidth, s.H * g.cellSize
}
