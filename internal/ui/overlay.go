//go:build ebiten

package ui

import (
	"canvas-life/internal/core"
	"canvas-life/internal/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay tints every cell by the live neighbour count the engine saw for it.
type Overlay struct {
	sim        core.Sim
	scale      int
	showCounts bool
	maskImg    *ebiten.Image
	maskBuf    []byte
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	return &Overlay{sim: sim, scale: scale}
}

// Update toggles the overlay with the 1 key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showCounts = !o.showCounts
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.showCounts {
		return
	}
	grid := o.sim.Grid()
	n := grid.Side()
	total := grid.Len()
	if o.maskImg == nil || o.maskImg.Bounds().Dx() != n {
		o.maskImg = ebiten.NewImage(n, n)
		o.maskBuf = make([]byte, 4*total)
	}

	for i := 0; i < total; i++ {
		c := neighbourTint(life.CountLiveNeighbours(grid, i))
		base := i * 4
		// WritePixels expects premultiplied alpha.
		o.maskBuf[base+0] = uint8(uint16(c.R) * uint16(c.A) / 255)
		o.maskBuf[base+1] = uint8(uint16(c.G) * uint16(c.A) / 255)
		o.maskBuf[base+2] = uint8(uint16(c.B) * uint16(c.A) / 255)
		o.maskBuf[base+3] = c.A
	}
	o.maskImg.WritePixels(o.maskBuf)

	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	screen.DrawImage(o.maskImg, op)
}
