//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter keeps one RGBA pixel per cell and scales it onto the screen.
// It implements core.Sink.
type GridPainter struct {
	n   int
	img *ebiten.Image
	buf []byte

	on  color.Color
	off color.Color
}

// NewGridPainter allocates a painter for an n×n grid.
func NewGridPainter(n int, on, off color.Color) *GridPainter {
	gp := &GridPainter{n: n, buf: make([]byte, 4*n*n), on: on, off: off}
	gp.img = ebiten.NewImage(n, n)
	gp.Clear()
	return gp
}

// Clear resets every pixel to the background colour.
func (gp *GridPainter) Clear() { clearRGBA(gp.buf, gp.off) }

// FillCell marks the pixel for (x, y).
func (gp *GridPainter) FillCell(x, y int) {
	if x < 0 || y < 0 || x >= gp.n || y >= gp.n {
		return
	}
	fillRGBA(gp.buf, gp.n*y+x, gp.on)
}

// Blit uploads the painted pixels and draws them scaled by cellSize.
func (gp *GridPainter) Blit(dst *ebiten.Image, cellSize int) {
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(cellSize), float64(cellSize))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.n, gp.n }
