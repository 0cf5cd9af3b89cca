package render

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/draw"
)

// Canvas is an in-memory raster surface. Each cell is painted as a
// cellSize×cellSize square at (x*cellSize, y*cellSize).
type Canvas struct {
	n        int
	cellSize int
	img      *image.RGBA

	on  image.Image
	off image.Image
}

// NewCanvas allocates a canvas for an n×n grid.
func NewCanvas(n, cellSize int, on, off color.Color) *Canvas {
	if cellSize <= 0 {
		cellSize = 1
	}
	side := n * cellSize
	c := &Canvas{
		n:        n,
		cellSize: cellSize,
		img:      image.NewRGBA(image.Rect(0, 0, side, side)),
		on:       image.NewUniform(on),
		off:      image.NewUniform(off),
	}
	c.Clear()
	return c
}

// Clear paints the whole surface with the background colour.
func (c *Canvas) Clear() {
	draw.Draw(c.img, c.img.Bounds(), c.off, image.Point{}, draw.Src)
}

// FillCell paints the square for cell (x, y). Cells outside the grid are
// ignored.
func (c *Canvas) FillCell(x, y int) {
	if x < 0 || y < 0 || x >= c.n || y >= c.n {
		return
	}
	r := image.Rect(x*c.cellSize, y*c.cellSize, (x+1)*c.cellSize, (y+1)*c.cellSize)
	draw.Draw(c.img, r, c.on, image.Point{}, draw.Src)
}

// Image returns the painted surface.
func (c *Canvas) Image() *image.RGBA { return c.img }

// WritePNG encodes the surface as PNG.
func (c *Canvas) WritePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}
