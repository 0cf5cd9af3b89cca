package render

import (
	"bytes"
	"io"

	"github.com/logrusorgru/aurora"
)

// Terminal renders a frame as text, one glyph per cell and one line per row.
type Terminal struct {
	n     int
	cells []bool

	liveFiller string
	deadFiller string
}

// NewTerminal returns a text sink for an n×n grid. colors toggles ANSI
// escape sequences.
func NewTerminal(n int, colors bool) *Terminal {
	au := aurora.NewAurora(colors)
	return &Terminal{
		n:          n,
		cells:      make([]bool, n*n),
		liveFiller: au.Green("█").String(),
		deadFiller: au.BrightBlack("·").String(),
	}
}

// Clear kills every cell of the pending frame.
func (t *Terminal) Clear() { clear(t.cells) }

// FillCell marks (x, y) alive. Cells outside the grid are ignored.
func (t *Terminal) FillCell(x, y int) {
	if x < 0 || y < 0 || x >= t.n || y >= t.n {
		return
	}
	t.cells[t.n*y+x] = true
}

// WriteTo writes the frame to w.
func (t *Terminal) WriteTo(w io.Writer) (int64, error) {
	var b bytes.Buffer
	for y := 0; y < t.n; y++ {
		for x := 0; x < t.n; x++ {
			if t.cells[t.n*y+x] {
				b.WriteString(t.liveFiller)
			} else {
				b.WriteString(t.deadFiller)
			}
		}
		b.WriteByte('\n')
	}
	return b.WriteTo(w)
}

// String returns the frame as text.
func (t *Terminal) String() string {
	var b bytes.Buffer
	_, _ = t.WriteTo(&b)
	return b.String()
}
