package core

import "fmt"

// Buffer names one of the two generation buffers held by a Grid.
type Buffer int

const (
	// Previous holds generation g and is read by the engine.
	Previous Buffer = iota
	// Current receives generation g+1 during a step.
	Current
)

func (b Buffer) String() string {
	switch b {
	case Previous:
		return "previous"
	case Current:
		return "current"
	}
	return fmt.Sprintf("Buffer(%d)", int(b))
}

// Point is a cell coordinate.
type Point struct {
	X, Y int
}

// Grid stores two consecutive generations of an N×N board in row-major order.
// Both buffers always hold exactly N*N cells.
type Grid struct {
	n    int
	prev []bool
	cur  []bool
}

// NewGrid allocates an all-dead grid with side n.
func NewGrid(n int) (*Grid, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: side %d", ErrInvalidSize, n)
	}
	return &Grid{n: n, prev: make([]bool, n*n), cur: make([]bool, n*n)}, nil
}

// Side returns N.
func (g *Grid) Side() int { return g.n }

// Len returns the number of cells per buffer.
func (g *Grid) Len() int { return len(g.prev) }

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.n, H: g.n} }

// Index returns the linear index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return g.n*y + x }

// Coords converts a linear index back to coordinates.
func (g *Grid) Coords(idx int) (int, int) { return idx % g.n, idx / g.n }

// Cells exposes the backing slice of the named buffer. The engine and the
// renderers read it directly; callers must not change its length.
func (g *Grid) Cells(b Buffer) []bool {
	if b == Current {
		return g.cur
	}
	return g.prev
}

// Get reports whether the cell at (x, y) is alive in buffer b.
func (g *Grid) Get(b Buffer, x, y int) (bool, error) {
	if err := g.checkXY(x, y); err != nil {
		return false, err
	}
	return g.Cells(b)[g.Index(x, y)], nil
}

// Set changes the cell at (x, y) in buffer b.
func (g *Grid) Set(b Buffer, x, y int, alive bool) error {
	if err := g.checkXY(x, y); err != nil {
		return err
	}
	g.Cells(b)[g.Index(x, y)] = alive
	return nil
}

// GetIndex reports whether the cell at linear index idx is alive in buffer b.
func (g *Grid) GetIndex(b Buffer, idx int) (bool, error) {
	if idx < 0 || idx >= g.Len() {
		return false, fmt.Errorf("%w: index %d not in [0,%d)", ErrOutOfRange, idx, g.Len())
	}
	return g.Cells(b)[idx], nil
}

// SetIndex changes the cell at linear index idx in buffer b.
func (g *Grid) SetIndex(b Buffer, idx int, alive bool) error {
	if idx < 0 || idx >= g.Len() {
		return fmt.Errorf("%w: index %d not in [0,%d)", ErrOutOfRange, idx, g.Len())
	}
	g.Cells(b)[idx] = alive
	return nil
}

// Load copies a seeded generation into Previous.
func (g *Grid) Load(cells []bool) error {
	if len(cells) != g.Len() {
		return fmt.Errorf("%w: seed has %d cells, grid has %d", ErrInvalidSize, len(cells), g.Len())
	}
	copy(g.prev, cells)
	return nil
}

// Commit makes the current generation the previous one. The buffers are
// swapped and the new Current is cleared for the next engine pass.
func (g *Grid) Commit() {
	g.prev, g.cur = g.cur, g.prev
	clear(g.cur)
}

// Clear kills every cell in both buffers.
func (g *Grid) Clear() {
	clear(g.prev)
	clear(g.cur)
}

// ForEachLive calls fn with the coordinates of every live cell in buffer b,
// in row-major order.
func (g *Grid) ForEachLive(b Buffer, fn func(x, y int)) {
	for idx, alive := range g.Cells(b) {
		if alive {
			fn(idx%g.n, idx/g.n)
		}
	}
}

// LiveCells returns the coordinates of every live cell in buffer b.
func (g *Grid) LiveCells(b Buffer) []Point {
	var pts []Point
	g.ForEachLive(b, func(x, y int) { pts = append(pts, Point{X: x, Y: y}) })
	return pts
}

// LiveCount returns the number of live cells in buffer b.
func (g *Grid) LiveCount(b Buffer) int {
	count := 0
	for _, alive := range g.Cells(b) {
		if alive {
			count++
		}
	}
	return count
}

func (g *Grid) checkXY(x, y int) error {
	if x < 0 || x >= g.n || y < 0 || y >= g.n {
		return fmt.Errorf("%w: (%d,%d) outside %dx%d grid", ErrOutOfRange, x, y, g.n, g.n)
	}
	return nil
}
