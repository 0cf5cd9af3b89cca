package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sink is a raster surface that paints live cells. Render clears it once per
// frame and then fills one square per live cell.
type Sink interface {
	Clear()
	FillCell(x, y int)
}

// Render paints every live cell of buffer b onto sink.
func Render(sink Sink, g *Grid, b Buffer) {
	sink.Clear()
	g.ForEachLive(b, sink.FillCell)
}

// Sim defines the contract a driver loop relies on. Each tick the driver
// calls Step, paints the Frame buffer, then calls Commit.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Commit()
	Frame() Buffer
	Grid() *Grid
	Generation() int
}
