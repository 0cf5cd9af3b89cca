package life

import (
	"slices"
	"testing"

	"canvas-life/internal/core"
)

func newGrid(t *testing.T, n int, live ...core.Point) *core.Grid {
	t.Helper()
	g, err := core.NewGrid(n)
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range live {
		if err := g.Set(core.Previous, p.X, p.Y, true); err != nil {
			t.Fatal(err)
		}
	}
	return g
}

func expectLive(t *testing.T, g *core.Grid, b core.Buffer, want []core.Point) {
	t.Helper()
	expects := map[core.Point]bool{}
	for _, p := range want {
		expects[p] = true
	}
	n := g.Side()
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			alive, _ := g.Get(b, x, y)
			if alive != expects[core.Point{X: x, Y: y}] {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, alive, !alive)
			}
		}
	}
}

func TestAllDeadStaysDead(t *testing.T) {
	for _, n := range []int{1, 2, 3, 50} {
		g := newGrid(t, n)
		for k := 0; k < 5; k++ {
			Step(g)
			if g.LiveCount(core.Current) != 0 {
				t.Fatalf("n=%d step %d produced live cells", n, k+1)
			}
			g.Commit()
		}
	}
}

func TestNextState(t *testing.T) {
	for n := 0; n <= 8; n++ {
		if got, want := NextState(true, n), n == 2 || n == 3; got != want {
			t.Fatalf("live cell with %d neighbours -> %v, expected %v", n, got, want)
		}
		if got, want := NextState(false, n), n == 3; got != want {
			t.Fatalf("dead cell with %d neighbours -> %v, expected %v", n, got, want)
		}
	}
}

func TestLShapeOnThreeByThree(t *testing.T) {
	g := newGrid(t, 3,
		core.Point{X: 0, Y: 0}, core.Point{X: 1, Y: 0}, core.Point{X: 2, Y: 0},
		core.Point{X: 1, Y: 1},
	)

	// Corner and edge cells pick up wrapped neighbours from the linear layout.
	wantCounts := []int{3, 3, 3, 4, 3, 3, 2, 1, 1}
	for idx, want := range wantCounts {
		if got := CountLiveNeighbours(g, idx); got != want {
			t.Fatalf("index %d has %d live neighbours, expected %d", idx, got, want)
		}
	}

	Step(g)
	expectLive(t, g, core.Current, []core.Point{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0},
		{X: 1, Y: 1}, {X: 2, Y: 1},
	})
}

func TestBlockSurvives(t *testing.T) {
	block := []core.Point{{X: 2, Y: 2}, {X: 3, Y: 2}, {X: 2, Y: 3}, {X: 3, Y: 3}}
	g := newGrid(t, 6, block...)
	Step(g)
	expectLive(t, g, core.Current, block)
}

func TestBlinkerBirth(t *testing.T) {
	g := newGrid(t, 5, core.Point{X: 2, Y: 1}, core.Point{X: 2, Y: 2}, core.Point{X: 2, Y: 3})
	Step(g)
	expectLive(t, g, core.Current, []core.Point{{X: 1, Y: 2}, {X: 2, Y: 2}, {X: 3, Y: 2}})
}

func TestNeighbourCountBounds(t *testing.T) {
	for _, n := range []int{1, 2, 4, 7} {
		g := newGrid(t, n)
		for i := range g.Cells(core.Previous) {
			g.Cells(core.Previous)[i] = true
		}
		for idx := 0; idx < g.Len(); idx++ {
			c := CountLiveNeighbours(g, idx)
			if c < 0 || c > 8 {
				t.Fatalf("n=%d index %d count %d outside [0,8]", n, idx, c)
			}
		}
	}
	g := newGrid(t, 4)
	for i := range g.Cells(core.Previous) {
		g.Cells(core.Previous)[i] = true
	}
	if c := CountLiveNeighbours(g, g.Index(1, 1)); c != 8 {
		t.Fatalf("interior cell of a full grid has %d neighbours, expected 8", c)
	}
	if c := CountLiveNeighbours(g, 0); c != 4 {
		t.Fatalf("index 0 of a full 4x4 grid has %d neighbours, expected 4", c)
	}
}

func TestLinearWrapAtEdges(t *testing.T) {
	const n = 5
	// (4,0) sits at index n-1, which is index 0's +(n-1) offset.
	g := newGrid(t, n, core.Point{X: n - 1, Y: 0})
	if c := CountLiveNeighbours(g, 0); c != 1 {
		t.Fatalf("index 0 counts %d neighbours, expected 1 from the row wrap", c)
	}

	// The right-edge cell sees the left column of the next two rows.
	g = newGrid(t, n, core.Point{X: 0, Y: 1}, core.Point{X: 0, Y: 2})
	if c := CountLiveNeighbours(g, n-1); c != 2 {
		t.Fatalf("index %d counts %d neighbours, expected 2", n-1, c)
	}

	// Offsets leaving [0, n*n) are skipped.
	g = newGrid(t, n, core.Point{X: 0, Y: 0})
	if c := CountLiveNeighbours(g, g.Len()-1); c != 0 {
		t.Fatalf("last index counts %d neighbours, expected 0", c)
	}
}

func TestGliderTranslates(t *testing.T) {
	g := newGrid(t, 10,
		core.Point{X: 1, Y: 0},
		core.Point{X: 2, Y: 1},
		core.Point{X: 0, Y: 2}, core.Point{X: 1, Y: 2}, core.Point{X: 2, Y: 2},
	)
	for i := 0; i < 4; i++ {
		Step(g)
		g.Commit()
	}
	expectLive(t, g, core.Previous, []core.Point{
		{X: 2, Y: 1},
		{X: 3, Y: 2},
		{X: 1, Y: 3}, {X: 2, Y: 3}, {X: 3, Y: 3},
	})
}

func TestCommitFeedsNextStep(t *testing.T) {
	g := newGrid(t, 5, core.Point{X: 2, Y: 1}, core.Point{X: 2, Y: 2}, core.Point{X: 2, Y: 3})

	Step(g)
	stepped := append([]bool(nil), g.Cells(core.Current)...)
	g.Commit()
	if !slices.Equal(g.Cells(core.Previous), stepped) {
		t.Fatal("previous must equal current as it was right after the step")
	}

	Step(g)
	expectLive(t, g, core.Current, []core.Point{{X: 2, Y: 1}, {X: 2, Y: 2}, {X: 2, Y: 3}})
}

func TestStepIgnoresCurrent(t *testing.T) {
	g := newGrid(t, 4)
	for i := range g.Cells(core.Current) {
		g.Cells(core.Current)[i] = true
	}
	Step(g)
	if g.LiveCount(core.Current) != 0 {
		t.Fatal("step must overwrite current from previous alone")
	}
}
