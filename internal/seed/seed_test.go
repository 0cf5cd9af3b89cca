package seed

import (
	"errors"
	"slices"
	"testing"
)

func live(cells []bool, n int) map[[2]int]bool {
	out := map[[2]int]bool{}
	for i, alive := range cells {
		if alive {
			out[[2]int{i % n, i / n}] = true
		}
	}
	return out
}

func TestGliderCells(t *testing.T) {
	n := 50
	cells := Glider.Seeder()(make([]bool, n*n), n)

	// Same linear indices the glider has always used.
	for _, idx := range []int{1, n + 2, n * 2, n*2 + 1, n*2 + 2} {
		if !cells[idx] {
			t.Fatalf("index %d must be alive", idx)
		}
	}
	if got := len(live(cells, n)); got != 5 {
		t.Fatalf("glider has %d live cells, expected 5", got)
	}
}

func TestRandomSceneCells(t *testing.T) {
	n := 50
	cells := RandomScene.Seeder()(make([]bool, n*n), n)
	got := live(cells, n)
	if len(got) != 14 {
		t.Fatalf("random scene has %d distinct live cells, expected 14", len(got))
	}
	for _, c := range [][2]int{{1, 3}, {2, 1}, {6, 4}, {3, 2}} {
		if !got[c] {
			t.Fatalf("cell %v must be alive", c)
		}
	}
}

func TestPatternDropsOutsidePoints(t *testing.T) {
	cells := Glider.Seeder()(make([]bool, 4), 2)
	want := []bool{false, true, false, false}
	if !slices.Equal(cells, want) {
		t.Fatalf("clipped glider = %v, expected %v", cells, want)
	}
}

func TestRandomDeterministic(t *testing.T) {
	n := 20
	a := Random(7, 0.3)(make([]bool, n*n), n)
	b := Random(7, 0.3)(make([]bool, n*n), n)
	if !slices.Equal(a, b) {
		t.Fatal("same seed must produce the same board")
	}
	count := len(live(a, n))
	if count == 0 || count == n*n {
		t.Fatalf("density 0.3 produced %d live cells", count)
	}
	if empty := Random(7, 0)(make([]bool, n*n), n); len(live(empty, n)) != 0 {
		t.Fatal("density 0 must produce an empty board")
	}
}

func TestNoiseDeterministic(t *testing.T) {
	n := 32
	a := Noise(3, 0.25)(make([]bool, n*n), n)
	b := Noise(3, 0.25)(make([]bool, n*n), n)
	if !slices.Equal(a, b) {
		t.Fatal("same seed must produce the same noise board")
	}
}

func TestLookup(t *testing.T) {
	for _, name := range []string{"glider", "random-scene", "random", "noise"} {
		s, err := Lookup(name, Options{Seed: 1, Density: 0.2})
		if err != nil || s == nil {
			t.Fatalf("Lookup(%q) = %v, %v", name, s, err)
		}
	}
	if _, err := Lookup("gosper", Options{}); !errors.Is(err, ErrUnknownPattern) {
		t.Fatalf("unknown pattern err=%v, expected ErrUnknownPattern", err)
	}
	want := []string{"glider", "noise", "random", "random-scene"}
	if got := Names(); !slices.Equal(got, want) {
		t.Fatalf("Names() = %v, expected %v", got, want)
	}
}
