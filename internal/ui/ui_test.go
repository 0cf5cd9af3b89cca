package ui

import (
	"slices"
	"testing"

	"canvas-life/internal/core"
)

func TestNeighbourTint(t *testing.T) {
	if c := neighbourTint(0); c.A != 0 {
		t.Fatalf("zero neighbours must be transparent, got %v", c)
	}
	prev := uint8(0)
	for n := 1; n <= 8; n++ {
		c := neighbourTint(n)
		if c.A <= prev {
			t.Fatalf("alpha for %d neighbours (%d) must exceed %d", n, c.A, prev)
		}
		prev = c.A
	}
	if neighbourTint(12) != neighbourTint(8) {
		t.Fatal("counts above 8 must clamp")
	}
	if neighbourTint(3) == neighbourTint(4) {
		t.Fatal("birth count must stand out")
	}
}

func TestHUDLines(t *testing.T) {
	snap := core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Grid", Params: []core.Parameter{{Key: "size", Label: "Size", Value: "50x50"}}},
		{Name: "Run", Params: []core.Parameter{{Key: "generation", Label: "Generation", Value: "7"}}},
	}}
	got := hudLines(snap, true)
	want := []string{"Grid", "  Size: 50x50", "", "Run", "  Generation: 7", "", "paused"}
	if !slices.Equal(got, want) {
		t.Fatalf("lines = %q, expected %q", got, want)
	}
}
