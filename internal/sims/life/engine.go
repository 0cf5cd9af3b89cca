package life

import "canvas-life/internal/core"

const (
	minSurvive = 2
	maxSurvive = 3
	birthCount = 3
)

// Offsets returns the eight linear neighbour offsets for a row length of n.
func Offsets(n int) [8]int {
	return [8]int{-(n - 1), -n, -(n + 1), -1, 1, n - 1, n, n + 1}
}

// CountLiveNeighbours counts live cells of the previous generation around idx.
//
// Only the linear index is bounds-checked. A neighbour of a cell in the first
// or last column therefore lands in the adjacent row on the opposite edge and
// is counted whenever that index is inside the grid.
func CountLiveNeighbours(g *core.Grid, idx int) int {
	return countLive(g.Cells(core.Previous), Offsets(g.Side()), idx)
}

func countLive(prev []bool, offsets [8]int, idx int) int {
	count := 0
	for _, off := range offsets {
		nb := idx + off
		if nb < 0 || nb >= len(prev) {
			continue
		}
		if prev[nb] {
			count++
		}
	}
	return count
}

// NextState applies the B3/S23 transition to one cell.
func NextState(alive bool, neighbours int) bool {
	if alive {
		return neighbours >= minSurvive && neighbours <= maxSurvive
	}
	return neighbours == birthCount
}

// Step writes the generation following Previous into Current. Current is
// fully overwritten and never read.
func Step(g *core.Grid) {
	prev, cur := g.Cells(core.Previous), g.Cells(core.Current)
	offsets := Offsets(g.Side())
	for idx, alive := range prev {
		cur[idx] = NextState(alive, countLive(prev, offsets, idx))
	}
}
