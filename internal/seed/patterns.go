package seed

import "canvas-life/internal/core"

// Pattern is a static list of live-cell coordinates.
type Pattern []core.Point

// Glider is the five-cell spaceship travelling towards +x,+y.
var Glider = Pattern{
	{X: 1, Y: 0},
	{X: 2, Y: 1},
	{X: 0, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2},
}

// RandomScene is a small test scene of two pseudo still lifes overlapped by a
// hacker emblem. Duplicate points are harmless.
var RandomScene = Pattern{
	// pseudo still lifes
	{X: 2, Y: 1}, {X: 2, Y: 4},
	{X: 3, Y: 1}, {X: 3, Y: 2}, {X: 3, Y: 3}, {X: 3, Y: 4},
	{X: 5, Y: 1}, {X: 5, Y: 2}, {X: 5, Y: 3}, {X: 5, Y: 4},
	{X: 6, Y: 1}, {X: 6, Y: 4},
	// hacker emblem
	{X: 1, Y: 3}, {X: 2, Y: 1}, {X: 2, Y: 3}, {X: 3, Y: 2}, {X: 3, Y: 3},
}

// Seeder returns a Seeder that marks the pattern's cells. Points that fall
// outside the n×n grid are dropped.
func (p Pattern) Seeder() Seeder {
	return func(cells []bool, n int) []bool {
		for _, pt := range p {
			if pt.X < 0 || pt.Y < 0 || pt.X >= n || pt.Y >= n {
				continue
			}
			cells[n*pt.Y+pt.X] = true
		}
		return cells
	}
}
