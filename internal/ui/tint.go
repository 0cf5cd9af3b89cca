package ui

import (
	"image/color"
	"math"
)

const maxNeighbours = 8

// neighbourTint maps a live neighbour count to an overlay colour. Zero is
// transparent; counts that would give birth or survival are highlighted.
func neighbourTint(count int) color.RGBA {
	if count <= 0 {
		return color.RGBA{}
	}
	if count > maxNeighbours {
		count = maxNeighbours
	}
	const maxAlpha = 160.0
	alpha := uint8(math.Round(maxAlpha * float64(count) / maxNeighbours))
	switch count {
	case 2:
		return color.RGBA{R: 64, G: 164, B: 223, A: alpha}
	case 3:
		return color.RGBA{R: 90, G: 200, B: 90, A: alpha}
	}
	return color.RGBA{R: 255, G: 120, B: 40, A: alpha}
}
