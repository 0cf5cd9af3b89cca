package seed

import (
	"github.com/aquilax/go-perlin"

	"canvas-life/internal/core"
)

const (
	noiseAlpha  = 2.0
	noiseBeta   = 2.0
	noiseOctave = 3
	noiseScale  = 0.15
)

// Random marks each cell alive with probability density. The same seed always
// yields the same board.
func Random(seed int64, density float64) Seeder {
	return func(cells []bool, n int) []bool {
		core.NewRNG(seed).FillLive(cells, density)
		return cells
	}
}

// Noise thresholds a Perlin noise field so live cells form blobs rather than
// salt-and-pepper. Higher densities lower the threshold.
func Noise(seed int64, density float64) Seeder {
	// Noise2D is roughly in [-0.5, 0.5].
	threshold := 0.5 - density
	return func(cells []bool, n int) []bool {
		p := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctave, seed)
		for y := 0; y < n; y++ {
			for x := 0; x < n; x++ {
				cells[n*y+x] = p.Noise2D(float64(x)*noiseScale, float64(y)*noiseScale) > threshold
			}
		}
		return cells
	}
}
