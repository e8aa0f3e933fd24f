package field

import "math"

// Shade maps a raw distance to a [0, 1] intensity with the inverse falloff
// (1 - dist/maxDist)^power. Distances at or beyond maxDist shade to 0.
func Shade(dist, maxDist, power float64) float64 {
	if maxDist <= 0 {
		return 0
	}
	v := 1 - dist/maxDist
	if v <= 0 {
		return 0
	}
	if v > 1 {
		v = 1
	}
	return math.Pow(v, power)
}
