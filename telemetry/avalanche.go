package telemetry

import (
	"fmt"
	"math/bits"
	"math/rand"

	"github.com/pthm-cable/cellfield/worley"
)

// AvalancheStats reports how many hash output bits flip under small input
// changes, measured over randomly sampled cells. A well-mixed hash flips
// roughly 32 of 64 bits per step on average. The per-bit rates are reported
// for inspection only: a +1 coordinate step is a constant addition before
// mixing, so individual output bits legitimately flip at rates far from 0.5
// even when the aggregate diffusion is healthy.
type AvalancheStats struct {
	Pairs           int     `csv:"pairs"`
	MeanFlippedX    float64 `csv:"mean_flipped_x"`    // +1 step on the x axis
	MeanFlippedY    float64 `csv:"mean_flipped_y"`    // +1 step on the y axis
	MeanFlippedSeed float64 `csv:"mean_flipped_seed"` // random seed pair
	MinBitRate      float64 `csv:"min_bit_rate"`      // lowest per-bit flip rate (x step)
	MaxBitRate      float64 `csv:"max_bit_rate"`      // highest per-bit flip rate (x step)
}

// MeasureAvalanche samples pairs of adjacent cells and measures output bit
// flips for a +1 step on each axis and for re-hashing the same cell under an
// independent random seed. The rng picks fixture cells and comparison seeds;
// the hash itself is deterministic.
func MeasureAvalanche(seed uint64, pairs int, rng *rand.Rand) (AvalancheStats, error) {
	if pairs <= 0 {
		return AvalancheStats{}, fmt.Errorf("telemetry: pairs must be positive, got %d", pairs)
	}

	var flippedX, flippedY, flippedSeed int
	var bitFlips [64]int

	for i := 0; i < pairs; i++ {
		cell := worley.IntVec2{
			X: rng.Intn(1<<20) - 1<<19,
			Y: rng.Intn(1<<20) - 1<<19,
		}
		h := worley.CellHash(cell, seed)

		dx := h ^ worley.CellHash(worley.IntVec2{X: cell.X + 1, Y: cell.Y}, seed)
		flippedX += bits.OnesCount64(dx)
		for b := 0; b < 64; b++ {
			if dx&(1<<uint(b)) != 0 {
				bitFlips[b]++
			}
		}

		dy := h ^ worley.CellHash(worley.IntVec2{X: cell.X, Y: cell.Y + 1}, seed)
		flippedY += bits.OnesCount64(dy)

		ds := h ^ worley.CellHash(cell, rng.Uint64())
		flippedSeed += bits.OnesCount64(ds)
	}

	minRate, maxRate := 1.0, 0.0
	for _, n := range bitFlips {
		rate := float64(n) / float64(pairs)
		if rate < minRate {
			minRate = rate
		}
		if rate > maxRate {
			maxRate = rate
		}
	}

	return AvalancheStats{
		Pairs:           pairs,
		MeanFlippedX:    float64(flippedX) / float64(pairs),
		MeanFlippedY:    float64(flippedY) / float64(pairs),
		MeanFlippedSeed: float64(flippedSeed) / float64(pairs),
		MinBitRate:      minRate,
		MaxBitRate:      maxRate,
	}, nil
}
