// Hash quality checker: measures the avalanche behavior of the cell hash
// over random fixture cells and prints a report.
//
// Usage: go run ./cmd/avalanche -pairs 100000
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"

	"github.com/pthm-cable/cellfield/telemetry"
)

func main() {
	seed := flag.Uint64("seed", 10, "Field seed to measure against")
	pairs := flag.Int("pairs", 50000, "Number of random cell pairs to sample")
	fixtureSeed := flag.Int64("fixture-seed", 1, "RNG seed for fixture cell selection")
	flag.Parse()

	rng := rand.New(rand.NewSource(*fixtureSeed))
	stats, err := telemetry.MeasureAvalanche(*seed, *pairs, rng)
	if err != nil {
		log.Fatalf("avalanche measurement failed: %v", err)
	}

	fmt.Printf("avalanche over %d pairs (seed %d)\n", stats.Pairs, *seed)
	fmt.Printf("  mean flipped bits, x-step:   %6.2f / 64\n", stats.MeanFlippedX)
	fmt.Printf("  mean flipped bits, y-step:   %6.2f / 64\n", stats.MeanFlippedY)
	fmt.Printf("  mean flipped bits, new seed: %6.2f / 64\n", stats.MeanFlippedSeed)
	fmt.Printf("  per-bit flip rate (x-step):  %.3f .. %.3f\n", stats.MinBitRate, stats.MaxBitRate)
}
