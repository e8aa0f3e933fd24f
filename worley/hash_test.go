package worley

import (
	"math"
	"math/bits"
	"math/rand"
	"testing"
)

func TestCellHashDeterministic(t *testing.T) {
	cells := []IntVec2{{0, 0}, {1, 0}, {-3, 7}, {123456, -654321}}
	seeds := []uint64{0, 1, 10, 0xdeadbeef}

	for _, cell := range cells {
		for _, seed := range seeds {
			a := CellHash(cell, seed)
			b := CellHash(cell, seed)
			if a != b {
				t.Errorf("CellHash(%+v, %d) not deterministic: %x vs %x", cell, seed, a, b)
			}
		}
	}
}

func TestCellHashPinned(t *testing.T) {
	// Reference value for the fixed mixing constants; changing the hash
	// silently would invalidate every derived field.
	const want = 0x713364c80be4ca75
	if got := CellHash(IntVec2{0, 0}, 10); got != want {
		t.Errorf("CellHash((0,0), 10) = %#x, want %#x", got, want)
	}
}

func TestCellHashNegativeCoordsNotMirrored(t *testing.T) {
	// Negative coordinates hash via their two's-complement bit pattern, so
	// mirrored cells must not collide.
	pairs := []struct{ a, b IntVec2 }{
		{IntVec2{-1, 0}, IntVec2{1, 0}},
		{IntVec2{0, -1}, IntVec2{0, 1}},
		{IntVec2{-5, -9}, IntVec2{5, 9}},
		{IntVec2{-100, 42}, IntVec2{100, 42}},
	}
	for _, p := range pairs {
		if CellHash(p.a, 7) == CellHash(p.b, 7) {
			t.Errorf("CellHash(%+v) == CellHash(%+v); mirrored cells should not collide", p.a, p.b)
		}
	}
}

func TestCellHashAvalanche(t *testing.T) {
	// A one-step coordinate change or a seed change should flip roughly
	// half the output bits on average. Statistical over many cells, not
	// per-pair. Seed diffusion is measured across random seed pairs; a
	// single seed-bit flip only perturbs one multiplied term and diffuses
	// less than a full multiplier's worth of mixing.
	rng := rand.New(rand.NewSource(1))
	const n = 4000
	const seed = 10

	var flipsX, flipsY, flipsSeed float64
	for i := 0; i < n; i++ {
		cell := IntVec2{rng.Intn(20001) - 10000, rng.Intn(20001) - 10000}
		h := CellHash(cell, seed)
		flipsX += float64(bits.OnesCount64(h ^ CellHash(IntVec2{cell.X + 1, cell.Y}, seed)))
		flipsY += float64(bits.OnesCount64(h ^ CellHash(IntVec2{cell.X, cell.Y + 1}, seed)))
		flipsSeed += float64(bits.OnesCount64(h ^ CellHash(cell, rng.Uint64())))
	}

	for _, tc := range []struct {
		name string
		mean float64
	}{
		{"x-step", flipsX / n},
		{"y-step", flipsY / n},
		{"seed-pair", flipsSeed / n},
	} {
		if tc.mean < 24 || tc.mean > 40 {
			t.Errorf("%s: mean flipped bits = %.2f, want roughly 32", tc.name, tc.mean)
		}
	}
}

func TestCellCenterRange(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 10000; i++ {
		cell := IntVec2{rng.Intn(200001) - 100000, rng.Intn(200001) - 100000}
		seed := rng.Uint64()
		c := CellCenter(cell, seed)
		if c.X < 0 || c.X >= 1 || c.Y < 0 || c.Y >= 1 {
			t.Fatalf("CellCenter(%+v, %d) = %+v outside [0,1)", cell, seed, c)
		}
	}
}

func TestCellCenterPinned(t *testing.T) {
	c := CellCenter(IntVec2{0, 0}, 10)
	wantX := 0.29883946757763624
	wantY := 0.44219045527279377
	if math.Abs(c.X-wantX) > 1e-12 || math.Abs(c.Y-wantY) > 1e-12 {
		t.Errorf("CellCenter((0,0), 10) = %+v, want (%v, %v)", c, wantX, wantY)
	}
}

func TestCellValueRange(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 5000; i++ {
		cell := IntVec2{rng.Intn(2001) - 1000, rng.Intn(2001) - 1000}
		v := CellValue(cell, rng.Uint64())
		if v < 0 || v >= 1 {
			t.Fatalf("CellValue(%+v) = %v outside [0,1)", cell, v)
		}
	}
}
