// Package worley implements a deterministic, seeded cellular (Worley)
// distance field with hierarchical multi-frequency composition.
//
// Every function in this package is pure: results depend only on the
// explicit arguments, so independent queries can run concurrently with no
// synchronization. Nothing is cached; cell centers are recomputed on demand.
package worley

import "math/bits"

// Mixing constants for the cell hash. Large odd multipliers, one per input,
// so that x, y and the seed each influence all 64 output bits.
const (
	hashMulX    = 0xa0761d6478bd642f
	hashMulY    = 0xe7037ed1a0b428db
	hashMulSeed = 0x8ebc6af09c88c6e3
)

// CellHash maps a grid cell plus a seed to a well-distributed 64-bit value.
// Negative coordinates enter as the two's-complement bit pattern of the
// signed value, keeping the mapping bijective across the origin instead of
// mirroring around it.
func CellHash(cell IntVec2, seed uint64) uint64 {
	x := uint64(int64(cell.X)) * hashMulX
	y := uint64(int64(cell.Y)) * hashMulY
	s := seed * hashMulSeed
	x ^= bits.RotateLeft64(y, 25)
	y ^= bits.RotateLeft64(s, 47)
	s ^= bits.RotateLeft64(x, 17)
	return s ^ y
}

// CellCenter returns the distinguished point of a cell as an offset inside
// the cell's own unit square. Both components are in [0, 1); each axis
// consumes its own 32-bit window of the cell hash.
func CellCenter(cell IntVec2, seed uint64) Vec2 {
	h := CellHash(cell, seed)
	const inv = 1.0 / (1 << 32)
	return Vec2{
		X: float64(uint32(h>>12)) * inv,
		Y: float64(uint32(h>>32)) * inv,
	}
}

// CellValue derives a uniform [0, 1) value for a cell from the low hash
// window. Downstream consumers use it to pick per-cell attributes (shade,
// palette index) without instantiating a per-cell RNG.
func CellValue(cell IntVec2, seed uint64) float64 {
	const inv = 1.0 / (1 << 32)
	return float64(uint32(CellHash(cell, seed))) * inv
}
