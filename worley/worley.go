package worley

import (
	"fmt"
	"math"
)

// BoundaryMode selects how neighbor coordinates outside a finite grid are
// treated during the 3x3 scan.
type BoundaryMode int

const (
	// Unbounded treats the grid as infinite; every integer cell exists.
	Unbounded BoundaryMode = iota
	// Clamp pins out-of-range neighbors to [0, Extent). Border cells get
	// biased toward the interior, so callers opt in explicitly.
	Clamp
	// Wrap folds neighbor coordinates modulo Extent. The wrapped cell's
	// center is placed in the unwrapped neighbor square, which keeps the
	// field geometrically continuous and makes it tileable.
	Wrap
)

func (m BoundaryMode) String() string {
	switch m {
	case Unbounded:
		return "unbounded"
	case Clamp:
		return "clamp"
	case Wrap:
		return "wrap"
	default:
		return fmt.Sprintf("BoundaryMode(%d)", int(m))
	}
}

// Boundary configures the grid-edge policy for a search. Extent is the grid
// size in cells per axis and is required for Clamp and Wrap.
type Boundary struct {
	Mode   BoundaryMode
	Extent IntVec2
}

// resolve maps a raw neighbor coordinate to the cell identity used for
// hashing and the square the candidate center is placed in.
func (b Boundary) resolve(n IntVec2) (id, square IntVec2) {
	switch b.Mode {
	case Clamp:
		c := IntVec2{
			X: clampInt(n.X, 0, b.Extent.X-1),
			Y: clampInt(n.Y, 0, b.Extent.Y-1),
		}
		return c, c
	case Wrap:
		w := IntVec2{
			X: modInt(n.X, b.Extent.X),
			Y: modInt(n.Y, b.Extent.Y),
		}
		return w, n
	default:
		return n, n
	}
}

func (b Boundary) mustValid() {
	if b.Mode == Unbounded {
		return
	}
	if b.Extent.X <= 0 || b.Extent.Y <= 0 {
		panic(fmt.Sprintf("worley: boundary mode %v requires a positive extent, got %+v", b.Mode, b.Extent))
	}
}

func mustPositiveSize(cellSize Vec2) {
	if !(cellSize.X > 0) || !(cellSize.Y > 0) {
		panic(fmt.Sprintf("worley: cell size must have positive components, got %+v", cellSize))
	}
}

// Nearest performs a single-level Worley search. It finds the cell containing
// sample by floor division, scans the 3x3 neighborhood around it and returns
// the cell whose center is closest to sample plus that Euclidean distance.
// Sample and cellSize must use the same units.
//
// Ties break by iteration order (first minimum wins). The 3x3 scan finds the
// true nearest center provided each cell's center lies inside its own unit
// square, which CellCenter guarantees.
func Nearest(sample Vec2, cellSize Vec2, seed uint64, b Boundary) (IntVec2, float64) {
	mustPositiveSize(cellSize)
	b.mustValid()

	base := IntVec2{
		X: int(math.Floor(sample.X / cellSize.X)),
		Y: int(math.Floor(sample.Y / cellSize.Y)),
	}

	bestDist := math.Inf(1)
	var bestCell IntVec2
	for xo := -1; xo <= 1; xo++ {
		for yo := -1; yo <= 1; yo++ {
			id, square := b.resolve(IntVec2{base.X + xo, base.Y + yo})
			center := CellCenter(id, seed)
			world := Vec2{
				X: (float64(square.X) + center.X) * cellSize.X,
				Y: (float64(square.Y) + center.Y) * cellSize.Y,
			}
			if d := world.Sub(sample).Length(); d < bestDist {
				bestCell = id
				bestDist = d
			}
		}
	}
	return bestCell, bestDist
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func modInt(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}
