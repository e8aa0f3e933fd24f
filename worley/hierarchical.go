package worley

import "fmt"

// MaxDepth bounds the composition recursion. Queries use plain recursion on
// the caller's stack, so depth stays small and caller-supplied.
const MaxDepth = 16

// Blend weights for the continuous-growth policy. Weights chain across
// depths rather than renormalizing; with the zero base contribution the
// accumulated weight over d levels is 1 - 0.75^d.
const (
	coarseWeight = 0.25
	fineWeight   = 0.75
)

func mustDepth(depth int) {
	if depth < 0 || depth > MaxDepth {
		panic(fmt.Sprintf("worley: depth must be in [0, %d], got %d", MaxDepth, depth))
	}
}

// Hierarchical evaluates the continuous-growth composition. The cell size is
// divided by growth per level, the finest level is evaluated first via full
// recursion, and each coarser level searches at the finer winner's position
// re-projected into world space. Distances blend as
// coarse*0.25 + fineAccumulated*0.75 per step; depth 0 contributes zero, so
// the first blend is effectively the depth-1 distance alone.
//
// Returns the coarsest level's winning cell and the blended distance.
// Panics on non-positive cellSize, depth outside [0, MaxDepth], or
// growth <= 1 when depth > 0.
func Hierarchical(sample Vec2, cellSize Vec2, seed uint64, depth int, growth float64, b Boundary) (IntVec2, float64) {
	mustPositiveSize(cellSize)
	mustDepth(depth)
	if depth > 0 && !(growth > 1) {
		panic(fmt.Sprintf("worley: growth must be > 1 for depth > 0, got %v", growth))
	}
	b.mustValid()
	return hierarchical(sample, cellSize, seed, depth, growth, b)
}

func hierarchical(sample Vec2, cellSize Vec2, seed uint64, depth int, growth float64, b Boundary) (IntVec2, float64) {
	if depth == 0 {
		cell, _ := Nearest(sample, cellSize, seed, b)
		return cell, 0
	}

	finer := cellSize.DivScalar(growth)
	fineCell, fineDist := hierarchical(sample, finer, seed, depth-1, growth, b)

	// The finer winner's grid corner becomes the coarser level's sample.
	reproj := Vec2{
		X: float64(fineCell.X) * finer.X,
		Y: float64(fineCell.Y) * finer.Y,
	}
	cell, dist := Nearest(reproj, cellSize, seed, b)
	return cell, coarseWeight*dist + fineWeight*fineDist
}

// HierarchicalGrid evaluates the doubling-grid composition in normalized
// space: sample lies in the unit square and cellCount is the coarsest grid
// resolution. Each finer level doubles the cell count, so the finest level
// holds cellCount << depth cells and is evaluated first. Going coarser, the
// finer level's winning cell is renormalized to [0, 1) and fed to an
// independent search at that level; no distances blend.
//
// Returns the finest-level cell (a valid index into the cellCount << depth
// grid when the boundary is bounded) with the coarsest level's distance.
// The boundary extent, when bounded, is set to each level's cell count.
func HierarchicalGrid(sample Vec2, cellCount IntVec2, seed uint64, depth int, mode BoundaryMode) (IntVec2, float64) {
	if cellCount.X <= 0 || cellCount.Y <= 0 {
		panic(fmt.Sprintf("worley: cell count must have positive components, got %+v", cellCount))
	}
	mustDepth(depth)
	_, finest, dist := hierarchicalGrid(sample, cellCount, seed, depth, mode)
	return finest, dist
}

func hierarchicalGrid(sample Vec2, count IntVec2, seed uint64, depth int, mode BoundaryMode) (own, finest IntVec2, dist float64) {
	size := Vec2{X: 1 / float64(count.X), Y: 1 / float64(count.Y)}
	b := Boundary{Mode: mode, Extent: count}

	if depth == 0 {
		cell, d := Nearest(sample, size, seed, b)
		return cell, cell, d
	}

	finerCount := IntVec2{count.X * 2, count.Y * 2}
	fineCell, fineFinest, _ := hierarchicalGrid(sample, finerCount, seed, depth-1, mode)

	renorm := Vec2{
		X: float64(fineCell.X) / float64(finerCount.X),
		Y: float64(fineCell.Y) / float64(finerCount.Y),
	}
	cell, d := Nearest(renorm, size, seed, b)
	return cell, fineFinest, d
}
