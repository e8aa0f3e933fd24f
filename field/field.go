package field

import (
	"fmt"

	"github.com/pthm-cable/cellfield/worley"
)

// Policy selects the hierarchical composition mode.
type Policy string

const (
	// PolicyContinuous divides the cell size by a growth factor per level
	// and blends distances across levels.
	PolicyContinuous Policy = "continuous"
	// PolicyGrid doubles the cell count per level in normalized space and
	// returns the coarsest level's distance unblended, producing sharper
	// nested boundaries.
	PolicyGrid Policy = "grid"
)

// Sample is one evaluated field point: the winning cell and its raw
// distance. Distances are unnormalized; apply Shade or a caller-side falloff
// for display.
type Sample struct {
	Cell     worley.IntVec2
	Distance float64
}

// Params configures a field evaluation.
type Params struct {
	Seed   uint64
	Width  int
	Height int

	Policy    Policy
	CellSize  worley.Vec2    // continuous policy: sample-space units per cell
	CellCount worley.IntVec2 // grid policy: coarsest grid resolution
	Depth     int
	Growth    float64 // continuous policy only

	Boundary worley.Boundary // grid policy uses Mode only; extent is per level
	Warp     WarpParams

	MaxDist   float64 // falloff shaping range
	DistPower float64 // falloff exponent

	RowThreshold int // minimum rows before the worker pool kicks in; 0 = default
}

// Validate reports the first invalid parameter. The worley core panics on
// domain errors, so batch callers validate here first.
func (p Params) Validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("resolution must be positive, got %dx%d", p.Width, p.Height)
	}
	if p.Depth < 0 || p.Depth > worley.MaxDepth {
		return fmt.Errorf("depth must be in [0, %d], got %d", worley.MaxDepth, p.Depth)
	}
	switch p.Policy {
	case PolicyContinuous:
		if !(p.CellSize.X > 0) || !(p.CellSize.Y > 0) {
			return fmt.Errorf("cell size must have positive components, got %+v", p.CellSize)
		}
		if p.Depth > 0 && !(p.Growth > 1) {
			return fmt.Errorf("growth must be > 1 for depth > 0, got %v", p.Growth)
		}
	case PolicyGrid:
		if p.CellCount.X <= 0 || p.CellCount.Y <= 0 {
			return fmt.Errorf("cell count must have positive components, got %+v", p.CellCount)
		}
	default:
		return fmt.Errorf("unknown policy %q", p.Policy)
	}
	if p.Boundary.Mode != worley.Unbounded && p.Policy == PolicyContinuous {
		if p.Boundary.Extent.X <= 0 || p.Boundary.Extent.Y <= 0 {
			return fmt.Errorf("boundary mode %v requires a positive extent, got %+v", p.Boundary.Mode, p.Boundary.Extent)
		}
	}
	if err := p.Warp.validate(); err != nil {
		return err
	}
	if p.MaxDist < 0 || p.DistPower < 0 {
		return fmt.Errorf("falloff parameters must be non-negative, got max_dist=%v dist_power=%v", p.MaxDist, p.DistPower)
	}
	return nil
}

// Evaluator runs batch field evaluations for one parameter set. It is safe
// to call SampleAt concurrently; Evaluate runs one batch at a time.
type Evaluator struct {
	p    Params
	warp *Warp
	pool *workerPool
}

// New validates the parameters and builds an evaluator.
func New(p Params) (*Evaluator, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("field: %w", err)
	}
	e := &Evaluator{p: p, pool: newWorkerPool()}
	if p.Warp.Enabled {
		e.warp = NewWarp(p.Seed, p.Warp)
	}
	return e, nil
}

// Params returns the evaluator's configuration.
func (e *Evaluator) Params() Params {
	return e.p
}

// Close stops the worker pool. The evaluator must not be used afterwards.
func (e *Evaluator) Close() {
	e.pool.stop()
}

// SampleAt evaluates the field at pixel (x, y).
func (e *Evaluator) SampleAt(x, y int) Sample {
	if e.p.Policy == PolicyGrid {
		// Grid policy samples the unit square at pixel centers.
		pos := worley.Vec2{
			X: (float64(x) + 0.5) / float64(e.p.Width),
			Y: (float64(y) + 0.5) / float64(e.p.Height),
		}
		pos = e.warp.Displace(pos)
		cell, dist := worley.HierarchicalGrid(pos, e.p.CellCount, e.p.Seed, e.p.Depth, e.p.Boundary.Mode)
		return Sample{Cell: cell, Distance: dist}
	}

	pos := e.warp.Displace(worley.Vec2{X: float64(x), Y: float64(y)})
	cell, dist := worley.Hierarchical(pos, e.p.CellSize, e.p.Seed, e.p.Depth, e.p.Growth, e.p.Boundary)
	return Sample{Cell: cell, Distance: dist}
}

// Evaluate fills a Width x Height buffer with field samples, dispatching
// rows to the worker pool when the grid is tall enough to pay for it.
func (e *Evaluator) Evaluate() *Buffer[Sample] {
	buf := NewBuffer[Sample](e.p.Width, e.p.Height)

	threshold := e.p.RowThreshold
	if threshold <= 0 {
		threshold = defaultRowThreshold
	}
	if e.p.Height < threshold {
		e.evaluateRows(buf, 0, e.p.Height)
		return buf
	}
	e.pool.evaluate(e, buf)
	return buf
}

// evaluateRows fills the half-open row range [startRow, endRow).
func (e *Evaluator) evaluateRows(buf *Buffer[Sample], startRow, endRow int) {
	for y := startRow; y < endRow; y++ {
		row := y * buf.Width
		for x := 0; x < buf.Width; x++ {
			buf.Data[row+x] = e.SampleAt(x, y)
		}
	}
}

// Shade maps a sample's distance to intensity using the configured falloff.
func (e *Evaluator) Shade(s Sample) float64 {
	return Shade(s.Distance, e.p.MaxDist, e.p.DistPower)
}
