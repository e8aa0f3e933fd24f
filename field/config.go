package field

import (
	"fmt"

	"github.com/pthm-cable/cellfield/config"
	"github.com/pthm-cable/cellfield/worley"
)

// FromConfig maps a loaded configuration to evaluation parameters.
func FromConfig(cfg *config.Config) (Params, error) {
	policy, err := parsePolicy(cfg.Field.Policy)
	if err != nil {
		return Params{}, err
	}
	mode, err := parseBoundary(cfg.Field.Boundary)
	if err != nil {
		return Params{}, err
	}

	p := Params{
		Seed:   cfg.Seed,
		Width:  cfg.Resolution.Width,
		Height: cfg.Resolution.Height,

		Policy:    policy,
		CellSize:  worley.Vec2{X: cfg.Field.Cells.X, Y: cfg.Field.Cells.Y},
		CellCount: worley.IntVec2{X: cfg.Field.CellCount.X, Y: cfg.Field.CellCount.Y},
		Depth:     cfg.Field.Depth,
		Growth:    cfg.Field.Growth,

		Boundary: worley.Boundary{
			Mode:   mode,
			Extent: worley.IntVec2{X: cfg.Field.Extent.X, Y: cfg.Field.Extent.Y},
		},
		Warp: WarpParams{
			Enabled:   cfg.Warp.Enabled,
			Amplitude: cfg.Warp.Amplitude,
			Frequency: cfg.Warp.Frequency,
		},

		MaxDist:   cfg.Falloff.MaxDist,
		DistPower: cfg.Falloff.DistPower,

		RowThreshold: cfg.Parallel.RowThreshold,
	}
	if err := p.Validate(); err != nil {
		return Params{}, fmt.Errorf("field: %w", err)
	}
	return p, nil
}

func parsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case PolicyContinuous, PolicyGrid:
		return Policy(s), nil
	default:
		return "", fmt.Errorf("field: unknown policy %q (want %q or %q)", s, PolicyContinuous, PolicyGrid)
	}
}

func parseBoundary(s string) (worley.BoundaryMode, error) {
	switch s {
	case "", "unbounded":
		return worley.Unbounded, nil
	case "clamp":
		return worley.Clamp, nil
	case "wrap":
		return worley.Wrap, nil
	default:
		return 0, fmt.Errorf("field: unknown boundary mode %q (want unbounded, clamp or wrap)", s)
	}
}
