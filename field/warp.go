package field

import (
	"fmt"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/pthm-cable/cellfield/worley"
)

// WarpParams configures the optional domain warp applied before each query.
type WarpParams struct {
	Enabled   bool
	Amplitude float64 // displacement in sample-space units
	Frequency float64 // noise frequency in inverse sample-space units
}

func (p WarpParams) validate() error {
	if !p.Enabled {
		return nil
	}
	if p.Amplitude < 0 {
		return fmt.Errorf("warp amplitude must be non-negative, got %v", p.Amplitude)
	}
	if !(p.Frequency > 0) {
		return fmt.Errorf("warp frequency must be positive, got %v", p.Frequency)
	}
	return nil
}

// Warp displaces sample positions with two independent simplex channels,
// bending cell boundaries without touching the underlying hashing.
type Warp struct {
	x, y      opensimplex.Noise
	amplitude float64
	frequency float64
}

// NewWarp builds a warp from the field seed; the channel seeds are offset so
// the two axes decorrelate.
func NewWarp(seed uint64, p WarpParams) *Warp {
	return &Warp{
		x:         opensimplex.New(int64(seed)),
		y:         opensimplex.New(int64(seed) + 1),
		amplitude: p.Amplitude,
		frequency: p.Frequency,
	}
}

// Displace returns the warped sample position. A nil warp is a no-op.
func (w *Warp) Displace(pos worley.Vec2) worley.Vec2 {
	if w == nil {
		return pos
	}
	return worley.Vec2{
		X: pos.X + w.x.Eval2(pos.X*w.frequency, pos.Y*w.frequency)*w.amplitude,
		Y: pos.Y + w.y.Eval2(pos.X*w.frequency, pos.Y*w.frequency)*w.amplitude,
	}
}
