package worley

import "math"

// Vec2 is a 2D point or size in continuous space.
type Vec2 struct {
	X, Y float64
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Length returns the Euclidean length of v.
func (v Vec2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// DivScalar returns v scaled by 1/s.
func (v Vec2) DivScalar(s float64) Vec2 {
	return Vec2{v.X / s, v.Y / s}
}

// IntVec2 indexes a cell in a regular grid at some level of refinement.
type IntVec2 struct {
	X, Y int
}

// Vec2 converts the cell index to continuous coordinates.
func (c IntVec2) Vec2() Vec2 {
	return Vec2{float64(c.X), float64(c.Y)}
}
