// Package field evaluates hierarchical Worley fields over sample grids:
// batch evaluation into buffers, parallel row dispatch, optional domain
// warping and distance falloff shaping for downstream consumers.
package field

import "fmt"

// Buffer is a fixed-size width x height grid stored row-major.
type Buffer[T any] struct {
	Width, Height int
	Data          []T
}

// NewBuffer allocates a zeroed buffer. Panics on non-positive dimensions.
func NewBuffer[T any](width, height int) *Buffer[T] {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("field: buffer dimensions must be positive, got %dx%d", width, height))
	}
	return &Buffer[T]{
		Width:  width,
		Height: height,
		Data:   make([]T, width*height),
	}
}

// At returns the value at (x, y).
func (b *Buffer[T]) At(x, y int) T {
	return b.Data[y*b.Width+x]
}

// Set writes the value at (x, y).
func (b *Buffer[T]) Set(x, y int, v T) {
	b.Data[y*b.Width+x] = v
}

// Reset overwrites every element with v.
func (b *Buffer[T]) Reset(v T) {
	for i := range b.Data {
		b.Data[i] = v
	}
}
