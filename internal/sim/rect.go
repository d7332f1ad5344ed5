// Package sim implements the fledge simulation engine: a clamped wall-clock
// tick source, the falling actor, a fixed-capacity obstacle pool, the
// collision/scoring rule, and the phase state machine that orchestrates them.
// It contains no rendering, audio, or I/O so the whole engine is testable
// with fixed time steps.
package sim

// Rect is an axis-aligned bounding box in world coordinates.
type Rect struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// NewRect creates a rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
// Touching edges do not count as overlap.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Shrink returns the rectangle reduced inward by m on all sides.
// A margin larger than half the extent collapses that axis to zero size.
func (r Rect) Shrink(m float64) Rect {
	if m <= 0 {
		return r
	}
	w := r.W - 2*m
	h := r.H - 2*m
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Rect{
		X: r.X + (r.W-w)/2,
		Y: r.Y + (r.H-h)/2,
		W: w,
		H: h,
	}
}
