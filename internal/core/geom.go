// Package core provides fundamental types and utilities shared by the
// simulation and its front-ends. It contains no external dependencies
// (especially no Bubble Tea or ebiten) to keep game logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned bounding box in world units.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
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
// Touching edges do not count as an overlap.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Penetration returns the smallest translation that moves r out of other.
// Exactly one of dx, dy is non-zero when the rectangles overlap; both are
// zero otherwise. Ties between the axes resolve vertically.
func (r Rect) Penetration(other Rect) (dx, dy float64) {
	if !r.Intersects(other) {
		return 0, 0
	}

	pushLeft := other.X - r.Right()   // negative: move r left
	pushRight := other.Right() - r.X  // positive: move r right
	pushUp := other.Y - r.Bottom()    // negative: move r up
	pushDown := other.Bottom() - r.Y  // positive: move r down

	dx = pushRight
	if -pushLeft < pushRight {
		dx = pushLeft
	}
	dy = pushDown
	if -pushUp < pushDown {
		dy = pushUp
	}

	if math.Abs(dy) <= math.Abs(dx) {
		return 0, dy
	}
	return dx, 0
}

// FollowX returns the left edge of a view of width viewW centered on x,
// kept inside bounds. A view wider than bounds sticks to the left edge.
func FollowX(x, viewW float64, bounds Rect) float64 {
	return ClampF(x-viewW/2, bounds.X, math.Max(bounds.X, bounds.Right()-viewW))
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
