// Package core provides fundamental types and utilities for the gridwalk
// platform. It contains no Bubble Tea dependency to keep rendering targets
// pure and testable.
package core

// Rect represents an axis-aligned area on the screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Centered returns a w x h rectangle centered inside r.
// Offsets never go negative, so oversized content stays top-left aligned.
func (r Rect) Centered(w, h int) Rect {
	return Rect{
		X: r.X + Clamp((r.W-w)/2, 0, r.W),
		Y: r.Y + Clamp((r.H-h)/2, 0, r.H),
		W: w,
		H: h,
	}
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
