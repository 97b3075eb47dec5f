// Package core provides fundamental types and utilities for the RoboRun game.
// It contains no external dependencies (especially no Bubble Tea or Ebitengine)
// to keep game logic pure and testable.
package core

import "math"

// Vec is a point or displacement in logical canvas units.
type Vec struct {
	X, Y float64
}

// Rect represents an axis-aligned bounding box used for collision detection.
// Coordinates are logical canvas units, not terminal cells or device pixels.
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

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec {
	return Vec{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Expand grows the rectangle by m on every side.
func (r Rect) Expand(m float64) Rect {
	return Rect{X: r.X - m, Y: r.Y - m, W: r.W + 2*m, H: r.H + 2*m}
}

// Inset shrinks the rectangle by m on every side.
func (r Rect) Inset(m float64) Rect {
	return r.Expand(-m)
}

// Corners returns the four corners followed by the center.
func (r Rect) Corners() [5]Vec {
	return [5]Vec{
		{r.X, r.Y},
		{r.Right(), r.Y},
		{r.X, r.Bottom()},
		{r.Right(), r.Bottom()},
		r.Center(),
	}
}

// Intersects returns true if this rectangle overlaps with another.
// Edges are half-open: rectangles that only touch do not intersect.
func (r Rect) Intersects(other Rect) bool {
	return Overlaps(r, other)
}

// Overlaps is the standard AABB test.
func Overlaps(a, b Rect) bool {
	return a.X < b.Right() && a.Right() > b.X &&
		a.Y < b.Bottom() && a.Bottom() > b.Y
}

// SegmentPointDistance returns the distance from p to the closest point of
// the segment a-b. A degenerate segment behaves like the point a.
func SegmentPointDistance(p, a, b Vec) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	denom := dx*dx + dy*dy
	t := 0.0
	if denom > 0 {
		t = ClampF(((p.X-a.X)*dx+(p.Y-a.Y)*dy)/denom, 0, 1)
	}
	cx, cy := a.X+t*dx, a.Y+t*dy
	return math.Hypot(p.X-cx, p.Y-cy)
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

// Sign returns -1, 0 or 1.
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
