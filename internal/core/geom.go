// Package core provides fundamental types and utilities for the multitask host.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Point2D is an immutable position in arena coordinates.
type Point2D struct {
	X, Y float64
}

// Distance returns the Euclidean distance between two points.
func (p Point2D) Distance(other Point2D) float64 {
	return math.Hypot(p.X-other.X, p.Y-other.Y)
}

// Add returns p moved by v for the given number of milliseconds.
func (p Point2D) Add(v Vector2D, elapsedMillis int64) Point2D {
	e := float64(elapsedMillis)
	return Point2D{X: p.X + v.DX*e, Y: p.Y + v.DY*e}
}

// Vector2D is an immutable velocity or direction.
// Velocities are expressed in arena units per millisecond.
type Vector2D struct {
	DX, DY float64
}

// NullVector returns the zero vector.
func NullVector() Vector2D {
	return Vector2D{}
}

// Scale multiplies both components by f.
func (v Vector2D) Scale(f float64) Vector2D {
	return Vector2D{DX: v.DX * f, DY: v.DY * f}
}

// Bounds is an axis-aligned arena rectangle in float coordinates.
type Bounds struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// NewBounds creates bounds anchored at the origin with the given size.
func NewBounds(width, height float64) Bounds {
	return Bounds{MaxX: width, MaxY: height}
}

// Width returns the horizontal extent.
func (b Bounds) Width() float64 {
	return b.MaxX - b.MinX
}

// Height returns the vertical extent.
func (b Bounds) Height() float64 {
	return b.MaxY - b.MinY
}

// Contains reports whether p lies inside the bounds (edges inclusive).
func (b Bounds) Contains(p Point2D) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// Inset shrinks the bounds by margin on every side.
// The result never inverts: a margin larger than half the extent collapses to the centre.
func (b Bounds) Inset(margin float64) Bounds {
	in := Bounds{
		MinX: b.MinX + margin,
		MinY: b.MinY + margin,
		MaxX: b.MaxX - margin,
		MaxY: b.MaxY - margin,
	}
	if in.MinX > in.MaxX {
		c := (b.MinX + b.MaxX) / 2
		in.MinX, in.MaxX = c, c
	}
	if in.MinY > in.MaxY {
		c := (b.MinY + b.MaxY) / 2
		in.MinY, in.MaxY = c, c
	}
	return in
}

// Clamp returns the closest point to p inside the bounds.
func (b Bounds) Clamp(p Point2D) Point2D {
	return Point2D{
		X: ClampF(p.X, b.MinX, b.MaxX),
		Y: ClampF(p.Y, b.MinY, b.MaxY),
	}
}

// Rect represents an axis-aligned box in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
