// Package core provides fundamental types and utilities shared by the arena
// simulation and its hosts. It has no external dependencies (especially no
// Bubble Tea or Ebiten) so simulation logic stays pure and testable.
package core

import "math"

// Vec2 is a 2D point or extent in normalized device coordinates.
// Values are copied, never shared.
type Vec2 struct {
	X, Y float64
}

// V2 is shorthand for Vec2{X: x, Y: y}.
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Box is an axis-aligned box described by its center and full size.
type Box struct {
	Center Vec2
	Size   Vec2
}

// BoxAt returns a box centered on c with width w and height h.
func BoxAt(c Vec2, w, h float64) Box {
	return Box{Center: c, Size: Vec2{X: w, Y: h}}
}

// Square returns a box centered on c with equal sides.
func Square(c Vec2, side float64) Box {
	return BoxAt(c, side, side)
}

// Left returns the x-coordinate of the left edge.
func (b Box) Left() float64 { return b.Center.X - b.Size.X/2 }

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 { return b.Center.X + b.Size.X/2 }

// Bottom returns the y-coordinate of the bottom edge (y grows upward).
func (b Box) Bottom() float64 { return b.Center.Y - b.Size.Y/2 }

// Top returns the y-coordinate of the top edge.
func (b Box) Top() float64 { return b.Center.Y + b.Size.Y/2 }

// ContainsStrict reports whether p lies strictly inside the box.
// Points on an edge are outside.
func (b Box) ContainsStrict(p Vec2) bool {
	return p.X > b.Left() && p.X < b.Right() &&
		p.Y > b.Bottom() && p.Y < b.Top()
}

// Rect is an integer rectangle in screen cells, used for terminal drawing.
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

// Round rounds half away from zero and converts to int.
func Round(v float64) int {
	return int(math.Round(v))
}
