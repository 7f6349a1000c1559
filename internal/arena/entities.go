package arena

import "github.com/vovakirdan/pong-bricks/internal/core"

// Paddle is the player-controlled bar near the bottom of the field.
type Paddle struct {
	Pos    core.Vec2
	Width  float64
	Height float64
	Speed  float64
	Color  core.RGB
}

// Box returns the paddle's footprint.
func (p Paddle) Box() core.Box {
	return core.BoxAt(p.Pos, p.Width, p.Height)
}

// BrickKind controls how a brick reacts to being hit.
type BrickKind int

const (
	// Reflective bricks redirect balls and are never removed.
	Reflective BrickKind = iota
	// Destructible bricks redirect balls and switch off on the first hit.
	Destructible
)

// String returns the lowercase name used in config files.
func (k BrickKind) String() string {
	switch k {
	case Reflective:
		return "reflective"
	case Destructible:
		return "destructible"
	default:
		return "unknown"
	}
}

// Brick is a square obstacle with a fixed position.
type Brick struct {
	Pos    core.Vec2
	Width  float64 // side length of the square footprint
	Color  core.RGB
	Kind   BrickKind
	Active bool
}

// NewBrick creates an active brick.
func NewBrick(kind BrickKind, pos core.Vec2, width float64, color core.RGB) Brick {
	return Brick{
		Pos:    pos,
		Width:  width,
		Color:  color,
		Kind:   kind,
		Active: true,
	}
}

// Box returns the brick's square footprint.
func (b Brick) Box() core.Box {
	return core.Square(b.Pos, b.Width)
}

// Ball moves one fixed step per tick along its direction code.
type Ball struct {
	Pos    core.Vec2
	Radius float64
	Speed  float64
	Dir    Direction
	Color  core.RGB
}
