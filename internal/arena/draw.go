package arena

import "github.com/vovakirdan/pong-bricks/internal/core"

// EntityKind identifies what an Entity describes.
type EntityKind int

const (
	KindBrick EntityKind = iota
	KindPaddle
	KindBall
)

// Entity is the draw-time view of a paddle, brick or ball.
// Size is the full width and height; Radius is set only for balls.
type Entity struct {
	Kind   EntityKind
	Pos    core.Vec2
	Size   core.Vec2
	Radius float64
	Color  core.RGB
}

// Box returns the entity's bounding box.
func (e Entity) Box() core.Box {
	return core.Box{Center: e.Pos, Size: e.Size}
}

// DrawFunc receives one entity per call.
type DrawFunc func(Entity)

// Draw hands every visible entity to fn: active bricks in declaration order,
// then the paddle, then balls in spawn order. Inactive bricks are skipped.
func (a *Arena) Draw(fn DrawFunc) {
	for _, b := range a.bricks {
		if !b.Active {
			continue
		}
		fn(Entity{
			Kind:  KindBrick,
			Pos:   b.Pos,
			Size:  core.V2(b.Width, b.Width),
			Color: b.Color,
		})
	}

	fn(Entity{
		Kind:  KindPaddle,
		Pos:   a.paddle.Pos,
		Size:  core.V2(a.paddle.Width, a.paddle.Height),
		Color: a.paddle.Color,
	})

	for _, b := range a.balls {
		fn(Entity{
			Kind:   KindBall,
			Pos:    b.Pos,
			Size:   core.V2(2*b.Radius, 2*b.Radius),
			Radius: b.Radius,
			Color:  b.Color,
		})
	}
}
