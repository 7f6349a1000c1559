package arena

import (
	"github.com/vovakirdan/pong-bricks/internal/core"
)

// Default entity parameters.
const (
	DefaultBallRadius   = 0.05
	DefaultBallSpeed    = 0.03
	DefaultPaddleY      = -0.8
	DefaultPaddleWidth  = 0.3
	DefaultPaddleHeight = 0.05
	DefaultPaddleSpeed  = 0.05
)

// Settings is everything needed to build an Arena.
type Settings struct {
	Paddle     Paddle
	BallRadius float64
	BallSpeed  float64
	SpawnAt    core.Vec2
	Bricks     []Brick
}

// DefaultSettings returns the stock paddle and ball with the classic bricks.
func DefaultSettings() Settings {
	return Settings{
		Paddle: Paddle{
			Pos:    core.V2(0, DefaultPaddleY),
			Width:  DefaultPaddleWidth,
			Height: DefaultPaddleHeight,
			Speed:  DefaultPaddleSpeed,
			Color:  core.White,
		},
		BallRadius: DefaultBallRadius,
		BallSpeed:  DefaultBallSpeed,
		Bricks:     ClassicBricks(),
	}
}

// ClassicBricks returns the two-brick starter set: a yellow
// reflective brick bottom right and a green destructible one top left.
func ClassicBricks() []Brick {
	return []Brick{
		NewBrick(Reflective, core.V2(0.5, -0.33), 0.2, core.Yellow),
		NewBrick(Destructible, core.V2(-0.5, 0.33), 0.2, core.Green),
	}
}
