package layouts

import (
	"github.com/vovakirdan/pong-bricks/internal/arena"
	"github.com/vovakirdan/pong-bricks/internal/config"
	"github.com/vovakirdan/pong-bricks/internal/core"
)

// Settings builds arena settings from a validated config and the bricks of
// the selected layout. Custom bricks in the config take precedence.
func Settings(cfg config.ArenaConfig, layout []arena.Brick) arena.Settings {
	bricks := layout
	if len(cfg.Bricks) > 0 {
		bricks = BricksFromConfig(cfg.Bricks)
	}

	return arena.Settings{
		Paddle: arena.Paddle{
			Pos:    core.V2(cfg.Paddle.X, cfg.Paddle.Y),
			Width:  cfg.Paddle.Width,
			Height: cfg.Paddle.Height,
			Speed:  cfg.Paddle.Speed,
			Color:  rgb(cfg.Paddle.Color),
		},
		BallRadius: cfg.Ball.Radius,
		BallSpeed:  cfg.Ball.Speed,
		SpawnAt:    core.V2(cfg.Ball.SpawnX, cfg.Ball.SpawnY),
		Bricks:     bricks,
	}
}

// BricksFromConfig converts config bricks. Unknown kinds become reflective;
// config validation rejects them before this point.
func BricksFromConfig(in []config.BrickConfig) []arena.Brick {
	out := make([]arena.Brick, 0, len(in))
	for _, b := range in {
		kind := arena.Reflective
		if b.Kind == config.KindDestructible {
			kind = arena.Destructible
		}
		out = append(out, arena.NewBrick(kind, core.V2(b.X, b.Y), b.Width, rgb(b.Color)))
	}
	return out
}

func rgb(c config.Color) core.RGB {
	return core.RGB{R: c[0], G: c[1], B: c[2]}
}
