// Package layouts defines the built-in brick layouts and registers them.
// Import it for side effects:
//
//	import _ "github.com/vovakirdan/pong-bricks/internal/layouts"
package layouts

import (
	"github.com/vovakirdan/pong-bricks/internal/arena"
	"github.com/vovakirdan/pong-bricks/internal/registry"
)

// Static is a layout with a fixed brick list.
type Static struct {
	id     string
	title  string
	bricks func() []arena.Brick
}

// ID returns the layout identifier.
func (s Static) ID() string {
	return s.id
}

// Title returns the display name.
func (s Static) Title() string {
	return s.title
}

// Bricks returns a fresh copy of the bricks.
func (s Static) Bricks() []arena.Brick {
	return s.bricks()
}

// Custom wraps bricks from a config file as an unregistered layout.
func Custom(bricks []arena.Brick) Static {
	return Static{
		id:    "custom",
		title: "Custom",
		bricks: func() []arena.Brick {
			out := make([]arena.Brick, len(bricks))
			copy(out, bricks)
			return out
		},
	}
}

func register(id, title string, bricks func() []arena.Brick) {
	registry.Register(id, func() registry.Layout {
		return Static{id: id, title: title, bricks: bricks}
	})
}

func init() {
	register("classic", "Classic (two bricks)", arena.ClassicBricks)
	register("wall", "Brick Wall", wallBricks)
	register("pillars", "Pillars", pillarBricks)
}
