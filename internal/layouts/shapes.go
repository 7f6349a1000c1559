package layouts

import (
	"github.com/vovakirdan/pong-bricks/internal/arena"
	"github.com/vovakirdan/pong-bricks/internal/core"
)

// Row colors for the wall, top to bottom.
var wallColors = []core.RGB{
	core.Red,
	{R: 1, G: 0.5, B: 0},
	core.Yellow,
	core.Green,
}

// wallBricks builds four rows of destructible bricks across the top half,
// capped at both ends by reflective bricks.
func wallBricks() []arena.Brick {
	const (
		side = 0.18
		gap  = 0.02
		cols = 9
	)

	var bricks []arena.Brick
	for row, color := range wallColors {
		y := 0.8 - float64(row)*(side+gap)
		for col := 0; col < cols; col++ {
			x := -0.8 + float64(col)*(side+gap)
			kind := arena.Destructible
			brickColor := color
			if col == 0 || col == cols-1 {
				kind = arena.Reflective
				brickColor = core.Gray
			}
			bricks = append(bricks, arena.NewBrick(kind, core.V2(x, y), side, brickColor))
		}
	}
	return bricks
}

// pillarBricks builds three short reflective columns with destructible caps,
// kept above the spawn point.
func pillarBricks() []arena.Brick {
	const side = 0.15

	var bricks []arena.Brick
	for _, x := range []float64{-0.6, 0, 0.6} {
		bricks = append(bricks, arena.NewBrick(arena.Destructible, core.V2(x, 0.55), side, core.Cyan))
		for _, y := range []float64{0.4, 0.25} {
			bricks = append(bricks, arena.NewBrick(arena.Reflective, core.V2(x, y), side, core.Gray))
		}
	}
	return bricks
}
