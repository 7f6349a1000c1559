package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/pong-bricks/internal/arena"
	"github.com/vovakirdan/pong-bricks/internal/core"
)

type fixedRand struct{}

func (fixedRand) Intn(int) int     { return 0 }
func (fixedRand) Float64() float64 { return 0.5 }

func TestDrawArenaClassic(t *testing.T) {
	s := core.NewScreen(21, 11)
	a := arena.New(arena.DefaultSettings(), fixedRand{})

	DrawArena(s, a)

	// Paddle centered at (0, -0.8)
	assert.Equal(t, '=', s.Get(10, 9))
	assert.Equal(t, core.White, s.GetCell(10, 9).Color)

	// Destructible brick at (-0.5, 0.33), reflective at (0.5, -0.33)
	assert.Equal(t, glyphBrick, s.Get(5, 3))
	assert.Equal(t, core.Green, s.GetCell(5, 3).Color)
	assert.Equal(t, glyphBrick, s.Get(15, 7))
	assert.Equal(t, core.Yellow, s.GetCell(15, 7).Color)

	// No ball yet
	assert.NotContains(t, s.String(), string(glyphBall))
}

func TestDrawArenaBall(t *testing.T) {
	s := core.NewScreen(21, 11)
	a := arena.New(arena.DefaultSettings(), fixedRand{})
	a.SpawnBall()

	DrawArena(s, a)

	// Spawn point (0, 0) is the center cell.
	assert.Equal(t, glyphBall, s.Get(10, 5))
	assert.True(t, s.GetCell(10, 5).Colored)
}

func TestDrawArenaSkipsInactiveBricks(t *testing.T) {
	s := core.NewScreen(21, 11)
	settings := arena.DefaultSettings()
	settings.Bricks = []arena.Brick{
		arena.NewBrick(arena.Destructible, core.V2(0, 0), 0.2, core.Green),
	}
	a := arena.New(settings, fixedRand{})

	DrawArena(s, a)
	require.Contains(t, s.String(), string(glyphBrick))

	// A ball spawned inside the brick clears it on the next step.
	a.SpawnBall()
	a.Step()

	DrawArena(s, a)
	assert.NotContains(t, s.String(), string(glyphBrick))
	assert.Contains(t, s.String(), string(glyphBall))
}

func TestDrawArenaClearsPreviousFrame(t *testing.T) {
	s := core.NewScreen(21, 11)
	s.Set(0, 0, 'X')

	DrawArena(s, arena.New(arena.DefaultSettings(), fixedRand{}))
	assert.Equal(t, ' ', s.Get(0, 0))
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab")
	s.SetColored(3, 0, glyphBall, core.Red)
	s.SetColored(4, 0, glyphBall, core.Red)
	s.SetColored(0, 1, glyphBrick, core.Green)

	out := RenderScreen(s)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "ab")
	assert.Contains(t, lines[0], "●●")
	assert.Contains(t, lines[1], "█")
}

func TestStyleCacheReusesColors(t *testing.T) {
	cache := styleCache{}
	s := core.NewScreen(4, 1)
	s.SetColored(0, 0, 'a', core.Red)
	s.SetColored(2, 0, 'b', core.Red)
	s.SetColored(3, 0, 'c', core.Cyan)

	renderScreen(s, cache)
	assert.Len(t, cache, 2)
}

func TestSameColor(t *testing.T) {
	plain := core.Cell{Rune: 'a'}
	red := core.Cell{Rune: 'b', Color: core.Red, Colored: true}
	alsoRed := core.Cell{Rune: 'c', Color: core.Red, Colored: true}
	green := core.Cell{Rune: 'd', Color: core.Green, Colored: true}

	assert.True(t, sameColor(plain, core.Cell{Rune: ' '}))
	assert.True(t, sameColor(red, alsoRed))
	assert.False(t, sameColor(red, green))
	assert.False(t, sameColor(plain, red))
}

func TestFieldSize(t *testing.T) {
	tests := []struct {
		name         string
		termW, termH int
		wantW, wantH int
	}{
		{"standard terminal", 80, 24, 40, 20},
		{"narrow terminal", 30, 24, 28, 14},
		{"tiny terminal", 10, 5, minFieldW, minFieldH},
		{"wide terminal", 200, 50, 92, 46},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := fieldSize(tt.termW, tt.termH, chromeW, chromeH)
			assert.Equal(t, tt.wantW, w)
			assert.Equal(t, tt.wantH, h)
		})
	}
}
