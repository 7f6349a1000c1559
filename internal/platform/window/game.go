// Package window hosts the arena in a desktop window through Ebiten, polling
// the keyboard once per frame.
package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/pong-bricks/internal/arena"
	"github.com/vovakirdan/pong-bricks/internal/core"
)

// Keys reports keyboard state for the current frame.
type Keys interface {
	Pressed(k ebiten.Key) bool
	JustPressed(k ebiten.Key) bool
}

// ebitenKeys reads the real keyboard.
type ebitenKeys struct{}

func (ebitenKeys) Pressed(k ebiten.Key) bool     { return ebiten.IsKeyPressed(k) }
func (ebitenKeys) JustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }

var background = color.RGBA{A: 0xff}

// Game implements ebiten.Game around one arena.
type Game struct {
	arena     *arena.Arena
	keys      Keys
	view      Viewport
	spawnHold bool
	input     core.InputFrame
	paused    bool
}

// NewGame creates a game drawing into a w x h surface. With spawnHold a ball
// spawns on every frame Space is held; otherwise once per press.
func NewGame(a *arena.Arena, keys Keys, w, h int, spawnHold bool) *Game {
	if keys == nil {
		keys = ebitenKeys{}
	}
	return &Game{
		arena:     a,
		keys:      keys,
		view:      Viewport{W: w, H: h},
		spawnHold: spawnHold,
		input:     core.NewInputFrame(),
	}
}

// Update polls the keyboard and advances the arena by one frame.
// Escape ends the game loop.
func (g *Game) Update() error {
	if g.keys.JustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if g.keys.JustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}
	if g.paused {
		return nil
	}

	g.input.Clear()
	if g.keys.Pressed(ebiten.KeyArrowLeft) || g.keys.Pressed(ebiten.KeyA) {
		g.input.Set(core.ActionLeft)
	}
	if g.keys.Pressed(ebiten.KeyArrowRight) || g.keys.Pressed(ebiten.KeyD) {
		g.input.Set(core.ActionRight)
	}
	spawn := g.keys.JustPressed(ebiten.KeySpace)
	if g.spawnHold {
		spawn = g.keys.Pressed(ebiten.KeySpace)
	}
	if spawn {
		g.input.Set(core.ActionSpawn)
	}

	g.arena.Apply(g.input)
	g.arena.Step()
	return nil
}

// Draw renders every visible entity as filled shapes.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	g.arena.Draw(func(e arena.Entity) {
		clr := e.Color.RGBA()
		switch e.Kind {
		case arena.KindBall:
			cx, cy := g.view.Point(e.Pos)
			vector.DrawFilledCircle(screen, cx, cy, g.view.Radius(e.Radius), clr, true)
		default:
			x, y, w, h := g.view.Rect(e.Box())
			vector.DrawFilledRect(screen, x, y, w, h, clr, false)
		}
	})

	if g.paused {
		ebitenutil.DebugPrint(screen, "PAUSED (p to resume)")
	}
}

// Layout keeps a fixed logical surface; Ebiten scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.view.W, g.view.H
}

// Arena returns the running arena.
func (g *Game) Arena() *arena.Arena {
	return g.arena
}

// Paused reports whether stepping is suspended.
func (g *Game) Paused() bool {
	return g.paused
}
