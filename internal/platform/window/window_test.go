package window

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/pong-bricks/internal/arena"
	"github.com/vovakirdan/pong-bricks/internal/core"
)

type fakeKeys struct {
	pressed map[ebiten.Key]bool
	just    map[ebiten.Key]bool
}

func newFakeKeys() *fakeKeys {
	return &fakeKeys{pressed: map[ebiten.Key]bool{}, just: map[ebiten.Key]bool{}}
}

func (f *fakeKeys) Pressed(k ebiten.Key) bool     { return f.pressed[k] }
func (f *fakeKeys) JustPressed(k ebiten.Key) bool { return f.just[k] }

// hold marks a key as pressed; first reports whether it went down this frame.
func (f *fakeKeys) hold(k ebiten.Key, first bool) {
	f.pressed[k] = true
	f.just[k] = first
}

func (f *fakeKeys) release(k ebiten.Key) {
	delete(f.pressed, k)
	delete(f.just, k)
}

type fixedRand struct{}

func (fixedRand) Intn(int) int     { return 0 }
func (fixedRand) Float64() float64 { return 0.25 }

func newTestGame(keys Keys, spawnHold bool) *Game {
	return NewGame(arena.New(arena.DefaultSettings(), fixedRand{}), keys, 480, 480, spawnHold)
}

func TestViewportPoint(t *testing.T) {
	v := Viewport{W: 480, H: 480}

	tests := []struct {
		name  string
		p     core.Vec2
		wantX float32
		wantY float32
	}{
		{"center", core.V2(0, 0), 240, 240},
		{"top left", core.V2(-1, 1), 0, 0},
		{"bottom right", core.V2(1, -1), 480, 480},
		{"paddle row", core.V2(0, -0.8), 240, 432},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := v.Point(tt.p)
			assert.InDelta(t, tt.wantX, x, 1e-3)
			assert.InDelta(t, tt.wantY, y, 1e-3)
		})
	}
}

func TestViewportRect(t *testing.T) {
	v := Viewport{W: 480, H: 480}

	// Classic destructible brick at (-0.5, 0.33), side 0.2
	x, y, w, h := v.Rect(core.Square(core.V2(-0.5, 0.33), 0.2))
	assert.InDelta(t, 96, x, 1e-3)
	assert.InDelta(t, 136.8, y, 1e-3)
	assert.InDelta(t, 48, w, 1e-3)
	assert.InDelta(t, 48, h, 1e-3)

	assert.InDelta(t, 12, v.Radius(arena.DefaultBallRadius), 1e-3)
}

func TestGameLayoutIsFixed(t *testing.T) {
	g := newTestGame(newFakeKeys(), true)

	w, h := g.Layout(1920, 1080)
	assert.Equal(t, 480, w)
	assert.Equal(t, 480, h)
}

func TestGameEscapeTerminates(t *testing.T) {
	keys := newFakeKeys()
	g := newTestGame(keys, true)

	require.NoError(t, g.Update())
	keys.hold(ebiten.KeyEscape, true)
	assert.ErrorIs(t, g.Update(), ebiten.Termination)
}

func TestGamePaddleFollowsHeldKeys(t *testing.T) {
	keys := newFakeKeys()
	g := newTestGame(keys, true)

	keys.hold(ebiten.KeyArrowLeft, true)
	require.NoError(t, g.Update())
	keys.hold(ebiten.KeyArrowLeft, false)
	require.NoError(t, g.Update())
	assert.InDelta(t, -2*arena.DefaultPaddleSpeed, g.Arena().Paddle().Pos.X, 1e-9)

	keys.release(ebiten.KeyArrowLeft)
	keys.hold(ebiten.KeyD, true)
	require.NoError(t, g.Update())
	assert.InDelta(t, -arena.DefaultPaddleSpeed, g.Arena().Paddle().Pos.X, 1e-9)
}

func TestGameSpawnHoldSpawnsEveryFrame(t *testing.T) {
	keys := newFakeKeys()
	g := newTestGame(keys, true)

	keys.hold(ebiten.KeySpace, true)
	require.NoError(t, g.Update())
	keys.hold(ebiten.KeySpace, false)
	require.NoError(t, g.Update())
	require.NoError(t, g.Update())

	assert.Len(t, g.Arena().Balls(), 3)
}

func TestGameSpawnPressSpawnsOnce(t *testing.T) {
	keys := newFakeKeys()
	g := newTestGame(keys, false)

	keys.hold(ebiten.KeySpace, true)
	require.NoError(t, g.Update())
	keys.hold(ebiten.KeySpace, false)
	require.NoError(t, g.Update())
	require.NoError(t, g.Update())

	assert.Len(t, g.Arena().Balls(), 1)
}

func TestGamePause(t *testing.T) {
	keys := newFakeKeys()
	g := newTestGame(keys, true)

	keys.hold(ebiten.KeyP, true)
	require.NoError(t, g.Update())
	assert.True(t, g.Paused())
	assert.Equal(t, 0, g.Arena().Stats().Ticks)

	keys.release(ebiten.KeyP)
	keys.hold(ebiten.KeySpace, true)
	require.NoError(t, g.Update())
	assert.Empty(t, g.Arena().Balls(), "no input while paused")

	keys.release(ebiten.KeySpace)
	keys.hold(ebiten.KeyP, true)
	require.NoError(t, g.Update())
	assert.False(t, g.Paused())
	assert.Equal(t, 1, g.Arena().Stats().Ticks)
}
