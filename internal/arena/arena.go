// Package arena implements the Pong-with-bricks simulation: one paddle, a
// fixed set of square bricks and a growing set of balls on the [-1,1]²
// field. It holds pure logic with no rendering or terminal dependencies.
// Hosts feed input, call Step once per frame and read entities back
// through Draw.
package arena

import (
	"github.com/vovakirdan/pong-bricks/internal/core"
)

// Field bounds in normalized device coordinates.
const (
	FieldMin = -1.0
	FieldMax = 1.0
)

// Rand is the random source the arena draws directions and colors from.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// PaddleMove is a horizontal paddle command.
type PaddleMove int

const (
	MoveLeft PaddleMove = iota + 1
	MoveRight
)

// Arena owns the paddle, bricks and balls of one session.
type Arena struct {
	paddle Paddle
	bricks []Brick
	balls  []Ball

	ballRadius float64
	ballSpeed  float64
	spawnAt    core.Vec2

	rng Rand

	tickCount     int
	bricksCleared int
}

// New creates an arena from settings. The bricks are copied and all start
// active, and the paddle is clamped into the field. rng is used for every
// random decision the arena makes.
func New(s Settings, rng Rand) *Arena {
	bricks := make([]Brick, len(s.Bricks))
	copy(bricks, s.Bricks)
	for i := range bricks {
		bricks[i].Active = true
	}

	paddle := s.Paddle
	paddle.Pos.X = clampPaddleX(paddle)

	return &Arena{
		paddle:     paddle,
		bricks:     bricks,
		ballRadius: s.BallRadius,
		ballSpeed:  s.BallSpeed,
		spawnAt:    s.SpawnAt,
		rng:        rng,
	}
}

// MovePaddle shifts the paddle by its speed, keeping it inside the field.
func (a *Arena) MovePaddle(m PaddleMove) {
	switch m {
	case MoveLeft:
		a.paddle.Pos.X -= a.paddle.Speed
	case MoveRight:
		a.paddle.Pos.X += a.paddle.Speed
	default:
		return
	}
	a.paddle.Pos.X = clampPaddleX(a.paddle)
}

func clampPaddleX(p Paddle) float64 {
	half := p.Width / 2
	return core.ClampF(p.Pos.X, FieldMin+half, FieldMax-half)
}

// SpawnBall adds a ball at the spawn point with a random direction and color.
// The ball collection grows without bound.
func (a *Arena) SpawnBall() Ball {
	b := Ball{
		Pos:    a.spawnAt,
		Radius: a.ballRadius,
		Speed:  a.ballSpeed,
		Dir:    randomDirection(a.rng),
		Color: core.RGB{
			R: a.rng.Float64(),
			G: a.rng.Float64(),
			B: a.rng.Float64(),
		},
	}
	a.balls = append(a.balls, b)
	return b
}

// Apply maps one frame of player input onto paddle moves and spawns.
func (a *Arena) Apply(in core.InputFrame) {
	if in.Has(core.ActionLeft) {
		a.MovePaddle(MoveLeft)
	}
	if in.Has(core.ActionRight) {
		a.MovePaddle(MoveRight)
	}
	if in.Has(core.ActionSpawn) {
		a.SpawnBall()
	}
}

// Step advances every ball by one tick, in spawn order: brick collisions,
// then the paddle, then movement.
func (a *Arena) Step() {
	a.tickCount++
	for i := range a.balls {
		b := &a.balls[i]
		a.collideBricks(b)
		a.collidePaddle(b)
		a.advance(b)
	}
}

// collideBricks tests the ball center against bricks in declaration order.
// Only the first brick hit reacts.
func (a *Arena) collideBricks(b *Ball) {
	for i := range a.bricks {
		brick := &a.bricks[i]
		if !brick.Active || !brick.Box().ContainsStrict(b.Pos) {
			continue
		}
		if brick.Kind == Destructible {
			brick.Active = false
			a.bricksCleared++
		}
		b.Dir = randomDirection(a.rng)
		return
	}
}

// collidePaddle sends the ball straight up once its lower edge reaches the
// paddle's top edge within the paddle's horizontal extent.
func (a *Arena) collidePaddle(b *Ball) {
	box := a.paddle.Box()
	if b.Pos.Y-b.Radius <= box.Top() &&
		b.Pos.X >= box.Left() && b.Pos.X <= box.Right() {
		b.Dir = DirUp
	}
}

// advance moves the ball one step along its direction. If any axis of the
// move is blocked by the field edge the ball stays put and gets a new random
// direction. A ball parked at a wall keeps re-rolling until a direction
// points back inward.
func (a *Arena) advance(b *Ball) {
	dx, dy := b.Dir.Delta()
	if dx == 0 && dy == 0 {
		b.Dir = randomDirection(a.rng)
		return
	}

	limit := FieldMax - b.Radius
	blocked := (dy > 0 && b.Pos.Y >= limit) ||
		(dx > 0 && b.Pos.X >= limit) ||
		(dy < 0 && b.Pos.Y <= -limit) ||
		(dx < 0 && b.Pos.X <= -limit)
	if blocked {
		b.Dir = randomDirection(a.rng)
		return
	}

	b.Pos = b.Pos.Add(core.V2(float64(dx), float64(dy)).Scale(b.Speed))
}

// Paddle returns a copy of the paddle.
func (a *Arena) Paddle() Paddle {
	return a.paddle
}

// Bricks returns a copy of all bricks, active or not, in declaration order.
func (a *Arena) Bricks() []Brick {
	out := make([]Brick, len(a.bricks))
	copy(out, a.bricks)
	return out
}

// Balls returns a copy of all balls in spawn order.
func (a *Arena) Balls() []Ball {
	out := make([]Ball, len(a.balls))
	copy(out, a.balls)
	return out
}

// Stats summarizes the session so far.
type Stats struct {
	Ticks           int
	BallsSpawned    int
	BricksCleared   int
	BricksRemaining int
}

// Stats returns counters for the current session.
func (a *Arena) Stats() Stats {
	remaining := 0
	for _, b := range a.bricks {
		if b.Active && b.Kind == Destructible {
			remaining++
		}
	}
	return Stats{
		Ticks:           a.tickCount,
		BallsSpawned:    len(a.balls),
		BricksCleared:   a.bricksCleared,
		BricksRemaining: remaining,
	}
}
