package arena

import "math"

// fixedScale converts NDC floats to fixed-point ints for snapshots.
const fixedScale = 10000

// Snapshot is the complete arena state in primitive types, for determinism
// checks and session records.
type Snapshot struct {
	Tick          uint64
	PaddleX       int // fixed-point, scaled by 10000
	BricksCleared int

	// Each brick is one int: 1 active, 0 inactive.
	BrickData []int

	// Each ball is 4 ints: X, Y (fixed-point), Dir, packed RGB.
	BallCount int
	BallData  []int
}

func fixed(v float64) int {
	return int(math.Round(v * fixedScale))
}

// Snapshot returns the current state as a Snapshot.
func (a *Arena) Snapshot() Snapshot {
	bricks := make([]int, len(a.bricks))
	for i, b := range a.bricks {
		if b.Active {
			bricks[i] = 1
		}
	}

	balls := make([]int, 0, len(a.balls)*4)
	for _, b := range a.balls {
		c := b.Color.RGBA()
		balls = append(balls,
			fixed(b.Pos.X),
			fixed(b.Pos.Y),
			int(b.Dir),
			int(c.R)<<16|int(c.G)<<8|int(c.B),
		)
	}

	return Snapshot{
		Tick:          uint64(max(0, a.tickCount)), //nolint:gosec // tickCount is never negative
		PaddleX:       fixed(a.paddle.Pos.X),
		BricksCleared: a.bricksCleared,
		BrickData:     bricks,
		BallCount:     len(a.balls),
		BallData:      balls,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.PaddleX)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BricksCleared) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallCount)     //#nosec G115 -- hash computation

	for _, v := range snap.BrickData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.BallData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	return h
}
