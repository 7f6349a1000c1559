package arena

import (
	"math/rand"
	"testing"
)

func TestDirectionDelta(t *testing.T) {
	tests := []struct {
		dir    Direction
		dx, dy int
	}{
		{DirUp, 0, 1},
		{DirRight, 1, 0},
		{DirDown, 0, -1},
		{DirLeft, -1, 0},
		{DirUpRight, 1, 1},
		{DirUpLeft, -1, 1},
		{DirDownRight, 1, -1},
		{DirDownLeft, -1, -1},
		{DirNone, 0, 0},
		{Direction(9), 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			dx, dy := tc.dir.Delta()
			if dx != tc.dx || dy != tc.dy {
				t.Errorf("Delta() = (%d, %d), expected (%d, %d)", dx, dy, tc.dx, tc.dy)
			}
		})
	}
}

func TestDirectionCodesAreStable(t *testing.T) {
	codes := map[Direction]int{
		DirUp: 1, DirRight: 2, DirDown: 3, DirLeft: 4,
		DirUpRight: 5, DirUpLeft: 6, DirDownRight: 7, DirDownLeft: 8,
	}
	for dir, code := range codes {
		if int(dir) != code {
			t.Errorf("%s = %d, expected %d", dir, int(dir), code)
		}
		if !dir.Valid() {
			t.Errorf("%s should be valid", dir)
		}
	}
	if DirNone.Valid() || Direction(9).Valid() {
		t.Error("codes outside 1..8 must be invalid")
	}
}

func TestRandomDirectionCoversAllCodes(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	seen := make(map[Direction]bool)

	for i := 0; i < 1000; i++ {
		d := randomDirection(rng)
		if !d.Valid() {
			t.Fatalf("randomDirection returned %d", d)
		}
		seen[d] = true
	}
	if len(seen) != directionCount {
		t.Errorf("saw %d distinct directions, expected %d", len(seen), directionCount)
	}
}
