package arena

// Direction is the discrete movement code a ball holds.
// The numeric values are stable: 1-4 are axis-aligned, 5-8 diagonal.
type Direction int

const (
	DirNone      Direction = iota
	DirUp                  // 1
	DirRight               // 2
	DirDown                // 3
	DirLeft                // 4
	DirUpRight             // 5
	DirUpLeft              // 6
	DirDownRight           // 7
	DirDownLeft            // 8
)

// directionCount is the number of valid direction codes.
const directionCount = 8

// Valid reports whether d is one of the eight movement codes.
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirDownLeft
}

// Delta returns the unit axis components of d, with y growing upward.
// Invalid codes return (0, 0).
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, 1
	case DirRight:
		return 1, 0
	case DirDown:
		return 0, -1
	case DirLeft:
		return -1, 0
	case DirUpRight:
		return 1, 1
	case DirUpLeft:
		return -1, 1
	case DirDownRight:
		return 1, -1
	case DirDownLeft:
		return -1, -1
	default:
		return 0, 0
	}
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirRight:
		return "Right"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirUpRight:
		return "UpRight"
	case DirUpLeft:
		return "UpLeft"
	case DirDownRight:
		return "DownRight"
	case DirDownLeft:
		return "DownLeft"
	default:
		return "None"
	}
}

// randomDirection draws a uniform direction code in [1, 8].
func randomDirection(rng Rand) Direction {
	return Direction(rng.Intn(directionCount) + 1)
}
