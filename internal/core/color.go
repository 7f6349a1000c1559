package core

import (
	"fmt"
	"image/color"
)

// RGB is a color with channels in [0, 1], as the arena assigns them.
type RGB struct {
	R, G, B float64
}

// Predefined colors for arena elements.
var (
	White  = RGB{R: 1, G: 1, B: 1}
	Yellow = RGB{R: 1, G: 1, B: 0}
	Green  = RGB{R: 0, G: 1, B: 0}
	Red    = RGB{R: 1, G: 0, B: 0}
	Cyan   = RGB{R: 0, G: 1, B: 1}
	Gray   = RGB{R: 0.6, G: 0.6, B: 0.6}
)

// channel converts one [0,1] channel to a byte, clamping out-of-range input.
func channel(v float64) uint8 {
	return uint8(Round(ClampF(v, 0, 1) * 255)) //nolint:gosec // clamped to [0, 255]
}

// Hex returns the color as "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", channel(c.R), channel(c.G), channel(c.B))
}

// RGBA converts to an opaque image/color value.
func (c RGB) RGBA() color.RGBA {
	return color.RGBA{R: channel(c.R), G: channel(c.G), B: channel(c.B), A: 0xff}
}
