package window

import "github.com/vovakirdan/pong-bricks/internal/core"

// Viewport maps normalized device coordinates ([-1,1] on both axes, y up)
// onto a pixel surface (y down).
type Viewport struct {
	W, H int
}

// Point returns the pixel position of an NDC point.
func (v Viewport) Point(p core.Vec2) (x, y float32) {
	x = float32((p.X + 1) / 2 * float64(v.W))
	y = float32((1 - p.Y) / 2 * float64(v.H))
	return x, y
}

// Rect returns the top-left corner and size in pixels of an NDC box.
func (v Viewport) Rect(b core.Box) (x, y, w, h float32) {
	x, y = v.Point(core.V2(b.Left(), b.Top()))
	w = float32(b.Size.X / 2 * float64(v.W))
	h = float32(b.Size.Y / 2 * float64(v.H))
	return x, y, w, h
}

// Radius converts an NDC distance along x to pixels.
func (v Viewport) Radius(r float64) float32 {
	return float32(r / 2 * float64(v.W))
}
