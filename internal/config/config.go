// Package config provides YAML-based arena configuration loading and
// validation.
package config

// Brick kinds accepted in config files.
const (
	KindReflective   = "reflective"
	KindDestructible = "destructible"
)

// DefaultLayout is the layout ID used when none is configured.
const DefaultLayout = "classic"

// ArenaConfig contains all configuration for an arena session.
type ArenaConfig struct {
	Layout string        `yaml:"layout"`
	Paddle PaddleConfig  `yaml:"paddle"`
	Ball   BallConfig    `yaml:"ball"`
	Bricks []BrickConfig `yaml:"bricks,omitempty"` // overrides Layout when non-empty
	Input  InputConfig   `yaml:"input"`
}

// Color is an RGB triple with channels in [0, 1], written as [r, g, b].
type Color [3]float64

// PaddleConfig defines the paddle's starting box and movement.
type PaddleConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
	Color  Color   `yaml:"color"`
}

// BallConfig defines parameters shared by every spawned ball.
type BallConfig struct {
	Radius float64 `yaml:"radius"`
	Speed  float64 `yaml:"speed"`
	SpawnX float64 `yaml:"spawn_x"`
	SpawnY float64 `yaml:"spawn_y"`
}

// BrickConfig describes one brick of a custom layout.
type BrickConfig struct {
	Kind  string  `yaml:"kind"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Width float64 `yaml:"width"`
	Color Color   `yaml:"color"`
}

// InputConfig tunes how hosts turn keys into actions.
type InputConfig struct {
	// SpawnHold spawns a ball on every frame the spawn key is held
	// (window host only; terminals report key presses, not key state).
	SpawnHold bool `yaml:"spawn_hold"`
}
