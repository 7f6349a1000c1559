package config

import (
	_ "embed"
)

//go:embed defaults/arena.yaml
var defaultArenaYAML []byte

// DefaultArenaConfig returns the built-in arena configuration.
// It mirrors defaults/arena.yaml and backs it up if the embed fails to parse.
func DefaultArenaConfig() ArenaConfig {
	return ArenaConfig{
		Layout: DefaultLayout,
		Paddle: PaddleConfig{
			X:      0.0,
			Y:      -0.8,
			Width:  0.3,
			Height: 0.05,
			Speed:  0.05,
			Color:  Color{1, 1, 1},
		},
		Ball: BallConfig{
			Radius: 0.05,
			Speed:  0.03,
		},
		Input: InputConfig{
			SpawnHold: true,
		},
	}
}
