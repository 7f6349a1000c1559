package core

// RuntimeConfig contains host settings passed to the simulation at start.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters (or pixels for the window host)
	ScreenH  int   // Screen height in characters (or pixels)
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic play
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}
