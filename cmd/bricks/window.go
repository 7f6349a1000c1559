package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pong-bricks/internal/platform/window"
)

var flagWindowSize int

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open the arena in a desktop window titled "Pong with Bricks".

Keys are polled every frame: hold Left/Right (or A/D) to move the paddle.
Space spawns a ball on every frame it is held unless input.spawn_hold is
false in the config, in which case it spawns once per press. P pauses,
Escape closes the window.

Examples:
  bricks window
  bricks window --size 720 --layout wall`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&flagWindowSize, "size", 480, "Window width and height in pixels")
}

func runWindow(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	layoutID, settings, err := resolveSettings(cfg)
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	return window.Run(window.Options{
		LayoutID:  layoutID,
		Settings:  settings,
		Seed:      flagSeed,
		TickRate:  flagFPS,
		Size:      flagWindowSize,
		SpawnHold: cfg.Input.SpawnHold,
		Store:     store,
		Logger:    logger,
	})
}
