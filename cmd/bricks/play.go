package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pong-bricks/internal/core"
	"github.com/vovakirdan/pong-bricks/internal/platform/tui"
	"github.com/vovakirdan/pong-bricks/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Run the arena in the terminal.

Controls:
  Left/A     - Move paddle left
  Right/D    - Move paddle right
  Space      - Spawn a ball
  P          - Pause
  ?          - Show all keys
  Ctrl+S     - Save a text screenshot to ~/.bricks/screenshots
  Esc/Q      - Quit

Examples:
  bricks play
  bricks play --layout pillars
  bricks play --seed 42 --fps 30
  bricks play --config ./my-arena.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	layoutID, settings, err := resolveSettings(cfg)
	if err != nil {
		return err
	}

	width, height := terminalSize()
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	logger.Debug("starting terminal session", "layout", layoutID, "seed", flagSeed)
	err = tui.Run(tui.Options{
		LayoutID: layoutID,
		Settings: settings,
		Store:    store,
		Config: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Host: storage.HostTerminal,
	})
	if err != nil {
		return fmt.Errorf("running arena: %w", err)
	}
	return nil
}
