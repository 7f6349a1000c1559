package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/vovakirdan/pong-bricks/internal/arena"
	"github.com/vovakirdan/pong-bricks/internal/config"
	"github.com/vovakirdan/pong-bricks/internal/layouts"
	"github.com/vovakirdan/pong-bricks/internal/registry"
	"github.com/vovakirdan/pong-bricks/internal/storage"
)

// loadConfig loads the arena config and applies the --layout override.
func loadConfig() (config.ArenaConfig, error) {
	cfg, err := config.LoadArena(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagLayout != "" {
		cfg.Layout = flagLayout
	}
	return cfg, nil
}

// resolveSettings picks the layout for a session and builds the arena
// settings. Custom bricks in the config win over any registered layout.
func resolveSettings(cfg config.ArenaConfig) (string, arena.Settings, error) {
	var layout registry.Layout
	if len(cfg.Bricks) > 0 {
		layout = layouts.Custom(layouts.BricksFromConfig(cfg.Bricks))
	} else {
		l, err := registry.Create(cfg.Layout)
		if err != nil {
			return "", arena.Settings{}, fmt.Errorf("%w (run 'bricks layouts' to list them)", err)
		}
		layout = l
	}

	return layout.ID(), layouts.Settings(cfg, layout.Bricks()), nil
}

// openStore opens the history database. History is optional: on failure it
// warns and returns nil.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open history database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// terminalSize returns the size of stdout, or 80x24 if it is not a terminal.
func terminalSize() (int, int) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}
