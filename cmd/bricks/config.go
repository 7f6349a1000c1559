package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pong-bricks/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective arena config",
	Long: `Load the arena config the same way 'play' does, validate it, and
print the result as YAML. Save the output to ~/.bricks/configs/arena.yaml
to start customizing.

Examples:
  bricks config
  bricks config --config ./my-arena.yaml
  bricks config > ~/.bricks/configs/arena.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if _, _, err := resolveSettings(cfg); err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}
