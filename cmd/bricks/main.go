// bricks is a pong-with-bricks arena: balls bounce around a square field,
// off a paddle and off bricks, some of which break.
//
// Usage:
//
//	bricks play              - Play in the terminal
//	bricks window            - Play in a desktop window
//	bricks serve             - Start SSH server for remote play
//	bricks layouts           - List brick layouts
//	bricks history           - Browse recorded sessions
//	bricks config            - Print the effective arena config
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible play
//	--db <path>         - Set database path (default: ~/.bricks/history.db)
//	--config <path>     - Arena config YAML
//	--layout <id>       - Brick layout, overrides the config
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import layouts to register them
	_ "github.com/vovakirdan/pong-bricks/internal/layouts"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLayout   string
	flagLogLevel string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "bricks",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bricks",
	Short: "Pong with Bricks - bounce balls off a paddle and bricks",
	Long: `Pong with Bricks is a small arena: press space to spawn balls,
steer the paddle with the arrow keys, and watch balls bounce off the
walls, the paddle, and the bricks. Destructible bricks
break on the first hit; reflective ones never do.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  layouts  - List brick layouts
  history  - Browse recorded sessions
  config   - Print the effective arena config

Examples:
  bricks play
  bricks play --layout wall
  bricks window --seed 42
  bricks serve --ssh :2222
  bricks history --layout classic`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
		}
		logger.SetLevel(level)
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.bricks/history.db", "Path to session history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to arena config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLayout, "layout", "", "Brick layout ID (overrides the config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(layoutsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(configCmd)
}
