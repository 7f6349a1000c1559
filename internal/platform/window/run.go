package window

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/pong-bricks/internal/arena"
	"github.com/vovakirdan/pong-bricks/internal/storage"
)

// Title is the window title.
const Title = "Pong with Bricks"

// Options configures a window session.
type Options struct {
	LayoutID  string
	Settings  arena.Settings
	Seed      int64 // 0 means current time
	TickRate  int
	Size      int // Window width and height in pixels
	SpawnHold bool
	Store     *storage.Store // Optional session history
	Logger    *log.Logger
}

// Run opens the window and blocks until it is closed or Escape is pressed.
// The finished session is recorded if a store is set.
func Run(opts Options) error {
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}
	if opts.Size <= 0 {
		opts.Size = 480
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	rng := rand.New(rand.NewSource(opts.Seed)) //nolint:gosec // Gameplay randomness
	g := NewGame(arena.New(opts.Settings, rng), nil, opts.Size, opts.Size, opts.SpawnHold)

	ebiten.SetWindowTitle(Title)
	ebiten.SetWindowSize(opts.Size, opts.Size)
	ebiten.SetTPS(opts.TickRate)

	logger.Debug("opening window", "layout", opts.LayoutID, "seed", opts.Seed, "tps", opts.TickRate)
	started := time.Now()
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("window: %w", err)
	}

	stats := g.Arena().Stats()
	snap := g.Arena().Snapshot()
	logger.Info("window closed",
		"layout", opts.LayoutID,
		"ticks", stats.Ticks,
		"balls", stats.BallsSpawned,
		"cleared", stats.BricksCleared,
	)
	logger.Debug("final state", "seed", opts.Seed, "hash", snap.Hash())

	if opts.Store != nil {
		_, err := opts.Store.SaveSession(storage.SessionRecord{
			Layout:        opts.LayoutID,
			Host:          storage.HostWindow,
			Seed:          opts.Seed,
			Ticks:         stats.Ticks,
			BallsSpawned:  stats.BallsSpawned,
			BricksCleared: stats.BricksCleared,
			Duration:      int(time.Since(started).Seconds()),
		})
		if err != nil {
			logger.Warn("could not save session", "error", err)
		}
	}
	return nil
}
