package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pong-bricks/internal/platform/tui"
	"github.com/vovakirdan/pong-bricks/internal/storage"
)

var (
	flagHistoryLimit int
	flagHistoryPlain bool
	flagHistoryClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse recorded sessions",
	Long: `Show recent sessions from the history database.

In a terminal this opens an interactive browser with one tab per layout.
Use --plain (or pipe the output) for a plain table.

Examples:
  bricks history
  bricks history --layout wall --plain
  bricks history --layout wall --clear`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 20, "Number of sessions to print with --plain")
	historyCmd.Flags().BoolVar(&flagHistoryPlain, "plain", false, "Print a plain table instead of the browser")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete all sessions of --layout")
}

func runHistory(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagHistoryClear {
		if flagLayout == "" {
			return errors.New("--clear needs --layout")
		}
		if err := store.ClearSessions(flagLayout); err != nil {
			return err
		}
		fmt.Printf("Cleared history of layout %q\n", flagLayout)
		return nil
	}

	if !flagHistoryPlain && term.IsTerminal(int(os.Stdout.Fd())) {
		width, height := terminalSize()
		return tui.RunHistory(store, flagLayout, width, height)
	}

	records, err := store.RecentSessions(flagLayout, flagHistoryLimit)
	if err != nil {
		return err
	}

	var totals *storage.LayoutTotals
	if flagLayout != "" {
		t, err := store.Totals(flagLayout)
		if err != nil {
			return err
		}
		totals = &t
	}

	printHistory(os.Stdout, records, totals)
	return nil
}

func printHistory(w io.Writer, records []storage.SessionRecord, totals *storage.LayoutTotals) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No sessions recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'bricks play' to record the first one!")
		return
	}

	fmt.Fprintf(w, "  %-16s  %-8s  %-8s  %-10s  %7s  %5s  %6s\n",
		"Date", "Layout", "Host", "Player", "Ticks", "Balls", "Bricks")
	fmt.Fprintf(w, "  %-16s  %-8s  %-8s  %-10s  %7s  %5s  %6s\n",
		"----", "------", "----", "------", "-----", "-----", "------")

	for _, r := range records {
		player := r.Player
		if player == "" {
			player = "-"
		}
		fmt.Fprintf(w, "  %-16s  %-8s  %-8s  %-10s  %7d  %5d  %6d\n",
			r.CreatedAt.Format("2006-01-02 15:04"),
			r.Layout, r.Host, player, r.Ticks, r.BallsSpawned, r.BricksCleared)
	}

	if totals != nil {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Total: %d sessions, %d ticks, %d balls, %d bricks cleared\n",
			totals.Sessions, totals.Ticks, totals.BallsSpawned, totals.BricksCleared)
	}
}
