package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pong-bricks/internal/registry"
)

var layoutsCmd = &cobra.Command{
	Use:   "layouts",
	Short: "List brick layouts",
	Long:  `Shows every registered brick layout with its brick count.`,
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		printLayouts(os.Stdout, registry.List())
	},
}

func printLayouts(w io.Writer, layouts []registry.LayoutInfo) {
	if len(layouts) == 0 {
		fmt.Fprintln(w, "No layouts available.")
		return
	}

	fmt.Fprintln(w, "Available layouts:")
	fmt.Fprintln(w)

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, l := range layouts {
		if len(l.ID) > maxIDLen {
			maxIDLen = len(l.ID)
		}
	}

	fmt.Fprintf(w, "  %-*s  %6s  %s\n", maxIDLen, "ID", "Bricks", "Title")
	fmt.Fprintf(w, "  %-*s  %6s  %s\n", maxIDLen, "--", "------", "-----")
	for _, l := range layouts {
		fmt.Fprintf(w, "  %-*s  %6d  %s\n", maxIDLen, l.ID, l.Bricks, l.Title)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'bricks play --layout <id>' to play one.")
}
