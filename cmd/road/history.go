package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-road/internal/platform/tui"
	"github.com/vovakirdan/tui-road/internal/storage"
)

var (
	flagLimit  int
	flagPlayer string
	flagPlain  bool
	flagClear  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded runs",
	Long: `Browse the most recent runs, newest first.

When --player is set the list starts filtered to that player; press tab to
switch between that player and everyone. Use --plain to print the list
without the interactive view, or --clear to delete every recorded run.

Examples:
  road history
  road history --limit 20 --player alice
  road history --plain
  road history --clear`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagLimit, "limit", 50, "Maximum number of runs to list")
	historyCmd.Flags().StringVar(&flagPlayer, "player", "", "Only show runs by this player")
	historyCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print runs as plain text")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs")
}

func runHistory(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		n, err := clearRuns(store)
		if err != nil {
			store.Close()
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Deleted %d runs\n", n)
		return
	}

	if flagPlain {
		if err := printRuns(store, flagPlayer, flagLimit); err != nil {
			store.Close()
			fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
			os.Exit(1)
		}
		return
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunHistory(store, flagPlayer, flagLimit, width, height); err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printRuns(store *storage.Store, player string, limit int) error {
	runs, err := store.RecentRuns(player, limit)
	if err != nil {
		return err
	}

	fmt.Println("Recent runs")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'road play' to take the car for a drive!")
		return nil
	}

	fmt.Printf("  %-12s  %-16s  %-8s  %-8s  %s\n", "Player", "Started", "Time", "Frames", "Scrolled")
	fmt.Printf("  %-12s  %-16s  %-8s  %-8s  %s\n", "------", "-------", "----", "------", "--------")
	for _, r := range runs {
		fmt.Printf("  %-12s  %-16s  %-8s  %-8d  %.0f\n",
			r.Player,
			r.StartedAt.Format("2006-01-02 15:04"),
			r.Duration.Round(time.Second),
			r.Frames,
			r.Scrolled,
		)
	}

	fmt.Println()
	if longest, err := store.LongestRun(); err == nil && longest != nil {
		fmt.Printf("Farthest: %.0f by %s\n", longest.Scrolled, longest.Player)
	}
	return nil
}

// clearRuns deletes every recorded run and returns how many there were.
func clearRuns(store *storage.Store) (int, error) {
	n, err := store.RunCount()
	if err != nil {
		return 0, err
	}
	if err := store.ClearRuns(); err != nil {
		return 0, err
	}
	return n, nil
}
