// road drives a car along an endlessly scrolling road in the terminal.
//
// Usage:
//
//	road play               - Drive locally
//	road frame              - Print one rendered frame as text
//	road history            - Browse recorded runs
//	road serve              - Start SSH server for remote driving
//
// Global flags:
//
//	--config <path> - Road config YAML (default: search ~/.road/configs, ./configs)
//	--fps <rate>    - Override the configured tick rate
//	--db <path>     - Set database path (default: ~/.road/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-road/internal/config"
)

var (
	// Global flags
	flagConfig string
	flagFPS    int
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "road",
	Short: "Road - steer a car down a scrolling road in your terminal",
	Long: `Road renders a car on an endlessly scrolling road. Hold the left or
right arrow to steer; the road scrolls on its own.

Available commands:
  play     - Drive locally
  frame    - Print a single frame as text
  history  - Browse recorded runs
  serve    - Start SSH server for remote driving

Examples:
  road play
  road play --config ./fast.yaml --log road.log
  road frame --elapsed 5 --right
  road history --limit 20
  road serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to road config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = use config)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.road/runs.db", "Path to runs database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(frameCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig loads the road config and applies the global overrides.
func loadConfig() (config.RoadConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.RoadConfig{}, err
	}
	if flagFPS > 0 {
		cfg.Timing.TickRate = flagFPS
	}
	return cfg, nil
}
