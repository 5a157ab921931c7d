// flappy is a terminal Flappy Bird built on a fixed-step game loop core.
//
// Usage:
//
//	flappy play     - Play in this terminal
//	flappy serve    - Start SSH server for remote play
//	flappy sim      - Run the simulation headless and print the result
//	flappy config   - Print the effective game configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Use a custom game config YAML
//	--log-level <level>   - debug, info, warn, error (default: info)
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

const gameID = "flappy"

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy Bird in your terminal",
	Long: `Flappy Bird for the terminal: flap through gaps in an endless line of
pipes while gravity pulls you down.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  sim      - Run the simulation without a display
  config   - Print the effective configuration

Examples:
  flappy play
  flappy play --config ./my-flappy.yaml --watch
  flappy serve --ssh :2222
  flappy sim --seed 42 --flap-every 20`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}
