// ledboy simulates a handheld LED-matrix game console in the terminal.
//
// Usage:
//
//	ledboy list              - List the game catalog
//	ledboy sim               - Run the simulator starting in the menu
//	ledboy play <game>       - Jump straight into one game
//	ledboy serve             - Serve the simulator over SSH
//
// Global flags:
//
//	--config <path>  - Path to a config YAML (see configs/ledboy.yaml)
//	--seed <value>   - RNG seed for reproducible rounds (0 = time-based)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/avolkov/ledboy/internal/config"

	// Import games to register them
	_ "github.com/avolkov/ledboy/internal/games/asteroids"
	_ "github.com/avolkov/ledboy/internal/games/breakout"
	_ "github.com/avolkov/ledboy/internal/games/checkers"
	_ "github.com/avolkov/ledboy/internal/games/dino"
	_ "github.com/avolkov/ledboy/internal/games/flappy"
	_ "github.com/avolkov/ledboy/internal/games/minesweeper"
	_ "github.com/avolkov/ledboy/internal/games/pacman"
	_ "github.com/avolkov/ledboy/internal/games/pong"
	_ "github.com/avolkov/ledboy/internal/games/shooter"
	_ "github.com/avolkov/ledboy/internal/games/snake"
	_ "github.com/avolkov/ledboy/internal/games/tetris"
	_ "github.com/avolkov/ledboy/internal/games/tictactoe"
	_ "github.com/avolkov/ledboy/internal/games/tug"
)

var (
	// Global flags
	flagConfig string
	flagSeed   int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ledboy",
	Short: "LED Boy - a handheld LED-matrix console in your terminal",
	Long: `LED Boy simulates a handheld game device built around an 8x8
addressable LED matrix, a small status panel, a buzzer, and six
buttons, with a catalog of eighteen minigames.

Available commands:
  list     - Show the game catalog
  sim      - Run the simulator starting in the menu
  play     - Jump straight into one game
  serve    - Serve the simulator over SSH

Examples:
  ledboy list
  ledboy sim
  ledboy play snake
  ledboy play tetris --seed 42
  ledboy serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig resolves the engine configuration from the global flag.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// newLogger builds the CLI logger.
func newLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "ledboy",
	})
}
