package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/avolkov/ledboy/internal/platform/tui"
	"github.com/avolkov/ledboy/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Jump straight into one game",
	Long: `Start the simulator directly inside a round of the given game.

Controls:
  Arrows/WASD  - D-pad
  Enter/Space  - Action button (rotate, shoot, pause)
  Esc          - Select button (abort to menu)
  Q/Ctrl+C     - Quit the simulator

Examples:
  ledboy play snake
  ledboy play tetris --seed 42
  ledboy play minesweeper`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'ledboy list' to see the catalog.")
		os.Exit(1)
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: play needs an interactive terminal")
		os.Exit(1)
	}

	if err := tui.RunGame(loadConfig(), flagSeed, newLogger(), gameID); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
