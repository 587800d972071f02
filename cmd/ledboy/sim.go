package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/avolkov/ledboy/internal/platform/tui"
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the simulator starting in the menu",
	Long: `Start the terminal simulator in the device menu.

Controls:
  Arrows/WASD  - D-pad
  Enter/Space  - Action button (start, rotate, shoot, pause)
  Esc          - Select button (back to menu; sound toggle in menu)
  Q/Ctrl+C     - Quit the simulator

Examples:
  ledboy sim
  ledboy sim --seed 42
  ledboy sim --config ./my-ledboy.yaml`,
	Run: runSim,
}

func runSim(cmd *cobra.Command, args []string) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: sim needs an interactive terminal")
		os.Exit(1)
	}

	if err := tui.Run(loadConfig(), flagSeed, newLogger()); err != nil {
		fmt.Fprintf(os.Stderr, "Error running simulator: %v\n", err)
		os.Exit(1)
	}
}
