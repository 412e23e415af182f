package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a variant and difficulty, then play",
	Long: `Start with an interactive picker for the variant and the difficulty.

Controls:
  Up/Down/w/s  - Navigate
  Enter/Space  - Select
  Esc          - Back
  Q            - Quit

Examples:
  snake menu
  snake menu --width 20 --height 20`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(cmd *cobra.Command, args []string) error {
	width, height := terminalSize()

	sel, err := tui.RunMenu(width, height)
	if err != nil {
		return err
	}
	// User quit
	if sel == nil {
		return nil
	}
	return play(cmd, sel.GameID, sel.Difficulty)
}
