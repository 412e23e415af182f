package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play snake",
	Long: `Start playing. Variants: snake (solid walls unless --portal) and
snake_portal (always wraps around).

Controls:
  W/A/S/D, arrows  - Steer
  P                - Pause until any key
  B                - Toggle debug panel
  R                - Reset score and tail
  Q/Esc            - Quit
  Y/R, N           - Play again or leave after game over
  ?                - Toggle full help

The field must fit the terminal: a W x H field needs 2W+3 columns and
H+4 rows (border, score line and help bar). The default 30x30 field needs
63x34; until the window is that large the game shows "Window too small"
and waits. Use --width/--height for smaller terminals.

Difficulty options:
  easy   - 300 ms initial delay
  normal - 200 ms initial delay
  hard   - 100 ms initial delay
  insane - 50 ms initial delay

Examples:
  snake play
  snake play snake_portal
  snake play -t 80 --width 40`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := "snake"
	if len(args) == 1 {
		gameID = args[0]
	}
	return play(cmd, gameID, "")
}

// play runs one game session. A non-empty preset overrides the configured
// difficulty.
func play(cmd *cobra.Command, gameID string, preset config.DifficultyPreset) error {
	if err := setLogLevel(logger); err != nil {
		return err
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q, run 'snake list' to see available variants", gameID)
	}

	cfg, err := resolveConfig(cmd.Flags(), logger)
	if err != nil {
		return err
	}
	if preset != "" {
		config.ApplyPreset(&cfg, preset)
	}

	width, height := terminalSize()

	sessionLog, closeLog, err := openSessionLog()
	if err != nil {
		return err
	}
	defer closeLog()

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	rc := cfg.Runtime(width, height, flagSeed)
	warnIfTooSmall(logger, rc)

	// Run the game
	results, err := tui.Run(game, rc, sessionLog)
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	if report := results.Report(); report != "" {
		fmt.Fprint(cmd.OutOrStdout(), report)
	}
	return nil
}

// warnIfTooSmall reports a field that does not fit the terminal. The game
// still starts and waits for a larger window. Returns false on a misfit.
func warnIfTooSmall(l *log.Logger, rc core.RuntimeConfig) bool {
	needW, needH := snake.ScreenSize(rc.Width, rc.Height)
	needH++ // help bar
	if rc.ScreenW >= needW && rc.ScreenH >= needH {
		return true
	}
	l.Warn("field does not fit the terminal, resize the window or use --width/--height",
		"field", fmt.Sprintf("%dx%d", rc.Width, rc.Height),
		"need", fmt.Sprintf("%dx%d", needW, needH),
		"terminal", fmt.Sprintf("%dx%d", rc.ScreenW, rc.ScreenH),
	)
	return false
}

// terminalSize returns the size of the terminal, or 80x24 when stdout is not one.
func terminalSize() (int, int) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}

// openSessionLog returns the logger used while the TUI owns the terminal:
// the --log file, or a discarding logger.
func openSessionLog() (*log.Logger, func(), error) {
	if flagLog == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(flagLog, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	l := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
	})
	if err := setLogLevel(l); err != nil {
		f.Close()
		return nil, nil, err
	}
	//nolint:errcheck // Best-effort close on exit
	return l, func() { f.Close() }, nil
}
