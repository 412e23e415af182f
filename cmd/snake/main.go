// snake is the classic snake game for the terminal.
//
// Usage:
//
//	snake [variant]          - Play (default variant: snake)
//	snake play [variant]     - Same as above
//	snake list               - List available variants
//	snake menu               - Pick variant and difficulty interactively
//	snake config             - Print the resolved configuration as YAML
//
// Global flags:
//
//	-t, --delay <ms>         - Initial delay between ticks (0..60000)
//	-p, --portal             - Wrap around the edges instead of dying
//	-b, --debug              - Show the debug panel
//	-W, --width <cells>      - Field width (3..200)
//	-H, --height <cells>     - Field height (3..200)
//	--difficulty <preset>    - easy, normal, hard or insane
//	--seed <value>           - RNG seed for reproducible gameplay
//	--config <path>          - Custom config YAML
//	--log <path>             - Write session logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	// Import games to register them
	_ "github.com/vovakirdan/tui-snake/internal/snake"
)

var (
	// Global flags
	flagWidth      int
	flagHeight     int
	flagDelay      string
	flagPortal     bool
	flagDebug      bool
	flagDifficulty string
	flagSeed       int64
	flagConfig     string
	flagLog        string
	flagLogLevel   string
)

// logger reports to stderr before and after the TUI owns the terminal.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "snake",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake [variant]",
	Short: "Snake - the classic game in your terminal",
	Long: `Snake is played on a bordered grid drawn with plain characters.
Steer the snake to the fruit [F]; every fruit adds 10 points, one tail
segment and makes the snake one percent faster. Moving earns 2 points
every 100 steps. Running into the tail or, with solid walls, the border
ends the game.

Available commands:
  play     - Play (default)
  list     - Show available variants
  menu     - Pick variant and difficulty interactively
  config   - Print the resolved configuration

Examples:
  snake
  snake -t 100 -p
  snake snake_portal --difficulty hard
  snake --width 20 --height 15 --seed 42
  snake config --config ./my-snake.yaml`,
	Args:          cobra.MaximumNArgs(1),
	RunE:          runPlay,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	bindFlags(rootCmd.PersistentFlags())

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(configCmd)
}

// bindFlags registers the global flags on fs, resetting them to defaults.
func bindFlags(fs *pflag.FlagSet) {
	fs.IntVarP(&flagWidth, "width", "W", 0, "Field width in cells (default from config)")
	fs.IntVarP(&flagHeight, "height", "H", 0, "Field height in cells (default from config)")
	fs.StringVarP(&flagDelay, "delay", "t", "", "Initial delay between ticks in ms, digits only")
	fs.BoolVarP(&flagPortal, "portal", "p", false, "Portal walls: wrap around the edges")
	fs.BoolVarP(&flagDebug, "debug", "b", false, "Show the debug panel")
	fs.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, insane")
	fs.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	fs.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	fs.StringVar(&flagLog, "log", "", "Append session logs to this file")
	fs.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
}

// setLogLevel applies --log-level to l.
func setLogLevel(l *log.Logger) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	l.SetLevel(level)
	return nil
}
