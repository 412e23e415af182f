package main

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// resolveConfig loads the config file and applies the flags set on fs.
// Invalid flag values are reported through l and replaced, never fatal;
// only an unreadable --config file is an error.
//
// An explicit --delay drops a difficulty preset from the config file;
// --difficulty wins over both.
func resolveConfig(fs *pflag.FlagSet, l *log.Logger) (config.SnakeConfig, error) {
	cfg, source, err := config.LoadWithSource(flagConfig)
	if err != nil {
		return cfg, err
	}
	l.Debug("config loaded", "source", source)

	if fs.Changed("width") {
		cfg.Field.Width = flagWidth
	}
	if fs.Changed("height") {
		cfg.Field.Height = flagHeight
	}
	if fs.Changed("portal") {
		cfg.Field.PortalWalls = flagPortal
	}
	if fs.Changed("debug") {
		cfg.Debug = flagDebug
	}
	if fs.Changed("delay") {
		delay, err := config.ParseNonNegative(flagDelay)
		if err != nil {
			l.Warn("ignoring invalid delay, using 0", "value", flagDelay, "err", err)
			delay = 0
		}
		cfg.Speed.Delay = delay
		cfg.Speed.Difficulty = ""
	}
	if fs.Changed("difficulty") {
		cfg.Speed.Difficulty = flagDifficulty
	}

	for _, w := range cfg.Normalize() {
		l.Warn(w)
	}
	return cfg, nil
}
