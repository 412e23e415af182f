// Package config provides YAML-based game configuration loading, difficulty
// presets and command-line value parsing for the snake game.
package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// SnakeConfig contains all configuration for a snake session.
type SnakeConfig struct {
	Field FieldConfig `yaml:"field"`
	Speed SpeedConfig `yaml:"speed"`
	Debug bool        `yaml:"debug"` // show the debug panel on start
}

// FieldConfig defines the playing field.
type FieldConfig struct {
	Width       int  `yaml:"width"`
	Height      int  `yaml:"height"`
	PortalWalls bool `yaml:"portal_walls"`
}

// SpeedConfig defines the tick pacing.
type SpeedConfig struct {
	Delay      int    `yaml:"delay"`      // initial inter-tick delay in milliseconds
	Difficulty string `yaml:"difficulty"` // optional preset overriding delay
}

// Normalize applies the difficulty preset, if any, then clamps every value
// into its legal range. It returns one warning per adjusted value; invalid
// values are never fatal.
func (c *SnakeConfig) Normalize() []string {
	var warnings []string

	if c.Speed.Difficulty != "" {
		preset, err := ParseDifficulty(c.Speed.Difficulty)
		if err != nil {
			warnings = append(warnings, err.Error())
			c.Speed.Difficulty = ""
		} else {
			ApplyPreset(c, preset)
		}
	}

	clamp := func(name string, v *int, lo, hi int) {
		if n := core.Clamp(*v, lo, hi); n != *v {
			warnings = append(warnings, fmt.Sprintf("%s %d out of range [%d, %d], using %d", name, *v, lo, hi, n))
			*v = n
		}
	}
	clamp("width", &c.Field.Width, core.MinFieldSize, core.MaxFieldSize)
	clamp("height", &c.Field.Height, core.MinFieldSize, core.MaxFieldSize)
	clamp("delay", &c.Speed.Delay, 0, core.MaxDelay)
	return warnings
}

// Runtime converts the config into the game runtime config for a screen of
// the given size.
func (c SnakeConfig) Runtime(screenW, screenH int, seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:     screenW,
		ScreenH:     screenH,
		Width:       c.Field.Width,
		Height:      c.Field.Height,
		PortalWalls: c.Field.PortalWalls,
		Delay:       c.Speed.Delay,
		Debug:       c.Debug,
		Seed:        seed,
	}.Normalized()
}

// YAML encodes the config in the same layout as the config file.
func (c SnakeConfig) YAML() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}
