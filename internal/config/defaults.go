package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-snake/internal/core"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Field: FieldConfig{
			Width:       core.DefaultWidth,
			Height:      core.DefaultHeight,
			PortalWalls: false,
		},
		Speed: SpeedConfig{
			Delay: core.DefaultDelay,
		},
	}
}

// DefaultYAML returns the embedded default config file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
