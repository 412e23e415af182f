package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named starting speed.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyInsane DifficultyPreset = "insane"
)

// Presets lists the difficulty presets from slowest to fastest.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyInsane}

// DelayForPreset returns the initial delay in milliseconds for a preset.
// The snake still speeds up by one percent per fruit from there.
func DelayForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 300
	case DifficultyHard:
		return 100
	case DifficultyInsane:
		return 50
	default:
		return 200
	}
}

// ParseDifficulty resolves a preset name, case-insensitively.
func ParseDifficulty(name string) (DifficultyPreset, error) {
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Presets {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown difficulty %q (expected easy, normal, hard or insane)", name)
}

// ApplyPreset sets the initial delay from a difficulty preset.
func ApplyPreset(cfg *SnakeConfig, preset DifficultyPreset) {
	cfg.Speed.Difficulty = string(preset)
	cfg.Speed.Delay = DelayForPreset(preset)
}
