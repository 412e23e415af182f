package core

import "time"

// Field and delay limits shared by the CLI, the config loader and the engine.
const (
	DefaultWidth  = 30
	DefaultHeight = 30
	MinFieldSize  = 3
	MaxFieldSize  = 200
	DefaultDelay  = 200   // ms
	MaxDelay      = 60000 // ms
)

// RuntimeConfig contains configuration passed to games at initialization.
// Everything except the screen size is fixed for the whole session.
type RuntimeConfig struct {
	ScreenW     int   // Screen width in characters
	ScreenH     int   // Screen height in characters
	Width       int   // Playing field width in cells
	Height      int   // Playing field height in cells
	PortalWalls bool  // Wrap around instead of dying at the border
	Delay       int   // Initial inter-tick delay in milliseconds
	Debug       bool  // Start with the debug panel visible
	Seed        int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 40,
		Width:   DefaultWidth,
		Height:  DefaultHeight,
		Delay:   DefaultDelay,
		Seed:    0, // 0 means use current time in platform layer
	}
}

// Normalized returns a copy with field size and delay clamped to their limits.
func (c RuntimeConfig) Normalized() RuntimeConfig {
	c.Width = Clamp(c.Width, MinFieldSize, MaxFieldSize)
	c.Height = Clamp(c.Height, MinFieldSize, MaxFieldSize)
	c.Delay = Clamp(c.Delay, 0, MaxDelay)
	return c
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int           // Current score (final score once the game is over)
	GameOver bool          // Whether the game has ended
	Paused   bool          // Whether the game waits for a key to continue
	Waiting  bool          // Whether the game waits for a larger window
	Delay    time.Duration // Delay before the next tick
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}

// RunSummary describes the most recent run of a game for logs and the
// end-of-session report.
type RunSummary struct {
	Score   int    // Final (or current) score
	Length  int    // Tail segments behind the head
	Cause   string // How the run ended, empty while playing
	Ticks   uint64 // Simulation ticks since the game was created
	Variant string // Registered game ID
}
