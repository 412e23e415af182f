package snake

import "fmt"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the scalar session state: the debug side channel shown
// under the field and the basis of determinism tests.
type Snapshot struct {
	Tick        uint64
	Mode        string
	Score       int
	ScoreStep   int
	Delay       float64
	TailLen     int
	Heading     Heading
	HeadX       int
	HeadY       int
	FruitX      int
	FruitY      int
	PortalWalls bool
	Outcome     Outcome
	State       GameStateType
}

// Snapshot returns the current engine snapshot.
func (e *Engine) Snapshot() Snapshot {
	state := StatePlaying
	if e.over {
		state = StateGameOver
	}
	return Snapshot{
		Tick:        e.ticks,
		Score:       e.score,
		ScoreStep:   e.scoreStep,
		Delay:       e.delay,
		TailLen:     len(e.body.Tail),
		Heading:     e.body.Heading,
		HeadX:       e.body.Head.X,
		HeadY:       e.body.Head.Y,
		FruitX:      e.fruit.X,
		FruitY:      e.fruit.Y,
		PortalWalls: e.settings.PortalWalls,
		Outcome:     e.outcome,
		State:       state,
	}
}

// DebugLines formats the debug side channel, one field per line.
func (s Snapshot) DebugLines() []string {
	return []string{
		fmt.Sprintf("scorestep: %d", s.ScoreStep),
		fmt.Sprintf("delayTime: %g", s.Delay),
		fmt.Sprintf("nTail: %d", s.TailLen),
		fmt.Sprintf("dir: %s", s.Heading),
		fmt.Sprintf("X/Y: %d/%d", s.HeadX, s.HeadY),
		fmt.Sprintf("fruitX/Y: %d/%d", s.FruitX, s.FruitY),
		fmt.Sprintf("portalWalls: %t", s.PortalWalls),
	}
}
