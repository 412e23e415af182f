package snake

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Scoring and speed constants.
const (
	FruitPoints     = 10
	SurvivalPoints  = 2
	SurvivalPeriod  = 100  // moving ticks between survival bonuses
	ScoreStepWrap   = 1000 // scoreStep resets here and pays an extra bonus
	DelayRamp       = 0.99 // delay multiplier per fruit
	DelayFloorLimit = 1e-20
)

// Outcome is the result of a tick.
type Outcome int

const (
	OutcomeNone          Outcome = iota // Still playing
	OutcomeSelfCollision                // Head ran into the tail
	OutcomeBoundaryExit                 // Head left the field with solid walls
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeSelfCollision:
		return "self-collision"
	case OutcomeBoundaryExit:
		return "boundary-exit"
	default:
		return "unknown"
	}
}

// Settings is the immutable session configuration of an Engine.
type Settings struct {
	Width       int
	Height      int
	PortalWalls bool
	Delay       float64 // initial inter-tick delay in ms
}

// SettingsFrom derives engine settings from a runtime config.
func SettingsFrom(cfg core.RuntimeConfig) Settings {
	cfg = cfg.Normalized()
	return Settings{
		Width:       cfg.Width,
		Height:      cfg.Height,
		PortalWalls: cfg.PortalWalls,
		Delay:       float64(cfg.Delay),
	}
}

// Engine owns one snake session and advances it tick by tick.
type Engine struct {
	settings Settings
	grid     Grid
	rng      *rand.Rand

	body      Body
	fruit     core.Point
	score     int
	scoreStep int
	delay     float64
	eaten     int // fruit eaten since the last Setup or ResetScore
	ticks     uint64

	over        bool
	outcome     Outcome
	finalScore  int
	finalLength int
}

// NewEngine creates an engine and runs Setup.
func NewEngine(s Settings, rng *rand.Rand) *Engine {
	s.Width = core.Clamp(s.Width, core.MinFieldSize, core.MaxFieldSize)
	s.Height = core.Clamp(s.Height, core.MinFieldSize, core.MaxFieldSize)
	s.Delay = core.ClampF(s.Delay, 0, core.MaxDelay)

	e := &Engine{
		settings: s,
		grid:     NewGrid(s.Width, s.Height),
		rng:      rng,
	}
	e.Setup()
	return e
}

// Setup starts a fresh session: centered motionless snake, random fruit
// anywhere on the field, zero score, initial delay.
func (e *Engine) Setup() {
	e.over = false
	e.outcome = OutcomeNone
	e.finalScore = 0
	e.finalLength = 0
	e.body.Reset(core.Point{X: e.grid.W / 2, Y: e.grid.H / 2})
	e.fruit = e.randomCell()
	e.score = 0
	e.scoreStep = 0
	e.eaten = 0
	e.delay = e.settings.Delay
}

// ResetScore clears score, survival counter and tail and re-rolls the fruit.
// Head, heading and the current delay are kept.
func (e *Engine) ResetScore() {
	e.fruit = e.randomCell()
	e.score = 0
	e.scoreStep = 0
	e.eaten = 0
	e.body.ClearTail()
}

// Tick advances the session by one step with an optional heading request
// (HeadingNone means no input). Once a tick returns a terminal outcome,
// further ticks do nothing until Setup.
func (e *Engine) Tick(req Heading) Outcome {
	if e.over {
		return e.outcome
	}
	e.ticks++

	b := &e.body
	b.Turn(req)

	if !b.ShiftTail() {
		e.finish(OutcomeSelfCollision, e.score, len(b.Tail))
		return e.outcome
	}

	b.AdvanceHead()

	if e.settings.PortalWalls {
		b.Head = e.grid.Wrap(b.Head)
	} else if !e.grid.Contains(b.Head) {
		// The field is reset so a redraw before the restart prompt shows a
		// clean board; the score of the lost run is kept aside.
		score, length := e.score, len(b.Tail)
		e.Setup()
		e.finish(OutcomeBoundaryExit, score, length)
		return e.outcome
	}

	if b.Heading != HeadingNone {
		e.scoreStep++
		if e.scoreStep%SurvivalPeriod == 0 {
			e.score += SurvivalPoints
		}
		if e.scoreStep >= ScoreStepWrap {
			e.scoreStep = 0
			e.score += SurvivalPoints
		}
	}

	if b.Head == e.fruit {
		e.eatFruit()
	}

	e.assertInvariants()
	return OutcomeNone
}

// eatFruit scores, speeds up, grows the tail and re-rolls the fruit inside
// the inner ring of the field.
func (e *Engine) eatFruit() {
	e.score += FruitPoints
	if e.delay > DelayFloorLimit {
		e.delay *= DelayRamp
	} else {
		e.delay = 0
	}
	e.body.Grow()
	e.eaten++
	e.fruit = core.Point{
		X: e.rng.Intn(e.grid.W-2) + 1,
		Y: e.rng.Intn(e.grid.H-2) + 1,
	}
}

func (e *Engine) finish(o Outcome, score, length int) {
	e.over = true
	e.outcome = o
	e.finalScore = score
	e.finalLength = length
}

// randomCell picks any cell of the field.
func (e *Engine) randomCell() core.Point {
	return core.Point{
		X: e.rng.Intn(e.grid.W),
		Y: e.rng.Intn(e.grid.H),
	}
}

func (e *Engine) assertInvariants() {
	if len(e.body.Tail) != e.eaten {
		panic(fmt.Sprintf("snake: tail length %d does not match %d fruit eaten", len(e.body.Tail), e.eaten))
	}
	if !e.grid.Contains(e.body.Head) {
		panic(fmt.Sprintf("snake: head (%d, %d) outside %dx%d field", e.body.Head.X, e.body.Head.Y, e.grid.W, e.grid.H))
	}
	if e.delay < 0 {
		panic(fmt.Sprintf("snake: negative delay %g", e.delay))
	}
}

// Settings returns the session configuration.
func (e *Engine) Settings() Settings { return e.settings }

// Grid returns the field geometry.
func (e *Engine) Grid() Grid { return e.grid }

// Body returns a read-only copy of the snake.
func (e *Engine) Body() Body { return e.body.clone() }

// Fruit returns the fruit cell.
func (e *Engine) Fruit() core.Point { return e.fruit }

// Score returns the live score.
func (e *Engine) Score() int { return e.score }

// ScoreStep returns the survival tick counter.
func (e *Engine) ScoreStep() int { return e.scoreStep }

// Delay returns the current inter-tick delay in ms.
func (e *Engine) Delay() float64 { return e.delay }

// Ticks returns the number of ticks simulated since the engine was created.
func (e *Engine) Ticks() uint64 { return e.ticks }

// Over reports whether the session ended.
func (e *Engine) Over() bool { return e.over }

// Outcome returns how the session ended, or OutcomeNone while playing.
func (e *Engine) Outcome() Outcome { return e.outcome }

// FinalScore returns the score of the run that just ended.
func (e *Engine) FinalScore() int { return e.finalScore }

// FinalLength returns the tail length of the run that just ended.
func (e *Engine) FinalLength() int { return e.finalLength }
