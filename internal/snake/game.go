package snake

import (
	"bytes"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// Mode selects the wall behaviour of a registered variant.
type Mode string

const (
	ModeWalls  Mode = "walls"
	ModePortal Mode = "portal"
)

// hudHeight is the number of rows under the field that must always fit.
const hudHeight = 1

// Game adapts an Engine to the frame loop: it turns one input command per
// frame into engine calls and draws the field, HUD and overlays.
type Game struct {
	mode   Mode
	engine *Engine

	debug    bool
	paused   bool
	tooSmall bool
	best     int // best score of this process

	screenW int
	screenH int
}

// New creates a Snake game with solid walls (unless the config asks for portals).
func New() *Game {
	return &Game{mode: ModeWalls}
}

// NewPortal creates a Snake game that always wraps around the edges.
func NewPortal() *Game {
	return &Game{mode: ModePortal}
}

var (
	_ registry.Resizer    = (*Game)(nil)
	_ registry.Summarizer = (*Game)(nil)
	_ registry.Inspector  = (*Game)(nil)
)

func init() {
	registry.Register("snake", func() registry.Game {
		return New()
	})
	registry.Register("snake_portal", func() registry.Game {
		return NewPortal()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModePortal {
		return "snake_portal"
	}
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModePortal {
		return "Snake (Portal Walls)"
	}
	return "Snake"
}

// Reset initializes the session from cfg.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if g.mode == ModePortal {
		cfg.PortalWalls = true
	}
	g.engine = NewEngine(SettingsFrom(cfg), rand.New(rand.NewSource(cfg.Seed)))
	g.debug = cfg.Debug
	g.paused = false
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize updates the screen size without touching the session.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	if g.engine == nil {
		return
	}
	grid := g.engine.Grid()
	needW, needH := ScreenSize(grid.W, grid.H)
	screen := core.NewRect(0, 0, w, h)
	g.tooSmall = !screen.Contains(needW-1, needH-1)
}

// Engine exposes the underlying engine.
func (g *Game) Engine() *Engine {
	return g.engine
}

// Debug reports whether the debug side channel is shown.
func (g *Game) Debug() bool {
	return g.debug
}

// Step consumes one frame of input and advances the simulation.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	e := g.engine

	if e.Over() {
		if in.Has(core.ActionRestart) {
			e.Setup()
		}
		return core.StepResult{State: g.State()}
	}

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	// Any key ends a pause and is swallowed; the tick that was held back runs now.
	if g.paused {
		if in.Empty() {
			return core.StepResult{State: g.State()}
		}
		g.paused = false
		g.tick(HeadingNone)
		return core.StepResult{State: g.State()}
	}

	req := HeadingNone
	switch {
	case in.Action.IsMove():
		req = headingFor(in.Action)
	case in.Has(core.ActionPause):
		g.paused = true
		return core.StepResult{State: g.State()}
	case in.Has(core.ActionDebug):
		g.debug = !g.debug
	case in.Has(core.ActionResetScore):
		e.ResetScore()
	}

	g.tick(req)
	return core.StepResult{State: g.State()}
}

func (g *Game) tick(req Heading) {
	g.engine.Tick(req)
	if s := g.score(); s > g.best {
		g.best = s
	}
}

func (g *Game) score() int {
	if g.engine.Over() {
		return g.engine.FinalScore()
	}
	return g.engine.Score()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score(),
		GameOver: g.engine.Over(),
		Paused:   g.paused,
		Waiting:  g.tooSmall,
		Delay:    time.Duration(g.engine.Delay() * float64(time.Millisecond)),
	}
}

// Snapshot returns the engine snapshot tagged with this game's mode.
func (g *Game) Snapshot() Snapshot {
	s := g.engine.Snapshot()
	s.Mode = string(g.mode)
	switch {
	case g.tooSmall:
		s.State = StatePausedSmall
	case g.paused:
		s.State = StatePaused
	}
	return s
}

// Summary describes the current run.
func (g *Game) Summary() core.RunSummary {
	e := g.engine
	sum := core.RunSummary{
		Score:   g.score(),
		Length:  e.body.Len(),
		Ticks:   e.Ticks(),
		Variant: g.ID(),
	}
	if e.Over() {
		sum.Cause = e.Outcome().String()
		sum.Length = e.FinalLength()
	}
	return sum
}

// Field renders the bare field buffer.
func (g *Game) Field() []byte {
	e := g.engine
	return Render(e.Grid(), e.Body(), e.Fruit(), RenderOptions{
		PortalWalls: e.Settings().PortalWalls,
		Debug:       g.debug,
	})
}

// ScreenSize returns the smallest screen a w×h field fits on, HUD included.
func ScreenSize(w, h int) (int, int) {
	grid := NewGrid(w, h)
	return grid.Stride() - 1, grid.H + 2 + hudHeight
}

// frameRect is the screen area covered by the field border.
func (g *Game) frameRect() core.Rect {
	grid := g.engine.Grid()
	return core.NewRect(0, 0, grid.Stride()-1, grid.H+2)
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	frame := g.frameRect()

	if g.tooSmall {
		msg := fmt.Sprintf("Need %dx%d", frame.W, frame.H+hudHeight)
		g.renderOverlay(dst, core.NewRect(0, 0, dst.Width(), dst.Height()), "Window too small", msg)
		return
	}

	g.renderField(dst)

	hudY := frame.Bottom()
	scoreText := fmt.Sprintf("score: %d", g.score())
	dst.DrawTextColor(0, hudY, scoreText, core.ColorBrightYellow)
	dst.DrawTextColor(len(scoreText)+2, hudY, fmt.Sprintf("best: %d", g.best), core.ColorYellow)

	if g.debug {
		dst.DrawTextColor(0, hudY+1, strings.Repeat("-", frame.W), core.ColorGray)
		for i, line := range g.Snapshot().DebugLines() {
			dst.DrawTextColor(0, hudY+2+i, line, core.ColorCyan)
		}
	}

	switch {
	case g.engine.Over():
		g.renderOverlay(dst, frame, "##  G a m e - O v e r  ##", fmt.Sprintf("score %d  again ? [y/n]", g.score()))
	case g.paused:
		g.renderOverlay(dst, frame, "##  PAUSED  ##", "press any key to continue")
	}
}

// renderField copies the field buffer onto the screen with colors.
func (g *Game) renderField(dst *core.Screen) {
	grid := g.engine.Grid()
	lines := bytes.Split(g.Field(), []byte{'\n'})
	for y, line := range lines {
		border := y == 0 || y == grid.H+1
		for x, ch := range line {
			c := core.ColorGray
			if !border && x > 0 && x < len(line)-1 {
				c = glyphColor(ch)
			}
			dst.SetColor(x, y, rune(ch), c)
		}
	}
}

func glyphColor(ch byte) core.Color {
	switch ch {
	case 'F', '[', ']':
		return core.ColorRed
	case '<', '^', '>', 'v', 'O':
		return core.ColorBrightGreen
	case GlyphCorner, GlyphHorizontal, GlyphVertical:
		return core.ColorGreen
	case '.':
		return core.ColorGray
	default:
		return core.ColorDefault
	}
}

// renderOverlay draws a centered two-line message box inside area.
func (g *Game) renderOverlay(dst *core.Screen, area core.Rect, line1, line2 string) {
	boxW := max(len(line1), len(line2)) + 4
	box := area.Centered(boxW, 5)

	dst.FillRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(box, box.Y+1, line1)
	dst.DrawTextCentered(box, box.Y+3, line2)
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	s := g.Snapshot()
	var b strings.Builder
	fmt.Fprintf(&b, "Tick: %d, Score: %d, Mode: %s, State: %s\n", s.Tick, s.Score, s.Mode, s.State)
	b.WriteString(strings.Join(s.DebugLines(), "\n"))
	b.WriteByte('\n')
	return b.String()
}
