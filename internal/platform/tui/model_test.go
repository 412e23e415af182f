package tui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// stubGame records the frames it is stepped with. onStep may change the
// state it reports.
type stubGame struct {
	steps   []core.InputFrame
	state   core.GameState
	onStep  func(g *stubGame, in core.InputFrame)
	resized [2]int
	cfg     core.RuntimeConfig
}

func (g *stubGame) ID() string { return "stub" }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(cfg core.RuntimeConfig) {
	g.cfg = cfg
	g.state = core.GameState{Delay: 10 * time.Millisecond}
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.steps = append(g.steps, in)
	if g.onStep != nil {
		g.onStep(g, in)
	}
	return core.StepResult{State: g.state}
}

func (g *stubGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "stub") }
func (g *stubGame) State() core.GameState { return g.state }
func (g *stubGame) Resize(w, h int) { g.resized = [2]int{w, h} }

func (g *stubGame) Summary() core.RunSummary {
	return core.RunSummary{Score: g.state.Score, Length: 3, Cause: "boundary-exit", Ticks: uint64(len(g.steps)), Variant: "stub"}
}

func (g *stubGame) DebugState() string { return "stub state" }

func newTestModel(t *testing.T, g *stubGame) Model {
	t.Helper()
	cfg := core.DefaultConfig()
	cfg.Seed = 1
	return NewModel(g, cfg, nil)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, expected Model", next)
	}
	return nm, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestNewModelResetsGame(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(t, g)

	if g.cfg.ScreenH != 39 {
		t.Errorf("Game screen height = %d, expected 39 (one row for help)", g.cfg.ScreenH)
	}
	if m.Init() == nil {
		t.Error("Init() should start ticking")
	}
}

func TestKeysAreQueuedUntilTick(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(t, g)

	m, _ = update(t, m, runeKey('w'))
	m, _ = update(t, m, runeKey('d'))
	if len(g.steps) != 0 {
		t.Fatalf("Keys stepped the game directly: %v", g.steps)
	}

	m, cmd := update(t, m, TickMsg{Seq: m.seq})
	if cmd == nil {
		t.Error("Tick did not schedule the next tick")
	}
	m, _ = update(t, m, TickMsg{Seq: m.seq})
	_, _ = update(t, m, TickMsg{Seq: m.seq})

	want := []core.Action{core.ActionUp, core.ActionRight, core.ActionNone}
	if len(g.steps) != len(want) {
		t.Fatalf("Game stepped %d times, expected %d", len(g.steps), len(want))
	}
	for i, a := range want {
		if g.steps[i].Action != a {
			t.Errorf("Step %d action = %s, expected %s", i, g.steps[i].Action, a)
		}
	}
}

func TestStaleTickIgnored(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(t, g)

	_, cmd := update(t, m, TickMsg{Seq: m.seq + 5})
	if cmd != nil || len(g.steps) != 0 {
		t.Error("Tick from another chain should be dropped")
	}
}

func TestGameOverStopsTicksAndRestarts(t *testing.T) {
	g := &stubGame{}
	g.onStep = func(g *stubGame, in core.InputFrame) {
		switch in.Action {
		case core.ActionRestart:
			g.state.GameOver = false
			g.state.Score = 0
		default:
			g.state.GameOver = true
			g.state.Score = 30
		}
	}
	m := newTestModel(t, g)

	m, cmd := update(t, m, TickMsg{Seq: m.seq})
	if cmd != nil {
		t.Error("Game over should stop the tick loop")
	}
	if runs := m.Results().Runs(); len(runs) != 1 || runs[0].Score != 30 {
		t.Errorf("Results = %+v, expected one run scoring 30", runs)
	}

	// Movement keys do nothing on the prompt.
	m, _ = update(t, m, runeKey('w'))
	if len(g.steps) != 1 || m.queue.Len() != 0 {
		t.Error("Movement key on the game-over prompt should be ignored")
	}

	oldSeq := m.seq
	m, cmd = update(t, m, runeKey('y'))
	if g.steps[len(g.steps)-1].Action != core.ActionRestart {
		t.Errorf("Last step = %s, expected Restart", g.steps[len(g.steps)-1].Action)
	}
	if cmd == nil || m.seq == oldSeq {
		t.Error("Restart should start a new tick chain")
	}

	// A tick left over from the old chain must not run.
	steps := len(g.steps)
	_, _ = update(t, m, TickMsg{Seq: oldSeq})
	if len(g.steps) != steps {
		t.Error("Old tick chain ran after restart")
	}
}

func TestGameOverLeave(t *testing.T) {
	g := &stubGame{}
	g.onStep = func(g *stubGame, in core.InputFrame) { g.state.GameOver = true }
	m := newTestModel(t, g)

	m, _ = update(t, m, TickMsg{Seq: m.seq})
	_, cmd := update(t, m, runeKey('n'))
	if !isQuit(cmd) {
		t.Error("'n' on the game-over prompt should quit")
	}
}

func TestPauseResumesOnAnyKey(t *testing.T) {
	g := &stubGame{}
	g.onStep = func(g *stubGame, in core.InputFrame) {
		g.state.Paused = in.Action == core.ActionPause && !g.state.Paused
	}
	m := newTestModel(t, g)

	m, _ = update(t, m, runeKey('p'))
	m, cmd := update(t, m, TickMsg{Seq: m.seq})
	if cmd != nil {
		t.Fatal("Pause should stop the tick loop")
	}

	m, cmd = update(t, m, runeKey('x'))
	if got := g.steps[len(g.steps)-1].Action; got != core.ActionPause {
		t.Errorf("Resume step action = %s, expected a non-empty frame", got)
	}
	if cmd == nil || !m.ticking {
		t.Error("Resume should restart the tick loop")
	}
}

func TestHelpKeyResumesPause(t *testing.T) {
	g := &stubGame{}
	g.onStep = func(g *stubGame, in core.InputFrame) {
		g.state.Paused = in.Action == core.ActionPause && !g.state.Paused
	}
	m := newTestModel(t, g)

	m, _ = update(t, m, runeKey('p'))
	m, _ = update(t, m, TickMsg{Seq: m.seq})
	if !g.state.Paused {
		t.Fatal("Game should be paused")
	}

	m, cmd := update(t, m, runeKey('?'))
	if g.state.Paused {
		t.Error("'?' while paused should resume like any other key")
	}
	if m.help.ShowAll {
		t.Error("'?' while paused should not toggle the full help")
	}
	if cmd == nil || !m.ticking {
		t.Error("Resume should restart the tick loop")
	}
}

func TestGameOverLogsFinalState(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)

	g := &stubGame{}
	g.onStep = func(g *stubGame, in core.InputFrame) { g.state.GameOver = true }
	cfg := core.DefaultConfig()
	cfg.Seed = 1
	m := NewModel(g, cfg, logger)

	_, _ = update(t, m, TickMsg{Seq: m.seq})
	out := buf.String()
	if !strings.Contains(out, "game over") || !strings.Contains(out, "stub state") {
		t.Errorf("Session log missing the final state:\n%s", out)
	}
}

func TestQuitKeys(t *testing.T) {
	for _, msg := range []tea.KeyMsg{runeKey('q'), {Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		g := &stubGame{}
		m := newTestModel(t, g)
		m, cmd := update(t, m, msg)
		if !isQuit(cmd) {
			t.Errorf("%s did not quit", msg)
		}
		if m.View() != "" {
			t.Errorf("View() after %s should be empty", msg)
		}
	}
}

func TestQuitRecordsUnfinishedRun(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(t, g)
	g.state.Score = 12

	m, _ = update(t, m, runeKey('q'))
	runs := m.Results().Runs()
	if len(runs) != 1 || runs[0].Score != 12 {
		t.Errorf("Results = %+v, expected the running game", runs)
	}
}

func TestResizeForwardsToGame(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(t, g)

	g.state.Waiting = true
	m, _ = update(t, m, TickMsg{Seq: m.seq})
	if m.ticking {
		t.Fatal("Waiting game should stop the tick loop")
	}

	g.state.Waiting = false
	m, cmd := update(t, m, tea.WindowSizeMsg{Width: 120, Height: 50})
	if g.resized != [2]int{120, 49} {
		t.Errorf("Resize(%v), expected [120 49]", g.resized)
	}
	if m.screen.Width() != 120 || m.screen.Height() != 49 {
		t.Errorf("Screen = %dx%d, expected 120x49", m.screen.Width(), m.screen.Height())
	}
	if cmd == nil || !m.ticking {
		t.Error("Resize that fits should resume ticking")
	}
}

func TestViewIncludesHelp(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(t, g)

	view := m.View()
	if !strings.Contains(view, "stub") {
		t.Error("View() missing the game screen")
	}
	if !strings.Contains(view, "pause") {
		t.Error("View() missing the help bar")
	}
	if n := strings.Count(view, "\n"); n != 39 {
		t.Errorf("View() has %d line breaks, expected 39", n)
	}

	m, _ = update(t, m, runeKey('?'))
	if n := strings.Count(m.View(), "\n"); n != 39 {
		t.Errorf("Full help View() has %d line breaks, expected 39", n)
	}
}
