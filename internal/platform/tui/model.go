package tui

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// inputBuffer is how many commands may wait for the next ticks.
const inputBuffer = 8

// Model is the Bubble Tea model for running a snake session.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	config   core.RuntimeConfig
	queue    *core.InputQueue
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	results  *Results
	state    core.GameState
	seq      int  // current tick chain
	ticking  bool // a tick of chain seq is scheduled
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game and starts a
// session. A nil logger discards session logs.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.ShowAll = false

	m := Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, gameRows(cfg.ScreenH)),
		config:  cfg,
		queue:   core.NewInputQueue(inputBuffer),
		keys:    DefaultKeyMap(),
		help:    h,
		logger:  logger,
		results: &Results{},
	}

	gameCfg := cfg
	gameCfg.ScreenH = gameRows(cfg.ScreenH)
	m.game.Reset(gameCfg)
	m.state = m.game.State()
	m.ticking = m.runnable()

	m.logger.Info("session started",
		"game", game.ID(),
		"width", cfg.Width,
		"height", cfg.Height,
		"portal", cfg.PortalWalls,
		"delay", cfg.Delay,
		"seed", cfg.Seed,
	)
	return m
}

// gameRows is the screen height left to the game below which the help bar sits.
func gameRows(h int) int {
	return max(h-1, 0)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	if !m.ticking {
		return nil
	}
	return tickCmd(m.seq, m.state.Delay)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Seq != m.seq || !m.ticking {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m.quit()
	}

	switch {
	case m.state.GameOver:
		switch m.keys.MapGameOverKey(msg) {
		case core.ActionRestart:
			m.state = m.game.Step(core.FrameOf(core.ActionRestart)).State
			m.queue.Reset()
			m.logger.Info("restart", "game", m.game.ID())
			return m.resume()
		case core.ActionQuit:
			return m.quit()
		}
		return m, nil

	case m.state.Paused:
		action := m.keys.MapKey(msg)
		if action == core.ActionQuit {
			return m.quit()
		}
		// Any key continues; the key itself is not a command.
		if action == core.ActionNone {
			action = core.ActionPause
		}
		m.state = m.game.Step(core.FrameOf(action)).State
		m.afterStep()
		m.logger.Debug("resumed")
		return m.resume()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action := m.keys.MapKey(msg)
	if action == core.ActionQuit {
		return m.quit()
	}
	if !m.queue.Push(action) && action != core.ActionNone {
		m.logger.Debug("input dropped", "action", action)
	}
	return m, nil
}

// handleResize processes window resize events without restarting the session.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, gameRows(msg.Height))
	m.help.Width = msg.Width

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, gameRows(msg.Height))
	}
	wasWaiting := m.state.Waiting
	m.state = m.game.State()
	if wasWaiting != m.state.Waiting {
		m.logger.Debug("window resized", "width", msg.Width, "height", msg.Height, "fits", !m.state.Waiting)
	}
	return m.resume()
}

// handleTick feeds one buffered command to the game and schedules the next tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	in := m.queue.Pop()
	m.state = m.game.Step(in).State

	switch in.Action {
	case core.ActionResetScore:
		m.logger.Info("score reset")
	case core.ActionPause:
		m.logger.Debug("paused")
	case core.ActionDebug:
		m.logger.Debug("debug toggled")
	}
	m.afterStep()

	if !m.runnable() {
		m.ticking = false
		return m, nil
	}
	return m, tickCmd(m.seq, m.state.Delay)
}

// afterStep records a run that just ended.
func (m *Model) afterStep() {
	if !m.state.GameOver {
		return
	}
	sum := m.summary()
	m.results.Add(sum)
	m.queue.Reset()
	m.logger.Info("game over",
		"cause", sum.Cause,
		"score", sum.Score,
		"length", sum.Length,
		"ticks", sum.Ticks,
	)
	if d, ok := m.game.(registry.Inspector); ok {
		m.logger.Debug("final state", "state", d.DebugState())
	}
}

// resume starts a new tick chain if the game can run and none is scheduled.
func (m Model) resume() (tea.Model, tea.Cmd) {
	if m.ticking || !m.runnable() {
		return m, nil
	}
	m.seq++
	m.ticking = true
	return m, tickCmd(m.seq, m.state.Delay)
}

func (m Model) runnable() bool {
	return !m.state.GameOver && !m.state.Paused && !m.state.Waiting
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	if !m.state.GameOver {
		sum := m.summary()
		if sum.Score > 0 || sum.Length > 0 {
			m.results.Add(sum)
		}
	}
	m.logger.Info("quit", "runs", len(m.results.Runs()))
	m.quitting = true
	return m, tea.Quit
}

func (m Model) summary() core.RunSummary {
	if s, ok := m.game.(registry.Summarizer); ok {
		return s.Summary()
	}
	return core.RunSummary{Score: m.state.Score, Variant: m.game.ID()}
}

// Results returns the runs of this session.
func (m Model) Results() *Results {
	return m.results
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)
	screen := RenderScreen(m.screen)

	// The full help covers the bottom rows of the screen.
	helpView := helpStyle.Render(m.help.View(m.keys))
	if extra := strings.Count(helpView, "\n"); extra > 0 {
		lines := strings.Split(screen, "\n")
		screen = strings.Join(lines[:max(len(lines)-extra, 0)], "\n")
	}
	return screen + "\n" + helpView
}

// Run starts the Bubble Tea program for game and returns the finished runs.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) (*Results, error) {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if m, ok := final.(Model); ok {
		return m.results, err
	}
	return model.results, err
}
