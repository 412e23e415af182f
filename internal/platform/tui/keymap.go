package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// KeyMap defines the key bindings for a snake session.
type KeyMap struct {
	Left       key.Binding
	Up         key.Binding
	Right      key.Binding
	Down       key.Binding
	Debug      key.Binding
	Pause      key.Binding
	ResetScore key.Binding
	Again      key.Binding
	Leave      key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Left, k.Down, k.Right, k.Pause, k.Quit, k.Help}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Left, k.Down, k.Right},
		{k.Pause, k.Debug, k.ResetScore},
		{k.Again, k.Leave, k.Quit, k.Help},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("a", "left"),
			key.WithHelp("a/←", "left"),
		),
		Up: key.NewBinding(
			key.WithKeys("w", "up"),
			key.WithHelp("w/↑", "up"),
		),
		Right: key.NewBinding(
			key.WithKeys("d", "right"),
			key.WithHelp("d/→", "right"),
		),
		Down: key.NewBinding(
			key.WithKeys("s", "down"),
			key.WithHelp("s/↓", "down"),
		),
		Debug: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "debug"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		ResetScore: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset score"),
		),
		Again: key.NewBinding(
			key.WithKeys("y", "r"),
			key.WithHelp("y/r", "play again"),
		),
		Leave: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "leave"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// MapKey translates a key message to a game action while playing.
// Unbound keys map to ActionNone.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Debug):
		return core.ActionDebug
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.ResetScore):
		return core.ActionResetScore
	}
	return core.ActionNone
}

// MapGameOverKey translates a key on the game-over prompt: play again,
// leave, or nothing.
func (k KeyMap) MapGameOverKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Again):
		return core.ActionRestart
	case key.Matches(msg, k.Leave), key.Matches(msg, k.Quit):
		return core.ActionQuit
	}
	return core.ActionNone
}
