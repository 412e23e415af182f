// Package tui provides the Bubble Tea integration for the snake game.
// It handles the terminal UI loop, input mapping, and session reporting.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
// Seq identifies the tick chain that scheduled it; ticks from a chain that
// was stopped by a pause or game over are dropped.
type TickMsg struct {
	Seq  int
	Time time.Time
}

// tickCmd returns a Bubble Tea command that sends the next tick after delay.
// A zero delay ticks as fast as the program can process messages.
func tickCmd(seq int, delay time.Duration) tea.Cmd {
	if delay <= 0 {
		return func() tea.Msg {
			return TickMsg{Seq: seq, Time: time.Now()}
		}
	}
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return TickMsg{Seq: seq, Time: t}
	})
}
