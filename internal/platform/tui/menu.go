package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// MenuSelection holds the user's choice from the start menu.
type MenuSelection struct {
	GameID     string
	Difficulty config.DifficultyPreset
}

// MenuKeyMap defines the key bindings for the start menu.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// DefaultMenuKeyMap returns default key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MenuModel lets users choose a variant and then a difficulty.
type MenuModel struct {
	variants      []registry.GameInfo
	cursor        int
	presetCursor  int
	inPresetStage bool
	width         int
	height        int
	keys          MenuKeyMap
	selection     MenuSelection
	choosing      bool
	quitting      bool
}

// NewMenuModel creates a new start menu.
func NewMenuModel(width, height int) MenuModel {
	return MenuModel{
		variants:     registry.List(),
		presetCursor: 1, // normal
		width:        width,
		height:       height,
		keys:         DefaultMenuKeyMap(),
		choosing:     true,
	}
}

// Init initializes the model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}
	if m.inPresetStage {
		return m.handlePresetKey(msg)
	}
	return m.handleVariantKey(msg)
}

func (m MenuModel) handleVariantKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.variants)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Select):
		if len(m.variants) > 0 {
			m.inPresetStage = true
		}
	case key.Matches(msg, m.keys.Back):
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m MenuModel) handlePresetKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.presetCursor > 0 {
			m.presetCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.presetCursor < len(config.Presets)-1 {
			m.presetCursor++
		}
	case key.Matches(msg, m.keys.Select):
		m.choosing = false
		m.selection = MenuSelection{
			GameID:     m.variants[m.cursor].ID,
			Difficulty: config.Presets[m.presetCursor],
		}
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		m.inPresetStage = false
	}
	return m, nil
}

// View renders the current stage.
func (m MenuModel) View() string {
	if m.quitting || !m.choosing {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText("S N A K E", m.width))
	b.WriteString("\n\n")

	if m.inPresetStage {
		b.WriteString(centerText("Select difficulty:", m.width))
		b.WriteString("\n\n")
		for i, p := range config.Presets {
			line := fmt.Sprintf("%s%-7s %4d ms", cursorMark(i == m.presetCursor), p, config.DelayForPreset(p))
			b.WriteString(centerText(line, m.width))
			b.WriteString("\n")
		}
	} else {
		b.WriteString(centerText("Select variant:", m.width))
		b.WriteString("\n\n")
		for i, v := range m.variants {
			b.WriteString(centerText(cursorMark(i == m.cursor)+v.Title, m.width))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))
	return b.String()
}

func cursorMark(selected bool) string {
	if selected {
		return "> "
	}
	return "  "
}

// centerText pads text on the left to center it in width columns.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// Selected returns the selection, or nil if still choosing.
func (m MenuModel) Selected() *MenuSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// RunMenu shows the start menu and returns the selection, or nil if the
// user left.
func RunMenu(width, height int) (*MenuSelection, error) {
	p := tea.NewProgram(
		NewMenuModel(width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok || m.quitting {
		return nil, nil
	}
	return m.Selected(), nil
}
