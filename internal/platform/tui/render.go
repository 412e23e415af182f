package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// palette holds the style of every core.Color, indexed by the color.
var palette = [...]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorCyan:         lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorBrightGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

func styleFor(c core.Color) lipgloss.Style {
	if int(c) < len(palette) {
		return palette[c]
	}
	return palette[core.ColorDefault]
}

// span is a run of neighbouring cells of one color.
type span struct {
	color core.Color
	text  string
}

// rowSpans splits row y into same-colored spans, left to right.
func rowSpans(s *core.Screen, y int) []span {
	var spans []span
	var run []rune
	cur := core.ColorDefault
	for x := range s.Width() {
		cell := s.GetCell(x, y)
		if len(run) > 0 && cell.Color != cur {
			spans = append(spans, span{color: cur, text: string(run)})
			run = run[:0]
		}
		cur = cell.Color
		run = append(run, cell.Rune)
	}
	if len(run) > 0 {
		spans = append(spans, span{color: cur, text: string(run)})
	}
	return spans
}

// RenderScreen converts a Screen buffer to a styled string for display.
func RenderScreen(s *core.Screen) string {
	return renderScreen(s, lipgloss.ColorProfile())
}

// renderScreen styles s for the given color profile. A terminal without
// colors gets the bare characters.
func renderScreen(s *core.Screen, profile termenv.Profile) string {
	if profile == termenv.Ascii {
		return s.String()
	}

	rows := make([]string, s.Height())
	for y := range rows {
		var b strings.Builder
		for _, sp := range rowSpans(s, y) {
			b.WriteString(styleFor(sp.color).Render(sp.text))
		}
		rows[y] = b.String()
	}
	return strings.Join(rows, "\n")
}
