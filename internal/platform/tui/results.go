package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Results keeps the runs finished during one program session.
// Nothing is written to disk.
type Results struct {
	runs []core.RunSummary
}

// Add records a finished run.
func (r *Results) Add(run core.RunSummary) {
	r.runs = append(r.runs, run)
}

// Runs returns the recorded runs in play order.
func (r *Results) Runs() []core.RunSummary {
	return r.runs
}

// Best returns the highest scoring run.
func (r *Results) Best() (core.RunSummary, bool) {
	if len(r.runs) == 0 {
		return core.RunSummary{}, false
	}
	best := r.runs[0]
	for _, run := range r.runs[1:] {
		if run.Score > best.Score {
			best = run
		}
	}
	return best, true
}

// Table renders the runs as a static table.
func (r *Results) Table() string {
	columns := []table.Column{
		{Title: "Run", Width: 4},
		{Title: "Score", Width: 8},
		{Title: "Length", Width: 7},
		{Title: "Ended by", Width: 15},
		{Title: "Ticks", Width: 8},
	}

	rows := make([]table.Row, len(r.runs))
	for i, run := range r.runs {
		cause := run.Cause
		if cause == "" {
			cause = "quit"
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", run.Score),
			fmt.Sprintf("%d", run.Length),
			cause,
			fmt.Sprintf("%d", run.Ticks),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
	)

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	return t.View()
}

// Report renders the end-of-session summary, or "" when nothing was played.
func (r *Results) Report() string {
	best, ok := r.Best()
	if !ok {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))

	var b strings.Builder
	b.WriteString(titleStyle.Render("SESSION"))
	b.WriteString("\n\n")
	b.WriteString(r.Table())
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "best: %d\n", best.Score)
	return b.String()
}
