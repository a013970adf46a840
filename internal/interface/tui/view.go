package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/campusbook/campusbook/internal/application/parser"
	"github.com/campusbook/campusbook/internal/application/query"
)

// chromeHeight is the number of terminal rows used by everything that is not
// the person list: title, feedback, status bar, and the command bar.
const chromeHeight = 7

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}
	if !m.ready {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(m.styles.Title.Render("CampusBook"))
	b.WriteString("\n")

	if m.showHelp {
		b.WriteString(m.styles.ListFrame.Width(m.width - 2).Render(
			m.styles.Help.Render(parser.HelpMessage + "\n\nPress Esc to close help.")))
	} else {
		b.WriteString(m.styles.ListFrame.Width(m.width - 2).Render(m.list.View()))
	}
	b.WriteString("\n")

	if m.feedback != "" {
		style := m.styles.Feedback
		if !m.feedbackOK {
			style = m.styles.Error
		}
		b.WriteString(style.Render(m.feedback))
	}
	b.WriteString("\n")

	stats, _ := m.stats.Handle(context.Background(), query.DisplayStatsQuery{})
	b.WriteString(m.styles.StatusBar.Width(m.width).Render(
		fmt.Sprintf(MessageDisplayStats, stats.Displayed, stats.Total)))
	b.WriteString("\n")

	b.WriteString(m.styles.Prompt.Render(m.input.View()))
	b.WriteString("\n")

	return b.String()
}

// renderList renders every displayed person as a numbered row.
func (m *Model) renderList() string {
	persons := m.roster.FilteredPersons()
	if len(persons) == 0 {
		return m.styles.Help.Render("No persons to display.")
	}

	rows := make([]string, len(persons))
	for i, p := range persons {
		rows[i] = renderRow(m.styles, i+1, p)
	}
	return strings.Join(rows, "\n")
}
