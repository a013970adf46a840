package tui

import "github.com/charmbracelet/lipgloss"

// Styles groups every lipgloss style the interface uses.
type Styles struct {
	Title     lipgloss.Style
	ListFrame lipgloss.Style
	RowIndex  lipgloss.Style
	RowName   lipgloss.Style
	RowDetail lipgloss.Style
	RowNote   lipgloss.Style
	Feedback  lipgloss.Style
	Error     lipgloss.Style
	StatusBar lipgloss.Style
	Help      lipgloss.Style
	Prompt    lipgloss.Style
}

// DefaultStyles returns the default color scheme.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			Padding(0, 1),
		ListFrame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
		RowIndex: lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")),
		RowName: lipgloss.NewStyle().
			Bold(true),
		RowDetail: lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")),
		RowNote: lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color("244")),
		Feedback: lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")),
		StatusBar: lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")),
		Prompt: lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")),
	}
}
