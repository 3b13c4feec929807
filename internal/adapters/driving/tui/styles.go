package tui

import "github.com/charmbracelet/lipgloss"

// Styles contains pre-configured lipgloss styles for the browser.
type Styles struct {
	Title    lipgloss.Style
	Prompt   lipgloss.Style
	Item     lipgloss.Style
	Selected lipgloss.Style
	Category lipgloss.Style
	Help     lipgloss.Style
	Error    lipgloss.Style
}

// DefaultStyles returns the default style set.
func DefaultStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED")).
			MarginBottom(1),
		Prompt: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#06B6D4")),
		Item: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#CDD6F4")),
		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#1E1E2E")).
			Background(lipgloss.Color("#7C3AED")),
		Category: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C7086")),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C7086")).
			MarginTop(1),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F38BA8")),
	}
}
