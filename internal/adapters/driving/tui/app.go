// Package tui provides an interactive component browser built on
// Bubbletea. It lists the documentation index with an incremental
// filter and shows the selected component's docs in a viewport.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/daisy-days/daisyd/internal/core/domain"
)

// listHeight is the number of visible rows in the component list.
const listHeight = 12

// App is the component browser following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *Styles

	filter   textinput.Model
	viewport viewport.Model

	entries  []domain.DocEntry
	filtered []domain.DocEntry
	selected int

	showDoc bool
	err     error

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new component browser with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	filter := textinput.New()
	filter.Placeholder = "filter components"
	filter.Focus()

	return &App{
		ports:    ports,
		ctx:      context.Background(),
		styles:   DefaultStyles(),
		filter:   filter,
		viewport: viewport.New(80, 20),
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// entriesLoadedMsg carries the initial index load.
type entriesLoadedMsg struct {
	entries []domain.DocEntry
	err     error
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("daisyd - Component Browser"),
		a.loadEntries,
	)
}

func (a *App) loadEntries() tea.Msg {
	entries, err := a.ports.Docs.List(a.ctx)
	return entriesLoadedMsg{entries: entries, err: err}
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.viewport.Width = msg.Width - 2
		a.viewport.Height = msg.Height - 4
		a.ready = true
		return a, nil

	case entriesLoadedMsg:
		a.entries = msg.entries
		a.err = msg.err
		a.applyFilter()
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		if a.showDoc && msg.String() == "q" {
			a.showDoc = false
			return a, nil
		}
		return a, tea.Quit

	case "esc":
		if a.showDoc {
			a.showDoc = false
			return a, nil
		}
		return a, tea.Quit

	case "up", "ctrl+p":
		if !a.showDoc && a.selected > 0 {
			a.selected--
		}

	case "down", "ctrl+n":
		if !a.showDoc && a.selected < len(a.filtered)-1 {
			a.selected++
		}

	case "enter":
		if !a.showDoc && a.selected < len(a.filtered) {
			a.viewport.SetContent(a.filtered[a.selected].Body)
			a.viewport.GotoTop()
			a.showDoc = true
		}
		return a, nil
	}

	if a.showDoc {
		var cmd tea.Cmd
		a.viewport, cmd = a.viewport.Update(msg)
		return a, cmd
	}

	var cmd tea.Cmd
	a.filter, cmd = a.filter.Update(msg)
	a.applyFilter()
	return a, cmd
}

// applyFilter narrows the list to entries whose name or category
// contains the filter text.
func (a *App) applyFilter() {
	query := strings.ToLower(strings.TrimSpace(a.filter.Value()))
	if query == "" {
		a.filtered = a.entries
	} else {
		filtered := make([]domain.DocEntry, 0, len(a.entries))
		for _, e := range a.entries {
			if strings.Contains(e.Name, query) || strings.Contains(strings.ToLower(e.Category), query) {
				filtered = append(filtered, e)
			}
		}
		a.filtered = filtered
	}
	if a.selected >= len(a.filtered) {
		a.selected = 0
	}
}

// View implements tea.Model.
func (a *App) View() string {
	if a.err != nil {
		return a.styles.Error.Render("error: "+a.err.Error()) + "\n"
	}

	if a.showDoc {
		entry := a.filtered[a.selected]
		var b strings.Builder
		b.WriteString(a.styles.Title.Render(entry.Name) + "\n")
		b.WriteString(a.viewport.View() + "\n")
		b.WriteString(a.styles.Help.Render("esc back · ctrl+c quit"))
		return b.String()
	}

	var b strings.Builder
	b.WriteString(a.styles.Title.Render("daisyUI Components") + "\n")
	b.WriteString(a.styles.Prompt.Render("> ") + a.filter.View() + "\n\n")

	start, end := a.window()
	for i := start; i < end; i++ {
		entry := a.filtered[i]
		line := entry.Name
		if entry.Category != "" {
			line += "  " + a.styles.Category.Render(entry.Category)
		}
		if i == a.selected {
			b.WriteString(a.styles.Selected.Render("▸ "+entry.Name) + "\n")
		} else {
			b.WriteString(a.styles.Item.Render("  "+line) + "\n")
		}
	}
	if len(a.filtered) == 0 {
		b.WriteString(a.styles.Category.Render("  no matches") + "\n")
	}

	b.WriteString(a.styles.Help.Render("↑/↓ select · enter open · esc quit"))
	return b.String()
}

// window returns the visible slice bounds, keeping the selection on
// screen.
func (a *App) window() (int, int) {
	start := 0
	if a.selected >= listHeight {
		start = a.selected - listHeight + 1
	}
	end := start + listHeight
	if end > len(a.filtered) {
		end = len(a.filtered)
	}
	return start, end
}
