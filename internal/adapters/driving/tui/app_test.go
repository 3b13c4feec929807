package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daisy-days/daisyd/internal/core/domain"
)

// mockDocService is a mock implementation of driving.DocService.
type mockDocService struct {
	entries []domain.DocEntry
	err     error
}

func (m *mockDocService) Lookup(_ context.Context, name string) (*domain.DocEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.entries {
		if m.entries[i].Name == domain.NormalizeName(name) {
			return &m.entries[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockDocService) List(_ context.Context) ([]domain.DocEntry, error) {
	return m.entries, m.err
}

func (m *mockDocService) Search(_ context.Context, _ string, _ int) ([]domain.SearchResult, error) {
	return nil, m.err
}

func testApp(t *testing.T) (*App, *mockDocService) {
	t.Helper()
	docs := &mockDocService{entries: []domain.DocEntry{
		{Name: "alert", Category: "Feedback", Body: "Alerts inform"},
		{Name: "button", Category: "Actions", Body: "Buttons act"},
		{Name: "card", Category: "Data display", Body: "Cards group"},
	}}

	app, err := NewApp(&Ports{Docs: docs})
	require.NoError(t, err)
	return app, docs
}

// loaded pushes the window size and index load through Update.
func loaded(app *App, docs *mockDocService) *App {
	model, _ := app.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	entries, err := docs.List(context.Background())
	model, _ = model.Update(entriesLoadedMsg{entries: entries, err: err})
	return model.(*App)
}

func TestNewApp(t *testing.T) {
	t.Run("valid ports", func(t *testing.T) {
		app, err := NewApp(&Ports{Docs: &mockDocService{}})
		require.NoError(t, err)
		assert.NotNil(t, app)
	})

	t.Run("missing doc service", func(t *testing.T) {
		_, err := NewApp(&Ports{})
		assert.ErrorIs(t, err, ErrMissingDocService)
	})
}

func TestApp_View_List(t *testing.T) {
	app, docs := testApp(t)
	app = loaded(app, docs)

	view := app.View()
	assert.Contains(t, view, "daisyUI Components")
	assert.Contains(t, view, "alert")
	assert.Contains(t, view, "button")
	assert.Contains(t, view, "card")
}

func TestApp_Update_Selection(t *testing.T) {
	app, docs := testApp(t)
	app = loaded(app, docs)

	model, _ := app.Update(tea.KeyMsg{Type: tea.KeyDown})
	app = model.(*App)
	assert.Equal(t, 1, app.selected)

	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyUp})
	app = model.(*App)
	assert.Equal(t, 0, app.selected)

	// selection never goes negative
	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyUp})
	app = model.(*App)
	assert.Equal(t, 0, app.selected)
}

func TestApp_Update_OpenDoc(t *testing.T) {
	app, docs := testApp(t)
	app = loaded(app, docs)

	model, _ := app.Update(tea.KeyMsg{Type: tea.KeyDown})
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	app = model.(*App)

	require.True(t, app.showDoc)
	view := app.View()
	assert.Contains(t, view, "button")
	assert.Contains(t, view, "Buttons act")

	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	app = model.(*App)
	assert.False(t, app.showDoc)
}

func TestApp_Update_Filter(t *testing.T) {
	app, docs := testApp(t)
	app = loaded(app, docs)

	for _, r := range "but" {
		model, _ := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		app = model.(*App)
	}

	require.Len(t, app.filtered, 1)
	assert.Equal(t, "button", app.filtered[0].Name)

	view := app.View()
	assert.Contains(t, view, "button")
	assert.NotContains(t, view, "alert")
}

func TestApp_Update_FilterByCategory(t *testing.T) {
	app, docs := testApp(t)
	app = loaded(app, docs)

	for _, r := range "feedback" {
		model, _ := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		app = model.(*App)
	}

	require.Len(t, app.filtered, 1)
	assert.Equal(t, "alert", app.filtered[0].Name)
}

func TestApp_Update_Quit(t *testing.T) {
	app, docs := testApp(t)
	app = loaded(app, docs)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestApp_View_Error(t *testing.T) {
	app, docs := testApp(t)
	docs.err = errors.New("index unavailable")
	app = loaded(app, docs)

	assert.Contains(t, app.View(), "index unavailable")
}
