package mcp

import (
	"context"

	"github.com/daisy-days/daisyd/internal/core/domain"
)

// mockDocService is a mock implementation of driving.DocService.
type mockDocService struct {
	entries  []domain.DocEntry
	results  []domain.SearchResult
	err      error
	gotLimit int
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

func (m *mockDocService) Search(_ context.Context, _ string, limit int) ([]domain.SearchResult, error) {
	m.gotLimit = limit
	if m.err != nil {
		return nil, m.err
	}
	if limit <= 0 {
		return nil, domain.ErrInvalidInput
	}
	return m.results, nil
}

// mockConceptService is a mock implementation of driving.ConceptService.
type mockConceptService struct {
	concepts []domain.ConceptEntry
	err      error
}

func (m *mockConceptService) Lookup(_ context.Context, name string) (*domain.ConceptEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.concepts {
		if m.concepts[i].Name == domain.NormalizeName(name) {
			return &m.concepts[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockConceptService) List(_ context.Context) ([]domain.ConceptEntry, error) {
	return m.concepts, m.err
}

// mockLayoutService is a mock implementation of driving.LayoutService.
type mockLayoutService struct {
	html      string
	suggested domain.Archetype
	err       error
	gotTitle  string
}

func (m *mockLayoutService) Generate(_ context.Context, _, title string, _ []string) (string, error) {
	m.gotTitle = title
	return m.html, m.err
}

func (m *mockLayoutService) Suggest(_ context.Context, _ string) domain.Archetype {
	return m.suggested
}

func (m *mockLayoutService) Archetypes() []domain.Archetype {
	return domain.Archetypes()
}

// mockSnippetService is a mock implementation of driving.SnippetService.
type mockSnippetService struct {
	script string
	err    error
}

func (m *mockSnippetService) Theme(name, primary, _, _, _ string) string {
	return "@plugin " + name + " " + primary
}

func (m *mockSnippetService) Form(title string, _ []string) string { return "<form>" + title }

func (m *mockSnippetService) Table(_ []string) string { return "<table>" }

func (m *mockSnippetService) Chart(kind, _ string) string { return "<canvas>" + kind }

func (m *mockSnippetService) Script(_ string) (string, error) {
	return m.script, m.err
}

// mockSettingsService is a mock implementation of driving.SettingsService.
type mockSettingsService struct {
	settings *domain.AppSettings
	err      error
}

func (m *mockSettingsService) Get() (*domain.AppSettings, error) {
	if m.err != nil {
		return nil, m.err
	}
	copied := *m.settings
	return &copied, nil
}

func (m *mockSettingsService) Save(settings *domain.AppSettings) error {
	if m.err != nil {
		return m.err
	}
	copied := *settings
	m.settings = &copied
	return nil
}

// testPorts builds a Ports with all mocks wired.
func testPorts() (*Ports, *mockDocService, *mockConceptService, *mockLayoutService, *mockSnippetService) {
	docs := &mockDocService{}
	concepts := &mockConceptService{}
	layouts := &mockLayoutService{suggested: domain.ArchetypeSaas}
	snippets := &mockSnippetService{}
	return &Ports{Docs: docs, Concepts: concepts, Layouts: layouts, Snippets: snippets},
		docs, concepts, layouts, snippets
}
