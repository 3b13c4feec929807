package driving

import (
	"context"

	"github.com/daisy-days/daisyd/internal/core/domain"
)

// LayoutService generates complete HTML documents from the layout
// archetypes. Generation is a pure function of its inputs and the
// immutable registry/catalog state: identical arguments yield
// byte-identical output.
type LayoutService interface {
	// Generate composes the named archetype, an optional title, and
	// zero or more concept styles into a self-contained HTML document.
	// A title that is empty after trimming falls back to the template's
	// default. Unknown archetypes or concepts return a
	// domain.GenerationError before any output is produced.
	Generate(ctx context.Context, archetype, title string, concepts []string) (string, error)

	// Suggest routes a free-form prompt to the best-matching archetype
	// by keyword.
	Suggest(ctx context.Context, prompt string) domain.Archetype

	// Archetypes returns the supported archetypes in canonical order.
	Archetypes() []domain.Archetype
}

// SnippetService produces small standalone markup fragments: themes,
// forms, tables, charts, and component scripts.
type SnippetService interface {
	// Theme renders a daisyUI theme plugin snippet.
	Theme(name, primary, secondary, accent, base string) string

	// Form scaffolds a card-wrapped form with the given field names.
	Form(title string, fields []string) string

	// Table renders a table skeleton with the given column headers.
	Table(columns []string) string

	// Chart renders a Chart.js canvas bootstrap for the given chart
	// type and element id.
	Chart(kind, id string) string

	// Script returns the interaction script for a component, or
	// domain.ErrNotFound if the component has none.
	Script(component string) (string, error)
}
