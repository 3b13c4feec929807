package mcp

import (
	"github.com/daisy-days/daisyd/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Docs provides documentation lookup and search.
	Docs driving.DocService

	// Concepts provides the design-concept catalog.
	Concepts driving.ConceptService

	// Layouts provides layout generation.
	Layouts driving.LayoutService

	// Snippets provides standalone markup fragments.
	Snippets driving.SnippetService

	// Settings supplies configured defaults for search limit and page
	// title. Optional; built-in defaults apply when nil.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Docs == nil {
		return ErrMissingDocService
	}
	if p.Concepts == nil {
		return ErrMissingConceptService
	}
	if p.Layouts == nil {
		return ErrMissingLayoutService
	}
	if p.Snippets == nil {
		return ErrMissingSnippetService
	}
	return nil
}
