package layouts

import (
	"github.com/daisy-days/daisyd/internal/core/domain"
	"github.com/daisy-days/daisyd/internal/core/ports/driven"
)

// Ensure Registry implements the interface.
var _ driven.TemplateRegistry = (*Registry)(nil)

// Registry resolves archetypes against the compiled-in template set.
type Registry struct {
	templates map[domain.Archetype]*domain.LayoutTemplate
}

// NewRegistry creates the registry with all ten templates.
func NewRegistry() *Registry {
	templates := make(map[domain.Archetype]*domain.LayoutTemplate, len(allTemplates))
	for i := range allTemplates {
		templates[allTemplates[i].Archetype] = &allTemplates[i]
	}
	return &Registry{templates: templates}
}

// Resolve matches the archetype name case-insensitively against the
// fixed set.
func (r *Registry) Resolve(name string) (*domain.LayoutTemplate, error) {
	archetype, err := domain.ParseArchetype(name)
	if err != nil {
		return nil, err
	}
	return r.templates[archetype], nil
}

// Archetypes returns the supported archetypes in canonical order.
func (r *Registry) Archetypes() []domain.Archetype {
	return domain.Archetypes()
}
