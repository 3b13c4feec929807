package driven

import "github.com/daisy-days/daisyd/internal/core/domain"

// TemplateRegistry resolves layout archetypes to their structural
// templates. The archetype set is closed; implementations carry exactly
// one compiled-in template per archetype and perform no mutation.
type TemplateRegistry interface {
	// Resolve matches the archetype name case-insensitively against the
	// fixed set. Unknown names return a domain.GenerationError wrapping
	// domain.ErrUnknownArchetype.
	Resolve(name string) (*domain.LayoutTemplate, error)

	// Archetypes returns the supported archetypes in canonical order.
	Archetypes() []domain.Archetype
}
