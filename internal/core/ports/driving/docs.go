package driving

import (
	"context"

	"github.com/daisy-days/daisyd/internal/core/domain"
)

// DocService exposes the documentation index to external actors.
type DocService interface {
	// Lookup performs a case-insensitive exact match on the normalised
	// entry name. Returns domain.ErrNotFound for unknown names.
	Lookup(ctx context.Context, name string) (*domain.DocEntry, error)

	// List returns every loaded entry exactly once, in ascending-name
	// order.
	List(ctx context.Context) ([]domain.DocEntry, error)

	// Search tokenises the query and ranks entries by term overlap,
	// weighting name matches higher than tag-only matches. Results are
	// sorted by score descending then name ascending and truncated to
	// limit. A non-positive limit returns domain.ErrInvalidInput; an
	// empty or all-stopword query returns an empty slice and nil error.
	Search(ctx context.Context, query string, limit int) ([]domain.SearchResult, error)
}

// ConceptService exposes the design-concept catalog.
// The concept set is small and enumerable, so there is no free-text
// search; callers use exact names drawn from List.
type ConceptService interface {
	// Lookup performs a case-insensitive exact match on the concept
	// name. Returns domain.ErrNotFound for unknown names.
	Lookup(ctx context.Context, name string) (*domain.ConceptEntry, error)

	// List returns every concept in ascending-name order.
	List(ctx context.Context) ([]domain.ConceptEntry, error)
}
