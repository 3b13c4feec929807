package driven

import (
	"context"

	"github.com/daisy-days/daisyd/internal/core/domain"
)

// DocStore holds the loaded component documentation entries.
//
// Stores are populated once at startup and treated as read-only; Replace
// exists solely for corpus reload, which must build the new state fully
// before swapping it in (never mutate a live index in place).
type DocStore interface {
	// Get retrieves an entry by its normalised name.
	// Returns domain.ErrNotFound if no entry has that name.
	Get(ctx context.Context, name string) (*domain.DocEntry, error)

	// List returns every entry exactly once, in ascending-name order.
	List(ctx context.Context) ([]domain.DocEntry, error)

	// Replace atomically swaps the full entry set.
	Replace(ctx context.Context, entries []domain.DocEntry) error
}

// ConceptStore holds the loaded design-concept entries.
// Same contract as DocStore over a smaller, enumerable set.
type ConceptStore interface {
	// Get retrieves a concept by its normalised name.
	// Returns domain.ErrNotFound if no concept has that name.
	Get(ctx context.Context, name string) (*domain.ConceptEntry, error)

	// List returns every concept in ascending-name order.
	List(ctx context.Context) ([]domain.ConceptEntry, error)

	// Replace atomically swaps the full concept set.
	Replace(ctx context.Context, entries []domain.ConceptEntry) error
}
