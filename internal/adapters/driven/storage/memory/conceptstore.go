package memory

import (
	"context"
	"sort"
	"sync/atomic"

	"github.com/daisy-days/daisyd/internal/core/domain"
	"github.com/daisy-days/daisyd/internal/core/ports/driven"
)

// Ensure ConceptStore implements the interface.
var _ driven.ConceptStore = (*ConceptStore)(nil)

// conceptSnapshot is the immutable state of a ConceptStore.
type conceptSnapshot struct {
	byName  map[string]domain.ConceptEntry
	ordered []domain.ConceptEntry
}

// ConceptStore is an in-memory implementation of driven.ConceptStore.
type ConceptStore struct {
	snapshot atomic.Pointer[conceptSnapshot]
}

// NewConceptStore creates a store populated with the given concepts.
func NewConceptStore(entries []domain.ConceptEntry) *ConceptStore {
	s := &ConceptStore{}
	s.snapshot.Store(newConceptSnapshot(entries))
	return s
}

func newConceptSnapshot(entries []domain.ConceptEntry) *conceptSnapshot {
	snap := &conceptSnapshot{
		byName:  make(map[string]domain.ConceptEntry, len(entries)),
		ordered: make([]domain.ConceptEntry, len(entries)),
	}
	copy(snap.ordered, entries)
	sort.Slice(snap.ordered, func(i, j int) bool {
		return snap.ordered[i].Name < snap.ordered[j].Name
	})
	for _, e := range snap.ordered {
		snap.byName[e.Name] = e
	}
	return snap
}

// Get retrieves a concept by its normalised name.
func (s *ConceptStore) Get(_ context.Context, name string) (*domain.ConceptEntry, error) {
	snap := s.snapshot.Load()
	entry, ok := snap.byName[name]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &entry, nil
}

// List returns all concepts in ascending-name order.
func (s *ConceptStore) List(_ context.Context) ([]domain.ConceptEntry, error) {
	snap := s.snapshot.Load()
	out := make([]domain.ConceptEntry, len(snap.ordered))
	copy(out, snap.ordered)
	return out, nil
}

// Replace atomically swaps the full concept set.
func (s *ConceptStore) Replace(_ context.Context, entries []domain.ConceptEntry) error {
	s.snapshot.Store(newConceptSnapshot(entries))
	return nil
}
