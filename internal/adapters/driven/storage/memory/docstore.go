package memory

import (
	"context"
	"sort"
	"sync/atomic"

	"github.com/daisy-days/daisyd/internal/core/domain"
	"github.com/daisy-days/daisyd/internal/core/ports/driven"
)

// Ensure DocStore implements the interface.
var _ driven.DocStore = (*DocStore)(nil)

// docSnapshot is the immutable state of a DocStore at one point in time.
type docSnapshot struct {
	byName  map[string]domain.DocEntry
	ordered []domain.DocEntry
}

// DocStore is an in-memory implementation of driven.DocStore.
type DocStore struct {
	snapshot atomic.Pointer[docSnapshot]
}

// NewDocStore creates a store populated with the given entries.
func NewDocStore(entries []domain.DocEntry) *DocStore {
	s := &DocStore{}
	s.snapshot.Store(newDocSnapshot(entries))
	return s
}

func newDocSnapshot(entries []domain.DocEntry) *docSnapshot {
	snap := &docSnapshot{
		byName:  make(map[string]domain.DocEntry, len(entries)),
		ordered: make([]domain.DocEntry, len(entries)),
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

// Get retrieves an entry by its normalised name.
func (s *DocStore) Get(_ context.Context, name string) (*domain.DocEntry, error) {
	snap := s.snapshot.Load()
	entry, ok := snap.byName[name]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &entry, nil
}

// List returns all entries in ascending-name order.
func (s *DocStore) List(_ context.Context) ([]domain.DocEntry, error) {
	snap := s.snapshot.Load()
	out := make([]domain.DocEntry, len(snap.ordered))
	copy(out, snap.ordered)
	return out, nil
}

// Replace atomically swaps the full entry set.
func (s *DocStore) Replace(_ context.Context, entries []domain.DocEntry) error {
	s.snapshot.Store(newDocSnapshot(entries))
	return nil
}
