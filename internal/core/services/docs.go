package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/daisy-days/daisyd/internal/core/domain"
	"github.com/daisy-days/daisyd/internal/core/ports/driven"
	"github.com/daisy-days/daisyd/internal/core/ports/driving"
	"github.com/daisy-days/daisyd/internal/logger"
)

// Ensure the services implement the interfaces.
var (
	_ driving.DocService     = (*DocsService)(nil)
	_ driving.ConceptService = (*ConceptsService)(nil)
)

// DocsService exposes lookup, listing, and ranked search over the
// component documentation index.
type DocsService struct {
	store driven.DocStore
}

// NewDocsService creates a documentation service over the given store.
func NewDocsService(store driven.DocStore) *DocsService {
	return &DocsService{store: store}
}

// Lookup performs a case-insensitive exact match on the entry name.
func (s *DocsService) Lookup(ctx context.Context, name string) (*domain.DocEntry, error) {
	normalized := domain.NormalizeName(name)
	entry, err := s.store.Get(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("lookup %q: %w", name, err)
	}
	return entry, nil
}

// List returns every entry in ascending-name order.
func (s *DocsService) List(ctx context.Context) ([]domain.DocEntry, error) {
	return s.store.List(ctx)
}

// Search tokenises the query and ranks entries by term overlap.
// Each distinct query term contributes 1 for a tag match, raised to
// NameMatchWeight when the term also appears in the entry name. Entries
// with no overlap are excluded; ties break by ascending name.
func (s *DocsService) Search(ctx context.Context, query string, limit int) ([]domain.SearchResult, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("search limit %d: %w", limit, domain.ErrInvalidInput)
	}

	logger.Section("Search")
	logger.Debug("query: %q, limit: %d", query, limit)

	terms := domain.Tokenize(query)
	if len(terms) == 0 {
		logger.Debug("no usable terms, returning empty result")
		return []domain.SearchResult{}, nil
	}
	logger.Debug("terms: %v", terms)

	entries, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	results := make([]domain.SearchResult, 0, len(entries))
	for i := range entries {
		entry := &entries[i]
		score := 0
		var matched []string
		for _, term := range terms {
			switch {
			case entry.HasNameToken(term):
				score += domain.NameMatchWeight
				matched = append(matched, term)
			case entry.HasTag(term):
				score++
				matched = append(matched, term)
			}
		}
		if score == 0 {
			continue
		}
		results = append(results, domain.SearchResult{
			EntryName:   entry.Name,
			Score:       score,
			MatchedTags: matched,
		})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].EntryName < results[j].EntryName
	})

	if len(results) > limit {
		results = results[:limit]
	}
	logger.Debug("results: %d", len(results))
	return results, nil
}

// ConceptsService exposes the design-concept catalog.
type ConceptsService struct {
	store driven.ConceptStore
}

// NewConceptsService creates a concept service over the given store.
func NewConceptsService(store driven.ConceptStore) *ConceptsService {
	return &ConceptsService{store: store}
}

// Lookup performs a case-insensitive exact match on the concept name.
func (s *ConceptsService) Lookup(ctx context.Context, name string) (*domain.ConceptEntry, error) {
	normalized := domain.NormalizeName(name)
	concept, err := s.store.Get(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("lookup concept %q: %w", name, err)
	}
	return concept, nil
}

// List returns every concept in ascending-name order.
func (s *ConceptsService) List(ctx context.Context) ([]domain.ConceptEntry, error) {
	return s.store.List(ctx)
}
