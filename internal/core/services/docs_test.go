package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daisy-days/daisyd/internal/core/domain"
)

// fakeDocStore is a hand-rolled in-memory driven.DocStore for tests.
type fakeDocStore struct {
	entries []domain.DocEntry
}

func (f *fakeDocStore) Get(_ context.Context, name string) (*domain.DocEntry, error) {
	for i := range f.entries {
		if f.entries[i].Name == name {
			return &f.entries[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeDocStore) List(_ context.Context) ([]domain.DocEntry, error) {
	return f.entries, nil
}

func (f *fakeDocStore) Replace(_ context.Context, entries []domain.DocEntry) error {
	f.entries = entries
	return nil
}

type fakeConceptStore struct {
	concepts []domain.ConceptEntry
}

func (f *fakeConceptStore) Get(_ context.Context, name string) (*domain.ConceptEntry, error) {
	for i := range f.concepts {
		if f.concepts[i].Name == name {
			return &f.concepts[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeConceptStore) List(_ context.Context) ([]domain.ConceptEntry, error) {
	return f.concepts, nil
}

func (f *fakeConceptStore) Replace(_ context.Context, concepts []domain.ConceptEntry) error {
	f.concepts = concepts
	return nil
}

// docEntry builds a searchable entry the way the corpus parser would.
func docEntry(name, category, body string) domain.DocEntry {
	return domain.DocEntry{
		Name:       domain.NormalizeName(name),
		Category:   category,
		Summary:    body,
		Body:       body,
		Tags:       domain.TagSet(name, category, body),
		NameTokens: domain.Tokenize(name),
	}
}

func testDocStore() *fakeDocStore {
	return &fakeDocStore{entries: []domain.DocEntry{
		docEntry("button", "Actions", "Buttons allow the user to take actions"),
		docEntry("card", "Data display", "Cards group related content with actions"),
		docEntry("modal", "Actions", "Modal dialogs interrupt the user flow"),
		docEntry("navbar", "Navigation", "Navigation bar at the top of the page"),
	}}
}

func TestDocsService_Lookup(t *testing.T) {
	ctx := context.Background()
	svc := NewDocsService(testDocStore())

	t.Run("exact match", func(t *testing.T) {
		entry, err := svc.Lookup(ctx, "button")
		require.NoError(t, err)
		assert.Equal(t, "button", entry.Name)
	})

	t.Run("case-insensitive", func(t *testing.T) {
		entry, err := svc.Lookup(ctx, "  BuTTon ")
		require.NoError(t, err)
		assert.Equal(t, "button", entry.Name)
	})

	t.Run("unknown name", func(t *testing.T) {
		_, err := svc.Lookup(ctx, "accordion")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestDocsService_Search(t *testing.T) {
	ctx := context.Background()
	svc := NewDocsService(testDocStore())

	t.Run("name match outranks tag match", func(t *testing.T) {
		// "actions" is a tag of button, card, and modal; "button" is a
		// name token only of button.
		results, err := svc.Search(ctx, "button actions", 10)
		require.NoError(t, err)
		require.NotEmpty(t, results)
		assert.Equal(t, "button", results[0].EntryName)
		assert.Equal(t, domain.NameMatchWeight+1, results[0].Score)
	})

	t.Run("ties break by ascending name", func(t *testing.T) {
		results, err := svc.Search(ctx, "actions", 10)
		require.NoError(t, err)
		require.Len(t, results, 3)
		assert.Equal(t, "button", results[0].EntryName)
		assert.Equal(t, "card", results[1].EntryName)
		assert.Equal(t, "modal", results[2].EntryName)
	})

	t.Run("zero-overlap entries are excluded", func(t *testing.T) {
		results, err := svc.Search(ctx, "navigation", 10)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "navbar", results[0].EntryName)
	})

	t.Run("limit truncates results", func(t *testing.T) {
		results, err := svc.Search(ctx, "actions", 2)
		require.NoError(t, err)
		assert.Len(t, results, 2)
	})

	t.Run("non-positive limit is invalid", func(t *testing.T) {
		_, err := svc.Search(ctx, "button", 0)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)

		_, err = svc.Search(ctx, "button", -5)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("empty query returns empty results", func(t *testing.T) {
		results, err := svc.Search(ctx, "", 10)
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("all-stopword query returns empty results", func(t *testing.T) {
		results, err := svc.Search(ctx, "the of and", 10)
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("duplicate query terms count once", func(t *testing.T) {
		once, err := svc.Search(ctx, "button", 10)
		require.NoError(t, err)
		twice, err := svc.Search(ctx, "button button", 10)
		require.NoError(t, err)
		assert.Equal(t, once, twice)
	})

	t.Run("matched tags are reported", func(t *testing.T) {
		results, err := svc.Search(ctx, "navigation page", 10)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, []string{"navigation", "page"}, results[0].MatchedTags)
	})
}

func TestConceptsService(t *testing.T) {
	ctx := context.Background()
	svc := NewConceptsService(&fakeConceptStore{concepts: []domain.ConceptEntry{
		{Name: "glassmorphism", DisplayName: "Glassmorphism", Description: "Frosted glass aesthetic"},
	}})

	t.Run("lookup is case-insensitive", func(t *testing.T) {
		concept, err := svc.Lookup(ctx, "GlassMorphism")
		require.NoError(t, err)
		assert.Equal(t, "Glassmorphism", concept.DisplayName)
	})

	t.Run("unknown concept", func(t *testing.T) {
		_, err := svc.Lookup(ctx, "brutalism")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("list", func(t *testing.T) {
		concepts, err := svc.List(ctx)
		require.NoError(t, err)
		assert.Len(t, concepts, 1)
	})
}
