package corpusfs

import (
	"context"
	"fmt"

	"github.com/daisy-days/daisyd/internal/core/domain"
	"github.com/daisy-days/daisyd/internal/core/ports/driven"
	"github.com/daisy-days/daisyd/internal/corpus"
	"github.com/daisy-days/daisyd/internal/logger"
)

// Load reads and parses both corpus files from the source.
// A parse failure aborts the whole load: the caller must never see a
// partially parsed corpus.
func Load(source driven.CorpusSource) ([]domain.DocEntry, []domain.ConceptEntry, error) {
	componentsText, err := source.Components()
	if err != nil {
		return nil, nil, fmt.Errorf("reading components corpus: %w", err)
	}
	conceptsText, err := source.Concepts()
	if err != nil {
		return nil, nil, fmt.Errorf("reading concepts corpus: %w", err)
	}

	docs, err := corpus.ParseComponents(componentsText)
	if err != nil {
		return nil, nil, err
	}
	concepts, err := corpus.ParseConcepts(conceptsText)
	if err != nil {
		return nil, nil, err
	}

	logger.Debug("corpus loaded: %d components, %d concepts", len(docs), len(concepts))
	return docs, concepts, nil
}

// Reload loads the corpus from the source and swaps both stores.
// The new snapshot is fully built before either store is touched; on
// any error both stores keep serving their previous snapshot.
func Reload(ctx context.Context, source driven.CorpusSource, docs driven.DocStore, concepts driven.ConceptStore) error {
	docEntries, conceptEntries, err := Load(source)
	if err != nil {
		return err
	}
	if err := docs.Replace(ctx, docEntries); err != nil {
		return err
	}
	return concepts.Replace(ctx, conceptEntries)
}
