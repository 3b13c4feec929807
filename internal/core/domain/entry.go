package domain

import "sort"

// DocEntry represents a single component documentation record.
// Entries are created once by the corpus loader and are immutable
// thereafter; the documentation index owns them for the process
// lifetime.
type DocEntry struct {
	// Name is the unique, case-normalised identifier (e.g. "button").
	Name string

	// Category is the component group (e.g. "Actions", "Data display").
	Category string

	// Summary is the first line of the documentation body.
	Summary string

	// Body is the full documentation text.
	Body string

	// Tags are normalised tokens derived from name, category, and body.
	// Sorted ascending so membership checks can binary search.
	Tags []string

	// NameTokens are the normalised tokens of the name alone.
	// Query terms matching these rank higher than tag-only matches.
	NameTokens []string
}

// HasTag reports whether the entry carries the given normalised tag.
func (e *DocEntry) HasTag(tag string) bool {
	i := sort.SearchStrings(e.Tags, tag)
	return i < len(e.Tags) && e.Tags[i] == tag
}

// HasNameToken reports whether the given term appears in the entry name.
func (e *DocEntry) HasNameToken(term string) bool {
	for _, t := range e.NameTokens {
		if t == term {
			return true
		}
	}
	return false
}

// ConceptEntry represents a named design concept (e.g. glassmorphism).
// Same lifecycle as DocEntry, owned by the concept catalog.
type ConceptEntry struct {
	// Name is the unique, case-normalised identifier.
	Name string

	// DisplayName is the human-readable name (e.g. "Glassmorphism").
	DisplayName string

	// Description explains the visual style.
	Description string

	// StyleRules is the ordered sequence of CSS class fragments the
	// layout generator injects when a layout is requested with this
	// concept. Order matters; duplicates across concepts are kept.
	StyleRules []string

	// Suggestion is a short usage hint.
	Suggestion string

	// Snippet is a self-contained example markup fragment.
	Snippet string
}
