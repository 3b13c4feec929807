package domain

// DefaultSearchLimit bounds search results when the caller does not
// specify a limit.
const DefaultSearchLimit = 20

// NameMatchWeight is the score contribution of a query term that
// appears in an entry's name. Tag-only matches score 1. The weighting
// is intentionally simple; the tie-break below keeps ordering
// deterministic regardless.
const NameMatchWeight = 3

// SearchResult represents a single ranked search hit.
// Results are transient: produced per query, never stored.
type SearchResult struct {
	// EntryName is the matched entry's normalised name.
	EntryName string

	// Score is the relevance rank; higher is more relevant.
	// Equal scores break ties by ascending entry name.
	Score int

	// MatchedTags is the subset of the entry's tags that contributed
	// to the score, in query-term order.
	MatchedTags []string
}
