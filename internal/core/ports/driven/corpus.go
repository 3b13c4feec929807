package driven

// CorpusSource supplies the raw documentation text the corpus loader
// parses at startup: one structured source for components, one for
// concepts. The default implementation serves text embedded at build
// time; a file-backed implementation supports local overrides.
type CorpusSource interface {
	// Components returns the raw component documentation text.
	Components() ([]byte, error)

	// Concepts returns the raw design-concept text.
	Concepts() ([]byte, error)
}
