// Package domain defines the core business entities for daisyd.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has no dependencies on other internal packages and defines the
// fundamental types:
//
//   - DocEntry: A component documentation record
//   - ConceptEntry: A named design concept with style rules
//   - LayoutTemplate: A compiled-in page layout archetype
//   - SearchResult: A ranked search hit
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. All other packages depend on
// domain, never the reverse. The only external dependency is
// golang.org/x/text, used by the tokeniser for Unicode folding.
//
// All entries and templates are immutable after the corpus load, so
// concurrent readers need no coordination.
package domain
