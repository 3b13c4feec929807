package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entry does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input, such as a
	// non-positive search limit. Rejected before any index access.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownArchetype indicates a layout archetype outside the
	// fixed ten-entry set.
	ErrUnknownArchetype = errors.New("unknown archetype")

	// ErrUnknownConcept indicates a design concept name that is not in
	// the catalog.
	ErrUnknownConcept = errors.New("unknown concept")
)

// CorpusFormatError reports the first malformed record encountered while
// parsing the embedded corpus. It is fatal at startup: the process must
// not serve requests with a partially loaded corpus.
type CorpusFormatError struct {
	// Source names the corpus file ("components" or "concepts").
	Source string

	// Line is the 1-based line number of the offending record.
	Line int

	// Record is the record name, if one was parsed.
	Record string

	// Reason describes what is malformed.
	Reason string
}

// Error implements the error interface.
func (e *CorpusFormatError) Error() string {
	if e.Record != "" {
		return fmt.Sprintf("corpus %s: line %d: record %q: %s", e.Source, e.Line, e.Record, e.Reason)
	}
	return fmt.Sprintf("corpus %s: line %d: %s", e.Source, e.Line, e.Reason)
}

// GenerationError wraps a layout generation failure with the offending
// argument. No partial document is ever emitted alongside one.
type GenerationError struct {
	// Name is the archetype or concept name that failed to resolve.
	Name string

	// Err is ErrUnknownArchetype or ErrUnknownConcept.
	Err error
}

// Error implements the error interface.
func (e *GenerationError) Error() string {
	return fmt.Sprintf("%v: %q", e.Err, e.Name)
}

// Unwrap supports errors.Is against the generation sentinels.
func (e *GenerationError) Unwrap() error {
	return e.Err
}
