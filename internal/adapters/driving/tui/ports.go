package tui

import (
	"errors"

	"github.com/daisy-days/daisyd/internal/core/ports/driving"
)

// ErrMissingDocService is returned when the doc service is not provided.
var ErrMissingDocService = errors.New("tui: doc service is required")

// Ports aggregates the driving ports the TUI needs.
type Ports struct {
	// Docs provides documentation lookup and search.
	Docs driving.DocService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Docs == nil {
		return ErrMissingDocService
	}
	return nil
}
