// Package mcp provides an MCP (Model Context Protocol) server adapter.
// It exposes the daisyUI documentation index and layout generator to AI
// assistants as tools and resources.
package mcp

import "errors"

// Required-port errors returned by Ports.Validate.
var (
	// ErrMissingDocService is returned when the doc service is not provided.
	ErrMissingDocService = errors.New("mcp: doc service is required")

	// ErrMissingConceptService is returned when the concept service is not provided.
	ErrMissingConceptService = errors.New("mcp: concept service is required")

	// ErrMissingLayoutService is returned when the layout service is not provided.
	ErrMissingLayoutService = errors.New("mcp: layout service is required")

	// ErrMissingSnippetService is returned when the snippet service is not provided.
	ErrMissingSnippetService = errors.New("mcp: snippet service is required")
)
