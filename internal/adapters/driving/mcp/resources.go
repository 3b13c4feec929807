package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for daisyd resources.
	uriScheme = "daisy://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for listing components.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "components",
		Name:        "components",
		Description: "List of all documented daisyUI components",
		MIMEType:    "application/json",
	}, s.handleComponentsResource)

	// Template for individual component docs.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "components/{name}",
		Name:        "component-docs",
		Description: "Documentation for a single component",
		MIMEType:    "text/plain",
	}, s.handleComponentDocResource)

	// Static resource for listing concepts.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "concepts",
		Name:        "concepts",
		Description: "List of all design concepts",
		MIMEType:    "application/json",
	}, s.handleConceptsResource)

	// Template for individual concepts.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "concepts/{name}",
		Name:        "concept",
		Description: "A single design concept with classes and snippet",
		MIMEType:    "application/json",
	}, s.handleConceptResource)
}

// handleComponentsResource returns a list of all documented components.
func (s *Server) handleComponentsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	entries, err := s.ports.Docs.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing components: %w", err)
	}

	infos := make([]ComponentInfo, len(entries))
	for i := range entries {
		infos[i] = ComponentInfo{
			Name:     entries[i].Name,
			Category: entries[i].Category,
			Summary:  entries[i].Summary,
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling components: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleComponentDocResource returns the documentation for one component.
func (s *Server) handleComponentDocResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	name := extractResourceName(req.Params.URI, "components/")
	if name == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	entry, err := s.ports.Docs.Lookup(ctx, name)
	if err != nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     entry.Body,
		}},
	}, nil
}

// handleConceptsResource returns a list of all design concepts.
func (s *Server) handleConceptsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	concepts, err := s.ports.Concepts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing concepts: %w", err)
	}

	names := make([]string, len(concepts))
	for i := range concepts {
		names[i] = concepts[i].Name
	}

	data, err := json.MarshalIndent(names, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling concepts: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleConceptResource returns one design concept.
func (s *Server) handleConceptResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	name := extractResourceName(req.Params.URI, "concepts/")
	if name == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	concept, err := s.ports.Concepts.Lookup(ctx, name)
	if err != nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	data, err := json.MarshalIndent(GetConceptOutput{
		Name:        concept.DisplayName,
		Description: concept.Description,
		Classes:     concept.StyleRules,
		Suggestion:  concept.Suggestion,
		Snippet:     concept.Snippet,
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling concept: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractResourceName extracts the trailing name from a URI like
// daisy://components/{name}.
func extractResourceName(uri, collection string) string {
	prefix := uriScheme + collection
	if !strings.HasPrefix(uri, prefix) {
		return ""
	}
	name := strings.TrimPrefix(uri, prefix)
	if strings.Contains(name, "/") {
		return ""
	}
	return name
}
