package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/daisy-days/daisyd/internal/core/domain"
)

// SearchInput is the input schema for the search tool.
type SearchInput struct {
	Query string `json:"query" jsonschema:"the search query to match against component docs"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of results to return (default 20)"`
}

// SearchOutput is the output schema for the search tool.
type SearchOutput struct {
	Results []SearchResultOutput `json:"results"`
	Count   int                  `json:"count"`
}

// SearchResultOutput represents a single search result.
type SearchResultOutput struct {
	Name        string   `json:"name"`
	Score       int      `json:"score"`
	MatchedTags []string `json:"matched_tags,omitempty"`
	Summary     string   `json:"summary,omitempty"`
}

// GetDocsInput is the input schema for the documentation tool.
type GetDocsInput struct {
	Component string `json:"component" jsonschema:"the component name, e.g. button"`
}

// GetDocsOutput is the output schema for the documentation tool.
type GetDocsOutput struct {
	Name          string `json:"name"`
	Category      string `json:"category,omitempty"`
	Summary       string `json:"summary"`
	Documentation string `json:"documentation"`
}

// ListComponentsInput is the (empty) input schema for the component list tool.
type ListComponentsInput struct{}

// ListComponentsOutput is the output schema for the component list tool.
type ListComponentsOutput struct {
	Components []ComponentInfo `json:"components"`
	Count      int             `json:"count"`
}

// ComponentInfo is one entry in the component list.
type ComponentInfo struct {
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
	Summary  string `json:"summary,omitempty"`
}

// GetConceptInput is the input schema for the concept tool.
type GetConceptInput struct {
	Concept string `json:"concept" jsonschema:"the design concept name, e.g. glassmorphism"`
}

// GetConceptOutput is the output schema for the concept tool.
type GetConceptOutput struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Classes     []string `json:"classes,omitempty"`
	Suggestion  string   `json:"suggestion,omitempty"`
	Snippet     string   `json:"snippet,omitempty"`
}

// ListConceptsInput is the (empty) input schema for the concept list tool.
type ListConceptsInput struct{}

// ListConceptsOutput is the output schema for the concept list tool.
type ListConceptsOutput struct {
	Concepts []string `json:"concepts"`
	Count    int      `json:"count"`
}

// ScaffoldLayoutInput is the input schema for the layout tool.
type ScaffoldLayoutInput struct {
	Layout   string   `json:"layout" jsonschema:"one of saas, blog, social, kanban, inbox, profile, docs, dashboard, auth, store"`
	Title    string   `json:"title,omitempty" jsonschema:"page title; defaults per layout when empty"`
	Concepts []string `json:"concepts,omitempty" jsonschema:"design concepts to apply, in order"`
}

// ScaffoldLayoutOutput is the output schema for the layout tool.
type ScaffoldLayoutOutput struct {
	Layout string `json:"layout"`
	HTML   string `json:"html"`
}

// ListLayoutsInput is the (empty) input schema for the layout list tool.
type ListLayoutsInput struct{}

// ListLayoutsOutput is the output schema for the layout list tool.
type ListLayoutsOutput struct {
	Layouts []LayoutInfo `json:"layouts"`
}

// LayoutInfo describes one archetype.
type LayoutInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// IdeaToUIInput is the input schema for the prompt-to-layout tool.
type IdeaToUIInput struct {
	Prompt string `json:"prompt" jsonschema:"a free-form description of the desired UI"`
	Title  string `json:"title,omitempty" jsonschema:"optional page title"`
}

// GenerateThemeInput is the input schema for the theme tool.
type GenerateThemeInput struct {
	Name      string `json:"name" jsonschema:"theme name"`
	Primary   string `json:"primary,omitempty" jsonschema:"primary colour, e.g. #570df8"`
	Secondary string `json:"secondary,omitempty" jsonschema:"secondary colour"`
	Accent    string `json:"accent,omitempty" jsonschema:"accent colour"`
	Base      string `json:"base,omitempty" jsonschema:"base-100 background colour"`
}

// SnippetOutput carries a single generated fragment.
type SnippetOutput struct {
	HTML string `json:"html"`
}

// ScaffoldFormInput is the input schema for the form tool.
type ScaffoldFormInput struct {
	Title  string   `json:"title" jsonschema:"form heading"`
	Fields []string `json:"fields,omitempty" jsonschema:"field names, one text input each"`
}

// CreateTableInput is the input schema for the table tool.
type CreateTableInput struct {
	Columns []string `json:"columns" jsonschema:"column header names"`
}

// CreateChartInput is the input schema for the chart tool.
type CreateChartInput struct {
	Type string `json:"type,omitempty" jsonschema:"Chart.js chart type, e.g. bar or line"`
	ID   string `json:"id,omitempty" jsonschema:"canvas element id"`
}

// GetScriptInput is the input schema for the script tool.
type GetScriptInput struct {
	Component string `json:"component" jsonschema:"component to fetch the interaction script for, e.g. modal"`
}

// GetScriptOutput is the output schema for the script tool.
type GetScriptOutput struct {
	Script string `json:"script"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "daisyui_search",
		Description: "Search the daisyUI component documentation",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "daisyui_get_docs",
		Description: "Get the full documentation for a daisyUI component",
	}, s.handleGetDocs)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "daisyui_list_components",
		Description: "List all documented daisyUI components",
	}, s.handleListComponents)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "daisyui_get_concept",
		Description: "Get a design concept with its classes and example snippet",
	}, s.handleGetConcept)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "daisyui_list_concepts",
		Description: "List all available design concepts",
	}, s.handleListConcepts)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "daisyui_scaffold_layout",
		Description: "Generate a complete HTML page from a layout archetype",
	}, s.handleScaffoldLayout)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "daisyui_list_layouts",
		Description: "List the available layout archetypes",
	}, s.handleListLayouts)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "daisyui_idea_to_ui",
		Description: "Turn a free-form prompt into a generated UI page",
	}, s.handleIdeaToUI)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "daisyui_generate_theme",
		Description: "Generate a daisyUI theme plugin snippet",
	}, s.handleGenerateTheme)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "daisyui_scaffold_form",
		Description: "Scaffold a card-wrapped form",
	}, s.handleScaffoldForm)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "daisyui_create_table",
		Description: "Create a table skeleton with the given columns",
	}, s.handleCreateTable)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "daisyui_create_chart",
		Description: "Create a Chart.js canvas bootstrap",
	}, s.handleCreateChart)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "daisyui_get_script",
		Description: "Get the interaction script for a component",
	}, s.handleGetScript)
}

// defaultSearchLimit resolves the search limit used when the caller
// does not supply one.
func (s *Server) defaultSearchLimit() int {
	if s.ports.Settings != nil {
		if settings, err := s.ports.Settings.Get(); err == nil && settings.SearchLimit > 0 {
			return settings.SearchLimit
		}
	}
	return domain.DefaultSearchLimit
}

// defaultTitle resolves the configured page title, or "" when none is
// configured, leaving the archetype's own title in effect.
func (s *Server) defaultTitle() string {
	if s.ports.Settings != nil {
		if settings, err := s.ports.Settings.Get(); err == nil {
			return settings.DefaultTitle
		}
	}
	return ""
}

// handleSearch handles the search tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = s.defaultSearchLimit()
	}

	results, err := s.ports.Docs.Search(ctx, input.Query, limit)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	output := SearchOutput{
		Results: make([]SearchResultOutput, len(results)),
		Count:   len(results),
	}
	for i := range results {
		output.Results[i] = SearchResultOutput{
			Name:        results[i].EntryName,
			Score:       results[i].Score,
			MatchedTags: results[i].MatchedTags,
		}
		if entry, err := s.ports.Docs.Lookup(ctx, results[i].EntryName); err == nil {
			output.Results[i].Summary = entry.Summary
		}
	}

	return nil, output, nil
}

// handleGetDocs handles the documentation tool invocation.
func (s *Server) handleGetDocs(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetDocsInput,
) (*mcp.CallToolResult, GetDocsOutput, error) {
	entry, err := s.ports.Docs.Lookup(ctx, input.Component)
	if err != nil {
		return nil, GetDocsOutput{}, err
	}

	return nil, GetDocsOutput{
		Name:          entry.Name,
		Category:      entry.Category,
		Summary:       entry.Summary,
		Documentation: entry.Body,
	}, nil
}

// handleListComponents handles the component list tool invocation.
func (s *Server) handleListComponents(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ ListComponentsInput,
) (*mcp.CallToolResult, ListComponentsOutput, error) {
	entries, err := s.ports.Docs.List(ctx)
	if err != nil {
		return nil, ListComponentsOutput{}, err
	}

	output := ListComponentsOutput{
		Components: make([]ComponentInfo, len(entries)),
		Count:      len(entries),
	}
	for i := range entries {
		output.Components[i] = ComponentInfo{
			Name:     entries[i].Name,
			Category: entries[i].Category,
			Summary:  entries[i].Summary,
		}
	}

	return nil, output, nil
}

// handleGetConcept handles the concept tool invocation.
func (s *Server) handleGetConcept(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetConceptInput,
) (*mcp.CallToolResult, GetConceptOutput, error) {
	concept, err := s.ports.Concepts.Lookup(ctx, input.Concept)
	if err != nil {
		return nil, GetConceptOutput{}, err
	}

	return nil, GetConceptOutput{
		Name:        concept.DisplayName,
		Description: concept.Description,
		Classes:     concept.StyleRules,
		Suggestion:  concept.Suggestion,
		Snippet:     concept.Snippet,
	}, nil
}

// handleListConcepts handles the concept list tool invocation.
func (s *Server) handleListConcepts(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ ListConceptsInput,
) (*mcp.CallToolResult, ListConceptsOutput, error) {
	concepts, err := s.ports.Concepts.List(ctx)
	if err != nil {
		return nil, ListConceptsOutput{}, err
	}

	output := ListConceptsOutput{
		Concepts: make([]string, len(concepts)),
		Count:    len(concepts),
	}
	for i := range concepts {
		output.Concepts[i] = concepts[i].Name
	}

	return nil, output, nil
}

// handleScaffoldLayout handles the layout tool invocation.
func (s *Server) handleScaffoldLayout(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ScaffoldLayoutInput,
) (*mcp.CallToolResult, ScaffoldLayoutOutput, error) {
	title := input.Title
	if title == "" {
		title = s.defaultTitle()
	}

	html, err := s.ports.Layouts.Generate(ctx, input.Layout, title, input.Concepts)
	if err != nil {
		return nil, ScaffoldLayoutOutput{}, err
	}

	return nil, ScaffoldLayoutOutput{Layout: input.Layout, HTML: html}, nil
}

// handleListLayouts handles the layout list tool invocation.
func (s *Server) handleListLayouts(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ ListLayoutsInput,
) (*mcp.CallToolResult, ListLayoutsOutput, error) {
	archetypes := s.ports.Layouts.Archetypes()

	output := ListLayoutsOutput{Layouts: make([]LayoutInfo, len(archetypes))}
	for i, a := range archetypes {
		output.Layouts[i] = LayoutInfo{
			Name:        a.String(),
			Description: a.Description(),
		}
	}

	return nil, output, nil
}

// handleIdeaToUI handles the prompt-to-layout tool invocation.
func (s *Server) handleIdeaToUI(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input IdeaToUIInput,
) (*mcp.CallToolResult, ScaffoldLayoutOutput, error) {
	archetype := s.ports.Layouts.Suggest(ctx, input.Prompt)

	title := input.Title
	if title == "" {
		title = s.defaultTitle()
	}

	html, err := s.ports.Layouts.Generate(ctx, archetype.String(), title, nil)
	if err != nil {
		return nil, ScaffoldLayoutOutput{}, err
	}

	return nil, ScaffoldLayoutOutput{Layout: archetype.String(), HTML: html}, nil
}

// handleGenerateTheme handles the theme tool invocation.
func (s *Server) handleGenerateTheme(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input GenerateThemeInput,
) (*mcp.CallToolResult, SnippetOutput, error) {
	css := s.ports.Snippets.Theme(input.Name, input.Primary, input.Secondary, input.Accent, input.Base)
	return nil, SnippetOutput{HTML: css}, nil
}

// handleScaffoldForm handles the form tool invocation.
func (s *Server) handleScaffoldForm(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ScaffoldFormInput,
) (*mcp.CallToolResult, SnippetOutput, error) {
	return nil, SnippetOutput{HTML: s.ports.Snippets.Form(input.Title, input.Fields)}, nil
}

// handleCreateTable handles the table tool invocation.
func (s *Server) handleCreateTable(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input CreateTableInput,
) (*mcp.CallToolResult, SnippetOutput, error) {
	return nil, SnippetOutput{HTML: s.ports.Snippets.Table(input.Columns)}, nil
}

// handleCreateChart handles the chart tool invocation.
func (s *Server) handleCreateChart(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input CreateChartInput,
) (*mcp.CallToolResult, SnippetOutput, error) {
	return nil, SnippetOutput{HTML: s.ports.Snippets.Chart(input.Type, input.ID)}, nil
}

// handleGetScript handles the script tool invocation.
func (s *Server) handleGetScript(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input GetScriptInput,
) (*mcp.CallToolResult, GetScriptOutput, error) {
	script, err := s.ports.Snippets.Script(input.Component)
	if err != nil {
		return nil, GetScriptOutput{}, err
	}
	return nil, GetScriptOutput{Script: script}, nil
}
