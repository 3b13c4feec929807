package editor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/daisy-days/daisyd/internal/core/domain"
	"github.com/daisy-days/daisyd/internal/core/ports/driving"
)

// Slash command names.
const (
	CmdSearch     = "daisy-search"
	CmdDoc        = "daisy-doc"
	CmdComponents = "daisy-components"
	CmdConcept    = "daisy-concept"
	CmdConcepts   = "daisy-concepts"
	CmdLayout     = "daisy-layout"
	CmdLayouts    = "daisy-layouts"
)

// maxDocCompletions bounds the component completion list.
const maxDocCompletions = 20

// ErrUnknownCommand is returned for command names outside the set.
var ErrUnknownCommand = errors.New("editor: unknown command")

// Output is the rendered result of a slash command.
type Output struct {
	// Text is the markdown body inserted into the assistant context.
	Text string

	// Sections labels spans of Text; every command emits exactly one
	// section covering the whole body.
	Sections []Section
}

// Section labels a span of the output text.
type Section struct {
	Label string
}

// Completion is one argument-completion candidate.
type Completion struct {
	Label      string
	NewText    string
	RunCommand bool
}

// CommandSpec describes a command for registration with the editor.
type CommandSpec struct {
	Name         string
	Description  string
	RequiresArgs bool
}

// Handler dispatches slash commands to the core services.
type Handler struct {
	docs     driving.DocService
	concepts driving.ConceptService
	layouts  driving.LayoutService
}

// NewHandler creates a slash-command handler.
func NewHandler(docs driving.DocService, concepts driving.ConceptService, layouts driving.LayoutService) *Handler {
	return &Handler{docs: docs, concepts: concepts, layouts: layouts}
}

// Commands returns the full command set in presentation order.
func (h *Handler) Commands() []CommandSpec {
	return []CommandSpec{
		{Name: CmdSearch, Description: "Search daisyUI component docs", RequiresArgs: true},
		{Name: CmdDoc, Description: "Insert a component's documentation", RequiresArgs: true},
		{Name: CmdComponents, Description: "List all documented components"},
		{Name: CmdConcept, Description: "Insert a design concept", RequiresArgs: true},
		{Name: CmdConcepts, Description: "List all design concepts"},
		{Name: CmdLayout, Description: "Generate a layout archetype", RequiresArgs: true},
		{Name: CmdLayouts, Description: "List the layout archetypes"},
	}
}

// Run executes the named command with its arguments.
func (h *Handler) Run(ctx context.Context, command string, args []string) (*Output, error) {
	switch command {
	case CmdSearch:
		return h.runSearch(ctx, args)
	case CmdDoc:
		return h.runDoc(ctx, args)
	case CmdComponents:
		return h.runComponents(ctx)
	case CmdConcept:
		return h.runConcept(ctx, args)
	case CmdConcepts:
		return h.runConcepts(ctx)
	case CmdLayout:
		return h.runLayout(ctx, args)
	case CmdLayouts:
		return h.runLayouts()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, command)
	}
}

// Complete returns argument completions for the named command.
// Commands without completable arguments return nil.
func (h *Handler) Complete(ctx context.Context, command string) ([]Completion, error) {
	switch command {
	case CmdLayout:
		archetypes := h.layouts.Archetypes()
		completions := make([]Completion, len(archetypes))
		for i, a := range archetypes {
			completions[i] = Completion{Label: a.String(), NewText: a.String(), RunCommand: true}
		}
		return completions, nil

	case CmdConcept:
		concepts, err := h.concepts.List(ctx)
		if err != nil {
			return nil, err
		}
		completions := make([]Completion, len(concepts))
		for i := range concepts {
			completions[i] = Completion{Label: concepts[i].Name, NewText: concepts[i].Name, RunCommand: true}
		}
		return completions, nil

	case CmdDoc:
		entries, err := h.docs.List(ctx)
		if err != nil {
			return nil, err
		}
		if len(entries) > maxDocCompletions {
			entries = entries[:maxDocCompletions]
		}
		completions := make([]Completion, len(entries))
		for i := range entries {
			completions[i] = Completion{Label: entries[i].Name, NewText: entries[i].Name, RunCommand: true}
		}
		return completions, nil

	default:
		return nil, nil
	}
}

func (h *Handler) runSearch(ctx context.Context, args []string) (*Output, error) {
	query := strings.TrimSpace(strings.Join(args, " "))
	if query == "" {
		return nil, fmt.Errorf("search query required: %w", domain.ErrInvalidInput)
	}

	results, err := h.docs.Search(ctx, query, domain.DefaultSearchLimit)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return &Output{Text: fmt.Sprintf("No results found for %q", query)}, nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "## Search Results for %q\n\n", query)
	for _, r := range results {
		fmt.Fprintf(&b, "- **%s** (score: %d)\n", r.EntryName, r.Score)
	}
	return sectionOutput(b.String(), "Search Results"), nil
}

func (h *Handler) runDoc(ctx context.Context, args []string) (*Output, error) {
	name := strings.TrimSpace(strings.Join(args, " "))
	if name == "" {
		return nil, fmt.Errorf("component name required: %w", domain.ErrInvalidInput)
	}

	entry, err := h.docs.Lookup(ctx, name)
	if err != nil {
		return nil, err
	}
	return sectionOutput(entry.Body, "Doc: "+entry.Name), nil
}

func (h *Handler) runComponents(ctx context.Context) (*Output, error) {
	entries, err := h.docs.List(ctx)
	if err != nil {
		return nil, err
	}

	names := make([]string, len(entries))
	for i := range entries {
		names[i] = entries[i].Name
	}
	text := "## DaisyUI Components\n\n" + strings.Join(names, ", ")
	return sectionOutput(text, "Components List"), nil
}

func (h *Handler) runConcept(ctx context.Context, args []string) (*Output, error) {
	name := strings.TrimSpace(strings.Join(args, " "))
	if name == "" {
		return nil, fmt.Errorf("concept name required: %w", domain.ErrInvalidInput)
	}

	concept, err := h.concepts.Lookup(ctx, name)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n**Description:** %s\n", concept.DisplayName, concept.Description)
	if len(concept.StyleRules) > 0 {
		fmt.Fprintf(&b, "\n**Classes:** %s\n", strings.Join(concept.StyleRules, ", "))
	}
	if concept.Suggestion != "" {
		fmt.Fprintf(&b, "\n**Suggestion:** %s\n", concept.Suggestion)
	}
	if concept.Snippet != "" {
		fmt.Fprintf(&b, "\n```html\n%s\n```\n", concept.Snippet)
	}
	return sectionOutput(b.String(), "Concept: "+concept.DisplayName), nil
}

func (h *Handler) runConcepts(ctx context.Context) (*Output, error) {
	concepts, err := h.concepts.List(ctx)
	if err != nil {
		return nil, err
	}

	names := make([]string, len(concepts))
	for i := range concepts {
		names[i] = concepts[i].Name
	}
	text := "## Design Concepts\n\n" + strings.Join(names, ", ")
	return sectionOutput(text, "Concepts List"), nil
}

func (h *Handler) runLayout(ctx context.Context, args []string) (*Output, error) {
	layout := "saas"
	title := ""
	if len(args) > 0 {
		layout = args[0]
	}
	if len(args) > 1 {
		title = strings.Join(args[1:], " ")
	}

	html, err := h.layouts.Generate(ctx, layout, title, nil)
	if err != nil {
		return nil, err
	}

	text := fmt.Sprintf("## Generated %s Layout\n\n```html\n%s\n```", layout, html)
	return sectionOutput(text, "Layout: "+layout), nil
}

func (h *Handler) runLayouts() (*Output, error) {
	archetypes := h.layouts.Archetypes()

	names := make([]string, len(archetypes))
	for i, a := range archetypes {
		names[i] = a.String()
	}
	text := "## Available Layouts\n\n" + strings.Join(names, ", ")
	return sectionOutput(text, "Layouts List"), nil
}

func sectionOutput(text, label string) *Output {
	return &Output{
		Text:     text,
		Sections: []Section{{Label: label}},
	}
}
