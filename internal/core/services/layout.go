package services

import (
	"context"
	"fmt"
	"html"
	"strings"
	"unicode"

	"github.com/daisy-days/daisyd/internal/core/domain"
	"github.com/daisy-days/daisyd/internal/core/ports/driven"
	"github.com/daisy-days/daisyd/internal/core/ports/driving"
	"github.com/daisy-days/daisyd/internal/logger"
)

// Ensure LayoutsService implements the interface.
var _ driving.LayoutService = (*LayoutsService)(nil)

// maxTitleRunes caps sanitised titles.
const maxTitleRunes = 100

// LayoutsService generates complete HTML documents from the archetype
// templates, optionally styled by design concepts.
type LayoutsService struct {
	registry driven.TemplateRegistry
	concepts driven.ConceptStore
	theme    string
}

// NewLayoutsService creates a layout service. An empty theme defaults
// to "light".
func NewLayoutsService(registry driven.TemplateRegistry, concepts driven.ConceptStore, theme string) *LayoutsService {
	if theme == "" {
		theme = "light"
	}
	return &LayoutsService{registry: registry, concepts: concepts, theme: theme}
}

// Generate composes an archetype, an optional title, and zero or more
// concept styles into a self-contained HTML document. All inputs are
// resolved before any output is produced; failures never emit a
// partial document.
func (s *LayoutsService) Generate(ctx context.Context, archetype, title string, concepts []string) (string, error) {
	logger.Section("Generate")
	logger.Debug("archetype: %q, title: %q, concepts: %v", archetype, title, concepts)

	tmpl, err := s.registry.Resolve(archetype)
	if err != nil {
		return "", err
	}

	resolved := make([]*domain.ConceptEntry, 0, len(concepts))
	for _, name := range concepts {
		concept, err := s.concepts.Get(ctx, domain.NormalizeName(name))
		if err != nil {
			return "", &domain.GenerationError{Name: name, Err: domain.ErrUnknownConcept}
		}
		resolved = append(resolved, concept)
	}

	sanitized := sanitizeTitle(title)
	if sanitized == "" {
		sanitized = tmpl.DefaultTitle
	}
	escaped := html.EscapeString(sanitized)

	// Root classes: template classes first, then each concept's style
	// rules in request order, no deduplication.
	rootClasses := make([]string, 0, len(tmpl.RootClasses))
	rootClasses = append(rootClasses, tmpl.RootClasses...)
	for _, concept := range resolved {
		rootClasses = append(rootClasses, concept.StyleRules...)
	}

	var body strings.Builder
	for _, section := range tmpl.Sections {
		fragment := tmpl.Slots[section]
		body.WriteString(strings.ReplaceAll(fragment, domain.TitlePlaceholder, escaped))
		body.WriteByte('\n')
	}

	doc := fmt.Sprintf(`<!DOCTYPE html>
<html lang="en" data-theme=%q>
<head>
<meta charset="utf-8" />
<meta name="viewport" content="width=device-width, initial-scale=1" />
<title>%s</title>
<link href="https://cdn.jsdelivr.net/npm/daisyui@4/dist/full.min.css" rel="stylesheet" type="text/css" />
<script src="https://cdn.tailwindcss.com"></script>
</head>
<body>
<div class=%q>
%s</div>
</body>
</html>
`, s.theme, escaped, strings.Join(rootClasses, " "), body.String())

	return doc, nil
}

// promptRoute maps prompt keywords to an archetype. Rules are checked
// in order; the first rule with any matching keyword wins.
type promptRoute struct {
	keywords  []string
	archetype domain.Archetype
}

var promptRoutes = []promptRoute{
	{[]string{"blog", "article", "news"}, domain.ArchetypeBlog},
	{[]string{"social", "twitter", "feed"}, domain.ArchetypeSocial},
	{[]string{"kanban", "trello", "board", "task"}, domain.ArchetypeKanban},
	{[]string{"mail", "inbox", "message"}, domain.ArchetypeInbox},
	{[]string{"profile", "settings", "account"}, domain.ArchetypeProfile},
	{[]string{"docs", "documentation", "wiki"}, domain.ArchetypeDocs},
	{[]string{"saas", "startup", "landing"}, domain.ArchetypeSaas},
	{[]string{"dashboard", "admin"}, domain.ArchetypeDashboard},
	{[]string{"shop", "store", "ecommerce"}, domain.ArchetypeStore},
	{[]string{"login", "signin", "auth"}, domain.ArchetypeAuth},
}

// Suggest routes a free-form prompt to the best-matching archetype by
// keyword. Unmatched prompts default to the SaaS landing page.
func (s *LayoutsService) Suggest(_ context.Context, prompt string) domain.Archetype {
	p := strings.ToLower(prompt)
	for _, route := range promptRoutes {
		for _, kw := range route.keywords {
			if strings.Contains(p, kw) {
				logger.Debug("prompt %q routed to %s (keyword %q)", prompt, route.archetype, kw)
				return route.archetype
			}
		}
	}
	return domain.ArchetypeSaas
}

// Archetypes returns the supported archetypes in canonical order.
func (s *LayoutsService) Archetypes() []domain.Archetype {
	return s.registry.Archetypes()
}

// sanitizeTitle strips everything but letters, digits, whitespace,
// hyphens, and underscores, then caps the result at 100 runes.
func sanitizeTitle(title string) string {
	var b strings.Builder
	count := 0
	for _, r := range title {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.IsSpace(r) && r != '-' && r != '_' {
			continue
		}
		b.WriteRune(r)
		count++
		if count == maxTitleRunes {
			break
		}
	}
	return strings.TrimSpace(b.String())
}
