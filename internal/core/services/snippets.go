package services

import (
	"fmt"
	"html"
	"strings"

	"github.com/daisy-days/daisyd/internal/core/domain"
	"github.com/daisy-days/daisyd/internal/core/ports/driving"
)

// Ensure SnippetsService implements the interface.
var _ driving.SnippetService = (*SnippetsService)(nil)

// SnippetsService produces small standalone markup fragments. All
// methods are pure string composition; there is no state.
type SnippetsService struct{}

// NewSnippetsService creates a snippet service.
func NewSnippetsService() *SnippetsService {
	return &SnippetsService{}
}

// Theme renders a daisyUI theme plugin snippet. Empty colours fall
// back to sensible defaults so the snippet is always valid CSS.
func (s *SnippetsService) Theme(name, primary, secondary, accent, base string) string {
	if name == "" {
		name = "custom"
	}
	if primary == "" {
		primary = "#570df8"
	}
	if secondary == "" {
		secondary = "#f000b8"
	}
	if accent == "" {
		accent = "#37cdbe"
	}
	if base == "" {
		base = "#ffffff"
	}
	return fmt.Sprintf(
		`@plugin "daisyui/theme" { name: %q; --color-primary: %s; --color-secondary: %s; --color-accent: %s; --color-base-100: %s; }`,
		name, primary, secondary, accent, base)
}

// Form scaffolds a card-wrapped form with a text input per field.
func (s *SnippetsService) Form(title string, fields []string) string {
	var b strings.Builder
	for _, field := range fields {
		name := html.EscapeString(field)
		fmt.Fprintf(&b,
			`<div class="form-control"><label class="label"><span class="label-text">%s</span></label><input type="text" name=%q class="input input-bordered" /></div>`,
			name, name)
	}
	return fmt.Sprintf(
		`<div class="card bg-base-100 w-full max-w-sm shadow-2xl"><form class="card-body"><h2 class="card-title justify-center">%s</h2>%s<div class="form-control mt-6"><button class="btn btn-primary">Submit</button></div></form></div>`,
		html.EscapeString(title), b.String())
}

// Table renders a table skeleton with the given column headers.
func (s *SnippetsService) Table(columns []string) string {
	var headers strings.Builder
	for _, col := range columns {
		fmt.Fprintf(&headers, "<th>%s</th>", html.EscapeString(col))
	}
	return fmt.Sprintf(
		`<table class="table w-full"><thead><tr>%s</tr></thead><tbody><tr><td>Data</td></tr></tbody></table>`,
		headers.String())
}

// Chart renders a Chart.js canvas bootstrap for the given chart type.
func (s *SnippetsService) Chart(kind, id string) string {
	if kind == "" {
		kind = "bar"
	}
	if id == "" {
		id = "chart"
	}
	return fmt.Sprintf(
		`<canvas id=%q></canvas><script>new Chart(document.getElementById(%q), { type: %q, data: { datasets: [{ data: [10, 20] }] } });</script>`,
		id, id, kind)
}

// componentScripts maps component names to their interaction scripts.
var componentScripts = map[string]string{
	"modal":  "document.getElementById('my_modal_1').showModal();",
	"drawer": "document.getElementById('my-drawer').checked = !document.getElementById('my-drawer').checked;",
	"theme":  "document.documentElement.setAttribute('data-theme', document.documentElement.getAttribute('data-theme') === 'dark' ? 'light' : 'dark');",
	"toast":  "setTimeout(() => document.getElementById('my-toast').remove(), 3000);",
}

// Script returns the interaction script for a component.
// Components without one return domain.ErrNotFound.
func (s *SnippetsService) Script(component string) (string, error) {
	script, ok := componentScripts[domain.NormalizeName(component)]
	if !ok {
		return "", fmt.Errorf("script for %q: %w", component, domain.ErrNotFound)
	}
	return script, nil
}
