package domain

import "strings"

// Archetype identifies one of the fixed layout categories.
// The set is closed by design so every archetype is exhaustively
// testable; there is no runtime registration.
type Archetype string

// The ten layout archetypes.
const (
	// ArchetypeSaas is a marketing landing page with hero and features.
	ArchetypeSaas Archetype = "saas"

	// ArchetypeBlog is an article-centric layout with a sidebar.
	ArchetypeBlog Archetype = "blog"

	// ArchetypeSocial is a three-column social feed.
	ArchetypeSocial Archetype = "social"

	// ArchetypeKanban is a horizontally scrolling task board.
	ArchetypeKanban Archetype = "kanban"

	// ArchetypeInbox is a mail client with folder and message panes.
	ArchetypeInbox Archetype = "inbox"

	// ArchetypeProfile is an account settings page.
	ArchetypeProfile Archetype = "profile"

	// ArchetypeDocs is a documentation site with a drawer sidebar.
	ArchetypeDocs Archetype = "docs"

	// ArchetypeDashboard is an admin dashboard with stats.
	ArchetypeDashboard Archetype = "dashboard"

	// ArchetypeAuth is a centred login card.
	ArchetypeAuth Archetype = "auth"

	// ArchetypeStore is a storefront with a product grid.
	ArchetypeStore Archetype = "store"
)

// Archetypes returns all archetypes in their canonical order.
func Archetypes() []Archetype {
	return []Archetype{
		ArchetypeSaas,
		ArchetypeBlog,
		ArchetypeSocial,
		ArchetypeKanban,
		ArchetypeInbox,
		ArchetypeProfile,
		ArchetypeDocs,
		ArchetypeDashboard,
		ArchetypeAuth,
		ArchetypeStore,
	}
}

// IsValid returns true if the archetype is recognised.
func (a Archetype) IsValid() bool {
	switch a {
	case ArchetypeSaas, ArchetypeBlog, ArchetypeSocial, ArchetypeKanban,
		ArchetypeInbox, ArchetypeProfile, ArchetypeDocs,
		ArchetypeDashboard, ArchetypeAuth, ArchetypeStore:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (a Archetype) String() string {
	return string(a)
}

// Description returns a human-readable description of the archetype.
func (a Archetype) Description() string {
	switch a {
	case ArchetypeSaas:
		return "SaaS landing page (navbar, hero, feature grid, footer)"
	case ArchetypeBlog:
		return "Blog (featured article, story list, sidebar)"
	case ArchetypeSocial:
		return "Social feed (sidebar navigation, composer, timeline)"
	case ArchetypeKanban:
		return "Kanban board (swimlanes with task cards)"
	case ArchetypeInbox:
		return "Mail inbox (folders, message list, reading pane)"
	case ArchetypeProfile:
		return "Profile settings (section menu, editable form)"
	case ArchetypeDocs:
		return "Documentation site (drawer sidebar, prose content)"
	case ArchetypeDashboard:
		return "Admin dashboard (drawer, stat cards, activity)"
	case ArchetypeAuth:
		return "Authentication page (centred login card)"
	case ArchetypeStore:
		return "Storefront (hero, product grid, cart)"
	default:
		return "Unknown"
	}
}

// ParseArchetype matches a name case-insensitively against the fixed
// archetype set. Unknown names return a GenerationError wrapping
// ErrUnknownArchetype.
func ParseArchetype(name string) (Archetype, error) {
	a := Archetype(strings.ToLower(strings.TrimSpace(name)))
	if !a.IsValid() {
		return "", &GenerationError{Name: name, Err: ErrUnknownArchetype}
	}
	return a, nil
}

// TitlePlaceholder is the slot token replaced by the page title when a
// template fragment is rendered.
const TitlePlaceholder = "{{title}}"

// LayoutTemplate describes the structure of one archetype.
// Templates are static, compiled-in, and immutable; the template
// registry owns them.
type LayoutTemplate struct {
	// Archetype is the template's identifier.
	Archetype Archetype

	// DefaultTitle is used when the caller supplies no title.
	DefaultTitle string

	// RootClasses are the classes on the document's root container.
	// Concept style rules are appended here in request order.
	RootClasses []string

	// Sections is the ordered sequence of named structural blocks.
	Sections []string

	// Slots maps each section name to the markup fragment it renders.
	// Fragments may contain TitlePlaceholder.
	Slots map[string]string
}
