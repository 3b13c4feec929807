package corpus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daisy-days/daisyd/internal/core/domain"
)

func TestParseComponents(t *testing.T) {
	t.Run("parses records with category and summary", func(t *testing.T) {
		data := []byte(`# header comment

### Button
Category: Actions

Buttons allow the user to take actions.
Classes: btn, btn-primary

### Card
Cards group content.
`)
		entries, err := ParseComponents(data)
		require.NoError(t, err)
		require.Len(t, entries, 2)

		assert.Equal(t, "button", entries[0].Name)
		assert.Equal(t, "Actions", entries[0].Category)
		assert.Equal(t, "Buttons allow the user to take actions.", entries[0].Summary)
		assert.Contains(t, entries[0].Body, "btn-primary")
		assert.True(t, entries[0].HasTag("actions"))
		assert.Equal(t, []string{"button"}, entries[0].NameTokens)

		assert.Equal(t, "card", entries[1].Name)
		assert.Empty(t, entries[1].Category)
	})

	t.Run("rejects record missing a body", func(t *testing.T) {
		data := []byte("### Button\n\n### Card\nCards group content.\n")
		_, err := ParseComponents(data)
		require.Error(t, err)

		var cfe *domain.CorpusFormatError
		require.ErrorAs(t, err, &cfe)
		assert.Equal(t, "components", cfe.Source)
		assert.Equal(t, "Button", cfe.Record)
		assert.Equal(t, 1, cfe.Line)
	})

	t.Run("rejects record missing a name", func(t *testing.T) {
		data := []byte("### \nbody text\n")
		_, err := ParseComponents(data)

		var cfe *domain.CorpusFormatError
		require.ErrorAs(t, err, &cfe)
		assert.Contains(t, cfe.Reason, "missing a name")
	})

	t.Run("rejects duplicate names case-insensitively", func(t *testing.T) {
		data := []byte("### Button\nbody one\n### BUTTON\nbody two\n")
		_, err := ParseComponents(data)

		var cfe *domain.CorpusFormatError
		require.ErrorAs(t, err, &cfe)
		assert.Equal(t, "duplicate name", cfe.Reason)
	})

	t.Run("recognises the category after a blank line", func(t *testing.T) {
		data := []byte("### Button\n\nCategory: Actions\n\nButtons allow the user to take actions.\n")
		entries, err := ParseComponents(data)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "Actions", entries[0].Category)
		assert.Equal(t, "Buttons allow the user to take actions.", entries[0].Body)
	})

	t.Run("tolerates surrounding whitespace", func(t *testing.T) {
		data := []byte("\n\n###   Button  \n\n  body text  \n\n")
		entries, err := ParseComponents(data)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "button", entries[0].Name)
		assert.Equal(t, "body text", entries[0].Body)
	})
}

func TestParseConcepts(t *testing.T) {
	t.Run("parses all fields", func(t *testing.T) {
		data := []byte(`### Glassmorphism
Description: Frosted glass aesthetic.
Classes: glass, backdrop-blur
Suggestion: Apply to cards.
Snippet: <div class="card glass"></div>
`)
		entries, err := ParseConcepts(data)
		require.NoError(t, err)
		require.Len(t, entries, 1)

		c := entries[0]
		assert.Equal(t, "glassmorphism", c.Name)
		assert.Equal(t, "Glassmorphism", c.DisplayName)
		assert.Equal(t, "Frosted glass aesthetic.", c.Description)
		assert.Equal(t, []string{"glass", "backdrop-blur"}, c.StyleRules)
		assert.Equal(t, "Apply to cards.", c.Suggestion)
		assert.Equal(t, `<div class="card glass"></div>`, c.Snippet)
	})

	t.Run("preserves responsive prefix classes", func(t *testing.T) {
		data := []byte("### Responsive\nDescription: Adapts to screens.\nClasses: sm:, md:, lg:\n")
		entries, err := ParseConcepts(data)
		require.NoError(t, err)
		assert.Equal(t, []string{"sm:", "md:", "lg:"}, entries[0].StyleRules)
	})

	t.Run("rejects concept missing a description", func(t *testing.T) {
		data := []byte("### Gradient\nClasses: bg-gradient-to-r\n")
		_, err := ParseConcepts(data)

		var cfe *domain.CorpusFormatError
		require.ErrorAs(t, err, &cfe)
		assert.Equal(t, "missing description", cfe.Reason)
		assert.Equal(t, "Gradient", cfe.Record)
	})
}

func TestEmbeddedCorpus(t *testing.T) {
	t.Run("components parse cleanly", func(t *testing.T) {
		entries, err := ParseComponents(Components())
		require.NoError(t, err)
		assert.Greater(t, len(entries), 20)
	})

	t.Run("concepts parse cleanly with the six concepts", func(t *testing.T) {
		entries, err := ParseConcepts(Concepts())
		require.NoError(t, err)
		require.Len(t, entries, 6)

		names := make([]string, len(entries))
		for i, e := range entries {
			names[i] = e.Name
		}
		assert.ElementsMatch(t, []string{
			"glassmorphism", "neumorphism", "darkmode",
			"gradient", "skeleton", "responsive",
		}, names)
	})
}
