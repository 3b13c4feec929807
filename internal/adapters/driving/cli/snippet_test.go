package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runSnippet(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(append([]string{"snippet"}, args...))
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestSnippetThemeCmd_Defaults(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := runSnippet(t, "theme")

	require.NoError(t, err)
	assert.Contains(t, out, `@plugin "daisyui/theme"`)
	assert.Contains(t, out, `name: "custom"`)
	assert.Contains(t, out, "#570df8")
}

func TestSnippetThemeCmd_CustomColours(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer func() {
		themeName, themePrimary = "", ""
	}()

	out, err := runSnippet(t, "theme", "--name", "ocean", "--primary", "#0077be")

	require.NoError(t, err)
	assert.Contains(t, out, `name: "ocean"`)
	assert.Contains(t, out, "#0077be")
}

func TestSnippetFormCmd(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer func() {
		formFields = nil
	}()

	out, err := runSnippet(t, "form", "Sign Up", "--field", "email", "--field", "password")

	require.NoError(t, err)
	assert.Contains(t, out, "Sign Up")
	assert.Contains(t, out, "email")
	assert.Contains(t, out, "card")
}

func TestSnippetTableCmd(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := runSnippet(t, "table", "Name", "Role", "Status")

	require.NoError(t, err)
	assert.Contains(t, out, "<table")
	assert.Contains(t, out, "<th>Name</th>")
	assert.Contains(t, out, "<th>Status</th>")
}

func TestSnippetChartCmd(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer func() {
		chartID = ""
	}()

	out, err := runSnippet(t, "chart", "bar", "--id", "sales")

	require.NoError(t, err)
	assert.Contains(t, out, "<canvas")
	assert.Contains(t, out, "sales")
	assert.Contains(t, out, "bar")
}

func TestSnippetScriptCmd(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	t.Run("known component", func(t *testing.T) {
		out, err := runSnippet(t, "script", "modal")
		require.NoError(t, err)
		assert.Contains(t, out, "showModal")
	})

	t.Run("unknown component", func(t *testing.T) {
		_, err := runSnippet(t, "script", "carousel")
		assert.Error(t, err)
	})
}
