package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daisy-days/daisyd/internal/core/domain"
)

func TestLayoutCmd_Use(t *testing.T) {
	assert.Equal(t, "layout [archetype]", layoutCmd.Use)
}

func TestLayoutCmd_GeneratesDocument(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"layout", "saas", "--title", "Acme"})
	defer func() {
		rootCmd.SetArgs(nil)
		layoutTitle = ""
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "<!DOCTYPE html>")
	assert.Contains(t, buf.String(), "Acme")
}

func TestLayoutCmd_UsesConfiguredTitle(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	settings := domain.DefaultAppSettings()
	settings.DefaultTitle = "Acme Portal"
	settingsService = &mockSettingsService{settings: settings}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"layout", "saas"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Acme Portal")
}

func TestLayoutCmd_AppliesConcepts(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"layout", "blog", "--concept", "glassmorphism"})
	defer func() {
		rootCmd.SetArgs(nil)
		layoutConcepts = nil
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "glass")
}

func TestLayoutCmd_WritesToFile(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out := filepath.Join(t.TempDir(), "page.html")
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"layout", "dashboard", "--out", out})
	defer func() {
		rootCmd.SetArgs(nil)
		layoutOut = ""
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Wrote "+out)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<!DOCTYPE html>")
}

func TestLayoutCmd_UnknownArchetype(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"layout", "spaceship"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "spaceship")
}

func TestLayoutsCmd_ListsArchetypes(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"layouts"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "saas")
	assert.Contains(t, buf.String(), "dashboard")
	assert.Contains(t, buf.String(), "auth")
}

func TestSuggestCmd_RoutesPrompt(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"suggest", "a", "personal", "blog", "for", "travel", "photos"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Suggested layout: blog")
	assert.Contains(t, buf.String(), "daisyd layout blog")
}
