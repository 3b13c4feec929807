package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConceptCmd_Use(t *testing.T) {
	assert.Equal(t, "concept [name]", conceptCmd.Use)
}

func TestConceptCmd_ShowsConcept(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"concept", "glassmorphism"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Glassmorphism")
	assert.Contains(t, buf.String(), "Frosted glass")
	assert.Contains(t, buf.String(), "Classes: glass, backdrop-blur")
}

func TestConceptCmd_UnknownConcept(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"concept", "brutalist"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
}

func TestConceptsCmd_ListsConcepts(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"concepts"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Design Concepts (")
	assert.Contains(t, buf.String(), "glassmorphism")
	assert.Contains(t, buf.String(), "darkmode")
}
