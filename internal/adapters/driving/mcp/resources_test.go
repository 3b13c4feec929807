package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daisy-days/daisyd/internal/core/domain"
)

func readRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{URI: uri},
	}
}

func TestServer_handleComponentsResource(t *testing.T) {
	ctx := context.Background()
	ports, docs, _, _, _ := testPorts()
	docs.entries = []domain.DocEntry{
		{Name: "alert", Category: "Feedback", Summary: "Alerts inform"},
		{Name: "button", Category: "Actions", Summary: "Buttons act"},
	}

	server, err := NewServer(ports)
	require.NoError(t, err)

	result, err := server.handleComponentsResource(ctx, readRequest("daisy://components"))
	require.NoError(t, err)
	require.Len(t, result.Contents, 1)
	assert.Equal(t, "application/json", result.Contents[0].MIMEType)

	var infos []ComponentInfo
	require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &infos))
	require.Len(t, infos, 2)
	assert.Equal(t, "alert", infos[0].Name)
}

func TestServer_handleComponentDocResource(t *testing.T) {
	ctx := context.Background()
	ports, docs, _, _, _ := testPorts()
	docs.entries = []domain.DocEntry{{Name: "button", Body: "Buttons act\nClasses: btn"}}

	server, err := NewServer(ports)
	require.NoError(t, err)

	t.Run("returns the body as plain text", func(t *testing.T) {
		result, err := server.handleComponentDocResource(ctx, readRequest("daisy://components/button"))
		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "text/plain", result.Contents[0].MIMEType)
		assert.Contains(t, result.Contents[0].Text, "Classes: btn")
	})

	t.Run("unknown component is not found", func(t *testing.T) {
		_, err := server.handleComponentDocResource(ctx, readRequest("daisy://components/accordion"))
		assert.Error(t, err)
	})

	t.Run("malformed URI is not found", func(t *testing.T) {
		_, err := server.handleComponentDocResource(ctx, readRequest("daisy://components/a/b"))
		assert.Error(t, err)
	})
}

func TestServer_handleConceptResources(t *testing.T) {
	ctx := context.Background()
	ports, _, concepts, _, _ := testPorts()
	concepts.concepts = []domain.ConceptEntry{{
		Name:        "darkmode",
		DisplayName: "Dark Mode",
		Description: "Dark colour scheme",
		StyleRules:  []string{"dark"},
	}}

	server, err := NewServer(ports)
	require.NoError(t, err)

	t.Run("list", func(t *testing.T) {
		result, err := server.handleConceptsResource(ctx, readRequest("daisy://concepts"))
		require.NoError(t, err)

		var names []string
		require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &names))
		assert.Equal(t, []string{"darkmode"}, names)
	})

	t.Run("single concept", func(t *testing.T) {
		result, err := server.handleConceptResource(ctx, readRequest("daisy://concepts/darkmode"))
		require.NoError(t, err)

		var output GetConceptOutput
		require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &output))
		assert.Equal(t, "Dark Mode", output.Name)
		assert.Equal(t, []string{"dark"}, output.Classes)
	})

	t.Run("unknown concept is not found", func(t *testing.T) {
		_, err := server.handleConceptResource(ctx, readRequest("daisy://concepts/brutalism"))
		assert.Error(t, err)
	})
}

func TestExtractResourceName(t *testing.T) {
	assert.Equal(t, "button", extractResourceName("daisy://components/button", "components/"))
	assert.Equal(t, "", extractResourceName("daisy://components/a/b", "components/"))
	assert.Equal(t, "", extractResourceName("other://components/button", "components/"))
}
