package mcpserver

import (
	"context"
	"encoding/json"
	"slices"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// startTestSession creates an in-process MCP server/client pair and returns
// the connected client session. The server is shut down when the test ends.
func startTestSession(t *testing.T) *mcp.ClientSession {
	t.Helper()

	server := mcp.NewServer(
		&mcp.Implementation{Name: "swagger-tools-test", Version: "test"},
		nil,
	)
	registerAllTools(server)

	serverTransport, clientTransport := mcp.NewInMemoryTransports()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	done := make(chan error, 1)
	go func() {
		done <- server.Run(ctx, serverTransport)
	}()

	client := mcp.NewClient(
		&mcp.Implementation{Name: "test-client", Version: "test"},
		nil,
	)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = session.Close()
		cancel()
		<-done
	})

	return session
}

// unmarshalStructured decodes a tool result's structured content, falling
// back to its first text content.
func unmarshalStructured(t *testing.T, result *mcp.CallToolResult) map[string]any {
	t.Helper()

	if result.StructuredContent != nil {
		data, err := json.Marshal(result.StructuredContent)
		require.NoError(t, err)
		var m map[string]any
		require.NoError(t, json.Unmarshal(data, &m))
		return m
	}

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(textOf(t, result)), &m), "failed to parse text content as JSON")
	return m
}

// textOf returns the text of a result's first content item.
func textOf(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, result.Content, "expected at least one content item")
	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok, "expected TextContent, got %T", result.Content[0])
	return text.Text
}

func TestIntegration_ListTools(t *testing.T) {
	session := startTestSession(t)

	result, err := session.ListTools(context.Background(), &mcp.ListToolsParams{})
	require.NoError(t, err)
	require.Len(t, result.Tools, 3)

	names := make([]string, 0, len(result.Tools))
	for _, tool := range result.Tools {
		names = append(names, tool.Name)
		assert.NotEmpty(t, tool.Description, "tool %q has empty description", tool.Name)
		assert.NotNil(t, tool.InputSchema, "tool %q has no input schema", tool.Name)
	}
	for _, name := range []string{"validate", "convert", "info"} {
		assert.True(t, slices.Contains(names, name), "missing tool: %s", name)
	}
}

func TestIntegration_CallTool_Validate(t *testing.T) {
	session := startTestSession(t)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name: "validate",
		Arguments: map[string]any{
			"documents": map[string]any{
				"sources": []string{fixture("v2.0/invalid.json")},
			},
			"no_warnings": true,
		},
	})
	require.NoError(t, err)
	assert.False(t, result.IsError)

	structured := unmarshalStructured(t, result)
	assert.Equal(t, false, structured["valid"])
	assert.Equal(t, "2.0", structured["version"])
	assert.Equal(t, float64(3), structured["error_count"])
	assert.Equal(t, float64(0), structured["warning_count"])
	assert.NotContains(t, structured, "warnings")
}

func TestIntegration_CallTool_ValidateInline(t *testing.T) {
	session := startTestSession(t)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name: "validate",
		Arguments: map[string]any{
			"documents": map[string]any{"content": inlineSwagger20},
		},
	})
	require.NoError(t, err)
	assert.False(t, result.IsError)

	structured := unmarshalStructured(t, result)
	assert.Equal(t, true, structured["valid"])
	assert.Equal(t, float64(0), structured["returned"])
}

func TestIntegration_CallTool_Convert(t *testing.T) {
	session := startTestSession(t)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name: "convert",
		Arguments: map[string]any{
			"documents": map[string]any{"sources": petstoreSources()},
			"format":    "yaml",
		},
	})
	require.NoError(t, err)
	assert.False(t, result.IsError)

	structured := unmarshalStructured(t, result)
	assert.Equal(t, "1.2", structured["source_version"])
	assert.Equal(t, "2.0", structured["target_version"])
	assert.Equal(t, float64(5), structured["path_count"])
	assert.Contains(t, structured["document"], "swagger: \"2.0\"")
}

func TestIntegration_CallTool_ConvertRejectsCurrentGeneration(t *testing.T) {
	session := startTestSession(t)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name: "convert",
		Arguments: map[string]any{
			"documents": map[string]any{"content": inlineSwagger20},
		},
	})
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, textOf(t, result), "only Swagger 1.2 documents can be converted")
}

func TestIntegration_CallTool_Info(t *testing.T) {
	session := startTestSession(t)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "info",
		Arguments: map[string]any{"version": "2.0"},
	})
	require.NoError(t, err)
	assert.False(t, result.IsError)

	structured := unmarshalStructured(t, result)
	assert.Equal(t, "2.0", structured["version"])
	assert.Equal(t, "https://github.com/OAI/OpenAPI-Specification/blob/main/versions/2.0.md", structured["docs_url"])
	assert.Equal(t, []any{"1.2", "2.0"}, structured["supported"])
}
