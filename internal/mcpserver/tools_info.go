package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type infoInput struct {
	Version string `json:"version,omitempty" jsonschema:"Swagger version to describe, e.g. 1.2 or 2.0"`
}

type infoOutput struct {
	Version    string   `json:"version,omitempty"`
	DocsURL    string   `json:"docs_url,omitempty"`
	SchemasURL string   `json:"schemas_url,omitempty"`
	Supported  []string `json:"supported"`
}

func handleInfo(_ context.Context, _ *mcp.CallToolRequest, input infoInput) (*mcp.CallToolResult, infoOutput, error) {
	output := infoOutput{Supported: registry.Versions()}
	if input.Version == "" {
		return nil, output, nil
	}
	capability, err := registry.Get(input.Version)
	if err != nil {
		return errResult(err), infoOutput{}, nil
	}
	output.Version = capability.Version()
	output.DocsURL = capability.DocsURL()
	output.SchemasURL = capability.SchemasURL()
	return nil, output, nil
}
