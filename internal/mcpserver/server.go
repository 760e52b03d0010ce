// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes swagger-tools capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/swaggertools"
	"github.com/erraggy/swaggertools/spec"
)

const serverInstructions = `swagger-tools MCP server: validates Swagger 1.2 and 2.0 document sets, converts Swagger 1.2 to 2.0, and reports where each version's specification and schemas live.

Documents: pass "sources" (paths or URLs, root document first) or inline "content". A Swagger 1.2 set is the resource listing followed by its API declarations; inline content is the resource listing and sources supply the declarations.

Configuration: defaults come from SWAGGER_TOOLS_MCP_* environment variables set in your MCP client config.
- SWAGGER_TOOLS_MCP_VALIDATE_NO_WARNINGS (default: false): omit warnings from validate output
- SWAGGER_TOOLS_MCP_ISSUE_LIMIT (default: 100): default page size for issue listings
- SWAGGER_TOOLS_MCP_MAX_LIMIT (default: 1000): largest page size a caller may request
- SWAGGER_TOOLS_MCP_MAX_INLINE_SIZE (default: 10485760): largest accepted inline content, in bytes
- SWAGGER_TOOLS_MCP_FETCH_TIMEOUT (default: 30s): timeout for each remote document
- SWAGGER_TOOLS_MCP_ALLOW_PRIVATE_IPS (default: false): allow URLs that resolve to private or loopback addresses`

// registry serves the capability for each Swagger version.
var registry = spec.DefaultProvider

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "swagger-tools", Version: swaggertools.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "validate",
		Description: "Validate a Swagger 1.2 or 2.0 document set against its version's JSON Schemas and semantic rules. Returns errors and warnings with the source document, JSON pointer, and a stable code. A set is valid only when it has no errors and no warnings, unless no_warnings is set. Use offset/limit to paginate through results.",
	}, handleValidate)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "convert",
		Description: "Convert a Swagger 1.2 document set (resource listing plus API declarations) to a single Swagger 2.0 document. The set is validated first and conversion is refused when it has errors; set skip_validation to convert anyway. Returns the converted document inline as JSON or YAML, or writes it to output.",
	}, handleConvert)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "info",
		Description: "Report where the specification text and JSON Schemas of a Swagger version are published. Omit version to list the supported versions.",
	}, handleInfo)
}

// paginate applies offset/limit pagination to a slice, returning the
// requested page. A non-positive limit defaults to cfg.IssueLimit.
func paginate[T any](items []T, offset, limit int) []T {
	if limit <= 0 {
		limit = cfg.IssueLimit
	}
	if limit > cfg.MaxLimit {
		limit = cfg.MaxLimit
	}
	if offset < 0 || offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end < offset || end > len(items) { // overflow or beyond slice
		end = len(items)
	}
	return items[offset:end]
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// pathPattern matches absolute filesystem paths under common roots.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

// sanitizeError strips absolute filesystem paths from error messages
// so internal directory structure does not reach MCP clients.
func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
