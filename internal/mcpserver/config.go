package mcpserver

import (
	"time"

	"github.com/erraggy/swaggertools/internal/config"
)

// Environment variables read by loadConfig.
const (
	envValidateNoWarnings = "SWAGGER_TOOLS_MCP_VALIDATE_NO_WARNINGS"
	envIssueLimit         = "SWAGGER_TOOLS_MCP_ISSUE_LIMIT"
	envMaxLimit           = "SWAGGER_TOOLS_MCP_MAX_LIMIT"
	envMaxInlineSize      = "SWAGGER_TOOLS_MCP_MAX_INLINE_SIZE"
	envFetchTimeout       = "SWAGGER_TOOLS_MCP_FETCH_TIMEOUT"
	envAllowPrivateIPs    = "SWAGGER_TOOLS_MCP_ALLOW_PRIVATE_IPS"
)

// serverConfig holds the MCP server defaults.
type serverConfig struct {
	// ValidateNoWarnings omits warnings from validate output unless the
	// caller says otherwise.
	ValidateNoWarnings bool

	// IssueLimit is the page size used when a caller gives no limit and
	// MaxLimit caps any requested page size.
	IssueLimit int
	MaxLimit   int

	// MaxInlineSize bounds inline document content, in bytes.
	MaxInlineSize int
	// FetchTimeout bounds each remote fetch; zero means no timeout.
	FetchTimeout time.Duration
	// AllowPrivateIPs lets sources resolve to private and loopback addresses.
	AllowPrivateIPs bool
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads the SWAGGER_TOOLS_MCP_* environment variables.
func loadConfig() *serverConfig {
	return &serverConfig{
		ValidateNoWarnings: config.Bool(envValidateNoWarnings, false),
		IssueLimit:         config.PositiveInt(envIssueLimit, 100),
		MaxLimit:           config.PositiveInt(envMaxLimit, 1000),
		MaxInlineSize:      config.PositiveInt(envMaxInlineSize, 10<<20),
		FetchTimeout:       config.Duration(envFetchTimeout, 30*time.Second),
		AllowPrivateIPs:    config.Bool(envAllowPrivateIPs, false),
	}
}
