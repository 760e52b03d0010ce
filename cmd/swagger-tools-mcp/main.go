// Command swagger-tools-mcp serves the swagger-tools validate, convert and
// info operations as MCP tools over stdio.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/erraggy/swaggertools/internal/mcpserver"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := mcpserver.Run(ctx)
	stop()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "swagger-tools-mcp: %v\n", err)
		os.Exit(1)
	}
}
