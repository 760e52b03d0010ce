package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/erraggy/swaggertools/cmd/swagger-tools/commands"
	"github.com/erraggy/swaggertools/internal/config"
	"github.com/erraggy/swaggertools/spec"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	r := commands.NewRouter(config.Load(), os.Stdout, os.Stderr, spec.DefaultProvider)
	code := r.Execute(ctx, os.Args[1:])
	stop()
	os.Exit(code)
}
