// Package commands implements the swagger-tools command tree.
package commands

import (
	"context"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	swaggertools "github.com/erraggy/swaggertools"
	"github.com/erraggy/swaggertools/internal/config"
	"github.com/erraggy/swaggertools/loader"
	"github.com/erraggy/swaggertools/spec"
)

// ToolName is the name of the CLI binary.
const ToolName = "swagger-tools"

// Router builds the command tree and owns its output streams.
type Router struct {
	cfg      config.Config
	stdout   io.Writer
	stderr   io.Writer
	provider spec.Provider

	debug bool
}

// NewRouter creates a router that writes documents to stdout and
// diagnostics to stderr.
func NewRouter(cfg config.Config, stdout, stderr io.Writer, provider spec.Provider) *Router {
	if provider == nil {
		provider = spec.DefaultProvider
	}
	return &Router{cfg: cfg, stdout: stdout, stderr: stderr, provider: provider}
}

// Run executes the command named by args. A failure is rendered to stderr
// and returned; in test mode it is returned without being rendered.
func (r *Router) Run(ctx context.Context, args []string) error {
	root := r.newRootCmd()
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	if err == nil {
		return nil
	}
	if !r.cfg.TestMode {
		r.render(err)
	}
	return err
}

// Execute runs args and returns the process exit status.
func (r *Router) Execute(ctx context.Context, args []string) int {
	if err := r.Run(ctx, args); err != nil {
		return 1
	}
	return 0
}

func (r *Router) newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           ToolName,
		Short:         "Validate Swagger documents and convert Swagger 1.2 to 2.0",
		Long:          "Validate Swagger 1.2 and 2.0 documents and convert Swagger 1.2 resource listings and API declarations to Swagger 2.0.",
		Version:       swaggertools.Version(),
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}
	root.SetOut(r.stdout)
	root.SetErr(r.stderr)
	root.PersistentFlags().BoolVar(&r.debug, "debug", false, "log debug output to stderr")

	root.AddCommand(r.newConvertCmd())
	root.AddCommand(r.newValidateCmd())
	root.AddCommand(r.newInfoCmd())
	root.SetHelpCommand(r.newHelpCmd(root))
	return root
}

// logger returns the stderr logger, at debug level when --debug is set.
func (r *Router) logger() *slog.Logger {
	level := r.cfg.LogLevel
	if r.debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(r.stderr, &slog.HandlerOptions{Level: level}))
}

// acquire loads and classifies the documents named by refs.
func (r *Router) acquire(ctx context.Context, refs []string) (loader.DocumentSet, error) {
	return loader.Acquire(ctx, refs,
		loader.WithLogger(loader.NewSlogAdapter(r.logger())),
		loader.WithTimeout(r.cfg.HTTPTimeout),
	)
}
