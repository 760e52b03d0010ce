package commands

import (
	"github.com/spf13/cobra"

	"github.com/erraggy/swaggertools/internal/cliutil"
)

func (r *Router) newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "info <version>",
		Short:   "Show where a Swagger version's specification and schemas live",
		Example: "  swagger-tools info 1.2",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			capability, err := r.provider.Get(args[0])
			if err != nil {
				return err
			}
			out, errw := cmd.OutOrStdout(), cmd.ErrOrStderr()
			cliutil.Writef(out, errw, "\nSwagger %s Information:\n\n", args[0])
			cliutil.Writef(out, errw, "  documentation url: %s\n", capability.DocsURL())
			cliutil.Writef(out, errw, "  schema(s) url:     %s\n\n", capability.SchemasURL())
			return nil
		},
	}
}
