package commands

import (
	"github.com/spf13/cobra"

	"github.com/erraggy/swaggertools/oaserrors"
)

// newHelpCmd replaces cobra's help command so that an unknown topic fails
// instead of printing the root help.
func (r *Router) newHelpCmd(root *cobra.Command) *cobra.Command {
	return &cobra.Command{
		Use:   "help [command]",
		Short: "Show help for a command",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return root.Help()
			}
			for _, c := range root.Commands() {
				if c.Name() == args[0] || c.HasAlias(args[0]) {
					return c.Help()
				}
			}
			return &oaserrors.UnknownCommandError{Tool: ToolName, Command: args[0]}
		},
	}
}
