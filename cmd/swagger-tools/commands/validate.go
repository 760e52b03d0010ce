package commands

import (
	"github.com/spf13/cobra"

	"github.com/erraggy/swaggertools/spec"
)

func (r *Router) newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <root> [apiDeclarations...]",
		Short: "Validate Swagger 1.2 or 2.0 documents",
		Long: `Validate a Swagger 2.0 document, or a Swagger 1.2 resource listing and its
API declarations. The version is detected from the first document. Any error
or warning fails validation and is reported per document.`,
		Example: `  swagger-tools validate swagger.yaml
  swagger-tools validate api-docs.json pet.json store.json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.validate(cmd, args)
		},
	}
}

func (r *Router) validate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	set, err := r.acquire(ctx, args)
	if err != nil {
		return err
	}

	capability, err := r.provider.Get(set.Version())
	if err != nil {
		return err
	}
	results, err := capability.Validate(ctx, set)
	if err != nil {
		return err
	}
	if results.HasIssues() {
		return &spec.ValidationFailedError{Results: results}
	}
	return nil
}
