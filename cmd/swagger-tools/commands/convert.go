package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/erraggy/swaggertools/internal/cliutil"
	"github.com/erraggy/swaggertools/internal/fileutil"
	"github.com/erraggy/swaggertools/loader"
	"github.com/erraggy/swaggertools/oaserrors"
	"github.com/erraggy/swaggertools/spec"
)

// SkipValidationHint tells the user how to convert an invalid document set anyway.
const SkipValidationHint = "(Run with --no-validation to skip validation)"

// ConvertFlags contains flags for the convert command
type ConvertFlags struct {
	NoValidation bool
	YAML         bool
	Output       string
}

// ConversionGatedError reports a conversion that was refused because the
// source documents failed validation.
type ConversionGatedError struct {
	*spec.ValidationFailedError
}

// Error returns the validation failure notice followed by the skip hint.
func (e *ConversionGatedError) Error() string {
	return e.ValidationFailedError.Error() + " " + SkipValidationHint
}

// Unwrap returns the underlying validation failure.
func (e *ConversionGatedError) Unwrap() error {
	return e.ValidationFailedError
}

func (r *Router) newConvertCmd() *cobra.Command {
	flags := &ConvertFlags{}

	cmd := &cobra.Command{
		Use:   "convert <resourceListing> [apiDeclarations...]",
		Short: "Convert Swagger 1.2 documents to Swagger 2.0",
		Long: `Convert a Swagger 1.2 resource listing and its API declarations to a single
Swagger 2.0 document. The documents are validated first unless --no-validation
is given. Each argument is a file path or an http(s) URL.`,
		Example: `  swagger-tools convert api-docs.json pet.json store.json
  swagger-tools convert --yaml http://petstore.swagger.io/api/api-docs http://petstore.swagger.io/api/api-docs/pet
  swagger-tools convert -o swagger.json api-docs.json pet.json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.convert(cmd, args, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.NoValidation, "no-validation", false, "convert without validating the source documents")
	cmd.Flags().BoolVar(&flags.YAML, "yaml", false, "write YAML instead of JSON")
	cmd.Flags().StringVarP(&flags.Output, "output", "o", "", "output file path (default: stdout)")
	return cmd
}

func (r *Router) convert(cmd *cobra.Command, args []string, flags *ConvertFlags) error {
	ctx := cmd.Context()
	set, err := r.acquire(ctx, args)
	if err != nil {
		return err
	}

	legacy, ok := set.(*loader.LegacyGeneration)
	if !ok {
		return &oaserrors.ConversionError{
			SourceVersion: set.Version(),
			TargetVersion: spec.Version20,
			Message:       "only Swagger 1.2 documents can be converted",
		}
	}

	capability, err := r.provider.Get(spec.Version12)
	if err != nil {
		return err
	}
	doc, err := capability.Convert(ctx, legacy, spec.ConvertOptions{SkipValidation: flags.NoValidation})
	if err != nil {
		var vfe *spec.ValidationFailedError
		if errors.As(err, &vfe) {
			return &ConversionGatedError{ValidationFailedError: vfe}
		}
		return err
	}

	format := cliutil.FormatJSON
	if flags.YAML {
		format = cliutil.FormatYAML
	}
	data, err := cliutil.MarshalDocument(doc, format)
	if err != nil {
		return fmt.Errorf("marshaling converted document: %w", err)
	}

	if flags.Output != "" {
		return fileutil.WriteOutput(flags.Output, data)
	}
	if _, err := cmd.OutOrStdout().Write(data); err != nil {
		return fmt.Errorf("writing converted document to stdout: %w", err)
	}
	return nil
}
