package mcpserver

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/swaggertools/internal/cliutil"
	"github.com/erraggy/swaggertools/internal/fileutil"
	"github.com/erraggy/swaggertools/loader"
	"github.com/erraggy/swaggertools/oaserrors"
	"github.com/erraggy/swaggertools/spec"
)

type convertInput struct {
	Documents      documentsInput `json:"documents"                 jsonschema:"The Swagger 1.2 document set to convert"`
	SkipValidation bool           `json:"skip_validation,omitempty" jsonschema:"Convert without validating the source documents first"`
	Format         string         `json:"format,omitempty"          jsonschema:"Output format: json (default) or yaml"`
	Output         string         `json:"output,omitempty"          jsonschema:"File path to write the converted document to instead of returning it inline"`
}

type convertOutput struct {
	SourceVersion   string `json:"source_version"`
	TargetVersion   string `json:"target_version"`
	PathCount       int    `json:"path_count"`
	DefinitionCount int    `json:"definition_count"`
	WrittenTo       string `json:"written_to,omitempty"`
	Document        string `json:"document,omitempty"`
}

func handleConvert(ctx context.Context, _ *mcp.CallToolRequest, input convertInput) (*mcp.CallToolResult, convertOutput, error) {
	format := input.Format
	if format == "" {
		format = cliutil.FormatJSON
	}
	if format != cliutil.FormatJSON && format != cliutil.FormatYAML {
		return errResult(fmt.Errorf("invalid format %q; valid formats: %s, %s", format, cliutil.FormatJSON, cliutil.FormatYAML)), convertOutput{}, nil
	}

	set, err := input.Documents.resolve(ctx)
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}
	legacy, ok := set.(*loader.LegacyGeneration)
	if !ok {
		return errResult(&oaserrors.ConversionError{
			SourceVersion: set.Version(),
			TargetVersion: spec.Version20,
			Message:       "only Swagger 1.2 documents can be converted",
		}), convertOutput{}, nil
	}

	capability, err := registry.Get(spec.Version12)
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}
	doc, err := capability.Convert(ctx, legacy, spec.ConvertOptions{SkipValidation: input.SkipValidation})
	if err != nil {
		var vfe *spec.ValidationFailedError
		if errors.As(err, &vfe) {
			err = fmt.Errorf("%w (%d errors, %d warnings); run validate for details or set skip_validation to convert anyway",
				vfe, vfe.Results.ErrorCount(), vfe.Results.WarningCount())
		}
		return errResult(err), convertOutput{}, nil
	}

	data, err := cliutil.MarshalDocument(doc, format)
	if err != nil {
		return errResult(fmt.Errorf("marshaling converted document: %w", err)), convertOutput{}, nil
	}

	output := convertOutput{
		SourceVersion:   legacy.Version(),
		TargetVersion:   doc.Swagger,
		PathCount:       len(doc.Paths),
		DefinitionCount: len(doc.Definitions),
	}
	if input.Output != "" {
		if err := fileutil.WriteOutput(input.Output, data); err != nil {
			return errResult(err), convertOutput{}, nil
		}
		output.WrittenTo = input.Output
		return nil, output, nil
	}
	output.Document = string(data)
	return nil, output, nil
}
