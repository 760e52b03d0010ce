package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/swaggertools/spec"
)

type validateInput struct {
	Documents  documentsInput `json:"documents"             jsonschema:"The Swagger document set to validate"`
	NoWarnings *bool          `json:"no_warnings,omitempty" jsonschema:"Omit warnings and judge validity by errors alone"`
	Offset     int            `json:"offset,omitempty"      jsonschema:"Skip the first N errors/warnings (for pagination)"`
	Limit      int            `json:"limit,omitempty"       jsonschema:"Maximum number of errors/warnings to return (default 100). Applied independently to errors and warnings arrays."`
}

type validateIssue struct {
	Document string `json:"document"`
	Source   string `json:"source"`
	Pointer  string `json:"pointer"`
	Code     string `json:"code,omitempty"`
	Message  string `json:"message"`
}

type validateOutput struct {
	Valid        bool            `json:"valid"`
	Version      string          `json:"version"`
	ErrorCount   int             `json:"error_count"`
	WarningCount int             `json:"warning_count"`
	Returned     int             `json:"returned"`
	Errors       []validateIssue `json:"errors,omitempty"`
	Warnings     []validateIssue `json:"warnings,omitempty"`
}

func handleValidate(ctx context.Context, _ *mcp.CallToolRequest, input validateInput) (*mcp.CallToolResult, validateOutput, error) {
	noWarnings := cfg.ValidateNoWarnings
	if input.NoWarnings != nil {
		noWarnings = *input.NoWarnings
	}

	set, err := input.Documents.resolve(ctx)
	if err != nil {
		return errResult(err), validateOutput{}, nil
	}
	capability, err := registry.Get(set.Version())
	if err != nil {
		return errResult(err), validateOutput{}, nil
	}
	results, err := capability.Validate(ctx, set)
	if err != nil {
		return errResult(err), validateOutput{}, nil
	}

	output := validateOutput{
		Version:    results.Version,
		ErrorCount: results.ErrorCount(),
	}
	output.Errors = makeSlice[validateIssue](output.ErrorCount)
	if noWarnings {
		output.Valid = results.Valid()
	} else {
		output.Valid = !results.HasIssues()
		output.WarningCount = results.WarningCount()
		output.Warnings = makeSlice[validateIssue](output.WarningCount)
	}

	for _, report := range results.Reports() {
		for _, e := range report.Errors {
			output.Errors = append(output.Errors, toValidateIssue(report, e))
		}
		if noWarnings {
			continue
		}
		for _, w := range report.Warnings {
			output.Warnings = append(output.Warnings, toValidateIssue(report, w))
		}
	}

	output.Errors = paginate(output.Errors, input.Offset, input.Limit)
	if !noWarnings {
		output.Warnings = paginate(output.Warnings, input.Offset, input.Limit)
	}
	output.Returned = len(output.Errors) + len(output.Warnings)

	return nil, output, nil
}

func toValidateIssue(report spec.DocumentReport, issue spec.Issue) validateIssue {
	return validateIssue{
		Document: report.Label,
		Source:   report.Source,
		Pointer:  issue.Pointer(),
		Code:     issue.Code,
		Message:  issue.Message,
	}
}
