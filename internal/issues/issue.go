// Package issues provides the issue type reported by Swagger validation.
package issues

import (
	"fmt"

	"github.com/erraggy/swaggertools/internal/severity"
)

// Issue represents a single problem found while validating a document.
type Issue struct {
	// Code is a stable, machine-readable identifier (e.g., "UNRESOLVABLE_MODEL")
	Code string
	// Message is a human-readable description of the issue
	Message string
	// Path holds the JSON pointer segments locating the problem within its document
	Path []string
	// Severity indicates the severity level of the issue
	Severity severity.Severity
	// Source is the path or URL of the document the issue belongs to
	Source string
}

// Pointer returns the issue location as a JSON pointer fragment (e.g., "#/apis/0/path").
func (i Issue) Pointer() string {
	return FormatPointer(i.Path...)
}

// String returns a formatted string representation of the issue:
// "✗ #/apis/0/path: CODE: message" for errors and "⚠ ..." for warnings.
func (i Issue) String() string {
	if i.Code == "" {
		return fmt.Sprintf("%s %s: %s", i.Severity.Symbol(), i.Pointer(), i.Message)
	}
	return fmt.Sprintf("%s %s: %s: %s", i.Severity.Symbol(), i.Pointer(), i.Code, i.Message)
}

// New creates an issue at the given path.
func New(sev severity.Severity, code, message string, path ...string) Issue {
	return Issue{
		Code:     code,
		Message:  message,
		Path:     append([]string(nil), path...),
		Severity: sev,
	}
}

// Errorf creates an error-level issue with a formatted message.
func Errorf(path []string, code, format string, args ...any) Issue {
	return New(severity.SeverityError, code, fmt.Sprintf(format, args...), path...)
}

// Warnf creates a warning-level issue with a formatted message.
func Warnf(path []string, code, format string, args ...any) Issue {
	return New(severity.SeverityWarning, code, fmt.Sprintf(format, args...), path...)
}
