// Package severity provides severity level constants for issues reported
// while validating Swagger documents.
package severity

// Severity indicates the severity level of a validation issue.
type Severity int

const (
	// SeverityError indicates a violation that makes the document set invalid.
	SeverityError Severity = iota

	// SeverityWarning indicates a problem that does not make the document set
	// invalid on its own, such as an unused model or definition.
	SeverityWarning
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Symbol returns the single-character marker used in text reports.
func (s Severity) Symbol() string {
	switch s {
	case SeverityError:
		return "✗"
	case SeverityWarning:
		return "⚠"
	default:
		return "?"
	}
}
