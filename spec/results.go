package spec

import (
	"cmp"
	"slices"

	"github.com/erraggy/swaggertools/internal/issues"
	"github.com/erraggy/swaggertools/internal/severity"
	"github.com/erraggy/swaggertools/oaserrors"
)

// Issue is a single validation error or warning.
type Issue = issues.Issue

// Severity indicates whether an Issue is an error or a warning.
type Severity = severity.Severity

const (
	// SeverityError marks a violation that makes the document set invalid
	SeverityError = severity.SeverityError
	// SeverityWarning marks a problem that does not break the document set
	SeverityWarning = severity.SeverityWarning
)

// Results is the outcome of validating a document set.
//
// For a Swagger 2.0 set, Errors and Warnings describe the single document.
// For a Swagger 1.2 set, they describe the resource listing and
// APIDeclarations carries one entry per declaration, in input order.
type Results struct {
	// Version is the Swagger version the set was validated as
	Version string
	// Source is the reference of the root document
	Source string
	// Errors found in the root document
	Errors []Issue
	// Warnings found in the root document
	Warnings []Issue
	// APIDeclarations holds per-declaration results (Swagger 1.2 only)
	APIDeclarations []DeclarationResults
}

// DeclarationResults holds the issues found in one Swagger 1.2 API declaration.
type DeclarationResults struct {
	// Index is the declaration's position among all declarations
	Index int
	// Source is the reference the declaration was read from
	Source string
	// ResourcePath is the declaration's resourcePath, if any
	ResourcePath string
	// Errors found in the declaration
	Errors []Issue
	// Warnings found in the declaration
	Warnings []Issue
}

// ErrorCount returns the number of errors across every document.
func (r *Results) ErrorCount() int {
	if r == nil {
		return 0
	}
	n := len(r.Errors)
	for _, d := range r.APIDeclarations {
		n += len(d.Errors)
	}
	return n
}

// WarningCount returns the number of warnings across every document.
func (r *Results) WarningCount() int {
	if r == nil {
		return 0
	}
	n := len(r.Warnings)
	for _, d := range r.APIDeclarations {
		n += len(d.Warnings)
	}
	return n
}

// Valid reports whether no errors were found. Warnings are allowed.
func (r *Results) Valid() bool {
	return r.ErrorCount() == 0
}

// HasIssues reports whether any error or warning was found.
func (r *Results) HasIssues() bool {
	return r.ErrorCount()+r.WarningCount() > 0
}

// DocumentReport groups the issues of one document for display.
type DocumentReport struct {
	// Label names the document's role, e.g. "Resource Listing" or "API Declaration #2"
	Label string
	// Source is the reference the document was read from
	Source string
	// Errors found in the document
	Errors []Issue
	// Warnings found in the document
	Warnings []Issue
}

// Reports returns one DocumentReport per document that has issues, root
// document first and declarations in input order.
func (r *Results) Reports() []DocumentReport {
	if r == nil {
		return nil
	}
	var reports []DocumentReport
	if len(r.Errors)+len(r.Warnings) > 0 {
		label := "Swagger Document"
		if r.Version == Version12 {
			label = "Resource Listing"
		}
		reports = append(reports, DocumentReport{Label: label, Source: r.Source, Errors: r.Errors, Warnings: r.Warnings})
	}
	for _, d := range r.APIDeclarations {
		if len(d.Errors)+len(d.Warnings) == 0 {
			continue
		}
		label := "API Declaration"
		if d.ResourcePath != "" {
			label += " (" + d.ResourcePath + ")"
		}
		reports = append(reports, DocumentReport{Label: label, Source: d.Source, Errors: d.Errors, Warnings: d.Warnings})
	}
	return reports
}

// ValidationFailedError reports a document set that failed validation.
// It matches oaserrors.ErrValidation.
type ValidationFailedError struct {
	Results *Results
}

// Error returns a human-readable error message.
func (e *ValidationFailedError) Error() string {
	return "The Swagger document(s) are invalid"
}

// Is reports whether target matches this error type.
func (e *ValidationFailedError) Is(target error) bool {
	return target == oaserrors.ErrValidation
}

// collector accumulates issues for one document.
type collector struct {
	source   string
	errors   []Issue
	warnings []Issue
}

func (c *collector) add(issue Issue) {
	issue.Source = c.source
	if issue.Severity == severity.SeverityWarning {
		c.warnings = append(c.warnings, issue)
		return
	}
	c.errors = append(c.errors, issue)
}

func (c *collector) addAll(found []Issue) {
	for _, issue := range found {
		c.add(issue)
	}
}

func (c *collector) errorf(path []string, code, format string, args ...any) {
	c.add(issues.Errorf(path, code, format, args...))
}

func (c *collector) warnf(path []string, code, format string, args ...any) {
	c.add(issues.Warnf(path, code, format, args...))
}

// sorted returns the errors and warnings ordered by location, then code.
func (c *collector) sorted() (errs, warns []Issue) {
	return sortIssues(c.errors), sortIssues(c.warnings)
}

func sortIssues(list []Issue) []Issue {
	slices.SortStableFunc(list, func(a, b Issue) int {
		return cmp.Or(
			cmp.Compare(a.Pointer(), b.Pointer()),
			cmp.Compare(a.Code, b.Code),
			cmp.Compare(a.Message, b.Message),
		)
	})
	return list
}
