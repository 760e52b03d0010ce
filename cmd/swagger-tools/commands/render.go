package commands

import (
	"errors"
	"io"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/erraggy/swaggertools/internal/cliutil"
	"github.com/erraggy/swaggertools/spec"
)

// render writes a failure to stderr: a validation report for validation
// failures, a framed message for everything else.
func (r *Router) render(err error) {
	var gated *ConversionGatedError
	if errors.As(err, &gated) {
		cliutil.Writef(r.stderr, r.stderr, "\n%s\n%s\n", gated.ValidationFailedError.Error(), SkipValidationHint)
		writeReport(r.stderr, r.stderr, gated.Results)
		return
	}
	var vfe *spec.ValidationFailedError
	if errors.As(err, &vfe) {
		writeReport(r.stderr, r.stderr, vfe.Results)
		return
	}
	cliutil.FrameError(r.stderr, r.stderr, err)
}

// writeReport writes the issues of each document with issues, grouped by
// severity, followed by the totals. Failed writes are reported to errw.
func writeReport(w, errw io.Writer, results *spec.Results) {
	title := cases.Title(language.English)
	for _, doc := range results.Reports() {
		cliutil.Writef(w, errw, "\n%s: %s\n", doc.Label, doc.Source)
		for _, group := range [][]spec.Issue{doc.Errors, doc.Warnings} {
			if len(group) == 0 {
				continue
			}
			cliutil.Writef(w, errw, "\n  %s (%d)\n", title.String(group[0].Severity.String()+"s"), len(group))
			for _, issue := range group {
				cliutil.Writef(w, errw, "    %s\n", issue.String())
			}
		}
	}
	cliutil.Writef(w, errw, "\n%d %s and %d %s\n\n",
		results.ErrorCount(), plural(results.ErrorCount(), "error"),
		results.WarningCount(), plural(results.WarningCount(), "warning"))
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
