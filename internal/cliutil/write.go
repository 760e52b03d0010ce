// Package cliutil provides utilities for CLI operations.
package cliutil

import (
	"fmt"
	"io"
	"os"
)

// Writef writes formatted output to w. A failed write is reported to errw,
// or to os.Stderr when errw is nil.
func Writef(w, errw io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		if errw == nil {
			errw = os.Stderr
		}
		_, _ = fmt.Fprintf(errw, "write error: %v\n", err)
	}
}

// FrameError writes err to w surrounded by blank lines, the way every command
// reports a failure that has no report of its own. A failed write is
// reported to errw.
func FrameError(w, errw io.Writer, err error) {
	Writef(w, errw, "\n  error: %s\n\n", err.Error())
}
