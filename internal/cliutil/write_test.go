package cliutil

import (
	"bytes"
	"errors"
	"testing"
)

func TestWritef(t *testing.T) {
	var buf bytes.Buffer
	Writef(&buf, nil, "Hello, %s!", "World")
	if got := buf.String(); got != "Hello, World!" {
		t.Errorf("Writef() = %q, want %q", got, "Hello, World!")
	}
}

func TestWritef_MultipleArgs(t *testing.T) {
	var buf bytes.Buffer
	Writef(&buf, nil, "%s: %d documents, %v valid", "Status", 3, true)
	want := "Status: 3 documents, true valid"
	if got := buf.String(); got != want {
		t.Errorf("Writef() = %q, want %q", got, want)
	}
}

// errorWriter is a writer that always returns an error
type errorWriter struct{}

func (e errorWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("simulated write error")
}

func TestWritef_WriteErrorGoesToErrWriter(t *testing.T) {
	var errw bytes.Buffer
	Writef(errorWriter{}, &errw, "This will fail")
	want := "write error: simulated write error\n"
	if got := errw.String(); got != want {
		t.Errorf("error writer got %q, want %q", got, want)
	}
}

func TestWritef_WriteErrorWithoutErrWriter(t *testing.T) {
	// Falls back to os.Stderr; must not panic.
	Writef(errorWriter{}, nil, "This will fail")
}

func TestFrameError(t *testing.T) {
	var buf bytes.Buffer
	FrameError(&buf, nil, errors.New("cannot identify schema version of document at x.json"))
	want := "\n  error: cannot identify schema version of document at x.json\n\n"
	if got := buf.String(); got != want {
		t.Errorf("FrameError() = %q, want %q", got, want)
	}
}

func TestFrameError_PercentInMessage(t *testing.T) {
	var buf bytes.Buffer
	FrameError(&buf, nil, errors.New("100% broken"))
	want := "\n  error: 100% broken\n\n"
	if got := buf.String(); got != want {
		t.Errorf("FrameError() = %q, want %q", got, want)
	}
}

func TestFrameError_WriteErrorGoesToErrWriter(t *testing.T) {
	var errw bytes.Buffer
	FrameError(errorWriter{}, &errw, errors.New("boom"))
	if got := errw.String(); got != "write error: simulated write error\n" {
		t.Errorf("error writer got %q", got)
	}
}
