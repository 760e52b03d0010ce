// Package oaserrors provides structured error types for swagger-tools.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between different categories
// of errors and implement appropriate recovery strategies.
//
// # Error Categories
//
//   - FetchError: a document could not be read from disk or the network
//   - ParseError: JSON/YAML parsing failures
//   - ClassifyError: the first document declares no recognizable Swagger version
//   - UnsupportedVersionError: no capability is registered for a version
//   - ConversionError: Swagger 1.2 to 2.0 conversion failures
//   - UnknownCommandError: help was requested for a command that does not exist
//   - ConfigError: Invalid configuration or input options
//
// # Usage with errors.Is
//
//	set, err := loader.Acquire(ctx, []string{"api-docs.json", "pets.json"})
//	if err != nil {
//	    var fetchErr *oaserrors.FetchError
//	    if errors.As(err, &fetchErr) {
//	        log.Printf("could not read %s", fetchErr.Source)
//	    }
//	}
package oaserrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrFetch indicates a document could not be retrieved.
	ErrFetch = errors.New("fetch error")

	// ErrParse indicates a parsing failure occurred.
	ErrParse = errors.New("parse error")

	// ErrClassify indicates the Swagger version of a document set could not be identified.
	ErrClassify = errors.New("cannot identify schema version")

	// ErrUnsupportedVersion indicates no capability exists for a Swagger version.
	ErrUnsupportedVersion = errors.New("unsupported version")

	// ErrValidation indicates a document set failed validation.
	ErrValidation = errors.New("validation error")

	// ErrConversion indicates a version conversion failure.
	ErrConversion = errors.New("conversion error")

	// ErrUnknownCommand indicates an unregistered command name.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// FetchError represents a failure to read a document from its source.
// Network transport failures and filesystem failures both surface as FetchError.
type FetchError struct {
	// Source is the path or URL that was being read
	Source string
	// IsRemote is true when Source is an http(s) URL
	IsRemote bool
	// Cause is the underlying error
	Cause error
}

// Error returns a human-readable error message.
func (e *FetchError) Error() string {
	msg := "unable to read"
	if e.IsRemote {
		msg = "unable to fetch"
	}
	if e.Source != "" {
		msg += " " + e.Source
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *FetchError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *FetchError) Is(target error) bool {
	return target == ErrFetch
}

// ParseError represents a failure to parse a JSON or YAML document.
type ParseError struct {
	// Path is the file path or URL the content came from
	Path string
	// Format is "json" or "yaml"
	Format string
	// Line is the line number where the error occurred (0 if unknown)
	Line int
	// Column is the column number where the error occurred (0 if unknown)
	Column int
	// Message describes the parsing failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Format != "" {
		msg = e.Format + " " + msg
	}
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" at line %d", e.Line)
		if e.Column > 0 {
			msg += fmt.Sprintf(", column %d", e.Column)
		}
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// ClassifyError reports that the first document of a batch carries neither a
// "swagger" nor a "swaggerVersion" field.
type ClassifyError struct {
	// Source is the path or URL of the offending document (empty when no document was supplied)
	Source string
}

// Error returns a human-readable error message.
func (e *ClassifyError) Error() string {
	if e.Source == "" {
		return "cannot identify schema version: no document was supplied"
	}
	return "cannot identify schema version of document at " + e.Source
}

// Is reports whether target matches this error type.
func (e *ClassifyError) Is(target error) bool {
	return target == ErrClassify
}

// UnsupportedVersionError reports a Swagger version with no registered capability.
type UnsupportedVersionError struct {
	// Version is the requested version string
	Version string
	// Supported lists the versions that are available
	Supported []string
}

// Error returns a human-readable error message.
func (e *UnsupportedVersionError) Error() string {
	msg := fmt.Sprintf("unsupported Swagger version: %s", e.Version)
	if len(e.Supported) > 0 {
		msg += fmt.Sprintf(" (supported: %v)", e.Supported)
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *UnsupportedVersionError) Is(target error) bool {
	return target == ErrUnsupportedVersion
}

// ConversionError represents a failure during Swagger version conversion.
type ConversionError struct {
	// SourceVersion is the source Swagger version (e.g., "1.2")
	SourceVersion string
	// TargetVersion is the target Swagger version
	TargetVersion string
	// Message describes the conversion failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConversionError) Error() string {
	msg := "conversion error"
	if e.SourceVersion != "" && e.TargetVersion != "" {
		msg += fmt.Sprintf(" (%s -> %s)", e.SourceVersion, e.TargetVersion)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConversionError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConversionError) Is(target error) bool {
	return target == ErrConversion
}

// UnknownCommandError reports a help request for an unregistered command.
type UnknownCommandError struct {
	// Tool is the CLI name
	Tool string
	// Command is the requested command name
	Command string
}

// Error returns a human-readable error message.
func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("%s does not support the %s command", e.Tool, e.Command)
}

// Is reports whether target matches this error type.
func (e *UnknownCommandError) Is(target error) bool {
	return target == ErrUnknownCommand
}

// ConfigError represents an invalid configuration or input.
// This includes invalid options, missing required inputs, and conflicting settings.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
