package loader

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"
	"time"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/swaggertools/oaserrors"
)

// Document is a parsed Swagger document: a mapping from string keys to
// JSON-compatible values (map[string]any, []any, string, float64, bool, nil).
type Document = map[string]any

// SourceFormat represents the format a source is parsed as
type SourceFormat string

const (
	// SourceFormatYAML indicates the source is parsed as YAML
	SourceFormatYAML SourceFormat = "yaml"
	// SourceFormatJSON indicates the source is parsed as JSON
	SourceFormatJSON SourceFormat = "json"
)

// FormatFor returns the format a source reference is parsed as.
// References ending in .yaml or .yml are YAML; everything else, including
// references with no extension, is JSON. For URLs only the path is inspected.
func FormatFor(ref string) SourceFormat {
	p := ref
	if isURL(ref) {
		if u, err := url.Parse(ref); err == nil {
			p = u.Path
		}
	}
	switch strings.ToLower(path.Ext(p)) {
	case ".yaml", ".yml":
		return SourceFormatYAML
	default:
		return SourceFormatJSON
	}
}

// Parse parses raw content read from ref into a Document.
//
// A nil Document with a nil error means the content held no document
// (for example an empty YAML file or a JSON null).
func Parse(data []byte, ref string) (Document, error) {
	if data == nil {
		return nil, nil
	}
	switch FormatFor(ref) {
	case SourceFormatYAML:
		return parseYAML(data, ref)
	default:
		return parseJSON(data, ref)
	}
}

// parseJSON strictly parses JSON content
func parseJSON(data []byte, ref string) (Document, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		perr := &oaserrors.ParseError{Path: ref, Format: string(SourceFormatJSON), Cause: err}
		var syntaxErr *json.SyntaxError
		var typeErr *json.UnmarshalTypeError
		switch {
		case errors.As(err, &syntaxErr):
			perr.Line, perr.Column = lineColumn(data, syntaxErr.Offset)
		case errors.As(err, &typeErr):
			perr.Line, perr.Column = lineColumn(data, typeErr.Offset)
		}
		return nil, perr
	}
	return asDocument(raw, ref, SourceFormatJSON)
}

// parseYAML parses YAML content and normalizes it to JSON-compatible values
func parseYAML(data []byte, ref string) (Document, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &oaserrors.ParseError{Path: ref, Format: string(SourceFormatYAML), Cause: err}
	}
	return asDocument(normalize(raw), ref, SourceFormatYAML)
}

// asDocument checks that a parsed root is a mapping
func asDocument(raw any, ref string, format SourceFormat) (Document, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case map[string]any:
		return v, nil
	default:
		return nil, &oaserrors.ParseError{
			Path:    ref,
			Format:  string(format),
			Message: fmt.Sprintf("document root must be an object, got %s", typeName(raw)),
		}
	}
}

// normalize converts YAML-decoded values to the shapes encoding/json produces,
// so JSON and YAML sources are indistinguishable downstream.
func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, val := range t {
			t[k] = normalize(val)
		}
		return t
	case map[any]any:
		m := make(map[string]any, len(t))
		for k, val := range t {
			m[fmt.Sprint(k)] = normalize(val)
		}
		return m
	case []any:
		for i, val := range t {
			t[i] = normalize(val)
		}
		return t
	case int:
		return float64(t)
	case int64:
		return float64(t)
	case uint64:
		return float64(t)
	case float32:
		return float64(t)
	case time.Time:
		return t.Format(time.RFC3339)
	default:
		return v
	}
}

// lineColumn converts a byte offset into 1-based line and column numbers
func lineColumn(data []byte, offset int64) (int, int) {
	if offset <= 0 || int(offset) > len(data) {
		return 0, 0
	}
	prefix := data[:offset]
	line := bytes.Count(prefix, []byte("\n")) + 1
	col := int(offset) - 1 - bytes.LastIndexByte(prefix, '\n')
	return line, col
}

// typeName describes a JSON value type for error messages
func typeName(v any) string {
	switch v.(type) {
	case []any:
		return "array"
	case string:
		return "string"
	case float64:
		return "number"
	case bool:
		return "boolean"
	default:
		return fmt.Sprintf("%T", v)
	}
}
