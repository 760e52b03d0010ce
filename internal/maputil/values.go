package maputil

import (
	"fmt"
	"strconv"
)

// String returns m[key] when it is a string, otherwise "".
func String(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

// Map returns m[key] when it is an object, otherwise nil.
func Map(m map[string]any, key string) map[string]any {
	v, _ := m[key].(map[string]any)
	return v
}

// Slice returns m[key] when it is an array, otherwise nil.
func Slice(m map[string]any, key string) []any {
	v, _ := m[key].([]any)
	return v
}

// Maps returns the object elements of the array at m[key]. Elements that are
// not objects are returned as nil so indexes line up with the source array.
func Maps(m map[string]any, key string) []map[string]any {
	raw := Slice(m, key)
	out := make([]map[string]any, len(raw))
	for i, v := range raw {
		out[i], _ = v.(map[string]any)
	}
	return out
}

// Strings returns the string elements of the array at m[key], skipping
// anything else.
func Strings(m map[string]any, key string) []string {
	raw := Slice(m, key)
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// Bool interprets m[key] as a boolean, accepting the strings "true" and "false".
func Bool(m map[string]any, key string) bool {
	switch v := m[key].(type) {
	case bool:
		return v
	case string:
		b, _ := strconv.ParseBool(v)
		return b
	default:
		return false
	}
}

// Number interprets m[key] as a number, accepting numeric strings.
func Number(m map[string]any, key string) (float64, bool) {
	switch v := m[key].(type) {
	case float64:
		return v, true
	case string:
		f, err := strconv.ParseFloat(v, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// Scalar renders a scalar value as a string; other values yield "".
func Scalar(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case nil:
		return ""
	default:
		return fmt.Sprint(t)
	}
}
