package issues

import (
	"strings"
	"sync"
)

var stringBuilderPool = sync.Pool{
	New: func() any {
		return new(strings.Builder)
	},
}

// getStringBuilder retrieves a builder from the pool and resets it.
func getStringBuilder() *strings.Builder {
	sb := stringBuilderPool.Get().(*strings.Builder)
	sb.Reset()
	return sb
}

// putStringBuilder returns a builder to the pool.
func putStringBuilder(sb *strings.Builder) {
	if sb == nil {
		return
	}
	stringBuilderPool.Put(sb)
}

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

// FormatPointer formats path segments as a JSON pointer fragment.
// Segments are escaped per RFC 6901, so "/pets/{id}" becomes "~1pets~1{id}".
func FormatPointer(segments ...string) string {
	if len(segments) == 0 {
		return "#/"
	}

	sb := getStringBuilder()
	sb.WriteByte('#')
	for _, seg := range segments {
		sb.WriteByte('/')
		sb.WriteString(pointerEscaper.Replace(seg))
	}
	result := sb.String()
	putStringBuilder(sb)
	return result
}

// ParsePointer splits a JSON pointer (with or without the leading "#") into
// unescaped segments.
func ParsePointer(pointer string) []string {
	pointer = strings.TrimPrefix(pointer, "#")
	pointer = strings.TrimPrefix(pointer, "/")
	if pointer == "" {
		return nil
	}
	parts := strings.Split(pointer, "/")
	for i, p := range parts {
		p = strings.ReplaceAll(p, "~1", "/")
		parts[i] = strings.ReplaceAll(p, "~0", "~")
	}
	return parts
}
