// Package maputil provides helpers for maps and for reading untyped
// JSON/YAML documents.
package maputil

import (
	"cmp"
	"slices"
)

// SortedKeys returns the keys of m in ascending order. A nil map yields an
// empty, non-nil slice.
func SortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
