package pathutil

import "strings"

// RefPrefixDefinitions prefixes every Swagger 2.0 definition reference.
const RefPrefixDefinitions = "#/definitions/"

// DefinitionRef builds "#/definitions/{name}".
func DefinitionRef(name string) string {
	return RefPrefixDefinitions + name
}

// LocalRefTarget splits a local reference such as "#/definitions/Pet" into
// its top-level section and the name below it. Only references that point
// exactly one level into a section are recognized.
func LocalRefTarget(ref string) (section, name string, ok bool) {
	rest, found := strings.CutPrefix(ref, "#/")
	if !found {
		return "", "", false
	}
	section, name, found = strings.Cut(rest, "/")
	if !found || section == "" || name == "" || strings.Contains(name, "/") {
		return "", "", false
	}
	return section, unescapePointer(name), true
}

// unescapePointer reverses JSON pointer escaping of a single segment
func unescapePointer(s string) string {
	if !strings.Contains(s, "~") {
		return s
	}
	return strings.ReplaceAll(strings.ReplaceAll(s, "~1", "/"), "~0", "~")
}
