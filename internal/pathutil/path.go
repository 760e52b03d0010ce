package pathutil

import (
	"fmt"
	"regexp"
	"strings"
)

// PathParamRegex matches path template parameters like {paramName}.
// It captures the parameter name inside the braces.
var PathParamRegex = regexp.MustCompile(`\{([^}]+)\}`)

// TemplateParams returns the parameter names of a path template in the order
// they appear. Duplicates are kept.
func TemplateParams(pathPattern string) []string {
	matches := PathParamRegex.FindAllStringSubmatch(pathPattern, -1)
	names := make([]string, 0, len(matches))
	for _, match := range matches {
		names = append(names, match[1])
	}
	return names
}

// ValidateTemplate reports malformed path templates: empty or nested braces,
// unbalanced braces, and repeated parameter names.
func ValidateTemplate(pathPattern string) error {
	if strings.Contains(pathPattern, "{}") {
		return fmt.Errorf("empty parameter name in path template")
	}

	depth := 0
	for i, ch := range pathPattern {
		switch ch {
		case '{':
			depth++
			if depth > 1 {
				return fmt.Errorf("nested braces are not allowed at position %d", i)
			}
		case '}':
			depth--
			if depth < 0 {
				return fmt.Errorf("unexpected closing brace at position %d", i)
			}
		}
	}
	if depth != 0 {
		return fmt.Errorf("unclosed brace in path template")
	}

	seen := make(map[string]bool)
	for _, name := range TemplateParams(pathPattern) {
		if seen[name] {
			return fmt.Errorf("duplicate parameter name '%s' in path template", name)
		}
		seen[name] = true
	}
	return nil
}
