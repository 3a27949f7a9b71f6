package messages

import (
	"fmt"
	"regexp"
	"strings"
)

// M holds named parameters for placeholder substitution.
type M map[string]any

var placeholderPattern = regexp.MustCompile(`\{\{(\w+)\}\}`)

// placeholderNames extracts the distinct placeholder names from a template
// in order of first appearance.
func placeholderNames(template string) []string {
	matches := placeholderPattern.FindAllStringSubmatch(template, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(matches))
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		if _, dup := seen[m[1]]; dup {
			continue
		}
		seen[m[1]] = struct{}{}
		names = append(names, m[1])
	}
	return names
}

// replacePlaceholders substitutes every {{name}} placeholder with the
// corresponding entry from params. A placeholder with no matching parameter
// is a MissingParameterError; the function never returns a string with
// unresolved placeholders.
func replacePlaceholders(template string, params M) (string, error) {
	names := placeholderNames(template)
	if len(names) == 0 {
		return template, nil
	}

	var missing []string
	result := template
	for _, name := range names {
		value, ok := params[name]
		if !ok {
			missing = append(missing, name)
			continue
		}
		result = strings.ReplaceAll(result, "{{"+name+"}}", fmt.Sprintf("%v", value))
	}

	if len(missing) > 0 {
		return "", &MissingParameterError{Names: missing}
	}

	return result, nil
}
