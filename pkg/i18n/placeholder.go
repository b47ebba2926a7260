package i18n

import (
	"fmt"
	"maps"
	"regexp"
)

// M is a map of placeholder names to values.
type M map[string]any

var placeholderPattern = regexp.MustCompile(`\{\{(\w+)\}\}`)

// ReplacePlaceholders replaces placeholders in the template string with values
// from the provided map. Placeholders use the format {{name}}.
// If a placeholder is not found in the map, it remains unchanged.
// Substituted values are not scanned again for placeholders.
// Names match \w+. Values are rendered with fmt.Sprint, except nil which
// renders as "null".
//
// Example:
//
//	template: "Hello, {{name}}! You have {{count}} messages."
//	placeholders: M{"name": "John", "count": 5}
//	returns: "Hello, John! You have 5 messages."
func ReplacePlaceholders(template string, placeholders M) string {
	if len(placeholders) < 1 {
		return template
	}

	return placeholderPattern.ReplaceAllStringFunc(template, func(match string) string {
		name := match[2 : len(match)-2]
		value, ok := placeholders[name]
		if !ok {
			return match
		}
		if value == nil {
			return "null"
		}
		return fmt.Sprint(value)
	})
}

func replacePlaceholdersWithMerge(template string, placeholders ...M) string {
	if len(placeholders) == 1 {
		return ReplacePlaceholders(template, placeholders[0])
	}

	merged := make(M)
	for _, p := range placeholders {
		maps.Copy(merged, p)
	}

	return ReplacePlaceholders(template, merged)
}
