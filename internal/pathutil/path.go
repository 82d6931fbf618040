package pathutil

import "regexp"

// PathParamRegex matches path template parameters like {paramName}.
// It captures the parameter name inside the braces.
var PathParamRegex = regexp.MustCompile(`\{([^}]+)\}`)

// PlaceholderSentinel replaces every placeholder in a normalized template.
const PlaceholderSentinel = "{#}"

// NormalizeTemplate replaces every {name} placeholder in template with
// PlaceholderSentinel. Literal text, including empty braces, is unchanged.
func NormalizeTemplate(template string) string {
	return PathParamRegex.ReplaceAllLiteralString(template, PlaceholderSentinel)
}

// TemplateParams returns the placeholder names of template in order.
func TemplateParams(template string) []string {
	matches := PathParamRegex.FindAllStringSubmatch(template, -1)
	if len(matches) == 0 {
		return nil
	}
	names := make([]string, len(matches))
	for i, m := range matches {
		names[i] = m[1]
	}
	return names
}
