// Package parser decodes OpenAPI documents from JSON or YAML text into the
// generic document model used by the rest of oaslint.
//
// A document is a map[string]any tree whose nodes are map[string]any, []any,
// and scalars. [ParseText] detects the format, decodes the text, and keeps the
// syntax tree so issue paths can be mapped back to source positions:
//
//	result, err := parser.ParseText(data)
//	if err != nil {
//		return err
//	}
//	loc := result.Locator()
//	rng, ok := loc.Locate([]string{"info", "version"})
//
// The package also defines the [Logger] interface shared by every oaslint
// package, with [NopLogger] as the default and [NewSlogAdapter] for log/slog.
package parser
