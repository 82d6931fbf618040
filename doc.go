// Package oaslint validates OpenAPI 3.x documents and reports every problem
// with a field path and, when the document came from text, a line and column.
//
// # Overview
//
// Validation runs in stages over a decoded document (nested map[string]any,
// []any and scalars):
//
//   - shape: per-field checks against a schema tree of the OpenAPI object model
//   - analyzer: strict-mode checks for ambiguous path templates and duplicate
//     parameters
//   - resolver: verification of every internal "#/..." reference
//
// The validator package ties the stages together and is the usual entry point.
// Supporting packages:
//
//   - parser: decode JSON or YAML text and detect the openapi version
//   - locator: map field paths back to line/column ranges in the source text
//   - cache: bounded insertion-order caches shared by the stages
//   - oaserrors: structured error types matched with errors.Is and errors.As
//
// # Quick Start
//
// Validate document text:
//
//	import "github.com/erraggy/oaslint/validator"
//
//	result, err := validator.ValidateDocumentText(data, validator.WithStrict(true))
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, issue := range result.Issues {
//		fmt.Println(issue.Location(), issue)
//	}
//
// Validate an already decoded document:
//
//	result, err := validator.ValidateDocument(doc)
//
// # Command Line
//
// The oaslint command wraps the validator:
//
//	oaslint validate --strict openapi.yaml
//	oaslint validate --format json -o report.json openapi.json
//	oaslint mcp
//
// The mcp command serves the validate, cache_stats and cache_reset tools to
// MCP clients over stdio.
package oaslint
