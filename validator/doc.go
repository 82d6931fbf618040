// Package validator validates OpenAPI 3.x documents.
//
// A validation call runs three stages in order and reports their issues in
// that order:
//
//  1. Shape validation: per-field types, required fields and formats, done by
//     a [shape.Validator] (the default is [shape.Default]).
//  2. Structural checks, only with [WithStrict]: ambiguous path templates and
//     duplicate parameters (see package analyzer).
//  3. Reference verification: every internal "#/..." pointer is resolved.
//     A malformed pointer produces a single INVALID_REFERENCE issue and stops
//     resolution; otherwise every missing target is reported as
//     REFERENCE_NOT_FOUND at the path of the mapping holding the $ref.
//
// # Quick Start
//
//	result, err := validator.ValidateDocumentText(data, validator.WithStrict(true))
//	if err != nil {
//		log.Fatal(err) // parse failure
//	}
//	for _, issue := range result.Issues {
//		fmt.Println(issue)
//	}
//
// [ValidateDocumentText] accepts JSON or YAML and attaches a source range to
// every issue whose path exists in the text. Issues for missing fields have
// no range.
//
// # Caching
//
// Results, resolved reference targets and compiled schema fragments are kept
// in process-wide caches (package cache). Cached results are returned as
// copies. Use [ConfigureCache] or [WithCache] to resize or disable them, and
// [ResetCache] to drop all entries. The caches are not safe for concurrent
// use; callers validating from several goroutines must serialize calls or
// give each goroutine its own set via [WithCacheSet].
package validator
