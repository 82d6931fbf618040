// Package shape is the default per-field validator for OpenAPI documents.
//
// Schemas are trees of tagged-union nodes: [String], [Number], [Integer],
// [Boolean], [Array], [Object], and [Any]. Each variant carries only the
// constraints that are legal for its kind, and [Check] rejects illegal
// combinations such as a negative MinLength or a minimum above its maximum.
//
// [Compile] checks a tree and compiles its patterns, sharing compiled
// regular expressions through the fragments cache. Numeric format checks
// (int32, int64, float, double) are memoized in the same cache.
//
// [OpenAPI] builds the tree for OpenAPI 3.x documents, and [Default] runs it
// behind the [Validator] interface. Issues carry only a path, a message, and
// a code; callers attach source locations.
package shape
