// Package cache provides the insertion-order caches shared by the resolver,
// the shape validator, and the validator.
//
// A [Cache] holds at most MaxSize entries. When an insert pushes it past that
// capacity the oldest surviving entry is evicted. Reading an entry does not
// refresh its position; writing an existing key moves it to the newest
// position. A disabled cache, or one with MaxSize <= 0, never stores anything
// and every lookup misses.
//
// The three caches of a [Set] are kept apart so that eviction pressure in one
// concern never starves another:
//
//   - Results: whole validation results keyed by document fingerprint and options
//   - Refs: resolved reference targets keyed by fingerprint and pointer
//   - Fragments: compiled schema fragments and memoized format checks
//
// [Default] returns the process-wide set used when callers do not inject one.
// Tests should build their own with [NewSet].
//
// None of the types in this package lock. Callers that share a cache across
// goroutines must serialize access themselves.
package cache
