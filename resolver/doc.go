// Package resolver resolves internal "#/..." references in a decoded document.
//
// Resolution runs in breadth-first waves. Wave 0 holds every pointer found by
// walking the document; each later wave holds pointers discovered inside the
// targets of the previous wave that had not been seen before. A visited set
// keyed by pointer string means every distinct pointer is looked up at most
// once per pass, so cycles (A -> B -> A) terminate and are legal.
//
// Before any lookup in a wave, every pointer in the wave is checked for
// syntax. A pointer that does not start with "#/", or that carries a bad
// escape, aborts the pass with an [oaserrors.ReferenceError] of kind
// [oaserrors.ReferenceInvalid]. Missing targets do not abort; they are
// accumulated in [Resolution.NotFound].
//
// Resolved targets are stored in a reference cache keyed by the document
// fingerprint and the pointer, so a later pass over an unchanged document
// skips the segment walk.
package resolver
