// Package analyzer implements the structural checks that look at the shape of
// a whole document rather than a single field.
//
// [FindAmbiguousGroups] groups route templates that differ only in their
// placeholder names, such as /pets/{id} and /pets/{petId}. A literal segment
// colliding with a placeholder (/pets/mine vs /pets/{id}) is a routing
// concern and is not reported.
//
// [ParameterChecker] reports parameters that share a (name, in) pair within
// one list. Path-item and operation lists are checked independently, so an
// operation parameter that shadows a path-item parameter is an override and
// never a duplicate.
package analyzer
