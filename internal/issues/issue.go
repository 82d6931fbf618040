// Package issues provides the issue type shared by the shape validator, the
// structural analyzers, and the orchestrator.
package issues

import (
	"fmt"

	"github.com/erraggy/oaslint/locator"
)

// Issue codes reported by oaslint.
const (
	// CodeInvalidReference marks a pointer that does not start with "#/".
	CodeInvalidReference = "INVALID_REFERENCE"
	// CodeReferenceNotFound marks a well-formed pointer whose target is missing.
	CodeReferenceNotFound = "REFERENCE_NOT_FOUND"
	// CodeAmbiguousPathTemplate marks route templates that differ only in placeholder names.
	CodeAmbiguousPathTemplate = "AMBIGUOUS_PATH_TEMPLATE"
	// CodeDuplicateParameter marks a repeated (name, in) pair within one parameter list.
	CodeDuplicateParameter = "DUPLICATE_PARAMETER"

	// CodeRequired marks a missing required field.
	CodeRequired = "REQUIRED"
	// CodeInvalidType marks a value of the wrong JSON type.
	CodeInvalidType = "INVALID_TYPE"
	// CodeInvalidValue marks a value outside its allowed set or range.
	CodeInvalidValue = "INVALID_VALUE"
	// CodeInvalidFormat marks a value that does not match its pattern or format.
	CodeInvalidFormat = "INVALID_FORMAT"
	// CodeUnsupportedVersion marks an openapi version this build does not accept.
	CodeUnsupportedVersion = "UNSUPPORTED_VERSION"
	// CodeMissingRateLimitHeaders marks a 2XX response without rate limit headers.
	CodeMissingRateLimitHeaders = "MISSING_RATE_LIMIT_HEADERS"
)

// Issue represents a single problem found in a document.
type Issue struct {
	// Path is the sequence of keys and indexes leading to the problem
	Path []string `json:"path"`
	// Message is a human-readable description of the issue
	Message string `json:"message"`
	// Code is the machine-readable issue code
	Code string `json:"code"`
	// Range is the source span of the offending value. Nil when the location is
	// unknown, which includes every issue about a missing field.
	Range *locator.Range `json:"range,omitempty"`
}

// New creates an issue. The path is copied.
func New(path []string, code, message string) Issue {
	return Issue{Path: clonePath(path), Code: code, Message: message}
}

// Newf creates an issue with a formatted message.
func Newf(path []string, code, format string, args ...any) Issue {
	return New(path, code, fmt.Sprintf(format, args...))
}

// PathString returns the path in dotted form, with indexes in brackets
// (e.g. "paths./pets.get.parameters[1]").
func (i Issue) PathString() string {
	return FormatPath(i.Path...)
}

// String returns a formatted string representation of the issue.
func (i Issue) String() string {
	path := i.PathString()
	if path == "" {
		path = "(root)"
	}
	if i.Range != nil {
		return fmt.Sprintf("%s (line %d, col %d): %s [%s]", path, i.Range.Start.Line, i.Range.Start.Column, i.Message, i.Code)
	}
	return fmt.Sprintf("%s: %s [%s]", path, i.Message, i.Code)
}

// Location returns "line:column" when the range is known, otherwise the path.
func (i Issue) Location() string {
	if i.Range == nil {
		return i.PathString()
	}
	return i.Range.Start.String()
}

// HasLocation returns true if this issue has source location information.
func (i Issue) HasLocation() bool {
	return i.Range != nil
}

// Clone returns a deep copy of the issue.
func (i Issue) Clone() Issue {
	out := i
	out.Path = clonePath(i.Path)
	if i.Range != nil {
		r := *i.Range
		out.Range = &r
	}
	return out
}

// CloneAll deep-copies a slice of issues. A nil slice stays nil.
func CloneAll(in []Issue) []Issue {
	if in == nil {
		return nil
	}
	out := make([]Issue, len(in))
	for idx, issue := range in {
		out[idx] = issue.Clone()
	}
	return out
}

func clonePath(path []string) []string {
	if path == nil {
		return []string{}
	}
	return append(make([]string, 0, len(path)), path...)
}
