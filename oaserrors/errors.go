package oaserrors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrParse indicates the source text could not be decoded into a document.
	ErrParse = errors.New("parse error")

	// ErrReference indicates a reference resolution failure of any kind.
	ErrReference = errors.New("reference error")

	// ErrInvalidReference indicates a pointer that is not of the form "#/...".
	ErrInvalidReference = errors.New("invalid reference")

	// ErrReferenceNotFound indicates a well-formed pointer whose target is missing.
	ErrReferenceNotFound = errors.New("reference not found")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// ParseError represents a failure to decode JSON or YAML source text.
type ParseError struct {
	// Format is "json" or "yaml" when known
	Format string
	// Line is the line number where the error occurred (0 if unknown)
	Line int
	// Message describes the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Format != "" {
		msg += " (" + e.Format + ")"
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" at line %d", e.Line)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// ReferenceKind classifies a reference failure.
type ReferenceKind int

const (
	// ReferenceInvalid is a malformed pointer. Resolution stops at the first one.
	ReferenceInvalid ReferenceKind = iota
	// ReferenceNotFound is a well-formed pointer with no target in the document.
	ReferenceNotFound
)

// Code returns the machine-readable issue code for the kind.
func (k ReferenceKind) Code() string {
	switch k {
	case ReferenceInvalid:
		return "INVALID_REFERENCE"
	case ReferenceNotFound:
		return "REFERENCE_NOT_FOUND"
	default:
		return "UNKNOWN"
	}
}

// ReferenceError represents a failure to resolve a $ref.
type ReferenceError struct {
	// Ref is the exact pointer string that failed
	Ref string
	// Kind tells malformed pointers apart from missing targets
	Kind ReferenceKind
	// Segment is the first segment that could not be found (ReferenceNotFound only)
	Segment string
	// Path is the document path of the mapping that holds the $ref, if known
	Path []string
	// Message provides additional context about the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ReferenceError) Error() string {
	msg := "reference error"
	switch e.Kind {
	case ReferenceInvalid:
		msg = "invalid reference"
	case ReferenceNotFound:
		msg = "reference not found"
	}
	if e.Ref != "" {
		msg += ": " + e.Ref
	}
	if len(e.Path) > 0 {
		msg += " (at " + strings.Join(e.Path, ".") + ")"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Code returns the issue code for this error.
func (e *ReferenceError) Code() string {
	return e.Kind.Code()
}

// Unwrap returns the underlying cause for error chaining.
func (e *ReferenceError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
// Matches ErrReference always, and ErrInvalidReference or ErrReferenceNotFound
// according to Kind.
func (e *ReferenceError) Is(target error) bool {
	switch target {
	case ErrReference:
		return true
	case ErrInvalidReference:
		return e.Kind == ReferenceInvalid
	case ErrReferenceNotFound:
		return e.Kind == ReferenceNotFound
	}
	return false
}

// ConfigError represents an invalid configuration or input.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
