// Package oaserrors provides structured error types for oaslint.
//
// Import path: github.com/erraggy/oaslint/oaserrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As].
//
// # Error Types
//
//   - [ParseError]: JSON/YAML decoding failures in ValidateDocumentText
//   - [ReferenceError]: malformed pointers and missing reference targets
//   - [ConfigError]: invalid options
//
// # Sentinel Errors
//
//   - [ErrParse]: matches any [ParseError]
//   - [ErrReference]: matches any [ReferenceError]
//   - [ErrInvalidReference]: matches a [ReferenceError] of kind [ReferenceInvalid]
//   - [ErrReferenceNotFound]: matches a [ReferenceError] of kind [ReferenceNotFound]
//   - [ErrConfig]: matches any [ConfigError]
//
// # Usage
//
//	refs, err := resolver.New().ResolveAll(doc)
//	if err != nil {
//	    var refErr *oaserrors.ReferenceError
//	    if errors.As(err, &refErr) && refErr.Kind == oaserrors.ReferenceNotFound {
//	        fmt.Println("missing:", refErr.Ref)
//	    }
//	}
package oaserrors
