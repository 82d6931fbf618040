// Package options provides shared utilities for option validation across packages.
package options

import (
	"fmt"
	"strings"

	"github.com/erraggy/oaslint/oaserrors"
)

// ValidateSingleInputSource ensures exactly one input source is specified.
// names labels each source for the error message; sources reports whether
// each one is set, in the same order.
func ValidateSingleInputSource(names []string, sources ...bool) error {
	sourceCount := 0
	for _, hasSource := range sources {
		if hasSource {
			sourceCount++
		}
	}
	if sourceCount == 1 {
		return nil
	}
	return &oaserrors.ConfigError{
		Option:  strings.Join(names, "|"),
		Message: fmt.Sprintf("exactly one of %s must be provided (got %d)", strings.Join(names, " or "), sourceCount),
	}
}
