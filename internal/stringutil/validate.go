// Package stringutil holds string checks shared by the shape rules.
package stringutil

import (
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// IsValidEmail checks if s is a valid email address.
func IsValidEmail(s string) bool {
	return emailRegex.MatchString(s)
}

// IsExtensionKey reports whether key is a specification extension ("x-" prefix).
// Extension keys are exempt from structural checks.
func IsExtensionKey(key string) bool {
	return strings.HasPrefix(key, "x-")
}
