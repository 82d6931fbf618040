package pathutil

import (
	"errors"
	"strconv"
	"strings"
)

// RefPrefix starts every internal JSON Pointer reference.
const RefPrefix = "#/"

// Common OAS 3.x reference prefixes.
const (
	RefPrefixSchemas     = "#/components/schemas/"
	RefPrefixParameters3 = "#/components/parameters/"
	RefPrefixResponses3  = "#/components/responses/"
)

// ErrInvalidEscape reports a '~' not followed by '0' or '1'.
var ErrInvalidEscape = errors.New("invalid escape sequence")

// SchemaRef builds "#/components/schemas/{name}".
func SchemaRef(name string) string {
	return RefPrefixSchemas + EscapeSegment(name)
}

// ParameterRef builds "#/components/parameters/{name}".
func ParameterRef(name string) string {
	return RefPrefixParameters3 + EscapeSegment(name)
}

// EscapeSegment escapes a key for use in a JSON Pointer: "~" becomes "~0" and
// "/" becomes "~1".
func EscapeSegment(s string) string {
	if !strings.ContainsAny(s, "~/") {
		return s
	}
	s = strings.ReplaceAll(s, "~", "~0")
	return strings.ReplaceAll(s, "/", "~1")
}

// UnescapeSegment reverses EscapeSegment. "~1" is decoded before "~0" so that
// "~01" yields "~1".
func UnescapeSegment(s string) (string, error) {
	if !strings.Contains(s, "~") {
		return s, nil
	}
	for i := 0; i < len(s); i++ {
		if s[i] == '~' && (i+1 >= len(s) || (s[i+1] != '0' && s[i+1] != '1')) {
			return "", ErrInvalidEscape
		}
	}
	s = strings.ReplaceAll(s, "~1", "/")
	return strings.ReplaceAll(s, "~0", "~"), nil
}

// Pointer builds "#/seg1/seg2" from raw segments. No segments yield "#".
func Pointer(segments []string) string {
	var b strings.Builder
	b.WriteString("#")
	for _, seg := range segments {
		b.WriteByte('/')
		b.WriteString(EscapeSegment(seg))
	}
	return b.String()
}

// ArrayIndex parses a pointer or path segment as a sequence index: a
// non-negative decimal without sign or leading zeros.
func ArrayIndex(seg string) (int, bool) {
	if seg == "" || (len(seg) > 1 && seg[0] == '0') {
		return 0, false
	}
	for i := 0; i < len(seg); i++ {
		if seg[i] < '0' || seg[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(seg)
	return n, err == nil
}
