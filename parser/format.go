package parser

import (
	"bytes"
	"path/filepath"
	"strings"
)

// SourceFormat is the serialization format of a document.
type SourceFormat string

const (
	// SourceFormatYAML indicates YAML text
	SourceFormatYAML SourceFormat = "yaml"
	// SourceFormatJSON indicates JSON text
	SourceFormatJSON SourceFormat = "json"
	// SourceFormatUnknown indicates the format could not be determined
	SourceFormatUnknown SourceFormat = "unknown"
)

// DetectFormat inspects content. JSON documents start with '{' or '[' after
// leading whitespace; anything else non-empty is treated as YAML.
func DetectFormat(data []byte) SourceFormat {
	trimmed := bytes.TrimLeft(data, " \t\n\r")
	if len(trimmed) == 0 {
		return SourceFormatUnknown
	}
	if trimmed[0] == '{' || trimmed[0] == '[' {
		return SourceFormatJSON
	}
	return SourceFormatYAML
}

// FormatFromPath detects the format from a file extension.
func FormatFromPath(path string) SourceFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return SourceFormatJSON
	case ".yaml", ".yml":
		return SourceFormatYAML
	default:
		return SourceFormatUnknown
	}
}
