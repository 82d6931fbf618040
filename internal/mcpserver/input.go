package mcpserver

import (
	"fmt"
	"os"

	"github.com/erraggy/oaslint/internal/options"
)

// specInput represents the two ways a document can be provided to a tool.
// Exactly one of File or Content must be set.
type specInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to an OpenAPI file on disk"`
	Content string `json:"content,omitempty" jsonschema:"Inline OpenAPI document content (JSON or YAML)"`
}

// load returns the document text, enforcing the inline size limit on both
// inputs.
func (s specInput) load() ([]byte, error) {
	if err := options.ValidateSingleInputSource([]string{"file", "content"}, s.File != "", s.Content != ""); err != nil {
		return nil, err
	}
	if s.Content != "" {
		if int64(len(s.Content)) > cfg.MaxInlineSize {
			return nil, fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; use file input instead, or set OASLINT_MAX_INLINE_SIZE to increase",
				len(s.Content), cfg.MaxInlineSize)
		}
		return []byte(s.Content), nil
	}

	info, err := os.Stat(s.File)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", s.File)
	}
	if info.Size() > cfg.MaxInlineSize {
		return nil, fmt.Errorf("file size %d bytes exceeds maximum %d bytes; set OASLINT_MAX_INLINE_SIZE to increase",
			info.Size(), cfg.MaxInlineSize)
	}
	data, err := os.ReadFile(s.File) //nolint:gosec // G304: reading a user-named spec is the tool's purpose
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}
	return data, nil
}
