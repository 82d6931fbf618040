package parser

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/erraggy/oaslint/locator"
	"github.com/erraggy/oaslint/oaserrors"
	"go.yaml.in/yaml/v4"
)

// ParseResult holds a decoded document together with the syntax tree needed
// to map paths back to source positions.
type ParseResult struct {
	// Document is the decoded root mapping
	Document map[string]any
	// Format is the detected source format
	Format SourceFormat
	// Text is the original source
	Text []byte
	// YAMLRoot is the node tree for YAML sources
	YAMLRoot *yaml.Node
	// JSONRoot is the syntax tree for JSON sources
	JSONRoot *locator.JSONNode
}

// Locator returns the source locator matching the result's format.
func (r *ParseResult) Locator() locator.Locator {
	if r == nil {
		return nil
	}
	if r.JSONRoot != nil {
		return locator.NewJSONTree(r.Text, r.JSONRoot)
	}
	if r.YAMLRoot != nil {
		return locator.NewYAML(r.Text, r.YAMLRoot)
	}
	return nil
}

// ParseText decodes JSON or YAML text. The root must be a mapping.
// Failures are returned as *oaserrors.ParseError.
func ParseText(text []byte) (*ParseResult, error) {
	switch format := DetectFormat(text); format {
	case SourceFormatJSON:
		return parseJSON(text)
	case SourceFormatYAML:
		return parseYAML(text)
	default:
		return nil, &oaserrors.ParseError{Message: "empty document"}
	}
}

func parseJSON(text []byte) (*ParseResult, error) {
	root, err := locator.ParseJSON(text)
	if err != nil {
		return nil, jsonParseError(text, err)
	}
	if root.Kind != locator.JSONObject {
		return nil, &oaserrors.ParseError{Format: string(SourceFormatJSON), Line: 1, Message: "document root must be an object"}
	}

	dec := json.NewDecoder(bytes.NewReader(text))
	dec.UseNumber()
	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, jsonParseError(text, err)
	}

	return &ParseResult{
		Document: Normalize(raw).(map[string]any),
		Format:   SourceFormatJSON,
		Text:     text,
		JSONRoot: root,
	}, nil
}

func jsonParseError(text []byte, err error) error {
	pe := &oaserrors.ParseError{Format: string(SourceFormatJSON), Message: "invalid JSON", Cause: err}
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		pe.Line = locator.OffsetToPosition(text, int(syntaxErr.Offset)).Line
	}
	return pe
}

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

func parseYAML(text []byte) (*ParseResult, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(text, &root); err != nil {
		return nil, yamlParseError(err)
	}

	var raw any
	if err := yaml.Unmarshal(text, &raw); err != nil {
		return nil, yamlParseError(err)
	}
	doc, ok := Normalize(raw).(map[string]any)
	if !ok {
		return nil, &oaserrors.ParseError{
			Format:  string(SourceFormatYAML),
			Message: fmt.Sprintf("document root must be a mapping, got %T", raw),
		}
	}

	return &ParseResult{
		Document: doc,
		Format:   SourceFormatYAML,
		Text:     text,
		YAMLRoot: &root,
	}, nil
}

func yamlParseError(err error) error {
	pe := &oaserrors.ParseError{Format: string(SourceFormatYAML), Message: "invalid YAML", Cause: err}
	if m := yamlLineRegex.FindStringSubmatch(err.Error()); m != nil {
		pe.Line, _ = strconv.Atoi(m[1])
	}
	return pe
}
