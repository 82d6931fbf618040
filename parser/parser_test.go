package parser

import (
	"errors"
	"testing"

	"github.com/erraggy/oaslint/oaserrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const petsYAML = `openapi: 3.0.3
info:
  title: Pets
  version: "1.0"
paths:
  /pets:
    get:
      responses:
        200:
          description: ok
`

func TestParseTextYAML(t *testing.T) {
	result, err := ParseText([]byte(petsYAML))
	require.NoError(t, err)

	assert.Equal(t, SourceFormatYAML, result.Format)
	require.NotNil(t, result.YAMLRoot)
	assert.Nil(t, result.JSONRoot)
	assert.Equal(t, "3.0.3", result.Document["openapi"])

	paths := result.Document["paths"].(map[string]any)
	responses := paths["/pets"].(map[string]any)["get"].(map[string]any)["responses"].(map[string]any)
	assert.Contains(t, responses, "200", "integer keys are stringified")

	rng, ok := result.Locator().Locate([]string{"info", "title"})
	require.True(t, ok)
	assert.Equal(t, 3, rng.Start.Line)
	assert.Equal(t, 10, rng.Start.Column)
}

func TestParseTextJSON(t *testing.T) {
	text := `{"openapi": "3.1.0", "info": {"title": "T", "version": 2}, "paths": {}, "x-ratio": 1.5}`
	result, err := ParseText([]byte(text))
	require.NoError(t, err)

	assert.Equal(t, SourceFormatJSON, result.Format)
	require.NotNil(t, result.JSONRoot)
	assert.Nil(t, result.YAMLRoot)

	info := result.Document["info"].(map[string]any)
	assert.Equal(t, 2, info["version"])
	assert.Equal(t, 1.5, result.Document["x-ratio"])

	rng, ok := result.Locator().Locate([]string{"info", "version"})
	require.True(t, ok)
	assert.Equal(t, 1, rng.Start.Line)
	assert.Equal(t, 56, rng.Start.Column)
}

func TestParseTextErrors(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		format   string
		wantLine int
	}{
		{name: "empty", text: "  \n"},
		{name: "json syntax", text: "{\n\"a\": ,\n}", format: "json", wantLine: 2},
		{name: "json array root", text: `[1, 2]`, format: "json", wantLine: 1},
		{name: "yaml scalar root", text: "just a string\n", format: "yaml"},
		{name: "yaml syntax", text: "a: b\n  c: d\n", format: "yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseText([]byte(tt.text))
			require.Error(t, err)
			assert.True(t, errors.Is(err, oaserrors.ErrParse))

			var pe *oaserrors.ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tt.format, pe.Format)
			if tt.wantLine > 0 {
				assert.Equal(t, tt.wantLine, pe.Line)
			}
		})
	}
}

func TestDetectFormat(t *testing.T) {
	assert.Equal(t, SourceFormatJSON, DetectFormat([]byte("  \n{}")))
	assert.Equal(t, SourceFormatJSON, DetectFormat([]byte("[]")))
	assert.Equal(t, SourceFormatYAML, DetectFormat([]byte("openapi: 3.0.0")))
	assert.Equal(t, SourceFormatUnknown, DetectFormat(nil))
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, SourceFormatJSON, FormatFromPath("api.JSON"))
	assert.Equal(t, SourceFormatYAML, FormatFromPath("/tmp/api.yml"))
	assert.Equal(t, SourceFormatYAML, FormatFromPath("api.yaml"))
	assert.Equal(t, SourceFormatUnknown, FormatFromPath("api.txt"))
}

func TestParseResultLocatorNil(t *testing.T) {
	var r *ParseResult
	assert.Nil(t, r.Locator())
	assert.Nil(t, (&ParseResult{}).Locator())
}
