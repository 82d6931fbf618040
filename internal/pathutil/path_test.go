package pathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPathParamRegex(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "single parameter", input: "/pets/{petId}", want: []string{"petId"}},
		{name: "multiple parameters", input: "/pets/{petId}/owners/{ownerId}", want: []string{"petId", "ownerId"}},
		{name: "no parameters", input: "/pets/all"},
		{name: "parameter at start", input: "{version}/pets", want: []string{"version"}},
		{name: "empty braces", input: "/pets/{}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TemplateParams(tt.input))
		})
	}
}

func TestNormalizeTemplate(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"/a/{x}", "/a/{#}"},
		{"/a/{y}", "/a/{#}"},
		{"/a/{x}/b/{y}", "/a/{#}/b/{#}"},
		{"/a/{x}.json", "/a/{#}.json"},
		{"/foo/bar", "/foo/bar"},
		{"/a/{}", "/a/{}"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeTemplate(tt.input))
		})
	}
}

func TestArrayIndex(t *testing.T) {
	for seg, want := range map[string]int{"0": 0, "7": 7, "123": 123} {
		got, ok := ArrayIndex(seg)
		assert.True(t, ok, seg)
		assert.Equal(t, want, got)
	}
	for _, seg := range []string{"", "-1", "+1", "-0", "01", "1a", "1.0", " 1", "99999999999999999999"} {
		_, ok := ArrayIndex(seg)
		assert.False(t, ok, seg)
	}
}
