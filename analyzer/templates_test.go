package analyzer

import (
	"testing"

	"github.com/erraggy/oaslint/internal/issues"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindAmbiguousGroups(t *testing.T) {
	tests := []struct {
		name      string
		templates []string
		want      []AmbiguousGroup
	}{
		{
			name:      "same shape different names",
			templates: []string{"/a/{x}", "/a/{y}"},
			want:      []AmbiguousGroup{{Normalized: "/a/{#}", Members: []string{"/a/{x}", "/a/{y}"}}},
		},
		{
			name:      "different literal prefix",
			templates: []string{"/a/{x}", "/b/{y}"},
		},
		{
			name:      "literal vs placeholder not flagged",
			templates: []string{"/foo/bar", "/foo/{id}"},
		},
		{
			name:      "no templates",
			templates: nil,
		},
		{
			name: "groups ordered by first appearance",
			templates: []string{
				"/users/{id}/posts/{post}",
				"/pets/{petId}",
				"/users/{userId}/posts/{postId}",
				"/pets/{id}",
				"/pets/{name}",
			},
			want: []AmbiguousGroup{
				{Normalized: "/users/{#}/posts/{#}", Members: []string{"/users/{id}/posts/{post}", "/users/{userId}/posts/{postId}"}},
				{Normalized: "/pets/{#}", Members: []string{"/pets/{petId}", "/pets/{id}", "/pets/{name}"}},
			},
		},
		{
			name:      "placeholder inside a segment",
			templates: []string{"/files/{name}.json", "/files/{id}.json", "/files/{id}.xml"},
			want:      []AmbiguousGroup{{Normalized: "/files/{#}.json", Members: []string{"/files/{name}.json", "/files/{id}.json"}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FindAmbiguousGroups(tt.templates))
		})
	}
}

func TestTemplateIssues(t *testing.T) {
	doc := map[string]any{
		"paths": map[string]any{
			"/pets/{petId}": map[string]any{},
			"/pets/{id}":    map[string]any{},
			"/pets":         map[string]any{},
		},
	}

	got := TemplateIssues(doc)
	require.Len(t, got, 1)
	assert.Equal(t, []string{"paths", "/pets/{petId}"}, got[0].Path)
	assert.Equal(t, issues.CodeAmbiguousPathTemplate, got[0].Code)
	assert.Equal(t, `path templates "/pets/{id}", "/pets/{petId}" are ambiguous: all normalize to "/pets/{#}"`, got[0].Message)

	assert.Nil(t, TemplateIssues(map[string]any{}))
	assert.Nil(t, TemplateIssues(map[string]any{"paths": "not a map"}))
}
