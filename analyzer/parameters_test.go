package analyzer

import (
	"testing"

	"github.com/erraggy/oaslint/internal/issues"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func param(name, in string) map[string]any {
	return map[string]any{"name": name, "in": in}
}

func ref(ptr string) map[string]any {
	return map[string]any{"$ref": ptr}
}

func TestCheckDuplicates(t *testing.T) {
	tests := []struct {
		name        string
		list        []any
		wantIndexes []string
	}{
		{
			name:        "same name and location",
			list:        []any{param("id", "query"), param("id", "query")},
			wantIndexes: []string{"1"},
		},
		{
			name: "same name different location",
			list: []any{param("id", "query"), param("id", "path")},
		},
		{
			name:        "every later occurrence reported",
			list:        []any{param("a", "header"), param("b", "query"), param("a", "header"), param("a", "header")},
			wantIndexes: []string{"2", "3"},
		},
		{
			name:        "reference resolving to a duplicate",
			list:        []any{param("limit", "query"), ref("#/components/parameters/Limit")},
			wantIndexes: []string{"1"},
		},
		{
			name: "malformed and unresolvable entries skipped",
			list: []any{
				"not a map",
				map[string]any{"name": "x"},
				map[string]any{"name": 1, "in": "query"},
				ref("#/components/parameters/Missing"),
				ref("notapointer"),
				param("x", "query"),
			},
		},
	}

	doc := map[string]any{
		"components": map[string]any{
			"parameters": map[string]any{"Limit": param("limit", "query")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewParameterChecker(nil).Check(doc, tt.list, []string{"paths", "/p", "get"})
			require.Len(t, got, len(tt.wantIndexes))
			for i, idx := range tt.wantIndexes {
				assert.Equal(t, []string{"paths", "/p", "get", "parameters", idx}, got[i].Path)
				assert.Equal(t, issues.CodeDuplicateParameter, got[i].Code)
			}
		})
	}
}

func TestCheckMessage(t *testing.T) {
	got := NewParameterChecker(nil).Check(nil, []any{param("id", "query"), param("id", "query")}, nil)
	require.Len(t, got, 1)
	assert.Equal(t, `Query parameter "id" duplicates the parameter at index 0`, got[0].Message)
	assert.Equal(t, []string{"parameters", "1"}, got[0].Path)
}

func TestResolve(t *testing.T) {
	doc := map[string]any{
		"components": map[string]any{
			"parameters": map[string]any{
				"Alias": ref("#/components/parameters/Real"),
				"Real":  param("real", "header"),
				"LoopA": ref("#/components/parameters/LoopB"),
				"LoopB": ref("#/components/parameters/LoopA"),
			},
		},
	}

	got := NewParameterChecker(nil).Resolve(doc, []any{
		param("inline", "query"),
		ref("#/components/parameters/Alias"),
		ref("#/components/parameters/LoopA"),
	})

	assert.Equal(t, []Parameter{
		{Name: "inline", In: "query", Source: SourceInline, Index: 0},
		{Name: "real", In: "header", Source: SourceReference, Index: 1},
	}, got)
	assert.Equal(t, "inline", SourceInline.String())
	assert.Equal(t, "reference", SourceReference.String())
}

func TestCheckDocumentOverrideSemantics(t *testing.T) {
	doc := map[string]any{
		"paths": map[string]any{
			"/pets/{id}": map[string]any{
				"parameters": []any{param("id", "path"), param("trace", "header")},
				"get": map[string]any{
					// Overrides the path-item parameter; not a duplicate.
					"parameters": []any{param("id", "path")},
				},
				"post": map[string]any{
					"parameters": []any{param("q", "query"), param("q", "query")},
				},
			},
			"/shared": ref("#/components/pathItems/Shared"),
		},
		"webhooks": map[string]any{
			"newPet": map[string]any{
				"parameters": []any{param("sig", "header"), param("sig", "header")},
			},
		},
		"components": map[string]any{
			"pathItems": map[string]any{
				"Shared": map[string]any{
					"parameters": []any{param("v", "query"), param("v", "query")},
				},
			},
		},
	}

	got := NewParameterChecker(nil).CheckDocument(doc)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"paths", "/pets/{id}", "post", "parameters", "1"}, got[0].Path)
	assert.Equal(t, []string{"paths", "/shared", "parameters", "1"}, got[1].Path)
	assert.Equal(t, []string{"webhooks", "newPet", "parameters", "1"}, got[2].Path)
}

func TestCheckDocumentPathItemDuplicates(t *testing.T) {
	doc := map[string]any{
		"paths": map[string]any{
			"/a": map[string]any{
				"parameters": []any{param("id", "query"), param("id", "query")},
				"get":        map[string]any{"parameters": []any{param("id", "query")}},
			},
		},
	}

	got := NewParameterChecker(nil).CheckDocument(doc)
	require.Len(t, got, 1)
	assert.Equal(t, []string{"paths", "/a", "parameters", "1"}, got[0].Path)
}
