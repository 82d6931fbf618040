package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollect(t *testing.T) {
	doc := map[string]any{
		"z": ref("#/z"),
		"a": []any{
			map[string]any{"$ref": "#/first", "ignored": ref("#/never")},
			map[string]any{"$ref": 42, "inner": ref("#/inner")},
		},
	}

	refs := Collect(doc)
	assert.Equal(t, []Ref{
		{Pointer: "#/first", Path: []string{"a", "0"}},
		{Pointer: "#/inner", Path: []string{"a", "1", "inner"}},
		{Pointer: "#/z", Path: []string{"z"}},
	}, refs)
}

func TestCollectBase(t *testing.T) {
	refs := Collect(map[string]any{"items": ref("#/x")}, "components", "schemas", "A")
	assert.Equal(t, []Ref{{Pointer: "#/x", Path: []string{"components", "schemas", "A", "items"}}}, refs)

	assert.Nil(t, Collect("scalar"))
	assert.Equal(t, []Ref{{Pointer: "#/r", Path: []string{}}}, Collect(ref("#/r")))
}
