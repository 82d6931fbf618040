package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNodeValidate(t *testing.T) {
	tests := []struct {
		name    string
		node    Node
		wantErr bool
	}{
		{name: "string ok", node: &String{MinLength: 1, MaxLength: 3, Pattern: "^a"}},
		{name: "string unbounded max", node: &String{MinLength: 5}},
		{name: "string negative min", node: &String{MinLength: -1}, wantErr: true},
		{name: "string negative max", node: &String{MaxLength: -1}, wantErr: true},
		{name: "string min over max", node: &String{MinLength: 4, MaxLength: 3}, wantErr: true},
		{name: "string bad pattern", node: &String{Pattern: "("}, wantErr: true},
		{name: "number ok", node: &Number{Min: Ptr(0.5), Max: Ptr(1.5), Format: "double"}},
		{name: "number min over max", node: &Number{Min: Ptr(2.0), Max: Ptr(1.0)}, wantErr: true},
		{name: "number bad format", node: &Number{Format: "decimal"}, wantErr: true},
		{name: "integer ok", node: &Integer{Min: Ptr[int64](0), Format: "int64"}},
		{name: "integer min over max", node: &Integer{Min: Ptr[int64](3), Max: Ptr[int64](1)}, wantErr: true},
		{name: "integer float format", node: &Integer{Format: "float"}, wantErr: true},
		{name: "array ok", node: &Array{MinItems: 1, MaxItems: 2}},
		{name: "array negative", node: &Array{MinItems: -1}, wantErr: true},
		{name: "array min over max", node: &Array{MinItems: 3, MaxItems: 2}, wantErr: true},
		{name: "object ok", node: &Object{Required: []string{"a"}, KeyPattern: "^/"}},
		{name: "object empty required", node: &Object{Required: []string{""}}, wantErr: true},
		{name: "object bad key pattern", node: &Object{KeyPattern: "["}, wantErr: true},
		{name: "object nil property", node: &Object{Properties: map[string]Node{"a": nil}}, wantErr: true},
		{name: "boolean", node: &Boolean{}},
		{name: "any", node: &Any{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.node.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestKinds(t *testing.T) {
	assert.Equal(t, KindString, (&String{}).Kind())
	assert.Equal(t, KindNumber, (&Number{}).Kind())
	assert.Equal(t, KindInteger, (&Integer{}).Kind())
	assert.Equal(t, KindBoolean, (&Boolean{}).Kind())
	assert.Equal(t, KindArray, (&Array{}).Kind())
	assert.Equal(t, KindObject, (&Object{}).Kind())
	assert.Equal(t, KindAny, (&Any{}).Kind())
}

func TestCheckDescendants(t *testing.T) {
	tree := &Object{Properties: map[string]Node{
		"list": &Array{Items: &String{MinLength: -2}},
	}}
	assert.Error(t, Check(tree))

	cyclic := &Object{}
	cyclic.Properties = map[string]Node{"child": cyclic}
	cyclic.Additional = &Array{Items: cyclic}
	assert.NoError(t, Check(cyclic))
	assert.NoError(t, Check(OpenAPI(Options{})))
}

func TestMust(t *testing.T) {
	assert.NotPanics(t, func() { Must(&String{}) })
	assert.Panics(t, func() { Must(&Array{Items: &Integer{Format: "uuid"}}) })
}
