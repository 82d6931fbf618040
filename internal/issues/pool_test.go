package issues

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPath(t *testing.T) {
	tests := []struct {
		segments []string
		want     string
	}{
		{nil, ""},
		{[]string{"paths"}, "paths"},
		{[]string{"paths", "/users", "get"}, "paths./users.get"},
		{[]string{"0"}, "[0]"},
		{[]string{"servers", "0", "url"}, "servers[0].url"},
		{[]string{"paths", "/a/{id}", "get", "parameters", "12"}, "paths./a/{id}.get.parameters[12]"},
		{[]string{"x", ""}, "x."},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatPath(tt.segments...), "segments %v", tt.segments)
	}
}

func BenchmarkFormatPath(b *testing.B) {
	segments := []string{"paths", "/users/{id}", "get", "parameters", "0"}
	for b.Loop() {
		_ = FormatPath(segments...)
	}
}
