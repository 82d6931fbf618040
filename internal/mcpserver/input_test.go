package mcpserver

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withConfig swaps the package config for the duration of the test.
func withConfig(t *testing.T, mutate func(c *serverConfig)) {
	t.Helper()
	saved := cfg
	c := *saved
	mutate(&c)
	cfg = &c
	t.Cleanup(func() { cfg = saved })
}

func TestSpecInputLoad_Content(t *testing.T) {
	data, err := specInput{Content: "openapi: 3.1.0"}.load()
	require.NoError(t, err)
	assert.Equal(t, "openapi: 3.1.0", string(data))
}

func TestSpecInputLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "api.yaml")
	require.NoError(t, os.WriteFile(path, []byte("openapi: 3.0.3\n"), 0o600))

	data, err := specInput{File: path}.load()
	require.NoError(t, err)
	assert.Equal(t, "openapi: 3.0.3\n", string(data))
}

func TestSpecInputLoad_Errors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name  string
		input specInput
		want  string
	}{
		{name: "none", input: specInput{}, want: "got 0"},
		{name: "both", input: specInput{File: "a.yaml", Content: "x"}, want: "got 2"},
		{name: "missing file", input: specInput{File: filepath.Join(dir, "nope.yaml")}, want: "reading file"},
		{name: "directory", input: specInput{File: dir}, want: "is a directory"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.input.load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestSpecInputLoad_SizeLimit(t *testing.T) {
	withConfig(t, func(c *serverConfig) { c.MaxInlineSize = 8 })

	_, err := specInput{Content: strings.Repeat("a", 9)}.load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds maximum 8 bytes")

	path := filepath.Join(t.TempDir(), "big.yaml")
	require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("b", 9)), 0o600))
	_, err = specInput{File: path}.load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds maximum 8 bytes")
}
