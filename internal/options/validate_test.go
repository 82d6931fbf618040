package options

import (
	"testing"

	"github.com/erraggy/oaslint/oaserrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSingleInputSource(t *testing.T) {
	names := []string{"file", "content"}

	assert.NoError(t, ValidateSingleInputSource(names, true, false))
	assert.NoError(t, ValidateSingleInputSource(names, false, true))

	tests := []struct {
		name    string
		sources []bool
		want    string
	}{
		{name: "none", sources: []bool{false, false}, want: "exactly one of file or content must be provided (got 0)"},
		{name: "both", sources: []bool{true, true}, want: "exactly one of file or content must be provided (got 2)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSingleInputSource(names, tt.sources...)
			require.Error(t, err)
			assert.ErrorIs(t, err, oaserrors.ErrConfig)
			assert.Contains(t, err.Error(), tt.want)
			assert.Contains(t, err.Error(), "file|content")
		})
	}
}
