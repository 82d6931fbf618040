package locator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOffsetToPosition(t *testing.T) {
	text := []byte("ab\ncd\n\nxyz")

	tests := []struct {
		name   string
		offset int
		want   Position
	}{
		{"start of text", 0, Position{Line: 1, Column: 1, Offset: 0}},
		{"middle of first line", 1, Position{Line: 1, Column: 2, Offset: 1}},
		{"the newline itself", 2, Position{Line: 1, Column: 3, Offset: 2}},
		{"start of second line", 3, Position{Line: 2, Column: 1, Offset: 3}},
		{"empty line", 6, Position{Line: 3, Column: 1, Offset: 6}},
		{"last line", 9, Position{Line: 4, Column: 3, Offset: 9}},
		{"end of text", 10, Position{Line: 4, Column: 4, Offset: 10}},
		{"negative clamps to start", -5, Position{Line: 1, Column: 1, Offset: 0}},
		{"past end clamps to end", 99, Position{Line: 4, Column: 4, Offset: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OffsetToPosition(text, tt.offset))
		})
	}
}

func TestOffsetToPosition_CountsRunes(t *testing.T) {
	text := []byte("é: x")
	// "é" is two bytes but one column
	assert.Equal(t, Position{Line: 1, Column: 2, Offset: 2}, OffsetToPosition(text, 2))
}

func TestPositionToOffset(t *testing.T) {
	text := []byte("ab\ncd\n\nxyz")

	assert.Equal(t, 0, PositionToOffset(text, 1, 1))
	assert.Equal(t, 4, PositionToOffset(text, 2, 2))
	assert.Equal(t, 7, PositionToOffset(text, 4, 1))
	assert.Equal(t, 2, PositionToOffset(text, 1, 40), "column past line end stops at the newline")
	assert.Equal(t, len(text), PositionToOffset(text, 12, 1))
}

func TestPositionRoundTrip(t *testing.T) {
	text := []byte("openapi: 3.0.0\ninfo:\n  title: café\n  version: 1\n")
	for offset := 0; offset <= len(text); offset++ {
		pos := OffsetToPosition(text, offset)
		if offset < len(text) && text[offset]&0xC0 == 0x80 {
			continue // inside a multi-byte rune
		}
		assert.Equal(t, offset, PositionToOffset(text, pos.Line, pos.Column), "offset %d", offset)
	}
}

func TestRangeString(t *testing.T) {
	r := Range{Start: Position{Line: 2, Column: 3}, End: Position{Line: 2, Column: 7}}
	assert.Equal(t, "2:3-2:7", r.String())
}
