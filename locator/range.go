package locator

import (
	"fmt"
	"unicode/utf8"
)

// Position is a point in source text.
type Position struct {
	// Line is 1-based
	Line int `json:"line"`
	// Column is 1-based and counts characters
	Column int `json:"column"`
	// Offset is the 0-based byte offset
	Offset int `json:"offset"`
}

// String returns "line:column".
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Range is a span of source text. End is exclusive.
type Range struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// String returns "line:column-line:column".
func (r Range) String() string {
	return r.Start.String() + "-" + r.End.String()
}

// Locator resolves a field path to a source range.
type Locator interface {
	// Locate returns the range of the value at path, or false when some
	// segment of path does not exist in the source.
	Locate(path []string) (Range, bool)
}

// OffsetToPosition converts a byte offset into a Position by scanning text from
// its start. Offsets outside the text are clamped.
func OffsetToPosition(text []byte, offset int) Position {
	if offset < 0 {
		offset = 0
	}
	if offset > len(text) {
		offset = len(text)
	}
	pos := Position{Line: 1, Column: 1, Offset: offset}
	for i := 0; i < offset; {
		r, size := utf8.DecodeRune(text[i:])
		if r == '\n' {
			pos.Line++
			pos.Column = 1
		} else {
			pos.Column++
		}
		i += size
	}
	return pos
}

// PositionToOffset converts a 1-based line and column into a byte offset by
// scanning text from its start. A column past the end of its line maps to the
// line break; a line past the end of the text maps to len(text).
func PositionToOffset(text []byte, line, column int) int {
	l, c := 1, 1
	for i := 0; i < len(text); {
		if l == line && c == column {
			return i
		}
		r, size := utf8.DecodeRune(text[i:])
		if r == '\n' {
			if l == line {
				return i
			}
			l++
			c = 1
		} else {
			c++
		}
		i += size
	}
	return len(text)
}

// newRange converts a [start, end) byte span into a Range.
func newRange(text []byte, start, end int) Range {
	return Range{
		Start: OffsetToPosition(text, start),
		End:   OffsetToPosition(text, end),
	}
}
