package pathutil

import "strconv"

// PathBuilder is a push/pop stack of raw path segments used while walking a
// document. Array indexes are stored as decimal strings, matching the issue
// path convention.
type PathBuilder struct {
	segments []string
}

// Push adds a segment to the path.
func (p *PathBuilder) Push(segment string) {
	p.segments = append(p.segments, segment)
}

// PushIndex adds an array index segment.
func (p *PathBuilder) PushIndex(i int) {
	p.segments = append(p.segments, strconv.Itoa(i))
}

// Pop removes the last segment.
func (p *PathBuilder) Pop() {
	if len(p.segments) == 0 {
		return
	}
	p.segments = p.segments[:len(p.segments)-1]
}

// Reset clears the builder for reuse.
func (p *PathBuilder) Reset() {
	p.segments = p.segments[:0]
}

// Len returns the current depth.
func (p *PathBuilder) Len() int {
	return len(p.segments)
}

// Segments returns a copy of the current path. It never returns nil.
func (p *PathBuilder) Segments() []string {
	return append(make([]string, 0, len(p.segments)), p.segments...)
}

// With returns a copy of the current path with extra segments appended.
func (p *PathBuilder) With(extra ...string) []string {
	out := make([]string, 0, len(p.segments)+len(extra))
	out = append(out, p.segments...)
	return append(out, extra...)
}

// Pointer returns the current path as a JSON Pointer reference.
func (p *PathBuilder) Pointer() string {
	return Pointer(p.segments)
}
