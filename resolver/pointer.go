package resolver

import (
	"fmt"
	"strings"

	"github.com/erraggy/oaslint/internal/pathutil"
	"github.com/erraggy/oaslint/oaserrors"
)

// ParsePointer validates ptr and returns its unescaped segments.
// "#/" yields a single empty segment, the key "" of the root mapping.
func ParsePointer(ptr string) ([]string, error) {
	if !strings.HasPrefix(ptr, pathutil.RefPrefix) {
		msg := `pointer must start with "#/"`
		if strings.Contains(ptr, "#") || strings.Contains(ptr, "://") {
			msg = "external references are not supported"
		}
		return nil, &oaserrors.ReferenceError{Ref: ptr, Kind: oaserrors.ReferenceInvalid, Message: msg}
	}

	raw := strings.Split(ptr[len(pathutil.RefPrefix):], "/")
	segments := make([]string, len(raw))
	for i, seg := range raw {
		s, err := pathutil.UnescapeSegment(seg)
		if err != nil {
			return nil, &oaserrors.ReferenceError{
				Ref:     ptr,
				Kind:    oaserrors.ReferenceInvalid,
				Segment: seg,
				Message: fmt.Sprintf("segment %d", i),
				Cause:   err,
			}
		}
		segments[i] = s
	}
	return segments, nil
}

// walk steps through doc one segment at a time. On failure it returns the
// index of the segment that could not be followed.
func walk(doc any, segments []string) (any, int, bool) {
	cur := doc
	for i, seg := range segments {
		switch node := cur.(type) {
		case map[string]any:
			next, ok := node[seg]
			if !ok {
				return nil, i, false
			}
			cur = next
		case []any:
			idx, ok := pathutil.ArrayIndex(seg)
			if !ok || idx >= len(node) {
				return nil, i, false
			}
			cur = node[idx]
		default:
			return nil, i, false
		}
	}
	return cur, -1, true
}
