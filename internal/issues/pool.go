package issues

import (
	"strings"
	"sync"
)

var stringBuilderPool = sync.Pool{
	New: func() any {
		return new(strings.Builder)
	},
}

// getStringBuilder retrieves a builder from the pool and resets it.
func getStringBuilder() *strings.Builder {
	sb := stringBuilderPool.Get().(*strings.Builder)
	sb.Reset()
	return sb
}

// putStringBuilder returns a builder to the pool.
func putStringBuilder(sb *strings.Builder) {
	if sb == nil {
		return
	}
	stringBuilderPool.Put(sb)
}

// FormatPath joins path segments with dots. All-digit segments are written as
// bracketed indexes.
func FormatPath(segments ...string) string {
	if len(segments) == 0 {
		return ""
	}

	sb := getStringBuilder()
	for i, seg := range segments {
		switch {
		case isIndex(seg):
			sb.WriteByte('[')
			sb.WriteString(seg)
			sb.WriteByte(']')
		default:
			if i > 0 {
				sb.WriteByte('.')
			}
			sb.WriteString(seg)
		}
	}
	result := sb.String()
	putStringBuilder(sb)
	return result
}

func isIndex(seg string) bool {
	if seg == "" {
		return false
	}
	for i := 0; i < len(seg); i++ {
		if seg[i] < '0' || seg[i] > '9' {
			return false
		}
	}
	return true
}
