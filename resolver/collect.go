package resolver

import (
	"maps"
	"slices"

	"github.com/erraggy/oaslint/internal/pathutil"
)

// RefKey is the mapping key that marks a reference.
const RefKey = "$ref"

// Ref is one occurrence of a reference in a document.
type Ref struct {
	// Pointer is the raw $ref value
	Pointer string
	// Path locates the mapping that holds the $ref
	Path []string
}

// Collect walks node and returns every reference in document order, with map
// keys visited in sorted order. A mapping whose $ref value is a string is
// recorded and not descended into. base is prepended to every returned path.
func Collect(node any, base ...string) []Ref {
	p := pathutil.Get()
	defer pathutil.Put(p)
	for _, seg := range base {
		p.Push(seg)
	}

	var refs []Ref
	collect(node, p, &refs)
	return refs
}

func collect(node any, p *pathutil.PathBuilder, refs *[]Ref) {
	switch n := node.(type) {
	case map[string]any:
		if ptr, ok := n[RefKey].(string); ok {
			*refs = append(*refs, Ref{Pointer: ptr, Path: p.Segments()})
			return
		}
		for _, key := range slices.Sorted(maps.Keys(n)) {
			p.Push(key)
			collect(n[key], p, refs)
			p.Pop()
		}
	case []any:
		for i, item := range n {
			p.PushIndex(i)
			collect(item, p, refs)
			p.Pop()
		}
	}
}
