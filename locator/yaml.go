package locator

import (
	"github.com/erraggy/oaslint/internal/pathutil"
	"go.yaml.in/yaml/v4"
)

// maxAliasDepth bounds alias chains when stepping through a YAML tree.
const maxAliasDepth = 32

// YAML is the Locator backend for a decoded YAML node tree.
type YAML struct {
	text []byte
	root *yaml.Node
}

// NewYAML returns a locator over root, which must have been decoded from text.
func NewYAML(text []byte, root *yaml.Node) *YAML {
	return &YAML{text: text, root: root}
}

// Locate implements Locator.
func (y *YAML) Locate(path []string) (Range, bool) {
	return LocateYAML(y.text, y.root, path)
}

// LocateYAML returns the range of the node at path. The start comes from the
// node's line and column; the end is measured on text from the scalar token or
// from the last descendant of a collection.
func LocateYAML(text []byte, root *yaml.Node, path []string) (Range, bool) {
	node := root
	if node != nil && node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return Range{}, false
		}
		node = node.Content[0]
	}
	if node == nil {
		return Range{}, false
	}

	indent := -1
	flow := false
	for _, seg := range path {
		parent := deref(node)
		if parent == nil {
			return Range{}, false
		}
		if !flow && isFlowStart(text, parent) {
			flow = true
		}
		child, childIndent, ok := yamlChild(parent, seg, 0)
		if !ok {
			return Range{}, false
		}
		node, indent = child, childIndent
	}

	start, end := yamlSpan(text, node, indent, flow)
	return newRange(text, start, end), true
}

// deref unwraps document and alias nodes.
func deref(n *yaml.Node) *yaml.Node {
	for i := 0; n != nil && i < maxAliasDepth; i++ {
		switch n.Kind {
		case yaml.AliasNode:
			n = n.Alias
		case yaml.DocumentNode:
			if len(n.Content) == 0 {
				return nil
			}
			n = n.Content[0]
		default:
			return n
		}
	}
	return n
}

// yamlChild steps from a collection into the child named by seg. It also returns
// the indentation of the owning key or sequence entry, which bounds block scalars.
// Keys written in a mapping take precedence over keys pulled in by "<<" merges,
// and earlier merge sources take precedence over later ones.
func yamlChild(n *yaml.Node, seg string, depth int) (*yaml.Node, int, bool) {
	switch n.Kind {
	case yaml.MappingNode:
		var merges []*yaml.Node
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := n.Content[i]
			if isMergeKey(key) {
				merges = append(merges, n.Content[i+1])
				continue
			}
			if key.Value == seg {
				return n.Content[i+1], key.Column - 1, true
			}
		}
		if depth >= maxAliasDepth {
			return nil, 0, false
		}
		for _, src := range merges {
			if child, indent, ok := mergedChild(src, seg, depth+1); ok {
				return child, indent, true
			}
		}
	case yaml.SequenceNode:
		idx, ok := pathutil.ArrayIndex(seg)
		if !ok || idx >= len(n.Content) {
			return nil, 0, false
		}
		return n.Content[idx], n.Column - 1, true
	}
	return nil, 0, false
}

// isMergeKey reports whether key is an unquoted "<<" merge key.
func isMergeKey(key *yaml.Node) bool {
	return key.Kind == yaml.ScalarNode && key.Value == "<<" &&
		key.Style&(yaml.SingleQuotedStyle|yaml.DoubleQuotedStyle) == 0
}

// mergedChild looks up seg in a merge source: a mapping, an alias to one, or a
// sequence of those.
func mergedChild(src *yaml.Node, seg string, depth int) (*yaml.Node, int, bool) {
	src = deref(src)
	if src == nil {
		return nil, 0, false
	}
	switch src.Kind {
	case yaml.MappingNode:
		return yamlChild(src, seg, depth)
	case yaml.SequenceNode:
		for _, item := range src.Content {
			if m := deref(item); m != nil && m.Kind == yaml.MappingNode {
				if child, indent, ok := yamlChild(m, seg, depth); ok {
					return child, indent, true
				}
			}
		}
	}
	return nil, 0, false
}

func isFlowStart(text []byte, n *yaml.Node) bool {
	off := PositionToOffset(text, n.Line, n.Column)
	return off < len(text) && (text[off] == '{' || text[off] == '[')
}

// yamlSpan returns the [start, end) byte span of n.
func yamlSpan(text []byte, n *yaml.Node, indent int, flow bool) (int, int) {
	start := PositionToOffset(text, n.Line, n.Column)
	switch n.Kind {
	case yaml.MappingNode, yaml.SequenceNode:
		if start < len(text) && (text[start] == '{' || text[start] == '[') {
			return start, matchBracket(text, start)
		}
		if len(n.Content) == 0 {
			return start, start
		}
		last := n.Content[len(n.Content)-1]
		lastIndent := n.Column - 1
		if n.Kind == yaml.MappingNode && len(n.Content) >= 2 {
			lastIndent = n.Content[len(n.Content)-2].Column - 1
		}
		_, end := yamlSpan(text, last, lastIndent, flow)
		return start, end
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return start, start
		}
		return yamlSpan(text, n.Content[0], -1, flow)
	default:
		return start, scalarEnd(text, start, indent, flow)
	}
}

// scalarEnd measures a scalar token starting at start.
func scalarEnd(text []byte, start, indent int, flow bool) int {
	if start >= len(text) {
		return start
	}
	switch text[start] {
	case '"':
		for i := start + 1; i < len(text); i++ {
			switch text[i] {
			case '\\':
				i++
			case '"':
				return i + 1
			}
		}
		return len(text)
	case '\'':
		for i := start + 1; i < len(text); i++ {
			if text[i] == '\'' {
				if i+1 < len(text) && text[i+1] == '\'' {
					i++
					continue
				}
				return i + 1
			}
		}
		return len(text)
	case '|', '>':
		return blockScalarEnd(text, start, indent)
	}

	i := start
loop:
	for i < len(text) {
		switch c := text[i]; c {
		case '\n', '\r':
			break loop
		case '#':
			if i > start && (text[i-1] == ' ' || text[i-1] == '\t') {
				break loop
			}
		case ',', ']', '}':
			if flow {
				break loop
			}
		}
		i++
	}
	for i > start && (text[i-1] == ' ' || text[i-1] == '\t') {
		i--
	}
	return i
}

// blockScalarEnd returns the end of the last content line of a literal or folded
// scalar. Content lines are those indented deeper than indent; blank lines in
// between belong to the scalar but trailing ones do not.
func blockScalarEnd(text []byte, start, indent int) int {
	end := lineEnd(text, start)
	i := end + 1
	for i < len(text) {
		le := lineEnd(text, i)
		line := text[i:le]
		spaces := 0
		for spaces < len(line) && line[spaces] == ' ' {
			spaces++
		}
		if spaces == len(line) || (spaces == len(line)-1 && line[spaces] == '\r') {
			i = le + 1
			continue
		}
		if spaces <= indent {
			break
		}
		end = le
		if end > i && text[end-1] == '\r' {
			end--
		}
		i = le + 1
	}
	return end
}

func lineEnd(text []byte, i int) int {
	for i < len(text) && text[i] != '\n' {
		i++
	}
	return i
}

// matchBracket returns the offset just past the bracket that closes the flow
// collection opened at start. Quoted strings are skipped.
func matchBracket(text []byte, start int) int {
	depth := 0
	for i := start; i < len(text); i++ {
		switch text[i] {
		case '{', '[':
			depth++
		case '}', ']':
			depth--
			if depth == 0 {
				return i + 1
			}
		case '"':
			for i++; i < len(text) && text[i] != '"'; i++ {
				if text[i] == '\\' {
					i++
				}
			}
		case '\'':
			for i++; i < len(text); i++ {
				if text[i] == '\'' {
					if i+1 < len(text) && text[i+1] == '\'' {
						i++
						continue
					}
					break
				}
			}
		}
	}
	return len(text)
}
