package locator

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/erraggy/oaslint/internal/pathutil"
)

// JSONKind identifies the syntactic kind of a JSONNode.
type JSONKind int

const (
	// JSONObject is a {...} value
	JSONObject JSONKind = iota
	// JSONArray is a [...] value
	JSONArray
	// JSONString is a quoted string token
	JSONString
	// JSONNumber is a numeric token
	JSONNumber
	// JSONLiteral is true, false, or null
	JSONLiteral
)

// JSONNode is one value in a JSON syntax tree. Start and End are byte offsets
// into the source text; End is exclusive.
type JSONNode struct {
	Kind     JSONKind
	Start    int
	End      int
	Members  []JSONMember
	Elements []*JSONNode
}

// JSONMember is an object member with the span of its key token.
type JSONMember struct {
	Key      string
	KeyStart int
	KeyEnd   int
	Value    *JSONNode
}

// Member returns the value for key. When a key repeats, the last occurrence
// wins, matching encoding/json decoding.
func (n *JSONNode) Member(key string) (*JSONNode, bool) {
	if n == nil || n.Kind != JSONObject {
		return nil, false
	}
	for i := len(n.Members) - 1; i >= 0; i-- {
		if n.Members[i].Key == key {
			return n.Members[i].Value, true
		}
	}
	return nil, false
}

// Element returns the array element at index.
func (n *JSONNode) Element(index int) (*JSONNode, bool) {
	if n == nil || n.Kind != JSONArray || index < 0 || index >= len(n.Elements) {
		return nil, false
	}
	return n.Elements[index], true
}

// Find follows path from n.
func (n *JSONNode) Find(path []string) (*JSONNode, bool) {
	current := n
	for _, seg := range path {
		var ok bool
		switch current.Kind {
		case JSONObject:
			current, ok = current.Member(seg)
		case JSONArray:
			var idx int
			if idx, ok = pathutil.ArrayIndex(seg); ok {
				current, ok = current.Element(idx)
			}
		}
		if !ok {
			return nil, false
		}
	}
	return current, current != nil
}

// ParseJSON builds a syntax tree for text. The decoder validates the syntax;
// token spans are measured directly on text.
func ParseJSON(text []byte) (*JSONNode, error) {
	dec := json.NewDecoder(bytes.NewReader(text))
	dec.UseNumber()
	b := &jsonBuilder{text: text, dec: dec}
	root, err := b.value()
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unexpected data after top-level value at offset %d", b.skip(b.pos))
	}
	return root, nil
}

type jsonBuilder struct {
	text []byte
	dec  *json.Decoder
	pos  int
}

// next reads one token and returns it with its [start, end) span.
func (b *jsonBuilder) next() (json.Token, int, int, error) {
	tok, err := b.dec.Token()
	if err != nil {
		return nil, 0, 0, err
	}
	start := b.skip(b.pos)
	end := b.tokenEnd(start)
	b.pos = end
	return tok, start, end, nil
}

// skip advances past whitespace and the separators the decoder consumes
// between tokens.
func (b *jsonBuilder) skip(i int) int {
	for i < len(b.text) {
		switch b.text[i] {
		case ' ', '\t', '\n', '\r', ',', ':':
			i++
		default:
			return i
		}
	}
	return i
}

func (b *jsonBuilder) tokenEnd(start int) int {
	if start >= len(b.text) {
		return start
	}
	switch b.text[start] {
	case '{', '}', '[', ']':
		return start + 1
	case '"':
		for i := start + 1; i < len(b.text); i++ {
			switch b.text[i] {
			case '\\':
				i++
			case '"':
				return i + 1
			}
		}
		return len(b.text)
	}
	i := start
	for i < len(b.text) {
		switch b.text[i] {
		case ' ', '\t', '\n', '\r', ',', ':', ']', '}':
			return i
		}
		i++
	}
	return i
}

func (b *jsonBuilder) value() (*JSONNode, error) {
	tok, start, end, err := b.next()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return b.object(start)
		case '[':
			return b.array(start)
		}
		return nil, fmt.Errorf("unexpected %q at offset %d", t, start)
	case string:
		return &JSONNode{Kind: JSONString, Start: start, End: end}, nil
	case json.Number:
		return &JSONNode{Kind: JSONNumber, Start: start, End: end}, nil
	default:
		return &JSONNode{Kind: JSONLiteral, Start: start, End: end}, nil
	}
}

func (b *jsonBuilder) object(start int) (*JSONNode, error) {
	node := &JSONNode{Kind: JSONObject, Start: start}
	for b.dec.More() {
		tok, keyStart, keyEnd, err := b.next()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key at offset %d", keyStart)
		}
		val, err := b.value()
		if err != nil {
			return nil, err
		}
		node.Members = append(node.Members, JSONMember{Key: key, KeyStart: keyStart, KeyEnd: keyEnd, Value: val})
	}
	_, _, end, err := b.next()
	if err != nil {
		return nil, err
	}
	node.End = end
	return node, nil
}

func (b *jsonBuilder) array(start int) (*JSONNode, error) {
	node := &JSONNode{Kind: JSONArray, Start: start}
	for b.dec.More() {
		val, err := b.value()
		if err != nil {
			return nil, err
		}
		node.Elements = append(node.Elements, val)
	}
	_, _, end, err := b.next()
	if err != nil {
		return nil, err
	}
	node.End = end
	return node, nil
}

// JSON is the Locator backend for JSON source text.
type JSON struct {
	text []byte
	root *JSONNode
}

// NewJSON parses text and returns a locator over it.
func NewJSON(text []byte) (*JSON, error) {
	root, err := ParseJSON(text)
	if err != nil {
		return nil, err
	}
	return &JSON{text: text, root: root}, nil
}

// NewJSONTree returns a locator over a tree already built from text.
func NewJSONTree(text []byte, root *JSONNode) *JSON {
	return &JSON{text: text, root: root}
}

// Locate implements Locator.
func (j *JSON) Locate(path []string) (Range, bool) {
	return LocateJSON(j.text, j.root, path)
}

// LocateJSON returns the range of the value at path in a tree built from text.
func LocateJSON(text []byte, root *JSONNode, path []string) (Range, bool) {
	if root == nil {
		return Range{}, false
	}
	node, ok := root.Find(path)
	if !ok {
		return Range{}, false
	}
	return newRange(text, node.Start, node.End), true
}
