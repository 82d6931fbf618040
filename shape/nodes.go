package shape

import (
	"errors"
	"fmt"
	"regexp"
)

// Kind identifies the variant of a schema node.
type Kind string

const (
	KindString  Kind = "string"
	KindNumber  Kind = "number"
	KindInteger Kind = "integer"
	KindBoolean Kind = "boolean"
	KindArray   Kind = "array"
	KindObject  Kind = "object"
	KindAny     Kind = "any"
)

// Node is one variant of the schema tree. Each concrete type carries only the
// constraints that are legal for its kind.
type Node interface {
	Kind() Kind
	// Validate reports an illegal combination of constraints on this node.
	// Children are not checked; see [Check].
	Validate() error
}

// Rule is an extra check run after a node's own constraints pass.
type Rule func(ctx *Context, value any, path []string)

// String matches string values.
type String struct {
	MinLength int
	// MaxLength of 0 means unbounded
	MaxLength int
	Pattern   string
	Enum      []string
	Rule      Rule
}

// Number matches any numeric value.
type Number struct {
	Min    *float64
	Max    *float64
	Format string
}

// Integer matches integral numeric values.
type Integer struct {
	Min    *int64
	Max    *int64
	Format string
}

// Boolean matches true and false.
type Boolean struct{}

// Array matches sequences.
type Array struct {
	// Items validates every element; nil accepts anything
	Items    Node
	MinItems int
	// MaxItems of 0 means unbounded
	MaxItems int
}

// Object matches mappings.
type Object struct {
	Properties map[string]Node
	Required   []string
	// Additional validates keys not in Properties; nil accepts them unchecked
	Additional Node
	// KeyPattern must match every key not in Properties
	KeyPattern string
	// AllowRef skips all checks when the mapping holds a string $ref
	AllowRef bool
	Rule     Rule
}

// Any matches every value.
type Any struct{}

func (*String) Kind() Kind  { return KindString }
func (*Number) Kind() Kind  { return KindNumber }
func (*Integer) Kind() Kind { return KindInteger }
func (*Boolean) Kind() Kind { return KindBoolean }
func (*Array) Kind() Kind   { return KindArray }
func (*Object) Kind() Kind  { return KindObject }
func (*Any) Kind() Kind     { return KindAny }

var (
	errNegative = errors.New("must not be negative")
	errBounds   = errors.New("minimum exceeds maximum")
)

// Validate implements Node.
func (s *String) Validate() error {
	if s.MinLength < 0 {
		return fmt.Errorf("string minLength: %w", errNegative)
	}
	if s.MaxLength < 0 {
		return fmt.Errorf("string maxLength: %w", errNegative)
	}
	if s.MaxLength > 0 && s.MinLength > s.MaxLength {
		return fmt.Errorf("string length: %w", errBounds)
	}
	if s.Pattern != "" {
		if _, err := regexp.Compile(s.Pattern); err != nil {
			return fmt.Errorf("string pattern: %w", err)
		}
	}
	return nil
}

// Validate implements Node.
func (n *Number) Validate() error {
	if n.Min != nil && n.Max != nil && *n.Min > *n.Max {
		return fmt.Errorf("number range: %w", errBounds)
	}
	switch n.Format {
	case "", "float", "double", "int32", "int64":
		return nil
	default:
		return fmt.Errorf("number format %q is not supported", n.Format)
	}
}

// Validate implements Node.
func (i *Integer) Validate() error {
	if i.Min != nil && i.Max != nil && *i.Min > *i.Max {
		return fmt.Errorf("integer range: %w", errBounds)
	}
	switch i.Format {
	case "", "int32", "int64":
		return nil
	default:
		return fmt.Errorf("integer format %q is not supported", i.Format)
	}
}

// Validate implements Node.
func (*Boolean) Validate() error { return nil }

// Validate implements Node.
func (a *Array) Validate() error {
	if a.MinItems < 0 {
		return fmt.Errorf("array minItems: %w", errNegative)
	}
	if a.MaxItems < 0 {
		return fmt.Errorf("array maxItems: %w", errNegative)
	}
	if a.MaxItems > 0 && a.MinItems > a.MaxItems {
		return fmt.Errorf("array items: %w", errBounds)
	}
	return nil
}

// Validate implements Node.
func (o *Object) Validate() error {
	for _, name := range o.Required {
		if name == "" {
			return errors.New("object required: empty property name")
		}
	}
	if o.KeyPattern != "" {
		if _, err := regexp.Compile(o.KeyPattern); err != nil {
			return fmt.Errorf("object keyPattern: %w", err)
		}
	}
	for name, child := range o.Properties {
		if child == nil {
			return fmt.Errorf("object property %q: nil node", name)
		}
	}
	return nil
}

// Validate implements Node.
func (*Any) Validate() error { return nil }

// Check validates node and every node reachable from it. Trees may be cyclic.
func Check(node Node) error {
	return check(node, make(map[Node]struct{}))
}

func check(node Node, seen map[Node]struct{}) error {
	if node == nil {
		return nil
	}
	if _, ok := seen[node]; ok {
		return nil
	}
	seen[node] = struct{}{}
	if err := node.Validate(); err != nil {
		return err
	}
	for _, child := range children(node) {
		if err := check(child, seen); err != nil {
			return err
		}
	}
	return nil
}

func children(node Node) []Node {
	switch n := node.(type) {
	case *Array:
		return []Node{n.Items}
	case *Object:
		out := make([]Node, 0, len(n.Properties)+1)
		for _, child := range n.Properties {
			out = append(out, child)
		}
		return append(out, n.Additional)
	default:
		return nil
	}
}

// Must panics if node or any descendant is illegal. Use it for trees built
// from literals.
func Must[N Node](node N) N {
	if err := Check(node); err != nil {
		panic(fmt.Sprintf("shape: %v", err))
	}
	return node
}

// Ptr returns a pointer to v, for the optional bounds on numeric nodes.
func Ptr[T any](v T) *T {
	return &v
}
