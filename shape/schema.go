package shape

import (
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/erraggy/oaslint/cache"
	"github.com/erraggy/oaslint/internal/issues"
	"github.com/erraggy/oaslint/internal/pathutil"
	"github.com/erraggy/oaslint/internal/stringutil"
	"github.com/erraggy/oaslint/resolver"
)

// Schema is a checked schema tree with its regular expressions compiled.
type Schema struct {
	root    Node
	regexps map[string]*regexp.Regexp
	format  func(format string, value any) string
}

// Compile checks node and compiles every pattern in the tree. Compiled
// patterns are shared through fragments, keyed by pattern text; a nil or
// disabled cache compiles every pattern afresh.
func Compile(node Node, fragments *cache.Cache[any]) (*Schema, error) {
	if err := Check(node); err != nil {
		return nil, err
	}

	s := &Schema{
		root:    node,
		regexps: make(map[string]*regexp.Regexp),
		format:  newFormatChecker(fragments),
	}
	for _, pattern := range patterns(node) {
		key := "regexp:" + pattern
		if v, ok := fragments.Get(key); ok {
			s.regexps[pattern] = v.(*regexp.Regexp)
			continue
		}
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("shape: compile %q: %w", pattern, err)
		}
		fragments.Set(key, re)
		s.regexps[pattern] = re
	}
	return s, nil
}

// patterns lists the distinct patterns in the tree in a stable order.
func patterns(root Node) []string {
	set := make(map[string]struct{})
	seen := make(map[Node]struct{})
	var walk func(Node)
	walk = func(n Node) {
		if n == nil {
			return
		}
		if _, ok := seen[n]; ok {
			return
		}
		seen[n] = struct{}{}
		switch t := n.(type) {
		case *String:
			if t.Pattern != "" {
				set[t.Pattern] = struct{}{}
			}
		case *Object:
			if t.KeyPattern != "" {
				set[t.KeyPattern] = struct{}{}
			}
		}
		for _, child := range children(n) {
			walk(child)
		}
	}
	walk(root)
	return slices.Sorted(maps.Keys(set))
}

// Context carries state through one validation run. Rules use it to report
// issues and to look at the rest of the document.
type Context struct {
	// Doc is the document root, or nil when the root is not a mapping
	Doc map[string]any

	schema   *Schema
	resolver *resolver.Resolver
	issues   []issues.Issue
}

// Report records an issue at path.
func (c *Context) Report(path []string, code, format string, args ...any) {
	c.issues = append(c.issues, issues.Newf(path, code, format, args...))
}

// Resolve follows value through $ref mappings. It returns value unchanged
// when it is not a reference, and false when a reference cannot be resolved.
func (c *Context) Resolve(value any) (any, bool) {
	for range 16 {
		obj, ok := value.(map[string]any)
		if !ok {
			return value, true
		}
		ptr, isRef := obj[resolver.RefKey].(string)
		if !isRef {
			return value, true
		}
		target, err := c.resolver.Lookup(c.Doc, ptr)
		if err != nil {
			return nil, false
		}
		value = target
	}
	return nil, false
}

// CheckFormat applies the memoized numeric format check.
func (c *Context) CheckFormat(format string, value any) string {
	return c.schema.format(format, value)
}

// Validate checks doc against the schema and returns every issue found.
func (s *Schema) Validate(doc any) []issues.Issue {
	root, _ := doc.(map[string]any)
	ctx := &Context{Doc: root, schema: s, resolver: resolver.New()}

	p := pathutil.Get()
	defer pathutil.Put(p)
	s.validate(ctx, doc, s.root, p)
	return ctx.issues
}

func (s *Schema) validate(ctx *Context, value any, node Node, p *pathutil.PathBuilder) {
	switch n := node.(type) {
	case nil, *Any:
	case *String:
		s.validateString(ctx, value, n, p)
	case *Integer:
		s.validateInteger(ctx, value, n, p)
	case *Number:
		s.validateNumber(ctx, value, n, p)
	case *Boolean:
		if _, ok := value.(bool); !ok {
			ctx.Report(p.Segments(), issues.CodeInvalidType, "must be a boolean, got %s", typeName(value))
		}
	case *Array:
		s.validateArray(ctx, value, n, p)
	case *Object:
		s.validateObject(ctx, value, n, p)
	}
}

func (s *Schema) validateString(ctx *Context, value any, n *String, p *pathutil.PathBuilder) {
	str, ok := value.(string)
	if !ok {
		ctx.Report(p.Segments(), issues.CodeInvalidType, "must be a string, got %s", typeName(value))
		return
	}
	length := utf8.RuneCountInString(str)
	switch {
	case length < n.MinLength:
		ctx.Report(p.Segments(), issues.CodeInvalidValue, "must be at least %d characters", n.MinLength)
		return
	case n.MaxLength > 0 && length > n.MaxLength:
		ctx.Report(p.Segments(), issues.CodeInvalidValue, "must be at most %d characters", n.MaxLength)
		return
	}
	if len(n.Enum) > 0 && !slices.Contains(n.Enum, str) {
		ctx.Report(p.Segments(), issues.CodeInvalidValue, "must be one of %s, got %q", strings.Join(n.Enum, ", "), str)
		return
	}
	if n.Pattern != "" && !s.regexps[n.Pattern].MatchString(str) {
		ctx.Report(p.Segments(), issues.CodeInvalidFormat, "must match pattern %s", n.Pattern)
		return
	}
	if n.Rule != nil {
		n.Rule(ctx, value, p.Segments())
	}
}

func (s *Schema) validateInteger(ctx *Context, value any, n *Integer, p *pathutil.PathBuilder) {
	if !isInteger(value) {
		ctx.Report(p.Segments(), issues.CodeInvalidType, "must be an integer, got %s", typeName(value))
		return
	}
	if n.Format != "" {
		if msg := ctx.CheckFormat(n.Format, value); msg != "" {
			ctx.Report(p.Segments(), issues.CodeInvalidFormat, "%s", msg)
			return
		}
	}
	f, _ := toFloat(value)
	if n.Min != nil && f < float64(*n.Min) {
		ctx.Report(p.Segments(), issues.CodeInvalidValue, "must be >= %d", *n.Min)
	}
	if n.Max != nil && f > float64(*n.Max) {
		ctx.Report(p.Segments(), issues.CodeInvalidValue, "must be <= %d", *n.Max)
	}
}

func (s *Schema) validateNumber(ctx *Context, value any, n *Number, p *pathutil.PathBuilder) {
	f, ok := toFloat(value)
	if !ok {
		ctx.Report(p.Segments(), issues.CodeInvalidType, "must be a number, got %s", typeName(value))
		return
	}
	if n.Format != "" {
		if msg := ctx.CheckFormat(n.Format, value); msg != "" {
			ctx.Report(p.Segments(), issues.CodeInvalidFormat, "%s", msg)
			return
		}
	}
	if n.Min != nil && f < *n.Min {
		ctx.Report(p.Segments(), issues.CodeInvalidValue, "must be >= %v", *n.Min)
	}
	if n.Max != nil && f > *n.Max {
		ctx.Report(p.Segments(), issues.CodeInvalidValue, "must be <= %v", *n.Max)
	}
}

func (s *Schema) validateArray(ctx *Context, value any, n *Array, p *pathutil.PathBuilder) {
	list, ok := value.([]any)
	if !ok {
		ctx.Report(p.Segments(), issues.CodeInvalidType, "must be an array, got %s", typeName(value))
		return
	}
	if len(list) < n.MinItems {
		ctx.Report(p.Segments(), issues.CodeInvalidValue, "must have at least %d items", n.MinItems)
	}
	if n.MaxItems > 0 && len(list) > n.MaxItems {
		ctx.Report(p.Segments(), issues.CodeInvalidValue, "must have at most %d items", n.MaxItems)
	}
	if n.Items == nil {
		return
	}
	for i, item := range list {
		p.PushIndex(i)
		s.validate(ctx, item, n.Items, p)
		p.Pop()
	}
}

func (s *Schema) validateObject(ctx *Context, value any, n *Object, p *pathutil.PathBuilder) {
	obj, ok := value.(map[string]any)
	if !ok {
		ctx.Report(p.Segments(), issues.CodeInvalidType, "must be an object, got %s", typeName(value))
		return
	}
	if n.AllowRef {
		if _, isRef := obj[resolver.RefKey].(string); isRef {
			return
		}
	}

	for _, name := range n.Required {
		if _, present := obj[name]; !present {
			ctx.Report(p.With(name), issues.CodeRequired, "%s is required", name)
		}
	}

	for _, key := range slices.Sorted(maps.Keys(obj)) {
		child, known := n.Properties[key]
		if !known {
			if stringutil.IsExtensionKey(key) {
				continue
			}
			if n.KeyPattern != "" && !s.regexps[n.KeyPattern].MatchString(key) {
				ctx.Report(p.With(key), issues.CodeInvalidFormat, "key %q must match pattern %s", key, n.KeyPattern)
				continue
			}
			child = n.Additional
		}
		if child == nil {
			continue
		}
		p.Push(key)
		s.validate(ctx, obj[key], child, p)
		p.Pop()
	}

	if n.Rule != nil {
		n.Rule(ctx, value, p.Segments())
	}
}

func typeName(value any) string {
	switch v := value.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	case int, int64, uint64:
		return "integer"
	case float64:
		if isInteger(v) {
			return "integer"
		}
		return "number"
	default:
		return fmt.Sprintf("%T", value)
	}
}
