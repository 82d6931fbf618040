package analyzer

import (
	"maps"
	"slices"
	"strconv"

	"github.com/erraggy/oaslint/internal/httputil"
	"github.com/erraggy/oaslint/internal/issues"
	"github.com/erraggy/oaslint/resolver"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// maxRefHops bounds $ref chains followed when resolving one parameter.
const maxRefHops = 16

// Source tells inline parameters apart from referenced ones.
type Source int

const (
	// SourceInline is a parameter object written in place
	SourceInline Source = iota
	// SourceReference is a parameter reached through $ref
	SourceReference
)

// String returns "inline" or "reference".
func (s Source) String() string {
	if s == SourceReference {
		return "reference"
	}
	return "inline"
}

// Parameter is a parameter list entry resolved to its name and location.
type Parameter struct {
	Name   string
	In     string
	Source Source
	// Index is the entry's position in its list
	Index int
}

type paramKey struct {
	name string
	in   string
}

// ParameterChecker checks parameter lists for duplicate (name, in) pairs.
type ParameterChecker struct {
	resolver *resolver.Resolver
	title    cases.Caser
}

// NewParameterChecker creates a checker that resolves $ref entries with r.
// A nil r uses an uncached resolver.
func NewParameterChecker(r *resolver.Resolver) *ParameterChecker {
	if r == nil {
		r = resolver.New()
	}
	return &ParameterChecker{resolver: r, title: cases.Title(language.English)}
}

// Resolve returns the entries of list that resolve to a mapping with string
// name and in fields. Malformed entries and unresolvable references are
// skipped; other checks report them.
func (c *ParameterChecker) Resolve(doc map[string]any, list []any) []Parameter {
	params := make([]Parameter, 0, len(list))
	for i, entry := range list {
		obj, source, ok := c.resolveEntry(doc, entry)
		if !ok {
			continue
		}
		name, nameOK := obj["name"].(string)
		in, inOK := obj["in"].(string)
		if !nameOK || !inOK {
			continue
		}
		params = append(params, Parameter{Name: name, In: in, Source: source, Index: i})
	}
	return params
}

func (c *ParameterChecker) resolveEntry(doc map[string]any, entry any) (map[string]any, Source, bool) {
	source := SourceInline
	seen := make(map[string]struct{})
	for range maxRefHops {
		obj, ok := entry.(map[string]any)
		if !ok {
			return nil, source, false
		}
		ptr, isRef := obj[resolver.RefKey].(string)
		if !isRef {
			return obj, source, true
		}
		if _, loop := seen[ptr]; loop {
			return nil, source, false
		}
		seen[ptr] = struct{}{}
		source = SourceReference

		target, err := c.resolver.Lookup(doc, ptr)
		if err != nil {
			return nil, source, false
		}
		entry = target
	}
	return nil, source, false
}

// Check reports the second and later occurrences of each (name, in) pair in
// list. Issue paths are scopePath + ["parameters", index].
func (c *ParameterChecker) Check(doc map[string]any, list []any, scopePath []string) []issues.Issue {
	seen := make(map[paramKey]int)
	var out []issues.Issue
	for _, p := range c.Resolve(doc, list) {
		key := paramKey{name: p.Name, in: p.In}
		first, dup := seen[key]
		if !dup {
			seen[key] = p.Index
			continue
		}
		path := append(append([]string{}, scopePath...), "parameters", strconv.Itoa(p.Index))
		out = append(out, issues.Newf(path, issues.CodeDuplicateParameter,
			"%s parameter %q duplicates the parameter at index %d", c.title.String(p.In), p.Name, first))
	}
	return out
}

// CheckDocument checks every path-item and operation parameter list under
// paths and webhooks. Each list is checked on its own.
func (c *ParameterChecker) CheckDocument(doc map[string]any) []issues.Issue {
	var out []issues.Issue
	for _, section := range []string{"paths", "webhooks"} {
		items, ok := doc[section].(map[string]any)
		if !ok {
			continue
		}
		for _, name := range slices.Sorted(maps.Keys(items)) {
			item, _, ok := c.resolveEntry(doc, items[name])
			if !ok {
				continue
			}
			out = append(out, c.checkPathItem(doc, item, []string{section, name})...)
		}
	}
	return out
}

func (c *ParameterChecker) checkPathItem(doc, item map[string]any, scope []string) []issues.Issue {
	var out []issues.Issue
	if list, ok := item["parameters"].([]any); ok {
		out = append(out, c.Check(doc, list, scope)...)
	}
	for _, method := range httputil.Methods {
		op, ok := item[method].(map[string]any)
		if !ok {
			continue
		}
		if list, ok := op["parameters"].([]any); ok {
			opScope := append(append([]string{}, scope...), method)
			out = append(out, c.Check(doc, list, opScope)...)
		}
	}
	return out
}
