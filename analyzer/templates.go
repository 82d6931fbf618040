package analyzer

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/erraggy/oaslint/internal/issues"
	"github.com/erraggy/oaslint/internal/pathutil"
)

// AmbiguousGroup is a set of route templates sharing one normalized form.
type AmbiguousGroup struct {
	// Normalized is the shared template with every placeholder replaced
	Normalized string `json:"normalized"`
	// Members are the original templates in input order
	Members []string `json:"members"`
}

// FindAmbiguousGroups groups templates by normalized form and returns the
// groups with more than one member, ordered by first appearance.
func FindAmbiguousGroups(templates []string) []AmbiguousGroup {
	index := make(map[string]int, len(templates))
	var groups []AmbiguousGroup
	for _, tmpl := range templates {
		norm := pathutil.NormalizeTemplate(tmpl)
		if i, ok := index[norm]; ok {
			groups[i].Members = append(groups[i].Members, tmpl)
			continue
		}
		index[norm] = len(groups)
		groups = append(groups, AmbiguousGroup{Normalized: norm, Members: []string{tmpl}})
	}

	out := groups[:0]
	for _, g := range groups {
		if len(g.Members) > 1 {
			out = append(out, g)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// TemplateIssues reports every ambiguous group among the keys of the
// document's paths mapping, taken in sorted order. Each member after the
// first gets one issue at ["paths", member].
func TemplateIssues(doc map[string]any) []issues.Issue {
	paths, ok := doc["paths"].(map[string]any)
	if !ok {
		return nil
	}

	var out []issues.Issue
	for _, g := range FindAmbiguousGroups(slices.Sorted(maps.Keys(paths))) {
		msg := ambiguityMessage(g)
		for _, member := range g.Members[1:] {
			out = append(out, issues.New([]string{"paths", member}, issues.CodeAmbiguousPathTemplate, msg))
		}
	}
	return out
}

func ambiguityMessage(g AmbiguousGroup) string {
	quoted := make([]string, len(g.Members))
	for i, m := range g.Members {
		quoted[i] = strconv.Quote(m)
	}
	return fmt.Sprintf("path templates %s are ambiguous: all normalize to %q",
		strings.Join(quoted, ", "), g.Normalized)
}
