// Package locator maps document field paths back to line/column ranges in the
// original JSON or YAML source text.
//
// Two backends share the [Locator] contract. [JSON] walks a syntax tree built from
// encoding/json tokens with byte offsets; [YAML] walks a go.yaml.in/yaml/v4 node tree.
// Both step into successive children named or indexed by each path segment.
//
// A path that cannot be followed yields no range. This usually means the issue is
// about a missing field rather than a present field with a wrong value; callers
// treat it as "location unknown", never as an error.
//
// Conversions between byte offsets and line/column pairs scan the text from its
// start on every call. Lines and columns are 1-based; every '\n' starts a new line.
// Columns count characters (runes), which matches the columns reported by the
// YAML decoder.
package locator
