// Package format turns raw Sleeper API JSON values into human-readable
// text reports. Every function is pure: same input, same output. Missing
// string-ish fields render as "N/A", missing numeric-ish fields as 0.
package format

import (
	"fmt"
	"strings"
)

const inlineListMax = 5

func asMap(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

func asList(v any) []any {
	l, _ := v.([]any)
	return l
}

// field returns the value for key, or "N/A" when the key is absent or null.
func field(m map[string]any, key string) any {
	v, ok := m[key]
	if !ok || v == nil {
		return "N/A"
	}
	return v
}

// numField returns the value for key, or 0 when the key is absent or null.
func numField(m map[string]any, key string) any {
	v, ok := m[key]
	if !ok || v == nil {
		return 0
	}
	return v
}

func fieldOr(m map[string]any, key string, def any) any {
	v, ok := m[key]
	if !ok || v == nil {
		return def
	}
	return v
}

// truthy mirrors the usual falsy set: nil, "", 0 and false all count
// as absent for conditional annotations.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case bool:
		return t
	case float64:
		return t != 0
	case map[string]any:
		return len(t) > 0
	case []any:
		return len(t) > 0
	default:
		return true
	}
}

func strSlice(v any) []string {
	items := asList(v)
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, fmt.Sprintf("%v", item))
	}
	return out
}

// inlineList joins the first inlineListMax items, appending an ellipsis
// marker when more were present.
func inlineList(items []string) string {
	shown := items
	suffix := ""
	if len(items) > inlineListMax {
		shown = items[:inlineListMax]
		suffix = "..."
	}
	return strings.Join(shown, ", ") + suffix
}
