// Package spec reads and writes the API documents the contract tooling works
// on: the generated legacy-dialect document and the per-module modern-dialect
// documents.
package spec

import (
	"sort"
	"strings"
)

// Schema is a schema body kept as decoded so unknown keywords survive a
// round trip.
type Schema map[string]any

// PropertyNames returns the sorted names under "properties".
func (s Schema) PropertyNames() []string {
	props, _ := s["properties"].(map[string]any)
	names := make([]string, 0, len(props))
	for name := range props {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Required returns the sorted, de-duplicated "required" field names.
// Non-string entries are ignored.
func (s Schema) Required() []string {
	raw, _ := s["required"].([]any)
	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		name, ok := v.(string)
		if !ok {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Methods lists the HTTP methods a path item may carry, in output order.
var Methods = []string{"get", "post", "put", "patch", "delete", "options", "head"}

// IsMethod reports whether key names an HTTP method (case-insensitive).
func IsMethod(key string) bool {
	for _, m := range Methods {
		if strings.EqualFold(key, m) {
			return true
		}
	}
	return false
}
