package converter

import (
	"strings"

	"github.com/gaborage/apicontract/internal/spec"
)

// Reference prefixes of the two dialects.
const (
	LegacyRefPrefix = "#/definitions/"
	ModernRefPrefix = "#/components/schemas/"
)

// RewriteRef maps a legacy definitions reference to the components location
// of the same name. Any other reference is returned unchanged.
func RewriteRef(ref string) string {
	if name, ok := strings.CutPrefix(ref, LegacyRefPrefix); ok {
		return ModernRefPrefix + name
	}
	return ref
}

// RewriteRefs returns a deep copy of v with every "$ref" string rewritten by
// RewriteRef, at any depth of nested mappings and sequences. Scalars are
// returned as they are.
func RewriteRefs(v any) any {
	return rewrite(v, nil)
}

// rewrite is RewriteRefs that also records, when refs is non-nil, the name of
// every components reference it leaves behind.
func rewrite(v any, refs map[string]struct{}) any {
	switch t := v.(type) {
	case map[string]any:
		return rewriteMap(t, refs)
	case spec.Schema:
		return spec.Schema(rewriteMap(t, refs))
	case spec.SwaggerParameter:
		return rewriteMap(t, refs)
	case map[any]any:
		out := make(map[any]any, len(t))
		for k, val := range t {
			if ks, ok := k.(string); ok && ks == "$ref" {
				out[k] = rewriteRefValue(val, refs)
				continue
			}
			out[k] = rewrite(val, refs)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = rewrite(val, refs)
		}
		return out
	default:
		return v
	}
}

func rewriteMap(m map[string]any, refs map[string]struct{}) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, val := range m {
		if k == "$ref" {
			out[k] = rewriteRefValue(val, refs)
			continue
		}
		out[k] = rewrite(val, refs)
	}
	return out
}

func rewriteRefValue(v any, refs map[string]struct{}) any {
	ref, ok := v.(string)
	if !ok {
		return rewrite(v, refs)
	}
	ref = RewriteRef(ref)
	if refs != nil {
		if name, ok := strings.CutPrefix(ref, ModernRefPrefix); ok {
			refs[name] = struct{}{}
		}
	}
	return ref
}

// schemaOf rewrites v and returns it as a schema when it is a mapping.
func schemaOf(v any, refs map[string]struct{}) spec.Schema {
	switch t := rewrite(v, refs).(type) {
	case map[string]any:
		return t
	case spec.Schema:
		return t
	default:
		return nil
	}
}
