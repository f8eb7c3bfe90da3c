package converter

import (
	"sort"

	"github.com/gaborage/apicontract/internal/spec"
)

// parameterSchemaKeys are the flat legacy typing keywords moved under a
// parameter's nested schema.
var parameterSchemaKeys = []string{
	"type", "format", "items", "enum", "default",
	"maximum", "minimum", "maxLength", "minLength", "pattern",
	"maxItems", "minItems", "uniqueItems", "multipleOf",
}

// headerSchemaKeys are the flat legacy typing keywords moved under a
// response header's nested schema.
var headerSchemaKeys = []string{"type", "format", "items", "enum", "default"}

// BodyConflict records an operation that declares more than one body-style
// parameter. Only Kept contributes to the request body.
type BodyConflict struct {
	Path    string
	Method  string
	Kept    string
	Dropped []string
}

// opConverter converts the operations of one path, recording the schema
// names referenced along the way.
type opConverter struct {
	path            string
	defaultProduces []string
	refs            map[string]struct{}
	conflicts       []BodyConflict
}

func (oc *opConverter) pathItem(item *spec.SwaggerPathItem) spec.PathItem {
	var out spec.PathItem
	for _, p := range item.Parameters {
		// Shared body parameters have no modern path-level equivalent.
		if p.In() == spec.InBody || p.In() == spec.InFormData {
			continue
		}
		out.Parameters = append(out.Parameters, oc.parameter(p))
	}
	for _, mo := range item.Operations() {
		out.Set(mo.Method, oc.operation(mo.Method, mo.Operation))
	}
	return out
}

func (oc *opConverter) operation(method string, op *spec.SwaggerOperation) *spec.Operation {
	out := &spec.Operation{
		Tags:        op.Tags,
		Summary:     op.Summary,
		Description: op.Description,
		OperationID: op.OperationID,
		Deprecated:  op.Deprecated,
	}

	mime := mediaType(op.Produces, oc.defaultProduces)

	// An "in: body" parameter always wins over form fields; among form
	// fields the last one wins.
	var (
		body     *spec.RequestBody
		bodyFrom string
		fromBody bool
		sources  []string
	)
	for _, p := range op.Parameters {
		switch p.In() {
		case spec.InBody:
			sources = append(sources, p.Name())
			body = &spec.RequestBody{
				Required: p.Required(),
				Content:  map[string]spec.MediaType{mime: {Schema: oc.bodySchema(p)}},
			}
			bodyFrom, fromBody = p.Name(), true
		case spec.InFormData:
			sources = append(sources, p.Name())
			if fromBody {
				continue
			}
			body = &spec.RequestBody{
				Required: p.Required(),
				Content:  map[string]spec.MediaType{mime: {Schema: formSchema(p)}},
			}
			bodyFrom = p.Name()
		default:
			out.Parameters = append(out.Parameters, oc.parameter(p))
		}
	}
	out.RequestBody = body

	if len(sources) > 1 {
		oc.conflicts = append(oc.conflicts, BodyConflict{
			Path:    oc.path,
			Method:  method,
			Kept:    bodyFrom,
			Dropped: without(sources, bodyFrom),
		})
	}

	out.Responses = oc.responses(op.Responses, mime)
	return out
}

func (oc *opConverter) bodySchema(p spec.SwaggerParameter) spec.Schema {
	s := schemaOf(p["schema"], oc.refs)
	if s == nil {
		s = spec.Schema{}
	}
	return s
}

// formSchema keeps only the one named form field.
func formSchema(p spec.SwaggerParameter) spec.Schema {
	typ := p.Type()
	if typ == "" {
		typ = "string"
	}
	return spec.Schema{
		"type": "object",
		"properties": map[string]any{
			p.Name(): map[string]any{"type": typ},
		},
	}
}

func (oc *opConverter) parameter(p spec.SwaggerParameter) spec.Parameter {
	out := spec.Parameter{Name: p.Name(), In: p.In()}
	if d, ok := p["description"].(string); ok {
		out.Description = d
	}
	if r, ok := p["required"].(bool); ok {
		out.Required = &r
	}
	if d, ok := p["deprecated"].(bool); ok {
		out.Deprecated = &d
	}
	out.Schema = oc.flatSchema(p, parameterSchemaKeys)
	return out
}

// flatSchema assembles a nested schema from an explicit "schema" entry and
// the listed flat keywords, the latter winning on a clash.
func (oc *opConverter) flatSchema(src map[string]any, keys []string) spec.Schema {
	schema := spec.Schema{}
	if nested := schemaOf(src["schema"], oc.refs); nested != nil {
		for k, v := range nested {
			schema[k] = v
		}
	}
	for _, key := range keys {
		if v, ok := src[key]; ok {
			schema[key] = rewrite(v, oc.refs)
		}
	}
	if len(schema) == 0 {
		return nil
	}
	return schema
}

func (oc *opConverter) responses(in map[string]spec.SwaggerResponse, mime string) map[string]spec.Response {
	out := make(map[string]spec.Response, len(in))
	for code, resp := range in {
		item := spec.Response{}
		if resp.Description != nil {
			item.Description = *resp.Description
		}
		if resp.Headers != nil {
			item.Headers = oc.headers(resp.Headers)
		}
		if resp.Schema != nil {
			item.Content = map[string]spec.MediaType{
				mime: {Schema: schemaOf(resp.Schema, oc.refs)},
			}
		}
		out[code] = item
	}
	return out
}

func (oc *opConverter) headers(in map[string]spec.SwaggerParameter) map[string]spec.Header {
	out := make(map[string]spec.Header, len(in))
	for name, h := range in {
		hdr := spec.Header{Schema: oc.flatSchema(h, headerSchemaKeys)}
		if d, ok := h["description"].(string); ok {
			hdr.Description = d
		}
		out[name] = hdr
	}
	return out
}

// mediaType picks the first entry of the operation's list, else of the
// document's list, else DefaultMediaType.
func mediaType(opProduces, docProduces []string) string {
	switch {
	case len(opProduces) > 0:
		return opProduces[0]
	case len(docProduces) > 0:
		return docProduces[0]
	default:
		return DefaultMediaType
	}
}

func without(names []string, drop string) []string {
	out := make([]string, 0, len(names))
	removed := false
	for _, n := range names {
		if n == drop && !removed {
			removed = true
			continue
		}
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
