package spec

import "strings"

// OpenAPI is the part of a modern-dialect document the checks read.
type OpenAPI struct {
	OpenAPI    string                    `yaml:"openapi"`
	Servers    []Server                  `yaml:"servers"`
	Paths      map[string]map[string]any `yaml:"paths"`
	Components Components                `yaml:"components"`
	Tags       []map[string]any          `yaml:"tags"`
}

// Server is one entry of the servers list.
type Server struct {
	URL string `yaml:"url"`
}

// Components holds reusable schema definitions keyed by short name.
type Components struct {
	Schemas map[string]Schema `yaml:"schemas"`
}

// BasePath returns the path component of the first server URL, or "" when
// no server is declared. Relative URLs are used as they are. The URL is split
// as text since server variables ({host}, {port}) do not parse as URLs.
func (o *OpenAPI) BasePath() string {
	if len(o.Servers) == 0 {
		return ""
	}
	raw := o.Servers[0].URL
	_, rest, ok := strings.Cut(raw, "://")
	if !ok {
		return raw
	}
	if i := strings.IndexByte(rest, '/'); i >= 0 {
		return rest[i:]
	}
	return ""
}

// PathItem is a converted modern path item. Field order is output order.
type PathItem struct {
	Parameters []Parameter `yaml:"parameters,omitempty"`
	Get        *Operation  `yaml:"get,omitempty"`
	Post       *Operation  `yaml:"post,omitempty"`
	Put        *Operation  `yaml:"put,omitempty"`
	Patch      *Operation  `yaml:"patch,omitempty"`
	Delete     *Operation  `yaml:"delete,omitempty"`
	Options    *Operation  `yaml:"options,omitempty"`
	Head       *Operation  `yaml:"head,omitempty"`
}

// Set stores op under method. Unknown methods are ignored.
func (p *PathItem) Set(method string, op *Operation) {
	switch strings.ToLower(method) {
	case "get":
		p.Get = op
	case "post":
		p.Post = op
	case "put":
		p.Put = op
	case "patch":
		p.Patch = op
	case "delete":
		p.Delete = op
	case "options":
		p.Options = op
	case "head":
		p.Head = op
	}
}

// Operations returns the present operations in Methods order.
func (p *PathItem) Operations() []MethodOperation[Operation] {
	all := []MethodOperation[Operation]{
		{"get", p.Get}, {"post", p.Post}, {"put", p.Put}, {"patch", p.Patch},
		{"delete", p.Delete}, {"options", p.Options}, {"head", p.Head},
	}
	out := all[:0]
	for _, mo := range all {
		if mo.Operation != nil {
			out = append(out, mo)
		}
	}
	return out
}

// Operation is a converted modern operation.
type Operation struct {
	Tags        []string            `yaml:"tags,omitempty"`
	Summary     *string             `yaml:"summary,omitempty"`
	Description *string             `yaml:"description,omitempty"`
	OperationID *string             `yaml:"operationId,omitempty"`
	Deprecated  *bool               `yaml:"deprecated,omitempty"`
	Parameters  []Parameter         `yaml:"parameters,omitempty"`
	RequestBody *RequestBody        `yaml:"requestBody,omitempty"`
	Responses   map[string]Response `yaml:"responses"`
}

// Parameter is a non-body modern parameter with its typing nested under schema.
type Parameter struct {
	Name        string `yaml:"name"`
	In          string `yaml:"in"`
	Description string `yaml:"description,omitempty"`
	Required    *bool  `yaml:"required,omitempty"`
	Deprecated  *bool  `yaml:"deprecated,omitempty"`
	Schema      Schema `yaml:"schema,omitempty"`
}

// RequestBody is the unified request body of an operation.
type RequestBody struct {
	Required bool                 `yaml:"required"`
	Content  map[string]MediaType `yaml:"content"`
}

// MediaType wraps a schema under a media type key.
type MediaType struct {
	Schema Schema `yaml:"schema"`
}

// Response is a converted modern response.
type Response struct {
	Description string               `yaml:"description"`
	Headers     map[string]Header    `yaml:"headers,omitempty"`
	Content     map[string]MediaType `yaml:"content,omitempty"`
}

// Header is a converted response header.
type Header struct {
	Description string `yaml:"description,omitempty"`
	Schema      Schema `yaml:"schema,omitempty"`
}
