package spec

// Swagger is the legacy-dialect document produced by the service's code
// generator.
type Swagger struct {
	Swagger     string                     `yaml:"swagger"`
	BasePath    string                     `yaml:"basePath"`
	Produces    []string                   `yaml:"produces"`
	Definitions map[string]Schema          `yaml:"definitions"`
	Paths       map[string]SwaggerPathItem `yaml:"paths"`
}

// SwaggerPathItem holds the operations of one raw path plus parameters
// shared by all of them.
type SwaggerPathItem struct {
	Parameters []SwaggerParameter `yaml:"parameters"`
	Get        *SwaggerOperation  `yaml:"get"`
	Post       *SwaggerOperation  `yaml:"post"`
	Put        *SwaggerOperation  `yaml:"put"`
	Patch      *SwaggerOperation  `yaml:"patch"`
	Delete     *SwaggerOperation  `yaml:"delete"`
	Options    *SwaggerOperation  `yaml:"options"`
	Head       *SwaggerOperation  `yaml:"head"`
}

// MethodOperation pairs a lower-case HTTP method with its operation.
type MethodOperation[T any] struct {
	Method    string
	Operation *T
}

// Operations returns the present operations in Methods order.
func (p *SwaggerPathItem) Operations() []MethodOperation[SwaggerOperation] {
	all := []MethodOperation[SwaggerOperation]{
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

// SwaggerOperation is one legacy operation. Scalar fields are pointers so a
// declared empty string or an explicit false is carried over.
type SwaggerOperation struct {
	Tags        []string                   `yaml:"tags"`
	Summary     *string                    `yaml:"summary"`
	Description *string                    `yaml:"description"`
	OperationID *string                    `yaml:"operationId"`
	Deprecated  *bool                      `yaml:"deprecated"`
	Produces    []string                   `yaml:"produces"`
	Parameters  []SwaggerParameter         `yaml:"parameters"`
	Responses   map[string]SwaggerResponse `yaml:"responses"`
}

// Parameter locations of the legacy dialect.
const (
	InBody     = "body"
	InFormData = "formData"
)

// SwaggerParameter is a legacy parameter. Its typing is flat (type, format,
// items, enum and constraint keywords sit beside name and in), so it is kept
// as a raw map.
type SwaggerParameter map[string]any

// Name returns the parameter name, or "" when absent.
func (p SwaggerParameter) Name() string { return p.str("name") }

// In returns the parameter location.
func (p SwaggerParameter) In() string { return p.str("in") }

// Type returns the declared primitive type, or "" when absent.
func (p SwaggerParameter) Type() string { return p.str("type") }

// Required reports the required flag, false when absent.
func (p SwaggerParameter) Required() bool {
	v, _ := p["required"].(bool)
	return v
}

func (p SwaggerParameter) str(key string) string {
	v, _ := p[key].(string)
	return v
}

// SwaggerResponse is one legacy response.
type SwaggerResponse struct {
	Description *string                     `yaml:"description"`
	Headers     map[string]SwaggerParameter `yaml:"headers"`
	Schema      Schema                      `yaml:"schema"`
}
