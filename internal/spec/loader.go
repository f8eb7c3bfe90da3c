package spec

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// Dialect major versions accepted by the loaders.
const (
	SwaggerMajor = "v2"
	OpenAPIMajor = "v3"
)

// ErrStructure marks a document that parsed but lacks a required shape.
var ErrStructure = errors.New("invalid document structure")

// LoadError reports a document that could not be loaded. It is always fatal
// for the run.
type LoadError struct {
	Path   string
	Reason string
	Err    error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("load %s: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("load %s: %s", e.Path, e.Reason)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// LoadSwagger reads the generated legacy document at path. The document must
// be a mapping with a paths key; when it declares a swagger version that
// version must be 2.x.
func LoadSwagger(path string) (*Swagger, error) {
	doc, err := LoadDocument(path)
	if err != nil {
		return nil, err
	}
	return doc.Swagger()
}

// LoadOpenAPI reads a modern document at path. The document must declare an
// openapi 3.x version.
func LoadOpenAPI(path string) (*OpenAPI, error) {
	doc, err := LoadDocument(path)
	if err != nil {
		return nil, err
	}
	return doc.OpenAPI()
}

// LoadDocument reads and parses the YAML (or JSON) document at path.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Reason: "read failed", Err: err}
	}
	doc, err := ParseDocument(data)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.Path = path
			return nil, le
		}
		return nil, &LoadError{Path: path, Reason: "parse failed", Err: err}
	}
	doc.path = path
	return doc, nil
}

// ParseDocument parses data into a Document. The top level must be a mapping.
func ParseDocument(data []byte) (*Document, error) {
	var root yaml.Node
	dec := yaml.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&root); err != nil {
		return nil, &LoadError{Reason: "parse failed", Err: err}
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 || root.Content[0].Kind != yaml.MappingNode {
		return nil, &LoadError{Reason: "top level is not a mapping", Err: ErrStructure}
	}
	return &Document{root: &root}, nil
}

// Swagger decodes the document as the legacy dialect.
func (d *Document) Swagger() (*Swagger, error) {
	if err := d.require("paths"); err != nil {
		return nil, err
	}
	var sw Swagger
	if err := d.root.Decode(&sw); err != nil {
		return nil, d.fail("decode failed", err)
	}
	if sw.Swagger != "" {
		if err := CheckVersion(sw.Swagger, SwaggerMajor); err != nil {
			return nil, d.fail("unsupported swagger version", err)
		}
	}
	return &sw, nil
}

// OpenAPI decodes the document as the modern dialect.
func (d *Document) OpenAPI() (*OpenAPI, error) {
	if err := d.require("openapi"); err != nil {
		return nil, err
	}
	var oas OpenAPI
	if err := d.root.Decode(&oas); err != nil {
		return nil, d.fail("decode failed", err)
	}
	if err := CheckVersion(oas.OpenAPI, OpenAPIMajor); err != nil {
		return nil, d.fail("unsupported openapi version", err)
	}
	return &oas, nil
}

// CheckVersion verifies that a dialect version string ("2.0", "3.1.0")
// belongs to the wanted semver major ("v2", "v3").
func CheckVersion(version, major string) error {
	v := "v" + strings.TrimPrefix(strings.TrimSpace(version), "v")
	if !semver.IsValid(v) {
		return fmt.Errorf("%w: %q is not a version", ErrStructure, version)
	}
	if got := semver.Major(v); got != major {
		return fmt.Errorf("%w: version %s has major %s, want %s", ErrStructure, version, got, major)
	}
	return nil
}

func (d *Document) require(keys ...string) error {
	for _, key := range keys {
		if !d.Has(key) {
			return d.fail(fmt.Sprintf("missing top-level key %q", key), ErrStructure)
		}
	}
	return nil
}

func (d *Document) fail(reason string, err error) error {
	return &LoadError{Path: d.path, Reason: reason, Err: err}
}
