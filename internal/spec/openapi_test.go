package spec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBasePath(t *testing.T) {
	tests := []struct {
		name     string
		servers  []Server
		expected string
	}{
		{name: "no_servers", expected: ""},
		{name: "absolute", servers: []Server{{URL: "https://api.example.com/api/v1"}}, expected: "/api/v1"},
		{name: "absolute_without_path", servers: []Server{{URL: "https://api.example.com"}}, expected: ""},
		{name: "host_variable", servers: []Server{{URL: "https://{host}/api/v1"}}, expected: "/api/v1"},
		{name: "scheme_variable", servers: []Server{{URL: "{scheme}://iam.example.com/api/v1"}}, expected: "/api/v1"},
		{name: "port_variable", servers: []Server{{URL: "https://iam.example.com:{port}/api/v1"}}, expected: "/api/v1"},
		{name: "relative", servers: []Server{{URL: "/v1"}}, expected: "/v1"},
		{name: "first_wins", servers: []Server{{URL: "/v1"}, {URL: "/v2"}}, expected: "/v1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := &OpenAPI{Servers: tt.servers}
			assert.Equal(t, tt.expected, o.BasePath())
		})
	}
}

func TestPathItemSet(t *testing.T) {
	var item PathItem
	get := &Operation{Tags: []string{"get"}}
	del := &Operation{Tags: []string{"delete"}}
	item.Set("GET", get)
	item.Set("delete", del)
	item.Set("trace", &Operation{})

	ops := item.Operations()
	assert.Len(t, ops, 2)
	assert.Equal(t, "get", ops[0].Method)
	assert.Same(t, get, ops[0].Operation)
	assert.Equal(t, "delete", ops[1].Method)
}

func TestSchemaHelpers(t *testing.T) {
	s := Schema{
		"properties": map[string]any{"b": nil, "a": nil},
		"required":   []any{"b", "a", "b", 3},
	}
	assert.Equal(t, []string{"a", "b"}, s.PropertyNames())
	assert.Equal(t, []string{"a", "b"}, s.Required())

	empty := Schema{}
	assert.Empty(t, empty.PropertyNames())
	assert.Empty(t, empty.Required())
}

func TestIsMethod(t *testing.T) {
	assert.True(t, IsMethod("get"))
	assert.True(t, IsMethod("PATCH"))
	assert.False(t, IsMethod("parameters"))
	assert.False(t, IsMethod("x-internal"))
}
