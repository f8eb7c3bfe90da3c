package paths

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "root", input: "/", expected: "/"},
		{name: "empty", input: "", expected: "/"},
		{name: "adds_leading_slash", input: "v1/users", expected: "/v1/users"},
		{name: "strips_api_prefix", input: "/api/v1/users", expected: "/v1/users"},
		{name: "keeps_api_lookalike", input: "/apis/v1", expected: "/apis/v1"},
		{name: "bare_api", input: "/api", expected: "/api"},
		{name: "api_root", input: "/api/", expected: "/"},
		{name: "nested_api_prefix", input: "/api/api/v1/x", expected: "/v1/x"},
		{name: "well_known_is_versionless", input: "/api/v1/.well-known/jwks.json", expected: "/.well-known/jwks.json"},
		{name: "collapses_slashes", input: "/v1//authn///login", expected: "/v1/authn/login"},
		{name: "strips_trailing_slash", input: "/v1/users/", expected: "/v1/users"},
		{name: "placeholders", input: "/v1/users/{id}/roles/{roleId}", expected: "/v1/users/{}/roles/{}"},
		{name: "unterminated_placeholder", input: "/v1/users/{id", expected: "/v1/users/{}"},
		{name: "double_slash_before_api", input: "//api/v1/me", expected: "/v1/me"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"/",
		"api",
		"/api/api/v1/x",
		"//api//v1//users//",
		"/api/",
		"/api/api",
		"/api//api/",
		"/x/{a/}/",
		"/a/{b/c/",
		"/v1/{/.well-known}",
		"/prefix/.well-known//openid-configuration/",
		"/v1/users/{userId}/children/{childId}",
	}

	for _, p := range inputs {
		once := Normalize(p)
		assert.Equal(t, once, Normalize(once), "input %q", p)
	}
}

func TestNormalizeIgnoresParameterNames(t *testing.T) {
	assert.Equal(t, Normalize("/users/{id}"), Normalize("/users/{userId}"))
	assert.Equal(t, Normalize("/api/v1/authz/roles/{role_id}/"), Normalize("/v1/authz/roles/{id}"))
}

func TestRemap(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "/.well-known/jwks.json", expected: "/.well-known/jwks.json"},
		{input: "/.well-known/openid-configuration", expected: "/.well-known/openid-configuration"},
		{input: "/admin/jwks/rotate", expected: "/authn/admin/jwks/rotate"},
		{input: "/auth/login", expected: "/authn/login"},
		{input: "/auth/token/refresh", expected: "/authn/token/refresh"},
		{input: "/accounts", expected: "/authn/accounts"},
		{input: "/accounts/{id}", expected: "/authn/accounts/{id}"},
		{input: "/accountsx", expected: "/accountsx"},
		{input: "/authz/roles", expected: "/authz/roles"},
		{input: "/idp/wechat-apps", expected: "/idp/wechat-apps"},
		{input: "/children/{id}", expected: "/identity/children/{id}"},
		{input: "/guardians", expected: "/identity/guardians"},
		{input: "/me", expected: "/identity/me"},
		{input: "/users/{id}", expected: "/identity/users/{id}"},
		{input: "/health", expected: "/health"},
		{input: "/auth", expected: "/auth"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Remap(tt.input))
		})
	}
}
