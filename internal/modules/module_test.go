package modules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForRoute(t *testing.T) {
	tests := []struct {
		path     string
		expected Module
	}{
		{path: "/.well-known/jwks.json", expected: Authn},
		{path: "/.well-known/openid-configuration", expected: Authn},
		{path: "/authn/login", expected: Authn},
		{path: "/authz/roles", expected: Authz},
		{path: "/identity/users/{id}", expected: Identity},
		{path: "/idp/wechat-apps", expected: Idp},
		{path: "/authn", expected: Unknown},
		{path: "/health", expected: Unknown},
		{path: "", expected: Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, ForRoute(tt.path))
		})
	}
}

func TestForSchema(t *testing.T) {
	tests := []struct {
		name     string
		expected []Module
	}{
		{name: "authn_interface_restful_request.LoginRequest", expected: []Module{Authn}},
		{name: "uc_restful_response.UserResponse", expected: []Module{Identity}},
		{name: "authz_interface_restful_dto.RoleResponse", expected: []Module{Authz}},
		{name: "idp_restful_request.CreateWechatAppRequest", expected: []Module{Idp}},
		{name: "core.ErrResponse", expected: nil},
		{name: "authn_authz_bridge.Token", expected: []Module{Authn, Authz}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ForSchema(tt.name))
		})
	}
}

func TestGroup(t *testing.T) {
	defs := map[string]int{
		"authn_request.Login":     1,
		"uc_restful_request.User": 2,
		"authn_authz_shared.Both": 3,
		"core.Error":              4,
	}

	groups := Group(defs)
	require.Len(t, groups, len(All))

	assert.Equal(t, map[string]int{"authn_request.Login": 1, "authn_authz_shared.Both": 3}, groups[Authn])
	assert.Equal(t, map[string]int{"uc_restful_request.User": 2}, groups[Identity])
	assert.Equal(t, map[string]int{"authn_authz_shared.Both": 3}, groups[Authz])
	assert.Empty(t, groups[Idp])
}

func TestParse(t *testing.T) {
	assert.Equal(t, Authz, Parse("authz"))
	assert.Equal(t, Unknown, Parse("billing"))
	assert.Equal(t, "idp", Idp.String())
}
