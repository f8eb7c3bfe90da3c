package paths

import "strings"

// JWKSPath is the public key discovery endpoint. It keeps its root location
// in every document.
const JWKSPath = "/.well-known/jwks.json"

// Remap rewrites a raw generated-document path into the layout used by the
// public module documents. Rules are checked in order and the first match
// wins; paths matching no rule are returned unchanged.
func Remap(path string) string {
	switch {
	case path == JWKSPath:
		return path
	case strings.HasPrefix(path, "/admin/jwks/"):
		return "/authn" + path
	case strings.HasPrefix(path, "/auth/"):
		return "/authn" + strings.TrimPrefix(path, "/auth")
	case path == "/accounts" || strings.HasPrefix(path, "/accounts/"):
		return "/authn" + path
	case strings.HasPrefix(path, "/authz/") || strings.HasPrefix(path, "/idp/"):
		return path
	case hasAnyPrefix(path, "/children", "/guardians", "/me", "/users"):
		return "/identity" + path
	default:
		return path
	}
}

func hasAnyPrefix(s string, prefixes ...string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
