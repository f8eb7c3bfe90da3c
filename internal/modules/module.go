// Package modules attributes routes and schema definitions to the logical API
// modules the public documents are split by.
package modules

import "strings"

// Module is a logical API grouping.
type Module string

const (
	Authn    Module = "authn"
	Identity Module = "identity"
	Authz    Module = "authz"
	Idp      Module = "idp"
	Unknown  Module = "unknown"
)

// All lists the known modules in report order. Unknown is not part of it.
var All = []Module{Authn, Identity, Authz, Idp}

// Parse maps a module name to its tag; anything unrecognised is Unknown.
func Parse(name string) Module {
	for _, m := range All {
		if string(m) == name {
			return m
		}
	}
	return Unknown
}

// String implements fmt.Stringer.
func (m Module) String() string {
	return string(m)
}

// ForRoute classifies an already remapped path. Every input maps to exactly
// one module; Unknown is the catch-all.
func ForRoute(path string) Module {
	switch {
	case strings.HasPrefix(path, "/.well-known/") || strings.HasPrefix(path, "/authn/"):
		return Authn
	case strings.HasPrefix(path, "/authz/"):
		return Authz
	case strings.HasPrefix(path, "/identity/"):
		return Identity
	case strings.HasPrefix(path, "/idp/"):
		return Idp
	default:
		return Unknown
	}
}

// schemaMarkers are the substrings the generator leaves in fully-qualified
// definition names. Identity definitions come from the user-center package,
// hence "uc_restful".
var schemaMarkers = []struct {
	module Module
	marker string
}{
	{Authn, "authn"},
	{Identity, "uc_restful"},
	{Authz, "authz"},
	{Idp, "idp_restful"},
}

// ForSchema returns every module whose marker appears in the fully-qualified
// definition name, in report order. Markers are not disjoint, so a name can
// belong to several modules; a name matching none yields an empty slice.
func ForSchema(name string) []Module {
	var out []Module
	for _, sm := range schemaMarkers {
		if strings.Contains(name, sm.marker) {
			out = append(out, sm.module)
		}
	}
	return out
}

// Group partitions definitions by module using ForSchema. A definition lands
// in every group it matches. Every known module has an entry, possibly empty.
func Group[V any](defs map[string]V) map[Module]map[string]V {
	groups := make(map[Module]map[string]V, len(All))
	for _, m := range All {
		groups[m] = make(map[string]V)
	}
	for name, def := range defs {
		for _, m := range ForSchema(name) {
			groups[m][name] = def
		}
	}
	return groups
}
