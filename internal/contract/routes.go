package contract

import (
	"sort"
	"strings"

	"github.com/gaborage/apicontract/internal/paths"
	"github.com/gaborage/apicontract/internal/spec"
)

// RouteKey identifies a route as "<method> <normalized path>".
type RouteKey string

// NewRouteKey builds the key for method and a raw path template.
func NewRouteKey(method, path string) RouteKey {
	return RouteKey(strings.ToLower(method) + " " + paths.Normalize(path))
}

// ParseRouteKey normalizes a hand-written "<method> <path>" string, such as an
// allow-list entry. A string without a space is treated as a bare path.
func ParseRouteKey(s string) RouteKey {
	method, path, ok := strings.Cut(strings.TrimSpace(s), " ")
	if !ok {
		return RouteKey(paths.Normalize(method))
	}
	return NewRouteKey(method, strings.TrimSpace(path))
}

// RouteSet is a set of route keys.
type RouteSet map[RouteKey]struct{}

// Add inserts k.
func (s RouteSet) Add(k RouteKey) {
	s[k] = struct{}{}
}

// Has reports whether k is in the set.
func (s RouteSet) Has(k RouteKey) bool {
	_, ok := s[k]
	return ok
}

// Union adds every key of other.
func (s RouteSet) Union(other RouteSet) {
	for k := range other {
		s[k] = struct{}{}
	}
}

// GeneratedRoutes collects the routes of the legacy document, each path
// prefixed with its base path before normalization.
func GeneratedRoutes(sw *spec.Swagger) RouteSet {
	out := make(RouteSet)
	for p, item := range sw.Paths {
		for _, mo := range item.Operations() {
			out.Add(NewRouteKey(mo.Method, sw.BasePath+p))
		}
	}
	return out
}

// DeclaredRoutes collects the routes of one modern document, each path
// prefixed with the first server's path before normalization.
func DeclaredRoutes(oas *spec.OpenAPI) RouteSet {
	base := oas.BasePath()
	out := make(RouteSet)
	for p, item := range oas.Paths {
		for method := range item {
			if !spec.IsMethod(method) {
				continue
			}
			out.Add(NewRouteKey(method, base+p))
		}
	}
	return out
}

// RouteDiff is the presence asymmetry between generated and declared routes.
type RouteDiff struct {
	// MissingInCode are declared routes the service does not expose.
	MissingInCode []RouteKey
	// Undocumented are exposed routes no public document declares.
	Undocumented []RouteKey
}

// Empty reports whether both sides agree.
func (d RouteDiff) Empty() bool {
	return len(d.MissingInCode) == 0 && len(d.Undocumented) == 0
}

// CompareRoutes computes declared - generated and generated - declared, both
// minus ignore, each sorted.
func CompareRoutes(generated, declared, ignore RouteSet) RouteDiff {
	return RouteDiff{
		MissingInCode: minus(declared, generated, ignore),
		Undocumented:  minus(generated, declared, ignore),
	}
}

func minus(a, b, ignore RouteSet) []RouteKey {
	var out []RouteKey
	for k := range a {
		if b.Has(k) || ignore.Has(k) {
			continue
		}
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
