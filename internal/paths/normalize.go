// Package paths canonicalizes and remaps URL path templates shared by the
// generated and the hand-maintained API documents.
package paths

import "strings"

const (
	apiPrefix = "/api"
	wellKnown = "/.well-known"
)

// Normalize canonicalizes a path template for comparison. The result is a
// comparison key only: placeholders lose their names and it is never shown
// as a real path.
func Normalize(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	// Collapsing first keeps the result stable when fed back in.
	path = collapseSlashes(path)

	// Generated documents carry /api in their base path, public ones start at /v1.
	// The strip repeats so a result never starts with /api/ again.
	for strings.HasPrefix(path, apiPrefix+"/") {
		path = path[len(apiPrefix):]
	}

	// Discovery paths are version-less whatever precedes them.
	if idx := strings.Index(path, wellKnown); idx >= 0 {
		path = path[idx:]
	}

	if path != "/" && strings.HasSuffix(path, "/") {
		path = path[:len(path)-1]
	}
	if path == "" {
		path = "/"
	}

	return stripParamNames(path)
}

func collapseSlashes(path string) string {
	if !strings.Contains(path, "//") {
		return path
	}

	var b strings.Builder
	b.Grow(len(path))
	prevSlash := false
	for i := 0; i < len(path); i++ {
		c := path[i]
		if c == '/' {
			if prevSlash {
				continue
			}
			prevSlash = true
		} else {
			prevSlash = false
		}
		b.WriteByte(c)
	}
	return b.String()
}

// stripParamNames rewrites every {name} placeholder to {}. An unterminated
// brace swallows the rest of the path.
func stripParamNames(path string) string {
	if !strings.Contains(path, "{") {
		return path
	}

	var b strings.Builder
	b.Grow(len(path))
	for i := 0; i < len(path); i++ {
		if path[i] != '{' {
			b.WriteByte(path[i])
			continue
		}
		end := strings.IndexByte(path[i:], '}')
		b.WriteString("{}")
		if end < 0 {
			break
		}
		i += end
	}
	return b.String()
}
