package spec

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const destination = `openapi: 3.1.0
info:
  title: Authn API
  version: 1.0.0
servers:
  - url: https://api.example.com/api/v1
tags:
  - name: auth
    description: Authentication
  - bare-string
  - name: auth
paths:
  /old: {}
components:
  securitySchemes:
    bearer:
      type: http
      scheme: bearer
  schemas:
    Old:
      type: object
`

func topLevelKeys(t *testing.T, data []byte) []string {
	t.Helper()
	var root yaml.Node
	require.NoError(t, yaml.Unmarshal(data, &root))
	m := root.Content[0]
	keys := make([]string, 0, len(m.Content)/2)
	for i := 0; i < len(m.Content); i += 2 {
		keys = append(keys, m.Content[i].Value)
	}
	return keys
}

func TestDocumentTargetedMerge(t *testing.T) {
	doc, err := ParseDocument([]byte(destination))
	require.NoError(t, err)

	require.NoError(t, doc.Set("paths", map[string]any{"/new": map[string]any{}}))
	require.NoError(t, doc.SetIn([]string{"components", "schemas"}, map[string]Schema{"New": {"type": "string"}}))
	require.NoError(t, doc.MergeTags([]string{"accounts", "auth"}))

	data, err := doc.Bytes()
	require.NoError(t, err)

	assert.Equal(t, []string{"openapi", "info", "servers", "tags", "paths", "components"}, topLevelKeys(t, data))

	var out map[string]any
	require.NoError(t, yaml.Unmarshal(data, &out))

	assert.Equal(t, map[string]any{"title": "Authn API", "version": "1.0.0"}, out["info"])
	assert.Equal(t, map[string]any{"/new": map[string]any{}}, out["paths"])

	components := out["components"].(map[string]any)
	assert.Contains(t, components, "securitySchemes")
	assert.Equal(t, map[string]any{"New": map[string]any{"type": "string"}}, components["schemas"])

	assert.Equal(t, []any{
		map[string]any{"name": "auth", "description": "Authentication"},
		map[string]any{"name": "accounts"},
	}, out["tags"])
}

func TestDocumentSetInCreatesMappings(t *testing.T) {
	doc, err := ParseDocument([]byte("openapi: 3.0.0\ncomponents: null\n"))
	require.NoError(t, err)

	require.NoError(t, doc.SetIn([]string{"components", "schemas"}, map[string]Schema{}))
	require.NoError(t, doc.MergeTags(nil))
	assert.True(t, doc.Has("tags"))
	assert.False(t, doc.Has("paths"))
	assert.Error(t, doc.SetIn(nil, 1))

	data, err := doc.Bytes()
	require.NoError(t, err)
	assert.Equal(t, []string{"openapi", "components", "tags"}, topLevelKeys(t, data))

	var out map[string]any
	require.NoError(t, yaml.Unmarshal(data, &out))
	assert.Equal(t, map[string]any{"schemas": map[string]any{}}, out["components"])
	assert.Equal(t, []any{}, out["tags"])
}

func TestDocumentWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "authn.v1.yaml")
	require.NoError(t, os.WriteFile(path, []byte(destination), 0o600))

	doc, err := LoadDocument(path)
	require.NoError(t, err)
	assert.Equal(t, path, doc.Path())
	require.NoError(t, doc.Set("paths", map[string]any{}))
	require.NoError(t, doc.WriteFile(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	reloaded, err := LoadOpenAPI(path)
	require.NoError(t, err)
	assert.Empty(t, reloaded.Paths)
	assert.Equal(t, "/api/v1", reloaded.BasePath())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary files left behind")
}
