package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0o600))
}

func TestLoadWithDefaults(t *testing.T) {
	root := t.TempDir()

	cfg, err := Load(root)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, root, cfg.Root)
	assert.Equal(t, "internal/apiserver/docs/swagger.yaml", cfg.Swagger)
	assert.Equal(t, "api/rest/authn.v1.yaml", cfg.Specs.Authn)
	assert.Equal(t, "api/rest/identity.v1.yaml", cfg.Specs.Identity)
	assert.Equal(t, "api/rest/authz.v1.yaml", cfg.Specs.Authz)
	assert.Equal(t, "api/rest/idp.v1.yaml", cfg.Specs.Idp)
	assert.Equal(t, []string{"get /v1/authz/health", "get /v1/idp/health"}, cfg.Routes.Ignore)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.False(t, cfg.Log.Pretty)
}

func TestLoadFromFile(t *testing.T) {
	root := t.TempDir()
	writeConfigFile(t, root, `
swagger: docs/swagger.yaml
specs:
  idp: api/idp.yaml
routes:
  ignore:
    - get /v1/health
log:
  level: debug
`)

	cfg, err := Load(root)
	require.NoError(t, err)

	assert.Equal(t, "docs/swagger.yaml", cfg.Swagger)
	assert.Equal(t, "api/idp.yaml", cfg.Specs.Idp)
	assert.Equal(t, "api/rest/authn.v1.yaml", cfg.Specs.Authn)
	assert.Equal(t, []string{"get /v1/health"}, cfg.Routes.Ignore)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadWithEnvironmentVariables(t *testing.T) {
	root := t.TempDir()
	writeConfigFile(t, root, "log:\n  level: info\n")
	t.Setenv("APICONTRACT_LOG_LEVEL", "error")
	t.Setenv("APICONTRACT_SWAGGER", "gen/swagger.yaml")

	cfg, err := Load(root)
	require.NoError(t, err)

	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, "gen/swagger.yaml", cfg.Swagger)
}

func TestLoadRootFromEnvironment(t *testing.T) {
	root := t.TempDir()
	t.Setenv("APICONTRACT_ROOT", root)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, root, cfg.Root)
}

func TestLoadInvalidLevel(t *testing.T) {
	root := t.TempDir()
	writeConfigFile(t, root, "log:\n  level: loud\n")

	_, err := Load(root)
	require.Error(t, err)

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "invalid", cfgErr.Category)
	assert.Equal(t, "log.level", cfgErr.Field)
	assert.Contains(t, err.Error(), "must be one of: debug, info, warn, error")
}

func TestLoadMalformedFile(t *testing.T) {
	root := t.TempDir()
	writeConfigFile(t, root, "specs: [unterminated\n")

	_, err := Load(root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), FileName)
}

func TestResolvePaths(t *testing.T) {
	cfg := &Config{
		Root:    "/repo",
		Swagger: "docs/swagger.yaml",
		Specs: SpecsConfig{
			Authn:    "a.yaml",
			Identity: "/abs/identity.yaml",
			Authz:    "z.yaml",
			Idp:      "i.yaml",
		},
	}

	assert.Equal(t, "/repo/docs/swagger.yaml", cfg.SwaggerPath())

	files := cfg.SpecFiles()
	require.Len(t, files, 4)
	assert.Equal(t, SpecFile{Module: SpecAuthn, Path: "/repo/a.yaml"}, files[0])
	assert.Equal(t, SpecFile{Module: SpecIdentity, Path: "/abs/identity.yaml"}, files[1])
	assert.Equal(t, SpecAuthz, files[2].Module)
	assert.Equal(t, SpecIdp, files[3].Module)
	assert.Empty(t, cfg.Resolve(""))
}
