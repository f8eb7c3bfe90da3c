package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	envprovider "github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// FileName is the optional per-repository configuration file looked up under the root.
	FileName = ".apicontract.yaml"
	// EnvPrefix scopes environment overrides, e.g. APICONTRACT_LOG_LEVEL=debug.
	EnvPrefix = "APICONTRACT_"
)

// Load loads configuration from multiple sources with priority:
// 1. Environment variables (highest priority)
// 2. <root>/.apicontract.yaml
// 3. Default values (lowest priority)
//
// An empty root means the current directory.
func Load(root string) (*Config, error) {
	k := koanf.New(".")

	if err := loadDefaults(k); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if root == "" {
		root = os.Getenv(EnvPrefix + "ROOT")
	}
	if root == "" {
		root = k.String("root")
	}

	// The config file is optional; only a present but unreadable one fails.
	cfgFile := filepath.Join(root, FileName)
	if _, err := os.Stat(cfgFile); err == nil {
		if err := k.Load(file.Provider(cfgFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", cfgFile, err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to stat %s: %w", cfgFile, err)
	}

	if err := k.Load(envprovider.Provider(EnvPrefix, ".", func(s string) string {
		// APICONTRACT_LOG_LEVEL -> log.level
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	// An explicit root argument wins over every other source.
	if err := k.Set("root", root); err != nil {
		return nil, fmt.Errorf("failed to set root: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func loadDefaults(k *koanf.Koanf) error {
	defaults := map[string]any{
		"root":    ".",
		"swagger": "internal/apiserver/docs/swagger.yaml",

		"specs.authn":    "api/rest/authn.v1.yaml",
		"specs.identity": "api/rest/identity.v1.yaml",
		"specs.authz":    "api/rest/authz.v1.yaml",
		"specs.idp":      "api/rest/idp.v1.yaml",

		"routes.ignore": []string{
			"get /v1/authz/health",
			"get /v1/idp/health",
		},

		"log.level":  "warn",
		"log.pretty": false,
	}

	return k.Load(confmap.Provider(defaults, "."), nil)
}
