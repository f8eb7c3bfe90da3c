package config

import "path/filepath"

// Module document keys, in the order reports list them.
const (
	SpecAuthn    = "authn"
	SpecIdentity = "identity"
	SpecAuthz    = "authz"
	SpecIdp      = "idp"
)

// Config holds the locations of the contract documents and the tool's own settings.
type Config struct {
	Root    string       `koanf:"root" json:"root" yaml:"root" mapstructure:"root" validate:"required"`
	Swagger string       `koanf:"swagger" json:"swagger" yaml:"swagger" mapstructure:"swagger" validate:"required"`
	Specs   SpecsConfig  `koanf:"specs" json:"specs" yaml:"specs" mapstructure:"specs"`
	Routes  RoutesConfig `koanf:"routes" json:"routes" yaml:"routes" mapstructure:"routes"`
	Log     LogConfig    `koanf:"log" json:"log" yaml:"log" mapstructure:"log"`
}

// SpecsConfig points at the four hand-maintained public documents, one per module.
type SpecsConfig struct {
	Authn    string `koanf:"authn" json:"authn" yaml:"authn" mapstructure:"authn" validate:"required"`
	Identity string `koanf:"identity" json:"identity" yaml:"identity" mapstructure:"identity" validate:"required"`
	Authz    string `koanf:"authz" json:"authz" yaml:"authz" mapstructure:"authz" validate:"required"`
	Idp      string `koanf:"idp" json:"idp" yaml:"idp" mapstructure:"idp" validate:"required"`
}

// RoutesConfig holds route comparison settings.
type RoutesConfig struct {
	// Ignore lists "<method> <path>" keys that are expected on one side only.
	// Keys are normalized before use.
	Ignore []string `koanf:"ignore" json:"ignore" yaml:"ignore" mapstructure:"ignore" validate:"dive,required"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `koanf:"level" json:"level" yaml:"level" mapstructure:"level" validate:"oneof=debug info warn error"`
	Pretty bool   `koanf:"pretty" json:"pretty" yaml:"pretty" mapstructure:"pretty"`
}

// SpecFile binds a module name to the resolved location of its document.
type SpecFile struct {
	Module string
	Path   string
}

// SpecFiles returns the module documents in report order with paths resolved against Root.
func (c *Config) SpecFiles() []SpecFile {
	return []SpecFile{
		{Module: SpecAuthn, Path: c.Resolve(c.Specs.Authn)},
		{Module: SpecIdentity, Path: c.Resolve(c.Specs.Identity)},
		{Module: SpecAuthz, Path: c.Resolve(c.Specs.Authz)},
		{Module: SpecIdp, Path: c.Resolve(c.Specs.Idp)},
	}
}

// SwaggerPath returns the generated document location resolved against Root.
func (c *Config) SwaggerPath() string {
	return c.Resolve(c.Swagger)
}

// Resolve makes p absolute relative to Root unless it already is.
func (c *Config) Resolve(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.Root, p)
}
