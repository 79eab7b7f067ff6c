package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/readme-preview/internal/foundation/errors"
)

// DefaultFileName is the project config file looked up in the working directory.
const DefaultFileName = ".readme-preview.yaml"

// Built-in defaults, also the defaults of the command-line flags.
const (
	DefaultFile         = "README.md"
	DefaultTheme        = "npm"
	DefaultTitle        = "README Preview"
	DefaultBranch       = "HEAD"
	DefaultPort         = 4173
	DefaultWorkflowName = "README Preview Check"
)

// Config holds project-level defaults for every command. Flags given on the
// command line take precedence over these values.
type Config struct {
	File         string `yaml:"file"`
	Theme        string `yaml:"theme"`
	Title        string `yaml:"title"`
	Branch       string `yaml:"branch"`
	BaseURL      string `yaml:"base_url,omitempty"`
	RewriteLinks bool   `yaml:"rewrite_links"`
	Port         int    `yaml:"port"`
	Strict       bool   `yaml:"strict"`
	WorkflowName string `yaml:"workflow_name"`
}

// Defaults returns the built-in configuration.
func Defaults() *Config {
	return &Config{
		File:         DefaultFile,
		Theme:        DefaultTheme,
		Title:        DefaultTitle,
		Branch:       DefaultBranch,
		Port:         DefaultPort,
		WorkflowName: DefaultWorkflowName,
	}
}

// Load reads the config file at path if it exists and falls back to defaults
// otherwise. Environment overrides are applied in both cases.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultFileName
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return finalize(Defaults())
	}
	return LoadFile(path)
}

// LoadFile reads a config file that must exist. ${VAR} references are
// expanded before parsing; keys absent from the file keep their defaults.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-selected config file
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundError("configuration file not found").WithContext("file", path).Build()
		}
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "failed to read config file").WithContext("file", path).Build()
	}

	cfg := Defaults()
	expanded := os.ExpandEnv(string(data))
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, errors.WrapError(err, errors.CategoryConfig, "failed to parse config file").WithContext("file", path).Build()
	}

	return finalize(cfg)
}

// finalize applies environment overrides and validates the result.
func finalize(cfg *Config) (*Config, error) {
	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that cannot be corrected later. Unknown themes are
// not rejected: rendering falls back to the default theme.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return errors.ConfigError("port must be between 1 and 65535").WithContext("port", c.Port).Build()
	}
	if c.File == "" {
		return errors.ConfigError("file must not be empty").Build()
	}
	return nil
}

// Init writes a config file populated with the defaults.
func Init(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return errors.NewError(errors.CategoryAlreadyExists, "configuration file already exists (use --force to overwrite)").
			WithContext("file", path).Build()
	}

	data, err := yaml.Marshal(Defaults())
	if err != nil {
		return errors.WrapError(err, errors.CategoryInternal, "failed to marshal config").Build()
	}

	// #nosec G306 -- project config is meant to be committed and readable
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to write config file").WithContext("file", path).Build()
	}
	return nil
}
