// Package config provides reading and writing of wistopics configuration.
// Supports both global (~/.wistopics/config.yaml) and local
// (.wistopics/config.yaml). Reading: uses local if it exists, otherwise
// global. Writing: defaults to global, use --local for local.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var (
	// ErrNoConfigPath is returned when the config path cannot be determined.
	ErrNoConfigPath = errors.New("cannot determine config path")
	// ErrUnknownKey is returned when getting/setting an unknown config key.
	ErrUnknownKey = errors.New("unknown config key")
	// ErrInvalidValue is returned when a config value is invalid.
	ErrInvalidValue = errors.New("invalid config value")
)

// Scope represents the configuration scope (global or local).
type Scope int

const (
	// ScopeGlobal is user-wide config in ~/.wistopics/config.yaml (default)
	ScopeGlobal Scope = iota
	// ScopeLocal is directory-specific config in .wistopics/config.yaml
	ScopeLocal
)

// Default bundle sources. These are the published WMO topic hierarchy
// bundle and the IANA TLD registry.
const (
	DefaultTopicURL = "https://wmo-im.github.io/wis2-topic-hierarchy/wth-bundle.zip"
	DefaultTLDURL   = "https://data.iana.org/TLD/tlds-alpha-by-domain.txt"
)

// Tables holds reference-table location options.
type Tables struct {
	Dir string `yaml:"dir,omitempty"`
}

// Bundle holds bundle download options.
type Bundle struct {
	TopicURL string `yaml:"topic_url,omitempty" validate:"omitempty,url"`
	TLDURL   string `yaml:"tld_url,omitempty" validate:"omitempty,url"`
}

// Config contains configuration for wistopics.
type Config struct {
	Tables Tables `yaml:"tables,omitempty"`
	Bundle Bundle `yaml:"bundle,omitempty"`

	// path is the file this config was loaded from (for Save)
	path  string
	scope Scope
}

// Validate checks that all configured values are acceptable.
// Returns nil if all values are valid or not set (defaults will be used).
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}
	return nil
}

// TablesDir returns the configured bundle directory, or the empty string
// when the default location should be used.
func (c *Config) TablesDir() string {
	return c.Tables.Dir
}

// TopicURL returns the topic hierarchy bundle URL.
func (c *Config) TopicURL() string {
	if c.Bundle.TopicURL == "" {
		return DefaultTopicURL
	}
	return c.Bundle.TopicURL
}

// TLDURL returns the IANA TLD registry URL.
func (c *Config) TLDURL() string {
	if c.Bundle.TLDURL == "" {
		return DefaultTLDURL
	}
	return c.Bundle.TLDURL
}

// LocalPath returns the path to the local config file.
func LocalPath() string {
	return filepath.Join(".wistopics", "config.yaml")
}

// GlobalPath returns the path to the global (user) config file:
// ~/.wistopics/config.yaml
func GlobalPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".wistopics", "config.yaml")
}

// Load reads configuration: uses local if it exists, otherwise global.
func Load() (*Config, error) {
	if _, err := os.Stat(LocalPath()); err == nil {
		return LoadScope(ScopeLocal)
	}
	return LoadScope(ScopeGlobal)
}

// LoadScope reads configuration from a specific scope.
func LoadScope(scope Scope) (*Config, error) {
	path := pathForScope(scope)
	if path == "" {
		return &Config{scope: scope}, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{path: path, scope: scope}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("malformed config file %s: %w\n\nTo fix: edit the file to correct the YAML syntax, or delete it to use defaults", path, err)
	}
	cfg.path = path
	cfg.scope = scope

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return &cfg, nil
}

// Scope returns which scope this config was loaded from.
func (c *Config) Scope() Scope {
	return c.scope
}

// Save writes the configuration to its original location.
func (c *Config) Save() error {
	if c.path == "" {
		c.path = pathForScope(c.scope)
	}
	if c.path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(c.path)
}

// SaveScope writes the configuration to the specified scope.
func (c *Config) SaveScope(scope Scope) error {
	path := pathForScope(scope)
	if path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(path)
}

// saveToPath writes configuration to a specific filesystem path.
// Creates parent directories as needed with mode 0755.
func (c *Config) saveToPath(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// pathForScope returns the filesystem path for a given scope.
func pathForScope(scope Scope) string {
	switch scope {
	case ScopeLocal:
		return LocalPath()
	case ScopeGlobal:
		return GlobalPath()
	default:
		return ""
	}
}
