// Package config provides reading and writing of behold configuration.
// Supports both global (~/.behold/config.yaml) and local (.behold/config.yaml).
// Reading: uses local if it exists, otherwise global.
// Writing: goes back to the file that was read, use --local for local.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jpl-au/behold/internal/tagpath"
	"github.com/jpl-au/behold/internal/validate"
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

// Dir is the name of the configuration directory, both locally and in $HOME.
const Dir = ".behold"

// Scope represents the configuration scope (global or local).
type Scope int

const (
	// ScopeGlobal is user-wide config in ~/.behold/config.yaml (default)
	ScopeGlobal Scope = iota
	// ScopeLocal is directory-specific config in .behold/config.yaml
	ScopeLocal
)

// Codec holds the tagged path syntax.
type Codec struct {
	Marker    string `yaml:"marker,omitempty"`
	Separator string `yaml:"separator,omitempty"`
}

// Log holds audit log options.
type Log struct {
	Enabled *bool `yaml:"enabled,omitempty"`
}

// Config contains configuration for behold.
type Config struct {
	Codec Codec `yaml:"codec,omitempty"`
	Log   Log   `yaml:"log,omitempty"`

	// path is the file this config was loaded from (for Save)
	path  string
	scope Scope
}

// Validate checks that the configured marker and separator form a usable
// pair. Unset values are checked against their defaults.
func (c *Config) Validate() error {
	if err := validate.Separator(c.Separator()); err != nil {
		return fmt.Errorf("%w: codec.separator: %w", ErrInvalidValue, err)
	}
	if err := validate.Marker(c.Marker(), c.Separator()); err != nil {
		return fmt.Errorf("%w: codec.marker: %w", ErrInvalidValue, err)
	}
	return nil
}

// Marker returns the tag marker (defaults to "%").
func (c *Config) Marker() string {
	if c.Codec.Marker == "" {
		return tagpath.DefaultMarker
	}
	return c.Codec.Marker
}

// Separator returns the path separator (defaults to "/").
func (c *Config) Separator() string {
	if c.Codec.Separator == "" {
		return tagpath.DefaultSeparator
	}
	return c.Codec.Separator
}

// LogEnabled returns whether audit logging is on (defaults to true).
func (c *Config) LogEnabled() bool {
	if c.Log.Enabled == nil {
		return true
	}
	return *c.Log.Enabled
}

// LocalPath returns the path to the local config file.
func LocalPath() string {
	return filepath.Join(Dir, "config.yaml")
}

// GlobalPath returns the path to the global (user) config file: ~/.behold/config.yaml
func GlobalPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, Dir, "config.yaml")
}

// Load reads configuration: uses local if it exists, otherwise global.
func Load() (*Config, error) {
	return load(currentScope(), true)
}

// LoadScope reads configuration from a specific scope.
func LoadScope(scope Scope) (*Config, error) {
	return load(scope, true)
}

// LoadUnchecked reads configuration like Load but skips Validate, so the
// config command can repair a marker or separator that every other command
// rejects. Malformed YAML is still an error.
func LoadUnchecked() (*Config, error) {
	return load(currentScope(), false)
}

// LoadScopeUnchecked is LoadScope without Validate.
func LoadScopeUnchecked(scope Scope) (*Config, error) {
	return load(scope, false)
}

func currentScope() Scope {
	if _, err := os.Stat(LocalPath()); err == nil {
		return ScopeLocal
	}
	return ScopeGlobal
}

func load(scope Scope, check bool) (*Config, error) {
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

	if !check {
		return &cfg, nil
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w\n\nTo fix: behold config <key> <value>", path, err)
	}
	return &cfg, nil
}

// Scope returns which scope this config was loaded from.
func (c *Config) Scope() Scope {
	return c.scope
}

// Path returns the file this config was loaded from, or would be saved to.
func (c *Config) Path() string {
	if c.path == "" {
		return pathForScope(c.scope)
	}
	return c.path
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

// saveToPath writes configuration to a specific filesystem path.
// Creates parent directories as needed with mode 0755.
func (c *Config) saveToPath(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
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
