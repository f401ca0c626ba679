// config_keys.go provides key-value access to configuration settings for
// the config command and the MCP server, where settings are addressed by
// dotted keys such as "codec.marker".
//
// Pointers are used for optional non-string fields so "not set" and
// "explicitly false" stay distinct.

package config

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/jpl-au/behold/internal/validate"
)

// ValidKeys returns all valid configuration keys.
func ValidKeys() []string {
	return []string{"codec.marker", "codec.separator", "log.enabled"}
}

// IsValidKey returns true if the key is a valid configuration key.
func IsValidKey(key string) bool {
	return slices.Contains(ValidKeys(), key)
}

// Get returns the value of a configuration key as a string.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "codec.marker":
		return c.Marker(), nil
	case "codec.separator":
		return c.Separator(), nil
	case "log.enabled":
		return strconv.FormatBool(c.LogEnabled()), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}

// Set sets the value of a configuration key. Only the key being set is
// checked, against the current value of the other codec key, so one broken
// setting can be repaired while the other is still invalid.
func (c *Config) Set(key, value string) error {
	switch key {
	case "codec.marker":
		if err := validate.Marker(value, c.Separator()); err != nil {
			return fmt.Errorf("%w: codec.marker: %w", ErrInvalidValue, err)
		}
		c.Codec.Marker = value
	case "codec.separator":
		if err := validate.Separator(value); err != nil {
			return fmt.Errorf("%w: codec.separator: %w", ErrInvalidValue, err)
		}
		if value == c.Marker() {
			return fmt.Errorf("%w: codec.separator: %q equals the marker", ErrInvalidValue, value)
		}
		c.Codec.Separator = value
	case "log.enabled":
		v := strings.ToLower(value)
		if v != "true" && v != "false" {
			return fmt.Errorf("%w: log.enabled must be true or false", ErrInvalidValue)
		}
		b := v == "true"
		c.Log.Enabled = &b
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return nil
}

// All returns all configuration values as a map.
func (c *Config) All() map[string]string {
	return map[string]string{
		"codec.marker":    c.Marker(),
		"codec.separator": c.Separator(),
		"log.enabled":     strconv.FormatBool(c.LogEnabled()),
	}
}

// IsSet returns true if the key has an explicit value (not just defaults).
func (c *Config) IsSet(key string) bool {
	switch key {
	case "codec.marker":
		return c.Codec.Marker != ""
	case "codec.separator":
		return c.Codec.Separator != ""
	case "log.enabled":
		return c.Log.Enabled != nil
	default:
		return false
	}
}
