// config_keys.go provides key-value access to configuration settings.
//
// Separated from config.go to isolate the key enumeration and string-based
// get/set logic. This separation allows config.go to focus on YAML
// structure and loading, while this file handles the CLI interface where
// config is accessed by string keys (e.g., "bundle.topic_url").

package config

import (
	"fmt"
	"slices"
)

// ValidKeys returns all valid configuration keys.
func ValidKeys() []string {
	return []string{
		"tables.dir",
		"bundle.topic_url", "bundle.tld_url",
	}
}

// IsValidKey returns true if the key is a valid configuration key.
func IsValidKey(key string) bool {
	return slices.Contains(ValidKeys(), key)
}

// Get returns the value of a configuration key as a string.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "tables.dir":
		return c.Tables.Dir, nil
	case "bundle.topic_url":
		return c.TopicURL(), nil
	case "bundle.tld_url":
		return c.TLDURL(), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}

// Set sets the value of a configuration key.
func (c *Config) Set(key, value string) error {
	switch key {
	case "tables.dir":
		c.Tables.Dir = value
	case "bundle.topic_url":
		c.Bundle.TopicURL = value
	case "bundle.tld_url":
		c.Bundle.TLDURL = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return c.Validate()
}

// All returns all configuration values as a map.
func (c *Config) All() map[string]string {
	return map[string]string{
		"tables.dir":       c.Tables.Dir,
		"bundle.topic_url": c.TopicURL(),
		"bundle.tld_url":   c.TLDURL(),
	}
}

// IsSet returns true if the key has an explicit value (not just defaults).
func (c *Config) IsSet(key string) bool {
	switch key {
	case "tables.dir":
		return c.Tables.Dir != ""
	case "bundle.topic_url":
		return c.Bundle.TopicURL != ""
	case "bundle.tld_url":
		return c.Bundle.TLDURL != ""
	default:
		return false
	}
}
