// File: config.go
// Title: Configuration Management
// Description: Implements loading, parsing, and accessing configuration
//              data from TOML and YAML files with dot-notation keys and
//              environment variable overrides.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation with TOML/YAML support

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/msto63/vcl/utils/stringx"
)

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML

	// FormatAuto auto-detects format from file extension
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// Config represents a configuration instance with thread-safe access
type Config struct {
	mu        sync.RWMutex
	data      map[string]interface{}
	filePath  string
	format    Format
	envPrefix string
}

// LoadOptions defines options for loading configuration
type LoadOptions struct {
	Format    Format                 // File format (default: auto-detect)
	EnvPrefix string                 // Environment variable prefix (default: none)
	Defaults  map[string]interface{} // Default values
}

// New creates an empty configuration
func New() *Config {
	return &Config{
		data: make(map[string]interface{}),
	}
}

// Load loads configuration from a file with default options
func Load(filePath string) (*Config, error) {
	return LoadWithOptions(filePath, LoadOptions{
		Format: FormatAuto,
	})
}

// LoadWithOptions loads configuration from a file with custom options
func LoadWithOptions(filePath string, options LoadOptions) (*Config, error) {
	if stringx.IsBlank(filePath) {
		return nil, fmt.Errorf("config file path cannot be empty")
	}

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", filePath)
	}

	format := options.Format
	if format == FormatAuto {
		format = detectFormat(filePath)
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", filePath, err)
	}

	data, err := parseContent(content, format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", filePath, err)
	}

	if options.Defaults != nil {
		data = mergeDefaults(data, options.Defaults)
	}

	return &Config{
		data:      data,
		filePath:  filePath,
		format:    format,
		envPrefix: options.EnvPrefix,
	}, nil
}

// LoadFromString loads configuration from a string (useful for testing)
func LoadFromString(content string, format Format) (*Config, error) {
	data, err := parseContent([]byte(content), format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config content: %w", err)
	}

	return &Config{
		data:   data,
		format: format,
	}, nil
}

// detectFormat determines the format from the file extension
func detectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// parseContent parses configuration content according to the format
func parseContent(content []byte, format Format) (map[string]interface{}, error) {
	data := make(map[string]interface{})

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(content, &data); err != nil {
			return nil, err
		}
	default:
		if err := toml.Unmarshal(content, &data); err != nil {
			return nil, err
		}
	}

	return data, nil
}

// mergeDefaults fills missing top-level keys from the defaults map
func mergeDefaults(data, defaults map[string]interface{}) map[string]interface{} {
	merged := make(map[string]interface{}, len(data)+len(defaults))
	for k, v := range defaults {
		merged[k] = v
	}
	for k, v := range data {
		merged[k] = v
	}
	return merged
}

// GetString returns a string value for the given dot-notation key
func (c *Config) GetString(key string, defaultValue ...string) string {
	if env := c.getEnvValue(key); env != "" {
		return env
	}

	value := c.getValue(key)
	if value == nil {
		if len(defaultValue) > 0 {
			return defaultValue[0]
		}
		return ""
	}

	return fmt.Sprintf("%v", value)
}

// GetInt returns an integer value for the given dot-notation key
func (c *Config) GetInt(key string, defaultValue ...int) int {
	fallback := 0
	if len(defaultValue) > 0 {
		fallback = defaultValue[0]
	}

	if env := c.getEnvValue(key); env != "" {
		if parsed, err := strconv.Atoi(env); err == nil {
			return parsed
		}
		return fallback
	}

	switch v := c.getValue(key).(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}

	return fallback
}

// GetBool returns a boolean value for the given dot-notation key
func (c *Config) GetBool(key string, defaultValue ...bool) bool {
	fallback := false
	if len(defaultValue) > 0 {
		fallback = defaultValue[0]
	}

	if env := c.getEnvValue(key); env != "" {
		if parsed, err := strconv.ParseBool(env); err == nil {
			return parsed
		}
		return fallback
	}

	switch v := c.getValue(key).(type) {
	case bool:
		return v
	case string:
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
	}

	return fallback
}

// GetDuration returns a duration value for the given dot-notation key.
// String values use Go duration syntax ("30s", "5m"); numeric values
// are taken as seconds.
func (c *Config) GetDuration(key string, defaultValue ...time.Duration) time.Duration {
	fallback := time.Duration(0)
	if len(defaultValue) > 0 {
		fallback = defaultValue[0]
	}

	if env := c.getEnvValue(key); env != "" {
		if parsed, err := time.ParseDuration(env); err == nil {
			return parsed
		}
		return fallback
	}

	switch v := c.getValue(key).(type) {
	case string:
		if parsed, err := time.ParseDuration(v); err == nil {
			return parsed
		}
	case int:
		return time.Duration(v) * time.Second
	case int64:
		return time.Duration(v) * time.Second
	case float64:
		return time.Duration(v * float64(time.Second))
	}

	return fallback
}

// getValue resolves a dot-notation key against the nested data maps
func (c *Config) getValue(key string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	parts := strings.Split(key, ".")
	current := interface{}(c.data)

	for _, part := range parts {
		switch m := current.(type) {
		case map[string]interface{}:
			var ok bool
			current, ok = m[part]
			if !ok {
				return nil
			}
		case map[interface{}]interface{}:
			// YAML may decode nested maps with interface{} keys.
			var ok bool
			current, ok = m[part]
			if !ok {
				return nil
			}
		default:
			return nil
		}
	}

	return current
}

// getEnvValue checks for an environment variable override
func (c *Config) getEnvValue(key string) string {
	if c.envPrefix == "" {
		return ""
	}
	return os.Getenv(c.formatEnvKey(key))
}

// formatEnvKey converts "server.port" to "PREFIX_SERVER_PORT"
func (c *Config) formatEnvKey(key string) string {
	converted := strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	return c.envPrefix + "_" + converted
}

// Has returns true if the key resolves to a value
func (c *Config) Has(key string) bool {
	return c.getValue(key) != nil
}

// Set stores a value under a dot-notation key, creating intermediate
// maps as needed
func (c *Config) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	parts := strings.Split(key, ".")
	current := c.data
	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(map[string]interface{})
		if !ok {
			next = make(map[string]interface{})
			current[part] = next
		}
		current = next
	}
	current[parts[len(parts)-1]] = value
}

// FilePath returns the path the configuration was loaded from
func (c *Config) FilePath() string {
	return c.filePath
}

// Format returns the configuration file format
func (c *Config) Format() Format {
	return c.format
}
