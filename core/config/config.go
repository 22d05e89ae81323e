// File: config.go
// Title: Core Configuration Management Implementation
// Description: Implements the Config type for loading, parsing and accessing
//              configuration data from TOML and YAML sources with environment
//              variable overrides and dot-notation key access.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation with TOML/YAML support

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	etkerror "github.com/msto63/etkit/core/error"
	etkerrors "github.com/msto63/etkit/core/errors"
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

// New returns an empty configuration that only resolves environment overrides
func New(envPrefix string) *Config {
	return &Config{
		data:      make(map[string]interface{}),
		format:    FormatTOML,
		envPrefix: envPrefix,
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
	if strings.TrimSpace(filePath) == "" {
		return nil, etkerrors.InvalidArgument(etkerrors.ModuleConfig, "LoadWithOptions", "filePath", "non-empty path")
	}

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, etkerrors.NotFound(etkerrors.ModuleConfig, "LoadWithOptions", filePath).
			WithDetail("filePath", filePath)
	}

	format := options.Format
	if format == FormatAuto {
		format = detectFormat(filePath)
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, etkerror.Wrap(err, "failed to read config file").
			WithCode(etkerror.CodeConfigError).
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath)
	}

	data, err := parseContent(content, format)
	if err != nil {
		return nil, etkerror.Wrap(err, "failed to parse config file").
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath).
			WithDetail("format", format.String())
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

// LoadFromString loads configuration from a string with specified format
func LoadFromString(content string, format Format) (*Config, error) {
	if format == FormatAuto {
		format = FormatTOML
	}

	data, err := parseContent([]byte(content), format)
	if err != nil {
		return nil, etkerror.Wrap(err, "failed to parse config from string").
			WithOperation("config.LoadFromString").
			WithDetail("format", format.String())
	}

	return &Config{
		data:   data,
		format: format,
	}, nil
}

// detectFormat determines the configuration format from file extension
func detectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// parseContent parses configuration content based on format
func parseContent(content []byte, format Format) (map[string]interface{}, error) {
	var data map[string]interface{}

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(content, &data); err != nil {
			return nil, etkerror.Wrap(err, "TOML parse error").
				WithCode(etkerror.CodeInvalidFormat).
				WithOperation("config.parseContent")
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, &data); err != nil {
			return nil, etkerror.Wrap(err, "YAML parse error").
				WithCode(etkerror.CodeInvalidFormat).
				WithOperation("config.parseContent")
		}
	default:
		return nil, etkerrors.InvalidFormat(etkerrors.ModuleConfig, "parseContent", format.String(), "toml or yaml")
	}

	if data == nil {
		data = make(map[string]interface{})
	}
	return data, nil
}

// mergeDefaults merges default values into configuration data. Nested tables
// are merged key by key so a file can override a single default.
func mergeDefaults(data, defaults map[string]interface{}) map[string]interface{} {
	result := make(map[string]interface{}, len(defaults)+len(data))

	for k, v := range defaults {
		result[k] = v
	}

	for k, v := range data {
		fileTable, fileIsTable := v.(map[string]interface{})
		defaultTable, defaultIsTable := result[k].(map[string]interface{})
		if fileIsTable && defaultIsTable {
			result[k] = mergeDefaults(fileTable, defaultTable)
			continue
		}
		result[k] = v
	}

	return result
}

// GetString returns a string configuration value with optional default
func (c *Config) GetString(key string, defaultValue ...string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if envValue, ok := c.getEnvValue(key); ok {
		return envValue
	}

	value := c.getValue(key)
	if value == nil {
		if len(defaultValue) > 0 {
			return defaultValue[0]
		}
		return ""
	}

	switch v := value.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// GetInt returns an integer configuration value with optional default
func (c *Config) GetInt(key string, defaultValue ...int) int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if envValue, ok := c.getEnvValue(key); ok {
		if intVal, err := strconv.Atoi(envValue); err == nil {
			return intVal
		}
	}

	switch v := c.getValue(key).(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		if intVal, err := strconv.Atoi(v); err == nil {
			return intVal
		}
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return 0
}

// GetBool returns a boolean configuration value with optional default
func (c *Config) GetBool(key string, defaultValue ...bool) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if envValue, ok := c.getEnvValue(key); ok {
		if boolVal, err := strconv.ParseBool(envValue); err == nil {
			return boolVal
		}
	}

	switch v := c.getValue(key).(type) {
	case bool:
		return v
	case string:
		if boolVal, err := strconv.ParseBool(v); err == nil {
			return boolVal
		}
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return false
}

// GetFloat returns a float64 configuration value with optional default
func (c *Config) GetFloat(key string, defaultValue ...float64) float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if envValue, ok := c.getEnvValue(key); ok {
		if floatVal, err := strconv.ParseFloat(envValue, 64); err == nil {
			return floatVal
		}
	}

	switch v := c.getValue(key).(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		if floatVal, err := strconv.ParseFloat(v, 64); err == nil {
			return floatVal
		}
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return 0.0
}

// GetStringSlice returns a string slice configuration value with optional default
func (c *Config) GetStringSlice(key string, defaultValue ...[]string) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if envValue, ok := c.getEnvValue(key); ok {
		parts := strings.Split(envValue, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}

	switch v := c.getValue(key).(type) {
	case []string:
		return v
	case []interface{}:
		result := make([]string, len(v))
		for i, item := range v {
			result[i] = fmt.Sprintf("%v", item)
		}
		return result
	case string:
		return []string{v}
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return nil
}

// GetStringMap returns the string values of a table. Non-table values yield nil.
func (c *Config) GetStringMap(key string) map[string]string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	table, ok := c.getValue(key).(map[string]interface{})
	if !ok {
		return nil
	}

	result := make(map[string]string, len(table))
	for k, v := range table {
		if s, ok := v.(string); ok {
			result[k] = s
		} else {
			result[k] = fmt.Sprintf("%v", v)
		}
	}
	return result
}

// Keys returns the sorted keys of a table, or the top-level keys for ""
func (c *Config) Keys(key string) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	table := c.data
	if key != "" {
		nested, ok := c.getValue(key).(map[string]interface{})
		if !ok {
			return nil
		}
		table = nested
	}

	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// getValue retrieves a configuration value by dot-notation key
func (c *Config) getValue(key string) interface{} {
	current := c.data

	keys := strings.Split(key, ".")
	for i, k := range keys {
		if i == len(keys)-1 {
			return current[k]
		}

		next, ok := current[k].(map[string]interface{})
		if !ok {
			return nil
		}
		current = next
	}

	return nil
}

// getEnvValue looks up the environment override for key. Unset variables
// and variables set to the empty string both fall through to the file.
func (c *Config) getEnvValue(key string) (string, bool) {
	value, ok := os.LookupEnv(c.EnvKey(key))
	if !ok || value == "" {
		return "", false
	}
	return value, true
}

// EnvKey converts a config key to its environment variable name:
// output.format with prefix ETKIT becomes ETKIT_OUTPUT_FORMAT.
func (c *Config) EnvKey(key string) string {
	envKey := strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	if c.envPrefix != "" {
		envKey = strings.ToUpper(strings.TrimSuffix(c.envPrefix, "_")) + "_" + envKey
	}
	return envKey
}

// Has checks if a configuration key exists in the file or the environment
func (c *Config) Has(key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if _, ok := c.getEnvValue(key); ok {
		return true
	}
	return c.getValue(key) != nil
}

// Set sets a configuration value (runtime only, not persisted)
func (c *Config) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.data == nil {
		c.data = make(map[string]interface{})
	}

	keys := strings.Split(key, ".")
	current := c.data

	for i, k := range keys {
		if i == len(keys)-1 {
			current[k] = value
			return
		}

		next, ok := current[k].(map[string]interface{})
		if !ok {
			next = make(map[string]interface{})
			current[k] = next
		}
		current = next
	}
}

// GetAll returns a deep copy of all configuration data
func (c *Config) GetAll() map[string]interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return deepCopyMap(c.data)
}

func deepCopyMap(src map[string]interface{}) map[string]interface{} {
	dst := make(map[string]interface{}, len(src))

	for k, v := range src {
		switch val := v.(type) {
		case map[string]interface{}:
			dst[k] = deepCopyMap(val)
		case []interface{}:
			dst[k] = append([]interface{}(nil), val...)
		default:
			dst[k] = v
		}
	}

	return dst
}

// FilePath returns the path of the loaded configuration file
func (c *Config) FilePath() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filePath
}

// Format returns the configuration file format
func (c *Config) Format() Format {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.format
}

// String provides a readable representation of the configuration
func (c *Config) String() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	parts := []string{
		fmt.Sprintf("Config{format: %s", c.format.String()),
	}

	if c.filePath != "" {
		parts = append(parts, fmt.Sprintf("path: %s", c.filePath))
	}

	if c.envPrefix != "" {
		parts = append(parts, fmt.Sprintf("envPrefix: %s", c.envPrefix))
	}

	parts = append(parts, fmt.Sprintf("keys: %d}", len(c.data)))

	return strings.Join(parts, ", ")
}
