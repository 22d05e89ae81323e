// File: discovery.go
// Title: Configuration File Discovery Implementation
// Description: Searches a list of directories for a configuration file in any
//              supported format and loads the first match.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation of file discovery

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	etkerror "github.com/msto63/etkit/core/error"
)

// DiscoveryOptions defines options for automatic configuration file discovery
type DiscoveryOptions struct {
	Paths      []string // Directories to search for config files
	Filenames  []string // Base filenames to look for (without extension)
	Extensions []string // File extensions to try (.toml, .yaml, .yml)
	EnvPrefix  string   // Environment variable prefix for overrides
	Required   bool     // Whether finding a config file is required
}

// DefaultDiscoveryOptions returns the search locations for an application:
// the working directory, ./config and $HOME/.config/<app>.
func DefaultDiscoveryOptions(app string) DiscoveryOptions {
	paths := []string{".", "./config"}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		paths = append(paths, filepath.Join(home, ".config", app))
	}

	return DiscoveryOptions{
		Paths:      paths,
		Filenames:  []string{app},
		Extensions: []string{".toml", ".yaml", ".yml"},
		EnvPrefix:  strings.ToUpper(app),
		Required:   false,
	}
}

// Discover loads the first configuration file found. When none is found and
// the file is not required an empty configuration is returned, which still
// resolves environment overrides.
func Discover(options DiscoveryOptions) (*Config, error) {
	if len(options.Paths) == 0 {
		options.Paths = []string{"."}
	}
	if len(options.Filenames) == 0 {
		options.Filenames = []string{"config"}
	}
	if len(options.Extensions) == 0 {
		options.Extensions = []string{".toml", ".yaml", ".yml"}
	}

	configPath, err := FindConfigFile(options)
	if err == nil {
		config, loadErr := LoadWithOptions(configPath, LoadOptions{
			Format:    FormatAuto,
			EnvPrefix: options.EnvPrefix,
		})
		if loadErr != nil {
			return nil, etkerror.Wrap(loadErr, fmt.Sprintf("found config file %s but failed to load", configPath)).
				WithCode(etkerror.CodeConfigError).
				WithOperation("config.Discover").
				WithDetail("configPath", configPath)
		}
		return config, nil
	}

	if options.Required {
		searchPaths := ListPossibleConfigFiles(options)
		return nil, etkerror.New(fmt.Sprintf("no configuration file found in paths: %s", strings.Join(searchPaths, ", "))).
			WithCode(etkerror.CodeNotFound).
			WithOperation("config.Discover").
			WithDetail("searchPaths", searchPaths)
	}

	return New(options.EnvPrefix), nil
}

// FindConfigFile searches for a configuration file without loading it
func FindConfigFile(options DiscoveryOptions) (string, error) {
	for _, configPath := range ListPossibleConfigFiles(options) {
		if info, err := os.Stat(configPath); err == nil && !info.IsDir() {
			return configPath, nil
		}
	}

	return "", etkerror.New("configuration file not found").
		WithCode(etkerror.CodeNotFound).
		WithOperation("config.FindConfigFile")
}

// ListPossibleConfigFiles returns every candidate path in search order
func ListPossibleConfigFiles(options DiscoveryOptions) []string {
	paths := make([]string, 0, len(options.Paths)*len(options.Filenames)*len(options.Extensions))

	for _, path := range options.Paths {
		for _, filename := range options.Filenames {
			for _, ext := range options.Extensions {
				paths = append(paths, filepath.Join(path, filename+ext))
			}
		}
	}

	return paths
}
