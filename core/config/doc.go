// Package config loads etkit configuration from TOML or YAML files.
//
// Package: config
// Title: etkit Configuration Management
// Description: Map-backed configuration with dot-notation access, typed getters
//              with defaults, environment overrides and file discovery.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation
//
// Usage:
//
//	cfg, err := config.Discover(config.DefaultDiscoveryOptions("etkit"))
//	if err != nil {
//		return err
//	}
//
//	level := cfg.GetString("log.level", "warn")
//	rules := cfg.GetStringMap("rules")
//
// Environment variables take precedence over file values. With the prefix
// ETKIT the key output.format is read from ETKIT_OUTPUT_FORMAT.
package config
