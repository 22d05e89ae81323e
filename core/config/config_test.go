// File: config_test.go
// Title: Configuration Module Tests
// Description: Tests for TOML/YAML parsing, typed getters, defaults,
//              environment overrides and file discovery.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial test implementation

package config

import (
	"os"
	"path/filepath"
	"testing"

	etkerror "github.com/msto63/etkit/core/error"
)

const tomlContent = `
[log]
level = "debug"
format = "json"

[output]
format = "yaml"
precision = 4

[rules]
small = "between:1:10"
big = "gt:100"

[defaults]
where = "even"
verbose = true
tags = ["a", "b"]
`

const yamlContent = `
log:
  level: info
output:
  precision: 2
  ratio: 0.5
rules:
  evens: even
`

func TestLoad(t *testing.T) {
	tempDir := t.TempDir()

	t.Run("load TOML config", func(t *testing.T) {
		configPath := filepath.Join(tempDir, "etkit.toml")
		if err := os.WriteFile(configPath, []byte(tomlContent), 0644); err != nil {
			t.Fatalf("Failed to write test config: %v", err)
		}

		cfg, err := Load(configPath)
		if err != nil {
			t.Fatalf("Failed to load config: %v", err)
		}

		if got := cfg.GetString("log.level"); got != "debug" {
			t.Errorf("log.level = %q, want debug", got)
		}
		if got := cfg.GetInt("output.precision"); got != 4 {
			t.Errorf("output.precision = %d, want 4", got)
		}
		if !cfg.GetBool("defaults.verbose") {
			t.Error("defaults.verbose should be true")
		}
		if got := cfg.GetStringSlice("defaults.tags"); len(got) != 2 || got[0] != "a" || got[1] != "b" {
			t.Errorf("defaults.tags = %v", got)
		}
		if cfg.Format() != FormatTOML {
			t.Errorf("Format() = %v, want toml", cfg.Format())
		}
		if cfg.FilePath() != configPath {
			t.Errorf("FilePath() = %q", cfg.FilePath())
		}
	})

	t.Run("load YAML config", func(t *testing.T) {
		configPath := filepath.Join(tempDir, "etkit.yml")
		if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
			t.Fatalf("Failed to write test config: %v", err)
		}

		cfg, err := Load(configPath)
		if err != nil {
			t.Fatalf("Failed to load config: %v", err)
		}

		if cfg.Format() != FormatYAML {
			t.Errorf("Format() = %v, want yaml", cfg.Format())
		}
		if got := cfg.GetInt("output.precision"); got != 2 {
			t.Errorf("output.precision = %d, want 2", got)
		}
		if got := cfg.GetFloat("output.ratio"); got != 0.5 {
			t.Errorf("output.ratio = %v, want 0.5", got)
		}
		if got := cfg.GetStringMap("rules"); got["evens"] != "even" {
			t.Errorf("rules = %v", got)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(tempDir, "absent.toml"))
		if !etkerror.HasCode(err, etkerror.CodeNotFound) {
			t.Errorf("expected NOT_FOUND, got %v", err)
		}
	})

	t.Run("empty path", func(t *testing.T) {
		_, err := Load("  ")
		if !etkerror.HasCode(err, etkerror.CodeInvalidArgument) {
			t.Errorf("expected INVALID_ARGUMENT, got %v", err)
		}
	})

	t.Run("invalid content", func(t *testing.T) {
		configPath := filepath.Join(tempDir, "broken.toml")
		if err := os.WriteFile(configPath, []byte("[log\nlevel ="), 0644); err != nil {
			t.Fatalf("Failed to write test config: %v", err)
		}

		_, err := Load(configPath)
		if !etkerror.HasCode(err, etkerror.CodeInvalidFormat) {
			t.Errorf("expected INVALID_FORMAT, got %v", err)
		}
	})
}

func TestLoadWithDefaults(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "etkit.toml")
	if err := os.WriteFile(configPath, []byte("[output]\nformat = \"json\"\n"), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := LoadWithOptions(configPath, LoadOptions{
		Format: FormatAuto,
		Defaults: map[string]interface{}{
			"output": map[string]interface{}{"format": "text", "precision": 2},
			"log":    map[string]interface{}{"level": "warn"},
		},
	})
	if err != nil {
		t.Fatalf("LoadWithOptions() error = %v", err)
	}

	if got := cfg.GetString("output.format"); got != "json" {
		t.Errorf("output.format = %q, file value should win", got)
	}
	if got := cfg.GetInt("output.precision"); got != 2 {
		t.Errorf("output.precision = %d, default should survive nested merge", got)
	}
	if got := cfg.GetString("log.level"); got != "warn" {
		t.Errorf("log.level = %q", got)
	}
}

func TestGettersWithDefaults(t *testing.T) {
	cfg, err := LoadFromString(tomlContent, FormatTOML)
	if err != nil {
		t.Fatalf("LoadFromString() error = %v", err)
	}

	if got := cfg.GetString("missing.key", "fallback"); got != "fallback" {
		t.Errorf("GetString default = %q", got)
	}
	if got := cfg.GetInt("missing.key", 7); got != 7 {
		t.Errorf("GetInt default = %d", got)
	}
	if got := cfg.GetBool("missing.key", true); !got {
		t.Error("GetBool default should be true")
	}
	if got := cfg.GetFloat("missing.key", 1.5); got != 1.5 {
		t.Errorf("GetFloat default = %v", got)
	}
	if got := cfg.GetStringMap("log.level"); got != nil {
		t.Errorf("GetStringMap on scalar = %v, want nil", got)
	}
	if got := cfg.Keys("rules"); len(got) != 2 || got[0] != "big" || got[1] != "small" {
		t.Errorf("Keys(rules) = %v", got)
	}
}

func TestEnvironmentOverrides(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "etkit.toml")
	if err := os.WriteFile(configPath, []byte(tomlContent), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := LoadWithOptions(configPath, LoadOptions{Format: FormatAuto, EnvPrefix: "ETKIT"})
	if err != nil {
		t.Fatalf("LoadWithOptions() error = %v", err)
	}

	t.Setenv("ETKIT_LOG_LEVEL", "error")
	t.Setenv("ETKIT_OUTPUT_PRECISION", "6")
	t.Setenv("ETKIT_DEFAULTS_TAGS", "x, y")
	t.Setenv("ETKIT_EXTRA_FLAG", "1")

	if got := cfg.GetString("log.level"); got != "error" {
		t.Errorf("log.level = %q, want env override", got)
	}
	if got := cfg.GetInt("output.precision"); got != 6 {
		t.Errorf("output.precision = %d, want 6", got)
	}
	if got := cfg.GetStringSlice("defaults.tags"); len(got) != 2 || got[1] != "y" {
		t.Errorf("defaults.tags = %v", got)
	}
	if !cfg.Has("extra.flag") {
		t.Error("Has should see environment-only keys")
	}
	if got := cfg.EnvKey("output.format"); got != "ETKIT_OUTPUT_FORMAT" {
		t.Errorf("EnvKey() = %q", got)
	}
}

func TestSetAndGetAll(t *testing.T) {
	cfg := New("")
	cfg.Set("rules.tiny", "lt:3")
	cfg.Set("output.format", "json")

	if got := cfg.GetString("rules.tiny"); got != "lt:3" {
		t.Errorf("rules.tiny = %q", got)
	}

	all := cfg.GetAll()
	all["output"].(map[string]interface{})["format"] = "mutated"
	if got := cfg.GetString("output.format"); got != "json" {
		t.Errorf("GetAll must return a copy, got %q", got)
	}
}

func TestDiscover(t *testing.T) {
	tempDir := t.TempDir()
	nested := filepath.Join(tempDir, "config")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}
	if err := os.WriteFile(filepath.Join(nested, "etkit.yaml"), []byte(yamlContent), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	options := DiscoveryOptions{
		Paths:      []string{tempDir, nested},
		Filenames:  []string{"etkit"},
		Extensions: []string{".toml", ".yaml"},
		EnvPrefix:  "ETKIT",
	}

	t.Run("finds file in second path", func(t *testing.T) {
		cfg, err := Discover(options)
		if err != nil {
			t.Fatalf("Discover() error = %v", err)
		}
		if got := cfg.GetString("log.level"); got != "info" {
			t.Errorf("log.level = %q", got)
		}
	})

	t.Run("optional and missing", func(t *testing.T) {
		missing := options
		missing.Paths = []string{filepath.Join(tempDir, "nowhere")}

		cfg, err := Discover(missing)
		if err != nil {
			t.Fatalf("Discover() error = %v", err)
		}
		if len(cfg.Keys("")) != 0 {
			t.Errorf("expected empty config, got keys %v", cfg.Keys(""))
		}
	})

	t.Run("required and missing", func(t *testing.T) {
		missing := options
		missing.Paths = []string{filepath.Join(tempDir, "nowhere")}
		missing.Required = true

		_, err := Discover(missing)
		if !etkerror.HasCode(err, etkerror.CodeNotFound) {
			t.Errorf("expected NOT_FOUND, got %v", err)
		}
	})

	t.Run("candidate order", func(t *testing.T) {
		got := ListPossibleConfigFiles(options)
		if len(got) != 4 || got[0] != filepath.Join(tempDir, "etkit.toml") {
			t.Errorf("ListPossibleConfigFiles() = %v", got)
		}
	})
}
