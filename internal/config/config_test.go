// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestConfig_Default tests the built-in defaults.
func TestConfig_Default(t *testing.T) {
	cfg := Default()

	if cfg == nil {
		t.Fatal("Default() returned nil")
	}
	if !cfg.Console.AutoCorrection {
		t.Error("auto-correction should be on by default")
	}
	if !cfg.Console.ColoredFind {
		t.Error("colored find should be on by default")
	}
	if cfg.Console.Prompt != "> " {
		t.Errorf("Expected default prompt '> ', got '%s'", cfg.Console.Prompt)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Expected default level 'info', got '%s'", cfg.Log.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config should be valid: %v", err)
	}
}

// TestConfig_Validate tests configuration validation.
func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(c *Config)
		wantErr string
	}{
		{
			name:   "valid default config",
			modify: func(c *Config) {},
		},
		{
			name:    "invalid log level",
			modify:  func(c *Config) { c.Log.Level = "loud" },
			wantErr: "log.level",
		},
		{
			name:   "warning level",
			modify: func(c *Config) { c.Log.Level = "warning" },
		},
		{
			name:    "invalid log format",
			modify:  func(c *Config) { c.Log.Format = "xml" },
			wantErr: "log.format",
		},
		{
			name:   "json format upper case",
			modify: func(c *Config) { c.Log.Format = "JSON" },
		},
		{
			name:    "multi-line prompt",
			modify:  func(c *Config) { c.Console.Prompt = "a\nb" },
			wantErr: "console.prompt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() unexpected error = %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

// TestConfig_SaveLoadRoundTrip tests that a saved file loads back the same values.
func TestConfig_SaveLoadRoundTrip(t *testing.T) {
	t.Setenv("RIGCON_LOG_LEVEL", "")
	t.Setenv("RIGCON_LOG_FORMAT", "")
	t.Setenv("RIGCON_AUTOCORRECT", "")
	t.Setenv("RIGCON_PROMPT", "")

	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := Default()
	cfg.Console.AutoCorrection = false
	cfg.Console.Prompt = "] "
	cfg.Log.Level = "debug"

	if err := SaveTOML(cfg, path); err != nil {
		t.Fatalf("SaveTOML() error = %v", err)
	}

	loaded, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath() error = %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("loaded config = %+v, want %+v", loaded, cfg)
	}
}

// TestConfig_LoadPartialFile tests that missing keys keep their defaults.
func TestConfig_LoadPartialFile(t *testing.T) {
	t.Setenv("RIGCON_LOG_LEVEL", "")
	t.Setenv("RIGCON_PROMPT", "")

	path := filepath.Join(t.TempDir(), "config.toml")
	data := "[log]\nlevel = \"warn\"\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath() error = %v", err)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want 'warn'", cfg.Log.Level)
	}
	if cfg.Console.Prompt != "> " {
		t.Errorf("Console.Prompt = %q, want default", cfg.Console.Prompt)
	}
	if !cfg.Console.AutoCorrection {
		t.Error("AutoCorrection should keep its default")
	}
}

// TestConfig_LoadInvalidFile tests that invalid files are rejected.
func TestConfig_LoadInvalidFile(t *testing.T) {
	t.Setenv("RIGCON_LOG_LEVEL", "")
	dir := t.TempDir()

	broken := filepath.Join(dir, "broken.toml")
	os.WriteFile(broken, []byte("[log\nlevel="), 0644)
	if _, err := LoadFromPath(broken); err == nil {
		t.Error("LoadFromPath() should fail on malformed TOML")
	}

	invalid := filepath.Join(dir, "invalid.toml")
	os.WriteFile(invalid, []byte("[log]\nformat = \"xml\"\n"), 0644)
	if _, err := LoadFromPath(invalid); err == nil {
		t.Error("LoadFromPath() should fail validation")
	}
}

// TestConfig_EnvOverrides tests RIGCON_* environment variables.
func TestConfig_EnvOverrides(t *testing.T) {
	t.Setenv("RIGCON_LOG_LEVEL", "error")
	t.Setenv("RIGCON_LOG_FORMAT", "json")
	t.Setenv("RIGCON_AUTOCORRECT", "0")
	t.Setenv("RIGCON_PROMPT", "$ ")

	cfg := Default()
	cfg.ApplyEnvOverrides()

	if cfg.Log.Level != "error" {
		t.Errorf("Log.Level = %q, want 'error'", cfg.Log.Level)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q, want 'json'", cfg.Log.Format)
	}
	if cfg.Console.AutoCorrection {
		t.Error("RIGCON_AUTOCORRECT=0 should disable auto-correction")
	}
	if cfg.Console.Prompt != "$ " {
		t.Errorf("Console.Prompt = %q, want '$ '", cfg.Console.Prompt)
	}
}

// TestConfig_GetSet tests Get and Set methods with dot notation.
func TestConfig_GetSet(t *testing.T) {
	cfg := Default()

	val, err := cfg.Get("log.level")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if val != "info" {
		t.Errorf("Get('log.level') = %v, want 'info'", val)
	}

	if err := cfg.Set("console.auto_correction", "false"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if cfg.Console.AutoCorrection {
		t.Error("Set('console.auto_correction', 'false') did not apply")
	}

	if err := cfg.Set("console.colored_find", false); err != nil {
		t.Fatalf("Set() with bool error = %v", err)
	}
	if cfg.Console.ColoredFind {
		t.Error("Set('console.colored_find', false) did not apply")
	}

	if err := cfg.Set("console.auto_correction", "maybe"); err == nil {
		t.Error("Set() with invalid bool should return error")
	}
	if err := cfg.Set("console.prompt", 3); err == nil {
		t.Error("Set() with wrong type should return error")
	}
	if _, err := cfg.Get("invalid.key"); err == nil {
		t.Error("Get() with invalid key should return error")
	}
	if _, err := cfg.Get("log.level.extra"); err == nil {
		t.Error("Get() past a leaf should return error")
	}
}

// TestConfig_AllKeysResolve tests that every listed key maps to a field.
func TestConfig_AllKeysResolve(t *testing.T) {
	cfg := Default()
	for _, key := range GetAllKeys() {
		if _, err := cfg.Get(key); err != nil {
			t.Errorf("Get(%q) error = %v", key, err)
		}
	}
}

// TestConfig_Clone tests that Clone creates an independent copy.
func TestConfig_Clone(t *testing.T) {
	original := Default()
	clone := original.Clone()
	clone.Console.Prompt = "# "

	if original.Console.Prompt != "> " {
		t.Error("Clone should create an independent copy")
	}
}

// TestConfig_String tests the TOML rendering.
func TestConfig_String(t *testing.T) {
	out := Default().String()
	for _, want := range []string{"[console]", "auto_correction = true", "[log]", `level = "info"`} {
		if !strings.Contains(out, want) {
			t.Errorf("String() missing %q:\n%s", want, out)
		}
	}
}
