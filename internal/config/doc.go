// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for rigcon.
//
// # Key Types
//
//   - Config: Main configuration structure
//   - ConsoleConfig: Console behavior (auto-correction, find colors, prompt)
//   - LogConfig: Log level and format
//   - Watcher: Reloads the file when it changes on disk
//
// # Configuration Precedence
//
// Configuration is loaded from (in order of precedence):
//   - Environment variables (RIGCON_*)
//   - ~/.rigcon/config.toml
//   - Built-in defaults
//
// # Usage
//
// Load configuration and expose it to the console:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	vars, err := config.BindVariables(store, cfg)
//
// Typing "log.level debug" at the console then updates cfg.Log.Level.
package config
