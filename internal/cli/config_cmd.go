// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// config_cmd.go - Config command implementation for rigcon.
//
// Command: config [subcommand]
//
// Subcommands:
//   show (default)      Display current configuration
//   path                Show configuration file path
//   get <key>           Print one value
//   set <key> <value>   Set a value and save the file
//   reset               Write the default configuration
//
// Examples:
//   rigcon config set log.level debug
//   rigcon config set console.auto_correction false
//   rigcon config get console.prompt

package cli

import (
	"fmt"
	"io"

	"github.com/jeranaias/rigrun-console/internal/config"
)

// HandleConfig runs the config command against the file at path.
func HandleConfig(args Args, cfg *config.Config, path string, w io.Writer) error {
	switch args.Subcommand {
	case "", "show":
		fmt.Fprint(w, HighlightTOML(cfg.String()))
		return nil

	case "path":
		fmt.Fprintln(w, path)
		return nil

	case "get":
		if args.ConfigKey == "" {
			return &ValidationError{Field: "key", Reason: "required argument missing", Example: "rigcon config get log.level"}
		}
		value, err := cfg.Get(args.ConfigKey)
		if err != nil {
			return &NotFoundError{Resource: "config key", ID: args.ConfigKey}
		}
		fmt.Fprintln(w, displayValue(value))
		return nil

	case "set":
		return handleConfigSet(args, cfg, path, w)

	case "reset":
		if err := config.SaveTOML(config.Default(), path); err != nil {
			return err
		}
		fmt.Fprintf(w, "Configuration reset: %s\n", path)
		return nil

	case "keys":
		for _, key := range config.GetAllKeys() {
			value, _ := cfg.Get(key)
			fmt.Fprintln(w, RenderConditional(LabelStyle, key)+RenderConditional(ValueStyle, displayValue(value)))
		}
		return nil

	default:
		return &ValidationError{
			Field:   "config subcommand",
			Value:   args.Subcommand,
			Reason:  "unknown subcommand",
			Example: "rigcon config [show|path|get|set|reset|keys]",
		}
	}
}

func handleConfigSet(args Args, cfg *config.Config, path string, w io.Writer) error {
	if args.ConfigKey == "" || args.ConfigVal == "" {
		return &ValidationError{
			Field:   "key/value",
			Reason:  "required argument missing",
			Example: "rigcon config set log.level debug",
		}
	}

	updated := cfg.Clone()
	if err := updated.Set(args.ConfigKey, args.ConfigVal); err != nil {
		return &ValidationError{Field: args.ConfigKey, Value: args.ConfigVal, Reason: err.Error()}
	}
	if err := updated.Validate(); err != nil {
		return err
	}
	if err := config.SaveTOML(updated, path); err != nil {
		return err
	}

	*cfg = *updated
	fmt.Fprintf(w, "%s = %s\n", args.ConfigKey, args.ConfigVal)
	return nil
}
