// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/jeranaias/rigrun-console/internal/cvar"
)

// descriptions are shown by find for the bound configuration variables.
var descriptions = map[string]string{
	"console.auto_correction": "Suggests a close command name when a command is unknown.",
	"console.colored_find":    "Highlights matches in find output.",
	"console.prompt":          "Prompt shown before each input line.",
	"console.history_file":    "File that stores input history.",
	"log.level":               "Log level: trace, debug, info, warning, error.",
	"log.format":              "Log format: console, text or json.",
}

// BindVariables exposes every configuration key as a console variable
// backed by cfg, so "log.level debug" updates cfg.Log.Level in place.
// The returned map is keyed by variable name.
func BindVariables(store *cvar.Store, cfg *Config) (map[string]*cvar.Var, error) {
	vars := make(map[string]*cvar.Var, len(GetAllKeys()))

	for _, key := range GetAllKeys() {
		field, err := cfg.field(key)
		if err != nil {
			return nil, err
		}

		var v *cvar.Var
		switch ptr := field.Addr().Interface().(type) {
		case *bool:
			v, err = cvar.Bind(store, key, descriptions[key], ptr)
		case *string:
			v, err = cvar.Bind(store, key, descriptions[key], ptr)
		case *int:
			v, err = cvar.Bind(store, key, descriptions[key], ptr)
		default:
			err = fmt.Errorf("%s: unsupported field type %s", key, field.Type())
		}
		if err != nil {
			return nil, err
		}
		vars[key] = v
	}

	vars["log.level"].Check(func(value any) error {
		s, _ := value.(string)
		_, err := logrus.ParseLevel(s)
		return err
	})
	vars["log.format"].Check(func(value any) error {
		s, _ := value.(string)
		switch strings.ToLower(s) {
		case "console", "text", "json":
			return nil
		}
		return fmt.Errorf("invalid format '%s', must be one of: console, text, json", s)
	})

	return vars, nil
}
