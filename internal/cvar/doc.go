// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cvar provides typed configuration variables for the console.
//
// A Store maps names to variables. Define creates a variable that owns its
// value; Bind exposes a field of another struct (usually the loaded
// configuration) under a variable name.
//
//	store := cvar.NewStore()
//	fly, _ := cvar.Define(store, "cheats.fly", "Enables flying.", false)
//	cvar.Bind(store, "console.auto_correction", "Suggest close commands.", &cfg.Console.AutoCorrection)
//
//	c := console.New(store, logger)
//	c.Execute("cheats.fly on") // fly.Value() == true
package cvar
