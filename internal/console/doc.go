// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package console provides the in-process text command console.
//
// Commands are registered at runtime with typed handlers. A command line is
// split into a name and arguments, the command is resolved by name and
// argument count, each argument is coerced to the declared parameter type
// and the handler is invoked. Names without a command fall back to
// configuration variables: a bare name prints the value, "name value"
// writes it.
//
// # Key Types
//
//   - Console: parses, resolves and dispatches command lines
//   - Registry: registered commands, unique by name and arity
//   - Command: a named handler with its parameter kinds
//   - Kind: primitive type tag used for coercion
//   - VariableStore: the configuration variable collaborator
//   - Completer: name completion for line editors
//
// # Usage
//
//	c := console.New(store, logger)
//	console.RegisterBuiltins(c)
//	console.Register2(c.Registry(), "teleport", "Moves the player.", func(x, y float64) {
//	    // ...
//	})
//
//	c.Execute("teleport 10 2.5")
//	c.Execute(`print "Hello, World!"`)
//	c.Execute("cheats.fly on")
package console
