// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides command-line parsing and the console front ends for
// rigcon.
//
// # Key Types
//
//   - Command: Enumeration of the CLI commands
//   - Args: Parsed command-line arguments
//   - App: One console with its variables, logger and configuration
//   - REPL: Line-editing front end built on liner
//
// # Usage
//
//	cmd, args, err := cli.Parse(os.Args[1:])
//	cfg, path, err := cli.LoadConfig(args)
//	app, err := cli.NewApp(cfg, path, os.Stdout, args)
//	switch cmd {
//	case cli.CmdREPL:
//	    err = cli.NewREPL(app).Run()
//	case cli.CmdExec:
//	    err = cli.RunScript(app, f, args.Strict)
//	}
package cli
