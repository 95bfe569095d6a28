// rigcon - An interactive command console with typed commands and
// configuration variables.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/jeranaias/rigrun-console/internal/cli"
	"github.com/jeranaias/rigrun-console/internal/ui/shell"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	// Sync version info with cli package
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(argv []string) int {
	cmd, args, err := cli.Parse(argv)
	cli.SetupColors(args.NoColor)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		cli.PrintUsage(os.Stderr)
		return cli.GetExitCode(err)
	}

	switch cmd {
	case cli.CmdVersion:
		cli.PrintVersion(os.Stdout)
		return cli.ExitSuccess
	case cli.CmdHelp:
		cli.PrintUsage(os.Stdout)
		return cli.ExitSuccess
	}

	cfg, path, err := cli.LoadConfig(args)
	if err != nil {
		return fail(err)
	}

	if cmd == cli.CmdConfig {
		return fail(cli.HandleConfig(args, cfg, path, os.Stdout))
	}

	// Without a terminal the default command reads a script from stdin.
	if cmd == cli.CmdREPL && !args.Explicit && !cli.IsTTY() {
		cmd, args.File = cli.CmdExec, "-"
	}

	var out io.Writer = os.Stdout
	if cmd == cli.CmdTUI {
		out = io.Discard
	}
	app, err := cli.NewApp(cfg, path, out, args)
	if err != nil {
		return fail(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	switch cmd {
	case cli.CmdREPL, cli.CmdTUI:
		if err := app.Watch(ctx); err != nil {
			app.Log.WithError(err).Debug("Config watcher not started")
		}
	}

	switch cmd {
	case cli.CmdTUI:
		err = shell.Run(app)
	case cli.CmdExec:
		err = execScript(app, args)
	case cli.CmdRun:
		// The console has already logged the failure.
		if cli.RunLine(app, args.Line) != nil {
			return cli.ExitCommandError
		}
	default:
		err = cli.NewREPL(app).Run()
	}
	return fail(err)
}

func execScript(app *cli.App, args cli.Args) error {
	f, err := cli.OpenScript(args.File)
	if err != nil {
		return err
	}
	defer f.Close()
	return cli.RunScript(app, f, args.Strict)
}

// fail prints err and returns its exit code.
func fail(err error) int {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return cli.GetExitCode(err)
}
