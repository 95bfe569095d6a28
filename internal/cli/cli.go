// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - Command-line parsing for rigcon.

package cli

import (
	"fmt"
	"io"
	"runtime"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdREPL Command = iota
	CmdTUI
	CmdExec
	CmdRun
	CmdConfig
	CmdVersion
	CmdHelp
)

// String returns the command name as typed on the command line.
func (c Command) String() string {
	switch c {
	case CmdREPL:
		return "repl"
	case CmdTUI:
		return "tui"
	case CmdExec:
		return "exec"
	case CmdRun:
		return "run"
	case CmdConfig:
		return "config"
	case CmdVersion:
		return "version"
	case CmdHelp:
		return "help"
	default:
		return fmt.Sprintf("Command(%d)", int(c))
	}
}

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	ConfigPath string
	Verbose    bool
	Quiet      bool
	NoColor    bool

	// exec
	File   string
	Strict bool

	// run
	Line string

	// config
	Subcommand string
	ConfigKey  string
	ConfigVal  string

	// Explicit is false when no command was given and CmdREPL is the
	// default.
	Explicit bool

	// Raw args after the command name
	Raw []string
}

const usageText = `# rigcon

An interactive command console. Commands are registered by the host
program; bare variable names read and write configuration.

## Usage

    rigcon [flags]                 Start the REPL (default on a terminal)
    rigcon repl                    Line-editing console with history
    rigcon tui                     Full-screen console
    rigcon exec <file|-> [--strict]  Run one console line per input line
    rigcon run "<line>"            Run a single console line
    rigcon config [show|path|get|set|reset]  Configuration
    rigcon version                 Version information
    rigcon help                    This help

## Flags

    --config <path>   Use a different config file
    -v, --verbose     Debug logging
    -q, --quiet       Only log errors
    --no-color        Disable colors (also NO_COLOR)

## Console syntax

    print "Hello, World!"          Quoted strings keep spaces
    cheats.fly                     Show a variable
    cheats.fly on                  Set a variable
    find log                       Search commands and variables

Version: %s
`

// PrintUsage writes the usage text, rendered as markdown on a terminal.
func PrintUsage(w io.Writer) {
	fmt.Fprint(w, RenderMarkdown(fmt.Sprintf(usageText, Version)))
}

// PrintVersion prints version information.
func PrintVersion(w io.Writer) {
	fmt.Fprintf(w, "rigcon version %s\n", Version)
	fmt.Fprintf(w, "  Git commit: %s\n", GitCommit)
	fmt.Fprintf(w, "  Build date: %s\n", BuildDate)
	fmt.Fprintf(w, "  Go version: %s\n", runtime.Version())
}

// Parse parses command-line arguments (without the program name) and
// returns the command and args.
func Parse(argv []string) (Command, Args, error) {
	remaining, parsedArgs, err := parseGlobalFlags(argv)
	if err != nil {
		return CmdHelp, parsedArgs, err
	}

	if len(remaining) == 0 {
		return CmdREPL, parsedArgs, nil
	}

	cmd := strings.ToLower(remaining[0])
	remaining = remaining[1:]
	parsedArgs.Raw = remaining
	parsedArgs.Explicit = true

	switch cmd {
	case "repl", "console":
		return CmdREPL, parsedArgs, nil

	case "tui":
		return CmdTUI, parsedArgs, nil

	case "exec", "script":
		p := NewArgParser(remaining, "strict")
		parsedArgs.Strict = p.BoolFlag("strict")
		parsedArgs.File = p.Positional(0)
		switch {
		case parsedArgs.File == "":
			return CmdExec, parsedArgs, &ValidationError{
				Field:   "file",
				Reason:  "required argument missing",
				Example: "rigcon exec boot.con",
			}
		case p.PositionalCount() > 1:
			return CmdExec, parsedArgs, &ValidationError{
				Field:   "file",
				Value:   strings.Join(p.PositionalFrom(1), " "),
				Reason:  "exec takes a single script",
				Example: "rigcon exec boot.con",
			}
		}
		return CmdExec, parsedArgs, nil

	case "run":
		// The line is taken verbatim so console quoting survives.
		parsedArgs.Line = strings.Join(remaining, " ")
		if strings.TrimSpace(parsedArgs.Line) == "" {
			return CmdRun, parsedArgs, &ValidationError{
				Field:   "line",
				Reason:  "required argument missing",
				Example: `rigcon run 'print "hello"'`,
			}
		}
		return CmdRun, parsedArgs, nil

	case "config":
		p := NewArgParser(remaining)
		parsedArgs.Subcommand = p.Positional(0)
		parsedArgs.ConfigKey = p.Positional(1)
		parsedArgs.ConfigVal = strings.Join(p.PositionalFrom(2), " ")
		return CmdConfig, parsedArgs, nil

	case "version", "--version":
		return CmdVersion, parsedArgs, nil

	case "help", "--help", "-h":
		return CmdHelp, parsedArgs, nil

	default:
		return CmdHelp, parsedArgs, &ValidationError{
			Field:  "command",
			Value:  cmd,
			Reason: "unknown command",
		}
	}
}

// parseGlobalFlags consumes the flags that may appear before the command.
func parseGlobalFlags(args []string) ([]string, Args, error) {
	var parsedArgs Args

	i := 0
	for i < len(args) {
		arg := args[i]

		switch {
		case arg == "--config":
			if i+1 >= len(args) {
				return nil, parsedArgs, &ValidationError{Field: "--config", Reason: "missing path"}
			}
			i++
			parsedArgs.ConfigPath = args[i]
		case strings.HasPrefix(arg, "--config="):
			parsedArgs.ConfigPath = strings.TrimPrefix(arg, "--config=")
		case arg == "-v" || arg == "--verbose":
			parsedArgs.Verbose = true
		case arg == "-q" || arg == "--quiet":
			parsedArgs.Quiet = true
		case arg == "--no-color":
			parsedArgs.NoColor = true
		default:
			// First non-global argument starts the command.
			return args[i:], parsedArgs, nil
		}
		i++
	}

	return nil, parsedArgs, nil
}
