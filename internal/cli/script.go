// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// script.go - Non-interactive execution for exec and run.

package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// OpenScript opens name for reading; "-" is stdin.
func OpenScript(name string) (io.ReadCloser, error) {
	if name == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(name)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Resource: "script", ID: name}
		}
		return nil, err
	}
	return f, nil
}

// RunScript executes one console line per input line. Blank lines and lines
// starting with '#' are skipped. In strict mode the first failing line
// stops the script with a *LineError; otherwise all lines run and
// ErrScriptFailed reports how many failed. quit ends the script early.
func RunScript(app *App, r io.Reader, strict bool) error {
	scanner := bufio.NewScanner(r)

	lineNo, executed, failed := 0, 0, 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		executed++
		if err := app.Console.Exec(line); err != nil {
			if strict {
				return &LineError{Line: lineNo, Text: line, Err: err}
			}
			failed++
		}
		if app.Quitting() {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return WrapError(err, "failed to read script")
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrScriptFailed, failed, executed)
	}
	return nil
}

// RunLine executes a single console line.
func RunLine(app *App, line string) error {
	return app.Console.Exec(line)
}
