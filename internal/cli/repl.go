// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// repl.go - Interactive line-editing console.
//
// USABILITY: Arrow keys walk the history, Tab completes command and
// variable names, Ctrl+C or Ctrl+D leaves.

package cli

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/jeranaias/rigrun-console/internal/util"
)

// lineReader is the part of liner the loop needs.
type lineReader interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

// REPL reads console lines from the terminal.
type REPL struct {
	app         *App
	line        *liner.State
	historyFile string
}

// NewREPL creates a REPL with history and tab completion.
func NewREPL(app *App) *REPL {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	line.SetTabCompletionStyle(liner.TabPrints)
	line.SetCompleter(app.Completer.Candidates)

	r := &REPL{
		app:         app,
		line:        line,
		historyFile: app.HistoryPath(),
	}
	r.LoadHistory()
	return r
}

// LoadHistory loads command history from file.
func (r *REPL) LoadHistory() {
	if f, err := os.Open(r.historyFile); err == nil {
		r.line.ReadHistory(f)
		f.Close()
	}
}

// SaveHistory persists command history with owner-only permissions.
func (r *REPL) SaveHistory() {
	err := util.AtomicWriteFunc(r.historyFile, 0600, 0700, func(w io.Writer) error {
		_, err := r.line.WriteHistory(w)
		return err
	})
	if err != nil {
		r.app.Log.WithError(err).Debug("Could not write history")
	}
}

// Close saves history and restores the terminal.
func (r *REPL) Close() {
	r.SaveHistory()
	r.line.Close()
}

// Run reads and executes lines until quit, Ctrl+C or end of input.
func (r *REPL) Run() error {
	defer r.Close()
	return runLoop(r.app, r.line)
}

// runLoop executes lines from in. Failed lines have already been logged by
// the console, so they do not end the loop.
func runLoop(app *App, in lineReader) error {
	for !app.Quitting() {
		input, err := in.Prompt(app.Prompt())
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				return nil
			}
			return WrapError(err, "failed to read input")
		}

		if strings.TrimSpace(input) == "" {
			continue
		}
		in.AppendHistory(input)
		app.Console.Execute(input)
	}
	return nil
}
