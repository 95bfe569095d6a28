// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package console

import (
	"fmt"
	"io"
	"sync"

	"github.com/sirupsen/logrus"
)

// =============================================================================
// CONSOLE
// =============================================================================

// Console parses command lines and dispatches them to registered commands,
// falling back to configuration variables for bare names.
type Console struct {
	registry *Registry
	vars     VariableStore
	log      logrus.FieldLogger

	mu             sync.RWMutex
	autoCorrection bool
	coloredFind    bool
	quit           func()
}

// New creates a console with an empty registry. vars may be nil, in which
// case every variable lookup misses. A nil logger discards output.
func New(vars VariableStore, log logrus.FieldLogger) *Console {
	if log == nil {
		log = discardLogger()
	}
	return &Console{
		registry:       NewRegistry(log),
		vars:           vars,
		log:            log,
		autoCorrection: true,
		coloredFind:    true,
	}
}

// Registry returns the console's command registry.
func (c *Console) Registry() *Registry {
	return c.registry
}

// Variables returns the variable store, which may be nil.
func (c *Console) Variables() VariableStore {
	return c.vars
}

// AutoCorrection reports whether unknown names are checked for typos.
func (c *Console) AutoCorrection() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.autoCorrection
}

// SetAutoCorrection enables or disables typo suggestions.
func (c *Console) SetAutoCorrection(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.autoCorrection = enabled
}

// ColoredFind reports whether find highlights matches.
func (c *Console) ColoredFind() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.coloredFind
}

// SetColoredFind enables or disables match highlighting in find output.
func (c *Console) SetColoredFind(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.coloredFind = enabled
}

// SetQuitHandler installs the function the quit command calls.
func (c *Console) SetQuitHandler(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.quit = fn
}

// =============================================================================
// EXECUTION
// =============================================================================

// Execute runs a command line and reports whether it succeeded.
//
//	print "Hello, World!"
//	some_function 2 2.0 'test' true on off
//	cheats.fly on
//	cheats.fly
func (c *Console) Execute(line string) bool {
	return c.Exec(line) == nil
}

// Exec runs a command line. Every failure is logged before it is returned.
// A panic inside the handler is not recovered.
func (c *Console) Exec(line string) error {
	name, args := ParseCommand(line)
	if name == "" {
		return c.unknown(name)
	}

	candidates := c.registry.Lookup(name)
	if len(candidates) == 0 {
		return c.fallback(name, args)
	}

	var cmd *Command
	for _, candidate := range candidates {
		if candidate.Arity() == len(args) {
			cmd = candidate
			break
		}
	}
	if cmd == nil {
		err := &ArityError{Name: name, Given: len(args)}
		c.log.WithField("command", name).Error(err.Error())
		return err
	}

	values := make([]any, len(args))
	for i, token := range args {
		value, err := Coerce(token, cmd.Params[i])
		if err != nil {
			c.log.WithField("command", name).Error(err.Error())
			return err
		}
		values[i] = value
	}

	entry := c.log.WithFields(logrus.Fields{"command": name, "id": cmd.ID})
	if err := cmd.invoke(values); err != nil {
		entry.Errorf("Command '%s' could not be executed: %v", name, err)
		return fmt.Errorf("%s: %w", name, err)
	}
	entry.Debug("command executed")
	return nil
}

// fallback handles a name without registered commands: a typo suggestion,
// or a variable read or write.
func (c *Console) fallback(name string, args []string) error {
	if c.AutoCorrection() {
		if suggestion, ok := Suggest(name, c.registry.Names()); ok {
			err := &SuggestionError{Name: name, Suggestion: suggestion}
			c.log.WithField("command", name).Error(err.Error())
			return err
		}
	}

	switch len(args) {
	case 0:
		v, ok := c.variable(name)
		if !ok {
			return c.unknown(name)
		}
		c.log.Infof("%s %s (default: %s)", name, formatValue(v.Value()), formatValue(v.Default()))
		return nil

	case 1:
		v, ok := c.variable(name)
		if !ok {
			return c.unknown(name)
		}
		value, err := Coerce(args[0], v.Kind())
		if err != nil {
			c.log.WithField("variable", name).Error(err.Error())
			return err
		}
		if v.Kind() == KindNull {
			return nil
		}
		if err := v.SetValue(value); err != nil {
			c.log.WithField("variable", name).Errorf("Could not set '%s': %v", name, err)
			return fmt.Errorf("set %s: %w", name, err)
		}
		return nil
	}

	return c.unknown(name)
}

func (c *Console) variable(name string) (Variable, bool) {
	if c.vars == nil {
		return nil, false
	}
	return c.vars.Variable(name)
}

func (c *Console) unknown(name string) error {
	c.log.WithField("command", name).Errorf("Unknown command '%s'", name)
	return fmt.Errorf("%w '%s'", ErrUnknownCommand, name)
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
