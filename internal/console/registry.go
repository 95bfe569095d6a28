// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package console

import (
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// =============================================================================
// COMMAND DEFINITION
// =============================================================================

// Command is a registered, invocable unit.
type Command struct {
	// ID identifies this exact registration
	ID uuid.UUID

	// Name is matched case-sensitively; spaces become underscores
	Name string

	// Description is shown by help and find
	Description string

	// Params are the parameter kinds in positional order
	Params []Kind

	// invoke calls the handler with already coerced arguments
	invoke func(args []any) error
}

// Arity returns the number of parameters the command takes.
func (c *Command) Arity() int {
	return len(c.Params)
}

// NewCommand builds a command from an explicit signature. invoke receives
// one value per parameter, coerced to the matching kind (nil for KindNull).
// Most callers use the typed Register helpers instead.
func NewCommand(name, description string, params []Kind, invoke func(args []any) error) *Command {
	return &Command{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		Params:      params,
		invoke:      invoke,
	}
}

// normalizeName replaces spaces so that a name is always one token.
func normalizeName(name string) string {
	return strings.ReplaceAll(name, " ", "_")
}

// =============================================================================
// COMMAND REGISTRY
// =============================================================================

// Registry holds all registered commands in registration order.
type Registry struct {
	mu       sync.RWMutex
	commands []*Command
	log      logrus.FieldLogger
}

// NewRegistry creates an empty registry. A nil logger discards output.
func NewRegistry(log logrus.FieldLogger) *Registry {
	if log == nil {
		log = discardLogger()
	}
	return &Registry{log: log}
}

// Register adds a command. A command whose name and parameter count are
// already taken is skipped with a warning and ErrDuplicateCommand, as is a
// command that is itself already registered.
func (r *Registry) Register(cmd *Command) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := normalizeName(cmd.Name)
	if name == "" {
		r.log.Warn("Command name is empty, skipping registration.")
		return ErrEmptyName
	}

	for _, existing := range r.commands {
		if existing == cmd || (cmd.ID != uuid.Nil && existing.ID == cmd.ID) {
			r.log.WithFields(logrus.Fields{
				"command": name,
				"id":      cmd.ID,
			}).Warnf("Command '%s' is already registered.", name)
			return ErrDuplicateCommand
		}
		if existing.Name == name && existing.Arity() == cmd.Arity() {
			r.log.WithFields(logrus.Fields{
				"command": name,
				"arity":   cmd.Arity(),
			}).Warnf("Command with this name(%s) and the same parameters count already exists.", name)
			return ErrDuplicateCommand
		}
	}

	cmd.Name = name
	if cmd.ID == uuid.Nil {
		cmd.ID = uuid.New()
	}
	r.commands = append(r.commands, cmd)
	return nil
}

// UnregisterName removes every command with the given name regardless of
// arity and returns how many were removed.
func (r *Registry) UnregisterName(name string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.commands[:0]
	removed := 0
	for _, cmd := range r.commands {
		if cmd.Name == name {
			removed++
			continue
		}
		kept = append(kept, cmd)
	}
	clear(r.commands[len(kept):])
	r.commands = kept
	return removed
}

// Unregister removes exactly the given command.
func (r *Registry) Unregister(cmd *Command) bool {
	return r.removeFirst(func(c *Command) bool { return c == cmd })
}

// UnregisterID removes the command registered under id.
func (r *Registry) UnregisterID(id uuid.UUID) bool {
	return r.removeFirst(func(c *Command) bool { return c.ID == id })
}

func (r *Registry) removeFirst(match func(*Command) bool) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, cmd := range r.commands {
		if match(cmd) {
			r.commands = append(r.commands[:i], r.commands[i+1:]...)
			return true
		}
	}
	return false
}

// Lookup returns every command with the given name, in registration order.
func (r *Registry) Lookup(name string) []*Command {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var found []*Command
	for _, cmd := range r.commands {
		if cmd.Name == name {
			found = append(found, cmd)
		}
	}
	return found
}

// All returns a snapshot of all registered commands in registration order.
func (r *Registry) All() []*Command {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cmds := make([]*Command, len(r.commands))
	copy(cmds, r.commands)
	return cmds
}

// Names returns each distinct command name once, in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]bool, len(r.commands))
	names := make([]string, 0, len(r.commands))
	for _, cmd := range r.commands {
		if !seen[cmd.Name] {
			seen[cmd.Name] = true
			names = append(names, cmd.Name)
		}
	}
	return names
}

// Len returns the number of registered commands.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.commands)
}
