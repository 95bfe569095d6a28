// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package console

import (
	"fmt"
	"strings"
)

// =============================================================================
// CONFIGURATION VARIABLES
// =============================================================================

// Variable is a named, typed, mutable value with a default. The console
// reads and writes variables but never creates or destroys them.
type Variable interface {
	Name() string
	Description() string
	Kind() Kind
	Value() any
	Default() any
	SetValue(v any) error
}

// VariableStore looks variables up by exact name.
type VariableStore interface {
	// Variable returns the variable named name.
	Variable(name string) (Variable, bool)

	// Variables returns every variable ordered by name.
	Variables() []Variable
}

// formatValue renders a variable value the way the console prints it.
func formatValue(v any) string {
	if v == nil {
		return "null"
	}
	return strings.ToLower(fmt.Sprint(v))
}
