// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package console

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS
// =============================================================================

var (
	// ErrDuplicateCommand is returned when a command with the same name and
	// parameter count is already registered.
	ErrDuplicateCommand = errors.New("command with this name and parameter count already exists")

	// ErrUnknownCommand is returned when a name resolves to neither a command
	// nor a configuration variable.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrArityMismatch is returned when the name matches a command but no
	// overload takes the given number of arguments.
	ErrArityMismatch = errors.New("invalid argument count")

	// ErrCoercion is returned when a token cannot be converted to the
	// parameter's declared kind.
	ErrCoercion = errors.New("invalid parameter type")

	// ErrReceiverGone is returned when a method command's receiver has been
	// garbage collected.
	ErrReceiverGone = errors.New("command receiver no longer exists")

	// ErrUnsupportedType is returned by typed registration for parameter
	// types outside the supported kinds.
	ErrUnsupportedType = errors.New("unsupported parameter type")

	// ErrEmptyName is returned when registering a command without a name.
	ErrEmptyName = errors.New("command name is empty")
)

// =============================================================================
// TYPED ERRORS
// =============================================================================

// CoercionError describes a token that could not be converted.
type CoercionError struct {
	Token string
	Kind  Kind
	Err   error
}

func (e *CoercionError) Error() string {
	return fmt.Sprintf("Invalid parameter type were given for '%s' expected type of '%s'.", e.Token, e.Kind)
}

func (e *CoercionError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrCoercion}
	}
	return []error{ErrCoercion, e.Err}
}

// ArityError reports a command that exists with other parameter counts.
type ArityError struct {
	Name  string
	Given int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("'%s' command exists, but invalid arguments (%d) were given.", e.Name, e.Given)
}

func (e *ArityError) Unwrap() error {
	return ErrArityMismatch
}

// SuggestionError is an unknown command for which a close match was found.
type SuggestionError struct {
	Name       string
	Suggestion string
}

func (e *SuggestionError) Error() string {
	return "Invalid command syntax. You probably wanted to use " + e.Suggestion
}

func (e *SuggestionError) Unwrap() error {
	return ErrUnknownCommand
}
