// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package console

import (
	"fmt"
	"weak"
)

// =============================================================================
// TYPED REGISTRATION
// =============================================================================

// Parameter types are taken from the handler's type parameters. Supported
// types are bool, int, int64, float32, float64, string, Empty and interface
// types that a string satisfies (any).

// Register0 registers a command without parameters.
func Register0(r *Registry, name, description string, fn func()) (*Command, error) {
	return register(r, name, description, nil, func([]any) error {
		fn()
		return nil
	})
}

// Register1 registers a command with one parameter.
func Register1[T1 any](r *Registry, name, description string, fn func(T1)) (*Command, error) {
	return register(r, name, description, []kindFunc{KindOf[T1]}, func(args []any) error {
		fn(arg[T1](args[0]))
		return nil
	})
}

// Register2 registers a command with two parameters.
func Register2[T1, T2 any](r *Registry, name, description string, fn func(T1, T2)) (*Command, error) {
	return register(r, name, description, []kindFunc{KindOf[T1], KindOf[T2]}, func(args []any) error {
		fn(arg[T1](args[0]), arg[T2](args[1]))
		return nil
	})
}

// Register3 registers a command with three parameters.
func Register3[T1, T2, T3 any](r *Registry, name, description string, fn func(T1, T2, T3)) (*Command, error) {
	return register(r, name, description, []kindFunc{KindOf[T1], KindOf[T2], KindOf[T3]}, func(args []any) error {
		fn(arg[T1](args[0]), arg[T2](args[1]), arg[T3](args[2]))
		return nil
	})
}

// Register4 registers a command with four parameters.
func Register4[T1, T2, T3, T4 any](r *Registry, name, description string, fn func(T1, T2, T3, T4)) (*Command, error) {
	return register(r, name, description, []kindFunc{KindOf[T1], KindOf[T2], KindOf[T3], KindOf[T4]}, func(args []any) error {
		fn(arg[T1](args[0]), arg[T2](args[1]), arg[T3](args[2]), arg[T4](args[3]))
		return nil
	})
}

// =============================================================================
// METHOD REGISTRATION
// =============================================================================

// The RegisterMethod helpers bind a handler to a receiver without keeping
// the receiver alive. fn must be a method expression or a function taking
// the receiver explicitly; a method value (obj.Method) would capture the
// receiver and pin it. Once the receiver is collected, executing the
// command fails with ErrReceiverGone.

// RegisterMethod0 registers a receiver-bound command without parameters.
func RegisterMethod0[O any](r *Registry, name, description string, recv *O, fn func(*O)) (*Command, error) {
	ref := weak.Make(recv)
	return register(r, name, description, nil, func([]any) error {
		o := ref.Value()
		if o == nil {
			return ErrReceiverGone
		}
		fn(o)
		return nil
	})
}

// RegisterMethod1 registers a receiver-bound command with one parameter.
func RegisterMethod1[O, T1 any](r *Registry, name, description string, recv *O, fn func(*O, T1)) (*Command, error) {
	ref := weak.Make(recv)
	return register(r, name, description, []kindFunc{KindOf[T1]}, func(args []any) error {
		o := ref.Value()
		if o == nil {
			return ErrReceiverGone
		}
		fn(o, arg[T1](args[0]))
		return nil
	})
}

// RegisterMethod2 registers a receiver-bound command with two parameters.
func RegisterMethod2[O, T1, T2 any](r *Registry, name, description string, recv *O, fn func(*O, T1, T2)) (*Command, error) {
	ref := weak.Make(recv)
	return register(r, name, description, []kindFunc{KindOf[T1], KindOf[T2]}, func(args []any) error {
		o := ref.Value()
		if o == nil {
			return ErrReceiverGone
		}
		fn(o, arg[T1](args[0]), arg[T2](args[1]))
		return nil
	})
}

// RegisterMethod3 registers a receiver-bound command with three parameters.
func RegisterMethod3[O, T1, T2, T3 any](r *Registry, name, description string, recv *O, fn func(*O, T1, T2, T3)) (*Command, error) {
	ref := weak.Make(recv)
	return register(r, name, description, []kindFunc{KindOf[T1], KindOf[T2], KindOf[T3]}, func(args []any) error {
		o := ref.Value()
		if o == nil {
			return ErrReceiverGone
		}
		fn(o, arg[T1](args[0]), arg[T2](args[1]), arg[T3](args[2]))
		return nil
	})
}

// RegisterMethod4 registers a receiver-bound command with four parameters.
func RegisterMethod4[O, T1, T2, T3, T4 any](r *Registry, name, description string, recv *O, fn func(*O, T1, T2, T3, T4)) (*Command, error) {
	ref := weak.Make(recv)
	return register(r, name, description, []kindFunc{KindOf[T1], KindOf[T2], KindOf[T3], KindOf[T4]}, func(args []any) error {
		o := ref.Value()
		if o == nil {
			return ErrReceiverGone
		}
		fn(o, arg[T1](args[0]), arg[T2](args[1]), arg[T3](args[2]), arg[T4](args[3]))
		return nil
	})
}

// =============================================================================
// HELPERS
// =============================================================================

type kindFunc func() (Kind, bool)

func register(r *Registry, name, description string, sig []kindFunc, invoke func([]any) error) (*Command, error) {
	params := make([]Kind, len(sig))
	for i, kindOf := range sig {
		kind, ok := kindOf()
		if !ok {
			r.log.WithField("command", name).Warnf("Parameter %d of command '%s' has an unsupported type.", i+1, name)
			return nil, fmt.Errorf("%s parameter %d: %w", name, i+1, ErrUnsupportedType)
		}
		params[i] = kind
	}

	cmd := NewCommand(name, description, params, invoke)
	if err := r.Register(cmd); err != nil {
		return nil, err
	}
	return cmd, nil
}

// arg converts a coerced value to the handler's parameter type. Null
// slots receive the zero value.
func arg[T any](v any) T {
	if t, ok := v.(T); ok {
		return t
	}
	var zero T
	return zero
}
