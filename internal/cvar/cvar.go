// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cvar

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/jeranaias/rigrun-console/internal/console"
)

var (
	// ErrDuplicateVariable is returned when a name is defined twice.
	ErrDuplicateVariable = errors.New("variable already defined")

	// ErrUnsupportedType is returned for value types outside console kinds.
	ErrUnsupportedType = errors.New("unsupported variable type")

	// ErrTypeMismatch is returned by SetValue for a value of the wrong type.
	ErrTypeMismatch = errors.New("value has the wrong type")
)

// =============================================================================
// VARIABLE
// =============================================================================

// Var is a typed configuration variable. It implements console.Variable.
type Var struct {
	name        string
	description string
	kind        console.Kind
	def         any

	mu       sync.RWMutex
	get      func() any
	set      func(any) bool
	checks   []func(any) error
	onChange []func(any)
}

func newVar[T any](name, description string, def T, ptr *T) (*Var, error) {
	kind, ok := console.KindOf[T]()
	if !ok {
		return nil, fmt.Errorf("%s: %w: %T", name, ErrUnsupportedType, def)
	}
	return &Var{
		name:        name,
		description: description,
		kind:        kind,
		def:         def,
		get:         func() any { return *ptr },
		set: func(value any) bool {
			t, ok := value.(T)
			if ok {
				*ptr = t
			}
			return ok
		},
	}, nil
}

func (v *Var) Name() string        { return v.name }
func (v *Var) Description() string { return v.description }
func (v *Var) Kind() console.Kind  { return v.kind }
func (v *Var) Default() any        { return v.def }

// Value returns the current value.
func (v *Var) Value() any {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.get()
}

// SetValue stores value, which must have the variable's Go type and pass
// every check, and notifies change listeners.
func (v *Var) SetValue(value any) error {
	v.mu.Lock()
	for _, check := range v.checks {
		if err := check(value); err != nil {
			v.mu.Unlock()
			return fmt.Errorf("%s: %w", v.name, err)
		}
	}
	if !v.set(value) {
		v.mu.Unlock()
		return fmt.Errorf("%w: %s expects %s, got %T", ErrTypeMismatch, v.name, v.kind, value)
	}
	listeners := append([]func(any){}, v.onChange...)
	v.mu.Unlock()

	for _, fn := range listeners {
		fn(value)
	}
	return nil
}

// Reset restores the default value.
func (v *Var) Reset() error {
	return v.SetValue(v.def)
}

// Check registers fn to validate values before they are stored. fn sees
// the value as passed to SetValue, before the type check.
func (v *Var) Check(fn func(value any) error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.checks = append(v.checks, fn)
}

// OnChange registers fn to be called with every new value.
func (v *Var) OnChange(fn func(value any)) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.onChange = append(v.onChange, fn)
}

// =============================================================================
// STORE
// =============================================================================

// Store holds variables by name. It implements console.VariableStore.
type Store struct {
	mu   sync.RWMutex
	vars map[string]*Var
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{vars: make(map[string]*Var)}
}

// Define creates a variable that owns its value, starting at def.
func Define[T any](s *Store, name, description string, def T) (*Var, error) {
	value := def
	v, err := newVar(name, description, def, &value)
	if err != nil {
		return nil, err
	}
	if err := s.add(v); err != nil {
		return nil, err
	}
	return v, nil
}

// Bind creates a variable backed by *ptr. The value at bind time becomes
// the default.
func Bind[T any](s *Store, name, description string, ptr *T) (*Var, error) {
	v, err := newVar(name, description, *ptr, ptr)
	if err != nil {
		return nil, err
	}
	if err := s.add(v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *Store) add(v *Var) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.vars[v.name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateVariable, v.name)
	}
	s.vars[v.name] = v
	return nil
}

// Lookup returns the variable named name.
func (s *Store) Lookup(name string) (*Var, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.vars[name]
	return v, ok
}

// Variable implements console.VariableStore.
func (s *Store) Variable(name string) (console.Variable, bool) {
	v, ok := s.Lookup(name)
	if !ok {
		return nil, false
	}
	return v, true
}

// Variables returns all variables sorted by name.
func (s *Store) Variables() []console.Variable {
	s.mu.RLock()
	names := make([]string, 0, len(s.vars))
	for name := range s.vars {
		names = append(names, name)
	}
	sort.Strings(names)

	vars := make([]console.Variable, len(names))
	for i, name := range names {
		vars[i] = s.vars[name]
	}
	s.mu.RUnlock()
	return vars
}

// Remove deletes the variable named name.
func (s *Store) Remove(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.vars[name]
	delete(s.vars, name)
	return ok
}

// Len returns the number of variables.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.vars)
}
