// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package console

import (
	"sort"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

// fakeVar is an in-memory Variable.
type fakeVar struct {
	name, description string
	kind              Kind
	value, def        any
	setErr            error
	sets              int
}

func (v *fakeVar) Name() string        { return v.name }
func (v *fakeVar) Description() string { return v.description }
func (v *fakeVar) Kind() Kind          { return v.kind }
func (v *fakeVar) Value() any          { return v.value }
func (v *fakeVar) Default() any        { return v.def }

func (v *fakeVar) SetValue(value any) error {
	v.sets++
	if v.setErr != nil {
		return v.setErr
	}
	v.value = value
	return nil
}

// fakeStore records every lookup.
type fakeStore struct {
	vars    map[string]*fakeVar
	lookups int
}

func newFakeStore(vars ...*fakeVar) *fakeStore {
	s := &fakeStore{vars: make(map[string]*fakeVar)}
	for _, v := range vars {
		s.vars[v.name] = v
	}
	return s
}

func (s *fakeStore) Variable(name string) (Variable, bool) {
	s.lookups++
	v, ok := s.vars[name]
	if !ok {
		return nil, false
	}
	return v, true
}

func (s *fakeStore) Variables() []Variable {
	out := make([]Variable, 0, len(s.vars))
	for _, v := range s.vars {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

func flyVar() *fakeVar {
	return &fakeVar{
		name:        "cheats.fly",
		description: "Lets the player fly",
		kind:        KindBool,
		value:       false,
		def:         false,
	}
}

// newTestConsole returns a console with the builtins registered, backed by
// store, and a hook capturing its log output.
func newTestConsole(t *testing.T, store VariableStore) (*Console, *test.Hook) {
	t.Helper()
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.InfoLevel)

	c := New(store, logger)
	c.SetColoredFind(false)
	RegisterBuiltins(c)
	hook.Reset()
	return c, hook
}

func messages(hook *test.Hook) []string {
	var out []string
	for _, e := range hook.AllEntries() {
		out = append(out, e.Message)
	}
	return out
}
