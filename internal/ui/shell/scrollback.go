// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package shell

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// DefaultMaxLines bounds the scrollback.
const DefaultMaxLines = 1000

// Line is one entry of console output.
type Line struct {
	Level logrus.Level
	Text  string
	Echo  bool // input typed by the user
}

// Scrollback collects console output. Log hooks may append from any
// goroutine; notify is called after each append.
type Scrollback struct {
	mu     sync.Mutex
	lines  []Line
	max    int
	notify func()
}

// NewScrollback creates a scrollback holding at most max lines.
func NewScrollback(max int) *Scrollback {
	if max <= 0 {
		max = DefaultMaxLines
	}
	return &Scrollback{max: max}
}

// Append adds a log line. Its signature matches logging.NewLineHook.
func (s *Scrollback) Append(level logrus.Level, text string) {
	s.add(Line{Level: level, Text: text})
}

// Echo adds a line the user typed.
func (s *Scrollback) Echo(text string) {
	s.add(Line{Level: logrus.InfoLevel, Text: text, Echo: true})
}

func (s *Scrollback) add(line Line) {
	s.mu.Lock()
	s.lines = append(s.lines, line)
	if over := len(s.lines) - s.max; over > 0 {
		s.lines = append(s.lines[:0], s.lines[over:]...)
	}
	notify := s.notify
	s.mu.Unlock()

	if notify != nil {
		notify()
	}
}

// Lines returns a copy of the current lines.
func (s *Scrollback) Lines() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Line(nil), s.lines...)
}

// Clear removes all lines.
func (s *Scrollback) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = nil
}

// SetNotify installs the change callback.
func (s *Scrollback) SetNotify(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notify = fn
}
