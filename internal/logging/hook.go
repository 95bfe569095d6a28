// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package logging

import (
	"github.com/sirupsen/logrus"
)

// LineHook forwards every entry at or above a level to a callback.
type LineHook struct {
	levels []logrus.Level
	fn     func(level logrus.Level, message string)
}

// NewLineHook creates a hook for entries at min level or more severe.
func NewLineHook(min logrus.Level, fn func(level logrus.Level, message string)) *LineHook {
	var levels []logrus.Level
	for _, l := range logrus.AllLevels {
		if l <= min {
			levels = append(levels, l)
		}
	}
	return &LineHook{levels: levels, fn: fn}
}

// Levels implements logrus.Hook.
func (h *LineHook) Levels() []logrus.Level {
	return h.levels
}

// Fire implements logrus.Hook.
func (h *LineHook) Fire(entry *logrus.Entry) error {
	h.fn(entry.Level, entry.Message)
	return nil
}
