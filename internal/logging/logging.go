// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package logging builds the logrus logger used by the console and its
// front ends.
//
// Console output (help listings, variable reads, errors) is written as log
// entries, so the formatter chosen here decides how the console looks on a
// plain terminal. The TUI installs a LineHook instead and renders entries
// itself.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/jeranaias/rigrun-console/internal/config"
)

// =============================================================================
// LOGGER CONSTRUCTION
// =============================================================================

// New creates a logger writing to out with the level and format from cfg.
// An invalid level falls back to info with a warning.
func New(cfg config.LogConfig, out io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)
	if err := Apply(logger, cfg); err != nil {
		logger.SetLevel(logrus.InfoLevel)
		logger.WithError(err).Warn("Invalid log settings, using info level")
	}
	return logger
}

// Apply updates an existing logger's level and formatter in place.
func Apply(logger *logrus.Logger, cfg config.LogConfig) error {
	logger.SetFormatter(Formatter(cfg.Format))

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	logger.SetLevel(level)
	return nil
}

// SetLevel parses name and applies it to logger.
func SetLevel(logger *logrus.Logger, name string) error {
	level, err := logrus.ParseLevel(name)
	if err != nil {
		return err
	}
	logger.SetLevel(level)
	return nil
}

// Formatter returns the logrus formatter for a config format name.
// Unknown names get the console formatter.
func Formatter(format string) logrus.Formatter {
	switch strings.ToLower(format) {
	case "json":
		return &logrus.JSONFormatter{}
	case "text":
		return &logrus.TextFormatter{FullTimestamp: true}
	default:
		return MessageFormatter{}
	}
}

// =============================================================================
// CONSOLE FORMATTER
// =============================================================================

// MessageFormatter prints just the message, prefixed by the level for
// anything above info. It is the "console" format.
type MessageFormatter struct{}

// Format implements logrus.Formatter.
func (MessageFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var b strings.Builder
	if entry.Level < logrus.InfoLevel {
		b.WriteString(LevelLabel(entry.Level))
		b.WriteString(": ")
	}
	b.WriteString(entry.Message)
	b.WriteByte('\n')
	return []byte(b.String()), nil
}

// LevelLabel returns a short upper-case label for level.
func LevelLabel(level logrus.Level) string {
	switch level {
	case logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel:
		return "ERROR"
	case logrus.WarnLevel:
		return "WARN"
	case logrus.InfoLevel:
		return "INFO"
	case logrus.DebugLevel:
		return "DEBUG"
	default:
		return "TRACE"
	}
}
