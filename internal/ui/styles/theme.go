// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"
)

// Theme holds the styles of the console TUI.
type Theme struct {
	Width  int
	Height int

	Header      lipgloss.Style
	HeaderTitle lipgloss.Style
	HeaderHint  lipgloss.Style

	Echo       lipgloss.Style
	Info       lipgloss.Style
	Warning    lipgloss.Style
	Error      lipgloss.Style
	Debug      lipgloss.Style
	Candidates lipgloss.Style

	InputPrompt      lipgloss.Style
	InputPlaceholder lipgloss.Style
	Separator        lipgloss.Style
}

// NewTheme creates the default theme.
func NewTheme() *Theme {
	t := &Theme{Width: 80, Height: 24}

	t.Header = lipgloss.NewStyle().
		Background(SurfaceDim).
		Padding(0, 1)
	t.HeaderTitle = lipgloss.NewStyle().
		Foreground(Purple).
		Bold(true)
	t.HeaderHint = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.Echo = lipgloss.NewStyle().Foreground(Cyan)
	t.Info = lipgloss.NewStyle().Foreground(TextPrimary)
	t.Warning = lipgloss.NewStyle().Foreground(Amber)
	t.Error = lipgloss.NewStyle().Foreground(Rose).Bold(true)
	t.Debug = lipgloss.NewStyle().Foreground(TextMuted)
	t.Candidates = lipgloss.NewStyle().Foreground(TextSecondary).Italic(true)

	t.InputPrompt = lipgloss.NewStyle().Foreground(Cyan).Bold(true)
	t.InputPlaceholder = lipgloss.NewStyle().Foreground(TextMuted)
	t.Separator = lipgloss.NewStyle().Foreground(Overlay)

	return t
}

// SetSize updates the terminal dimensions.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}

// ForLevel returns the style for a log entry of level.
func (t *Theme) ForLevel(level logrus.Level) lipgloss.Style {
	switch {
	case level <= logrus.ErrorLevel:
		return t.Error
	case level == logrus.WarnLevel:
		return t.Warning
	case level == logrus.InfoLevel:
		return t.Info
	default:
		return t.Debug
	}
}
