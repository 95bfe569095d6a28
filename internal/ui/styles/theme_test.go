// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNewTheme(t *testing.T) {
	theme := NewTheme()
	if theme.Width != 80 || theme.Height != 24 {
		t.Errorf("default size = %dx%d, want 80x24", theme.Width, theme.Height)
	}

	theme.SetSize(120, 40)
	if theme.Width != 120 || theme.Height != 40 {
		t.Errorf("SetSize() size = %dx%d, want 120x40", theme.Width, theme.Height)
	}
}

func TestTheme_ForLevel(t *testing.T) {
	theme := NewTheme()

	tests := []struct {
		level logrus.Level
		want  any
	}{
		{logrus.PanicLevel, theme.Error.GetForeground()},
		{logrus.ErrorLevel, theme.Error.GetForeground()},
		{logrus.WarnLevel, theme.Warning.GetForeground()},
		{logrus.InfoLevel, theme.Info.GetForeground()},
		{logrus.DebugLevel, theme.Debug.GetForeground()},
		{logrus.TraceLevel, theme.Debug.GetForeground()},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			if got := theme.ForLevel(tt.level).GetForeground(); got != tt.want {
				t.Errorf("ForLevel(%s) foreground = %v, want %v", tt.level, got, tt.want)
			}
		})
	}
}
