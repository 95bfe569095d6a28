// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package console

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggest(t *testing.T) {
	known := []string{"help", "find", "print", "warning", "error", "quit", "nonexistent"}

	tests := []struct {
		input  string
		want   string
		wantOK bool
	}{
		{"hlep", "help", true},
		{"fnd", "find", true},
		{"qit", "quit", true},
		{"prnt", "print", true},
		{"HELP", "help", true},
		{"warnign", "warning", true},
		{"nonexistent_cmd", "nonexistent", true},
		{"err", "error", true},
		{"help", "", false},
		{"h", "", false},
		{"xyzzy", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := Suggest(tt.input, known)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSuggest_ThresholdCountsRunes(t *testing.T) {
	tests := []struct {
		input  string
		known  string
		wantOK bool
	}{
		{"кт", "кот", true},
		{"ксн", "кот", false},
		{"абвгдежз", "абвгдийк", false},
		{"абвгдеж", "абвгдежз", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := Suggest(tt.input, []string{tt.known})
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.known, got)
			}
		})
	}
}

func TestSuggest_PicksClosest(t *testing.T) {
	got, ok := Suggest("prnt", []string{"paint", "print"})
	assert.True(t, ok)
	assert.Equal(t, "print", got)
}

func TestSuggest_NoKnownNames(t *testing.T) {
	_, ok := Suggest("help", nil)
	assert.False(t, ok)
}

func TestValidateCommand(t *testing.T) {
	known := []string{"help", "find"}

	matched, suggestion := ValidateCommand("help", known)
	assert.True(t, matched)
	assert.Empty(t, suggestion)

	matched, suggestion = ValidateCommand("hlep", known)
	assert.False(t, matched)
	assert.Equal(t, "help", suggestion)

	matched, suggestion = ValidateCommand("zzzzzz", known)
	assert.False(t, matched)
	assert.Empty(t, suggestion)
}
