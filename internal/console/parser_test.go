// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package console

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantName string
		wantArgs []string
	}{
		{"empty", "", "", nil},
		{"blank", "   \t ", "", nil},
		{"bare name", "help", "help", []string{}},
		{"double quoted", `print "Hello, World!"`, "print", []string{"Hello, World!"}},
		{"single quoted", `print 'Hello, World!'`, "print", []string{"Hello, World!"}},
		{"mixed", `some_function 2 2.0 'test' true on off`, "some_function", []string{"2", "2.0", "test", "true", "on", "off"}},
		{"repeated spaces", "find   a    b", "find", []string{"a", "b"}},
		{"tabs", "find\ta", "find", []string{"a"}},
		{"leading space", "  find a", "find", []string{"a"}},
		{"empty quotes", `print ""`, "print", []string{""}},
		{"unterminated quote", `print "open ended`, "print", []string{"open ended"}},
		{"escaped quote", `print "say \"hi\""`, "print", []string{`say "hi"`}},
		{"other quote inside", `print 'it"s'`, "print", []string{`it"s`}},
		{"quote mid token", `print b"c d"e`, "print", []string{"bc de"}},
		{"backslash kept", `print "a\nb"`, "print", []string{`a\nb`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, args := ParseCommand(tt.input)
			assert.Equal(t, tt.wantName, name)
			if len(tt.wantArgs) == 0 {
				assert.Empty(t, args)
			} else {
				assert.Equal(t, tt.wantArgs, args)
			}
		})
	}
}
