// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package console

import (
	"strings"
	"unicode"
)

// =============================================================================
// COMMAND LINE PARSING
// =============================================================================

// ParseCommand splits a command line into the command name and its
// arguments. Quoted arguments keep their inner whitespace and lose the
// quote characters. Blank input yields an empty name and no arguments.
//
//	ParseCommand(`print "Hello, World!"`) // "print", ["Hello, World!"]
func ParseCommand(line string) (name string, args []string) {
	tokens := splitCommandLine(line)
	if len(tokens) == 0 {
		return "", nil
	}
	return tokens[0], tokens[1:]
}

// splitCommandLine splits a command line into tokens, respecting quotes.
// Supports both single and double quotes for arguments with spaces.
func splitCommandLine(input string) []string {
	var tokens []string
	var current strings.Builder
	var inSingleQuote, inDoubleQuote bool
	// quoted marks a token that was opened by a quote so "" survives as an
	// empty argument.
	var quoted bool

	runes := []rune(input)
	for i := 0; i < len(runes); i++ {
		char := runes[i]

		switch {
		case char == '\'' && !inDoubleQuote:
			inSingleQuote = !inSingleQuote
			quoted = true

		case char == '"' && !inSingleQuote:
			inDoubleQuote = !inDoubleQuote
			quoted = true

		case char == '\\' && i+1 < len(runes) && (inDoubleQuote || inSingleQuote):
			next := runes[i+1]
			if next == '"' || next == '\'' || next == '\\' {
				current.WriteRune(next)
				i++
			} else {
				current.WriteRune(char)
			}

		case unicode.IsSpace(char) && !inSingleQuote && !inDoubleQuote:
			if current.Len() > 0 || quoted {
				tokens = append(tokens, current.String())
				current.Reset()
				quoted = false
			}

		default:
			current.WriteRune(char)
		}
	}

	// Unterminated quotes run to the end of the line.
	if current.Len() > 0 || quoted {
		tokens = append(tokens, current.String())
	}

	return tokens
}
