// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// suggest.go - Command suggestion for typo correction.
package console

import (
	"strings"
	"unicode/utf8"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// minPrefixLen is the shortest name that may match by prefix alone.
const minPrefixLen = 3

// ValidateCommand reports whether name is a known command and, when it is
// not, the closest known name if one is close enough.
func ValidateCommand(name string, known []string) (matched bool, suggestion string) {
	for _, k := range known {
		if k == name {
			return true, ""
		}
	}
	suggestion, _ = Suggest(name, known)
	return false, suggestion
}

// Suggest returns a known name close to input. It never returns input
// itself and returns false when nothing is close enough.
//
// Names are compared case-insensitively by Levenshtein distance with a
// threshold based on input length. A name that is a prefix of the input
// (or the other way round) also qualifies, ranked by its distance.
func Suggest(input string, known []string) (string, bool) {
	lower := strings.ToLower(input)
	length := utf8.RuneCountInString(lower)

	// Don't suggest for very short inputs (likely intentional)
	if length < 2 {
		return "", false
	}

	// For very short commands (<=3 chars): allow 1 edit
	// For short and medium commands (4-8 chars): allow 2 edits
	// For longer commands: allow 3 edits
	maxDistance := 1
	if length >= 4 {
		maxDistance = 2
	}
	if length > 8 {
		maxDistance = 3
	}

	bestMatch := ""
	bestDistance := -1

	for _, name := range known {
		if name == input {
			continue
		}
		candidate := strings.ToLower(name)
		distance := fuzzy.LevenshteinDistance(lower, candidate)

		if distance > maxDistance && !isPrefixMatch(lower, candidate) {
			continue
		}
		if bestDistance == -1 || distance < bestDistance {
			bestDistance = distance
			bestMatch = name
		}
	}

	return bestMatch, bestMatch != ""
}

// isPrefixMatch reports whether one name starts with the other and the
// shorter of the two is long enough to be meaningful.
func isPrefixMatch(a, b string) bool {
	short, long := a, b
	if len(short) > len(long) {
		short, long = long, short
	}
	return utf8.RuneCountInString(short) >= minPrefixLen && strings.HasPrefix(long, short)
}
