// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package console

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// =============================================================================
// COMPLETER
// =============================================================================

// Completion is a single completion suggestion.
type Completion struct {
	// Value to insert
	Value string

	// Description shown alongside
	Description string

	// Score for ranking (higher = better match)
	Score int
}

// Completer completes command and variable names for a console.
type Completer struct {
	console *Console
}

// NewCompleter creates a completer for c.
func NewCompleter(c *Console) *Completer {
	return &Completer{console: c}
}

// Complete returns ranked completions for a partially typed name. Prefix
// matches come first; when none exist, names containing the typed
// characters in order are offered instead.
func (c *Completer) Complete(partial string) []Completion {
	entries := c.entries()

	var completions []Completion
	lower := strings.ToLower(partial)
	for _, e := range entries {
		if strings.HasPrefix(strings.ToLower(e.Value), lower) {
			e.Score = calculateScore(e.Value, partial)
			completions = append(completions, e)
		}
	}

	if len(completions) == 0 && partial != "" {
		names := make([]string, len(entries))
		for i, e := range entries {
			names[i] = e.Value
		}
		for _, rank := range fuzzy.RankFindFold(partial, names) {
			e := entries[rank.OriginalIndex]
			e.Score = calculateScore(e.Value, partial) - rank.Distance
			completions = append(completions, e)
		}
	}

	sortCompletions(completions)
	return completions
}

// Candidates returns full replacement lines for line, for use as a line
// editor completer. While the name is typed, names are completed; after a
// boolean variable name, its literal values are offered.
func (c *Completer) Candidates(line string) []string {
	trimmed := strings.TrimLeft(line, " \t")
	name, args := ParseCommand(trimmed)

	if !strings.ContainsAny(trimmed, " \t") {
		var out []string
		for _, comp := range c.Complete(name) {
			out = append(out, comp.Value)
		}
		return out
	}

	if len(args) > 1 || c.console.vars == nil || len(c.console.registry.Lookup(name)) > 0 {
		return nil
	}
	v, ok := c.console.vars.Variable(name)
	if !ok || v.Kind() != KindBool {
		return nil
	}

	partial := ""
	if len(args) == 1 {
		// The value is already complete.
		if strings.TrimRight(trimmed, " \t") != trimmed {
			return nil
		}
		partial = strings.ToLower(args[0])
	}
	var out []string
	for _, literal := range []string{"on", "off"} {
		if strings.HasPrefix(literal, partial) {
			out = append(out, name+" "+literal)
		}
	}
	return out
}

// entries lists every command name once and every variable name.
func (c *Completer) entries() []Completion {
	var entries []Completion
	seen := make(map[string]bool)
	for _, cmd := range c.console.registry.All() {
		if seen[cmd.Name] {
			continue
		}
		seen[cmd.Name] = true
		entries = append(entries, Completion{Value: cmd.Name, Description: cmd.Description})
	}
	if c.console.vars != nil {
		for _, v := range c.console.vars.Variables() {
			if seen[v.Name()] {
				continue
			}
			seen[v.Name()] = true
			entries = append(entries, Completion{Value: v.Name(), Description: v.Description()})
		}
	}
	return entries
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// calculateScore calculates a match score for completion ranking.
// Higher score = better match.
func calculateScore(value, partial string) int {
	value = strings.ToLower(value)
	partial = strings.ToLower(partial)

	score := 100

	if value == partial {
		return score + 100
	}

	if strings.HasPrefix(value, partial) {
		score += 50
		// Bonus for shorter completions
		score += 20 - len(value)
	}

	// Length penalty
	score -= len(value) / 2

	return score
}

// sortCompletions sorts completions by score (descending), then alphabetically.
func sortCompletions(completions []Completion) {
	sort.Slice(completions, func(i, j int) bool {
		if completions[i].Score != completions[j].Score {
			return completions[i].Score > completions[j].Score
		}
		return completions[i].Value < completions[j].Value
	})
}
