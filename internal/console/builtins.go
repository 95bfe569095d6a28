// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package console

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// matchStyle highlights the searched text in find output.
var matchStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)

// =============================================================================
// BUILT-IN COMMANDS
// =============================================================================

// RegisterBuiltins registers help, find, print, warning, error and quit.
func RegisterBuiltins(c *Console) {
	r := c.registry
	Register0(r, "help", "Prints all registered commands", c.help)
	Register1(r, "find", "Looks for commands that have the given string in its name or description.", c.find)
	Register1(r, "print", "Prints given string to the log.", func(s string) { c.log.Info(s) })
	Register1(r, "warning", "Prints given warning string to the log.", func(s string) { c.log.Warn(s) })
	Register1(r, "error", "Prints given error string to the log.", func(s string) { c.log.Error(s) })
	Register0(r, "quit", "Exits the console.", c.doQuit)
}

func (c *Console) help() {
	cmds := c.registry.All()

	width := 0
	for _, cmd := range cmds {
		width = max(width, runewidth.StringWidth(cmd.Name))
	}
	for _, cmd := range cmds {
		c.log.Infof("%s: %s", runewidth.FillRight(cmd.Name, width), cmd.Description)
	}
}

// FindLines returns the sorted find output for query: every command and
// variable whose name or description contains it.
func (c *Console) FindLines(query string) []string {
	type match struct{ name, description string }
	var matches []match

	for _, cmd := range c.registry.All() {
		if strings.Contains(cmd.Name, query) || strings.Contains(cmd.Description, query) {
			matches = append(matches, match{cmd.Name, cmd.Description})
		}
	}
	if c.vars != nil {
		for _, v := range c.vars.Variables() {
			if strings.Contains(v.Name(), query) || strings.Contains(v.Description(), query) {
				matches = append(matches, match{v.Name(), v.Description()})
			}
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].name != matches[j].name {
			return matches[i].name < matches[j].name
		}
		return matches[i].description < matches[j].description
	})

	colored := c.ColoredFind()
	lines := make([]string, len(matches))
	for i, m := range matches {
		if colored {
			lines[i] = highlight(m.name, query) + ": " + highlight(m.description, query)
		} else {
			lines[i] = m.name + ": " + m.description
		}
	}
	return lines
}

func (c *Console) find(query string) {
	for _, line := range c.FindLines(query) {
		c.log.Info(line)
	}
}

func (c *Console) doQuit() {
	c.mu.RLock()
	quit := c.quit
	c.mu.RUnlock()

	if quit == nil {
		c.log.Warn("Nothing to quit.")
		return
	}
	quit()
}

// highlight renders every occurrence of sub inside s with matchStyle.
func highlight(s, sub string) string {
	if sub == "" {
		return s
	}
	parts := strings.Split(s, sub)
	return strings.Join(parts, matchStyle.Render(sub))
}
