// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package shell provides the full-screen console view for rigcon.
//
// Console output arrives through a logrus hook into a Scrollback, which the
// model renders in a viewport above a single input line.
package shell

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/jeranaias/rigrun-console/internal/cli"
	"github.com/jeranaias/rigrun-console/internal/console"
	"github.com/jeranaias/rigrun-console/internal/logging"
	"github.com/jeranaias/rigrun-console/internal/ui/styles"
)

// scrollbackMsg reports output appended outside of Update, such as config
// reload messages from the watcher.
type scrollbackMsg struct{}

// =============================================================================
// MODEL
// =============================================================================

// Model is the Bubble Tea model of the console view.
type Model struct {
	app   *cli.App
	theme *styles.Theme
	sb    *Scrollback

	input    textinput.Model
	viewport viewport.Model

	// history holds submitted lines; histIdx == len(history) is the draft.
	history []string
	histIdx int
	draft   string

	// candidates lists the last ambiguous Tab completion.
	candidates []string
}

// New creates the console view for app. Log output of app is captured
// into sb, and a clear command is registered.
func New(app *cli.App, sb *Scrollback) Model {
	app.Log.AddHook(logging.NewLineHook(logrus.TraceLevel, sb.Append))

	if _, err := console.RegisterMethod0(app.Console.Registry(), "clear", "Clears the console output.", sb, (*Scrollback).Clear); err != nil {
		app.Log.WithError(err).Debug("clear command not registered")
	}

	theme := styles.NewTheme()

	ti := textinput.New()
	ti.Prompt = app.Prompt()
	ti.PromptStyle = theme.InputPrompt
	ti.Placeholder = "Type a command, Tab to complete..."
	ti.PlaceholderStyle = theme.InputPlaceholder
	ti.CharLimit = 4096
	ti.Focus()

	vp := viewport.New(80, 20)
	vp.SetContent("")

	return Model{
		app:      app,
		theme:    theme,
		sb:       sb,
		input:    ti,
		viewport: vp,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// =============================================================================
// UPDATE
// =============================================================================

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case scrollbackMsg:
		m.refresh(false)
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyEnter:
			return m.submit()

		case tea.KeyTab:
			m.complete()
			return m, nil

		case tea.KeyUp:
			m.historyPrev()
			return m, nil

		case tea.KeyDown:
			m.historyNext()
			return m, nil

		case tea.KeyPgUp, tea.KeyPgDown:
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
		m.candidates = nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit executes the input line.
func (m Model) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	m.input.Reset()
	m.candidates = nil

	if strings.TrimSpace(line) == "" {
		return m, nil
	}

	m.history = append(m.history, line)
	m.histIdx = len(m.history)
	m.draft = ""

	m.sb.Echo(m.input.Prompt + line)
	m.app.Console.Execute(line)
	m.input.Prompt = m.app.Prompt()
	m.refresh(true)

	if m.app.Quitting() {
		return m, tea.Quit
	}
	return m, nil
}

// complete applies Tab completion to the input line.
func (m *Model) complete() {
	value := m.input.Value()
	cands := m.app.Completer.Candidates(value)

	switch len(cands) {
	case 0:
		m.candidates = nil
	case 1:
		m.setInput(cands[0])
		m.candidates = nil
	default:
		if prefix := commonPrefix(cands); len(prefix) > len(value) && strings.HasPrefix(prefix, value) {
			m.setInput(prefix)
		}
		m.candidates = cands
	}
}

func (m *Model) historyPrev() {
	if m.histIdx == 0 {
		return
	}
	if m.histIdx == len(m.history) {
		m.draft = m.input.Value()
	}
	m.histIdx--
	m.setInput(m.history[m.histIdx])
}

func (m *Model) historyNext() {
	if m.histIdx >= len(m.history) {
		return
	}
	m.histIdx++
	if m.histIdx == len(m.history) {
		m.setInput(m.draft)
		return
	}
	m.setInput(m.history[m.histIdx])
}

func (m *Model) setInput(s string) {
	m.input.SetValue(s)
	m.input.CursorEnd()
}

// =============================================================================
// LAYOUT AND RENDERING
// =============================================================================

func (m *Model) resize(width, height int) {
	m.theme.SetSize(width, height)
	m.input.Width = max(width-lipgloss.Width(m.input.Prompt)-1, 1)
	m.viewport.Width = width
	// header + separator + input + footer
	m.viewport.Height = max(height-4, 1)
	m.refresh(true)
}

// refresh re-renders the scrollback. The view follows new output when it
// was already at the bottom, or when follow is set.
func (m *Model) refresh(follow bool) {
	atBottom := m.viewport.AtBottom()
	width := m.viewport.Width

	lines := m.sb.Lines()
	rendered := make([]string, len(lines))
	for i, line := range lines {
		style := m.theme.ForLevel(line.Level)
		if line.Echo {
			style = m.theme.Echo
		}
		text := line.Text
		if !line.Echo && line.Level < logrus.InfoLevel {
			text = logging.LevelLabel(line.Level) + ": " + text
		}
		rendered[i] = style.Width(width).Render(text)
	}

	m.viewport.SetContent(strings.Join(rendered, "\n"))
	if follow || atBottom {
		m.viewport.GotoBottom()
	}
}

// View implements tea.Model.
func (m Model) View() string {
	width := m.theme.Width

	title := m.theme.HeaderTitle.Render("rigcon " + cli.Version)
	hint := m.theme.HeaderHint.Render("  help · find <text> · quit")
	header := m.theme.Header.Width(width).Render(title + hint)

	separator := m.theme.Separator.Render(strings.Repeat("─", max(width, 1)))

	footer := ""
	if len(m.candidates) > 0 {
		footer = m.theme.Candidates.Render(strings.Join(m.candidates, "  "))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		m.viewport.View(),
		separator,
		m.input.View(),
		footer,
	)
}

// commonPrefix returns the longest prefix shared by all of ss.
func commonPrefix(ss []string) string {
	if len(ss) == 0 {
		return ""
	}
	prefix := ss[0]
	for _, s := range ss[1:] {
		for !strings.HasPrefix(s, prefix) {
			prefix = prefix[:len(prefix)-1]
		}
	}
	return prefix
}

// =============================================================================
// PROGRAM
// =============================================================================

// Run starts the full-screen console and blocks until it exits.
func Run(app *cli.App) error {
	sb := NewScrollback(DefaultMaxLines)
	m := New(app, sb)

	p := tea.NewProgram(m, tea.WithAltScreen())
	sb.SetNotify(func() {
		// Send blocks while Update runs, and Update itself appends.
		go p.Send(scrollbackMsg{})
	})

	app.Log.Info("Type help for a list of commands.")
	_, err := p.Run()
	return err
}
