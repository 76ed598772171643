// SPDX-License-Identifier: MPL-2.0

// Package tui provides the terminal prompt components used by the
// interactive workflow: a text input, a single-keystroke chooser, and a
// yes/no confirm. Components are plain bubbletea models with blocking Run
// helpers; callers that need scripted interaction test against the workflow's
// Console interface instead.
package tui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrCancelled is returned when the user cancels a component (esc or ctrl+c).
var ErrCancelled = errors.New("cancelled")

// Shared component styles.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED"))

	descStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))

	keyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#3B82F6"))
)

// run executes a component model to completion on the controlling terminal.
func run(m tea.Model) (tea.Model, error) {
	return tea.NewProgram(m).Run()
}
