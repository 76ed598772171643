// SPDX-License-Identifier: MPL-2.0

package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type (
	// ConfirmOptions configures the Confirm component.
	ConfirmOptions struct {
		// Title is the yes/no question.
		Title string
		// Default is the answer for a bare enter press.
		Default bool
	}

	// confirmModel is the bubbletea model behind Confirm.
	confirmModel struct {
		title     string
		result    bool
		done      bool
		cancelled bool
	}
)

func newConfirmModel(opts ConfirmOptions) *confirmModel {
	return &confirmModel{title: opts.Title, result: opts.Default}
}

// Init implements tea.Model.
func (m *confirmModel) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m *confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch strings.ToLower(key.String()) {
	case "ctrl+c", "esc":
		m.done = true
		m.cancelled = true
		return m, tea.Quit
	case "y":
		m.result = true
		m.done = true
		return m, tea.Quit
	case "n":
		m.result = false
		m.done = true
		return m, tea.Quit
	case "enter":
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

// View implements tea.Model.
func (m *confirmModel) View() string {
	if m.done {
		return ""
	}
	hint := "y/N"
	if m.result {
		hint = "Y/n"
	}
	return titleStyle.Render(m.title) + " " + helpStyle.Render("["+hint+"]")
}

// Confirm runs a blocking yes/no prompt.
func Confirm(opts ConfirmOptions) (bool, error) {
	final, err := run(newConfirmModel(opts))
	if err != nil {
		return false, err
	}
	m := final.(*confirmModel)
	if m.cancelled {
		return false, ErrCancelled
	}
	return m.result, nil
}
