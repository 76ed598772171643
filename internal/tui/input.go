// SPDX-License-Identifier: MPL-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type (
	// InputOptions configures the Input component.
	InputOptions struct {
		// Title is the prompt displayed above the input.
		Title string
		// Description provides additional context below the title
		// (the type's prompt hint).
		Description string
		// Placeholder is shown while the input is empty (the current value).
		Placeholder string
		// Password hides the typed characters.
		Password bool
	}

	// inputModel is the bubbletea model behind Input.
	inputModel struct {
		input     textinput.Model
		title     string
		desc      string
		result    string
		done      bool
		cancelled bool
	}
)

// newInputModel builds the model; separated from Input for tests.
func newInputModel(opts InputOptions) *inputModel {
	ti := textinput.New()
	ti.Placeholder = opts.Placeholder
	ti.Prompt = "> "
	if opts.Password {
		ti.EchoMode = textinput.EchoPassword
	}
	ti.Focus()
	return &inputModel{
		input: ti,
		title: opts.Title,
		desc:  opts.Description,
	}
}

// Init implements tea.Model.
func (m *inputModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			m.done = true
			m.cancelled = true
			return m, tea.Quit
		case "enter":
			m.result = m.input.Value()
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m *inputModel) View() string {
	if m.done {
		return ""
	}

	lines := make([]string, 0, 4)
	if m.title != "" {
		lines = append(lines, titleStyle.Render(m.title))
	}
	if m.desc != "" {
		lines = append(lines, descStyle.Render(m.desc))
	}
	lines = append(lines,
		m.input.View(),
		helpStyle.Render("enter submit • blank keeps current • esc cancel"),
	)
	return strings.Join(lines, "\n")
}

// Input runs a blocking text prompt and returns the entered value.
// An empty result means the user kept the current value.
func Input(opts InputOptions) (string, error) {
	final, err := run(newInputModel(opts))
	if err != nil {
		return "", err
	}
	m := final.(*inputModel)
	if m.cancelled {
		return "", ErrCancelled
	}
	return m.result, nil
}
