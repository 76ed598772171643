// SPDX-License-Identifier: MPL-2.0

package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type (
	// ChooseItem is one selectable row of a Choose menu.
	ChooseItem struct {
		// Key is the single-character selection token shown next to the label.
		Key string
		// Label is the row text.
		Label string
	}

	// ChooseOptions configures the Choose component.
	ChooseOptions struct {
		// Title is rendered above the menu.
		Title string
		// Items are the selectable rows.
		Items []ChooseItem
	}

	// chooseModel is the bubbletea model behind Choose. Selection is a
	// single keystroke; the pressed key is returned verbatim so the caller
	// decides what counts as valid and redisplays otherwise.
	chooseModel struct {
		title     string
		items     []ChooseItem
		result    string
		done      bool
		cancelled bool
	}
)

func newChooseModel(opts ChooseOptions) *chooseModel {
	return &chooseModel{title: opts.Title, items: opts.Items}
}

// Init implements tea.Model.
func (m *chooseModel) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m *chooseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "ctrl+c", "esc":
		m.done = true
		m.cancelled = true
		return m, tea.Quit
	case "enter":
		return m, nil
	}
	if key.Type == tea.KeyRunes && len(key.Runes) == 1 {
		m.result = string(key.Runes)
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

// View implements tea.Model.
func (m *chooseModel) View() string {
	if m.done {
		return ""
	}

	lines := make([]string, 0, len(m.items)+2)
	if m.title != "" {
		lines = append(lines, titleStyle.Render(m.title))
	}
	for _, item := range m.items {
		lines = append(lines, "  "+keyStyle.Render(item.Key)+"  "+item.Label)
	}
	lines = append(lines, helpStyle.Render("press a key to select • esc cancel"))
	return strings.Join(lines, "\n")
}

// Choose runs a blocking single-keystroke menu and returns the pressed key.
func Choose(opts ChooseOptions) (string, error) {
	final, err := run(newChooseModel(opts))
	if err != nil {
		return "", err
	}
	m := final.(*chooseModel)
	if m.cancelled {
		return "", ErrCancelled
	}
	return m.result, nil
}
