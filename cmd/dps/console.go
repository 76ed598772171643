// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"os"

	"dps-cli/internal/settype"
	"dps-cli/internal/store"
	"dps-cli/internal/tui"
	"dps-cli/internal/workflow"
)

// terminalConsole implements workflow.Console on top of the TUI components.
type terminalConsole struct{}

func newTerminalConsole() *terminalConsole {
	return &terminalConsole{}
}

// PromptSetting shows one input prompt for a setting. Cancelling the prompt
// (esc) keeps the current value, like submitting blank input.
func (c *terminalConsole) PromptSetting(s *store.Setting) (string, error) {
	title := fmt.Sprintf("%s [%s]", s.Label, s.DisplayValue())
	value, err := tui.Input(tui.InputOptions{
		Title:       title,
		Description: s.PromptHint(),
		Placeholder: s.DisplayValue(),
		Password:    s.Type == settype.TypePassword,
	})
	if errors.Is(err, tui.ErrCancelled) {
		return "", nil
	}
	return value, err
}

// Select shows the preset menu. Cancelling the menu (esc) maps to abort.
func (c *terminalConsole) Select(title string, items []workflow.MenuItem) (string, error) {
	chooseItems := make([]tui.ChooseItem, len(items))
	for i, item := range items {
		chooseItems[i] = tui.ChooseItem{Key: item.Key, Label: item.Label}
	}
	choice, err := tui.Choose(tui.ChooseOptions{Title: title, Items: chooseItems})
	if errors.Is(err, tui.ErrCancelled) {
		return workflow.KeyAbort, nil
	}
	return choice, err
}

// Show prints an informational line.
func (c *terminalConsole) Show(msg string) {
	fmt.Fprintf(os.Stdout, "%s %s\n", infoIcon, msg)
}

// ShowError prints a validation failure line.
func (c *terminalConsole) ShowError(msg string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", errorIcon, ErrorStyle.Render(msg))
}
