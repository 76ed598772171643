// SPDX-License-Identifier: MPL-2.0

package workflow

import "dps-cli/internal/store"

type (
	// Console is the terminal boundary of the workflow. The interactive
	// implementation lives in the command layer on top of the TUI
	// components; tests drive the workflow with a scripted console.
	Console interface {
		// PromptSetting displays a setting's label, hint, and current value,
		// and reads one line of input. Empty input means "keep current".
		PromptSetting(s *store.Setting) (string, error)
		// Select displays the menu items and reads one selection token.
		Select(title string, items []MenuItem) (string, error)
		// Show prints an informational line.
		Show(msg string)
		// ShowError prints a validation failure line.
		ShowError(msg string)
	}

	// MenuItem is one selectable row of the preset menu.
	MenuItem struct {
		// Key is the single-character selection token.
		Key string
		// Label is the rendered row text.
		Label string
	}
)

// Reserved menu keys.
const (
	// KeyConfirm confirms the whole configuration.
	KeyConfirm = "X"
	// KeyAbort leaves the workflow without confirming.
	KeyAbort = "Q"
)
