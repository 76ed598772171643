// SPDX-License-Identifier: MPL-2.0

// Package workflow implements the interactive confirmation state machine:
// validate, re-prompt failing settings, show the preset menu, edit presets,
// and reach the confirmed state only through an explicit confirmation with
// zero errors across all active presets.
package workflow

import (
	"errors"
	"fmt"
	"strconv"

	"dps-cli/internal/engine"
	"dps-cli/internal/store"

	"github.com/charmbracelet/log"
)

// Workflow states.
const (
	// StateValidating runs a full validation pass to pick the next state.
	StateValidating State = "validating"
	// StatePromptErrors re-prompts only the currently failing settings.
	StatePromptErrors State = "prompt-errors"
	// StateMenu shows the numbered preset menu.
	StateMenu State = "menu"
	// StateConfirmed is the terminal success state.
	StateConfirmed State = "confirmed"
	// StateAborted is the terminal state for an explicit abort.
	StateAborted State = "aborted"
)

type (
	// State identifies a workflow state.
	State string

	// Workflow orchestrates the engine against a console.
	Workflow struct {
		store     *store.Store
		validator *engine.Validator
		console   Console
		logger    *log.Logger
	}
)

// New creates a workflow over the given store and console.
func New(st *store.Store, console Console, logger *log.Logger) *Workflow {
	if logger == nil {
		logger = log.Default()
	}
	return &Workflow{
		store:     st,
		validator: engine.New(st),
		console:   console,
		logger:    logger,
	}
}

// Run drives the state machine until a terminal state. The terminal state is
// reached only via explicit confirmation or abort; console errors (EOF on a
// scripted input, terminal loss) abort the run with an error.
func (w *Workflow) Run() (State, error) {
	state := StateValidating
	for {
		switch state {
		case StateValidating:
			result, err := w.validator.ValidateAll()
			if err != nil {
				return state, err
			}
			if result.ErrorCount() > 0 {
				state = StatePromptErrors
			} else {
				state = StateMenu
			}

		case StatePromptErrors:
			if err := w.promptFailing(); err != nil {
				return state, err
			}
			state = StateValidating

		case StateMenu:
			next, err := w.menu()
			if err != nil {
				return state, err
			}
			state = next

		case StateConfirmed, StateAborted:
			return state, nil

		default:
			return state, fmt.Errorf("unknown workflow state %q", state)
		}
	}
}

// promptFailing re-prompts exactly the settings that failed the last pass.
// Cross-field failures re-prompt their whole preset.
func (w *Workflow) promptFailing() error {
	result, err := w.validator.ValidateAll()
	if err != nil {
		return err
	}
	for _, m := range result.Messages {
		w.console.ShowError(m.Format())
	}
	seenPresets := make(map[string]bool)
	for _, m := range result.Messages {
		if m.Setting != "" {
			if err := w.editSetting(m.Setting); err != nil {
				return err
			}
			continue
		}
		if seenPresets[m.Preset] {
			continue
		}
		seenPresets[m.Preset] = true
		if err := w.editPreset(m.Preset); err != nil {
			return err
		}
	}
	return nil
}

// menu shows the preset menu once and handles a single selection. Invalid
// input leaves the state unchanged so the menu redisplays.
func (w *Workflow) menu() (State, error) {
	presets := w.store.EnabledPresets()
	items := make([]MenuItem, 0, len(presets)+2)
	for i, p := range presets {
		items = append(items, MenuItem{
			Key:   strconv.Itoa(i + 1),
			Label: p.Label,
		})
	}
	items = append(items,
		MenuItem{Key: KeyConfirm, Label: "Confirm configuration"},
		MenuItem{Key: KeyAbort, Label: "Abort"},
	)

	choice, err := w.console.Select("Installation settings", items)
	if err != nil {
		return StateMenu, err
	}

	switch choice {
	case KeyConfirm, "x":
		result, err := w.validator.ValidateAll()
		if err != nil {
			return StateMenu, err
		}
		if result.ErrorCount() > 0 {
			w.console.Show(fmt.Sprintf("Cannot confirm: %d setting(s) still invalid", result.ErrorCount()))
			for _, m := range result.Messages {
				w.console.ShowError(m.Format())
			}
			return StateMenu, nil
		}
		w.logger.Info("configuration confirmed")
		return StateConfirmed, nil

	case KeyAbort, "q":
		w.logger.Info("configuration aborted")
		return StateAborted, nil
	}

	if n, err := strconv.Atoi(choice); err == nil && n >= 1 && n <= len(presets) {
		if err := w.editPreset(presets[n-1].Name); err != nil {
			return StateMenu, err
		}
		return StateMenu, nil
	}

	// Unknown keystroke: redisplay without state change.
	return StateMenu, nil
}

// editPreset re-prompts every visible setting of the preset and loops until
// the preset validates clean.
func (w *Workflow) editPreset(name string) error {
	for {
		visible, err := w.store.VisibleSettings(name)
		if err != nil {
			return err
		}
		for _, settingName := range visible {
			// Visibility can shift mid-edit when an earlier answer changes a
			// gating value, so re-check before each prompt.
			stillVisible, err := w.store.Visible(settingName)
			if err != nil {
				return err
			}
			if !stillVisible {
				continue
			}
			if err := w.editSetting(settingName); err != nil {
				return err
			}
		}

		result, err := w.validator.ValidatePreset(name)
		if err != nil {
			return err
		}
		if result.OK() {
			return nil
		}
		for _, m := range result.Messages {
			w.console.ShowError(m.Format())
		}
	}
}

// editSetting prompts for one setting until the entered value is accepted.
// Blank input keeps the current value and ends the prompt.
func (w *Workflow) editSetting(name string) error {
	st, err := w.store.Setting(name)
	if err != nil {
		return err
	}
	for {
		raw, err := w.console.PromptSetting(st)
		if err != nil {
			return err
		}
		if raw == "" {
			return nil
		}

		err = w.store.Set(name, raw, store.OriginPrompt)
		if err == nil {
			return nil
		}
		var valErr *store.ValidationError
		if errors.As(err, &valErr) {
			w.console.ShowError(valErr.Message)
			continue
		}
		return err
	}
}
