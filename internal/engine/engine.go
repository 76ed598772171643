// SPDX-License-Identifier: MPL-2.0

// Package engine implements per-setting, per-preset, and whole-registry
// validation. Validation failures are counted and carried as targeted
// messages, never raised as Go errors: the workflow re-prompts on them.
// Go errors from this package signal structural misuse only (unknown
// setting or preset names).
package engine

import (
	"fmt"

	"dps-cli/internal/store"
)

type (
	// Message is a single validation failure addressed to its field, or to
	// the whole preset for cross-field failures (Setting empty).
	Message struct {
		Preset  string
		Setting string
		Text    string
	}

	// Result accumulates validation failures. The zero value is clean.
	Result struct {
		Messages []Message
	}

	// Validator runs type and cross-field validation against a store.
	Validator struct {
		store *store.Store
	}
)

// ErrorCount returns the number of accumulated failures.
func (r Result) ErrorCount() int { return len(r.Messages) }

// OK reports whether no failures were accumulated.
func (r Result) OK() bool { return len(r.Messages) == 0 }

// merge appends the other result's messages.
func (r *Result) merge(other Result) {
	r.Messages = append(r.Messages, other.Messages...)
}

// New creates a validator over the given store.
func New(st *store.Store) *Validator {
	return &Validator{store: st}
}

// ValidateSetting validates a single setting against its type. An invisible
// setting validates clean unconditionally: it is not user-addressable, so its
// value cannot block confirmation.
func (v *Validator) ValidateSetting(name string) (Result, error) {
	st, err := v.store.Setting(name)
	if err != nil {
		return Result{}, err
	}
	visible, err := v.store.Visible(name)
	if err != nil {
		return Result{}, err
	}
	if !visible {
		return Result{}, nil
	}

	if st.Entry().Validate(st.Value(), st.Attrs) {
		return Result{}, nil
	}
	return Result{Messages: []Message{{
		Preset:  st.Preset,
		Setting: name,
		Text:    st.Entry().ErrorMessage(st.Value(), st.Attrs),
	}}}, nil
}

// ValidatePreset validates every visible setting of the preset, then runs the
// preset's cross-field validator if declared. The returned result carries the
// total failure count for the preset.
func (v *Validator) ValidatePreset(name string) (Result, error) {
	p, err := v.store.Preset(name)
	if err != nil {
		return Result{}, err
	}

	var result Result
	for _, settingName := range p.Settings() {
		r, err := v.ValidateSetting(settingName)
		if err != nil {
			return Result{}, err
		}
		result.merge(r)
	}

	if crossField := p.CrossField(); crossField != nil {
		for _, text := range crossField(v.store) {
			result.Messages = append(result.Messages, Message{
				Preset: name,
				Text:   text,
			})
		}
	}
	return result, nil
}

// ValidateAll sums ValidatePreset over the given presets, or over every
// enabled preset when none are given.
func (v *Validator) ValidateAll(presets ...string) (Result, error) {
	if len(presets) == 0 {
		for _, p := range v.store.EnabledPresets() {
			presets = append(presets, p.Name)
		}
	}

	var result Result
	for _, name := range presets {
		r, err := v.ValidatePreset(name)
		if err != nil {
			return Result{}, err
		}
		result.merge(r)
	}
	return result, nil
}

// Format renders a message for terminal output.
func (m Message) Format() string {
	if m.Setting == "" {
		return fmt.Sprintf("[%s] %s", m.Preset, m.Text)
	}
	return fmt.Sprintf("[%s] %s: %s", m.Preset, m.Setting, m.Text)
}
