// SPDX-License-Identifier: MPL-2.0

package store

import "dps-cli/internal/settype"

const (
	// OriginDefault marks a value still holding its declared default.
	OriginDefault Origin = "default"
	// OriginEnv marks a value imported from an environment variable.
	OriginEnv Origin = "env"
	// OriginPrompt marks a value entered at an interactive prompt.
	OriginPrompt Origin = "prompt"
	// OriginAuto marks a value written by an apply hook cascade.
	OriginAuto Origin = "auto"
	// OriginManual marks a value written programmatically by the installer layer.
	OriginManual Origin = "manual"
)

type (
	// Origin is the provenance tag recording how a setting acquired its
	// current value. It always reflects the last successful write path.
	Origin string

	// Setting is a single named, typed, validated configuration value.
	// Settings are created once at registration and mutated in place
	// through Set for the remainder of the process.
	Setting struct {
		// Name is globally unique across all presets.
		Name string
		// Type names the settype catalog entry supplying behavior.
		Type string
		// Label is the human-readable prompt label.
		Label string
		// Default is the declared (normalized) default value.
		Default string
		// Exportable controls whether the export engine emits this setting.
		Exportable bool
		// Attrs holds the declaration-time typed attributes, if any.
		Attrs settype.Attrs
		// Conditions gate this setting's visibility; empty means always visible.
		Conditions []Condition
		// Combine selects AND ("all") or OR ("any") semantics for Conditions.
		Combine CombineMode
		// Preset names the owning preset.
		Preset string

		value  string
		origin Origin
		entry  *settype.Entry
	}

	// SettingSpec declares a setting for Store.Create.
	SettingSpec struct {
		Name       string
		Type       string
		Label      string
		Default    string
		Exportable bool
		Attrs      settype.Attrs
		Conditions []Condition
		Combine    CombineMode
	}

	// CrossFieldFunc is a preset-level validator spanning multiple settings.
	// It returns one message per violated invariant; an empty slice means
	// the preset is consistent.
	CrossFieldFunc func(view Reader) []string

	// Reader is the read-only store view handed to cross-field validators.
	Reader interface {
		// Value returns the current value of a declared setting, or "" for
		// unknown names.
		Value(name string) string
	}

	// Preset is an ordered, named group of settings shown together.
	Preset struct {
		// Name is the unique preset key.
		Name string
		// Label is the human-readable menu label.
		Label string
		// Priority orders presets; lower sorts earlier.
		Priority int
		// Enabled presets participate in validateAll and the menu.
		Enabled bool

		settings   []string
		crossField CrossFieldFunc
	}

	// PresetSpec declares a preset for Store.AddPreset.
	PresetSpec struct {
		Name     string
		Label    string
		Priority int
		Enabled  bool
		// CrossField is the optional preset-level validator.
		CrossField CrossFieldFunc
	}
)

// IsValid reports whether the origin is one of the declared provenance tags.
func (o Origin) IsValid() bool {
	switch o {
	case OriginDefault, OriginEnv, OriginPrompt, OriginAuto, OriginManual:
		return true
	}
	return false
}

// triggersApply reports whether a write with this origin dispatches the
// type's apply hook. Auto writes do not cascade further.
func (o Origin) triggersApply() bool {
	switch o {
	case OriginPrompt, OriginEnv, OriginManual:
		return true
	}
	return false
}

// Value returns the setting's current value.
func (s *Setting) Value() string { return s.value }

// Entry returns the resolved type catalog entry for this setting.
func (s *Setting) Entry() *settype.Entry { return s.entry }

// Origin returns the provenance of the current value.
func (s *Setting) Origin() Origin { return s.origin }

// DisplayValue renders the current value through the type's display behavior.
func (s *Setting) DisplayValue() string { return s.entry.Display(s.value) }

// PromptHint describes the expected input for this setting.
func (s *Setting) PromptHint() string { return s.entry.PromptHint(s.Attrs) }

// Settings returns the preset's setting names in declaration order.
func (p *Preset) Settings() []string {
	out := make([]string, len(p.settings))
	copy(out, p.settings)
	return out
}
