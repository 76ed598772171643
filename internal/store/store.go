// SPDX-License-Identifier: MPL-2.0

// Package store holds the in-memory settings registry: presets, settings,
// current values, and origin tracking. The store is the single source of
// truth for the engine; it is constructed explicitly and passed by reference,
// never held in package-level state.
//
// The store is single-threaded by design. The engine owns it exclusively for
// the process lifetime and the installer layer reads it only after the
// workflow reaches its confirmed state, so there is no locking.
package store

import (
	"fmt"
	"sort"

	"dps-cli/internal/settype"
)

// maxApplyDepth bounds nested apply-hook writes. Hooks cascade with origin
// auto, which does not re-trigger hooks, so well-formed registrations stay at
// depth 1; the guard turns a cyclic registration into a hard error instead of
// unbounded recursion.
const maxApplyDepth = 8

// Store is the settings registry. Iteration order over settings and presets
// is deterministic: declaration order for settings, priority then declaration
// order for presets.
type Store struct {
	catalog *settype.Catalog

	settings map[string]*Setting
	order    []string

	presets     map[string]*Preset
	presetOrder []string
}

// New creates an empty store backed by the given type catalog.
func New(catalog *settype.Catalog) *Store {
	return &Store{
		catalog:  catalog,
		settings: make(map[string]*Setting),
		presets:  make(map[string]*Preset),
	}
}

// Catalog returns the type catalog backing this store.
func (s *Store) Catalog() *settype.Catalog { return s.catalog }

// AddPreset declares a preset. Presets are declared before their settings.
func (s *Store) AddPreset(spec PresetSpec) error {
	if _, exists := s.presets[spec.Name]; exists {
		return &DuplicatePresetError{Name: spec.Name}
	}
	s.presets[spec.Name] = &Preset{
		Name:       spec.Name,
		Label:      spec.Label,
		Priority:   spec.Priority,
		Enabled:    spec.Enabled,
		crossField: spec.CrossField,
	}
	s.presetOrder = append(s.presetOrder, spec.Name)
	return nil
}

// Create declares a setting inside a preset. All structural checks happen
// here: duplicate names, unknown types, attribute validity, and the
// backwards-reference rule for visibility conditions. A failure from Create
// is a programming error in the registration code and aborts startup.
func (s *Store) Create(preset string, spec SettingSpec) error {
	p, ok := s.presets[preset]
	if !ok {
		return &UnknownPresetError{Name: preset}
	}
	if _, exists := s.settings[spec.Name]; exists {
		return &DuplicateSettingError{Name: spec.Name}
	}

	entry, err := s.catalog.Lookup(spec.Type)
	if err != nil {
		return fmt.Errorf("setting %q: %w", spec.Name, err)
	}
	if spec.Attrs != nil {
		if err := spec.Attrs.Check(); err != nil {
			return fmt.Errorf("setting %q: %w", spec.Name, err)
		}
	}
	if err := entry.CheckAttrs(spec.Attrs); err != nil {
		return fmt.Errorf("setting %q: %w", spec.Name, err)
	}

	// Conditions may only reference settings declared earlier. This keeps
	// the visibility graph acyclic without a separate analysis pass.
	for _, cond := range spec.Conditions {
		if err := cond.Op.Validate(); err != nil {
			return fmt.Errorf("setting %q: %w", spec.Name, err)
		}
		if _, declared := s.settings[cond.Setting]; !declared {
			return &ConditionOrderError{Setting: spec.Name, Reference: cond.Setting}
		}
	}
	combine := spec.Combine
	if combine == "" {
		combine = CombineAll
	}
	if err := combine.Validate(); err != nil {
		return fmt.Errorf("setting %q: %w", spec.Name, err)
	}

	def := entry.Normalize(spec.Default)
	st := &Setting{
		Name:       spec.Name,
		Type:       spec.Type,
		Label:      spec.Label,
		Default:    def,
		Exportable: spec.Exportable,
		Attrs:      spec.Attrs,
		Conditions: spec.Conditions,
		Combine:    combine,
		Preset:     preset,
		value:      def,
		origin:     OriginDefault,
		entry:      entry,
	}
	s.settings[spec.Name] = st
	s.order = append(s.order, spec.Name)
	p.settings = append(p.settings, spec.Name)
	return nil
}

// Get returns the current value of a setting.
func (s *Store) Get(name string) (string, error) {
	st, ok := s.settings[name]
	if !ok {
		return "", &UnknownSettingError{Name: name}
	}
	return st.value, nil
}

// Value implements Reader. Unknown names read as empty.
func (s *Store) Value(name string) string {
	if st, ok := s.settings[name]; ok {
		return st.value
	}
	return ""
}

// Setting returns the full setting record.
func (s *Store) Setting(name string) (*Setting, error) {
	st, ok := s.settings[name]
	if !ok {
		return nil, &UnknownSettingError{Name: name}
	}
	return st, nil
}

// Meta returns the setting's declaration-time typed attributes, if any.
func (s *Store) Meta(name string) (settype.Attrs, error) {
	st, ok := s.settings[name]
	if !ok {
		return nil, &UnknownSettingError{Name: name}
	}
	return st.Attrs, nil
}

// Set writes a value through the setting's type: normalize, validate, assign,
// then dispatch the apply hook when the origin warrants it. Hooks run inline,
// before Set returns, so callers immediately observe cascaded state. On
// validation failure the stored value and origin are left untouched and a
// *ValidationError is returned.
func (s *Store) Set(name, value string, origin Origin) error {
	return s.set(name, value, origin, 0)
}

func (s *Store) set(name, value string, origin Origin, depth int) error {
	if depth >= maxApplyDepth {
		return &HookDepthError{Setting: name, Depth: depth}
	}
	st, ok := s.settings[name]
	if !ok {
		return &UnknownSettingError{Name: name}
	}
	if !origin.IsValid() {
		return &InvalidOriginError{Origin: origin}
	}

	norm := st.entry.Normalize(value)
	if !st.entry.Validate(norm, st.Attrs) {
		return &ValidationError{
			Setting: name,
			Value:   norm,
			Message: st.entry.ErrorMessage(norm, st.Attrs),
		}
	}

	st.value = norm
	st.origin = origin

	if origin.triggersApply() && st.entry.HasApply() {
		for _, w := range st.entry.Apply(norm) {
			if err := s.set(w.Setting, w.Value, OriginAuto, depth+1); err != nil {
				return fmt.Errorf("apply hook of %q: %w", name, err)
			}
		}
	}
	return nil
}

// Override stores a normalized value without type validation. It exists for
// environment import, which accepts overrides eagerly and defers rejection to
// the next validation pass. Apply hooks do not fire through this path.
func (s *Store) Override(name, value string, origin Origin) error {
	st, ok := s.settings[name]
	if !ok {
		return &UnknownSettingError{Name: name}
	}
	if !origin.IsValid() {
		return &InvalidOriginError{Origin: origin}
	}
	st.value = st.entry.Normalize(value)
	st.origin = origin
	return nil
}

// List returns setting names in declaration order, optionally filtered to
// the given presets.
func (s *Store) List(presets ...string) []string {
	if len(presets) == 0 {
		out := make([]string, len(s.order))
		copy(out, s.order)
		return out
	}
	wanted := make(map[string]bool, len(presets))
	for _, p := range presets {
		wanted[p] = true
	}
	var out []string
	for _, name := range s.order {
		if wanted[s.settings[name].Preset] {
			out = append(out, name)
		}
	}
	return out
}

// Preset returns a declared preset.
func (s *Store) Preset(name string) (*Preset, error) {
	p, ok := s.presets[name]
	if !ok {
		return nil, &UnknownPresetError{Name: name}
	}
	return p, nil
}

// Presets returns all presets ordered by priority, then declaration order.
func (s *Store) Presets() []*Preset {
	out := make([]*Preset, 0, len(s.presetOrder))
	for _, name := range s.presetOrder {
		out = append(out, s.presets[name])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority < out[j].Priority
	})
	return out
}

// EnabledPresets returns the enabled presets in priority order.
func (s *Store) EnabledPresets() []*Preset {
	var out []*Preset
	for _, p := range s.Presets() {
		if p.Enabled {
			out = append(out, p)
		}
	}
	return out
}

// CrossField returns the preset's cross-field validator, or nil.
func (p *Preset) CrossField() CrossFieldFunc { return p.crossField }
