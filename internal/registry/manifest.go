// SPDX-License-Identifier: MPL-2.0

package registry

import (
	"fmt"

	"dps-cli/internal/settype"
	"dps-cli/internal/store"

	"github.com/pelletier/go-toml/v2"
)

type (
	// Manifest is the root of a preset declaration file.
	Manifest struct {
		Presets []PresetManifest `toml:"preset"`
	}

	// PresetManifest declares one preset and its settings in order.
	PresetManifest struct {
		Name     string            `toml:"name"`
		Label    string            `toml:"label"`
		Priority int               `toml:"priority"`
		Enabled  bool              `toml:"enabled"`
		Settings []SettingManifest `toml:"setting"`
	}

	// SettingManifest declares one setting. Attribute fields are interpreted
	// per type: min/max for int, min_len/max_len/pattern for string and
	// password, options for choice.
	SettingManifest struct {
		Name       string              `toml:"name"`
		Type       string              `toml:"type"`
		Label      string              `toml:"label"`
		Default    string              `toml:"default"`
		Exportable *bool               `toml:"exportable"`
		Min        *int64              `toml:"min"`
		Max        *int64              `toml:"max"`
		MinLen     int                 `toml:"min_len"`
		MaxLen     int                 `toml:"max_len"`
		Pattern    string              `toml:"pattern"`
		Options    []string            `toml:"options"`
		Combine    string              `toml:"combine"`
		Visible    []ConditionManifest `toml:"visible_when"`
	}

	// ConditionManifest declares one visibility condition.
	ConditionManifest struct {
		Setting string `toml:"setting"`
		Op      string `toml:"op"`
		Value   string `toml:"value"`
	}
)

// parseManifest decodes a TOML preset declaration.
func parseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse preset manifest: %w", err)
	}
	return &m, nil
}

// spec converts a manifest entry to a store declaration.
func (sm SettingManifest) spec() store.SettingSpec {
	exportable := true
	if sm.Exportable != nil {
		exportable = *sm.Exportable
	}

	conditions := make([]store.Condition, 0, len(sm.Visible))
	for _, c := range sm.Visible {
		conditions = append(conditions, store.Condition{
			Setting: c.Setting,
			Op:      store.CompareOp(c.Op),
			Operand: c.Value,
		})
	}

	return store.SettingSpec{
		Name:       sm.Name,
		Type:       sm.Type,
		Label:      sm.Label,
		Default:    sm.Default,
		Exportable: exportable,
		Attrs:      sm.attrs(),
		Conditions: conditions,
		Combine:    store.CombineMode(sm.Combine),
	}
}

// attrs builds the typed attribute struct matching the declared type.
func (sm SettingManifest) attrs() settype.Attrs {
	switch sm.Type {
	case settype.TypeInt:
		if sm.Min == nil && sm.Max == nil {
			return nil
		}
		return &settype.IntAttrs{Min: sm.Min, Max: sm.Max}
	case settype.TypeString, settype.TypePassword:
		if sm.Pattern == "" && sm.MinLen == 0 && sm.MaxLen == 0 {
			return nil
		}
		return &settype.StringAttrs{Pattern: sm.Pattern, MinLen: sm.MinLen, MaxLen: sm.MaxLen}
	case settype.TypeChoice:
		return &settype.ChoiceAttrs{Options: sm.Options}
	}
	return nil
}
