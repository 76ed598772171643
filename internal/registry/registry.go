// SPDX-License-Identifier: MPL-2.0

// Package registry declares the built-in installer presets and materializes
// them into a settings store. Preset and setting declarations live in an
// embedded TOML manifest; behavior that TOML cannot express (the country
// cascade type, cross-field validators) is registered here in code.
package registry

import (
	_ "embed"
	"fmt"

	"dps-cli/internal/settype"
	"dps-cli/internal/store"
)

//go:embed presets.toml
var presetsTOML []byte

// NewCatalog builds the type catalog used by the installer: the generic
// builtins plus the installer-specific types.
func NewCatalog() (*settype.Catalog, error) {
	catalog := settype.NewCatalog()
	if err := settype.RegisterBuiltins(catalog); err != nil {
		return nil, err
	}
	if err := catalog.Register(countryType{}); err != nil {
		return nil, err
	}
	return catalog, nil
}

// Build materializes the built-in presets into a fresh store. Declaration
// failures are programming errors in the manifest and abort startup.
func Build() (*store.Store, error) {
	catalog, err := NewCatalog()
	if err != nil {
		return nil, err
	}

	manifest, err := parseManifest(presetsTOML)
	if err != nil {
		return nil, err
	}

	s := store.New(catalog)
	for _, pm := range manifest.Presets {
		if err := s.AddPreset(store.PresetSpec{
			Name:       pm.Name,
			Label:      pm.Label,
			Priority:   pm.Priority,
			Enabled:    pm.Enabled,
			CrossField: crossFieldFor(pm.Name),
		}); err != nil {
			return nil, fmt.Errorf("preset %q: %w", pm.Name, err)
		}
		for _, sm := range pm.Settings {
			if err := s.Create(pm.Name, sm.spec()); err != nil {
				return nil, fmt.Errorf("preset %q: %w", pm.Name, err)
			}
		}
	}
	return s, nil
}
