// SPDX-License-Identifier: MPL-2.0

package docs

import (
	"strings"
	"testing"

	"dps-cli/internal/config"
	"dps-cli/internal/registry"
)

func TestGenerateCoversAllSettings(t *testing.T) {
	t.Parallel()

	s, err := registry.Build()
	if err != nil {
		t.Fatalf("registry.Build() error: %v", err)
	}

	md := Generate(s, "DPS")

	for _, name := range s.List() {
		if !strings.Contains(md, "`"+name+"`") {
			t.Errorf("reference missing setting %s", name)
		}
	}
	for _, p := range s.Presets() {
		if !strings.Contains(md, "## "+p.Label) {
			t.Errorf("reference missing preset section %s", p.Label)
		}
	}
}

func TestGenerateNotesVisibilityAndExport(t *testing.T) {
	t.Parallel()

	s, err := registry.Build()
	if err != nil {
		t.Fatalf("registry.Build() error: %v", err)
	}

	md := Generate(s, "DPS")

	if !strings.Contains(md, "`DISK_PASSPHRASE` is only visible when") {
		t.Error("reference missing DISK_PASSPHRASE visibility note")
	}
	if !strings.Contains(md, "not exported") {
		t.Error("reference missing non-exportable note")
	}
	if !strings.Contains(md, "DPS_<NAME>") {
		t.Error("reference missing env prefix preamble")
	}
}

func TestRenderStyles(t *testing.T) {
	t.Parallel()

	for _, scheme := range []config.ColorScheme{
		config.ColorSchemeAuto,
		config.ColorSchemeDark,
		config.ColorSchemeLight,
	} {
		out, err := Render("# Title\n\nbody\n", scheme)
		if err != nil {
			t.Fatalf("Render(%s) error: %v", scheme, err)
		}
		if !strings.Contains(out, "Title") {
			t.Errorf("Render(%s) output missing heading: %q", scheme, out)
		}
	}
}
