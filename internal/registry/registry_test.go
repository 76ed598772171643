// SPDX-License-Identifier: MPL-2.0

package registry

import (
	"errors"
	"io"
	"strings"
	"testing"

	"dps-cli/internal/engine"
	"dps-cli/internal/envio"
	"dps-cli/internal/store"

	"github.com/charmbracelet/log"
)

func builtStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	return s
}

func TestBuild_DefaultsAndOrigins(t *testing.T) {
	t.Parallel()

	s := builtStore(t)

	tests := []struct {
		name string
		want string
	}{
		{"HOSTNAME", "nixos"},
		{"FILESYSTEM", "ext4"},
		{"NETWORK_METHOD", "dhcp"},
		{"SSH_PORT", "22"},
		{"COUNTRY", "US"},
		{"TIMEZONE", "America/New_York"},
	}
	for _, tt := range tests {
		got, err := s.Get(tt.name)
		if err != nil {
			t.Fatalf("Get(%s) error: %v", tt.name, err)
		}
		if got != tt.want {
			t.Errorf("Get(%s) = %q, want %q", tt.name, got, tt.want)
		}
		st, _ := s.Setting(tt.name)
		if st.Origin() != store.OriginDefault {
			t.Errorf("%s origin = %q, want default", tt.name, st.Origin())
		}
	}
}

func TestBuild_PresetOrder(t *testing.T) {
	t.Parallel()

	s := builtStore(t)
	var names []string
	for _, p := range s.Presets() {
		names = append(names, p.Name)
	}
	want := []string{"system", "disk", "network", "security", "region"}
	if len(names) != len(want) {
		t.Fatalf("Presets() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Presets()[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestCountryCascade(t *testing.T) {
	t.Parallel()

	s := builtStore(t)
	if err := s.Set("COUNTRY", "DE", store.OriginPrompt); err != nil {
		t.Fatalf("Set(COUNTRY) error: %v", err)
	}

	// Derived region values are visible immediately after Set returns.
	want := map[string]string{
		"TIMEZONE":        "Europe/Berlin",
		"LOCALE":          "de_DE.UTF-8",
		"KEYBOARD_LAYOUT": "de",
	}
	for name, wantValue := range want {
		got, _ := s.Get(name)
		if got != wantValue {
			t.Errorf("%s = %q, want %q", name, got, wantValue)
		}
		st, _ := s.Setting(name)
		if st.Origin() != store.OriginAuto {
			t.Errorf("%s origin = %q, want auto", name, st.Origin())
		}
	}
}

func TestCountryNormalizeAndDisplay(t *testing.T) {
	t.Parallel()

	s := builtStore(t)
	if err := s.Set("COUNTRY", " de ", store.OriginPrompt); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	if got, _ := s.Get("COUNTRY"); got != "DE" {
		t.Errorf("COUNTRY = %q, want normalized DE", got)
	}
	st, _ := s.Setting("COUNTRY")
	if got := st.DisplayValue(); got != "DE (Germany)" {
		t.Errorf("DisplayValue() = %q, want DE (Germany)", got)
	}
}

func TestCountryRejectsUnknownCode(t *testing.T) {
	t.Parallel()

	s := builtStore(t)
	err := s.Set("COUNTRY", "ZZ", store.OriginPrompt)
	if !errors.Is(err, store.ErrValidation) {
		t.Fatalf("Set(ZZ) = %v, want ErrValidation", err)
	}
}

func TestEncryptionPassphraseVisibility(t *testing.T) {
	t.Parallel()

	s := builtStore(t)
	v := engine.New(s)

	// Empty passphrase is invalid, but it is invisible while encryption is
	// off and must not block the disk preset. DISK_DEVICE starts empty, so
	// one error is expected.
	result, err := v.ValidatePreset("disk")
	if err != nil {
		t.Fatalf("ValidatePreset() error: %v", err)
	}
	if result.ErrorCount() != 1 {
		t.Fatalf("ErrorCount() = %d, want 1 (DISK_DEVICE only): %v", result.ErrorCount(), result.Messages)
	}
	if result.Messages[0].Setting != "DISK_DEVICE" {
		t.Errorf("failing setting = %q, want DISK_DEVICE", result.Messages[0].Setting)
	}

	if err := s.Set("DISK_ENCRYPT", "yes", store.OriginPrompt); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	result, err = v.ValidatePreset("disk")
	if err != nil {
		t.Fatalf("ValidatePreset() error: %v", err)
	}
	if result.ErrorCount() != 2 {
		t.Errorf("ErrorCount() = %d after enabling encryption, want 2: %v", result.ErrorCount(), result.Messages)
	}
}

func TestNetworkGatewayCrossField(t *testing.T) {
	t.Parallel()

	s := builtStore(t)
	for name, value := range map[string]string{
		"NETWORK_METHOD":  "static",
		"NETWORK_IP":      "192.168.1.10",
		"NETWORK_GATEWAY": "192.168.1.10",
	} {
		if err := s.Set(name, value, store.OriginManual); err != nil {
			t.Fatalf("Set(%s) error: %v", name, err)
		}
	}

	result, err := engine.New(s).ValidatePreset("network")
	if err != nil {
		t.Fatalf("ValidatePreset() error: %v", err)
	}
	if result.ErrorCount() < 1 {
		t.Fatalf("ErrorCount() = %d, want >= 1", result.ErrorCount())
	}
	found := false
	for _, m := range result.Messages {
		if strings.Contains(m.Text, "Gateway cannot be the same as IP address") {
			found = true
		}
	}
	if !found {
		t.Errorf("messages %v missing gateway message", result.Messages)
	}
}

func TestNetworkSubnetCrossField(t *testing.T) {
	t.Parallel()

	s := builtStore(t)
	for name, value := range map[string]string{
		"NETWORK_METHOD":  "static",
		"NETWORK_IP":      "10.0.0.5",
		"NETWORK_GATEWAY": "192.168.1.1",
		"NETWORK_SUBNET":  "192.168.1.0/24",
	} {
		if err := s.Set(name, value, store.OriginManual); err != nil {
			t.Fatalf("Set(%s) error: %v", name, err)
		}
	}

	result, err := engine.New(s).ValidatePreset("network")
	if err != nil {
		t.Fatalf("ValidatePreset() error: %v", err)
	}
	found := false
	for _, m := range result.Messages {
		if strings.Contains(m.Text, "not inside the configured subnet") {
			found = true
		}
	}
	if !found {
		t.Errorf("messages %v missing subnet message", result.Messages)
	}
}

func TestSSHPortBoundsScenario(t *testing.T) {
	t.Parallel()

	s := builtStore(t)
	err := s.Set("SSH_PORT", "99999", store.OriginPrompt)
	var valErr *store.ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("Set(99999) = %v, want *ValidationError", err)
	}
	if !strings.Contains(valErr.Message, "between 1 and 65535") {
		t.Errorf("Message = %q, want bounds citation", valErr.Message)
	}

	if err := s.Set("SSH_PORT", "8080", store.OriginPrompt); err != nil {
		t.Fatalf("Set(8080) error: %v", err)
	}
	st, _ := s.Setting("SSH_PORT")
	if st.Origin() != store.OriginPrompt {
		t.Errorf("origin = %q, want prompt", st.Origin())
	}
}

func TestEnvOverrideOnBuiltRegistry(t *testing.T) {
	s := builtStore(t)
	t.Setenv("DPS_HOSTNAME", "build-farm")
	t.Setenv("DPS_COUNTRY", "JP")

	envio.NewImporter(s, "DPS", log.New(io.Discard)).Import()

	if got, _ := s.Get("HOSTNAME"); got != "build-farm" {
		t.Errorf("HOSTNAME = %q, want build-farm", got)
	}
	// Env import cascades like any other non-auto write.
	if got, _ := s.Get("TIMEZONE"); got != "Asia/Tokyo" {
		t.Errorf("TIMEZONE = %q, want Asia/Tokyo", got)
	}
}

func TestExportRoundTripOnBuiltRegistry(t *testing.T) {
	t.Parallel()

	s := builtStore(t)
	for name, value := range map[string]string{
		"HOSTNAME":    "gateway-01",
		"DISK_DEVICE": "/dev/nvme0n1",
		"COUNTRY":     "FR",
	} {
		if err := s.Set(name, value, store.OriginPrompt); err != nil {
			t.Fatalf("Set(%s) error: %v", name, err)
		}
	}
	script := envio.NewExporter(s, "DPS").ExportAll()

	fresh := builtStore(t)
	if _, err := envio.NewImporter(fresh, "DPS", log.New(io.Discard)).ImportFile(strings.NewReader(script), "export.env"); err != nil {
		t.Fatalf("ImportFile() error: %v", err)
	}

	for _, name := range s.List() {
		st, _ := s.Setting(name)
		if !st.Exportable {
			continue
		}
		wantValue, _ := s.Get(name)
		gotValue, _ := fresh.Get(name)
		if gotValue != wantValue {
			t.Errorf("%s = %q after round trip, want %q", name, gotValue, wantValue)
		}
	}
}

func TestManifestRejectsUnknownType(t *testing.T) {
	t.Parallel()

	bad := []byte(`
[[preset]]
name = "p"
label = "P"
priority = 1
enabled = true

  [[preset.setting]]
  name = "X"
  type = "nope"
`)
	m, err := parseManifest(bad)
	if err != nil {
		t.Fatalf("parseManifest() error: %v", err)
	}
	catalog, err := NewCatalog()
	if err != nil {
		t.Fatalf("NewCatalog() error: %v", err)
	}
	s := store.New(catalog)
	if err := s.AddPreset(store.PresetSpec{Name: "p", Enabled: true}); err != nil {
		t.Fatalf("AddPreset() error: %v", err)
	}
	if err := s.Create("p", m.Presets[0].Settings[0].spec()); err == nil {
		t.Error("Create() with unknown type = nil, want error")
	}
}
