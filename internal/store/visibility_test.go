// SPDX-License-Identifier: MPL-2.0

package store

import (
	"testing"

	"dps-cli/internal/settype"
)

func TestCondition_Holds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		current string
		op      CompareOp
		operand string
		want    bool
	}{
		{"string eq", "static", OpEq, "static", true},
		{"string eq miss", "dhcp", OpEq, "static", false},
		{"string ne", "dhcp", OpNe, "static", true},
		{"numeric lt", "9", OpLt, "10", true},
		{"lexicographic without numbers", "9", OpLt, "10a", false},
		{"numeric ge", "10", OpGe, "10", true},
		{"numeric eq with float form", "10.0", OpEq, "10", true},
		{"numeric gt", "65536", OpGt, "65535", true},
		{"string le", "abc", OpLe, "abd", true},
		{"empty current ne", "", OpNe, "yes", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := Condition{Setting: "X", Op: tt.op, Operand: tt.operand}
			if got := c.holds(tt.current); got != tt.want {
				t.Errorf("holds(%q %s %q) = %v, want %v", tt.current, tt.op, tt.operand, got, tt.want)
			}
		})
	}
}

func TestStore_VisibleCombineAll(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	mustCreate(t, s, "system", SettingSpec{
		Name: "NETWORK_METHOD", Type: settype.TypeChoice, Default: "dhcp",
		Attrs: &settype.ChoiceAttrs{Options: []string{"dhcp", "static"}},
	})
	mustCreate(t, s, "system", SettingSpec{Name: "ENCRYPT", Type: settype.TypeBool, Default: "no"})
	mustCreate(t, s, "system", SettingSpec{
		Name: "NETWORK_IP", Type: settype.TypeIPv4,
		Conditions: []Condition{
			{Setting: "NETWORK_METHOD", Op: OpEq, Operand: "static"},
			{Setting: "ENCRYPT", Op: OpEq, Operand: "no"},
		},
	})

	if v, _ := s.Visible("NETWORK_IP"); v {
		t.Error("Visible = true with NETWORK_METHOD=dhcp, want false")
	}

	if err := s.Set("NETWORK_METHOD", "static", OriginPrompt); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	if v, _ := s.Visible("NETWORK_IP"); !v {
		t.Error("Visible = false with both conditions true, want true")
	}

	if err := s.Set("ENCRYPT", "yes", OriginPrompt); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	if v, _ := s.Visible("NETWORK_IP"); v {
		t.Error("Visible = true with one AND condition false, want false")
	}
}

func TestStore_VisibleCombineAny(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	mustCreate(t, s, "system", SettingSpec{Name: "A", Type: settype.TypeString, Default: "0"})
	mustCreate(t, s, "system", SettingSpec{Name: "B", Type: settype.TypeString, Default: "0"})
	mustCreate(t, s, "system", SettingSpec{
		Name: "EITHER", Type: settype.TypeString,
		Combine: CombineAny,
		Conditions: []Condition{
			{Setting: "A", Op: OpEq, Operand: "1"},
			{Setting: "B", Op: OpEq, Operand: "1"},
		},
	})

	if v, _ := s.Visible("EITHER"); v {
		t.Error("Visible = true with no OR condition true, want false")
	}
	if err := s.Set("B", "1", OriginManual); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	if v, _ := s.Visible("EITHER"); !v {
		t.Error("Visible = false with one OR condition true, want true")
	}
}

func TestStore_VisibleNoConditions(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	mustCreate(t, s, "system", SettingSpec{Name: "PLAIN", Type: settype.TypeString})
	if v, _ := s.Visible("PLAIN"); !v {
		t.Error("Visible = false for unconditional setting, want true")
	}
}

func TestStore_VisibleIsIdempotent(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	mustCreate(t, s, "system", SettingSpec{Name: "M", Type: settype.TypeString, Default: "on"})
	mustCreate(t, s, "system", SettingSpec{
		Name: "GATED", Type: settype.TypeString,
		Conditions: []Condition{{Setting: "M", Op: OpEq, Operand: "on"}},
	})

	// Menu redraws evaluate visibility every loop iteration.
	for i := 0; i < 5; i++ {
		v, err := s.Visible("GATED")
		if err != nil {
			t.Fatalf("Visible() error: %v", err)
		}
		if !v {
			t.Fatalf("Visible() = false on iteration %d, want true", i)
		}
	}
}

func TestStore_VisibleSettings(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	mustCreate(t, s, "system", SettingSpec{
		Name: "NETWORK_METHOD", Type: settype.TypeChoice, Default: "dhcp",
		Attrs: &settype.ChoiceAttrs{Options: []string{"dhcp", "static"}},
	})
	mustCreate(t, s, "system", SettingSpec{
		Name: "NETWORK_IP", Type: settype.TypeIPv4,
		Conditions: []Condition{{Setting: "NETWORK_METHOD", Op: OpEq, Operand: "static"}},
	})
	mustCreate(t, s, "system", SettingSpec{Name: "HOSTNAME", Type: settype.TypeHostname, Default: "a"})

	got, err := s.VisibleSettings("system")
	if err != nil {
		t.Fatalf("VisibleSettings() error: %v", err)
	}
	want := []string{"NETWORK_METHOD", "HOSTNAME"}
	if len(got) != len(want) {
		t.Fatalf("VisibleSettings() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("VisibleSettings()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
