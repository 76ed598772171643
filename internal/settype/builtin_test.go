// SPDX-License-Identifier: MPL-2.0

package settype

import (
	"errors"
	"strings"
	"testing"
)

// builtinCatalog registers the builtins once for lookup-based tests.
func builtinCatalog(t *testing.T) *Catalog {
	t.Helper()
	c := NewCatalog()
	if err := RegisterBuiltins(c); err != nil {
		t.Fatalf("RegisterBuiltins() error: %v", err)
	}
	return c
}

func TestIntType_Validate(t *testing.T) {
	t.Parallel()

	port := &IntAttrs{Min: IntBound(1), Max: IntBound(65535)}
	if err := port.Check(); err != nil {
		t.Fatalf("Check() error: %v", err)
	}

	tests := []struct {
		value string
		attrs Attrs
		want  bool
	}{
		{"22", port, true},
		{"1", port, true},
		{"65535", port, true},
		{"0", port, false},
		{"99999", port, false},
		{"-5", port, false},
		{"eight", port, false},
		{"", port, false},
		{"42", nil, true},
		{"-42", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Parallel()
			if got := (intType{}).Validate(tt.value, tt.attrs); got != tt.want {
				t.Errorf("Validate(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestIntType_ErrorMessageCitesBounds(t *testing.T) {
	t.Parallel()

	port := &IntAttrs{Min: IntBound(1), Max: IntBound(65535)}
	msg := (intType{}).ErrorMessage("99999", port)
	if !strings.Contains(msg, "between 1 and 65535") {
		t.Errorf("ErrorMessage(99999) = %q, want it to cite the bounds", msg)
	}

	msg = (intType{}).ErrorMessage("eight", port)
	if !strings.Contains(msg, "not a whole number") {
		t.Errorf("ErrorMessage(eight) = %q, want a parse failure message", msg)
	}
}

func TestBoolType_Normalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"yes", "yes"},
		{"Y", "yes"},
		{"TRUE", "yes"},
		{"1", "yes"},
		{"on", "yes"},
		{"no", "no"},
		{"False", "no"},
		{"0", "no"},
		{" off ", "no"},
		{"maybe", "maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			if got := (boolType{}).Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestChoiceType_RequiresOptions(t *testing.T) {
	t.Parallel()

	err := (choiceType{}).CheckAttrs(nil)
	if !errors.Is(err, ErrMissingAttribute) {
		t.Errorf("CheckAttrs(nil) = %v, want ErrMissingAttribute", err)
	}

	err = (choiceType{}).CheckAttrs(&ChoiceAttrs{})
	if !errors.Is(err, ErrMissingAttribute) {
		t.Errorf("CheckAttrs(empty options) = %v, want ErrMissingAttribute", err)
	}

	if err := (choiceType{}).CheckAttrs(&ChoiceAttrs{Options: []string{"dhcp", "static"}}); err != nil {
		t.Errorf("CheckAttrs(valid) error: %v", err)
	}
}

func TestChoiceType_Validate(t *testing.T) {
	t.Parallel()

	attrs := &ChoiceAttrs{Options: []string{"dhcp", "static"}}
	if !(choiceType{}).Validate("static", attrs) {
		t.Error("Validate(static) = false, want true")
	}
	if (choiceType{}).Validate("manual", attrs) {
		t.Error("Validate(manual) = true, want false")
	}
	msg := (choiceType{}).ErrorMessage("manual", attrs)
	if !strings.Contains(msg, "dhcp, static") {
		t.Errorf("ErrorMessage = %q, want it to list the options", msg)
	}
}

func TestHostnameType_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value string
		want  bool
	}{
		{"nixbox", true},
		{"web-01", true},
		{"a.example.org", true},
		{"-leading", false},
		{"trailing-", false},
		{"under_score", false},
		{"", false},
		{"double..dot", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Parallel()
			if got := (hostnameType{}).Validate(tt.value, nil); got != tt.want {
				t.Errorf("Validate(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}

	if got := (hostnameType{}).Normalize(" NixBox "); got != "nixbox" {
		t.Errorf("Normalize = %q, want %q", got, "nixbox")
	}
}

func TestIPv4Type_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value string
		want  bool
	}{
		{"192.168.1.10", true},
		{"0.0.0.0", true},
		{"256.1.1.1", false},
		{"192.168.1", false},
		{"fe80::1", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Parallel()
			if got := (ipv4Type{}).Validate(tt.value, nil); got != tt.want {
				t.Errorf("Validate(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestCIDRType_Validate(t *testing.T) {
	t.Parallel()

	if !(cidrType{}).Validate("192.168.1.0/24", nil) {
		t.Error("Validate(192.168.1.0/24) = false, want true")
	}
	if (cidrType{}).Validate("192.168.1.0", nil) {
		t.Error("Validate(192.168.1.0) = true, want false")
	}
}

func TestPathType_Normalize(t *testing.T) {
	t.Parallel()

	if got := (pathType{}).Normalize(" /dev//sda "); got != "/dev/sda" {
		t.Errorf("Normalize = %q, want %q", got, "/dev/sda")
	}
	if !(pathType{}).Validate("/dev/sda", nil) {
		t.Error("Validate(/dev/sda) = false, want true")
	}
	if (pathType{}).Validate("dev/sda", nil) {
		t.Error("Validate(dev/sda) = true, want false")
	}
}

func TestPasswordType_DisplayMasks(t *testing.T) {
	t.Parallel()

	if got := (passwordType{}).Display("hunter2"); got != "********" {
		t.Errorf("Display = %q, want masked", got)
	}
	if got := (passwordType{}).Display(""); got != "" {
		t.Errorf("Display(empty) = %q, want empty", got)
	}
}

func TestPasswordType_MinLen(t *testing.T) {
	t.Parallel()

	attrs := &StringAttrs{MinLen: 8}
	if err := attrs.Check(); err != nil {
		t.Fatalf("Check() error: %v", err)
	}
	if (passwordType{}).Validate("short", attrs) {
		t.Error("Validate(short) = true, want false")
	}
	if !(passwordType{}).Validate("longenough", attrs) {
		t.Error("Validate(longenough) = false, want true")
	}
	msg := (passwordType{}).ErrorMessage("short", attrs)
	if !strings.Contains(msg, "at least 8") {
		t.Errorf("ErrorMessage = %q, want it to cite the minimum length", msg)
	}
}

func TestStringAttrs_PatternCompiledOnce(t *testing.T) {
	t.Parallel()

	attrs := &StringAttrs{Pattern: `[a-z]+`}
	if err := attrs.Check(); err != nil {
		t.Fatalf("Check() error: %v", err)
	}
	if !(stringType{}).Validate("abc", attrs) {
		t.Error("Validate(abc) = false, want true")
	}
	if (stringType{}).Validate("ABC", attrs) {
		t.Error("Validate(ABC) = true, want false")
	}

	bad := &StringAttrs{Pattern: `([`}
	if err := bad.Check(); err == nil {
		t.Error("Check() with bad pattern = nil, want error")
	}
}

func TestRegisterBuiltins_AllPresent(t *testing.T) {
	t.Parallel()

	c := builtinCatalog(t)
	for _, name := range []string{
		TypeString, TypeInt, TypeBool, TypeChoice, TypeHostname,
		TypeIPv4, TypeCIDR, TypePath, TypePassword,
	} {
		if _, err := c.Lookup(name); err != nil {
			t.Errorf("Lookup(%q) error: %v", name, err)
		}
	}
}
