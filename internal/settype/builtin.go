// SPDX-License-Identifier: MPL-2.0

package settype

import (
	"fmt"
	"net/netip"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// Builtin type names.
const (
	TypeString   = "string"
	TypeInt      = "int"
	TypeBool     = "bool"
	TypeChoice   = "choice"
	TypeHostname = "hostname"
	TypeIPv4     = "ipv4"
	TypeCIDR     = "cidr"
	TypePath     = "path"
	TypePassword = "password"
)

// RegisterBuiltins registers the generic builtin types into the catalog.
// Domain modules register their own types (e.g. country) on top of these.
func RegisterBuiltins(c *Catalog) error {
	builtins := []Type{
		stringType{},
		intType{},
		boolType{},
		choiceType{},
		hostnameType{},
		ipv4Type{},
		cidrType{},
		pathType{},
		passwordType{},
	}
	for _, t := range builtins {
		if err := c.Register(t); err != nil {
			return err
		}
	}
	return nil
}

// stringAttrsOf coerces attrs to *StringAttrs, tolerating nil.
func stringAttrsOf(typeName string, attrs Attrs) (*StringAttrs, error) {
	if attrs == nil {
		return nil, nil
	}
	a, ok := attrs.(*StringAttrs)
	if !ok {
		return nil, &InvalidAttrsError{Type: typeName, Reason: "want *StringAttrs, got " + attrsTypeName(attrs)}
	}
	return a, nil
}

// intAttrsOf coerces attrs to *IntAttrs, tolerating nil.
func intAttrsOf(typeName string, attrs Attrs) (*IntAttrs, error) {
	if attrs == nil {
		return nil, nil
	}
	a, ok := attrs.(*IntAttrs)
	if !ok {
		return nil, &InvalidAttrsError{Type: typeName, Reason: "want *IntAttrs, got " + attrsTypeName(attrs)}
	}
	return a, nil
}

// --- string ---

type stringType struct{}

func (stringType) Name() string { return TypeString }

func (stringType) CheckAttrs(attrs Attrs) error {
	_, err := stringAttrsOf(TypeString, attrs)
	return err
}

func (stringType) Validate(value string, attrs Attrs) bool {
	a, _ := stringAttrsOf(TypeString, attrs)
	if a == nil {
		return true
	}
	if a.MinLen > 0 && len(value) < a.MinLen {
		return false
	}
	if a.MaxLen > 0 && len(value) > a.MaxLen {
		return false
	}
	return a.matches(value)
}

func (stringType) ErrorMessage(value string, attrs Attrs) string {
	a, _ := stringAttrsOf(TypeString, attrs)
	if a != nil {
		if a.MinLen > 0 && len(value) < a.MinLen {
			return fmt.Sprintf("must be at least %d characters", a.MinLen)
		}
		if a.MaxLen > 0 && len(value) > a.MaxLen {
			return fmt.Sprintf("must be at most %d characters", a.MaxLen)
		}
		if a.Pattern != "" {
			return fmt.Sprintf("must match pattern %s", a.Pattern)
		}
	}
	return fmt.Sprintf("invalid value %q", value)
}

func (stringType) Normalize(value string) string { return strings.TrimSpace(value) }

// --- int ---

type intType struct{}

func (intType) Name() string { return TypeInt }

func (intType) CheckAttrs(attrs Attrs) error {
	_, err := intAttrsOf(TypeInt, attrs)
	return err
}

func (intType) Validate(value string, attrs Attrs) bool {
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return false
	}
	a, _ := intAttrsOf(TypeInt, attrs)
	if a == nil {
		return true
	}
	if a.Min != nil && n < *a.Min {
		return false
	}
	if a.Max != nil && n > *a.Max {
		return false
	}
	return true
}

func (intType) ErrorMessage(value string, attrs Attrs) string {
	if _, err := strconv.ParseInt(value, 10, 64); err != nil {
		return fmt.Sprintf("%q is not a whole number", value)
	}
	a, _ := intAttrsOf(TypeInt, attrs)
	switch {
	case a != nil && a.Min != nil && a.Max != nil:
		return fmt.Sprintf("must be between %d and %d", *a.Min, *a.Max)
	case a != nil && a.Min != nil:
		return fmt.Sprintf("must be at least %d", *a.Min)
	case a != nil && a.Max != nil:
		return fmt.Sprintf("must be at most %d", *a.Max)
	}
	return fmt.Sprintf("invalid number %q", value)
}

func (intType) Normalize(value string) string { return strings.TrimSpace(value) }

func (intType) PromptHint(attrs Attrs) string {
	a, _ := intAttrsOf(TypeInt, attrs)
	switch {
	case a != nil && a.Min != nil && a.Max != nil:
		return fmt.Sprintf("integer between %d and %d", *a.Min, *a.Max)
	case a != nil && a.Min != nil:
		return fmt.Sprintf("integer >= %d", *a.Min)
	case a != nil && a.Max != nil:
		return fmt.Sprintf("integer <= %d", *a.Max)
	}
	return "integer"
}

// --- bool ---

type boolType struct{}

func (boolType) Name() string { return TypeBool }

func (boolType) CheckAttrs(attrs Attrs) error {
	if attrs != nil {
		return &InvalidAttrsError{Type: TypeBool, Reason: "takes no attributes"}
	}
	return nil
}

func (boolType) Validate(value string, _ Attrs) bool {
	return value == "yes" || value == "no"
}

func (boolType) ErrorMessage(value string, _ Attrs) string {
	return fmt.Sprintf("%q is not yes or no", value)
}

// Normalize folds the usual boolean spellings to yes/no; unrecognized
// input passes through unchanged so Validate can reject it.
func (boolType) Normalize(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "yes", "y", "true", "1", "on":
		return "yes"
	case "no", "n", "false", "0", "off":
		return "no"
	}
	return strings.TrimSpace(value)
}

func (boolType) PromptHint(_ Attrs) string { return "yes/no" }

// --- choice ---

type choiceType struct{}

func (choiceType) Name() string { return TypeChoice }

func (choiceType) CheckAttrs(attrs Attrs) error {
	if attrs == nil {
		return &MissingAttributeError{Type: TypeChoice, Attribute: "options"}
	}
	a, ok := attrs.(*ChoiceAttrs)
	if !ok {
		return &InvalidAttrsError{Type: TypeChoice, Reason: "want *ChoiceAttrs, got " + attrsTypeName(attrs)}
	}
	if len(a.Options) == 0 {
		return &MissingAttributeError{Type: TypeChoice, Attribute: "options"}
	}
	return nil
}

func (choiceType) Validate(value string, attrs Attrs) bool {
	a, ok := attrs.(*ChoiceAttrs)
	return ok && a.contains(value)
}

func (choiceType) ErrorMessage(value string, attrs Attrs) string {
	if a, ok := attrs.(*ChoiceAttrs); ok {
		return fmt.Sprintf("%q is not one of: %s", value, strings.Join(a.Options, ", "))
	}
	return fmt.Sprintf("invalid choice %q", value)
}

func (choiceType) Normalize(value string) string { return strings.TrimSpace(value) }

func (choiceType) PromptHint(attrs Attrs) string {
	if a, ok := attrs.(*ChoiceAttrs); ok {
		return "one of: " + strings.Join(a.Options, ", ")
	}
	return ""
}

// --- hostname ---

// hostnameRe accepts RFC 1123 host labels joined by dots.
var hostnameRe = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]{0,61}[a-z0-9])?(\.[a-z0-9]([a-z0-9-]{0,61}[a-z0-9])?)*$`)

type hostnameType struct{}

func (hostnameType) Name() string { return TypeHostname }

func (hostnameType) CheckAttrs(attrs Attrs) error {
	if attrs != nil {
		return &InvalidAttrsError{Type: TypeHostname, Reason: "takes no attributes"}
	}
	return nil
}

func (hostnameType) Validate(value string, _ Attrs) bool {
	return len(value) <= 253 && hostnameRe.MatchString(value)
}

func (hostnameType) ErrorMessage(value string, _ Attrs) string {
	return fmt.Sprintf("%q is not a valid hostname", value)
}

func (hostnameType) Normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func (hostnameType) PromptHint(_ Attrs) string { return "hostname (letters, digits, hyphens)" }

// --- ipv4 ---

type ipv4Type struct{}

func (ipv4Type) Name() string { return TypeIPv4 }

func (ipv4Type) CheckAttrs(attrs Attrs) error {
	if attrs != nil {
		return &InvalidAttrsError{Type: TypeIPv4, Reason: "takes no attributes"}
	}
	return nil
}

func (ipv4Type) Validate(value string, _ Attrs) bool {
	addr, err := netip.ParseAddr(value)
	return err == nil && addr.Is4()
}

func (ipv4Type) ErrorMessage(value string, _ Attrs) string {
	return fmt.Sprintf("%q is not a valid IPv4 address", value)
}

// Normalize round-trips parseable addresses through netip so stored values
// have a canonical textual form.
func (ipv4Type) Normalize(value string) string {
	trimmed := strings.TrimSpace(value)
	if addr, err := netip.ParseAddr(trimmed); err == nil && addr.Is4() {
		return addr.String()
	}
	return trimmed
}

func (ipv4Type) PromptHint(_ Attrs) string { return "IPv4 address, e.g. 192.168.1.10" }

// --- cidr ---

type cidrType struct{}

func (cidrType) Name() string { return TypeCIDR }

func (cidrType) CheckAttrs(attrs Attrs) error {
	if attrs != nil {
		return &InvalidAttrsError{Type: TypeCIDR, Reason: "takes no attributes"}
	}
	return nil
}

func (cidrType) Validate(value string, _ Attrs) bool {
	_, err := netip.ParsePrefix(value)
	return err == nil
}

func (cidrType) ErrorMessage(value string, _ Attrs) string {
	return fmt.Sprintf("%q is not a valid CIDR prefix", value)
}

func (cidrType) Normalize(value string) string {
	trimmed := strings.TrimSpace(value)
	if prefix, err := netip.ParsePrefix(trimmed); err == nil {
		return prefix.String()
	}
	return trimmed
}

func (cidrType) PromptHint(_ Attrs) string { return "CIDR prefix, e.g. 192.168.1.0/24" }

// --- path ---

type pathType struct{}

func (pathType) Name() string { return TypePath }

func (pathType) CheckAttrs(attrs Attrs) error {
	if attrs != nil {
		return &InvalidAttrsError{Type: TypePath, Reason: "takes no attributes"}
	}
	return nil
}

func (pathType) Validate(value string, _ Attrs) bool {
	return strings.HasPrefix(value, "/")
}

func (pathType) ErrorMessage(value string, _ Attrs) string {
	return fmt.Sprintf("%q is not an absolute path", value)
}

func (pathType) Normalize(value string) string {
	trimmed := strings.TrimSpace(value)
	if strings.HasPrefix(trimmed, "/") {
		return filepath.Clean(trimmed)
	}
	return trimmed
}

func (pathType) PromptHint(_ Attrs) string { return "absolute path, e.g. /dev/sda" }

// --- password ---

type passwordType struct{}

func (passwordType) Name() string { return TypePassword }

func (passwordType) CheckAttrs(attrs Attrs) error {
	_, err := stringAttrsOf(TypePassword, attrs)
	return err
}

func (passwordType) Validate(value string, attrs Attrs) bool {
	a, _ := stringAttrsOf(TypePassword, attrs)
	if a == nil {
		return value != ""
	}
	if a.MinLen > 0 && len(value) < a.MinLen {
		return false
	}
	if a.MaxLen > 0 && len(value) > a.MaxLen {
		return false
	}
	return value != ""
}

func (passwordType) ErrorMessage(value string, attrs Attrs) string {
	a, _ := stringAttrsOf(TypePassword, attrs)
	if a != nil && a.MinLen > 0 && len(value) < a.MinLen {
		return fmt.Sprintf("must be at least %d characters", a.MinLen)
	}
	return "must not be empty"
}

// Display masks the stored value; the real value never reaches the screen.
func (passwordType) Display(value string) string {
	if value == "" {
		return ""
	}
	return "********"
}

func (passwordType) PromptHint(_ Attrs) string { return "input hidden" }
