// SPDX-License-Identifier: MPL-2.0

package settype

import (
	"fmt"
	"regexp"
)

type (
	// Attrs is the declaration-time attribute bundle attached to a setting.
	// Attribute structs are typed and validated once at declaration, never
	// re-parsed from strings during validation.
	Attrs interface {
		// Check validates the attribute values themselves (e.g. min <= max,
		// pattern compiles). Called once when the setting is created.
		Check() error
	}

	// IntAttrs bounds an integer setting. Nil bounds are unbounded.
	IntAttrs struct {
		Min *int64
		Max *int64
	}

	// StringAttrs constrains a string setting. A zero value accepts anything.
	StringAttrs struct {
		// Pattern is an optional anchored regular expression the value must match.
		Pattern string
		// MinLen is the minimum value length in bytes (0 for none).
		MinLen int
		// MaxLen is the maximum value length in bytes (0 for none).
		MaxLen int

		re *regexp.Regexp
	}

	// ChoiceAttrs enumerates the accepted values of a choice setting.
	ChoiceAttrs struct {
		Options []string
	}
)

// IntBound is a convenience constructor for optional integer bounds.
func IntBound(n int64) *int64 { return &n }

// Check implements Attrs for IntAttrs.
func (a *IntAttrs) Check() error {
	if a.Min != nil && a.Max != nil && *a.Min > *a.Max {
		return fmt.Errorf("min %d exceeds max %d", *a.Min, *a.Max)
	}
	return nil
}

// Check implements Attrs for StringAttrs. It compiles the pattern once so
// validation never re-parses it.
func (a *StringAttrs) Check() error {
	if a.MinLen < 0 || a.MaxLen < 0 {
		return fmt.Errorf("negative length bound")
	}
	if a.MaxLen > 0 && a.MinLen > a.MaxLen {
		return fmt.Errorf("min length %d exceeds max length %d", a.MinLen, a.MaxLen)
	}
	if a.Pattern != "" {
		re, err := regexp.Compile("^(?:" + a.Pattern + ")$")
		if err != nil {
			return fmt.Errorf("bad pattern: %w", err)
		}
		a.re = re
	}
	return nil
}

// matches reports whether value satisfies the compiled pattern.
// A StringAttrs without a pattern matches everything.
func (a *StringAttrs) matches(value string) bool {
	if a.re == nil {
		return true
	}
	return a.re.MatchString(value)
}

// Check implements Attrs for ChoiceAttrs.
func (a *ChoiceAttrs) Check() error {
	seen := make(map[string]bool, len(a.Options))
	for _, opt := range a.Options {
		if opt == "" {
			return fmt.Errorf("empty option")
		}
		if seen[opt] {
			return fmt.Errorf("duplicate option %q", opt)
		}
		seen[opt] = true
	}
	return nil
}

// contains reports whether value is one of the declared options.
func (a *ChoiceAttrs) contains(value string) bool {
	for _, opt := range a.Options {
		if opt == value {
			return true
		}
	}
	return false
}
