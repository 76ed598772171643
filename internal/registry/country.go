// SPDX-License-Identifier: MPL-2.0

package registry

import (
	"fmt"
	"sort"
	"strings"

	"dps-cli/internal/settype"
)

// TypeCountry is the country selection type with region cascades.
const TypeCountry = "country"

// Settings written by the country apply hook.
const (
	settingTimezone = "TIMEZONE"
	settingLocale   = "LOCALE"
	settingKeyboard = "KEYBOARD_LAYOUT"
)

// regionDefaults are the derived values for one country.
type regionDefaults struct {
	label    string
	timezone string
	locale   string
	keyboard string
}

// countries maps ISO 3166-1 alpha-2 codes to their region defaults.
var countries = map[string]regionDefaults{
	"AT": {"Austria", "Europe/Vienna", "de_AT.UTF-8", "at"},
	"CH": {"Switzerland", "Europe/Zurich", "de_CH.UTF-8", "ch"},
	"DE": {"Germany", "Europe/Berlin", "de_DE.UTF-8", "de"},
	"ES": {"Spain", "Europe/Madrid", "es_ES.UTF-8", "es"},
	"FR": {"France", "Europe/Paris", "fr_FR.UTF-8", "fr"},
	"GB": {"United Kingdom", "Europe/London", "en_GB.UTF-8", "gb"},
	"IT": {"Italy", "Europe/Rome", "it_IT.UTF-8", "it"},
	"JP": {"Japan", "Asia/Tokyo", "ja_JP.UTF-8", "jp"},
	"NL": {"Netherlands", "Europe/Amsterdam", "nl_NL.UTF-8", "nl"},
	"PL": {"Poland", "Europe/Warsaw", "pl_PL.UTF-8", "pl"},
	"SE": {"Sweden", "Europe/Stockholm", "sv_SE.UTF-8", "se"},
	"US": {"United States", "America/New_York", "en_US.UTF-8", "us"},
}

// countryCodes returns the supported codes in sorted order.
func countryCodes() []string {
	codes := make([]string, 0, len(countries))
	for code := range countries {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// countryType selects a country and cascades its timezone, locale, and
// keyboard layout into the region settings.
type countryType struct{}

func (countryType) Name() string { return TypeCountry }

func (countryType) CheckAttrs(attrs settype.Attrs) error {
	if attrs != nil {
		return &settype.InvalidAttrsError{Type: TypeCountry, Reason: "takes no attributes"}
	}
	return nil
}

func (countryType) Validate(value string, _ settype.Attrs) bool {
	_, ok := countries[value]
	return ok
}

func (countryType) ErrorMessage(value string, _ settype.Attrs) string {
	return fmt.Sprintf("%q is not a supported country code (%s)", value, strings.Join(countryCodes(), ", "))
}

func (countryType) Normalize(value string) string {
	return strings.ToUpper(strings.TrimSpace(value))
}

func (countryType) Display(value string) string {
	if c, ok := countries[value]; ok {
		return fmt.Sprintf("%s (%s)", value, c.label)
	}
	return value
}

func (countryType) PromptHint(_ settype.Attrs) string {
	return "country code: " + strings.Join(countryCodes(), ", ")
}

// Apply fills the region settings derived from the selected country.
func (countryType) Apply(value string) []settype.Write {
	c, ok := countries[value]
	if !ok {
		return nil
	}
	return []settype.Write{
		{Setting: settingTimezone, Value: c.timezone},
		{Setting: settingLocale, Value: c.locale},
		{Setting: settingKeyboard, Value: c.keyboard},
	}
}
