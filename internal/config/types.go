// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidEnvPrefix is returned when an EnvPrefix value is malformed.
	ErrInvalidEnvPrefix = errors.New("invalid env prefix")
	// ErrInvalidExportFilePath is returned when an ExportFilePath value is whitespace-only.
	ErrInvalidExportFilePath = errors.New("invalid export file path")
	// ErrInvalidUIConfig is the sentinel error wrapped by InvalidUIConfigError.
	ErrInvalidUIConfig = errors.New("invalid UI config")
	// ErrInvalidExportConfig is the sentinel error wrapped by InvalidExportConfigError.
	ErrInvalidExportConfig = errors.New("invalid export config")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	// It wraps ErrInvalidColorScheme for errors.Is() compatibility.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// EnvPrefix is the prefix prepended to setting names when reading and
	// writing environment variables. A valid prefix starts with an ASCII
	// letter and contains only uppercase letters, digits, and underscores.
	EnvPrefix string

	// InvalidEnvPrefixError is returned when an EnvPrefix value is malformed.
	// It wraps ErrInvalidEnvPrefix for errors.Is() compatibility.
	InvalidEnvPrefixError struct {
		Value EnvPrefix
	}

	// ExportFilePath is the default target for the export command.
	// The zero value ("") is valid and means "write to stdout".
	// Non-zero values must not be whitespace-only.
	ExportFilePath string

	// InvalidExportFilePathError is returned when an ExportFilePath value is
	// non-empty but whitespace-only.
	InvalidExportFilePathError struct {
		Value ExportFilePath
	}

	// InvalidUIConfigError is returned when a UIConfig has invalid fields.
	// It wraps ErrInvalidUIConfig for errors.Is() compatibility and collects
	// field-level validation errors.
	InvalidUIConfigError struct {
		FieldErrors []error
	}

	// InvalidExportConfigError is returned when an ExportConfig has invalid fields.
	// It wraps ErrInvalidExportConfig for errors.Is() compatibility and collects
	// field-level validation errors.
	InvalidExportConfigError struct {
		FieldErrors []error
	}

	// InvalidConfigError is returned when a Config has invalid fields.
	// It wraps ErrInvalidConfig for errors.Is() compatibility and collects
	// field-level validation errors from all sub-components.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the application configuration.
	Config struct {
		// EnvPrefix is the prefix for imported and exported environment variables.
		EnvPrefix EnvPrefix `json:"env_prefix" mapstructure:"env_prefix"`
		// UI configures the user interface.
		UI UIConfig `json:"ui" mapstructure:"ui"`
		// Export configures the export command defaults.
		Export ExportConfig `json:"export" mapstructure:"export"`
	}

	// UIConfig configures the user interface.
	UIConfig struct {
		// ColorScheme sets the color scheme
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme"`
		// Verbose enables verbose output
		Verbose bool `json:"verbose" mapstructure:"verbose"`
	}

	// ExportConfig configures the export command defaults.
	ExportConfig struct {
		// File is the default export target. Empty means stdout.
		File ExportFilePath `json:"file" mapstructure:"file"`
		// SkipDefaults omits settings still carrying their default value.
		SkipDefaults bool `json:"skip_defaults" mapstructure:"skip_defaults"`
	}
)

// Error implements the error interface for InvalidColorSchemeError.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error {
	return ErrInvalidColorScheme
}

// String returns the string representation of the ColorScheme.
func (cs ColorScheme) String() string { return string(cs) }

// IsValid returns whether the ColorScheme is one of the defined color schemes,
// and a list of validation errors if it is not.
func (cs ColorScheme) IsValid() (bool, []error) {
	switch cs {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return true, nil
	default:
		return false, []error{&InvalidColorSchemeError{Value: cs}}
	}
}

// Error implements the error interface for InvalidEnvPrefixError.
func (e *InvalidEnvPrefixError) Error() string {
	return fmt.Sprintf("invalid env prefix %q: must start with a letter and contain only A-Z, 0-9, _", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidEnvPrefixError) Unwrap() error { return ErrInvalidEnvPrefix }

// String returns the string representation of the EnvPrefix.
func (p EnvPrefix) String() string { return string(p) }

// IsValid returns whether the EnvPrefix is well formed.
func (p EnvPrefix) IsValid() (bool, []error) {
	if p == "" {
		return false, []error{&InvalidEnvPrefixError{Value: p}}
	}
	for i, c := range string(p) {
		switch {
		case c >= 'A' && c <= 'Z':
		case c == '_' && i > 0:
		case c >= '0' && c <= '9' && i > 0:
		default:
			return false, []error{&InvalidEnvPrefixError{Value: p}}
		}
	}
	return true, nil
}

// Error implements the error interface for InvalidExportFilePathError.
func (e *InvalidExportFilePathError) Error() string {
	return fmt.Sprintf("invalid export file path %q: non-empty value must not be whitespace-only", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidExportFilePathError) Unwrap() error { return ErrInvalidExportFilePath }

// String returns the string representation of the ExportFilePath.
func (p ExportFilePath) String() string { return string(p) }

// IsValid returns whether the ExportFilePath is valid.
// The zero value ("") is valid (means "write to stdout").
// Non-zero values must not be whitespace-only.
func (p ExportFilePath) IsValid() (bool, []error) {
	if p == "" {
		return true, nil
	}
	if strings.TrimSpace(string(p)) == "" {
		return false, []error{&InvalidExportFilePathError{Value: p}}
	}
	return true, nil
}

// IsValid returns whether the UIConfig has valid fields.
// It delegates to ColorScheme.IsValid(); bool fields need no validation.
func (c UIConfig) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.ColorScheme.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidUIConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidUIConfigError.
func (e *InvalidUIConfigError) Error() string {
	return fmt.Sprintf("invalid UI config: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidUIConfig for errors.Is() compatibility.
func (e *InvalidUIConfigError) Unwrap() error { return ErrInvalidUIConfig }

// IsValid returns whether the ExportConfig has valid fields.
// It delegates to File.IsValid(); bool fields need no validation.
func (c ExportConfig) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.File.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidExportConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidExportConfigError.
func (e *InvalidExportConfigError) Error() string {
	return fmt.Sprintf("invalid export config: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidExportConfig for errors.Is() compatibility.
func (e *InvalidExportConfigError) Unwrap() error { return ErrInvalidExportConfig }

// IsValid returns whether the Config has valid fields.
// It delegates to EnvPrefix.IsValid(), UI.IsValid(), and Export.IsValid().
func (c Config) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.EnvPrefix.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.UI.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.Export.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid config: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidConfig for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		EnvPrefix: "DPS",
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
			Verbose:     false,
		},
		Export: ExportConfig{
			File:         "", // stdout
			SkipDefaults: false,
		},
	}
}
