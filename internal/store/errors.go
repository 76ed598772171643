// SPDX-License-Identifier: MPL-2.0

package store

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateSetting is the sentinel error wrapped by DuplicateSettingError.
	ErrDuplicateSetting = errors.New("duplicate setting")
	// ErrUnknownSetting is the sentinel error wrapped by UnknownSettingError.
	ErrUnknownSetting = errors.New("unknown setting")
	// ErrDuplicatePreset is the sentinel error wrapped by DuplicatePresetError.
	ErrDuplicatePreset = errors.New("duplicate preset")
	// ErrUnknownPreset is the sentinel error wrapped by UnknownPresetError.
	ErrUnknownPreset = errors.New("unknown preset")
	// ErrInvalidOrigin is the sentinel error wrapped by InvalidOriginError.
	ErrInvalidOrigin = errors.New("invalid origin")
	// ErrConditionOrder is the sentinel error wrapped by ConditionOrderError.
	ErrConditionOrder = errors.New("visibility condition references undeclared setting")
	// ErrValidation is the sentinel error wrapped by ValidationError.
	ErrValidation = errors.New("validation failed")
	// ErrHookDepth is the sentinel error wrapped by HookDepthError.
	ErrHookDepth = errors.New("apply hook cascade too deep")
)

type (
	// DuplicateSettingError is returned when a setting name is declared twice.
	// Setting names are unique across all presets. Wraps ErrDuplicateSetting.
	DuplicateSettingError struct {
		Name string
	}

	// UnknownSettingError is returned when an operation references a setting
	// that was never declared. Wraps ErrUnknownSetting.
	UnknownSettingError struct {
		Name string
	}

	// DuplicatePresetError is returned when a preset name is declared twice.
	// Wraps ErrDuplicatePreset.
	DuplicatePresetError struct {
		Name string
	}

	// UnknownPresetError is returned when an operation references a preset
	// that was never declared. Wraps ErrUnknownPreset.
	UnknownPresetError struct {
		Name string
	}

	// InvalidOriginError is returned when Set is called with an origin outside
	// the declared provenance tags. Wraps ErrInvalidOrigin.
	InvalidOriginError struct {
		Origin Origin
	}

	// ConditionOrderError is returned at declaration time when a visibility
	// condition references a setting declared later (or never). Requiring
	// references to point backwards in registration order keeps the condition
	// graph acyclic. Wraps ErrConditionOrder.
	ConditionOrderError struct {
		Setting   string
		Reference string
	}

	// ValidationError is returned by Set when a value fails its type's
	// validation. It is recoverable: callers re-prompt rather than abort.
	// Wraps ErrValidation.
	ValidationError struct {
		Setting string
		Value   string
		Message string
	}

	// HookDepthError is returned when an apply-hook cascade exceeds the
	// nesting guard. This indicates a cyclic hook declaration and is a
	// registration-class programming error. Wraps ErrHookDepth.
	HookDepthError struct {
		Setting string
		Depth   int
	}
)

// Error implements the error interface for DuplicateSettingError.
func (e *DuplicateSettingError) Error() string {
	return fmt.Sprintf("setting %q already declared", e.Name)
}

// Unwrap returns ErrDuplicateSetting for errors.Is() compatibility.
func (e *DuplicateSettingError) Unwrap() error { return ErrDuplicateSetting }

// Error implements the error interface for UnknownSettingError.
func (e *UnknownSettingError) Error() string {
	return fmt.Sprintf("setting %q not declared", e.Name)
}

// Unwrap returns ErrUnknownSetting for errors.Is() compatibility.
func (e *UnknownSettingError) Unwrap() error { return ErrUnknownSetting }

// Error implements the error interface for DuplicatePresetError.
func (e *DuplicatePresetError) Error() string {
	return fmt.Sprintf("preset %q already declared", e.Name)
}

// Unwrap returns ErrDuplicatePreset for errors.Is() compatibility.
func (e *DuplicatePresetError) Unwrap() error { return ErrDuplicatePreset }

// Error implements the error interface for UnknownPresetError.
func (e *UnknownPresetError) Error() string {
	return fmt.Sprintf("preset %q not declared", e.Name)
}

// Unwrap returns ErrUnknownPreset for errors.Is() compatibility.
func (e *UnknownPresetError) Unwrap() error { return ErrUnknownPreset }

// Error implements the error interface for InvalidOriginError.
func (e *InvalidOriginError) Error() string {
	return fmt.Sprintf("invalid origin %q (valid: default, env, prompt, auto, manual)", e.Origin)
}

// Unwrap returns ErrInvalidOrigin for errors.Is() compatibility.
func (e *InvalidOriginError) Unwrap() error { return ErrInvalidOrigin }

// Error implements the error interface for ConditionOrderError.
func (e *ConditionOrderError) Error() string {
	return fmt.Sprintf("setting %q visibility condition references %q, which is not declared earlier", e.Setting, e.Reference)
}

// Unwrap returns ErrConditionOrder for errors.Is() compatibility.
func (e *ConditionOrderError) Unwrap() error { return ErrConditionOrder }

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("setting %q: %s", e.Setting, e.Message)
}

// Unwrap returns ErrValidation for errors.Is() compatibility.
func (e *ValidationError) Unwrap() error { return ErrValidation }

// Error implements the error interface for HookDepthError.
func (e *HookDepthError) Error() string {
	return fmt.Sprintf("apply hook cascade reached depth %d at setting %q", e.Depth, e.Setting)
}

// Unwrap returns ErrHookDepth for errors.Is() compatibility.
func (e *HookDepthError) Unwrap() error { return ErrHookDepth }
