// SPDX-License-Identifier: MPL-2.0

package settype

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownType is the sentinel error wrapped by UnknownTypeError.
	ErrUnknownType = errors.New("unknown setting type")
	// ErrTypeRegistered is the sentinel error wrapped by TypeRegisteredError.
	ErrTypeRegistered = errors.New("setting type already registered")
	// ErrMissingAttribute is the sentinel error wrapped by MissingAttributeError.
	ErrMissingAttribute = errors.New("missing required attribute")
	// ErrInvalidAttrs is the sentinel error wrapped by InvalidAttrsError.
	ErrInvalidAttrs = errors.New("invalid attributes")
)

type (
	// UnknownTypeError is returned when a setting references a type name
	// that was never registered in the catalog.
	// It wraps ErrUnknownType for errors.Is() compatibility.
	UnknownTypeError struct {
		Name string
	}

	// TypeRegisteredError is returned when a type name is registered twice.
	// It wraps ErrTypeRegistered for errors.Is() compatibility.
	TypeRegisteredError struct {
		Name string
	}

	// MissingAttributeError is returned at declaration time when a type
	// requires an attribute the setting did not supply (e.g. a choice type
	// declared without options).
	// It wraps ErrMissingAttribute for errors.Is() compatibility.
	MissingAttributeError struct {
		Type      string
		Attribute string
	}

	// InvalidAttrsError is returned at declaration time when a setting
	// supplies an attribute struct of the wrong kind for its type.
	// It wraps ErrInvalidAttrs for errors.Is() compatibility.
	InvalidAttrsError struct {
		Type   string
		Reason string
	}
)

// Error implements the error interface for UnknownTypeError.
func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown setting type %q", e.Name)
}

// Unwrap returns ErrUnknownType for errors.Is() compatibility.
func (e *UnknownTypeError) Unwrap() error { return ErrUnknownType }

// Error implements the error interface for TypeRegisteredError.
func (e *TypeRegisteredError) Error() string {
	return fmt.Sprintf("setting type %q already registered", e.Name)
}

// Unwrap returns ErrTypeRegistered for errors.Is() compatibility.
func (e *TypeRegisteredError) Unwrap() error { return ErrTypeRegistered }

// Error implements the error interface for MissingAttributeError.
func (e *MissingAttributeError) Error() string {
	return fmt.Sprintf("type %q requires attribute %q", e.Type, e.Attribute)
}

// Unwrap returns ErrMissingAttribute for errors.Is() compatibility.
func (e *MissingAttributeError) Unwrap() error { return ErrMissingAttribute }

// Error implements the error interface for InvalidAttrsError.
func (e *InvalidAttrsError) Error() string {
	return fmt.Sprintf("invalid attributes for type %q: %s", e.Type, e.Reason)
}

// Unwrap returns ErrInvalidAttrs for errors.Is() compatibility.
func (e *InvalidAttrsError) Unwrap() error { return ErrInvalidAttrs }
