// SPDX-License-Identifier: MPL-2.0

// Package settype provides the pluggable behavior catalog for setting types.
//
// A Type bundles the per-kind behaviors shared by every setting of that kind:
// validation, normalization, display formatting, error messages, prompt hints,
// and (optionally) apply hooks that cascade derived values into other settings.
// Types are registered once at startup in a Catalog; optional behaviors are
// resolved to concrete function references at registration time so dispatch
// never goes through interface type assertions on the hot path.
package settype

import "fmt"

type (
	// Type is the mandatory behavior bundle implemented by every setting type.
	Type interface {
		// Name returns the unique type name used by setting declarations.
		Name() string
		// CheckAttrs validates the attribute struct supplied at declaration
		// time. It is called once per setting, not per validation.
		CheckAttrs(attrs Attrs) error
		// Validate reports whether value is acceptable under attrs.
		Validate(value string, attrs Attrs) bool
		// ErrorMessage returns the user-facing message for a rejected value.
		ErrorMessage(value string, attrs Attrs) string
	}

	// Normalizer is implemented by types that canonicalize raw input
	// (trimming, case folding, address formatting) before validation.
	Normalizer interface {
		Normalize(value string) string
	}

	// Displayer is implemented by types that render values specially for
	// terminal output (e.g. masking passwords).
	Displayer interface {
		Display(value string) string
	}

	// Hinter is implemented by types that can describe the expected input
	// next to a prompt (e.g. "integer between 1 and 65535").
	Hinter interface {
		PromptHint(attrs Attrs) string
	}

	// Applier is implemented by types whose value changes cascade derived
	// values into other settings (e.g. country selection filling timezone).
	Applier interface {
		Apply(value string) []Write
	}

	// Write is a single derived assignment produced by an apply hook.
	Write struct {
		// Setting is the name of the target setting.
		Setting string
		// Value is the derived value to store.
		Value string
	}

	// Entry is a registered type with its optional behaviors resolved.
	Entry struct {
		typ       Type
		normalize func(string) string
		display   func(string) string
		hint      func(Attrs) string
		applier   Applier
	}

	// Catalog maps type names to registered entries.
	Catalog struct {
		entries map[string]*Entry
	}
)

// NewCatalog creates an empty type catalog.
func NewCatalog() *Catalog {
	return &Catalog{entries: make(map[string]*Entry)}
}

// Register adds a type to the catalog, resolving its optional behaviors once.
// Registering the same type name twice is a programming error.
func (c *Catalog) Register(t Type) error {
	name := t.Name()
	if _, exists := c.entries[name]; exists {
		return &TypeRegisteredError{Name: name}
	}

	e := &Entry{typ: t}

	if n, ok := t.(Normalizer); ok {
		e.normalize = n.Normalize
	} else {
		e.normalize = func(v string) string { return v }
	}

	if d, ok := t.(Displayer); ok {
		e.display = d.Display
	} else {
		e.display = func(v string) string { return v }
	}

	if h, ok := t.(Hinter); ok {
		e.hint = h.PromptHint
	} else {
		e.hint = func(Attrs) string { return "" }
	}

	if a, ok := t.(Applier); ok {
		e.applier = a
	}

	c.entries[name] = e
	return nil
}

// Lookup resolves a type name to its registered entry.
func (c *Catalog) Lookup(name string) (*Entry, error) {
	e, ok := c.entries[name]
	if !ok {
		return nil, &UnknownTypeError{Name: name}
	}
	return e, nil
}

// Name returns the registered type name.
func (e *Entry) Name() string { return e.typ.Name() }

// CheckAttrs validates declaration-time attributes for this type.
func (e *Entry) CheckAttrs(attrs Attrs) error { return e.typ.CheckAttrs(attrs) }

// Validate reports whether value is acceptable under attrs.
func (e *Entry) Validate(value string, attrs Attrs) bool { return e.typ.Validate(value, attrs) }

// ErrorMessage returns the user-facing message for a rejected value.
func (e *Entry) ErrorMessage(value string, attrs Attrs) string {
	return e.typ.ErrorMessage(value, attrs)
}

// Normalize canonicalizes raw input; identity for types without a Normalizer.
func (e *Entry) Normalize(value string) string { return e.normalize(value) }

// Display renders a value for terminal output; identity by default.
func (e *Entry) Display(value string) string { return e.display(value) }

// PromptHint describes the expected input; empty by default.
func (e *Entry) PromptHint(attrs Attrs) string { return e.hint(attrs) }

// HasApply reports whether the type declares an apply hook.
func (e *Entry) HasApply() bool { return e.applier != nil }

// Apply invokes the type's apply hook. Callers must check HasApply first.
func (e *Entry) Apply(value string) []Write {
	if e.applier == nil {
		return nil
	}
	return e.applier.Apply(value)
}

// attrsTypeName names an attribute struct for error messages.
func attrsTypeName(attrs Attrs) string {
	if attrs == nil {
		return "none"
	}
	return fmt.Sprintf("%T", attrs)
}
