// SPDX-License-Identifier: MPL-2.0

package store

import (
	"errors"
	"fmt"
	"strconv"
)

// Comparison operators for visibility conditions.
const (
	OpEq CompareOp = "=="
	OpNe CompareOp = "!="
	OpLt CompareOp = "<"
	OpGt CompareOp = ">"
	OpLe CompareOp = "<="
	OpGe CompareOp = ">="
)

// Condition combination modes.
const (
	// CombineAll requires every condition to hold (AND).
	CombineAll CombineMode = "all"
	// CombineAny requires at least one condition to hold (OR).
	CombineAny CombineMode = "any"
)

// ErrInvalidCompareOp is the sentinel error wrapped by InvalidCompareOpError.
var ErrInvalidCompareOp = errors.New("invalid comparison operator")

// ErrInvalidCombineMode is the sentinel error wrapped by InvalidCombineModeError.
var ErrInvalidCombineMode = errors.New("invalid combine mode")

type (
	// CompareOp is a visibility condition operator.
	CompareOp string

	// CombineMode selects AND/OR semantics over a setting's condition list.
	CombineMode string

	// Condition is a predicate over another setting's current value. The
	// referenced setting must be declared earlier in registration order.
	Condition struct {
		// Setting names the referenced setting.
		Setting string
		// Op is the comparison operator.
		Op CompareOp
		// Operand is the literal right-hand side.
		Operand string
	}

	// InvalidCompareOpError is returned when a CompareOp value is not
	// recognized. Wraps ErrInvalidCompareOp.
	InvalidCompareOpError struct {
		Op CompareOp
	}

	// InvalidCombineModeError is returned when a CombineMode value is not
	// recognized. Wraps ErrInvalidCombineMode.
	InvalidCombineModeError struct {
		Mode CombineMode
	}
)

// Validate returns nil if the operator is one of the defined comparisons.
func (op CompareOp) Validate() error {
	switch op {
	case OpEq, OpNe, OpLt, OpGt, OpLe, OpGe:
		return nil
	}
	return &InvalidCompareOpError{Op: op}
}

// Validate returns nil if the mode is "all" or "any".
func (m CombineMode) Validate() error {
	switch m {
	case CombineAll, CombineAny:
		return nil
	}
	return &InvalidCombineModeError{Mode: m}
}

// Error implements the error interface for InvalidCompareOpError.
func (e *InvalidCompareOpError) Error() string {
	return fmt.Sprintf("invalid comparison operator %q (valid: ==, !=, <, >, <=, >=)", e.Op)
}

// Unwrap returns ErrInvalidCompareOp for errors.Is() compatibility.
func (e *InvalidCompareOpError) Unwrap() error { return ErrInvalidCompareOp }

// Error implements the error interface for InvalidCombineModeError.
func (e *InvalidCombineModeError) Error() string {
	return fmt.Sprintf("invalid combine mode %q (valid: all, any)", e.Mode)
}

// Unwrap returns ErrInvalidCombineMode for errors.Is() compatibility.
func (e *InvalidCombineModeError) Unwrap() error { return ErrInvalidCombineMode }

// holds evaluates the condition against a current value. Both operands are
// compared numerically when both parse as numbers, lexicographically
// otherwise.
func (c Condition) holds(current string) bool {
	ln, lerr := strconv.ParseFloat(current, 64)
	rn, rerr := strconv.ParseFloat(c.Operand, 64)
	if lerr == nil && rerr == nil {
		return compareNumeric(ln, c.Op, rn)
	}
	return compareString(current, c.Op, c.Operand)
}

func compareNumeric(l float64, op CompareOp, r float64) bool {
	switch op {
	case OpEq:
		return l == r
	case OpNe:
		return l != r
	case OpLt:
		return l < r
	case OpGt:
		return l > r
	case OpLe:
		return l <= r
	case OpGe:
		return l >= r
	}
	return false
}

func compareString(l string, op CompareOp, r string) bool {
	switch op {
	case OpEq:
		return l == r
	case OpNe:
		return l != r
	case OpLt:
		return l < r
	case OpGt:
		return l > r
	case OpLe:
		return l <= r
	case OpGe:
		return l >= r
	}
	return false
}

// Visible evaluates the setting's visibility conditions against the current
// values of the referenced settings. Evaluation is pure: menu redraws call it
// every loop iteration. A setting with no conditions is always visible.
// Referenced values are read regardless of the referenced setting's own
// visibility.
func (s *Store) Visible(name string) (bool, error) {
	st, ok := s.settings[name]
	if !ok {
		return false, &UnknownSettingError{Name: name}
	}
	if len(st.Conditions) == 0 {
		return true, nil
	}

	if st.Combine == CombineAny {
		for _, cond := range st.Conditions {
			if cond.holds(s.Value(cond.Setting)) {
				return true, nil
			}
		}
		return false, nil
	}

	for _, cond := range st.Conditions {
		if !cond.holds(s.Value(cond.Setting)) {
			return false, nil
		}
	}
	return true, nil
}

// VisibleSettings returns the currently visible settings of a preset in
// declaration order.
func (s *Store) VisibleSettings(preset string) ([]string, error) {
	p, ok := s.presets[preset]
	if !ok {
		return nil, &UnknownPresetError{Name: preset}
	}
	var out []string
	for _, name := range p.settings {
		visible, err := s.Visible(name)
		if err != nil {
			return nil, err
		}
		if visible {
			out = append(out, name)
		}
	}
	return out, nil
}
