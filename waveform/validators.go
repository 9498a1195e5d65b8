// Package waveform provides validation helpers to enforce parameter
// contracts in shape generators.
//
// Each function returns a formatted error wrapping ErrInvalidParameter
// when its precondition is violated.
package waveform

import (
	"fmt"
	"math"
)

// validatePositive ensures the named parameter is strictly greater than zero.
// Returns "<method>: <name> must be > 0, got <got>" wrapping ErrInvalidParameter.
//
// Parameters:
//   - method: registry key constant, e.g. KeySinc.
//   - name:   parameter name as declared in the defaults map.
//   - got:    actual value supplied (after defaults merge).
//
// Complexity: O(1) time and space.
func validatePositive(method, name string, got float64) error {
	if !(got > 0) || math.IsInf(got, 1) {
		return wrapf(method, fmt.Sprintf("%s must be > 0, got %g", name, got), ErrInvalidParameter)
	}

	return nil
}

// validateNonNegative ensures the named parameter is ≥ 0 and finite.
// Returns "<method>: <name> must be ≥ 0, got <got>" otherwise.
//
// Complexity: O(1) time and space.
func validateNonNegative(method, name string, got float64) error {
	if got < 0 || math.IsNaN(got) || math.IsInf(got, 0) {
		return wrapf(method, fmt.Sprintf("%s must be ≥ 0, got %g", name, got), ErrInvalidParameter)
	}

	return nil
}

// validateFraction enforces got ∈ [MinFraction, MaxFraction].
// Used by trapezoid zones, marker positions and lobe widths.
// Returns "<method>: <name> must be in [0,1], got <got>" on failure.
//
// Complexity: O(1) time and space.
func validateFraction(method, name string, got float64) error {
	if got < MinFraction || got > MaxFraction || math.IsNaN(got) {
		return wrapf(method, fmt.Sprintf("%s must be in [%g,%g], got %g", name, MinFraction, MaxFraction, got), ErrInvalidParameter)
	}

	return nil
}

// validateCount ensures the named parameter is an integer-valued count ≥ min.
// Counts travel through Params as float64; a fractional value is a caller
// mistake, not something to round silently.
// Returns "<method>: <name> must be an integer ≥ <min>, got <got>" on failure.
//
// Complexity: O(1) time and space.
func validateCount(method, name string, got float64, min int) error {
	if math.IsNaN(got) || got != math.Trunc(got) || got < float64(min) {
		return wrapf(method, fmt.Sprintf("%s must be an integer ≥ %d, got %g", name, min, got), ErrInvalidParameter)
	}

	return nil
}
