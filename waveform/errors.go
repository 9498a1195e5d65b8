// SPDX-License-Identifier: MIT
// Package: mrdiagram/waveform
//
// errors.go — sentinel errors for the waveform package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Implementations attach context using `%w` via wrapf.
//   • Generators MUST NOT panic at runtime; validation panics are confined
//     to option constructor functions (WithX...).

package waveform

import (
	"errors"
	"fmt"
)

// ErrUnknownShape indicates that Create was asked for a registry key with no
// registered generator. The registry is never patched silently; the caller
// decides whether to register the key or reject the request.
// Usage: if errors.Is(err, ErrUnknownShape) { /* unknown model key */ }.
var ErrUnknownShape = errors.New("waveform: unknown shape key")

// ErrInvalidParameter indicates a parameter outside its valid range, a
// parameter name the generator does not declare, or numPoints below
// MinNumPoints. Detected before any sample is computed, never mid-loop.
// Usage: if errors.Is(err, ErrInvalidParameter) { /* fix the request */ }.
var ErrInvalidParameter = errors.New("waveform: invalid parameter")

// ErrInsufficientResolution indicates that numPoints is too small to carry
// the model's required structure (e.g. fewer samples than DANTE sub-pulses,
// or a trigger block wider than the whole array).
// Usage: if errors.Is(err, ErrInsufficientResolution) { /* raise numPoints */ }.
var ErrInsufficientResolution = errors.New("waveform: insufficient resolution")

// wrapf attaches a generator/operation prefix and a detail message to a
// sentinel, preserving errors.Is matching:
//
//	wrapf(KeyTrapezoid, "fractions sum to 1.600000, want ≤ 1", ErrInvalidParameter)
//	→ "trapezoid: fractions sum to 1.600000, want ≤ 1: waveform: invalid parameter"
//
// Complexity: O(len(detail)); one allocation for the error value.
func wrapf(method, detail string, sentinel error) error {
	return fmt.Errorf("%s: %s: %w", method, detail, sentinel)
}
