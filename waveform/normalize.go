// SPDX-License-Identifier: MIT
// Package: mrdiagram/waveform
//
// normalize.go — the shared amplitude convention for every shape.
//
// Contract:
//   • Normalize(raw) divides every sample by max(|raw|) so the peak absolute
//     value becomes exactly 1 (the peak sample itself divides to ±1.0, no
//     rounding residue).
//   • If max(|raw|) == 0 (flat-zero input) the all-zero array is returned
//     unchanged; division by zero never happens.
//   • The input slice is never mutated; a fresh slice is returned.

package waveform

import "math"

// Normalize rescales raw into [-1, 1] by peak absolute value.
// Guarantee: the output has at least one sample equal to ±1, except for the
// degenerate all-zero input, which maps to an all-zero output.
//
// Complexity: O(len(raw)) time, O(len(raw)) space. Deterministic.
func Normalize(raw Samples) Samples {
	// Scan for the peak absolute amplitude — O(n).
	var peak float64
	for _, v := range raw {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}

	// Allocate the result exactly once; the zero value is the degenerate case.
	out := make(Samples, len(raw))
	if peak == 0 {
		return out
	}

	// Division (not multiplication by 1/peak) keeps the peak sample at ±1 exactly.
	for i, v := range raw {
		out[i] = v / peak
	}

	return out
}
