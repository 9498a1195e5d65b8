// SPDX-License-Identifier: MIT
// Package: mrdiagram/waveform
//
// primitives.go — shared numeric helpers for the shape generators.
//
// Contract:
//   - Pure helpers (no global state). Safe to call from any impl_*.go.
//   - Callers guarantee n ≥ MinNumPoints; helpers do not re-validate.

package waveform

import "math"

// tau is 2π, precomputed for the oscillatory generators.
const tau = 2.0 * math.Pi

// sincEps guards the removable singularity of sin(x)/x at x = 0.
const sincEps = 1e-10

// linspace fills a length-n Samples with evenly spaced values from start to
// stop inclusive: out[i] = start + (stop-start)*i/(n-1). The last sample is
// pinned to stop exactly so ramp endpoints land on 0/1 without an ulp drift.
// Complexity: O(n) time, O(n) space. Deterministic.
func linspace(start, stop float64, n int) Samples {
	out := make(Samples, n)
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + step*float64(i)
	}
	out[n-1] = stop

	return out
}

// sinc evaluates sin(x)/x with the removable singularity filled by 1.
func sinc(x float64) float64 {
	if math.Abs(x) < sincEps {
		return 1.0
	}

	return math.Sin(x) / x
}

// sech evaluates the hyperbolic secant 1/cosh(x).
func sech(x float64) float64 {
	return 1.0 / math.Cosh(x)
}
