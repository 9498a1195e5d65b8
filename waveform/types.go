// SPDX-License-Identifier: MIT
// Package: mrdiagram/waveform
//
// types.go — core value types shared by every generator and the registry.

package waveform

// Samples is an ordered sequence of waveform amplitudes. After Create it is
// normalized: every value lies in [-1, 1] and at least one value reaches ±1
// (unless the raw result was identically zero).
type Samples []float64

// Params maps a generator's parameter names to numeric values. Enumerated
// choices (where a model has any) are encoded as documented numeric codes.
// A nil Params is treated as "defaults only".
type Params map[string]float64

// Generator produces the RAW (pre-normalization) sample sequence for one
// model. Implementations MUST:
//   - Validate every parameter range first and return sentinel errors
//     (ErrInvalidParameter / ErrInsufficientResolution); never panic.
//   - Return exactly numPoints samples on success.
//   - Be pure: no global state, no randomness, no I/O.
//
// The registry calls Generator with the merged (defaults ∪ caller) Params,
// so every declared key is present.
type Generator func(numPoints int, p Params) (Samples, error)

// Shape is a resolved waveform instance: the outcome of one Create call.
// It owns no resources; construct, read Samples, discard.
type Shape struct {
	// Key is the registry key the instance was created under.
	Key string
	// NumPoints is the requested (and delivered) sample count.
	NumPoints int
	// Params is the merged parameter set the generator actually ran with.
	Params Params
	// Samples is the normalized amplitude array, len == NumPoints.
	Samples Samples
}

// clone returns a defensive copy so callers cannot alias registry defaults.
func (p Params) clone() Params {
	out := make(Params, len(p))
	for k, v := range p {
		out[k] = v
	}

	return out
}
