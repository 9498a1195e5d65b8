// Package waveform generates normalized, parametric 1-D waveforms for
// magnetic-resonance pulse-sequence diagrams: RF envelopes, gradient lobes,
// acquisition signals, triggers and flags.
//
// 🚀 What is waveform?
//
//	A catalogue of ~27 deterministic closed-form generators behind one
//	contract: produce numPoints samples, then rescale them into [-1, 1].
//	Which generator runs, and with which parameters, is resolved from data
//	(a string key plus a parameter map), not from a hardcoded call site:
//	  • RF:       rect, sinc, gauss, hamming_sinc, chess, adiabatic, slr,
//	              verse, fermi, spsp, composite, dante, hyperbolic_secant, bir
//	  • Signal:   fid, echo, stir
//	  • Gradient: trapezoid, ramp_up, ramp_down, radial, spiral, epi,
//	              bipolar, crusher
//	  • Marker:   trigger, flag
//
// ✨ Key guarantees:
//   - Length: len(samples) == numPoints for every valid request.
//   - Amplitude: max(|samples|) == 1 after normalization, unless the raw
//     result is identically zero (then the array stays all-zero).
//   - Determinism: identical (key, numPoints, params) ⇒ bit-identical output.
//     No generator draws randomness.
//   - Purity: generation touches no shared state; arbitrary Create calls may
//     run concurrently. Register is the single-writer operation.
//   - Fail-fast: parameters are validated before any sample is computed;
//     sentinel errors (ErrUnknownShape, ErrInvalidParameter,
//     ErrInsufficientResolution) are matched with errors.Is.
//
// ⚙️ Usage:
//
//	import "github.com/dpizetta/mrdiagram/waveform"
//
//	shape, err := waveform.Create("sinc", 100, waveform.Params{"bandwidth": 4})
//	if err != nil {
//	  // errors.Is(err, waveform.ErrUnknownShape) / ErrInvalidParameter / ...
//	}
//	fmt.Println(shape.Samples) // 100 values in [-1, 1], peak at the center
//
// Extension: register a custom model on your own Registry (or Default())
// with Register(key, generator, defaults); Create then reaches it through
// the same data-driven path as the built-ins.
//
// Performance: every generator runs in O(numPoints) time and memory with
// small constant factors; nothing blocks, nothing retries.
package waveform
