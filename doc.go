// Package mrdiagram generates the parametric waveforms behind MR pulse
// sequence diagrams — RF envelopes, gradient lobes, acquisition signals
// and event markers, all as normalized 1-D sample arrays.
//
// 🚀 What is mrdiagram?
//
//	A small, deterministic shape engine that brings together:
//		• RF pulses: rect, sinc, gauss, Hamming sinc, adiabatic families,
//		  SLR, VERSE, Fermi, SPSP, composite, DANTE and more
//		• Gradients: trapezoid, ramps, crusher, bipolar, radial, spiral, EPI
//		• Signals: FID, spin echo, STIR recovery
//		• Markers: trigger blocks and event flags
//		• A string-keyed registry with per-shape defaults and validation
//		• Catalogue records (JSON/YAML) resolved into ready shapes
//		• SVG/PNG icon rendering for editor palettes
//
// ✨ Why choose mrdiagram?
//
//   - Deterministic – same key, count and parameters, bit-equal samples
//   - Normalized – every shape lands in [-1, 1] with its peak at ±1
//   - Strict – unknown keys, bad parameters and starved resolutions fail
//     fast with sentinel errors you can match via errors.Is
//   - Extensible – register your own generators next to the built-ins
//
// Under the hood, everything is organized under four packages:
//
//	waveform/ — generators, registry, normalization & parameter validation
//	catalog/  — descriptor records, JSON/YAML loading & the resolver
//	render/   — SVG and PNG icon rendering with per-lane colors
//	cmd/      — mrshapes, the batch catalogue-to-icons tool
//
// Quick ASCII example:
//
//	    ┌─────┐
//	   ╱       ╲
//	  ╱         ╲        a trapezoid gradient lobe: ramp, plateau, ramp
//	 ╱           ╲
//
// Dive into the package docs for parameter tables and worked examples.
//
//	go get github.com/dpizetta/mrdiagram
package mrdiagram
