// SPDX-License-Identifier: MIT
// Package: mrdiagram/waveform
//
// impl_gradient.go — gradient lobe and readout trajectory shapes.
//
// Purpose:
//   - Piecewise shapes (trapezoid, ramps, bipolar, crusher) are built by
//     index zones; trajectory shapes (radial, spiral, EPI) are periodic
//     functions of a [0,1] or angle axis.
//
// Contract:
//   - validate → compute raw → return; exactly numPoints samples;
//     O(numPoints); no panics; no state.

package waveform

import (
	"fmt"
	"math"
)

// -----------------------------------------------------------------------------
// Parameter names (gradient family).
// -----------------------------------------------------------------------------

const (
	// ParamRiseFraction is the trapezoid rise zone as a fraction of numPoints.
	ParamRiseFraction = "rise_fraction"
	// ParamPlateauFraction is the trapezoid plateau zone fraction.
	ParamPlateauFraction = "plateau_fraction"
	// ParamFallFraction is the trapezoid fall zone fraction.
	ParamFallFraction = "fall_fraction"
	// ParamTurns is the spiral revolution count.
	ParamTurns = "turns"
	// ParamGradPhase is the radial/spiral phase offset in radians.
	ParamGradPhase = "phase"
	// ParamLines is the EPI readout line count.
	ParamLines = "lines"
	// ParamOvershoot is the crusher post-fall overshoot amplitude.
	ParamOvershoot = "overshoot"
	// ParamRingdown is the crusher overshoot decay rate.
	ParamRingdown = "ringdown"
)

// -----------------------------------------------------------------------------
// Defaults (gradient family).
// -----------------------------------------------------------------------------

const (
	defRiseFraction    = 0.2
	defPlateauFraction = 0.6
	defFallFraction    = 0.2
	defRadialCycles    = 1.0
	defRadialPhase     = 0.0
	defSpiralTurns     = 3.0
	defSpiralPhase     = 0.0
	defEPILines        = 8.0
	defCrushOvershoot  = 0.35
	defCrushRingdown   = 8.0

	// Crusher zone boundaries on the [0,1] axis: a fast trapezoid with the
	// tail reserved for the overshoot ring.
	crushRiseEnd    = 0.15
	crushPlateauEnd = 0.55
	crushFallEnd    = 0.70
	crushRingCycles = 2.0 // oscillation cycles inside the ring tail

	// epiMinSamplesPerLine keeps at least the up/down flanks of each line.
	epiMinSamplesPerLine = 2
)

// gradientBuiltins lists the Gradient rows of the built-in catalogue.
func gradientBuiltins() []builtin {
	return []builtin{
		{KeyTrapezoid, genTrapezoid, Params{
			ParamRiseFraction: defRiseFraction, ParamPlateauFraction: defPlateauFraction, ParamFallFraction: defFallFraction,
		}},
		{KeyRampUp, genRampUp, Params{}},
		{KeyRampDown, genRampDown, Params{}},
		{KeyRadial, genRadial, Params{ParamCycles: defRadialCycles, ParamGradPhase: defRadialPhase}},
		{KeySpiral, genSpiral, Params{ParamTurns: defSpiralTurns, ParamGradPhase: defSpiralPhase}},
		{KeyEPI, genEPI, Params{ParamLines: defEPILines}},
		{KeyBipolar, genBipolar, Params{}},
		{KeyCrusher, genCrusher, Params{ParamOvershoot: defCrushOvershoot, ParamRingdown: defCrushRingdown}},
	}
}

// genTrapezoid builds the three-zone gradient lobe: a linear ramp over the
// rise zone, a constant 1 plateau, a linear ramp down, and zero-padding for
// whatever fraction of the axis the zones leave uncovered.
//
// Zone sizes are int(fraction·numPoints) samples each, so for
// numPoints=100 and fractions 0.2/0.6/0.2 the plateau is exactly the index
// range [20,80).
//
// Validation: each fraction ∈ [0,1]; the three fractions sum to ≤ 1
// (ErrInvalidParameter otherwise — the lobe is not rescaled silently).
func genTrapezoid(n int, p Params) (Samples, error) {
	rise, plateau, fall := p[ParamRiseFraction], p[ParamPlateauFraction], p[ParamFallFraction]
	if err := validateFraction(KeyTrapezoid, ParamRiseFraction, rise); err != nil {
		return nil, err
	}
	if err := validateFraction(KeyTrapezoid, ParamPlateauFraction, plateau); err != nil {
		return nil, err
	}
	if err := validateFraction(KeyTrapezoid, ParamFallFraction, fall); err != nil {
		return nil, err
	}
	if sum := rise + plateau + fall; sum > MaxFraction+fractionSumTolerance {
		return nil, wrapf(KeyTrapezoid, fmt.Sprintf("zone fractions sum to %g, want ≤ 1", sum), ErrInvalidParameter)
	}

	risePts := int(rise * float64(n))
	plateauPts := int(plateau * float64(n))
	fallPts := int(fall * float64(n))

	out := make(Samples, n)
	// Rise: 0 → 1 inclusive over risePts samples.
	if risePts > 0 {
		copy(out[:risePts], linspace(0, 1, maxInt(risePts, MinNumPoints))[:risePts])
	}
	// Plateau: constant 1.
	for i := risePts; i < risePts+plateauPts; i++ {
		out[i] = 1.0
	}
	// Fall: 1 → 0 inclusive; anything after stays zero-padded.
	if fallPts > 0 {
		fallStart := risePts + plateauPts
		copy(out[fallStart:fallStart+fallPts], linspace(1, 0, maxInt(fallPts, MinNumPoints))[:fallPts])
	}

	return out, nil
}

// maxInt is a tiny int helper for zone sizing (linspace needs n ≥ 2; a
// 1-sample zone takes only the first value of a 2-sample ramp).
func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}

// genRampUp builds the linear ramp 0 → 1.
func genRampUp(n int, _ Params) (Samples, error) {
	return linspace(0, 1, n), nil
}

// genRampDown builds the linear ramp 1 → 0.
func genRampDown(n int, _ Params) (Samples, error) {
	return linspace(1, 0, n), nil
}

// genRadial builds cos(θ + phase) with θ sweeping `cycles` full turns.
// Validation: cycles > 0.
func genRadial(n int, p Params) (Samples, error) {
	cycles, phase := p[ParamCycles], p[ParamGradPhase]
	if err := validatePositive(KeyRadial, ParamCycles, cycles); err != nil {
		return nil, err
	}

	theta := linspace(0, cycles*tau, n)
	out := make(Samples, n)
	for i, th := range theta {
		out[i] = math.Cos(th + phase)
	}

	return out, nil
}

// genSpiral builds a growing-radius oscillation: r(t)·cos(θ + phase) with
// r sweeping 0 → 1 and θ sweeping `turns` full turns — the 1-D projection
// of a spiral-out readout.
// Validation: turns > 0.
func genSpiral(n int, p Params) (Samples, error) {
	turns, phase := p[ParamTurns], p[ParamGradPhase]
	if err := validatePositive(KeySpiral, ParamTurns, turns); err != nil {
		return nil, err
	}

	theta := linspace(0, turns*tau, n)
	radius := linspace(0, 1, n)
	out := make(Samples, n)
	for i, th := range theta {
		out[i] = radius[i] * math.Cos(th+phase)
	}

	return out, nil
}

// genEPI builds the echo-planar readout train: sin(2π·t) gated by a
// triangular envelope 1-|2·(t mod 1)-1| with t sweeping one unit per line,
// so each line rises to full amplitude and collapses before the polarity
// flips.
//
// Validation: lines is an integer ≥ 1; numPoints must give each line at
// least 2 samples (ErrInsufficientResolution otherwise).
func genEPI(n int, p Params) (Samples, error) {
	lines := p[ParamLines]
	if err := validateCount(KeyEPI, ParamLines, lines, 1); err != nil {
		return nil, err
	}
	if n < epiMinSamplesPerLine*int(lines) {
		return nil, wrapf(KeyEPI, fmt.Sprintf("numPoints %d cannot carry %g lines", n, lines), ErrInsufficientResolution)
	}

	t := linspace(0, lines, n)
	out := make(Samples, n)
	for i, ti := range t {
		frac := math.Mod(ti, 1)
		envelope := 1 - math.Abs(2*frac-1)
		out[i] = math.Sin(tau*ti) * envelope
	}

	return out, nil
}

// genBipolar builds the velocity-encoding pair: +1 over the first half of
// the axis, -1 over the second. The array is already a fixed point of the
// normalization, so the shape survives the shared generate→normalize path
// untouched.
func genBipolar(n int, _ Params) (Samples, error) {
	out := make(Samples, n)
	half := n / 2
	for i := 0; i < half; i++ {
		out[i] = 1.0
	}
	for i := half; i < n; i++ {
		out[i] = -1.0
	}

	return out, nil
}

// genCrusher builds a fast trapezoid (rise to 1 by t=0.15, plateau to 0.55,
// fall to 0 by 0.70 on the [0,1] axis) followed by a decaying overshoot
// ring: -overshoot·e^(-ringdown·s)·sin(2π·2·s/0.3) over the remaining tail,
// s measured from the end of the fall. The ring depicts the eddy-current
// residue crusher lobes are drawn with.
//
// Validation: overshoot ∈ [0,1], ringdown > 0.
func genCrusher(n int, p Params) (Samples, error) {
	overshoot, ringdown := p[ParamOvershoot], p[ParamRingdown]
	if err := validateFraction(KeyCrusher, ParamOvershoot, overshoot); err != nil {
		return nil, err
	}
	if err := validatePositive(KeyCrusher, ParamRingdown, ringdown); err != nil {
		return nil, err
	}

	ringSpan := 1.0 - crushFallEnd
	t := linspace(0, 1, n)
	out := make(Samples, n)
	for i, ti := range t {
		switch {
		case ti <= crushRiseEnd:
			out[i] = ti / crushRiseEnd
		case ti <= crushPlateauEnd:
			out[i] = 1.0
		case ti <= crushFallEnd:
			out[i] = (crushFallEnd - ti) / (crushFallEnd - crushPlateauEnd)
		default:
			s := ti - crushFallEnd
			out[i] = -overshoot * math.Exp(-ringdown*s) * math.Sin(tau*crushRingCycles*s/ringSpan)
		}
	}

	return out, nil
}
