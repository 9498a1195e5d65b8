// SPDX-License-Identifier: MIT
// Package: mrdiagram/waveform
//
// impl_signal.go — acquisition signal shapes (FID, echo, inversion recovery).
//
// Purpose:
//   - Depict what the receiver sees: decaying oscillations on a millisecond
//     time axis. Time constants travel in ms and carrier frequencies in Hz,
//     matching how sequence diagrams are annotated; the carrier phase walks
//     in ω·t/1000 so both unit systems meet in radians.
//
// Contract:
//   - Same as every generator: validate → compute raw → return; exactly
//     numPoints samples; O(numPoints); no panics; no state.

package waveform

import "math"

// -----------------------------------------------------------------------------
// Parameter names (signal family).
// -----------------------------------------------------------------------------

const (
	// ParamT2Star is the apparent transverse decay constant T2* in ms.
	ParamT2Star = "t2_star"
	// ParamT2 is the irreversible transverse decay constant T2 in ms.
	ParamT2 = "t2"
	// ParamEchoTime is the echo time TE in ms.
	ParamEchoTime = "echo_time"
	// ParamFrequency is the carrier frequency in Hz.
	ParamFrequency = "frequency"
	// ParamPhase is the carrier phase offset in radians.
	ParamPhase = "phase"
	// ParamT1 is the longitudinal recovery constant T1 in ms.
	ParamT1 = "t1"
	// ParamInversionTime is the inversion time TI in ms.
	ParamInversionTime = "ti"
)

// -----------------------------------------------------------------------------
// Defaults (signal family).
// -----------------------------------------------------------------------------

const (
	defT2Star    = 50.0   // ms
	defT2        = 80.0   // ms
	defEchoTime  = 50.0   // ms
	defFrequency = 100.0  // Hz
	defPhase     = 0.0    // rad
	defT1        = 1000.0 // ms
	defTI        = 200.0  // ms

	fidAxisFactor  = 5.0    // FID axis runs to 5·T2* (decay below 1%)
	echoAxisFactor = 2.0    // echo axis runs to 2·TE (symmetric around TE)
	stirAxisEnd    = 2000.0 // STIR axis end in ms
	msPerSecond    = 1000.0
)

// signalBuiltins lists the Signal rows of the built-in catalogue.
func signalBuiltins() []builtin {
	return []builtin{
		{KeyFID, genFID, Params{ParamT2Star: defT2Star, ParamFrequency: defFrequency, ParamPhase: defPhase}},
		{KeyEcho, genEcho, Params{
			ParamT2: defT2, ParamT2Star: defT2Star, ParamEchoTime: defEchoTime,
			ParamFrequency: defFrequency, ParamPhase: defPhase,
		}},
		{KeySTIR, genSTIR, Params{ParamT1: defT1, ParamInversionTime: defTI}},
	}
}

// genFID builds a free induction decay: exp(-t/T2*)·cos(ω·t - φ) over
// t ∈ [0, 5·T2*] ms, ω = 2π·frequency. The raw peak sits at t = 0 when the
// phase is zero.
// Validation: t2_star > 0, frequency ≥ 0.
func genFID(n int, p Params) (Samples, error) {
	t2s, freq, phase := p[ParamT2Star], p[ParamFrequency], p[ParamPhase]
	if err := validatePositive(KeyFID, ParamT2Star, t2s); err != nil {
		return nil, err
	}
	if err := validateNonNegative(KeyFID, ParamFrequency, freq); err != nil {
		return nil, err
	}

	omega := tau * freq
	t := linspace(0, fidAxisFactor*t2s, n)
	out := make(Samples, n)
	for i, ti := range t {
		decay := math.Exp(-ti / t2s)
		out[i] = decay * math.Cos(omega*ti/msPerSecond-phase)
	}

	return out, nil
}

// genEcho builds an echo centered at TE over t ∈ [0, 2·TE] ms: the T2*
// tent envelope exp(-|t-TE|/T2*), scaled by the echo attenuation
// exp(-TE/T2), carrying cos(ω·(t-TE) + φ). The raw peak sits at t = TE.
// Validation: t2 > 0, t2_star > 0, echo_time > 0, frequency ≥ 0.
func genEcho(n int, p Params) (Samples, error) {
	t2, t2s, te := p[ParamT2], p[ParamT2Star], p[ParamEchoTime]
	freq, phase := p[ParamFrequency], p[ParamPhase]
	if err := validatePositive(KeyEcho, ParamT2, t2); err != nil {
		return nil, err
	}
	if err := validatePositive(KeyEcho, ParamT2Star, t2s); err != nil {
		return nil, err
	}
	if err := validatePositive(KeyEcho, ParamEchoTime, te); err != nil {
		return nil, err
	}
	if err := validateNonNegative(KeyEcho, ParamFrequency, freq); err != nil {
		return nil, err
	}

	omega := tau * freq
	attenuation := math.Exp(-te / t2) // echo height after T2 decay
	t := linspace(0, echoAxisFactor*te, n)
	out := make(Samples, n)
	for i, ti := range t {
		envelope := math.Exp(-math.Abs(ti-te) / t2s)
		carrier := math.Cos(omega*(ti-te)/msPerSecond + phase)
		out[i] = attenuation * envelope * carrier
	}

	return out, nil
}

// genSTIR builds the inversion-recovery longitudinal trace:
// (1 - 2·e^(-TI/T1))·e^(-t/T1) over t ∈ [0, 2000] ms. For TI < T1·ln 2 the
// prefactor is negative and the whole trace dips below zero — the fat-null
// picture STIR diagrams show.
// Validation: t1 > 0, ti ≥ 0.
func genSTIR(n int, p Params) (Samples, error) {
	t1, ti := p[ParamT1], p[ParamInversionTime]
	if err := validatePositive(KeySTIR, ParamT1, t1); err != nil {
		return nil, err
	}
	if err := validateNonNegative(KeySTIR, ParamInversionTime, ti); err != nil {
		return nil, err
	}

	recovery := 1 - 2*math.Exp(-ti/t1)
	t := linspace(0, stirAxisEnd, n)
	out := make(Samples, n)
	for i, tv := range t {
		out[i] = recovery * math.Exp(-tv/t1)
	}

	return out, nil
}
