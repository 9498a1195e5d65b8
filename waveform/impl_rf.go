// SPDX-License-Identifier: MIT
// Package: mrdiagram/waveform
//
// impl_rf.go — closed-form RF pulse envelopes.
//
// Purpose:
//   - One generator per analytic family (sinc, Gaussian, sech, Fermi, ...),
//     each as parametric as the family supports: the Hamming window is a
//     parameter choice of the sinc family's sibling, not a subclass; sech
//     shows up once as a pure envelope (adiabatic) and once with its tanh
//     sweep (hyperbolic_secant) because the analytic models differ.
//
// Contract:
//   - Every generator: validate → compute raw → return; exactly numPoints
//     samples; O(numPoints) time; no panics; no state.
//   - Time axes are model-conventional: most envelopes span t ∈ [-2, 2],
//     the adiabatic sweep pair spans t ∈ [-1, 1].

package waveform

import (
	"fmt"
	"math"
)

// -----------------------------------------------------------------------------
// Parameter names (RF family).
// -----------------------------------------------------------------------------

const (
	// ParamWidth is the rect half-width as a fraction of the [-1,1] axis.
	ParamWidth = "width"
	// ParamBandwidth is the sinc time-bandwidth factor.
	ParamBandwidth = "bandwidth"
	// ParamSigma is the Gaussian standard deviation on the time axis.
	ParamSigma = "sigma"
	// ParamOmega is the modulation angular frequency (CHESS).
	ParamOmega = "omega"
	// ParamBeta is the sech envelope sharpness (adiabatic, HS).
	ParamBeta = "beta"
	// ParamMu is the HS frequency-sweep factor.
	ParamMu = "mu"
	// ParamRipple is the SLR passband ripple depth.
	ParamRipple = "ripple"
	// ParamDepth is the VERSE rate-modulation depth.
	ParamDepth = "depth"
	// ParamCycles is the VERSE rate-modulation cycle count (also radial).
	ParamCycles = "cycles"
	// ParamTransition is the Fermi edge transition width.
	ParamTransition = "transition"
	// ParamPlateauWidth is the Fermi plateau half-width.
	ParamPlateauWidth = "plateau_width"
	// ParamSpatialFreq is the SPSP spatial modulation frequency.
	ParamSpatialFreq = "spatial_freq"
	// ParamSpectralFreq is the SPSP spectral modulation frequency.
	ParamSpectralFreq = "spectral_freq"
	// ParamLobeAmplitude is the composite side-lobe amplitude.
	ParamLobeAmplitude = "lobe_amplitude"
	// ParamLobeWidth is the composite side-lobe half-width.
	ParamLobeWidth = "lobe_width"
	// ParamNumPulses is the DANTE sub-pulse count.
	ParamNumPulses = "num_pulses"
	// ParamPulseWidth is the DANTE sub-pulse half-width.
	ParamPulseWidth = "pulse_width"
	// ParamSpacing is the DANTE sub-pulse center spacing.
	ParamSpacing = "spacing"
	// ParamOrder is the BIR segment order n.
	ParamOrder = "n"
)

// -----------------------------------------------------------------------------
// Defaults (RF family).
// -----------------------------------------------------------------------------

const (
	defRectWidth      = 0.8  // rect half-width on t ∈ [-1,1]
	defSincBandwidth  = 4.0  // sinc time-bandwidth factor
	defGaussSigma     = 0.5  // Gaussian σ on t ∈ [-2,2]
	defHammingBW      = 3.0  // Hamming-sinc time-bandwidth factor
	defChessSigma     = 0.6  // CHESS envelope σ
	defChessOmega     = 8.0  // CHESS modulation frequency
	defAdiabaticBeta  = 5.0  // sech sharpness
	defSLRRipple      = 0.5  // SLR ripple depth
	defVerseDepth     = 0.8  // VERSE modulation depth
	defVerseCycles    = 6.0  // VERSE modulation cycles
	defFermiTrans     = 0.2  // Fermi transition width
	defFermiPlateau   = 0.8  // Fermi plateau half-width
	defSpatialFreq    = 4.0  // SPSP spatial frequency
	defSpectralFreq   = 12.0 // SPSP spectral frequency
	defLobeAmplitude  = 0.5  // composite side-lobe amplitude
	defLobeWidth      = 0.3  // composite side-lobe half-width
	defDantePulses    = 12.0 // DANTE sub-pulse count
	defDanteWidth     = 0.08 // DANTE sub-pulse half-width
	defDanteSpacing   = 0.32 // DANTE center spacing
	defHSBeta         = 5.0  // HS sech sharpness
	defHSMu           = 4.9  // HS sweep factor
	defBIROrder       = 4.0  // BIR order
	compositeCoreHalf = 0.4  // composite center-lobe half-width
	danteTrainStart   = -1.8 // first DANTE sub-pulse center on t ∈ [-2,2]
	danteBaseAmp      = 0.25 // DANTE base sub-pulse amplitude
	danteAmpSwing     = 0.5  // DANTE per-pulse amplitude modulation depth
	slrRippleFreq     = 5.0  // SLR ripple frequency (half-cycles over the lobe)
	hammingA0         = 0.54 // Hamming window DC coefficient
	hammingA1         = 0.46 // Hamming window cosine coefficient
)

// rfBuiltins lists the RF rows of the built-in catalogue.
func rfBuiltins() []builtin {
	return []builtin{
		{KeyRect, genRect, Params{ParamWidth: defRectWidth}},
		{KeySinc, genSinc, Params{ParamBandwidth: defSincBandwidth}},
		{KeyGauss, genGauss, Params{ParamSigma: defGaussSigma}},
		{KeyHammingSinc, genHammingSinc, Params{ParamBandwidth: defHammingBW}},
		{KeyChess, genChess, Params{ParamSigma: defChessSigma, ParamOmega: defChessOmega}},
		{KeyAdiabatic, genAdiabatic, Params{ParamBeta: defAdiabaticBeta}},
		{KeySLR, genSLR, Params{ParamRipple: defSLRRipple}},
		{KeyVerse, genVerse, Params{ParamDepth: defVerseDepth, ParamCycles: defVerseCycles}},
		{KeyFermi, genFermi, Params{ParamTransition: defFermiTrans, ParamPlateauWidth: defFermiPlateau}},
		{KeySPSP, genSPSP, Params{ParamSpatialFreq: defSpatialFreq, ParamSpectralFreq: defSpectralFreq}},
		{KeyComposite, genComposite, Params{ParamLobeAmplitude: defLobeAmplitude, ParamLobeWidth: defLobeWidth}},
		{KeyDante, genDante, Params{ParamNumPulses: defDantePulses, ParamPulseWidth: defDanteWidth, ParamSpacing: defDanteSpacing}},
		{KeyHyperbolicSecant, genHyperbolicSecant, Params{ParamBeta: defHSBeta, ParamMu: defHSMu}},
		{KeyBIR, genBIR, Params{ParamOrder: defBIROrder}},
	}
}

// genRect builds a hard pulse: 1 where |t| ≤ width on t ∈ [-1,1], else 0.
// Validation: width ∈ (0,1].
func genRect(n int, p Params) (Samples, error) {
	w := p[ParamWidth]
	if err := validatePositive(KeyRect, ParamWidth, w); err != nil {
		return nil, err
	}
	if err := validateFraction(KeyRect, ParamWidth, w); err != nil {
		return nil, err
	}

	t := linspace(-1, 1, n)
	out := make(Samples, n)
	for i, ti := range t {
		if math.Abs(ti) <= w {
			out[i] = 1.0
		}
	}

	return out, nil
}

// genSinc builds sinc(bandwidth·π·t) on t ∈ [-2,2].
// Validation: bandwidth > 0.
func genSinc(n int, p Params) (Samples, error) {
	bw := p[ParamBandwidth]
	if err := validatePositive(KeySinc, ParamBandwidth, bw); err != nil {
		return nil, err
	}

	t := linspace(-2, 2, n)
	out := make(Samples, n)
	for i, ti := range t {
		out[i] = sinc(bw * math.Pi * ti)
	}

	return out, nil
}

// genGauss builds exp(-t²/2σ²) on t ∈ [-2,2].
// Validation: sigma > 0.
func genGauss(n int, p Params) (Samples, error) {
	sigma := p[ParamSigma]
	if err := validatePositive(KeyGauss, ParamSigma, sigma); err != nil {
		return nil, err
	}

	t := linspace(-2, 2, n)
	out := make(Samples, n)
	for i, ti := range t {
		x := ti / sigma
		out[i] = math.Exp(-0.5 * x * x)
	}

	return out, nil
}

// genHammingSinc builds sinc(bandwidth·π·t) apodized by a Hamming window
// 0.54 + 0.46·cos(π·t/2) on t ∈ [-2,2]; the window tapers the truncation
// side-lobes the plain sinc carries.
// Validation: bandwidth > 0.
func genHammingSinc(n int, p Params) (Samples, error) {
	bw := p[ParamBandwidth]
	if err := validatePositive(KeyHammingSinc, ParamBandwidth, bw); err != nil {
		return nil, err
	}

	t := linspace(-2, 2, n)
	out := make(Samples, n)
	for i, ti := range t {
		window := hammingA0 + hammingA1*math.Cos(math.Pi*ti/2)
		out[i] = sinc(bw*math.Pi*ti) * window
	}

	return out, nil
}

// genChess builds a Gaussian envelope carrying a rectified cosine
// modulation: exp(-t²/2σ²)·|cos(ω·t)| on t ∈ [-2,2].
// Validation: sigma > 0, omega > 0.
func genChess(n int, p Params) (Samples, error) {
	sigma, omega := p[ParamSigma], p[ParamOmega]
	if err := validatePositive(KeyChess, ParamSigma, sigma); err != nil {
		return nil, err
	}
	if err := validatePositive(KeyChess, ParamOmega, omega); err != nil {
		return nil, err
	}

	t := linspace(-2, 2, n)
	out := make(Samples, n)
	for i, ti := range t {
		x := ti / sigma
		out[i] = math.Exp(-0.5*x*x) * math.Abs(math.Cos(omega*ti))
	}

	return out, nil
}

// genAdiabatic builds the sech amplitude envelope sech(β·t) on t ∈ [-2,2].
// Validation: beta > 0.
func genAdiabatic(n int, p Params) (Samples, error) {
	beta := p[ParamBeta]
	if err := validatePositive(KeyAdiabatic, ParamBeta, beta); err != nil {
		return nil, err
	}

	t := linspace(-2, 2, n)
	out := make(Samples, n)
	for i, ti := range t {
		out[i] = sech(beta * ti)
	}

	return out, nil
}

// genSLR builds a semicircular main lobe with a sinusoidal passband ripple:
// √(1-t²)·(1 + ripple·sin(5π·|t|)) on t ∈ [-1,1].
// Validation: ripple ≥ 0.
func genSLR(n int, p Params) (Samples, error) {
	ripple := p[ParamRipple]
	if err := validateNonNegative(KeySLR, ParamRipple, ripple); err != nil {
		return nil, err
	}

	t := linspace(-1, 1, n)
	out := make(Samples, n)
	for i, ti := range t {
		x := math.Abs(ti)
		out[i] = math.Sqrt(1-x*x) * (1 + ripple*math.Sin(slrRippleFreq*math.Pi*x))
	}

	return out, nil
}

// genVerse builds a Gaussian envelope rate-modulated along its own phase:
// |exp(-2t²)·(1 + depth·sin(cycles·π·phase))| with t ∈ [-2,2] and
// phase ∈ [0,1] advancing linearly with the sample index.
// Validation: depth ∈ [0,1], cycles > 0.
func genVerse(n int, p Params) (Samples, error) {
	depth, cycles := p[ParamDepth], p[ParamCycles]
	if err := validateFraction(KeyVerse, ParamDepth, depth); err != nil {
		return nil, err
	}
	if err := validatePositive(KeyVerse, ParamCycles, cycles); err != nil {
		return nil, err
	}

	t := linspace(-2, 2, n)
	phase := linspace(0, 1, n)
	out := make(Samples, n)
	for i, ti := range t {
		rate := 1 + depth*math.Sin(cycles*math.Pi*phase[i])
		out[i] = math.Abs(math.Exp(-2*ti*ti) * rate)
	}

	return out, nil
}

// genFermi builds the Fermi function 1/(1 + exp((|t|-w)/tr)) on t ∈ [-2,2]:
// a flat plateau of half-width w with smooth edges of width tr.
// Validation: transition > 0, plateau_width > 0.
func genFermi(n int, p Params) (Samples, error) {
	tr, w := p[ParamTransition], p[ParamPlateauWidth]
	if err := validatePositive(KeyFermi, ParamTransition, tr); err != nil {
		return nil, err
	}
	if err := validatePositive(KeyFermi, ParamPlateauWidth, w); err != nil {
		return nil, err
	}

	t := linspace(-2, 2, n)
	out := make(Samples, n)
	for i, ti := range t {
		out[i] = 1 / (1 + math.Exp((math.Abs(ti)-w)/tr))
	}

	return out, nil
}

// genSPSP builds a spectral-spatial product: a Gaussian envelope carrying
// the rectified product of two cosines, exp(-t²)·|cos(sf·π·t)·cos(pf·π·t)|
// on t ∈ [-2,2].
// Validation: spatial_freq > 0, spectral_freq > 0.
func genSPSP(n int, p Params) (Samples, error) {
	sf, pf := p[ParamSpatialFreq], p[ParamSpectralFreq]
	if err := validatePositive(KeySPSP, ParamSpatialFreq, sf); err != nil {
		return nil, err
	}
	if err := validatePositive(KeySPSP, ParamSpectralFreq, pf); err != nil {
		return nil, err
	}

	t := linspace(-2, 2, n)
	out := make(Samples, n)
	for i, ti := range t {
		spatial := math.Cos(sf * math.Pi * ti)
		spectral := math.Cos(pf * math.Pi * ti)
		out[i] = math.Exp(-ti*ti) * math.Abs(spatial*spectral)
	}

	return out, nil
}

// genComposite builds the classic three-lobe block pulse: side lobes of
// amplitude `lobe_amplitude` and half-width `lobe_width` centered at ±1.2,
// around a unit center lobe of half-width 0.4, on t ∈ [-2,2].
// Validation: lobe_amplitude ∈ (0,1], lobe_width ∈ (0, 0.8] (side lobes must
// stay clear of the center lobe).
func genComposite(n int, p Params) (Samples, error) {
	amp, lw := p[ParamLobeAmplitude], p[ParamLobeWidth]
	if err := validatePositive(KeyComposite, ParamLobeAmplitude, amp); err != nil {
		return nil, err
	}
	if err := validateFraction(KeyComposite, ParamLobeAmplitude, amp); err != nil {
		return nil, err
	}
	if err := validatePositive(KeyComposite, ParamLobeWidth, lw); err != nil {
		return nil, err
	}
	if lw > compositeLobeCenter-compositeCoreHalf {
		return nil, wrapf(KeyComposite, fmt.Sprintf("%s must be ≤ %g to keep lobes separated, got %g",
			ParamLobeWidth, compositeLobeCenter-compositeCoreHalf, lw), ErrInvalidParameter)
	}

	t := linspace(-2, 2, n)
	out := make(Samples, n)
	for i, ti := range t {
		switch {
		case math.Abs(ti) <= compositeCoreHalf:
			out[i] = 1.0
		case math.Abs(ti+compositeLobeCenter) <= lw || math.Abs(ti-compositeLobeCenter) <= lw:
			out[i] = amp
		}
	}

	return out, nil
}

// compositeLobeCenter is the |t| position of the composite side lobes.
const compositeLobeCenter = 1.2

// genDante builds a DANTE train: `num_pulses` sub-pulses of half-width
// `pulse_width`, centers spaced by `spacing` starting at t = -1.8 on
// t ∈ [-2,2]. Per-pulse amplitude varies as 0.25·(1 + 0.5·sin(k)) so the
// train reads as a train, not a comb of identical bars.
//
// Resolution: every sub-pulse must cover at least one sample, so the train
// needs numPoints ≥ num_pulses AND a sample step ≤ the sub-pulse width
// (2·pulse_width). Smaller requests fail with ErrInsufficientResolution.
func genDante(n int, p Params) (Samples, error) {
	pulses, pw, spacing := p[ParamNumPulses], p[ParamPulseWidth], p[ParamSpacing]
	if err := validateCount(KeyDante, ParamNumPulses, pulses, 1); err != nil {
		return nil, err
	}
	if err := validatePositive(KeyDante, ParamPulseWidth, pw); err != nil {
		return nil, err
	}
	if err := validatePositive(KeyDante, ParamSpacing, spacing); err != nil {
		return nil, err
	}

	numPulses := int(pulses)
	if n < numPulses {
		return nil, wrapf(KeyDante, fmt.Sprintf("numPoints %d cannot carry %d sub-pulses", n, numPulses), ErrInsufficientResolution)
	}
	// step is the time distance between adjacent samples on t ∈ [-2,2].
	step := 4.0 / float64(n-1)
	if 2*pw < step {
		return nil, wrapf(KeyDante, fmt.Sprintf("sample step %g exceeds sub-pulse width %g", step, 2*pw), ErrInsufficientResolution)
	}

	t := linspace(-2, 2, n)
	out := make(Samples, n)
	for k := 0; k < numPulses; k++ {
		center := danteTrainStart + float64(k)*spacing
		amp := danteBaseAmp * (1 + danteAmpSwing*math.Sin(float64(k)))
		for i, ti := range t {
			if math.Abs(ti-center) <= pw {
				out[i] = amp
			}
		}
	}

	return out, nil
}

// genHyperbolicSecant builds the full HS adiabatic pulse
// sech(β·t)·tanh(μ·t) on t ∈ [-1,1] — the sech envelope multiplied by the
// tanh of its own frequency sweep, which makes the shape odd.
// Validation: beta > 0, mu > 0.
func genHyperbolicSecant(n int, p Params) (Samples, error) {
	beta, mu := p[ParamBeta], p[ParamMu]
	if err := validatePositive(KeyHyperbolicSecant, ParamBeta, beta); err != nil {
		return nil, err
	}
	if err := validatePositive(KeyHyperbolicSecant, ParamMu, mu); err != nil {
		return nil, err
	}

	t := linspace(-1, 1, n)
	out := make(Samples, n)
	for i, ti := range t {
		out[i] = sech(beta*ti) * math.Tanh(mu*ti)
	}

	return out, nil
}

// genBIR builds one BIR segment tanh(n·t)·sech(n·t) on t ∈ [-1,1].
// Validation: n > 0.
func genBIR(n int, p Params) (Samples, error) {
	order := p[ParamOrder]
	if err := validatePositive(KeyBIR, ParamOrder, order); err != nil {
		return nil, err
	}

	t := linspace(-1, 1, n)
	out := make(Samples, n)
	for i, ti := range t {
		out[i] = math.Tanh(order*ti) * sech(order*ti)
	}

	return out, nil
}
