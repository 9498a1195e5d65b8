// Package waveform defines shared constants used by the shape generators,
// ensuring consistent registry keys and validation bounds across all models.
package waveform

//-----------------------------------------------------------------------------
// Registry Key Constants
//   canonical model identifiers; also used to prefix errors with the
//   generator name for context.
//-----------------------------------------------------------------------------

const (
	// KeyRect is the registry key for the hard rectangular RF pulse.
	KeyRect = "rect"
	// KeySinc is the registry key for the sinc RF pulse.
	KeySinc = "sinc"
	// KeyGauss is the registry key for the Gaussian RF pulse.
	KeyGauss = "gauss"
	// KeyHammingSinc is the registry key for the Hamming-windowed sinc pulse.
	KeyHammingSinc = "hamming_sinc"
	// KeyChess is the registry key for the CHESS fat-saturation pulse.
	KeyChess = "chess"
	// KeyAdiabatic is the registry key for the sech adiabatic envelope.
	KeyAdiabatic = "adiabatic"
	// KeySLR is the registry key for the SLR-designed pulse.
	KeySLR = "slr"
	// KeyVerse is the registry key for the VERSE rate-modulated pulse.
	KeyVerse = "verse"
	// KeyFermi is the registry key for the Fermi pulse.
	KeyFermi = "fermi"
	// KeySPSP is the registry key for the spectral-spatial pulse.
	KeySPSP = "spsp"
	// KeyComposite is the registry key for the three-lobe composite pulse.
	KeyComposite = "composite"
	// KeyDante is the registry key for the DANTE sub-pulse train.
	KeyDante = "dante"
	// KeyHyperbolicSecant is the registry key for the full HS adiabatic pulse.
	KeyHyperbolicSecant = "hyperbolic_secant"
	// KeyBIR is the registry key for the B1-insensitive rotation pulse.
	KeyBIR = "bir"

	// KeyFID is the registry key for the free-induction-decay signal.
	KeyFID = "fid"
	// KeyEcho is the registry key for the spin/gradient echo signal.
	KeyEcho = "echo"
	// KeySTIR is the registry key for the inversion-recovery signal.
	KeySTIR = "stir"

	// KeyTrapezoid is the registry key for the trapezoid gradient lobe.
	KeyTrapezoid = "trapezoid"
	// KeyRampUp is the registry key for the rising gradient ramp.
	KeyRampUp = "ramp_up"
	// KeyRampDown is the registry key for the falling gradient ramp.
	KeyRampDown = "ramp_down"
	// KeyRadial is the registry key for the radial readout gradient.
	KeyRadial = "radial"
	// KeySpiral is the registry key for the spiral readout gradient.
	KeySpiral = "spiral"
	// KeyEPI is the registry key for the EPI readout train.
	KeyEPI = "epi"
	// KeyBipolar is the registry key for the bipolar velocity-encoding lobe.
	KeyBipolar = "bipolar"
	// KeyCrusher is the registry key for the crusher gradient.
	KeyCrusher = "crusher"

	// KeyTrigger is the registry key for the physiological trigger block.
	KeyTrigger = "trigger"
	// KeyFlag is the registry key for the single-sample event flag.
	KeyFlag = "flag"
)

//-----------------------------------------------------------------------------
// Sample Count Bounds
//-----------------------------------------------------------------------------

// MinNumPoints is the smallest meaningful sample count for any shape.
// A single-point or empty waveform is undefined: there is no axis to span.
// Create rejects smaller requests with ErrInvalidParameter before dispatch.
const MinNumPoints = 2

// DefaultNumPoints is the sample count used when a consumer (resolver, CLI,
// icon renderer) does not request a specific resolution.
const DefaultNumPoints = 100

//-----------------------------------------------------------------------------
// Shared Numeric Bounds
//-----------------------------------------------------------------------------

// MinFraction and MaxFraction bound every fraction-typed parameter
// (trapezoid zones, marker positions, lobe widths), inclusive.
const (
	MinFraction = 0.0
	MaxFraction = 1.0
)

// fractionSumTolerance absorbs float accumulation when checking that
// trapezoid zone fractions sum to at most 1 (0.2+0.6+0.2 must pass).
const fractionSumTolerance = 1e-9
