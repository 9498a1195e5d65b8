// SPDX-License-Identifier: MIT
// Package: mrdiagram/waveform
//
// impl_marker.go — trigger and flag event markers.
//
// Purpose:
//   - Depict point events on the sequence axis: a trigger as a short unit
//     block, a flag as a single-sample impulse. Position is a fraction of
//     the axis so one generator serves every placement.

package waveform

import (
	"fmt"
	"math"
)

// -----------------------------------------------------------------------------
// Parameter names and defaults (marker family).
// -----------------------------------------------------------------------------

const (
	// ParamPosition is the marker center as a fraction of the axis ∈ [0,1].
	ParamPosition = "position"
	// ParamMarkerWidth is the trigger block width in samples.
	ParamMarkerWidth = "width"
)

const (
	defMarkerPosition = 0.5  // centered
	defTriggerWidth   = 10.0 // samples
)

// markerBuiltins lists the Trigger/Flag rows of the built-in catalogue.
func markerBuiltins() []builtin {
	return []builtin{
		{KeyTrigger, genTrigger, Params{ParamPosition: defMarkerPosition, ParamMarkerWidth: defTriggerWidth}},
		{KeyFlag, genFlag, Params{ParamPosition: defMarkerPosition}},
	}
}

// genTrigger builds a `width`-sample unit block centered at
// position·numPoints, clamped so the whole block stays inside the array.
//
// Validation: position ∈ [0,1]; width is an integer ≥ 1; numPoints ≥ width
// (ErrInsufficientResolution otherwise).
func genTrigger(n int, p Params) (Samples, error) {
	pos, width := p[ParamPosition], p[ParamMarkerWidth]
	if err := validateFraction(KeyTrigger, ParamPosition, pos); err != nil {
		return nil, err
	}
	if err := validateCount(KeyTrigger, ParamMarkerWidth, width, 1); err != nil {
		return nil, err
	}
	w := int(width)
	if n < w {
		return nil, wrapf(KeyTrigger, fmt.Sprintf("numPoints %d cannot carry a %d-sample block", n, w), ErrInsufficientResolution)
	}

	start := int(pos*float64(n)) - w/2
	if start < 0 {
		start = 0
	}
	if start > n-w {
		start = n - w
	}

	out := make(Samples, n)
	for i := start; i < start+w; i++ {
		out[i] = 1.0
	}

	return out, nil
}

// genFlag builds a single unit impulse at position·numPoints (clamped to
// the last index for position = 1).
//
// Validation: position ∈ [0,1].
func genFlag(n int, p Params) (Samples, error) {
	pos := p[ParamPosition]
	if err := validateFraction(KeyFlag, ParamPosition, pos); err != nil {
		return nil, err
	}

	idx := int(math.Min(pos*float64(n), float64(n-1)))
	out := make(Samples, n)
	out[idx] = 1.0

	return out, nil
}
