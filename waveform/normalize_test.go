package waveform_test

import (
	"math"
	"testing"

	"github.com/dpizetta/mrdiagram/waveform"
	"github.com/stretchr/testify/assert"
)

// TestNormalize_PeakReachesOne verifies that the peak-magnitude sample maps
// to exactly ±1 and every other sample scales proportionally.
func TestNormalize_PeakReachesOne(t *testing.T) {
	out := waveform.Normalize(waveform.Samples{0, 2, -4, 1})

	assert.Equal(t, waveform.Samples{0, 0.5, -1, 0.25}, out, "samples must divide by the peak magnitude")
}

// TestNormalize_NegativePeak verifies that a negative-dominated array still
// normalizes by magnitude, not by maximum value.
func TestNormalize_NegativePeak(t *testing.T) {
	out := waveform.Normalize(waveform.Samples{-10, 5})

	assert.Equal(t, waveform.Samples{-1, 0.5}, out, "peak selection must use absolute value")
}

// TestNormalize_AllZero verifies the degenerate case: a flat-zero input
// returns all zeros instead of dividing by zero.
func TestNormalize_AllZero(t *testing.T) {
	out := waveform.Normalize(waveform.Samples{0, 0, 0})

	assert.Equal(t, waveform.Samples{0, 0, 0}, out, "flat-zero input must pass through unchanged")
	for _, v := range out {
		assert.False(t, math.IsNaN(v), "degenerate normalization must not produce NaN")
	}
}

// TestNormalize_DoesNotMutateInput verifies purity: the raw slice is left
// untouched and a fresh slice is returned.
func TestNormalize_DoesNotMutateInput(t *testing.T) {
	raw := waveform.Samples{3, -6}
	out := waveform.Normalize(raw)

	assert.Equal(t, waveform.Samples{3, -6}, raw, "input must not be mutated")
	assert.Equal(t, waveform.Samples{0.5, -1}, out)
}

// TestNormalize_BoundAcrossBuiltins runs every built-in generator with its
// defaults and asserts the amplitude invariant: max(|samples|) == 1.
func TestNormalize_BoundAcrossBuiltins(t *testing.T) {
	reg := waveform.Default()
	for _, key := range reg.Keys() {
		shape, err := reg.Create(key, 128, nil)
		assert.NoError(t, err, "defaults must be valid for %q", key)

		peak := 0.0
		for _, v := range shape.Samples {
			assert.LessOrEqual(t, math.Abs(v), 1.0, "no sample of %q may leave [-1,1]", key)
			if a := math.Abs(v); a > peak {
				peak = a
			}
		}
		assert.Equal(t, 1.0, peak, "normalized %q must reach ±1", key)
	}
}
