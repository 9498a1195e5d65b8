package waveform_test

import (
	"testing"

	"github.com/dpizetta/mrdiagram/waveform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTrigger_CenteredBlock verifies the default trigger is a 10-sample
// unit block centered on the axis.
func TestTrigger_CenteredBlock(t *testing.T) {
	shape, err := waveform.Create(waveform.KeyTrigger, 100, nil)
	require.NoError(t, err)

	var sum float64
	for i, v := range shape.Samples {
		sum += v
		if i >= 45 && i < 55 {
			assert.Equal(t, 1.0, v, "block sample %d must be 1", i)
		} else {
			assert.Equal(t, 0.0, v, "outside sample %d must be 0", i)
		}
	}
	assert.Equal(t, 10.0, sum, "exactly width samples must be high")
}

// TestTrigger_EdgePositionClamped verifies a trigger at the axis edge stays
// fully inside the array instead of truncating.
func TestTrigger_EdgePositionClamped(t *testing.T) {
	shape, err := waveform.Create(waveform.KeyTrigger, 100, waveform.Params{waveform.ParamPosition: 1})
	require.NoError(t, err)

	for i := 90; i < 100; i++ {
		assert.Equal(t, 1.0, shape.Samples[i], "clamped block sample %d must be 1", i)
	}
	assert.Equal(t, 0.0, shape.Samples[89], "block must not bleed past its width")
}

// TestTrigger_WidthExceedsResolution verifies a block wider than the whole
// array is rejected with ErrInsufficientResolution.
func TestTrigger_WidthExceedsResolution(t *testing.T) {
	_, err := waveform.Create(waveform.KeyTrigger, 5, nil) // default width 10

	assert.ErrorIs(t, err, waveform.ErrInsufficientResolution)
}

// TestFlag_SingleImpulse verifies the flag is exactly one unit sample at
// the requested position.
func TestFlag_SingleImpulse(t *testing.T) {
	shape, err := waveform.Create(waveform.KeyFlag, 100, waveform.Params{waveform.ParamPosition: 0.25})
	require.NoError(t, err)

	var sum float64
	for _, v := range shape.Samples {
		sum += v
	}
	assert.Equal(t, 1.0, sum, "exactly one sample must be high")
	assert.Equal(t, 1.0, shape.Samples[25], "impulse must sit at position·numPoints")
}

// TestFlag_PositionOneClampsToLastIndex verifies position = 1 lands on the
// final sample instead of indexing past the array.
func TestFlag_PositionOneClampsToLastIndex(t *testing.T) {
	shape, err := waveform.Create(waveform.KeyFlag, 10, waveform.Params{waveform.ParamPosition: 1})
	require.NoError(t, err)

	assert.Equal(t, 1.0, shape.Samples[9])
}

// TestMarker_ParameterValidation table-checks fail-fast rejection for the
// marker family.
func TestMarker_ParameterValidation(t *testing.T) {
	cases := []struct {
		name   string
		key    string
		params waveform.Params
	}{
		{"trigger position above one", waveform.KeyTrigger, waveform.Params{waveform.ParamPosition: 1.5}},
		{"trigger zero width", waveform.KeyTrigger, waveform.Params{waveform.ParamMarkerWidth: 0}},
		{"trigger fractional width", waveform.KeyTrigger, waveform.Params{waveform.ParamMarkerWidth: 2.5}},
		{"flag negative position", waveform.KeyFlag, waveform.Params{waveform.ParamPosition: -0.1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := waveform.Create(tc.key, 100, tc.params)
			assert.ErrorIs(t, err, waveform.ErrInvalidParameter)
		})
	}
}
