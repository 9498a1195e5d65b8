package waveform_test

import (
	"sort"
	"sync"
	"testing"

	"github.com/dpizetta/mrdiagram/waveform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCreate_UnknownKey verifies that an unregistered key fails with
// ErrUnknownShape before any other validation runs.
func TestCreate_UnknownKey(t *testing.T) {
	_, err := waveform.Create("not_a_shape", 100, nil)

	assert.ErrorIs(t, err, waveform.ErrUnknownShape, "unregistered key must error ErrUnknownShape")
}

// TestCreate_NumPointsBelowMinimum verifies that numPoints < 2 is rejected
// with ErrInvalidParameter for a registered key.
func TestCreate_NumPointsBelowMinimum(t *testing.T) {
	for _, n := range []int{-1, 0, 1} {
		_, err := waveform.Create(waveform.KeySinc, n, nil)
		assert.ErrorIs(t, err, waveform.ErrInvalidParameter, "numPoints=%d must error ErrInvalidParameter", n)
	}
}

// TestCreate_UnknownParameterName verifies that a parameter the generator
// never declared is rejected, not silently ignored.
func TestCreate_UnknownParameterName(t *testing.T) {
	_, err := waveform.Create(waveform.KeySinc, 100, waveform.Params{"bandwith": 4})

	assert.ErrorIs(t, err, waveform.ErrInvalidParameter, "a misspelled parameter name must be rejected")
}

// TestCreate_DefaultsMerge verifies that caller params override defaults
// while undeclared defaults survive the merge.
func TestCreate_DefaultsMerge(t *testing.T) {
	shape, err := waveform.Create(waveform.KeyChess, 64, waveform.Params{waveform.ParamOmega: 12})
	require.NoError(t, err)

	assert.Equal(t, 12.0, shape.Params[waveform.ParamOmega], "caller value must win")
	assert.Equal(t, 0.6, shape.Params[waveform.ParamSigma], "untouched default must survive")
}

// TestCreate_LengthInvariant verifies len(Samples) == numPoints for every
// built-in across several resolutions.
func TestCreate_LengthInvariant(t *testing.T) {
	reg := waveform.Default()
	for _, n := range []int{32, 100, 257} {
		for _, key := range reg.Keys() {
			shape, err := reg.Create(key, n, nil)
			require.NoError(t, err, "key=%q n=%d", key, n)
			assert.Len(t, shape.Samples, n, "key=%q must deliver exactly n samples", key)
			assert.Equal(t, n, shape.NumPoints)
		}
	}
}

// TestCreate_Determinism verifies that two identical requests produce
// bit-identical sample arrays for every built-in.
func TestCreate_Determinism(t *testing.T) {
	reg := waveform.Default()
	for _, key := range reg.Keys() {
		first, err := reg.Create(key, 100, nil)
		require.NoError(t, err)
		second, err := reg.Create(key, 100, nil)
		require.NoError(t, err)

		assert.Equal(t, first.Samples, second.Samples, "key=%q must be bit-deterministic", key)
	}
}

// TestCreate_CallerParamsNotAliased verifies that mutating the caller's
// Params map after Create does not reach the returned Shape.
func TestCreate_CallerParamsNotAliased(t *testing.T) {
	p := waveform.Params{waveform.ParamBandwidth: 4}
	shape, err := waveform.Create(waveform.KeySinc, 50, p)
	require.NoError(t, err)

	p[waveform.ParamBandwidth] = 99
	assert.Equal(t, 4.0, shape.Params[waveform.ParamBandwidth], "Shape.Params must be a private copy")
}

// TestRegistry_RegisterExtension verifies open extensibility: a custom
// generator registered at runtime resolves through the same Create path.
func TestRegistry_RegisterExtension(t *testing.T) {
	reg := waveform.NewRegistry()
	reg.Register("constant", func(n int, p waveform.Params) (waveform.Samples, error) {
		out := make(waveform.Samples, n)
		for i := range out {
			out[i] = p["level"]
		}
		return out, nil
	}, waveform.Params{"level": 2})

	shape, err := reg.Create("constant", 4, nil)
	require.NoError(t, err)
	assert.Equal(t, waveform.Samples{1, 1, 1, 1}, shape.Samples, "constant raw 2s must normalize to 1s")
}

// TestRegistry_RegisterOverwrite verifies last-wins semantics for repeated
// registration under one key.
func TestRegistry_RegisterOverwrite(t *testing.T) {
	reg := waveform.NewRegistry()
	gen := func(fill float64) waveform.Generator {
		return func(n int, _ waveform.Params) (waveform.Samples, error) {
			out := make(waveform.Samples, n)
			for i := range out {
				out[i] = fill
			}
			return out, nil
		}
	}
	reg.Register("x", gen(1), nil)
	reg.Register("x", gen(-1), nil)

	shape, err := reg.Create("x", 2, nil)
	require.NoError(t, err)
	assert.Equal(t, waveform.Samples{-1, -1}, shape.Samples, "second registration must win")
}

// TestRegistry_KeysSorted verifies Keys enumerates every built-in in sorted
// order.
func TestRegistry_KeysSorted(t *testing.T) {
	keys := waveform.Default().Keys()

	assert.True(t, sort.StringsAreSorted(keys), "Keys must be sorted")
	assert.Len(t, keys, 27, "all built-in generators must be registered")
	assert.Contains(t, keys, waveform.KeySinc)
	assert.Contains(t, keys, waveform.KeyCrusher)
	assert.Contains(t, keys, waveform.KeyFlag)
}

// TestRegistry_ConcurrentCreate verifies that parallel Create calls on the
// shared default registry agree bit-for-bit (generation is pure and
// lock-free once the entry is resolved).
func TestRegistry_ConcurrentCreate(t *testing.T) {
	reference, err := waveform.Create(waveform.KeyDante, 200, nil)
	require.NoError(t, err)

	const workers = 8
	var wg sync.WaitGroup
	results := make([]waveform.Samples, workers)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(slot int) {
			defer wg.Done()
			shape, cerr := waveform.Create(waveform.KeyDante, 200, nil)
			if cerr == nil {
				results[slot] = shape.Samples
			}
		}(w)
	}
	wg.Wait()

	for w := 0; w < workers; w++ {
		assert.Equal(t, reference.Samples, results[w], "worker %d must see identical samples", w)
	}
}

// TestCreate_GeneratorErrorPropagatesUnchanged verifies that a sentinel
// raised inside a generator still matches through the registry boundary.
func TestCreate_GeneratorErrorPropagatesUnchanged(t *testing.T) {
	_, err := waveform.Create(waveform.KeySinc, 100, waveform.Params{waveform.ParamBandwidth: -1})

	assert.ErrorIs(t, err, waveform.ErrInvalidParameter, "generator validation must surface via errors.Is")
}
