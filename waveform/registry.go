// SPDX-License-Identifier: MIT
// Package: mrdiagram/waveform
//
// registry.go — the key → constructor mapping behind data-driven creation.
//
// Design contract (strict):
//   - "Which model" is decoupled from "how constructed": Create dispatches on
//     a string key, not on a type. External code extends the catalogue with
//     Register instead of modifying this package.
//   - Defaults merge: caller Params override the generator's declared
//     defaults; a parameter name the generator never declared is rejected
//     with ErrInvalidParameter, not silently ignored.
//   - Determinism: Create is a pure mapping — same key + numPoints + params
//     ⇒ bit-identical Samples. No generator holds hidden randomness.
//   - Concurrency: many-readers/single-writer. Populate (Register) before
//     concurrent use, or accept that Register serializes against Create via
//     the RWMutex. Create itself shares no mutable state.

package waveform

import (
	"fmt"
	"sort"
	"sync"
)

// entry pairs a generator with its declared defaults. The defaults double as
// the generator's parameter schema: their keys are the complete set of names
// Create will accept.
type entry struct {
	gen      Generator
	defaults Params
}

// Registry maps model keys to constructors. The zero value is not usable;
// call NewRegistry (or use Default for the built-in catalogue).
type Registry struct {
	mu      sync.RWMutex
	entries map[string]entry
}

// NewRegistry returns an empty registry. Use Register to populate it.
// Complexity: O(1).
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]entry)}
}

// Register inserts or overwrites the generator stored under key. The
// defaults map is copied, so later caller mutations cannot leak in.
// Register panics on a nil generator: that is a programmer error, in line
// with the option-constructor validation policy.
//
// Complexity: O(len(defaults)) time.
func (r *Registry) Register(key string, gen Generator, defaults Params) {
	if gen == nil {
		panic("waveform: Register(nil generator) for key " + key)
	}

	r.mu.Lock()
	r.entries[key] = entry{gen: gen, defaults: defaults.clone()}
	r.mu.Unlock()
}

// Keys returns every registered key in sorted order. Intended for editors
// and catalogue tooling that enumerate the available models.
// Complexity: O(k log k) for k registered keys.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	keys := make([]string, 0, len(r.entries))
	for k := range r.entries {
		keys = append(keys, k)
	}
	r.mu.RUnlock()

	sort.Strings(keys)

	return keys
}

// Create resolves key, merges params over the generator's defaults, runs the
// generator, and returns the normalized Shape.
//
// Validation order (first failure wins):
//  1. key registered                 → else ErrUnknownShape
//  2. numPoints ≥ MinNumPoints       → else ErrInvalidParameter
//  3. every caller key is declared   → else ErrInvalidParameter
//  4. generator's own range checks   → ErrInvalidParameter / ErrInsufficientResolution
//
// Generator errors propagate unchanged (errors.Is keeps matching); nothing
// is retried — the mapping is pure, so a failure cannot change on retry.
//
// Complexity: O(numPoints + len(params)) time.
func (r *Registry) Create(key string, numPoints int, params Params) (*Shape, error) {
	// Lookup under the read lock only; generation runs lock-free.
	r.mu.RLock()
	e, ok := r.entries[key]
	r.mu.RUnlock()
	if !ok {
		return nil, wrapf("Create", fmt.Sprintf("no generator registered under %q", key), ErrUnknownShape)
	}

	// Reject undefined resolutions before touching parameters.
	if numPoints < MinNumPoints {
		return nil, wrapf(key, fmt.Sprintf("numPoints must be ≥ %d, got %d", MinNumPoints, numPoints), ErrInvalidParameter)
	}

	// Merge caller params over defaults; unknown names fail fast.
	merged := e.defaults.clone()
	for name, v := range params {
		if _, declared := e.defaults[name]; !declared {
			return nil, wrapf(key, fmt.Sprintf("unknown parameter %q", name), ErrInvalidParameter)
		}
		merged[name] = v
	}

	// Run the model; raw output is an implementation detail of this call.
	raw, err := e.gen(numPoints, merged)
	if err != nil {
		return nil, err
	}

	// Every shape leaves through the same amplitude convention.
	return &Shape{
		Key:       key,
		NumPoints: numPoints,
		Params:    merged,
		Samples:   Normalize(raw),
	}, nil
}

// -----------------------------------------------------------------------------
// Process-wide default registry (built-ins).
// -----------------------------------------------------------------------------

var (
	defaultOnce sync.Once
	defaultReg  *Registry
)

// Default returns the process-wide registry holding every built-in
// generator. It is populated exactly once on first use and is read-mostly
// afterwards; registering additional models on it is safe but serializes
// against concurrent Create calls.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultReg = NewRegistry()
		for _, b := range builtins() {
			defaultReg.Register(b.key, b.gen, b.defaults)
		}
	})

	return defaultReg
}

// Create is a convenience wrapper over Default().Create.
func Create(key string, numPoints int, params Params) (*Shape, error) {
	return Default().Create(key, numPoints, params)
}

// builtin is one row of the built-in catalogue tables declared in the
// impl_*.go files.
type builtin struct {
	key      string
	gen      Generator
	defaults Params
}

// builtins concatenates the per-family tables in a stable order.
func builtins() []builtin {
	out := make([]builtin, 0, 32)
	out = append(out, rfBuiltins()...)
	out = append(out, signalBuiltins()...)
	out = append(out, gradientBuiltins()...)
	out = append(out, markerBuiltins()...)

	return out
}
