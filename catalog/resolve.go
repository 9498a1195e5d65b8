// SPDX-License-Identifier: MIT
// Package: mrdiagram/catalog
//
// resolve.go — the metadata resolver: Descriptor → ready waveform.Shape.
//
// Design contract (strict):
//   - Resolve is a thin bridge: extract (class, args), call the registry.
//     It adds descriptor validation and nothing else; registry errors pass
//     through unchanged for errors.Is.
//   - ResolveAll has partial-failure semantics: every descriptor is tried,
//     results keep input order, one bad record never aborts the batch.
//     Callers (editor, CLI) decide how to surface the per-item errors.

package catalog

import (
	"github.com/dpizetta/mrdiagram/waveform"
)

// Resolver turns descriptors into shapes through a waveform registry at a
// fixed resolution. Construct with NewResolver; the zero value has no
// registry to dispatch on.
type Resolver struct {
	reg       *waveform.Registry
	numPoints int
}

// ResolverOption customizes a Resolver at construction time.
type ResolverOption func(*Resolver)

// WithNumPoints sets the sample count every resolved shape is generated
// with. Panics if n < waveform.MinNumPoints — a resolver that can only
// fail is a programmer error, surfaced early.
func WithNumPoints(n int) ResolverOption {
	if n < waveform.MinNumPoints {
		panic("catalog: WithNumPoints below waveform.MinNumPoints")
	}
	return func(r *Resolver) {
		r.numPoints = n
	}
}

// NewResolver builds a resolver over reg. Defaults: numPoints =
// waveform.DefaultNumPoints. Panics on a nil registry (programmer error).
func NewResolver(reg *waveform.Registry, opts ...ResolverOption) *Resolver {
	if reg == nil {
		panic("catalog: NewResolver(nil registry)")
	}

	r := &Resolver{reg: reg, numPoints: waveform.DefaultNumPoints}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Resolve validates d and creates its shape through the registry.
// Errors: ErrBadDescriptor for record-contract violations; the waveform
// sentinels (ErrUnknownShape, ErrInvalidParameter,
// ErrInsufficientResolution) propagate unchanged from Create.
// Complexity: O(numPoints + len(args)).
func (r *Resolver) Resolve(d Descriptor) (*waveform.Shape, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	return r.reg.Create(d.Class, r.numPoints, waveform.Params(d.Args))
}

// Resolution is one entry of a ResolveAll result: the descriptor's ID plus
// either its shape or its error, never both.
type Resolution struct {
	// ID echoes the descriptor identifier (empty only if the record had none).
	ID string
	// Shape is the resolved waveform; nil when Err is set.
	Shape *waveform.Shape
	// Err is the per-item failure; nil when Shape is set.
	Err error
}

// ResolveAll resolves every descriptor independently, in input order. A
// failing record contributes a Resolution with Err set and does not stop
// the remaining records from resolving.
// Complexity: O(len(ds) · numPoints).
func (r *Resolver) ResolveAll(ds []Descriptor) []Resolution {
	out := make([]Resolution, len(ds))
	for i, d := range ds {
		shape, err := r.Resolve(d)
		out[i] = Resolution{ID: d.ID, Shape: shape, Err: err}
	}

	return out
}
