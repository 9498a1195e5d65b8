// Package catalog bridges declarative shape descriptions to the waveform
// registry.
//
// A Descriptor is immutable configuration data: identifier, display
// metadata, category, the registry key of the generator that draws it, and
// the default parameter values to draw it with. Catalogues are flat record
// collections, stored as JSON (the native format) or YAML, and are only
// ever read here — editing them belongs to the external catalogue editor.
//
// The Resolver turns descriptors into ready shapes:
//
//	cat, err := catalog.Load("shapes.json")
//	res := catalog.NewResolver(waveform.Default(), catalog.WithNumPoints(200))
//	for _, r := range res.ResolveAll(cat.Shapes) {
//	  if r.Err != nil { /* skip or report; the rest still resolved */ }
//	}
//
// Error semantics: Resolve propagates the waveform sentinels
// (ErrUnknownShape, ErrInvalidParameter, ErrInsufficientResolution)
// unchanged — a bad descriptor is never patched silently. ResolveAll
// isolates per-item failures so one broken record cannot block the rest of
// the catalogue; results keep input order.
package catalog
