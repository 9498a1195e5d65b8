// SPDX-License-Identifier: MIT
// Package: mrdiagram/catalog
//
// errors.go — sentinel errors for the catalog package.
//
// Error policy:
//   • Same discipline as mrdiagram/waveform: package-level sentinels,
//     errors.Is for branching, context attached with %w.
//   • Errors originating in the waveform registry are NOT re-wrapped into
//     catalog sentinels; they propagate unchanged so errors.Is keeps
//     matching ErrUnknownShape / ErrInvalidParameter at any depth.

package catalog

import "errors"

// ErrBadCatalog indicates a catalogue file or byte stream that cannot be
// decoded into the record shape (wrong syntax, wrong top-level structure,
// unsupported extension).
// Usage: if errors.Is(err, ErrBadCatalog) { /* fix the file */ }.
var ErrBadCatalog = errors.New("catalog: malformed catalogue")

// ErrBadDescriptor indicates a record that decoded fine but violates the
// descriptor contract: empty id or class, unknown category, unknown rating.
// Usage: if errors.Is(err, ErrBadDescriptor) { /* fix the record */ }.
var ErrBadDescriptor = errors.New("catalog: invalid descriptor")
