// SPDX-License-Identifier: MIT
// Package: mrdiagram/catalog
//
// load.go — reading catalogue files into Catalog values.
//
// Contract:
//   - JSON is the native catalogue format (shapes.json); YAML is accepted
//     for hand-maintained catalogues. The record shape is identical.
//   - Decoding failures wrap ErrBadCatalog; record-level violations are NOT
//     checked here — loading and validating are separate steps so tooling
//     can inspect a broken catalogue.

package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format identifies a catalogue encoding.
type Format int

const (
	// FormatJSON decodes the native shapes.json layout.
	FormatJSON Format = iota
	// FormatYAML decodes the same record shape from YAML.
	FormatYAML
)

// Load reads the catalogue at path, picking the format from the file
// extension (.yaml/.yml → YAML, anything else → JSON).
// Complexity: O(file size).
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	format := FormatJSON
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		format = FormatYAML
	}

	cat, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cat, nil
}

// Parse decodes a catalogue from raw bytes in the given format.
// Decoding failures wrap ErrBadCatalog.
func Parse(data []byte, format Format) (*Catalog, error) {
	var cat Catalog
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &cat); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadCatalog, err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &cat); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadCatalog, err)
		}
	default:
		return nil, fmt.Errorf("%w: unsupported format %d", ErrBadCatalog, format)
	}

	return &cat, nil
}
