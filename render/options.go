// SPDX-License-Identifier: MIT
// Package: mrdiagram/render
//
// options.go — icon geometry, colors and defaults.

package render

import (
	"image/color"

	"github.com/dpizetta/mrdiagram/catalog"
)

// Default icon geometry, matching the catalogue's icon set.
const (
	DefaultWidth       = 200
	DefaultHeight      = 100
	DefaultStrokeWidth = 2

	// iconPadding keeps the trace clear of the icon border on every side.
	iconPadding = 10
)

// Options controls icon rendering. The zero value renders a
// 200×100 icon with a 2px stroke in the General lane color.
type Options struct {
	// Width and Height are the icon dimensions in pixels.
	Width, Height int
	// StrokeWidth is the trace thickness in pixels.
	StrokeWidth int
	// Category selects the lane color.
	Category catalog.Category
	// Label, when non-empty, is burned into the PNG raster (ignored by SVG).
	Label string
}

// withDefaults resolves zero fields to the package defaults.
func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
	if o.StrokeWidth <= 0 {
		o.StrokeWidth = DefaultStrokeWidth
	}

	return o
}

// laneColors maps each diagram lane to its icon stroke color.
var laneColors = map[catalog.Category]string{
	catalog.CategoryRF:       "#2563eb", // blue
	catalog.CategorySignal:   "#dc2626", // red
	catalog.CategoryGradient: "#16a34a", // green
	catalog.CategoryTrigger:  "#ca8a04", // yellow
	catalog.CategoryFlag:     "#7c3aed", // purple
}

// fallbackColor is used for General and unknown lanes.
const fallbackColor = "#374151"

// Color returns the hex stroke color for a diagram lane.
func Color(c catalog.Category) string {
	if hex, ok := laneColors[c]; ok {
		return hex
	}

	return fallbackColor
}

// rgba decodes a "#rrggbb" hex color into an opaque color.RGBA.
func rgba(hex string) color.RGBA {
	decode := func(hi, lo byte) uint8 {
		val := func(b byte) uint8 {
			switch {
			case b >= '0' && b <= '9':
				return b - '0'
			case b >= 'a' && b <= 'f':
				return b - 'a' + 10
			case b >= 'A' && b <= 'F':
				return b - 'A' + 10
			}
			return 0
		}
		return val(hi)<<4 | val(lo)
	}
	if len(hex) != 7 || hex[0] != '#' {
		return color.RGBA{A: 255}
	}

	return color.RGBA{
		R: decode(hex[1], hex[2]),
		G: decode(hex[3], hex[4]),
		B: decode(hex[5], hex[6]),
		A: 255,
	}
}
