// SPDX-License-Identifier: MIT
// Package: mrdiagram/render
//
// svg.go — sample array → standalone SVG icon.
//
// Contract:
//   - Samples are assumed normalized ([-1,1]); the vertical mapping places
//     +1 at the padded top and -1 at the padded bottom (SVG y grows down).
//   - Output is a complete, self-contained SVG document; no external CSS.

package render

import (
	"fmt"
	"strings"

	"github.com/dpizetta/mrdiagram/waveform"
)

// SVG renders the samples as a polyline icon and returns the SVG document.
// An empty sample array yields an icon frame with no path.
// Complexity: O(len(samples)).
func SVG(samples waveform.Samples, opts Options) string {
	o := opts.withDefaults()

	var b strings.Builder
	fmt.Fprintf(&b, `<?xml version="1.0" encoding="UTF-8"?>`+"\n")
	fmt.Fprintf(&b, `<svg width="%d" height="%d" viewBox="0 0 %d %d" xmlns="http://www.w3.org/2000/svg">`+"\n",
		o.Width, o.Height, o.Width, o.Height)
	if len(samples) > 0 {
		fmt.Fprintf(&b, `  <path d="%s" fill="none" stroke="%s" stroke-width="%d" stroke-linecap="round" stroke-linejoin="round"/>`+"\n",
			pathData(samples, o), Color(o.Category), o.StrokeWidth)
	}
	b.WriteString("</svg>\n")

	return b.String()
}

// pathData builds the "M x,y L x,y ..." path through every sample point.
func pathData(samples waveform.Samples, o Options) string {
	var b strings.Builder
	for i, v := range samples {
		x, y := project(i, v, len(samples), o)
		if i == 0 {
			fmt.Fprintf(&b, "M %.1f,%.1f", x, y)
		} else {
			fmt.Fprintf(&b, " L %.1f,%.1f", x, y)
		}
	}

	return b.String()
}

// project maps sample index/value into padded icon coordinates.
func project(i int, v float64, n int, o Options) (x, y float64) {
	span := float64(o.Width - 2*iconPadding)
	if n > 1 {
		x = iconPadding + span*float64(i)/float64(n-1)
	} else {
		x = iconPadding
	}
	// [-1,1] → [bottom, top], flipped because SVG y grows downward.
	y = (1-v)/2*float64(o.Height-2*iconPadding) + iconPadding

	return x, y
}
