// SPDX-License-Identifier: MIT
// Package: mrdiagram/render
//
// png.go — sample array → RGBA raster icon.
//
// Contract:
//   - White background, lane-colored trace, optional scaled text label.
//   - Segment drawing is integer DDA with a square brush of StrokeWidth;
//     good enough for icons, no anti-aliasing dependency.

package render

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/dpizetta/mrdiagram/waveform"
)

// labelScale multiplies the 7x13 base glyphs so labels stay readable at
// icon sizes.
const labelScale = 2

// PNG renders the samples into a fresh RGBA image. The Label option, when
// set, is drawn in the top-left corner over the trace.
// Complexity: O(Width·Height) for the fill plus O(len(samples)·StrokeWidth²).
func PNG(samples waveform.Samples, opts Options) *image.RGBA {
	o := opts.withDefaults()

	img := image.NewRGBA(image.Rect(0, 0, o.Width, o.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	stroke := rgba(Color(o.Category))
	for i := 1; i < len(samples); i++ {
		x0, y0 := project(i-1, samples[i-1], len(samples), o)
		x1, y1 := project(i, samples[i], len(samples), o)
		drawSegment(img, x0, y0, x1, y1, o.StrokeWidth, stroke)
	}

	if o.Label != "" {
		drawLabel(img, o.Label)
	}

	return img
}

// drawSegment draws a straight segment with a square brush.
func drawSegment(img *image.RGBA, x0, y0, x1, y1 float64, width int, c color.RGBA) {
	steps := int(math.Max(math.Abs(x1-x0), math.Abs(y1-y0))) + 1
	for s := 0; s <= steps; s++ {
		t := float64(s) / float64(steps)
		cx := int(math.Round(x0 + (x1-x0)*t))
		cy := int(math.Round(y0 + (y1-y0)*t))
		brush(img, cx, cy, width, c)
	}
}

// brush stamps a width×width square centered on (cx, cy).
func brush(img *image.RGBA, cx, cy, width int, c color.RGBA) {
	r := width / 2
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if p := (image.Point{X: cx + dx, Y: cy + dy}); p.In(img.Bounds()) {
				img.SetRGBA(p.X, p.Y, c)
			}
		}
	}
}

// drawLabel renders text at the base 7x13 face, scales it up with bilinear
// interpolation, and composites it into the top-left corner.
func drawLabel(img *image.RGBA, text string) {
	face := basicfont.Face7x13
	baseW := font.MeasureString(face, text).Ceil()
	baseH := face.Height

	textImg := image.NewRGBA(image.Rect(0, 0, baseW, baseH))
	drawer := &font.Drawer{
		Dst:  textImg,
		Src:  image.NewUniform(color.RGBA{A: 255}),
		Face: face,
		Dot:  fixed.Point26_6{Y: fixed.I(face.Ascent)},
	}
	drawer.DrawString(text)

	scaled := image.NewRGBA(image.Rect(0, 0, baseW*labelScale, baseH*labelScale))
	draw.BiLinear.Scale(scaled, scaled.Bounds(), textImg, textImg.Bounds(), draw.Over, nil)

	target := scaled.Bounds().Add(image.Point{X: iconPadding / 2, Y: iconPadding / 2})
	draw.Draw(img, target, scaled, image.Point{}, draw.Over)
}
