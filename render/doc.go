// Package render draws shape icons from normalized sample arrays.
//
// It is a pure consumer of the waveform contract: samples in [-1, 1] go in,
// an SVG document or an RGBA raster comes out. Colors follow the diagram
// lane (catalog.Category) so a catalogue renders into a consistently
// color-coded icon set.
//
//	shape, _ := waveform.Create("sinc", 100, nil)
//	svg := render.SVG(shape.Samples, render.Options{Category: catalog.CategoryRF})
package render
