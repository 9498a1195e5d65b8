// SPDX-License-Identifier: MIT
// Package: mrdiagram/cmd/mrshapes
//
// mrshapes — batch icon generator for shape catalogues.
//
// Reads a JSON or YAML catalogue, resolves every descriptor into a sampled
// waveform, and writes one SVG or PNG icon per shape under
// <out>/<category>/<id>.<ext>. Descriptors that fail to resolve are reported
// and skipped; the run fails only when nothing could be generated at all.
//
// Configuration precedence: flags > MRSHAPES_* env vars > config file >
// built-in defaults.
package main

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/dpizetta/mrdiagram/catalog"
	"github.com/dpizetta/mrdiagram/render"
	"github.com/dpizetta/mrdiagram/waveform"
)

const (
	defCatalogPath = "shapes.json"
	defOutDir      = "svg_icons"
	defFormat      = "svg"

	envPrefix = "MRSHAPES"
)

func main() {
	v := viper.New()
	if err := configure(v, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "mrshapes:", err)
		os.Exit(2)
	}

	if err := run(v); err != nil {
		fmt.Fprintln(os.Stderr, "mrshapes:", err)
		os.Exit(1)
	}
}

// configure wires flags, environment, and an optional config file into v.
func configure(v *viper.Viper, args []string) error {
	fs := pflag.NewFlagSet("mrshapes", pflag.ContinueOnError)
	fs.String("catalog", defCatalogPath, "catalogue file (.json, .yaml, .yml)")
	fs.String("out", defOutDir, "output directory for generated icons")
	fs.String("format", defFormat, "icon format: svg or png")
	fs.Int("points", waveform.DefaultNumPoints, "samples per shape")
	fs.Int("width", render.DefaultWidth, "icon width in pixels")
	fs.Int("height", render.DefaultHeight, "icon height in pixels")
	fs.Int("stroke", render.DefaultStrokeWidth, "trace stroke width")
	fs.String("config", "", "optional config file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := v.BindPFlags(fs); err != nil {
		return err
	}

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if cfg := v.GetString("config"); cfg != "" {
		v.SetConfigFile(cfg)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", cfg, err)
		}
	}

	return nil
}

// run executes the load → resolve → render → write pipeline.
func run(v *viper.Viper) error {
	format := strings.ToLower(v.GetString("format"))
	if format != "svg" && format != "png" {
		return fmt.Errorf("unsupported format %q (want svg or png)", format)
	}

	cat, err := catalog.Load(v.GetString("catalog"))
	if err != nil {
		return err
	}

	resolver := catalog.NewResolver(waveform.Default(),
		catalog.WithNumPoints(v.GetInt("points")))

	outDir := v.GetString("out")
	opts := render.Options{
		Width:       v.GetInt("width"),
		Height:      v.GetInt("height"),
		StrokeWidth: v.GetInt("stroke"),
	}

	generated, failed := 0, 0
	for category, descriptors := range cat.ByCategory() {
		dir := filepath.Join(outDir, string(category))
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}

		for _, res := range resolver.ResolveAll(descriptors) {
			if res.Err != nil {
				failed++
				fmt.Fprintf(os.Stderr, "  skip %s/%s: %v\n", category, res.ID, res.Err)
				continue
			}

			path := filepath.Join(dir, res.ID+"."+format)
			if err := writeIcon(path, format, res.Shape, category, opts); err != nil {
				failed++
				fmt.Fprintf(os.Stderr, "  skip %s/%s: %v\n", category, res.ID, err)
				continue
			}

			generated++
			fmt.Printf("  wrote %s\n", path)
		}
	}

	fmt.Printf("mrshapes: %d icon(s) generated, %d failed\n", generated, failed)
	if generated == 0 {
		return fmt.Errorf("no icons generated (%d descriptor(s) failed)", failed)
	}

	return nil
}

// writeIcon renders one shape and writes it to path in the chosen format.
func writeIcon(path, format string, shape *waveform.Shape, category catalog.Category, opts render.Options) error {
	opts.Category = category
	opts.Label = shape.Key

	switch format {
	case "png":
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		return png.Encode(f, render.PNG(shape.Samples, opts))
	default:
		return os.WriteFile(path, []byte(render.SVG(shape.Samples, opts)), 0o644)
	}
}
