package pipeline

import (
	"fmt"

	errs "github.com/matzehuels/laserbox/pkg/errors"
	"github.com/matzehuels/laserbox/pkg/puzzle"
	"github.com/matzehuels/laserbox/pkg/render/graphviz"
	"github.com/matzehuels/laserbox/pkg/render/sink"
	"github.com/matzehuels/laserbox/pkg/render/styles"
	"github.com/matzehuels/laserbox/pkg/render/styles/handdrawn"
)

// Render generates output artifacts in the requested formats. Formats the
// visualization type cannot produce are skipped.
func Render(l puzzle.Layout, opts Options) (map[string][]byte, error) {
	if opts.IsGraphviz() {
		return renderGraphviz(l, opts)
	}
	return renderDiagram(l, opts)
}

// renderDiagram generates native SVG diagram outputs.
func renderDiagram(l puzzle.Layout, opts Options) (map[string][]byte, error) {
	svgOpts := buildSVGOptions(l, opts)
	artifacts := make(map[string][]byte)

	for _, format := range opts.RenderFormats() {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = sink.RenderSVG(l, svgOpts...)
		case FormatPNG:
			data, err = sink.RenderPNG(l, sink.WithSVGOptions(svgOpts...), sink.WithScale(DefaultPNGScale))
		case FormatPDF:
			data, err = sink.RenderPDF(l, sink.WithSVGOptions(svgOpts...))
		case FormatJSON:
			data, err = sink.RenderJSON(l, sink.WithJSONStyle(opts.Style))
		default:
			return nil, errs.New(errs.ErrCodeUnsupported, "unsupported diagram format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

// renderGraphviz generates outputs through the embedded Graphviz.
func renderGraphviz(l puzzle.Layout, opts Options) (map[string][]byte, error) {
	dot := graphviz.ToDOT(l, graphviz.Options{
		PointsPerUnit: opts.Scale * graphviz.DefaultPointsPerUnit / DefaultScale,
		NoLabel:       opts.NoLabel,
	})
	artifacts := make(map[string][]byte)

	for _, format := range opts.RenderFormats() {
		var data []byte
		var err error

		switch format {
		case FormatDOT:
			data = []byte(dot)
		case FormatSVG:
			data, err = graphviz.RenderSVG(dot)
		case FormatPNG:
			data, err = graphviz.RenderPNG(dot, DefaultPNGScale)
		case FormatPDF:
			data, err = graphviz.RenderPDF(dot)
		default:
			return nil, errs.New(errs.ErrCodeUnsupported, "unsupported graphviz format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

// buildSVGOptions builds SVG rendering options. The hand-drawn jitter is
// seeded from the layout so a puzzle always looks the same.
func buildSVGOptions(l puzzle.Layout, opts Options) []sink.SVGOption {
	svgOpts := []sink.SVGOption{sink.WithUnitScale(opts.Scale)}

	switch opts.Style {
	case StyleHanddrawn:
		seed := l.Seed
		if seed == 0 {
			seed = DefaultSeed
		}
		svgOpts = append(svgOpts, sink.WithStyle(handdrawn.New(seed)))
	case StyleSimple:
		svgOpts = append(svgOpts, sink.WithStyle(styles.Simple{}))
	}

	if opts.NoLabel {
		svgOpts = append(svgOpts, sink.WithoutLabel())
	}
	return svgOpts
}
