package sink

import (
	"github.com/matzehuels/laserbox/pkg/puzzle"
	"github.com/matzehuels/laserbox/pkg/render"
)

// DefaultPNGScale is the PNG rasterization factor when none is given.
const DefaultPNGScale = 2.0

// ConvertOption configures PNG and PDF output.
type ConvertOption func(*converter)

type converter struct {
	svgOpts []SVGOption
	scale   float64
}

// WithSVGOptions passes options through to the SVG that gets converted.
func WithSVGOptions(opts ...SVGOption) ConvertOption {
	return func(c *converter) { c.svgOpts = opts }
}

// WithScale sets the PNG rasterization factor. PDF output ignores it.
func WithScale(s float64) ConvertOption {
	return func(c *converter) { c.scale = s }
}

func newConverter(opts []ConvertOption) converter {
	c := converter{scale: DefaultPNGScale}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// RenderPNG renders the layout to SVG and rasterizes it with rsvg-convert.
func RenderPNG(l puzzle.Layout, opts ...ConvertOption) ([]byte, error) {
	c := newConverter(opts)
	return render.ToPNG(RenderSVG(l, c.svgOpts...), c.scale)
}

// RenderPDF renders the layout to SVG and converts it with rsvg-convert.
func RenderPDF(l puzzle.Layout, opts ...ConvertOption) ([]byte, error) {
	c := newConverter(opts)
	return render.ToPDF(RenderSVG(l, c.svgOpts...))
}
