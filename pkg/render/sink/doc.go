// Package sink provides output format renderers for puzzle layouts.
//
// # Overview
//
// A "sink" transforms a generated [puzzle.Layout] into a final output format.
// This package provides renderers for:
//
//   - SVG: the puzzle diagram
//   - JSON: layout data export for re-rendering and external tools
//   - PDF: print-ready output (requires rsvg-convert)
//   - PNG: raster image output (requires rsvg-convert)
//
// # SVG Output
//
// [RenderSVG] draws the scene built by [render.NewScene] through a
// [styles.Style]:
//
//	svg := sink.RenderSVG(layout,
//	    sink.WithStyle(handdrawn.New(layout.Seed)),
//	    sink.WithUnitScale(20),
//	)
//
// Every element carries a stable id (grid-h-0, center-line, laser,
// barrier-1, tick-1, target, target-label) so diagrams can be styled or
// inspected after the fact.
//
// # PDF and PNG Output
//
// [RenderPDF] and [RenderPNG] render the layout as PDF/PNG by first generating
// SVG, then converting via [render.ToPDF] and [render.ToPNG]:
//
//	pdf, err := sink.RenderPDF(layout, sink.WithSVGOptions(svgOpts...))
//	png, err := sink.RenderPNG(layout, sink.WithSVGOptions(svgOpts...), sink.WithScale(2))
//
// These require librsvg to be installed:
//   - macOS: brew install librsvg
//   - Linux: apt install librsvg2-bin
//
// [puzzle.Layout]: github.com/matzehuels/laserbox/pkg/puzzle.Layout
// [render.NewScene]: github.com/matzehuels/laserbox/pkg/render.NewScene
// [render.ToPDF]: github.com/matzehuels/laserbox/pkg/render.ToPDF
// [render.ToPNG]: github.com/matzehuels/laserbox/pkg/render.ToPNG
// [styles.Style]: github.com/matzehuels/laserbox/pkg/render/styles.Style
package sink
