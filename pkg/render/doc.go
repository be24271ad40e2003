// Package render provides diagram rendering for generated puzzle layouts.
//
// # Overview
//
// This package contains the rendering pipeline that turns a
// [puzzle.Layout] into a visual diagram. It provides:
//
//   - [Frame]: the projection from box units (y up) to pixels (y down)
//   - Generic format conversion (SVG to PDF/PNG)
//   - Native SVG diagrams (in the [sink] subpackage)
//   - Graphviz diagrams with pinned positions (in the [graphviz] subpackage)
//
// # Diagram
//
// Every renderer draws the same picture: the box outline with its 3×3
// reference grid, the dark red center line, the laser arrow entering the left
// wall, the barriers (mirror in cyan with a blue facing tick, plain barriers
// in black) and the red target dot on the right wall with its label.
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg).
//
//	svg := sink.RenderSVG(layout, opts...)
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
package render
