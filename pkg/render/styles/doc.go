// Package styles defines how diagram primitives are drawn as SVG.
//
// A [Style] receives primitives already projected to pixel coordinates and
// writes SVG elements for them. The sink decides what to draw; the style
// decides how it looks.
//
// Two styles are provided:
//
//   - [Simple]: crisp strokes and a sans-serif font
//   - [handdrawn.Handdrawn]: seeded, wobbly strokes and a comic font
//
// Styles must be deterministic: rendering the same primitives twice produces
// the same bytes.
package styles
