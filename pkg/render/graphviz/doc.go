// Package graphviz renders puzzle layouts through Graphviz.
//
// [ToDOT] describes the diagram as an undirected neato graph in which every
// segment endpoint is a point-shaped node pinned at its box position
// (pos="x,y!"), and every stroke is an edge between two such nodes. Pinning
// keeps the geometry exact; Graphviz contributes text placement, fonts and
// its own SVG/PDF/PNG back ends.
//
// [RenderSVG] runs the embedded Graphviz (github.com/goccy/go-graphviz) with
// the neato engine. [RenderPDF] and [RenderPNG] convert that SVG with
// rsvg-convert.
package graphviz
