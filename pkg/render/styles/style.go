package styles

import "bytes"

// Style defines the visual appearance of a puzzle diagram.
type Style interface {
	// RenderDefs writes SVG <defs> content (filters, fonts).
	RenderDefs(buf *bytes.Buffer)
	// RenderLine writes a straight stroke: grid, center line, barrier or tick.
	RenderLine(buf *bytes.Buffer, l Line)
	// RenderArrow writes the laser arrow.
	RenderArrow(buf *bytes.Buffer, a Arrow)
	// RenderDot writes a filled marker such as the target.
	RenderDot(buf *bytes.Buffer, d Dot)
	// RenderText writes a left-aligned, vertically centered label.
	RenderText(buf *bytes.Buffer, t Text)
}

// Line is a stroke in pixel coordinates.
type Line struct {
	ID             string
	Class          string
	X1, Y1, X2, Y2 float64
	Color          string
	Width          float64
}

// Arrow is a shaft from (X1, Y1) to (X2, Y2) followed by a triangular head
// pointing along the shaft.
type Arrow struct {
	ID                    string
	X1, Y1, X2, Y2        float64
	HeadWidth, HeadLength float64
	Color                 string
	Width                 float64
}

// Dot is a filled circle.
type Dot struct {
	ID     string
	CX, CY float64
	R      float64
	Color  string
}

// Text is a multi-line label anchored at its left edge and vertical center.
type Text struct {
	ID    string
	X, Y  float64
	Lines []string
	Size  float64
}
