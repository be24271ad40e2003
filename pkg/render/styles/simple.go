package styles

import (
	"bytes"
	"fmt"
	"html"
	"math"

	"github.com/matzehuels/laserbox/pkg/fonts"
)

// Simple draws plain strokes and sans-serif text.
type Simple struct{}

func (Simple) RenderDefs(buf *bytes.Buffer) {}

func (Simple) RenderLine(buf *bytes.Buffer, l Line) {
	fmt.Fprintf(buf, `  <line id="%s"%s x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="%.2f" stroke-linecap="round"/>`+"\n",
		html.EscapeString(l.ID), classAttr(l.Class), l.X1, l.Y1, l.X2, l.Y2, l.Color, l.Width)
}

func (Simple) RenderArrow(buf *bytes.Buffer, a Arrow) {
	fmt.Fprintf(buf, `  <g id="%s">`+"\n", html.EscapeString(a.ID))
	fmt.Fprintf(buf, `    <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="%.2f"/>`+"\n",
		a.X1, a.Y1, a.X2, a.Y2, a.Color, a.Width)
	fmt.Fprintf(buf, `    <polygon points="%s" fill="%s"/>`+"\n", HeadPoints(a), a.Color)
	buf.WriteString("  </g>\n")
}

func (Simple) RenderDot(buf *bytes.Buffer, d Dot) {
	fmt.Fprintf(buf, `  <circle id="%s" cx="%.2f" cy="%.2f" r="%.2f" fill="%s"/>`+"\n",
		html.EscapeString(d.ID), d.CX, d.CY, d.R, d.Color)
}

func (Simple) RenderText(buf *bytes.Buffer, t Text) {
	writeText(buf, t, `font-family="`+fonts.SansFamily+`"`, "")
}

// HeadPoints returns the polygon points of an arrow head: the two base corners
// at the end of the shaft and the tip HeadLength beyond it.
func HeadPoints(a Arrow) string {
	dx, dy := a.X2-a.X1, a.Y2-a.Y1
	n := math.Hypot(dx, dy)
	if n == 0 {
		dx, dy, n = 1, 0, 1
	}
	ux, uy := dx/n, dy/n
	px, py := -uy*a.HeadWidth/2, ux*a.HeadWidth/2
	tipX, tipY := a.X2+ux*a.HeadLength, a.Y2+uy*a.HeadLength
	return fmt.Sprintf("%.2f,%.2f %.2f,%.2f %.2f,%.2f",
		a.X2+px, a.Y2+py, tipX, tipY, a.X2-px, a.Y2-py)
}

// writeText writes t as a <text> element with one <tspan> per line, the block
// centered vertically on t.Y.
func writeText(buf *bytes.Buffer, t Text, font, extra string) {
	fmt.Fprintf(buf, `  <text id="%s" x="%.2f" y="%.2f" %s font-size="%.1f" fill="black"%s>`,
		html.EscapeString(t.ID), t.X, t.Y, font, t.Size, extra)
	const lineHeight = 1.2
	first := -lineHeight * float64(len(t.Lines)-1) / 2
	for i, line := range t.Lines {
		dy := lineHeight
		if i == 0 {
			dy = first
		}
		fmt.Fprintf(buf, `<tspan x="%.2f" dy="%.2fem" dominant-baseline="middle">%s</tspan>`,
			t.X, dy, html.EscapeString(line))
	}
	buf.WriteString("</text>\n")
}

func classAttr(class string) string {
	if class == "" {
		return ""
	}
	return fmt.Sprintf(` class="%s"`, html.EscapeString(class))
}
