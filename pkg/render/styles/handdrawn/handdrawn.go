// Package handdrawn provides a sketch-like style for puzzle diagrams.
//
// Strokes are drawn as slightly bent quadratic curves with jittered
// endpoints, passed through a turbulence filter, and labelled in a comic
// font. All randomness derives from the seed and element ID, so the same
// layout renders identically every time.
package handdrawn

import (
	"bytes"
	"fmt"
	"html"

	"github.com/matzehuels/laserbox/pkg/fonts"
	"github.com/matzehuels/laserbox/pkg/render/styles"
)

const filterID = "hd-rough"

// Handdrawn is a [styles.Style] with wobbly, pencil-like strokes.
type Handdrawn struct {
	seed uint64
}

// New returns a hand-drawn style whose jitter is derived from seed.
func New(seed uint64) *Handdrawn {
	return &Handdrawn{seed: seed}
}

func (h *Handdrawn) RenderDefs(buf *bytes.Buffer) {
	buf.WriteString("  <defs>\n")
	fmt.Fprintf(buf, `    <filter id="%s" x="-5%%" y="-5%%" width="110%%" height="110%%">`+"\n", filterID)
	fmt.Fprintf(buf, `      <feTurbulence type="fractalNoise" baseFrequency="0.03" numOctaves="2" seed="%d" result="noise"/>`+"\n", h.seed%1000)
	buf.WriteString(`      <feDisplacementMap in="SourceGraphic" in2="noise" scale="1.5" xChannelSelector="R" yChannelSelector="G"/>` + "\n")
	buf.WriteString("    </filter>\n")
	fmt.Fprintf(buf, "    <style>.hd-text { font-family: %s; }</style>\n", fonts.FallbackFontFamily)
	buf.WriteString("  </defs>\n")
}

func (h *Handdrawn) RenderLine(buf *bytes.Buffer, l styles.Line) {
	fmt.Fprintf(buf, `  <path id="%s"%s d="%s" fill="none" stroke="%s" stroke-width="%.2f" stroke-linecap="round" filter="url(#%s)"/>`+"\n",
		html.EscapeString(l.ID), classAttr(l.Class), wobbledLine(l.X1, l.Y1, l.X2, l.Y2, h.seed, l.ID),
		l.Color, l.Width, filterID)
}

func (h *Handdrawn) RenderArrow(buf *bytes.Buffer, a styles.Arrow) {
	fmt.Fprintf(buf, `  <g id="%s" filter="url(#%s)">`+"\n", html.EscapeString(a.ID), filterID)
	fmt.Fprintf(buf, `    <path d="%s" fill="none" stroke="%s" stroke-width="%.2f" stroke-linecap="round"/>`+"\n",
		wobbledLine(a.X1, a.Y1, a.X2, a.Y2, h.seed, a.ID), a.Color, a.Width)
	fmt.Fprintf(buf, `    <polygon points="%s" fill="%s" stroke="%s" stroke-linejoin="round"/>`+"\n",
		styles.HeadPoints(a), a.Color, a.Color)
	buf.WriteString("  </g>\n")
}

func (h *Handdrawn) RenderDot(buf *bytes.Buffer, d styles.Dot) {
	r := newRNG(hash(d.ID, h.seed))
	rx := d.R * (0.9 + 0.2*r.next())
	ry := d.R * (0.9 + 0.2*r.next())
	fmt.Fprintf(buf, `  <ellipse id="%s" cx="%.2f" cy="%.2f" rx="%.2f" ry="%.2f" fill="%s" filter="url(#%s)"/>`+"\n",
		html.EscapeString(d.ID), d.CX, d.CY, rx, ry, d.Color, filterID)
}

func (h *Handdrawn) RenderText(buf *bytes.Buffer, t styles.Text) {
	rot := rotationFor(t.ID, h.seed)
	fmt.Fprintf(buf, `  <text id="%s" class="hd-text" x="%.2f" y="%.2f" font-size="%.1f" fill="black" transform="rotate(%.2f %.2f %.2f)">`,
		html.EscapeString(t.ID), t.X, t.Y, t.Size, rot, t.X, t.Y)
	first := -1.2 * float64(len(t.Lines)-1) / 2
	for i, line := range t.Lines {
		dy := 1.2
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
