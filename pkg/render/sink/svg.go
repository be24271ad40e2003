package sink

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/laserbox/pkg/puzzle"
	"github.com/matzehuels/laserbox/pkg/render"
	"github.com/matzehuels/laserbox/pkg/render/styles"
)

const (
	pointsPerUnit = 10.0 // stroke widths are given in points; one box unit is this many
	labelSize     = 1.1  // box units
)

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	style  styles.Style
	scale  float64
	labels bool
}

func WithStyle(s styles.Style) SVGOption { return func(r *svgRenderer) { r.style = s } }

// WithUnitScale sets the number of pixels per box unit.
func WithUnitScale(px float64) SVGOption { return func(r *svgRenderer) { r.scale = px } }

// WithoutLabel omits the target label and the room reserved for it.
func WithoutLabel() SVGOption { return func(r *svgRenderer) { r.labels = false } }

// RenderSVG draws l as a standalone SVG document.
func RenderSVG(l puzzle.Layout, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)
	f := render.NewFrame(l.Box, r.scale, r.labels)
	scene := render.NewScene(l)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		f.Width(), f.Height(), f.Width(), f.Height())
	r.style.RenderDefs(&buf)
	fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", styles.ColorPaper)

	for _, s := range scene.Grid {
		r.style.RenderLine(&buf, line(f, s, styles.ColorInk, render.GridWidth))
	}
	r.style.RenderLine(&buf, line(f, scene.CenterLine, styles.ColorCenterLine, render.CenterLineWidth))
	r.style.RenderArrow(&buf, styles.Arrow{
		ID: "laser",
		X1: f.X(scene.Laser.A.X), Y1: f.Y(scene.Laser.A.Y),
		X2: f.X(scene.Laser.B.X), Y2: f.Y(scene.Laser.B.Y),
		HeadWidth:  f.Len(render.LaserHeadWidth),
		HeadLength: f.Len(render.LaserHeadLength),
		Color:      styles.ColorCenterLine,
		Width:      stroke(f, render.LaserWidth),
	})

	for _, b := range scene.Barriers {
		color := styles.ColorInk
		if b.Mirror {
			color = styles.ColorMirror
		}
		r.style.RenderLine(&buf, line(f, b, color, render.BarrierWidth))
	}
	for _, t := range scene.Ticks {
		r.style.RenderLine(&buf, line(f, t, styles.ColorTick, render.TickWidth))
	}

	r.style.RenderDot(&buf, styles.Dot{
		ID: "target",
		CX: f.X(scene.Target.X), CY: f.Y(scene.Target.Y),
		R:     f.Len(render.TargetRadius),
		Color: styles.ColorTarget,
	})
	if r.labels {
		r.style.RenderText(&buf, styles.Text{
			ID:    "target-label",
			X:     f.X(scene.Target.X + render.LabelOffset),
			Y:     f.Y(scene.Target.Y),
			Lines: scene.Label,
			Size:  f.Len(labelSize),
		})
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{style: styles.Simple{}, scale: render.DefaultScale, labels: true}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

func line(f render.Frame, s render.Stroke, color string, width float64) styles.Line {
	return styles.Line{
		ID:    s.ID,
		Class: s.Class,
		X1:    f.X(s.Segment.A.X),
		Y1:    f.Y(s.Segment.A.Y),
		X2:    f.X(s.Segment.B.X),
		Y2:    f.Y(s.Segment.B.Y),
		Color: color,
		Width: stroke(f, width),
	}
}

func stroke(f render.Frame, points float64) float64 {
	return f.Len(points / pointsPerUnit)
}
