package graphviz

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	errs "github.com/matzehuels/laserbox/pkg/errors"
	"github.com/matzehuels/laserbox/pkg/geom"
	"github.com/matzehuels/laserbox/pkg/puzzle"
	"github.com/matzehuels/laserbox/pkg/render"
	"github.com/matzehuels/laserbox/pkg/render/styles"
)

// DefaultPointsPerUnit is the default drawing scale in points per box unit.
const DefaultPointsPerUnit = 10.0

// Options configures DOT generation.
type Options struct {
	// PointsPerUnit scales box units to Graphviz points. Zero selects
	// DefaultPointsPerUnit.
	PointsPerUnit float64
	// NoLabel omits the target label.
	NoLabel bool
}

// ToDOT converts a layout to Graphviz DOT with pinned node positions.
// The resulting DOT string can be rendered using [RenderSVG], [RenderPDF], or [RenderPNG].
func ToDOT(l puzzle.Layout, opts Options) string {
	scale := opts.PointsPerUnit
	if scale <= 0 {
		scale = DefaultPointsPerUnit
	}
	scene := render.NewScene(l)
	w := &dotWriter{scale: scale}

	w.WriteString("graph G {\n")
	w.WriteString("  layout=neato;\n")
	w.WriteString("  inputscale=72;\n")
	w.WriteString("  splines=line;\n")
	w.WriteString("  outputorder=edgesfirst;\n")
	w.WriteString("  bgcolor=\"white\";\n")
	fmt.Fprintf(w, "  pad=%q;\n", strconv.FormatFloat(render.DefaultMargin*scale/72, 'f', 2, 64))
	w.WriteString("  node [shape=point, width=0.01, height=0.01, label=\"\", color=\"#00000000\"];\n")
	w.WriteString("  edge [dir=none];\n")
	w.WriteString("\n")

	for _, s := range scene.Grid {
		w.stroke(s, styles.ColorInk, render.GridWidth)
	}
	w.stroke(scene.CenterLine, styles.ColorCenterLine, render.CenterLineWidth)

	w.node("laser-a", scene.Laser.A)
	w.node("laser-b", scene.Laser.B.Add(geom.Pt(render.LaserHeadLength, 0)))
	fmt.Fprintf(w, "  \"laser-a\" -- \"laser-b\" [id=\"laser\", dir=forward, arrowhead=normal, arrowsize=%s, color=%q, penwidth=%s];\n",
		num(render.LaserHeadWidth*scale/10), styles.ColorCenterLine, num(render.LaserWidth))

	for _, b := range scene.Barriers {
		color := styles.ColorInk
		if b.Mirror {
			color = styles.ColorMirror
		}
		w.stroke(b, color, render.BarrierWidth)
	}
	for _, t := range scene.Ticks {
		w.stroke(t, styles.ColorTick, render.TickWidth)
	}

	attrs := []string{
		"id=\"target\"",
		"shape=circle",
		"style=filled",
		fmt.Sprintf("fillcolor=%q", styles.ColorTarget),
		fmt.Sprintf("color=%q", styles.ColorTarget),
		fmt.Sprintf("width=%s", num(2*render.TargetRadius*scale/72)),
		"fixedsize=true",
	}
	if !opts.NoLabel {
		attrs = append(attrs, fmt.Sprintf("xlabel=%q", strings.Join(scene.Label, "\n")), "fontsize=11")
	}
	fmt.Fprintf(w, "  \"target\" [pos=%q, %s];\n", w.pos(scene.Target), strings.Join(attrs, ", "))

	w.WriteString("}\n")
	return w.String()
}

type dotWriter struct {
	bytes.Buffer
	scale float64
}

func (w *dotWriter) pos(p geom.Point) string {
	return num(p.X*w.scale) + "," + num(p.Y*w.scale) + "!"
}

func (w *dotWriter) node(id string, p geom.Point) {
	fmt.Fprintf(w, "  %q [pos=%q];\n", id, w.pos(p))
}

// stroke writes one pinned node per endpoint and the edge between them.
func (w *dotWriter) stroke(s render.Stroke, color string, width float64) {
	a, b := s.ID+"-a", s.ID+"-b"
	w.node(a, s.Segment.A)
	w.node(b, s.Segment.B)
	fmt.Fprintf(w, "  %q -- %q [id=%q, color=%q, penwidth=%s];\n", a, b, s.ID, color, num(width))
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// RenderSVG lays out dot with neato, which honors the pinned positions, and
// returns the SVG sized in points to its own viewBox.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInternal, err, "start graphviz")
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInternal, err, "parse puzzle graph")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, errs.Wrap(errs.ErrCodeInternal, err, "lay out puzzle graph")
	}
	return fitToViewBox(buf.Bytes()), nil
}

var (
	openTagRe = regexp.MustCompile(`<svg\b[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="(-?[0-9.]+)\s+(-?[0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// fitToViewBox replaces Graphviz's opening svg tag, whose width and height
// carry "pt" units, with one sized 1:1 to the viewBox so the graphviz output
// scales like the native diagram. Documents without a usable viewBox pass
// through unchanged.
func fitToViewBox(svg []byte) []byte {
	tag := openTagRe.Find(svg)
	if tag == nil {
		return svg
	}
	m := viewBoxRe.FindSubmatch(tag)
	if m == nil {
		return svg
	}
	var box [4]float64
	for i := range box {
		box[i], _ = strconv.ParseFloat(string(m[i+1]), 64)
	}
	if box[2] <= 0 || box[3] <= 0 {
		return svg
	}

	fitted := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="%s %s %s %s">`,
		num(box[2]), num(box[3]), num(box[0]), num(box[1]), num(box[2]), num(box[3]))
	return bytes.Replace(svg, tag, []byte(fitted), 1)
}

// viaSVG lays out dot and hands the SVG to convert.
func viaSVG(dot string, convert func([]byte) ([]byte, error)) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return convert(svg)
}

// RenderPDF lays out dot and converts it with rsvg-convert
// ([render.CanConvert] reports whether that works here).
func RenderPDF(dot string) ([]byte, error) {
	return viaSVG(dot, render.ToPDF)
}

// RenderPNG is [RenderPDF] for PNG output at scale times the point size.
func RenderPNG(dot string, scale float64) ([]byte, error) {
	return viaSVG(dot, func(svg []byte) ([]byte, error) { return render.ToPNG(svg, scale) })
}
