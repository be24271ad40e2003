package render

import (
	"fmt"

	"github.com/matzehuels/laserbox/pkg/geom"
	"github.com/matzehuels/laserbox/pkg/puzzle"
)

// Laser arrow geometry, in box units.
const (
	LaserStartX     = -3.0
	LaserShaft      = 3.0
	LaserHeadWidth  = 1.0
	LaserHeadLength = 2.0
)

// Stroke widths, in points.
const (
	GridWidth       = 1.0
	CenterLineWidth = 2.0
	BarrierWidth    = 2.0
	TickWidth       = 1.5
	LaserWidth      = 1.5
)

// TargetRadius is the radius of the target dot, in box units.
const TargetRadius = 0.6

// LabelOffset is the gap between the target and its label, in box units.
const LabelOffset = 2.0

// Stroke is a named segment of the diagram.
type Stroke struct {
	ID      string
	Class   string
	Segment geom.Segment
	Mirror  bool
}

// Scene is the renderer-independent description of a puzzle diagram in box
// units. Renderers only decide how to draw it.
type Scene struct {
	Box        puzzle.Box
	Grid       []Stroke
	CenterLine Stroke
	Laser      geom.Segment // shaft; the head starts at Laser.B
	Barriers   []Stroke
	Ticks      []Stroke
	Target     geom.Point
	Label      []string
}

// NewScene builds the scene for l.
func NewScene(l puzzle.Layout) Scene {
	box := l.Box
	s := Scene{Box: box}

	for i := 0; i <= 3; i++ {
		y := float64(i) * box.Height / 3
		s.Grid = append(s.Grid, Stroke{
			ID: fmt.Sprintf("grid-h-%d", i), Class: "grid",
			Segment: geom.Seg(0, y, box.Width, y),
		})
	}
	for i := 0; i <= 3; i++ {
		x := float64(i) * box.Width / 3
		s.Grid = append(s.Grid, Stroke{
			ID: fmt.Sprintf("grid-v-%d", i), Class: "grid",
			Segment: geom.Seg(x, 0, x, box.Height),
		})
	}

	s.CenterLine = Stroke{ID: "center-line", Class: "center-line", Segment: box.CenterLine()}

	cy := box.CenterY()
	s.Laser = geom.Seg(LaserStartX, cy, LaserStartX+LaserShaft, cy)

	for i, b := range l.Barriers {
		class := "barrier"
		if b.IsMirror() {
			class = "barrier mirror"
		}
		s.Barriers = append(s.Barriers, Stroke{
			ID: fmt.Sprintf("barrier-%d", i), Class: class,
			Segment: b.Segment, Mirror: b.IsMirror(),
		})
		if tick, ok := b.Tick(); ok {
			s.Ticks = append(s.Ticks, Stroke{ID: fmt.Sprintf("tick-%d", i), Class: "tick", Segment: tick})
		}
	}

	s.Target = geom.Pt(l.Target.X, l.Target.Y)
	s.Label = TargetLabel(l.Target)
	return s
}

// TargetLabel returns the two label lines shown next to the target.
func TargetLabel(t puzzle.Target) []string {
	return []string{"Target", fmt.Sprintf("(%.1f cm)", t.Y)}
}
