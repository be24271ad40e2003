package puzzle

import (
	"math"

	"github.com/matzehuels/laserbox/pkg/geom"
)

// TickLength is the length of the facing tick drawn on a mirror.
const TickLength = 1.5

// Role distinguishes mirrors from plain barriers.
type Role int

const (
	Plain Role = iota
	Mirror
)

// String returns "plain" or "mirror".
func (r Role) String() string {
	if r == Mirror {
		return "mirror"
	}
	return "plain"
}

// Barrier is an accepted, immutable barrier segment.
type Barrier struct {
	Segment geom.Segment
	Center  geom.Point
	Angle   float64 // degrees in [0, 180)
	Length  float64
	Role    Role
	Facing  int // -1 or +1 for a mirror, 0 for a plain barrier
}

// IsMirror reports whether b is the mirror.
func (b Barrier) IsMirror() bool { return b.Role == Mirror }

// Tick returns the facing tick of a mirror: a segment from the mirror's
// midpoint to midpoint - TickLength·n, where n = (-sinθ, cosθ)·Facing.
// Plain barriers have no tick and report ok == false.
func (b Barrier) Tick() (tick geom.Segment, ok bool) {
	if !b.IsMirror() {
		return geom.Segment{}, false
	}
	rad := geom.Radians(b.Angle)
	f := float64(b.Facing)
	n := geom.Pt(-math.Sin(rad)*f, math.Cos(rad)*f)
	m := b.Segment.Midpoint()
	return geom.Segment{A: m, B: m.Sub(n.Scale(TickLength))}, true
}

// Target is the point on the right wall the laser has to reach.
type Target struct {
	X float64
	Y float64
}
