package geom

import "math"

// Point is a position or vector in box coordinates (y grows upward).
type Point struct {
	X float64
	Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

func (p Point) Add(q Point) Point     { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) Sub(q Point) Point     { return Point{p.X - q.X, p.Y - q.Y} }
func (p Point) Scale(s float64) Point { return Point{p.X * s, p.Y * s} }

// Dot returns the dot product of p and q.
func Dot(p, q Point) float64 { return p.X*q.X + p.Y*q.Y }

// Cross returns the z component of the cross product of p and q.
func Cross(p, q Point) float64 { return p.X*q.Y - p.Y*q.X }

// Dist returns the Euclidean distance between p and q.
func Dist(p, q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Radians converts an angle in degrees to radians.
func Radians(deg float64) float64 { return deg * math.Pi / 180 }

// Segment is the closed line segment from A to B.
type Segment struct {
	A Point
	B Point
}

// Seg is shorthand for a segment between (x1, y1) and (x2, y2).
func Seg(x1, y1, x2, y2 float64) Segment {
	return Segment{A: Pt(x1, y1), B: Pt(x2, y2)}
}

// SegmentFromCenter builds a segment of the given length centered on c and
// rotated angle degrees counter-clockwise from the +x axis. A is the endpoint
// at c - (L/2)(cos, sin) and B the one at c + (L/2)(cos, sin).
func SegmentFromCenter(c Point, angle, length float64) Segment {
	rad := Radians(angle)
	d := Pt(math.Cos(rad), math.Sin(rad)).Scale(length / 2)
	return Segment{A: c.Sub(d), B: c.Add(d)}
}

// Midpoint returns the point halfway between A and B.
func (s Segment) Midpoint() Point {
	return Pt((s.A.X+s.B.X)/2, (s.A.Y+s.B.Y)/2)
}

// Length returns the distance between A and B.
func (s Segment) Length() float64 { return Dist(s.A, s.B) }

// Vector returns B - A.
func (s Segment) Vector() Point { return s.B.Sub(s.A) }

// PointSegmentDistance returns the distance from p to the closest point of s.
// A degenerate segment (A == B) behaves like a point.
func PointSegmentDistance(p Point, s Segment) float64 {
	d := s.Vector()
	len2 := Dot(d, d)
	if len2 == 0 {
		return Dist(p, s.A)
	}
	t := Dot(p.Sub(s.A), d) / len2
	t = max(0, min(1, t))
	return Dist(p, s.A.Add(d.Scale(t)))
}

// orientation returns the sign of the turn a→b→c: +1 counter-clockwise,
// -1 clockwise, 0 collinear.
func orientation(a, b, c Point) int {
	v := Cross(b.Sub(a), c.Sub(a))
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// onSegment reports whether p, known to be collinear with s, lies within the
// bounding box of s.
func onSegment(p Point, s Segment) bool {
	return p.X <= max(s.A.X, s.B.X) && p.X >= min(s.A.X, s.B.X) &&
		p.Y <= max(s.A.Y, s.B.Y) && p.Y >= min(s.A.Y, s.B.Y)
}

// Intersects reports whether s and t share at least one point, including
// touching endpoints and overlapping collinear segments.
func Intersects(s, t Segment) bool {
	o1 := orientation(s.A, s.B, t.A)
	o2 := orientation(s.A, s.B, t.B)
	o3 := orientation(t.A, t.B, s.A)
	o4 := orientation(t.A, t.B, s.B)

	if o1 != o2 && o3 != o4 {
		return true
	}
	switch {
	case o1 == 0 && onSegment(t.A, s):
		return true
	case o2 == 0 && onSegment(t.B, s):
		return true
	case o3 == 0 && onSegment(s.A, t):
		return true
	case o4 == 0 && onSegment(s.B, t):
		return true
	}
	return false
}

// SegmentDistance returns the minimum distance between s and t. Crossing or
// touching segments are at distance 0; otherwise the minimum is attained at an
// endpoint of one of them.
func SegmentDistance(s, t Segment) float64 {
	if Intersects(s, t) {
		return 0
	}
	return min(
		PointSegmentDistance(s.A, t),
		PointSegmentDistance(s.B, t),
		PointSegmentDistance(t.A, s),
		PointSegmentDistance(t.B, s),
	)
}
