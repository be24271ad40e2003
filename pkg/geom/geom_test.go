package geom

import (
	"math"
	"testing"
)

const eps = 1e-9

func approx(a, b float64) bool { return math.Abs(a-b) < eps }

func TestSegmentFromCenter(t *testing.T) {
	tests := []struct {
		name   string
		angle  float64
		wantA  Point
		wantB  Point
		length float64
	}{
		{"horizontal", 0, Pt(6, 10), Pt(14, 10), 8},
		{"vertical", 90, Pt(10, 6), Pt(10, 14), 8},
		{"flipped horizontal", 180, Pt(14, 10), Pt(6, 10), 8},
		{"diagonal", 45, Pt(10-2.5/math.Sqrt2, 10-2.5/math.Sqrt2), Pt(10+2.5/math.Sqrt2, 10+2.5/math.Sqrt2), 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := SegmentFromCenter(Pt(10, 10), tt.angle, tt.length)
			if !approx(s.A.X, tt.wantA.X) || !approx(s.A.Y, tt.wantA.Y) {
				t.Errorf("A = %v, want %v", s.A, tt.wantA)
			}
			if !approx(s.B.X, tt.wantB.X) || !approx(s.B.Y, tt.wantB.Y) {
				t.Errorf("B = %v, want %v", s.B, tt.wantB)
			}
			if !approx(s.Length(), tt.length) {
				t.Errorf("Length() = %v, want %v", s.Length(), tt.length)
			}
			if m := s.Midpoint(); !approx(m.X, 10) || !approx(m.Y, 10) {
				t.Errorf("Midpoint() = %v, want (10, 10)", m)
			}
		})
	}
}

func TestPointSegmentDistance(t *testing.T) {
	s := Seg(0, 0, 10, 0)
	tests := []struct {
		name string
		p    Point
		want float64
	}{
		{"above interior", Pt(5, 3), 3},
		{"on segment", Pt(4, 0), 0},
		{"beyond B", Pt(13, 4), 5},
		{"before A", Pt(-3, -4), 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PointSegmentDistance(tt.p, s); !approx(got, tt.want) {
				t.Errorf("PointSegmentDistance(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestPointSegmentDistanceDegenerate(t *testing.T) {
	s := Seg(1, 1, 1, 1)
	if got := PointSegmentDistance(Pt(4, 5), s); !approx(got, 5) {
		t.Errorf("degenerate distance = %v, want 5", got)
	}
}

func TestIntersects(t *testing.T) {
	tests := []struct {
		name string
		s, t Segment
		want bool
	}{
		{"crossing", Seg(0, 0, 10, 10), Seg(0, 10, 10, 0), true},
		{"touching endpoint", Seg(0, 0, 5, 0), Seg(5, 0, 5, 5), true},
		{"T junction", Seg(0, 0, 10, 0), Seg(5, 0, 5, 5), true},
		{"collinear overlap", Seg(0, 0, 6, 0), Seg(4, 0, 10, 0), true},
		{"collinear disjoint", Seg(0, 0, 3, 0), Seg(4, 0, 10, 0), false},
		{"parallel", Seg(0, 0, 10, 0), Seg(0, 1, 10, 1), false},
		{"apart", Seg(0, 0, 1, 1), Seg(5, 5, 6, 7), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Intersects(tt.s, tt.t); got != tt.want {
				t.Errorf("Intersects() = %v, want %v", got, tt.want)
			}
			if got := Intersects(tt.t, tt.s); got != tt.want {
				t.Errorf("Intersects() reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSegmentDistance(t *testing.T) {
	tests := []struct {
		name string
		s, t Segment
		want float64
	}{
		{"crossing", Seg(0, 0, 10, 10), Seg(0, 10, 10, 0), 0},
		{"parallel horizontal", Seg(0, 0, 10, 0), Seg(2, 3, 8, 3), 3},
		{"parallel vertical", Seg(0, 0, 0, 8), Seg(2.5, 1, 2.5, 6), 2.5},
		{"collinear gap", Seg(0, 0, 3, 0), Seg(4, 0, 10, 0), 1},
		{"perpendicular gap", Seg(0, 0, 10, 0), Seg(5, 2, 5, 9), 2},
		{"endpoint to endpoint", Seg(0, 0, 1, 0), Seg(4, 4, 5, 5), 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SegmentDistance(tt.s, tt.t); !approx(got, tt.want) {
				t.Errorf("SegmentDistance() = %v, want %v", got, tt.want)
			}
			if got := SegmentDistance(tt.t, tt.s); !approx(got, tt.want) {
				t.Errorf("SegmentDistance() reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSegmentDistanceToCenterLine(t *testing.T) {
	center := Seg(0, 17.5, 56, 17.5)

	vertical := SegmentFromCenter(Pt(20, 17.5), 90, 8)
	if d := SegmentDistance(vertical, center); d != 0 {
		t.Errorf("vertical crossing center line: distance = %v, want 0", d)
	}

	horizontal := SegmentFromCenter(Pt(20, 17.5), 0, 8)
	if d := SegmentDistance(horizontal, center); d != 0 {
		t.Errorf("horizontal on center line: distance = %v, want 0", d)
	}

	above := SegmentFromCenter(Pt(20, 22), 90, 8)
	if d := SegmentDistance(above, center); !approx(d, 0.5) {
		t.Errorf("vertical above center line: distance = %v, want 0.5", d)
	}
}
