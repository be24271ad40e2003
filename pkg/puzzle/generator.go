package puzzle

import "github.com/matzehuels/laserbox/pkg/geom"

// Generator places barriers and picks targets for one box configuration.
// A Generator consumes its Source and is not safe for concurrent use.
type Generator struct {
	cfg Config
	src Source
}

// NewGenerator validates cfg and returns a generator drawing from src.
func NewGenerator(cfg Config, src Source) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Generator{cfg: cfg, src: src}, nil
}

// Config returns the generator's configuration.
func (g *Generator) Config() Config { return g.cfg }

// Placement is the outcome of one barrier generation run.
type Placement struct {
	Barriers    []Barrier
	MirrorIndex int // index designated as the mirror
	CenterIndex int // index required to touch the center line
	Attempts    int // outer attempts consumed by failed passes
	Requested   int
}

// Complete reports whether every requested barrier was placed.
func (p Placement) Complete() bool { return len(p.Barriers) == p.Requested }

// state is the placement state machine. index always equals len(accepted):
// it advances only on acceptance, and attempts only grows on a failed pass.
type state struct {
	accepted []Barrier
	index    int
	attempts int
}

func (s *state) done(r Rules) bool {
	return len(s.accepted) >= r.Count || s.attempts >= r.MaxAttempts
}

// Place runs the generator until the requested number of barriers is accepted
// or the outer attempt budget is spent.
func (g *Generator) Place() Placement {
	r := g.cfg.Rules
	p := Placement{
		MirrorIndex: g.src.IntN(r.Count),
		CenterIndex: g.src.IntN(r.Count),
		Requested:   r.Count,
	}

	s := state{accepted: make([]Barrier, 0, r.Count)}
	for !s.done(r) {
		g.step(&s, p.MirrorIndex, p.CenterIndex)
	}

	p.Barriers = s.accepted
	p.Attempts = s.attempts
	return p
}

// step makes one outer pass for the current index: a fresh angle and up to
// MaxTries positions. It either accepts one barrier or charges one attempt.
func (g *Generator) step(s *state, mirrorIndex, centerIndex int) {
	role := Plain
	if s.index == mirrorIndex {
		role = Mirror
	}
	mustTouch := s.index == centerIndex
	length := g.cfg.Length(role)
	angle := 180 * g.src.Float64()

	xr, yr := g.cfg.XRange(role), g.cfg.YRange(role)
	centerLine := g.cfg.Box.CenterLine()

	for range g.cfg.Rules.MaxTries {
		c := geom.Pt(xr.draw(g.src), yr.draw(g.src))
		seg := geom.SegmentFromCenter(c, angle, length)

		if mustTouch && geom.SegmentDistance(seg, centerLine) > g.cfg.Rules.TouchTolerance {
			continue
		}
		if !g.clear(seg, s.accepted) {
			continue
		}

		b := Barrier{Segment: seg, Center: c, Angle: angle, Length: length, Role: role}
		if role == Mirror {
			b.Facing = g.facing()
		}
		s.accepted = append(s.accepted, b)
		s.index++
		return
	}
	s.attempts++
}

// clear reports whether seg keeps more than MinClearance from every accepted barrier.
func (g *Generator) clear(seg geom.Segment, accepted []Barrier) bool {
	for _, b := range accepted {
		if geom.SegmentDistance(seg, b.Segment) <= g.cfg.Rules.MinClearance {
			return false
		}
	}
	return true
}

func (g *Generator) facing() int {
	if g.src.IntN(2) == 0 {
		return -1
	}
	return 1
}

// Target draws the target point: x on the right wall, y uniform over
// [0, TargetMaxY]. It has no constraints and never retries.
func (g *Generator) Target() Target {
	return Target{X: g.cfg.Box.Width, Y: g.cfg.TargetRange().draw(g.src)}
}
