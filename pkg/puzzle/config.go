package puzzle

import (
	"math"

	"github.com/matzehuels/laserbox/pkg/geom"

	errs "github.com/matzehuels/laserbox/pkg/errors"
)

// Default box dimensions in centimeters.
const (
	DefaultWidth  = 56.0
	DefaultHeight = 35.0
)

// Box is the rectangular puzzle domain [0, Width] × [0, Height].
type Box struct {
	Width  float64 `json:"width" toml:"width"`
	Height float64 `json:"height" toml:"height"`
}

// CenterY returns the height of the horizontal center line.
func (b Box) CenterY() float64 { return b.Height / 2 }

// CenterLine returns the center line as a segment spanning the full box width.
func (b Box) CenterLine() geom.Segment {
	return geom.Seg(0, b.CenterY(), b.Width, b.CenterY())
}

// Rules holds the placement constraints. The zero value is not useful; start
// from [DefaultRules].
type Rules struct {
	Count               int     `json:"count" toml:"count"`                                 // barriers per puzzle
	MirrorLength        float64 `json:"mirror_length" toml:"mirror_length"`                 // length of the mirror barrier
	PlainLength         float64 `json:"plain_length" toml:"plain_length"`                   // length of every other barrier
	MirrorLeftClearance float64 `json:"mirror_left_clearance" toml:"mirror_left_clearance"` // mirror keeps this far from the laser wall
	MirrorRightMargin   float64 `json:"mirror_right_margin" toml:"mirror_right_margin"`     // mirror keeps this far from the target wall
	TouchTolerance      float64 `json:"touch_tolerance" toml:"touch_tolerance"`             // max distance that counts as touching the center line
	MinClearance        float64 `json:"min_clearance" toml:"min_clearance"`                 // barriers must be strictly farther apart than this
	MaxAttempts         int     `json:"max_attempts" toml:"max_attempts"`                   // outer budget
	MaxTries            int     `json:"max_tries" toml:"max_tries"`                         // inner budget per outer pass
	TargetMaxY          float64 `json:"target_max_y" toml:"target_max_y"`                   // target y is drawn from [0, TargetMaxY]
}

// DefaultRules returns the standard laser box rules.
func DefaultRules() Rules {
	return Rules{
		Count:               3,
		MirrorLength:        5,
		PlainLength:         8,
		MirrorLeftClearance: 8,
		MirrorRightMargin:   3,
		TouchTolerance:      0.1,
		MinClearance:        0.5,
		MaxAttempts:         300,
		MaxTries:            30,
		TargetMaxY:          30,
	}
}

// Config is the full generator input.
type Config struct {
	Box   Box   `json:"box" toml:"box"`
	Rules Rules `json:"rules" toml:"rules"`
}

// DefaultConfig returns the 56×35 box with [DefaultRules].
func DefaultConfig() Config {
	return Config{
		Box:   Box{Width: DefaultWidth, Height: DefaultHeight},
		Rules: DefaultRules(),
	}
}

// Range is a closed interval [Min, Max].
type Range struct {
	Min float64
	Max float64
}

// draw returns a value uniformly distributed over the range.
func (r Range) draw(src Source) float64 {
	return r.Min + (r.Max-r.Min)*src.Float64()
}

// Contains reports whether v lies in the range.
func (r Range) Contains(v float64) bool { return v >= r.Min && v <= r.Max }

// Length returns the barrier length for role.
func (c Config) Length(role Role) float64 {
	if role == Mirror {
		return c.Rules.MirrorLength
	}
	return c.Rules.PlainLength
}

// XRange returns the interval the center x of a barrier with role is drawn from.
func (c Config) XRange(role Role) Range {
	half := c.Length(role) / 2
	if role == Mirror {
		return Range{
			Min: c.Rules.MirrorLeftClearance + half,
			Max: c.Box.Width - c.Rules.MirrorRightMargin - half,
		}
	}
	return Range{Min: half, Max: c.Box.Width - half}
}

// YRange returns the interval the center y of a barrier with role is drawn from.
func (c Config) YRange(role Role) Range {
	half := c.Length(role) / 2
	return Range{Min: half, Max: c.Box.Height - half}
}

// TargetRange returns the interval the target y is drawn from.
func (c Config) TargetRange() Range {
	return Range{Min: 0, Max: c.Rules.TargetMaxY}
}

// Validate checks that every placement range is non-empty and every budget
// is positive. Generation only runs on a validated Config.
func (c Config) Validate() error {
	if err := errs.ValidateBox(c.Box.Width, c.Box.Height); err != nil {
		return err
	}

	r := c.Rules
	for name, v := range map[string]float64{
		"mirror_length":         r.MirrorLength,
		"plain_length":          r.PlainLength,
		"mirror_left_clearance": r.MirrorLeftClearance,
		"mirror_right_margin":   r.MirrorRightMargin,
		"touch_tolerance":       r.TouchTolerance,
		"min_clearance":         r.MinClearance,
		"target_max_y":          r.TargetMaxY,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errs.New(errs.ErrCodeInvalidRules, "%s must be a finite number, got %g", name, v)
		}
	}
	switch {
	case r.Count < 1:
		return errs.New(errs.ErrCodeInvalidRules, "count must be at least 1, got %d", r.Count)
	case r.MaxAttempts < 1:
		return errs.New(errs.ErrCodeInvalidRules, "max_attempts must be at least 1, got %d", r.MaxAttempts)
	case r.MaxTries < 1:
		return errs.New(errs.ErrCodeInvalidRules, "max_tries must be at least 1, got %d", r.MaxTries)
	case !(r.MirrorLength > 0) || !(r.PlainLength > 0):
		return errs.New(errs.ErrCodeInvalidRules, "barrier lengths must be positive, got mirror=%g plain=%g", r.MirrorLength, r.PlainLength)
	case r.TouchTolerance < 0 || r.MinClearance < 0 || r.TargetMaxY < 0:
		return errs.New(errs.ErrCodeInvalidRules, "tolerances must not be negative")
	}

	for _, role := range []Role{Mirror, Plain} {
		x, y := c.XRange(role), c.YRange(role)
		if err := errs.ValidateRange(role.String()+" x", x.Min, x.Max); err != nil {
			return err
		}
		if err := errs.ValidateRange(role.String()+" y", y.Min, y.Max); err != nil {
			return err
		}
	}
	return nil
}
