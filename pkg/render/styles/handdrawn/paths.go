package handdrawn

import (
	"fmt"
	"hash/fnv"
	"math"
)

const (
	maxBow      = 2.5 // px, upper bound on the curve's sideways bend
	bowFraction = 0.02
	endJitter   = 0.6 // px
	maxRotation = 3.0 // degrees
)

// wobbledLine returns an SVG path from (x1, y1) to (x2, y2) drawn as a single
// quadratic curve whose control point is pushed sideways by a seeded amount.
func wobbledLine(x1, y1, x2, y2 float64, seed uint64, id string) string {
	// Sub-pixel strokes stay straight and unjittered.
	if math.Hypot(x2-x1, y2-y1) < 1 {
		return fmt.Sprintf("M%.2f,%.2f L%.2f,%.2f", x1, y1, x2, y2)
	}

	r := newRNG(hash(id, seed))
	jit := func() float64 { return (r.next()*2 - 1) * endJitter }

	x1, y1 = x1+jit(), y1+jit()
	x2, y2 = x2+jit(), y2+jit()

	dx, dy := x2-x1, y2-y1
	length := math.Hypot(dx, dy)

	bow := math.Min(length*bowFraction, maxBow) * (r.next()*2 - 1)
	nx, ny := -dy/length, dx/length
	cx := (x1+x2)/2 + nx*bow
	cy := (y1+y2)/2 + ny*bow
	return fmt.Sprintf("M%.2f,%.2f Q%.2f,%.2f %.2f,%.2f", x1, y1, cx, cy, x2, y2)
}

// rotationFor returns a small per-element tilt in degrees.
func rotationFor(id string, seed uint64) float64 {
	r := newRNG(hash(id, seed^0x5bd1e995))
	return (r.next()*2 - 1) * maxRotation
}

func hash(s string, seed uint64) uint64 {
	h := fnv.New64a()
	var b [8]byte
	for i := range b {
		b[i] = byte(seed >> (8 * i))
	}
	h.Write(b[:])
	h.Write([]byte(s))
	return h.Sum64()
}

// rng is a splitmix64 generator; small, fast and stable across Go releases.
type rng struct {
	state uint64
}

func newRNG(seed uint64) *rng {
	return &rng{state: seed}
}

// next returns a value in [0, 1).
func (r *rng) next() float64 {
	r.state += 0x9e3779b97f4a7c15
	z := r.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	z ^= z >> 31
	return float64(z>>11) / (1 << 53)
}
