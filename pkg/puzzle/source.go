package puzzle

import "math/rand/v2"

// Source is the randomness consumed by a [Generator]. *rand.Rand from
// math/rand/v2 satisfies it.
type Source interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
	// IntN returns a value in [0, n).
	IntN(n int) int
}

// NewSource returns a PCG-backed source for seed. Equal seeds yield equal
// sequences.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
}
