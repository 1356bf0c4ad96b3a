package subsample

import (
	"math"
	"math/rand"
)

// Rand yields uniform random integers below a caller-supplied bound.
// The sampler draws once per population unit, so implementations must
// be unbiased across the full [0, bound) range
type Rand interface {
	// Uint64Below returns a uniformly distributed integer in [0, bound).
	// bound must be positive
	Uint64Below(bound uint64) uint64
}

// randSource wraps math/rand with rejection sampling so draws stay
// unbiased for bounds that are not powers of two
type randSource struct {
	rng *rand.Rand
}

// NewRand returns a seeded Rand for sampling. The same seed replays the
// same draw sequence
func NewRand(seed int64) Rand {
	return &randSource{rng: rand.New(rand.NewSource(seed))}
}

func (s *randSource) Uint64Below(bound uint64) uint64 {
	if bound == 0 {
		panic("subsample: zero bound for random draw")
	}

	// power of two: mask, no modulo bias possible
	if bound&(bound-1) == 0 {
		return s.rng.Uint64() & (bound - 1)
	}

	// reject draws from the partial final interval
	limit := math.MaxUint64 - math.MaxUint64%bound
	for {
		v := s.rng.Uint64()
		if v < limit {
			return v % bound
		}
	}
}
