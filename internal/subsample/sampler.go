package subsample

import (
	"github.com/pkg/errors"
)

// Sampler draws an exact, uniform sample without replacement from the
// population of mass units implied by a MassModel. It never materializes
// the population: one forward pass, O(record count) extra memory
type Sampler struct {
	// Rng supplies the uniform draws. Required
	Rng Rand

	// Progress, when set, is called after every visited population unit
	// with the number of units consumed so far
	Progress func(visited uint64)
}

// Sample selects exactly n of the model's Total() population units and
// returns the per-record count of selected units. The selection is a
// uniform random sample without replacement: every unit has probability
// n/Total() of being chosen. Fails with ErrOversample before visiting
// any unit if n exceeds the total mass
func (s *Sampler) Sample(m *MassModel, n uint64) ([]uint64, error) {
	if n > m.Total() {
		return nil, errors.Wrapf(ErrOversample, "requested %d of %d reads", n, m.Total())
	}

	selection := make([]uint64, m.Size())

	x := n              // selections still owed
	a := 0              // record being visited
	var r uint64        // population units visited so far
	var consumed uint64 // units consumed within record a

	var mass uint64 // mass of record a
	if m.Size() > 0 {
		mass = m.Mass(0)
	}

	// Each unit r is selected with probability x / (Total() - r): the
	// exact marginal for a without-replacement sample of the remaining
	// units. Selection becomes certain as the remainder shrinks to x,
	// so the loop always terminates with x == 0
	for x > 0 {
		u := s.Rng.Uint64Below(m.Total() - r)

		if u < x {
			selection[a]++
			x--
		}

		r++
		consumed++
		if consumed >= mass {
			a++
			consumed = 0
			if a < m.Size() {
				mass = m.Mass(a)
			}
		}

		if s.Progress != nil {
			s.Progress(r)
		}
	}

	return selection, nil
}
