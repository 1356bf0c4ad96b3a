package subsample

import (
	"time"

	"github.com/pkg/errors"
)

// Options are the sampling parameters gathered from the command line
type Options struct {
	// Weighted uses each record's size annotation as its read count.
	// Without it every record counts as a single read
	Weighted bool

	// Count is the absolute number of reads to sample
	Count uint64

	// Percent is the share of total reads to sample, in (0, 100].
	// Used only when ByPercent is set; the resulting count truncates
	Percent float64

	// ByPercent selects Percent over Count
	ByPercent bool

	// Rng overrides the default time-seeded generator. Tests inject
	// scripted draws here
	Rng Rand

	// Progress, when set, is forwarded to the sampler
	Progress func(visited uint64)
}

// Result summarizes a completed run
type Result struct {
	// Total reads in the input population
	Total uint64

	// Sampled reads actually selected
	Sampled uint64

	// Selected and Discarded count output records, not reads
	Selected  int
	Discarded int
}

// Target resolves the requested sample size against the population.
// Percentages convert by truncation, matching the behavior this tool
// replaces; 2.5% of 100 reads is 2 reads
func (o Options) Target(total uint64) uint64 {
	if o.ByPercent {
		return uint64(float64(total) * o.Percent / 100.0)
	}
	return o.Count
}

// Run draws the sample and partitions the collection through the
// emitter. All precondition failures surface before any output is
// written: either the emitter sees a complete, consistent partition
// or it sees nothing
func Run(col Collection, e Emitter, opts Options) (Result, error) {
	m, err := NewMassModel(col, opts.Weighted)
	if err != nil {
		return Result{}, err
	}

	n := opts.Target(m.Total())
	if n > m.Total() {
		return Result{}, errors.Wrapf(ErrOversample, "requested %d of %d reads", n, m.Total())
	}

	rng := opts.Rng
	if rng == nil {
		rng = NewRand(time.Now().UnixNano())
	}

	s := &Sampler{Rng: rng, Progress: opts.Progress}
	selection, err := s.Sample(m, n)
	if err != nil {
		return Result{}, err
	}

	selected, discarded, err := Partition(m, selection, e)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Total:     m.Total(),
		Sampled:   n,
		Selected:  selected,
		Discarded: discarded,
	}, nil
}
