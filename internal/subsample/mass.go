// Package subsample selects an exact number of reads, uniformly at random
// and without replacement, from a weighted collection of sequence records.
package subsample

import (
	"github.com/pkg/errors"
)

var (
	// ErrInvalidAbundance is returned when weighted sampling is requested
	// but a record carries a non-positive abundance
	ErrInvalidAbundance = errors.New("invalid abundance: every record needs a positive size annotation")

	// ErrOversample is returned when the requested sample size exceeds
	// the total number of reads in the collection
	ErrOversample = errors.New("cannot subsample more reads than in the original sample")
)

// Collection is a read-only, randomly indexable set of sequence records.
// Implementations guarantee the collection does not change while a
// sample is being drawn
type Collection interface {
	// Size is the number of records in the collection
	Size() int

	// Abundance is the weight of the ith record. Zero means the record
	// carries no abundance annotation
	Abundance(i int) int64
}

// MassModel maps each record of a collection to its mass: the record's
// abundance when weighted, 1 otherwise. The total mass is the size of
// the population the sampler draws from
type MassModel struct {
	col      Collection
	weighted bool
	total    uint64
}

// NewMassModel derives the total mass of a collection. In weighted mode
// every record must have a positive abundance
func NewMassModel(col Collection, weighted bool) (*MassModel, error) {
	m := &MassModel{col: col, weighted: weighted}

	if !weighted {
		m.total = uint64(col.Size())
		return m, nil
	}

	for i := 0; i < col.Size(); i++ {
		ab := col.Abundance(i)
		if ab <= 0 {
			return nil, errors.Wrapf(ErrInvalidAbundance, "record %d has abundance %d", i, ab)
		}
		m.total += uint64(ab)
	}

	return m, nil
}

// Total is the population size: the sum of every record's mass
func (m *MassModel) Total() uint64 {
	return m.total
}

// Mass is the number of population units owned by the ith record
func (m *MassModel) Mass(i int) uint64 {
	if !m.weighted {
		return 1
	}
	return uint64(m.col.Abundance(i))
}

// Size is the number of records in the underlying collection
func (m *MassModel) Size() int {
	return m.col.Size()
}

// Weighted reports whether masses come from abundance annotations
func (m *MassModel) Weighted() bool {
	return m.weighted
}
