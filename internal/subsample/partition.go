package subsample

// Emitter receives the partitioned records. Selected and discarded
// outputs are numbered independently, each starting at 1
type Emitter interface {
	// EmitSelected writes record i with count as its reported abundance
	EmitSelected(i int, count uint64, serial int) error

	// EmitDiscarded writes record i's unselected remainder
	EmitDiscarded(i int, count uint64, serial int) error
}

// Partition walks the records in their original order and hands each
// one's selected count, and its discarded complement, to the emitter.
// The pass is deterministic and independent of the sampling order.
// Returns the number of selected and discarded output records
func Partition(m *MassModel, selection []uint64, e Emitter) (selected, discarded int, err error) {
	for i := 0; i < m.Size(); i++ {
		sub := selection[i]
		rest := m.Mass(i) - sub

		if sub > 0 {
			selected++
			if err = e.EmitSelected(i, sub, selected); err != nil {
				return selected, discarded, err
			}
		}

		if rest > 0 {
			discarded++
			if err = e.EmitDiscarded(i, rest, discarded); err != nil {
				return selected, discarded, err
			}
		}
	}

	return selected, discarded, nil
}
