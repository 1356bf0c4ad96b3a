package subsample

import (
	"errors"
	"testing"
)

func TestNewMassModel(t *testing.T) {
	type args struct {
		abundances []int64
		weighted   bool
	}
	tests := []struct {
		name      string
		args      args
		wantTotal uint64
		wantErr   error
	}{
		{
			"unweighted counts records",
			args{[]int64{5, 9, 0}, false},
			3,
			nil,
		},
		{
			"weighted sums abundances",
			args{[]int64{2, 3, 5}, true},
			10,
			nil,
		},
		{
			"empty collection",
			args{nil, true},
			0,
			nil,
		},
		{
			"zero abundance rejected when weighted",
			args{[]int64{2, 0, 5}, true},
			0,
			ErrInvalidAbundance,
		},
		{
			"negative abundance rejected when weighted",
			args{[]int64{2, -1, 5}, true},
			0,
			ErrInvalidAbundance,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMassModel(&stubCollection{abundances: tt.args.abundances}, tt.args.weighted)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NewMassModel() error = %v, want %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if m.Total() != tt.wantTotal {
				t.Errorf("Total() = %d, want %d", m.Total(), tt.wantTotal)
			}
		})
	}
}

func TestMassModel_Mass(t *testing.T) {
	abundances := []int64{2, 3, 5}

	unweighted := mustModel(t, abundances, false)
	for i := range abundances {
		if got := unweighted.Mass(i); got != 1 {
			t.Errorf("unweighted Mass(%d) = %d, want 1", i, got)
		}
	}

	weighted := mustModel(t, abundances, true)
	for i, ab := range abundances {
		if got := weighted.Mass(i); got != uint64(ab) {
			t.Errorf("weighted Mass(%d) = %d, want %d", i, got, ab)
		}
	}
}
