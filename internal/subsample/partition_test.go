package subsample

import (
	"reflect"
	"testing"

	"github.com/pkg/errors"
)

// emitCall records one Emitter invocation for inspection
type emitCall struct {
	stream string
	index  int
	count  uint64
	serial int
}

// recordingEmitter collects every emission in order
type recordingEmitter struct {
	calls  []emitCall
	failOn string
}

func (e *recordingEmitter) EmitSelected(i int, count uint64, serial int) error {
	if e.failOn == "selected" {
		return errors.New("selected write failed")
	}
	e.calls = append(e.calls, emitCall{"selected", i, count, serial})
	return nil
}

func (e *recordingEmitter) EmitDiscarded(i int, count uint64, serial int) error {
	if e.failOn == "discarded" {
		return errors.New("discarded write failed")
	}
	e.calls = append(e.calls, emitCall{"discarded", i, count, serial})
	return nil
}

func TestPartition(t *testing.T) {
	m := mustModel(t, []int64{2, 3, 5}, true)

	e := &recordingEmitter{}
	selected, discarded, err := Partition(m, []uint64{0, 1, 3}, e)
	if err != nil {
		t.Fatalf("Partition() error = %v", err)
	}

	if selected != 2 || discarded != 3 {
		t.Errorf("Partition() = (%d, %d), want (2, 3)", selected, discarded)
	}

	want := []emitCall{
		{"discarded", 0, 2, 1},
		{"selected", 1, 1, 1},
		{"discarded", 1, 2, 2},
		{"selected", 2, 3, 2},
		{"discarded", 2, 2, 3},
	}
	if !reflect.DeepEqual(e.calls, want) {
		t.Errorf("Partition() emissions = %v, want %v", e.calls, want)
	}
}

func TestPartition_fullSelection(t *testing.T) {
	m := mustModel(t, []int64{2, 3, 5}, true)

	e := &recordingEmitter{}
	selected, discarded, err := Partition(m, []uint64{2, 3, 5}, e)
	if err != nil {
		t.Fatalf("Partition() error = %v", err)
	}

	if selected != 3 || discarded != 0 {
		t.Errorf("Partition() = (%d, %d), want (3, 0)", selected, discarded)
	}
	for _, call := range e.calls {
		if call.stream != "selected" {
			t.Errorf("unexpected %s emission with full selection", call.stream)
		}
	}
}

func TestPartition_unweightedSelection(t *testing.T) {
	m := mustModel(t, []int64{0, 0, 0}, false)

	e := &recordingEmitter{}
	if _, _, err := Partition(m, []uint64{1, 0, 1}, e); err != nil {
		t.Fatalf("Partition() error = %v", err)
	}

	want := []emitCall{
		{"selected", 0, 1, 1},
		{"discarded", 1, 1, 1},
		{"selected", 2, 1, 2},
	}
	if !reflect.DeepEqual(e.calls, want) {
		t.Errorf("Partition() emissions = %v, want %v", e.calls, want)
	}
}

func TestPartition_writeFailureStops(t *testing.T) {
	m := mustModel(t, []int64{2, 3, 5}, true)

	e := &recordingEmitter{failOn: "selected"}
	if _, _, err := Partition(m, []uint64{1, 1, 2}, e); err == nil {
		t.Error("Partition() error = nil, want write failure")
	}
}
