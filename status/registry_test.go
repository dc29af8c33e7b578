package status

import (
	"slices"
	"sync"
	"testing"
)

func TestMetricMapStablePointers(t *testing.T) {
	r := NewRegistry()
	a := r.Ints.Get(KeyAntsTotal)
	b := r.Ints.Get(KeyAntsTotal)
	if a != b {
		t.Fatal("Get returned different pointers for one key")
	}

	a.Store(12)
	if got := r.Int(KeyAntsTotal); got != 12 {
		t.Errorf("Int = %d, want 12", got)
	}
	if got := r.Int("missing"); got != 0 {
		t.Errorf("missing = %d, want 0", got)
	}
	if r.Ints.Has("missing") {
		t.Error("Int must not register keys")
	}
}

func TestAtomicFloatConcurrentAdd(t *testing.T) {
	var f AtomicFloat
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				f.Add(0.5)
			}
		}()
	}
	wg.Wait()
	if got := f.Get(); got != 4000.0 {
		t.Errorf("sum = %v, want 4000", got)
	}
}

func TestSnapshotOrdered(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get(KeyTicks).Store(3)
	r.Ints.Get(KeyAntsIdle).Store(1)
	r.Floats.Get(KeyTickMs).Set(1.234)

	want := []Metric{
		{Key: KeyAntsIdle, Value: "1"},
		{Key: KeyTicks, Value: "3"},
		{Key: KeyTickMs, Value: "1.23"},
	}
	if snap := r.Snapshot(); !slices.Equal(snap, want) {
		t.Errorf("snapshot = %v, want %v", snap, want)
	}
}
