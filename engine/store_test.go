package engine

import (
	"sync"
	"testing"

	"github.com/lixenwraith/ant-colony/core"
)

type testComp struct {
	N int
}

func TestStoreSetGetRemove(t *testing.T) {
	s := NewStore[testComp]()
	s.Set(1, testComp{N: 1})
	s.Set(2, testComp{N: 2})
	s.Set(1, testComp{N: 10})

	if s.Count() != 2 {
		t.Fatalf("count = %d, want 2", s.Count())
	}
	if v, ok := s.Get(1); !ok || v.N != 10 {
		t.Errorf("Get(1) = %v, %v, want {10}, true", v, ok)
	}

	s.Remove(1)
	if s.Has(1) {
		t.Error("entity 1 still present after Remove")
	}
	if got := s.All(); len(got) != 1 || got[0] != 2 {
		t.Errorf("All() = %v, want [2]", got)
	}
}

func TestStoreRemovePreservesOrder(t *testing.T) {
	s := NewStore[testComp]()
	for e := core.Entity(1); e <= 5; e++ {
		s.Set(e, testComp{})
	}
	s.Remove(2)
	s.RemoveBatch([]core.Entity{4, 99})

	want := []core.Entity{1, 3, 5}
	got := s.All()
	if len(got) != len(want) {
		t.Fatalf("All() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("All() = %v, want %v", got, want)
		}
	}
}

func TestStoreUpdate(t *testing.T) {
	s := NewStore[testComp]()
	if s.Update(7, func(c *testComp) { c.N++ }) {
		t.Error("Update on missing entity reported success")
	}
	s.Set(7, testComp{N: 1})
	s.Update(7, func(c *testComp) { c.N++ })
	if v, _ := s.Get(7); v.N != 2 {
		t.Errorf("N = %d, want 2", v.N)
	}
}

func TestStoreConcurrentUpdates(t *testing.T) {
	s := NewStore[testComp]()
	const n = 64
	for e := core.Entity(1); e <= n; e++ {
		s.Set(e, testComp{})
	}

	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for e := core.Entity(1); e <= n; e++ {
				s.Update(e, func(c *testComp) { c.N++ })
			}
		}()
	}
	wg.Wait()

	for _, e := range s.All() {
		if v, _ := s.Get(e); v.N != 4 {
			t.Fatalf("entity %d N = %d, want 4", e, v.N)
		}
	}
}

func TestStoreClear(t *testing.T) {
	s := NewStore[testComp]()
	s.Set(1, testComp{})
	s.Clear()
	if s.Count() != 0 || s.Has(1) {
		t.Error("store not empty after Clear")
	}
}
