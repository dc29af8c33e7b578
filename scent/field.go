// Package scent implements the decaying pheromone field ants deposit into and steer by
//
// Deposits land in a sparse per-category map immediately; radius queries read a kd-tree
// snapshot of the map's key set that is only rebuilt by Reindex/Maintain. Cells deposited since
// the last rebuild are invisible to queries until the next one
package scent

import (
	"cmp"
	"math"
	"slices"
	"sync"

	"gonum.org/v1/gonum/spatial/kdtree"

	"github.com/lixenwraith/ant-colony/vmath"
)

// Category selects one of the independent scent fields
type Category int

const (
	// AntSmell is laid by every ant, a trail-of-self that leads home
	AntSmell Category = iota
	// FoundFoodSmell is laid by foragers carrying food, a trail that leads to food
	FoundFoodSmell

	CategoryCount
)

func (c Category) String() string {
	switch c {
	case AntSmell:
		return "ant"
	case FoundFoodSmell:
		return "food"
	default:
		return "unknown"
	}
}

// Field is the shared scent state of one simulation
// Deposits take the write lock, queries the read lock; Maintain is exclusive
type Field struct {
	mu    sync.RWMutex
	cells [CategoryCount]map[vmath.Cell]float64
	index [CategoryCount]*kdtree.Tree
	// indexed tracks snapshot sizes so empty trees are never searched
	indexed [CategoryCount]int
}

// NewField creates an empty field with empty indices
func NewField() *Field {
	f := &Field{}
	for c := range f.cells {
		f.cells[c] = make(map[vmath.Cell]float64)
	}
	return f
}

func validCategory(c Category) bool {
	return c >= 0 && c < CategoryCount
}

// Deposit adds strength at the cell containing pos, capped at maxStrength
// NaN, non-positive strength, or a non-finite position is ignored
func (f *Field) Deposit(c Category, pos vmath.Vec2, strength, maxStrength float64) {
	if !validCategory(c) || !pos.IsFinite() {
		return
	}
	if !(strength > 0) || !(maxStrength > 0) || math.IsInf(strength, 0) {
		return
	}

	cell := vmath.CellOf(pos)

	f.mu.Lock()
	defer f.mu.Unlock()

	m := f.cells[c]
	if v, ok := m[cell]; ok {
		m[cell] = math.Min(v+strength, maxStrength)
		return
	}
	m[cell] = math.Min(strength, maxStrength)
}

// Decay subtracts rate from every cell of every category, flooring at zero
func (f *Field) Decay(rate float64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.decayLocked(rate)
}

func (f *Field) decayLocked(rate float64) {
	if !(rate > 0) {
		return
	}
	for _, m := range f.cells {
		for cell, v := range m {
			m[cell] = math.Max(v-rate, 0)
		}
	}
}

// Cull removes every cell that is zero, negative, or NaN
func (f *Field) Cull() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cullLocked()
}

func (f *Field) cullLocked() {
	for _, m := range f.cells {
		for cell, v := range m {
			if !(v > 0) {
				delete(m, cell)
			}
		}
	}
}

// Reindex rebuilds every category's spatial index from its current key set
func (f *Field) Reindex() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reindexLocked()
}

func (f *Field) reindexLocked() {
	for c, m := range f.cells {
		if len(m) == 0 {
			f.index[c] = nil
			f.indexed[c] = 0
			continue
		}
		keys := make([]vmath.Cell, 0, len(m))
		for cell := range m {
			keys = append(keys, cell)
		}
		// Stable build order keeps query summation deterministic for a given seed
		slices.SortFunc(keys, func(a, b vmath.Cell) int {
			if a.X != b.X {
				return cmp.Compare(a.X, b.X)
			}
			return cmp.Compare(a.Y, b.Y)
		})
		pts := make(kdtree.Points, len(keys))
		for i, cell := range keys {
			pts[i] = kdtree.Point{float64(cell.X), float64(cell.Y)}
		}
		f.index[c] = kdtree.New(pts, false)
		f.indexed[c] = len(pts)
	}
}

// Maintain runs decay, cull and reindex as one exclusive step
func (f *Field) Maintain(rate float64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.decayLocked(rate)
	f.cullLocked()
	f.reindexLocked()
}

// Clear drops all cells and indices
func (f *Field) Clear() {
	f.mu.Lock()
	defer f.mu.Unlock()
	for c := range f.cells {
		f.cells[c] = make(map[vmath.Cell]float64)
		f.index[c] = nil
		f.indexed[c] = 0
	}
}

// Value returns the stored strength of a cell
func (f *Field) Value(c Category, cell vmath.Cell) (float64, bool) {
	if !validCategory(c) {
		return 0, false
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	v, ok := f.cells[c][cell]
	return v, ok
}

// Len returns the number of live cells in a category
func (f *Field) Len(c Category) int {
	if !validCategory(c) {
		return 0
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.cells[c])
}

// IndexedLen returns the number of cells in the category's last index snapshot
func (f *Field) IndexedLen(c Category) int {
	if !validCategory(c) {
		return 0
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.indexed[c]
}

// Cells calls fn for every cell in a category under the read lock
// fn must not call back into the field
func (f *Field) Cells(c Category, fn func(cell vmath.Cell, v float64)) {
	if !validCategory(c) {
		return
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	for cell, v := range f.cells[c] {
		fn(cell, v)
	}
}
