package scent

import (
	"math"

	"gonum.org/v1/gonum/spatial/kdtree"

	"github.com/lixenwraith/ant-colony/vmath"
)

type weightKind uint8

const (
	weightNone weightKind = iota
	weightCloser
	weightFurther
)

// Weighting filters query candidates by their distance to a reference point
// relative to the querying agent's own distance
type Weighting struct {
	kind weightKind
	ref  vmath.Vec2
}

// Unweighted keeps every candidate
func Unweighted() Weighting {
	return Weighting{}
}

// CloserTo keeps cells strictly closer to ref than the querying position
func CloserTo(ref vmath.Vec2) Weighting {
	return Weighting{kind: weightCloser, ref: ref}
}

// FurtherFrom keeps cells strictly further from ref than the querying position
func FurtherFrom(ref vmath.Vec2) Weighting {
	return Weighting{kind: weightFurther, ref: ref}
}

func (w Weighting) keep(cellPos, self vmath.Vec2) bool {
	switch w.kind {
	case weightCloser:
		return vmath.V2DistSq(cellPos, w.ref) < vmath.V2DistSq(self, w.ref)
	case weightFurther:
		return vmath.V2DistSq(cellPos, w.ref) > vmath.V2DistSq(self, w.ref)
	default:
		return true
	}
}

// WeightedTarget returns the strength-weighted centroid of indexed cells within radius of
// pos's cell, excluding that cell, that pass the weighting filter
// Returns false when nothing qualifies or the centroid is degenerate
func (f *Field) WeightedTarget(c Category, w Weighting, radius float64, pos vmath.Vec2) (vmath.Vec2, bool) {
	if !validCategory(c) || !pos.IsFinite() || !(radius > 0) {
		return vmath.Vec2{}, false
	}
	if w.kind != weightNone && !w.ref.IsFinite() {
		return vmath.Vec2{}, false
	}

	self := vmath.CellOf(pos)
	q := kdtree.Point{float64(self.X), float64(self.Y)}

	f.mu.RLock()
	defer f.mu.RUnlock()

	tree := f.index[c]
	if tree == nil || f.indexed[c] == 0 {
		return vmath.Vec2{}, false
	}

	// Point.Distance is squared Euclidean
	keeper := kdtree.NewDistKeeper(radius * radius)
	tree.NearestSet(keeper, q)

	m := f.cells[c]
	var sumV, sumX, sumY float64
	for _, hit := range keeper.Heap {
		p, ok := hit.Comparable.(kdtree.Point)
		if !ok || len(p) != 2 {
			continue
		}
		cell := vmath.Cell{X: int(p[0]), Y: int(p[1])}
		if cell == self {
			continue
		}
		v, live := m[cell]
		if !live || !(v > 0) {
			continue
		}
		cellPos := cell.Vec()
		if !w.keep(cellPos, pos) {
			continue
		}
		sumV += v
		sumX += v * cellPos.X
		sumY += v * cellPos.Y
	}

	if !(sumV > 0) || math.IsInf(sumV, 0) {
		return vmath.Vec2{}, false
	}
	target := vmath.V2(sumX/sumV, sumY/sumV)
	if !target.IsFinite() {
		return vmath.Vec2{}, false
	}
	return target, true
}
