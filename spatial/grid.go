// Package spatial is a uniform bucket grid answering "entities within R of P" over an unbounded plane
package spatial

import (
	"math"

	"github.com/lixenwraith/ant-colony/core"
	"github.com/lixenwraith/ant-colony/vmath"
)

// Entry is an indexed entity and the position it was inserted at
type Entry struct {
	Entity   core.Entity
	Position vmath.Vec2
}

type bucket struct {
	x, y int
}

// Grid buckets entries by floor(position / cellSize)
// Not safe for concurrent mutation; concurrent queries after a rebuild are safe
type Grid struct {
	cellSize float64
	cells    map[bucket][]Entry
	count    int
}

// NewGrid creates an empty grid, non-positive cellSize falls back to 1
func NewGrid(cellSize float64) *Grid {
	if !(cellSize > 0) {
		cellSize = 1
	}
	return &Grid{
		cellSize: cellSize,
		cells:    make(map[bucket][]Entry),
	}
}

func (g *Grid) bucketOf(p vmath.Vec2) bucket {
	return bucket{
		x: int(math.Floor(p.X / g.cellSize)),
		y: int(math.Floor(p.Y / g.cellSize)),
	}
}

// Clear empties every bucket, keeping allocated slices
func (g *Grid) Clear() {
	for k, v := range g.cells {
		g.cells[k] = v[:0]
	}
	g.count = 0
}

// Insert adds an entity at p; non-finite positions are dropped
func (g *Grid) Insert(e core.Entity, p vmath.Vec2) {
	if !p.IsFinite() {
		return
	}
	b := g.bucketOf(p)
	g.cells[b] = append(g.cells[b], Entry{Entity: e, Position: p})
	g.count++
}

// Len returns the number of indexed entries
func (g *Grid) Len() int {
	return g.count
}

// QueryRadius appends every entry within radius of p to dst and returns it
// Entries exactly at distance radius are included
func (g *Grid) QueryRadius(dst []Entry, p vmath.Vec2, radius float64) []Entry {
	if !p.IsFinite() || !(radius >= 0) || math.IsInf(radius, 1) {
		return dst
	}

	minB := g.bucketOf(vmath.V2(p.X-radius, p.Y-radius))
	maxB := g.bucketOf(vmath.V2(p.X+radius, p.Y+radius))
	radiusSq := radius * radius

	for by := minB.y; by <= maxB.y; by++ {
		for bx := minB.x; bx <= maxB.x; bx++ {
			for _, en := range g.cells[bucket{bx, by}] {
				if vmath.V2DistSq(en.Position, p) <= radiusSq {
					dst = append(dst, en)
				}
			}
		}
	}
	return dst
}

// Nearest returns the closest entry within radius, ok false if none
func (g *Grid) Nearest(p vmath.Vec2, radius float64, exclude core.Entity) (Entry, bool) {
	var best Entry
	bestSq := math.Inf(1)
	found := false
	for _, en := range g.QueryRadius(nil, p, radius) {
		if en.Entity == exclude {
			continue
		}
		if d := vmath.V2DistSq(en.Position, p); d < bestSq {
			best, bestSq, found = en, d, true
		}
	}
	return best, found
}

// Each visits every entry in unspecified order
func (g *Grid) Each(fn func(Entry)) {
	for _, v := range g.cells {
		for _, en := range v {
			fn(en)
		}
	}
}
