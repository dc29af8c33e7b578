package spatial

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/ant-colony/core"
	"github.com/lixenwraith/ant-colony/vmath"
)

func TestQueryRadiusAcrossBuckets(t *testing.T) {
	g := NewGrid(10)
	g.Insert(1, vmath.V2(0, 0))
	g.Insert(2, vmath.V2(-9, 0))
	g.Insert(3, vmath.V2(14, 14))
	g.Insert(4, vmath.V2(100, 100))

	got := g.QueryRadius(nil, vmath.V2(0, 0), 20)
	ids := make(map[core.Entity]bool)
	for _, e := range got {
		ids[e.Entity] = true
	}
	assert.Equal(t, map[core.Entity]bool{1: true, 2: true, 3: true}, ids)
}

func TestQueryRadiusInclusiveEdge(t *testing.T) {
	g := NewGrid(25)
	g.Insert(7, vmath.V2(25, 0))
	assert.Len(t, g.QueryRadius(nil, vmath.V2(0, 0), 25), 1)
	assert.Empty(t, g.QueryRadius(nil, vmath.V2(0, 0), 24.999))
}

func TestInsertDropsNaN(t *testing.T) {
	g := NewGrid(5)
	g.Insert(1, vmath.V2(math.NaN(), 0))
	assert.Equal(t, 0, g.Len())
	assert.Empty(t, g.QueryRadius(nil, vmath.V2(math.NaN(), 0), 10))
}

func TestClearAndNearest(t *testing.T) {
	g := NewGrid(5)
	g.Insert(1, vmath.V2(3, 0))
	g.Insert(2, vmath.V2(1, 0))
	g.Insert(3, vmath.V2(0, 0))

	n, ok := g.Nearest(vmath.V2(0, 0), 10, 3)
	require.True(t, ok)
	assert.Equal(t, core.Entity(2), n.Entity)

	g.Clear()
	assert.Equal(t, 0, g.Len())
	_, ok = g.Nearest(vmath.V2(0, 0), 10, 0)
	assert.False(t, ok)
}
