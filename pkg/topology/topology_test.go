package topology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChicagoDave/campusgrid/pkg/campus"
	"github.com/ChicagoDave/campusgrid/pkg/geo"
)

func square() []geo.Point {
	return []geo.Point{geo.Pt(0.9, 0.1), geo.Pt(0.1, 0.1), geo.Pt(0.1, 0.9), geo.Pt(0.9, 0.9)}
}

// mergedPair is two squares in cells (0,0) and (1,0) joined by a bridge.
func mergedPair() []geo.Point {
	return []geo.Point{
		geo.Pt(0.9, 0.1), geo.Pt(0.1, 0.1), geo.Pt(0.1, 0.9), geo.Pt(0.9, 0.9),
		geo.Pt(0.9, 0.82), geo.Pt(1.1, 0.82), geo.Pt(1.1, 0.9), geo.Pt(1.9, 0.9),
		geo.Pt(1.9, 0.1), geo.Pt(1.1, 0.1), geo.Pt(1.1, 0.18), geo.Pt(0.9, 0.18),
	}
}

func TestBuildSingleCell(t *testing.T) {
	topo, split := Build(square(), []campus.Cell{{X: 0, Y: 0}}, 5, 0.001)
	require.Len(t, topo, 1)
	assert.Len(t, split, 4)

	sub := topo[0]
	assert.Empty(t, sub.Adjacent)
	assert.Equal(t, MethodPole, sub.Center.Method)
	assert.InDelta(t, 0.5, sub.Center.Point.X, 0.01)
	assert.InDelta(t, 0.5, sub.Center.Point.Y, 0.01)
}

func TestBuildMergedPair(t *testing.T) {
	cells := []campus.Cell{{X: 0, Y: 0}, {X: 1, Y: 0}}
	topo, split := Build(mergedPair(), cells, 5, 0.001)
	require.Len(t, topo, 2)
	assert.Equal(t, []int{0, 1}, topo.IDs())
	assert.Len(t, split, 14)

	a, b := topo[0], topo[1]
	require.Len(t, a.Adjacent, 1)
	require.Len(t, b.Adjacent, 1)
	require.Contains(t, a.Adjacent, 1)
	require.Contains(t, b.Adjacent, 0)

	wall := a.Adjacent[1].Wall
	require.Len(t, wall, 2)
	assert.True(t, wall[0].Equal(geo.Pt(1, 0.18)))
	assert.True(t, wall[1].Equal(geo.Pt(1, 0.82)))
	assert.True(t, a.Adjacent[1].WallMid().Equal(geo.Pt(1, 0.5)))

	assert.Equal(t, MethodPole, a.Center.Method)
	assert.Equal(t, MethodPole, b.Center.Method)
	assert.Less(t, a.Center.Point.X, 1.0)
	assert.Greater(t, b.Center.Point.X, 1.0)
}

func TestPartitionKeepsOutlineOrder(t *testing.T) {
	split := InsertSplitPoints(mergedPair(), SplitPoints(mergedPair(), []campus.Cell{{X: 0}, {X: 1}}))
	part := Partition(split, campus.Cell{X: 1})
	require.Len(t, part, 8)
	assert.True(t, part[0].Equal(geo.Pt(1, 0.82)))
	assert.True(t, part[len(part)-1].Equal(geo.Pt(1, 0.18)))
	assert.True(t, geo.NewPolygon(part...).IsSimple())
}

func TestInsertSplitPointsSkipsExistingVertices(t *testing.T) {
	path := InsertSplitPoints(square(), []geo.Point{geo.Pt(0.9, 0.1), geo.Pt(0.5, 0.1), geo.Pt(0.3, 0.1)})
	require.Len(t, path, 6)
	assert.True(t, path[1].Equal(geo.Pt(0.5, 0.1)))
	assert.True(t, path[2].Equal(geo.Pt(0.3, 0.1)))
}

func TestCrossingsDeduplicatesVertexHits(t *testing.T) {
	// The outline has a vertex exactly on the edge.
	path := []geo.Point{geo.Pt(0.5, 0.2), geo.Pt(1, 0.5), geo.Pt(0.5, 0.8)}
	pts := Crossings(path, geo.Seg(geo.Pt(1, 0), geo.Pt(1, 1)))
	require.Len(t, pts, 1)
	assert.True(t, pts[0].Equal(geo.Pt(1, 0.5)))
}

func TestCenterOfFallback(t *testing.T) {
	c := CenterOf([]geo.Point{geo.Pt(0, 0), geo.Pt(1, 1)}, campus.Cell{}, 0.01)
	assert.Equal(t, MethodFallback, c.Method)
	assert.ErrorIs(t, c.Err, geo.ErrDegenerate)
	assert.True(t, c.Point.Equal(geo.Pt(0.5, 0.5)))

	c = CenterOf(nil, campus.Cell{X: 3, Y: 1}, 0.01)
	assert.Equal(t, MethodFallback, c.Method)
	assert.True(t, c.Point.Equal(geo.Pt(3.5, 1.5)))
}

func TestCenterOfSelfIntersecting(t *testing.T) {
	c := CenterOf([]geo.Point{geo.Pt(0, 0), geo.Pt(0.9, 0), geo.Pt(0, 0.3), geo.Pt(0.3, 0.3)}, campus.Cell{}, 0.01)
	assert.Equal(t, MethodFallback, c.Method)
	assert.ErrorIs(t, c.Err, geo.ErrSelfIntersecting)
	assert.True(t, c.Point.Equal(geo.Pt(0.3, 0.15)))
}

func TestTopologyAt(t *testing.T) {
	topo, _ := Build(mergedPair(), []campus.Cell{{X: 0}, {X: 1}}, 5, 0.01)
	assert.Equal(t, 1, topo.At(geo.Pt(1.5, 0.1)).ID)
	assert.Equal(t, 0, topo.At(geo.Pt(0.2, 0.5)).ID)
	assert.Equal(t, 1, topo.At(geo.Pt(3, 0.5)).ID)
}
