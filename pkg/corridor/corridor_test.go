package corridor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChicagoDave/campusgrid/pkg/campus"
	"github.com/ChicagoDave/campusgrid/pkg/geo"
	"github.com/ChicagoDave/campusgrid/pkg/topology"
)

func square() []geo.Point {
	return []geo.Point{geo.Pt(0.9, 0.1), geo.Pt(0.1, 0.1), geo.Pt(0.1, 0.9), geo.Pt(0.9, 0.9)}
}

func mergedPair() []geo.Point {
	return []geo.Point{
		geo.Pt(0.9, 0.1), geo.Pt(0.1, 0.1), geo.Pt(0.1, 0.9), geo.Pt(0.9, 0.9),
		geo.Pt(0.9, 0.82), geo.Pt(1.1, 0.82), geo.Pt(1.1, 0.9), geo.Pt(1.9, 0.9),
		geo.Pt(1.9, 0.1), geo.Pt(1.1, 0.1), geo.Pt(1.1, 0.18), geo.Pt(0.9, 0.18),
	}
}

func TestBuildSpineIsolatedCell(t *testing.T) {
	topo, _ := topology.Build(square(), []campus.Cell{{}}, 5, 0.001)
	net := BuildSpine(topo, true)
	require.Len(t, net.Spine, 1)
	assert.InDelta(t, 0, net.Spine[0].Length(), 1e-9)
	assert.Empty(t, net.Corridors)
}

func TestBuildSpineMergedCells(t *testing.T) {
	topo, _ := topology.Build(mergedPair(), []campus.Cell{{X: 0}, {X: 1}}, 5, 0.001)
	net := BuildSpine(topo, true)
	require.Len(t, net.Corridors, 2)
	for _, id := range topo.IDs() {
		sub := topo[id]
		for _, nid := range sub.NeighborIDs() {
			path := sub.Adjacent[nid].PathToWall
			require.NotEmpty(t, path)
			assert.True(t, path[0].Equal(sub.Center.Point))
			assert.True(t, path[len(path)-1].Equal(geo.Pt(1, 0.5)))
			for i := 0; i+1 < len(path); i++ {
				assert.NotEqual(t, geo.DirectionNone, geo.Seg(path[i], path[i+1]).Direction())
			}
		}
	}
}

func TestDeadEndsIsolatedCell(t *testing.T) {
	topo, _ := topology.Build(square(), []campus.Cell{{}}, 5, 0.001)
	ends := DeadEnds(topo, geo.Walls(square()), 5)
	require.Len(t, ends, 4)
	want := []geo.Point{geo.Pt(0.1, 0.5), geo.Pt(0.9, 0.5), geo.Pt(0.5, 0.1), geo.Pt(0.5, 0.9)}
	for i, e := range ends {
		require.Len(t, e, 2)
		assert.InDelta(t, want[i].X, e[1].X, 0.01)
		assert.InDelta(t, want[i].Y, e[1].Y, 0.01)
	}
}

func TestDeadEndsSkipMergedSides(t *testing.T) {
	topo, _ := topology.Build(mergedPair(), []campus.Cell{{X: 0}, {X: 1}}, 5, 0.001)
	ends := DeadEnds(topo, geo.Walls(mergedPair()), 5)
	assert.Len(t, ends, 6)
	for _, e := range ends {
		assert.False(t, geo.Between(e[1].X, 0.9, 1.1), "dead end %v runs into the bridge", e)
	}
}

func TestBuildCombinesSpineAndDeadEnds(t *testing.T) {
	topo, _ := topology.Build(square(), []campus.Cell{{}}, 5, 0.001)
	net := Build(topo, geo.Walls(square()), 5, true)
	assert.Len(t, net.Spine, 1)
	assert.Len(t, net.Corridors, 4)
}

func TestExtension(t *testing.T) {
	c := geo.Pt(0.5, 0.5)
	assert.True(t, Extension(geo.Pt(0.9, 0.3), geo.DirectionVertical, c).Equal(geo.Pt(0.5, 0.3)))
	assert.True(t, Extension(geo.Pt(0.2, 0.9), geo.DirectionHorizontal, c).Equal(geo.Pt(0.2, 0.5)))
}

func TestExtensionQuadrants(t *testing.T) {
	c := geo.Pt(1.5, 1.5)
	cases := []struct {
		name string
		door geo.Point
		dir  geo.Direction
		want geo.Point
	}{
		{"vertical wall above center", geo.Pt(1.9, 1.2), geo.DirectionVertical, geo.Pt(1.5, 1.2)},
		{"vertical wall below center", geo.Pt(1.1, 1.8), geo.DirectionVertical, geo.Pt(1.5, 1.8)},
		{"horizontal wall left of center", geo.Pt(1.3, 1.1), geo.DirectionHorizontal, geo.Pt(1.3, 1.5)},
		{"horizontal wall right of center", geo.Pt(1.7, 1.9), geo.DirectionHorizontal, geo.Pt(1.7, 1.5)},
		{"clamped to the extension end", geo.Pt(2.9, 3.2), geo.DirectionVertical, geo.Pt(1.5, 2.5)},
		{"clamped on the left", geo.Pt(0.1, 1.9), geo.DirectionHorizontal, geo.Pt(0.5, 1.5)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Extension(tc.door, tc.dir, c)
			assert.True(t, got.Equal(tc.want), "got %v", got)
		})
	}
}

func TestDoorPathIsolatedCell(t *testing.T) {
	c := geo.Pt(0.5, 0.5)
	spine := []geo.Segment{geo.Seg(c, c)}

	path := DoorPath(geo.Pt(0.9, 0.3), geo.DirectionVertical, c, spine, true)
	require.Len(t, path, 3)
	assert.True(t, path[0].Equal(geo.Pt(0.9, 0.3)))
	assert.True(t, path[1].Equal(geo.Pt(0.5, 0.3)))
	assert.True(t, path[2].Equal(c))

	// A door level with the center walks straight in.
	path = DoorPath(geo.Pt(0.9, 0.5), geo.DirectionVertical, c, spine, true)
	require.Len(t, path, 2)
}

func TestDoorPathMeetsSpine(t *testing.T) {
	c := geo.Pt(0.5, 0.5)
	spine := []geo.Segment{geo.Seg(c, geo.Pt(1, 0.5))}
	path := DoorPath(geo.Pt(0.7, 0.9), geo.DirectionHorizontal, c, spine, true)
	require.Len(t, path, 2)
	assert.True(t, path[1].Equal(geo.Pt(0.7, 0.5)))
}

func TestDoorPathOffAxisSpinePoint(t *testing.T) {
	c := geo.Pt(0.5, 0.5)
	spine := []geo.Segment{geo.Seg(geo.Pt(0.4, 0.4), geo.Pt(0.4, 0.4))}
	path := DoorPath(geo.Pt(0.9, 0.3), geo.DirectionVertical, c, spine, true)
	require.Len(t, path, 3)
	assert.True(t, path[2].Equal(geo.Pt(0.4, 0.4)))
	for i := 0; i+1 < len(path); i++ {
		assert.NotEqual(t, geo.DirectionNone, geo.Seg(path[i], path[i+1]).Direction())
	}
}

func TestClosestOnSpineEmpty(t *testing.T) {
	_, ok := ClosestOnSpine(geo.Pt(0, 0), nil)
	assert.False(t, ok)
}
