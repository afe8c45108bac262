package corridor

import (
	"math"

	"github.com/ChicagoDave/campusgrid/pkg/geo"
	"github.com/ChicagoDave/campusgrid/pkg/topology"
)

// Network is the corridor skeleton of one building record.
type Network struct {
	Spine     []geo.Segment `json:"spine"`
	Corridors [][]geo.Point `json:"corridors"`
}

// BuildSpine links every sub-cell center to the walls it shares with its
// merged neighbours. An isolated sub-cell contributes a zero-length segment
// at its center. Each center-to-wall path is also stored on the adjacency.
func BuildSpine(topo topology.Topology, yDown bool) Network {
	var net Network
	for _, id := range topo.IDs() {
		sub := topo[id]
		center := sub.Center.Point
		if len(sub.Adjacent) == 0 {
			net.Spine = append(net.Spine, geo.Seg(center, center))
			continue
		}
		for _, nid := range sub.NeighborIDs() {
			adj := sub.Adjacent[nid]
			mid := adj.WallMid()
			path := geo.Simplify([]geo.Point{center, geo.Corner(center, mid, true, yDown), mid}, false)
			adj.PathToWall = path
			net.Spine = append(net.Spine, pathSegments(path)...)
			net.Corridors = append(net.Corridors, path)
		}
	}
	return net
}

// DeadEnds runs a corridor from each sub-cell center toward the grid edge on
// every side without a merged neighbour, stopping at the first outline wall.
func DeadEnds(topo topology.Topology, outline []geo.Segment, n int) [][]geo.Point {
	size := float64(n)
	var out [][]geo.Point
	for _, id := range topo.IDs() {
		sub := topo[id]
		c := sub.Center.Point
		cell := sub.Cell
		rays := []struct {
			neighbor int
			inGrid   bool
			end      geo.Point
		}{
			{cell.Y*n + cell.X - 1, cell.X > 0, geo.Pt(0, c.Y)},
			{cell.Y*n + cell.X + 1, cell.X < n-1, geo.Pt(size, c.Y)},
			{(cell.Y-1)*n + cell.X, cell.Y > 0, geo.Pt(c.X, 0)},
			{(cell.Y+1)*n + cell.X, cell.Y < n-1, geo.Pt(c.X, size)},
		}
		for _, r := range rays {
			if r.inGrid {
				if _, merged := sub.Adjacent[r.neighbor]; merged {
					continue
				}
			}
			if hit, ok := closestHit(c, r.end, outline); ok {
				out = append(out, []geo.Point{c, hit})
			}
		}
	}
	return out
}

func closestHit(from, to geo.Point, outline []geo.Segment) (geo.Point, bool) {
	best := math.Inf(1)
	var hit geo.Point
	for _, w := range outline {
		p, ok := geo.SegmentIntersection(from, to, w.A, w.B)
		if !ok {
			continue
		}
		if d := from.Distance(p); d > geo.Eps && d < best {
			best, hit = d, p
		}
	}
	return hit, !math.IsInf(best, 1)
}

// Build assembles the spine and dead ends of a record.
func Build(topo topology.Topology, outline []geo.Segment, gridSize int, yDown bool) Network {
	net := BuildSpine(topo, yDown)
	net.Corridors = append(net.Corridors, DeadEnds(topo, outline, gridSize)...)
	return net
}

func pathSegments(path []geo.Point) []geo.Segment {
	if len(path) == 1 {
		return []geo.Segment{geo.Seg(path[0], path[0])}
	}
	segs := make([]geo.Segment, 0, len(path)-1)
	for i := 0; i+1 < len(path); i++ {
		segs = append(segs, geo.Seg(path[i], path[i+1]))
	}
	return segs
}
