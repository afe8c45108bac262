package topology

import (
	"sort"

	"github.com/ChicagoDave/campusgrid/pkg/campus"
	"github.com/ChicagoDave/campusgrid/pkg/geo"
)

// Method records how a sub-cell center was found.
type Method string

const (
	MethodPole     Method = "pole"
	MethodFallback Method = "fallback"
)

// Center is an interior point of a sub-cell. Err holds the reason a
// fallback was taken.
type Center struct {
	Point  geo.Point `json:"point"`
	Method Method    `json:"method"`
	Err    error     `json:"-"`
}

// Adjacent is the connection from a sub-cell to a neighbouring cell of the
// same footprint. Wall holds the outline crossings on the shared cell edge.
type Adjacent struct {
	Wall       []geo.Point `json:"wall"`
	PathToWall []geo.Point `json:"path_to_wall,omitempty"`
}

// WallMid is the middle of the crossings on the shared edge.
func (a *Adjacent) WallMid() geo.Point {
	return geo.Mean(a.Wall)
}

// SubCell is one grid cell of a footprint.
type SubCell struct {
	ID        int               `json:"id"`
	Cell      campus.Cell       `json:"cell"`
	Center    Center            `json:"center"`
	Partition []geo.Point       `json:"partition"`
	Adjacent  map[int]*Adjacent `json:"adjacent_cells"`
}

// NeighborIDs returns the adjacent cell ids in ascending order.
func (s *SubCell) NeighborIDs() []int {
	ids := make([]int, 0, len(s.Adjacent))
	for id := range s.Adjacent {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Topology maps flat cell ids to the sub-cells of one footprint.
type Topology map[int]*SubCell

// IDs returns the sub-cell ids in ascending order.
func (t Topology) IDs() []int {
	ids := make([]int, 0, len(t))
	for id := range t {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// At returns the sub-cell whose square contains p, falling back to the one
// with the nearest center.
func (t Topology) At(p geo.Point) *SubCell {
	var nearest *SubCell
	best := 0.0
	for _, id := range t.IDs() {
		s := t[id]
		if inCell(p, s.Cell) {
			return s
		}
		if d := p.Distance(s.Center.Point); nearest == nil || d < best {
			nearest, best = s, d
		}
	}
	return nearest
}

// Build derives the sub-cell topology of a footprint from its outline.
// Split points are inserted into a copy of the outline before it is
// partitioned per cell; the returned path is that copy.
func Build(path []geo.Point, cells []campus.Cell, n int, precision float64) (Topology, []geo.Point) {
	split := InsertSplitPoints(path, SplitPoints(path, cells))

	inFootprint := make(map[campus.Cell]bool, len(cells))
	for _, c := range cells {
		inFootprint[c] = true
	}

	topo := make(Topology, len(cells))
	for _, c := range cells {
		sub := &SubCell{
			ID:        c.ID(n),
			Cell:      c,
			Partition: Partition(split, c),
			Adjacent:  make(map[int]*Adjacent),
		}
		sub.Center = CenterOf(sub.Partition, c, precision)
		for _, e := range cellEdges(c) {
			if !inFootprint[e.neighbor] {
				continue
			}
			if pts := Crossings(path, e.seg); len(pts) > 0 {
				sub.Adjacent[e.neighbor.ID(n)] = &Adjacent{Wall: pts}
			}
		}
		topo[sub.ID] = sub
	}
	return topo, split
}

// CenterOf finds the pole of inaccessibility of a partial outline. A ring
// the search cannot handle falls back to the mean of its vertices, or to
// the cell center when the partition is empty.
func CenterOf(partial []geo.Point, cell campus.Cell, precision float64) Center {
	p, err := geo.PoleOfInaccessibility(partial, precision)
	if err == nil {
		return Center{Point: p, Method: MethodPole}
	}
	if len(partial) == 0 {
		return Center{Point: cell.Center(), Method: MethodFallback, Err: err}
	}
	return Center{Point: geo.Mean(partial), Method: MethodFallback, Err: err}
}

// Partition returns the outline vertices lying in the closed square of cell,
// in outline order.
func Partition(path []geo.Point, cell campus.Cell) []geo.Point {
	var out []geo.Point
	for _, p := range path {
		if inCell(p, cell) {
			out = append(out, p)
		}
	}
	return out
}

func inCell(p geo.Point, c campus.Cell) bool {
	return p.X >= float64(c.X)-geo.Eps && p.X <= float64(c.X+1)+geo.Eps &&
		p.Y >= float64(c.Y)-geo.Eps && p.Y <= float64(c.Y+1)+geo.Eps
}
