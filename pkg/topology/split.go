package topology

import (
	"sort"

	"github.com/ChicagoDave/campusgrid/pkg/campus"
	"github.com/ChicagoDave/campusgrid/pkg/geo"
)

type cellEdge struct {
	seg      geo.Segment
	neighbor campus.Cell
}

// cellEdges returns the left, right, up and down unit edges of c with the
// cell on the far side of each.
func cellEdges(c campus.Cell) [4]cellEdge {
	x, y := float64(c.X), float64(c.Y)
	return [4]cellEdge{
		{geo.Seg(geo.Pt(x, y), geo.Pt(x, y+1)), campus.Cell{X: c.X - 1, Y: c.Y}},
		{geo.Seg(geo.Pt(x+1, y), geo.Pt(x+1, y+1)), campus.Cell{X: c.X + 1, Y: c.Y}},
		{geo.Seg(geo.Pt(x, y), geo.Pt(x+1, y)), campus.Cell{X: c.X, Y: c.Y - 1}},
		{geo.Seg(geo.Pt(x, y+1), geo.Pt(x+1, y+1)), campus.Cell{X: c.X, Y: c.Y + 1}},
	}
}

// Crossings returns where the closed outline crosses edge, without
// duplicates and ordered from edge.A.
func Crossings(path []geo.Point, edge geo.Segment) []geo.Point {
	var pts []geo.Point
	for _, w := range geo.Walls(path) {
		if p, ok := w.Intersect(edge); ok {
			pts = appendUnique(pts, p)
		}
	}
	sort.Slice(pts, func(i, j int) bool {
		return geo.Project(pts[i], edge.A, edge.B) < geo.Project(pts[j], edge.A, edge.B)
	})
	return pts
}

// SplitPoints collects every crossing of the outline with the edges of the
// footprint cells.
func SplitPoints(path []geo.Point, cells []campus.Cell) []geo.Point {
	var pts []geo.Point
	for _, c := range cells {
		for _, e := range cellEdges(c) {
			for _, p := range Crossings(path, e.seg) {
				pts = appendUnique(pts, p)
			}
		}
	}
	return pts
}

// InsertSplitPoints returns a copy of path with each split point inserted
// into the wall it lies on. Points matching an existing vertex are skipped.
func InsertSplitPoints(path []geo.Point, split []geo.Point) []geo.Point {
	if len(path) < 2 {
		return append([]geo.Point(nil), path...)
	}
	out := make([]geo.Point, 0, len(path)+len(split))
	for i, w := range geo.Walls(path) {
		out = append(out, path[i])
		var on []geo.Point
		for _, p := range split {
			if w.DistanceTo(p) < geo.Eps && !p.Equal(w.A) && !p.Equal(w.B) {
				on = append(on, p)
			}
		}
		sort.Slice(on, func(a, b int) bool {
			return geo.Project(on[a], w.A, w.B) < geo.Project(on[b], w.A, w.B)
		})
		out = append(out, on...)
	}
	return out
}

func appendUnique(pts []geo.Point, p geo.Point) []geo.Point {
	for _, q := range pts {
		if q.Equal(p) {
			return pts
		}
	}
	return append(pts, p)
}
