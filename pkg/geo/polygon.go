package geo

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Polygon is a closed ring of vertices; the last vertex joins the first.
type Polygon struct {
	Vertices []Point
}

// NewPolygon wraps a vertex list.
func NewPolygon(pts ...Point) Polygon {
	return Polygon{Vertices: pts}
}

// Walls returns the closed polygon's edges as consecutive segment pairs.
func (p Polygon) Walls() []Segment {
	return Walls(p.Vertices)
}

// Walls pairs each vertex of a closed path with its successor.
func Walls(path []Point) []Segment {
	if len(path) < 2 {
		return nil
	}
	walls := make([]Segment, len(path))
	for i, a := range path {
		walls[i] = Seg(a, path[(i+1)%len(path)])
	}
	return walls
}

// SignedArea is the shoelace sum of the walls' cross products. It is
// positive for counterclockwise winding in plane terms, so a ring that
// reads counterclockwise on a y-down screen comes out negative.
func (p Polygon) SignedArea() float64 {
	if len(p.Vertices) < 3 {
		return 0
	}
	sum := 0.0
	for _, w := range p.Walls() {
		sum += w.A.Cross(w.B)
	}
	return sum / 2
}

// Area returns the unsigned area.
func (p Polygon) Area() float64 {
	return math.Abs(p.SignedArea())
}

// BoundingBox returns the min and max corners.
func (p Polygon) BoundingBox() (Point, Point) {
	if len(p.Vertices) == 0 {
		return Point{}, Point{}
	}
	b := toRing(p.Vertices).Bound()
	return Pt(b.Min[0], b.Min[1]), Pt(b.Max[0], b.Max[1])
}

// Rect returns the bounding box corners in order: min, (max.X, min.Y), max,
// (min.X, max.Y).
func (p Polygon) Rect() [4]Point {
	mn, mx := p.BoundingBox()
	return [4]Point{mn, {X: mx.X, Y: mn.Y}, mx, {X: mn.X, Y: mx.Y}}
}

// Contains reports whether pt lies inside the polygon or on its boundary.
func (p Polygon) Contains(pt Point) bool {
	if len(p.Vertices) < 3 {
		return false
	}
	return planar.RingContains(toRing(p.Vertices), orb.Point{pt.X, pt.Y})
}

// Perimeter returns the summed wall length.
func (p Polygon) Perimeter() float64 {
	total := 0.0
	for _, w := range p.Walls() {
		total += w.Length()
	}
	return total
}

// IsSimple reports whether no two non-adjacent edges of the polygon touch
// or cross.
func (p Polygon) IsSimple() bool {
	walls := p.Walls()
	n := len(walls)
	if n < 3 {
		return false
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if j == i+1 || (i == 0 && j == n-1) {
				continue
			}
			if _, ok := walls[i].Intersect(walls[j]); ok {
				return false
			}
			if collinearOverlap(walls[i], walls[j]) {
				return false
			}
		}
	}
	return true
}

// collinearOverlap catches the parallel case SegmentIntersection leaves out:
// two axis-aligned edges on the same line sharing a stretch.
func collinearOverlap(a, b Segment) bool {
	switch {
	case a.Direction() == DirectionVertical && b.Direction() == DirectionVertical && Near(a.A.X, b.A.X):
		return spanOverlap(a.A.Y, a.B.Y, b.A.Y, b.B.Y)
	case a.Direction() == DirectionHorizontal && b.Direction() == DirectionHorizontal && Near(a.A.Y, b.A.Y):
		return spanOverlap(a.A.X, a.B.X, b.A.X, b.B.X)
	}
	return false
}

func spanOverlap(a1, a2, b1, b2 float64) bool {
	return math.Min(math.Max(a1, a2), math.Max(b1, b2)) > math.Max(math.Min(a1, a2), math.Min(b1, b2))-Eps
}
