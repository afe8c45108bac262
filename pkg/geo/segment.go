package geo

import "math"

// Direction classifies the axis a wall runs along.
type Direction string

const (
	DirectionNone       Direction = "none"
	DirectionVertical   Direction = "vertical"
	DirectionHorizontal Direction = "horizontal"
)

// Segment is a straight wall or corridor piece from A to B.
type Segment struct {
	A Point `json:"a"`
	B Point `json:"b"`
}

// Seg is a shorthand constructor for Segment.
func Seg(a, b Point) Segment {
	return Segment{A: a, B: b}
}

// Length returns the segment length.
func (s Segment) Length() float64 {
	return s.A.Distance(s.B)
}

// Midpoint returns the point halfway along the segment.
func (s Segment) Midpoint() Point {
	return MidPoint(s.A, s.B)
}

// Direction reports whether the endpoints share an x (vertical) or a y
// (horizontal) coordinate. Degenerate segments report vertical.
func (s Segment) Direction() Direction {
	switch {
	case SameX(s.A, s.B):
		return DirectionVertical
	case SameY(s.A, s.B):
		return DirectionHorizontal
	default:
		return DirectionNone
	}
}

// Reverse returns the segment running from B to A.
func (s Segment) Reverse() Segment {
	return Segment{A: s.B, B: s.A}
}

// ClosestPoint returns the point on the segment nearest to p.
func (s Segment) ClosestPoint(p Point) Point {
	return ClosestPointOnSegment(p, s.A, s.B)
}

// DistanceTo returns the distance from p to the nearest point of the segment.
func (s Segment) DistanceTo(p Point) float64 {
	return p.Distance(s.ClosestPoint(p))
}

// ClosestPointOnSegment returns the point of segment a-b nearest to p.
func ClosestPointOnSegment(p, a, b Point) Point {
	return ClosestPointOnSegmentRange(p, a, b, 0, 1)
}

// ClosestPointOnSegmentRange projects p onto the line through a and b and
// clamps the parameter to [t1, t2], where t=0 is a and t=1 is b.
func ClosestPointOnSegmentRange(p, a, b Point, t1, t2 float64) Point {
	d := b.Sub(a)
	lenSq := d.Dot(d)
	if lenSq < degenerateSq {
		return a
	}
	t := p.Sub(a).Dot(d) / lenSq
	t = math.Max(t1, math.Min(t2, t))
	return a.Lerp(b, t)
}

// Project returns the parameter t of p's projection on the line a-b.
func Project(p, a, b Point) float64 {
	d := b.Sub(a)
	lenSq := d.Dot(d)
	if lenSq < degenerateSq {
		return 0
	}
	return p.Sub(a).Dot(d) / lenSq
}

// SegmentIntersection returns the crossing point of segments a1-a2 and
// b1-b2. It reports false for parallel segments, overlapping collinear
// segments included, and when either parametric solution leaves [0,1].
func SegmentIntersection(a1, a2, b1, b2 Point) (Point, bool) {
	r := a2.Sub(a1)
	s := b2.Sub(b1)
	denom := r.Cross(s)
	if math.Abs(denom) < degenerateSq {
		return Point{}, false
	}
	qp := b1.Sub(a1)
	t := qp.Cross(s) / denom
	u := qp.Cross(r) / denom
	if t < -paramSlack || t > 1+paramSlack || u < -paramSlack || u > 1+paramSlack {
		return Point{}, false
	}
	return a1.Add(r.Scale(t)), true
}

// Intersect is SegmentIntersection on two Segment values.
func (s Segment) Intersect(o Segment) (Point, bool) {
	return SegmentIntersection(s.A, s.B, o.A, o.B)
}
