package geo

import "math"

// Point is a position in grid units. Cell (x, y) spans [x, x+1] by
// [y, y+1] and y grows down the rows.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt builds a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }
func (p Point) Scale(k float64) Point { return Point{p.X * k, p.Y * k} }

// Dot and Cross treat p and q as vectors from the origin.
func (p Point) Dot(q Point) float64 { return p.X*q.X + p.Y*q.Y }
func (p Point) Cross(q Point) float64 { return p.X*q.Y - p.Y*q.X }

// Length is the vector's Euclidean norm.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Distance is the straight-line distance to q.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// Manhattan is the axis-aligned walking distance to q.
func (p Point) Manhattan(q Point) float64 {
	return math.Abs(p.X-q.X) + math.Abs(p.Y-q.Y)
}

// Lerp moves from p toward q by fraction t. t outside [0,1] extrapolates.
func (p Point) Lerp(q Point, t float64) Point {
	return p.Add(q.Sub(p).Scale(t))
}

// Unit returns the direction of p with length 1, or the zero vector for a
// degenerate p.
func (p Point) Unit() Point {
	if p.Dot(p) < degenerateSq {
		return Point{}
	}
	return p.Scale(1 / p.Length())
}

// MidPoint is halfway between p and q.
func MidPoint(p, q Point) Point {
	return p.Lerp(q, 0.5)
}

// Mean is the centroid of pts, or the zero point when there are none.
func Mean(pts []Point) Point {
	var sum Point
	for _, p := range pts {
		sum = sum.Add(p)
	}
	if len(pts) == 0 {
		return sum
	}
	return sum.Scale(1 / float64(len(pts)))
}
