package geo

// cutoutWeight places the notch point between the two doors of a cutout.
const cutoutWeight = 0.5

// Corner returns the right-angle corner joining p1 and p2, one of
// (p1.X, p2.Y) or (p2.X, p1.Y). The points are taken to run counter-clockwise
// around the shape as displayed; with yDown that is clockwise in plane terms.
// A convex corner lies outside the chord p1->p2, a concave one inside.
func Corner(p1, p2 Point, convex, yDown bool) Point {
	c1 := Point{X: p1.X, Y: p2.Y}
	c2 := Point{X: p2.X, Y: p1.Y}
	side := p2.Sub(p1).Cross(c1.Sub(p1))
	if Zero(side) {
		return c1
	}
	outward := -1.0
	if yDown {
		outward = 1.0
	}
	if (side*outward > 0) == convex {
		return c1
	}
	return c2
}

// CutoutCorner returns a three point notch between p1 and p2: a corner of
// the requested convexity to the weighted midpoint, the midpoint itself, and
// a corner of the opposite convexity on to p2.
func CutoutCorner(p1, p2 Point, convex, yDown bool) []Point {
	m := p1.Lerp(p2, cutoutWeight)
	return []Point{
		Corner(p1, m, convex, yDown),
		m,
		Corner(m, p2, !convex, yDown),
	}
}

// Elbow returns the axis-aligned route from p1 to p2 through one corner.
// Aligned points need no corner and come back as a two point path.
func Elbow(p1, p2 Point, yDown bool) []Point {
	if SameX(p1, p2) || SameY(p1, p2) {
		return []Point{p1, p2}
	}
	return []Point{p1, Corner(p1, p2, true, yDown), p2}
}
