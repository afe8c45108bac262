package geo

import "math"

// Eps is the tolerance used for every structural comparison in the engine:
// point equality, axis alignment and on-segment tests. Set it through
// SetTolerance.
var Eps = 1e-4

const (
	// degenerateSq is the squared length below which a vector or a cross
	// product is treated as zero.
	degenerateSq = 1e-12

	// paramSlack widens the [0,1] parameter range of segment intersection
	// so crossings at shared endpoints survive rounding.
	paramSlack = 1e-9
)

// SetTolerance replaces Eps. Non-positive values are ignored.
func SetTolerance(v float64) {
	if v > 0 {
		Eps = v
	}
}

// Tolerance returns the current Eps.
func Tolerance() float64 {
	return Eps
}

// Near reports whether a and b differ by less than Eps.
func Near(a, b float64) bool {
	return math.Abs(a-b) < Eps
}

// Zero reports whether v is within Eps of zero.
func Zero(v float64) bool {
	return math.Abs(v) < Eps
}

// Between reports whether v lies strictly between lo and hi (in either order),
// outside of the Eps band around both ends.
func Between(v, lo, hi float64) bool {
	if lo > hi {
		lo, hi = hi, lo
	}
	return v > lo+Eps && v < hi-Eps
}

// Equal reports whether p and q coincide within Eps on both axes.
func (p Point) Equal(q Point) bool {
	return Near(p.X, q.X) && Near(p.Y, q.Y)
}

// SameX reports whether p and q share an x coordinate within Eps.
func SameX(p, q Point) bool {
	return Near(p.X, q.X)
}

// SameY reports whether p and q share a y coordinate within Eps.
func SameY(p, q Point) bool {
	return Near(p.Y, q.Y)
}

// AxisCollinear reports whether a, b and c lie on one vertical or one
// horizontal line. Diagonal runs are not detected.
func AxisCollinear(a, b, c Point) bool {
	return (SameX(a, b) && SameX(b, c)) || (SameY(a, b) && SameY(b, c))
}
