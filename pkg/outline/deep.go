package outline

import (
	"math"

	"github.com/ChicagoDave/campusgrid/pkg/campus"
	"github.com/ChicagoDave/campusgrid/pkg/geo"
)

// Axis names the coordinate a deep door pokes out along.
type Axis int

const (
	AxisNone Axis = iota
	AxisX
	AxisY
)

// minDeepDoors is the door count below which the deep-door passes are
// skipped. A triangle cannot fold back on itself.
const minDeepDoors = 4

// IsDeep reports whether d sits strictly between the anchor and both of
// its perimeter neighbours on one axis. X is tested before Y.
func IsDeep(prev, d, next, anchor geo.Point) (Axis, bool) {
	if geo.Between(d.X, anchor.X, prev.X) && geo.Between(d.X, anchor.X, next.X) {
		return AxisX, true
	}
	if geo.Between(d.Y, anchor.Y, prev.Y) && geo.Between(d.Y, anchor.Y, next.Y) {
		return AxisY, true
	}
	return AxisNone, false
}

// UpdateDeepDoors clamps every deep door onto the nearer of its two
// neighbours' values on the deep axis. Doors are visited in slice order and
// each clamp is visible to the next test. It returns the ids of the moved
// doors; buildings with fewer than four doors are left alone.
func UpdateDeepDoors(doors []campus.Door, anchor geo.Point) []int {
	n := len(doors)
	if n < minDeepDoors {
		return nil
	}
	var moved []int
	for i := range doors {
		prev := doors[(i-1+n)%n].Point()
		next := doors[(i+1)%n].Point()
		axis, deep := IsDeep(prev, doors[i].Point(), next, anchor)
		if !deep {
			continue
		}
		switch axis {
		case AxisX:
			doors[i].X = nearer(doors[i].X, prev.X, next.X)
		case AxisY:
			doors[i].Y = nearer(doors[i].Y, prev.Y, next.Y)
		}
		moved = append(moved, doors[i].ID)
	}
	return moved
}

func nearer(v, a, b float64) float64 {
	if math.Abs(a-v) <= math.Abs(b-v) {
		return a
	}
	return b
}
