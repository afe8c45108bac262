package corridor

import (
	"math"

	"github.com/ChicagoDave/campusgrid/pkg/geo"
)

// ClosestOnSpine returns the spine point nearest to p.
func ClosestOnSpine(p geo.Point, spine []geo.Segment) (geo.Point, bool) {
	best := math.Inf(1)
	var out geo.Point
	for _, s := range spine {
		q := s.ClosestPoint(p)
		if d := p.Distance(q); d < best {
			best, out = d, q
		}
	}
	return out, len(spine) > 0
}

// The four unit extensions of a sub-cell center, in grid units.
var (
	extUp    = geo.Pt(0, -1)
	extDown  = geo.Pt(0, 1)
	extLeft  = geo.Pt(-1, 0)
	extRight = geo.Pt(1, 0)
)

// Extension picks one of the four unit extensions of center by the door's
// quadrant and returns the point on it nearest the door. A door on a
// vertical wall leaves it horizontally, so it meets the up or down
// extension on its own side of the center; a door on a horizontal wall
// meets the left or right one. Doors beyond the extension clamp to its end.
func Extension(door geo.Point, dir geo.Direction, center geo.Point) geo.Point {
	var ray geo.Point
	switch {
	case dir == geo.DirectionVertical && door.Y < center.Y:
		ray = extUp
	case dir == geo.DirectionVertical:
		ray = extDown
	case door.X < center.X:
		ray = extLeft
	default:
		ray = extRight
	}
	return geo.Seg(center, center.Add(ray)).ClosestPoint(door)
}

// DoorPath connects a door to the spine. The path runs door, extension
// point, spine point nearest the door, so it always ends on the spine and
// the extension leg stays next to the door. A corner is added when the last
// leg would not be axis aligned.
func DoorPath(door geo.Point, dir geo.Direction, center geo.Point, spine []geo.Segment, yDown bool) []geo.Point {
	target, ok := ClosestOnSpine(door, spine)
	if !ok {
		target = center
	}
	if dir == geo.DirectionNone {
		return geo.Simplify(geo.Elbow(door, target, yDown), false)
	}
	ext := Extension(door, dir, center)
	path := []geo.Point{door, ext}
	if !geo.SameX(ext, target) && !geo.SameY(ext, target) {
		path = append(path, geo.Corner(ext, target, true, yDown))
	}
	path = append(path, target)
	return geo.Simplify(path, false)
}
