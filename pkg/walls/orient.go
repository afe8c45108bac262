package walls

import "github.com/ChicagoDave/campusgrid/pkg/geo"

// Orientation is the side of the building a door faces.
type Orientation string

const (
	OrientationNone Orientation = ""
	Up              Orientation = "up"
	Down            Orientation = "down"
	Left            Orientation = "left"
	Right           Orientation = "right"
)

// Orient decides which way a door faces with a parity ray cast. A probe
// point is taken just off the door toward +x (vertical walls) or +y
// (horizontal walls); the number of outline walls crossed by the ray from
// far outside the grid to the probe tells whether the probe is inside.
// An inside probe means the door faces the other way.
func Orient(p geo.Point, dir geo.Direction, outline []geo.Segment, gridSize int, probe float64, yDown bool) Orientation {
	far := geo.Pt(2*float64(gridSize), 2*float64(gridSize))

	var target geo.Point
	switch dir {
	case geo.DirectionVertical:
		target = p.Add(geo.Pt(probe, 0))
	case geo.DirectionHorizontal:
		target = p.Add(geo.Pt(0, probe))
	default:
		return OrientationNone
	}

	crossings := 0
	for _, w := range outline {
		if _, ok := geo.SegmentIntersection(far, target, w.A, w.B); ok {
			crossings++
		}
	}
	inside := crossings%2 == 1

	if dir == geo.DirectionVertical {
		if inside {
			return Left
		}
		return Right
	}
	// Probing +y: inside below the door means the door is on a top wall.
	top := inside
	if !yDown {
		top = !inside
	}
	if top {
		return Up
	}
	return Down
}

// Opposite returns the facing turned around.
func (o Orientation) Opposite() Orientation {
	switch o {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	}
	return OrientationNone
}
