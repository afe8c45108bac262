package walls

import (
	"math"

	"github.com/ChicagoDave/campusgrid/pkg/geo"
)

// Wall is an effective wall: an outline wall pulled back from its corners.
// Source is the index of the outline wall it came from.
type Wall struct {
	geo.Segment
	Source int `json:"source"`
}

// Dims are the rendered sizes that decide which walls can hold a door.
type Dims struct {
	DoorLength     float64
	BuildingStroke float64
	DoorStroke     float64
}

// Inset is how far each end of an effective wall is pulled in.
func (d Dims) Inset() float64 {
	return (d.DoorLength + d.BuildingStroke + d.DoorStroke) / 2
}

// Effective derives the door-placement walls from the outline walls. Walls
// shorter than a door are dropped; the others are inset at both ends, never
// past their own midpoint.
func Effective(outline []geo.Segment, d Dims) []Wall {
	inset := d.Inset()
	out := make([]Wall, 0, len(outline))
	for i, w := range outline {
		length := w.Length()
		if length < d.DoorLength {
			continue
		}
		t := math.Min(inset/length, 0.5)
		out = append(out, Wall{
			Segment: geo.Seg(w.A.Lerp(w.B, t), w.A.Lerp(w.B, 1-t)),
			Source:  i,
		})
	}
	return out
}

// Placement is where a door ended up after snapping.
type Placement struct {
	Point     geo.Point     `json:"point"`
	Direction geo.Direction `json:"direction"`
	Wall      geo.Segment   `json:"wall"`
	Source    int           `json:"source"`
	Snapped   bool          `json:"snapped"`
}

// Snap moves p onto the nearest effective wall. Equal distances go to the
// wall whose outline wall starts at p, so a door sitting on a corner keeps
// to the wall leaving it. Without effective walls p stays put and takes the
// direction of the nearest outline wall.
func Snap(p geo.Point, effective []Wall, outline []geo.Segment) Placement {
	if len(effective) == 0 {
		return placeOnOutline(p, outline)
	}

	best := -1
	bestDist := math.Inf(1)
	var bestPoint geo.Point
	for i, w := range effective {
		q := w.ClosestPoint(p)
		d := p.Distance(q)
		switch {
		case d < bestDist-geo.Eps:
		case d <= bestDist+geo.Eps && startsAt(outline, w.Source, p) && !startsAt(outline, effective[best].Source, p):
		default:
			continue
		}
		best, bestDist, bestPoint = i, d, q
	}

	w := effective[best]
	return Placement{
		Point:     bestPoint,
		Direction: outline[w.Source].Direction(),
		Wall:      w.Segment,
		Source:    w.Source,
		Snapped:   true,
	}
}

func placeOnOutline(p geo.Point, outline []geo.Segment) Placement {
	pl := Placement{Point: p, Direction: geo.DirectionNone, Source: -1}
	bestDist := math.Inf(1)
	for i, w := range outline {
		if d := w.DistanceTo(p); d < bestDist {
			bestDist = d
			pl.Direction = w.Direction()
			pl.Wall = w
			pl.Source = i
		}
	}
	return pl
}

func startsAt(outline []geo.Segment, i int, p geo.Point) bool {
	return i >= 0 && i < len(outline) && outline[i].A.Equal(p)
}
