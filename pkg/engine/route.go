package engine

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ChicagoDave/campusgrid/pkg/campus"
	"github.com/ChicagoDave/campusgrid/pkg/geo"
	"github.com/ChicagoDave/campusgrid/pkg/routing"
	"github.com/ChicagoDave/campusgrid/pkg/walls"
)

// DoorRef names one door of one record.
type DoorRef struct {
	Record RecordID `json:"record"`
	Door   int      `json:"door"`
}

// ParseDoorRef reads a "record:door" pair.
func ParseDoorRef(s string) (DoorRef, error) {
	rec, door, ok := strings.Cut(s, ":")
	if !ok {
		return DoorRef{}, fmt.Errorf("door ref %q: want record:door", s)
	}
	r, err := strconv.Atoi(strings.TrimSpace(rec))
	if err != nil {
		return DoorRef{}, fmt.Errorf("door ref %q: %w", s, err)
	}
	d, err := strconv.Atoi(strings.TrimSpace(door))
	if err != nil {
		return DoorRef{}, fmt.Errorf("door ref %q: %w", s, err)
	}
	return DoorRef{Record: RecordID(r), Door: d}, nil
}

// RouteResult is a drawable route between two doors. When Reached is false
// Points stop at the explored wall closest to the goal and callers may
// choose not to draw it.
type RouteResult struct {
	Points  []geo.Point       `json:"points"`
	Walls   []routing.WallRef `json:"walls,omitempty"`
	Reached bool              `json:"reached"`
	Indoor  bool              `json:"indoor"`
}

// Route connects two doors. Doors of one record are joined along its
// corridors; doors of different records are joined by a wall search across
// the open grid that starts and ends on the walls the doors face.
func (w *World) Route(from, to DoorRef) (RouteResult, error) {
	ra, da, err := w.door(from)
	if err != nil {
		return RouteResult{}, err
	}
	rb, db, err := w.door(to)
	if err != nil {
		return RouteResult{}, err
	}

	if ra.ID == rb.ID {
		pts, ok := routing.IndoorRoute(ra.Corridors(), da.Point(), db.Point())
		return RouteResult{Points: pts, Reached: ok, Indoor: true}, nil
	}

	g := w.routingGrid()
	start := w.doorWall(ra, da)
	goal := w.doorWall(rb, db)
	route := routing.FindWallPath(g, start, goal)

	pts := []geo.Point{da.Point()}
	pts = append(pts, routing.Points(g, route, w.settings.YDown())...)
	if route.Reached {
		pts = append(pts, db.Point())
	} else {
		w.logf("route %d:%d -> %d:%d did not reach the goal wall %s", from.Record, from.Door, to.Record, to.Door, goal)
	}
	return RouteResult{
		Points:  routing.Join(pts, w.settings.YDown()),
		Walls:   route.Walls,
		Reached: route.Reached,
	}, nil
}

func (w *World) door(ref DoorRef) (*Record, *campus.Door, error) {
	r, err := w.Record(ref.Record)
	if err != nil {
		return nil, nil, err
	}
	d, ok := r.Door(ref.Door)
	if !ok {
		return nil, nil, fmt.Errorf("record %d door %d: %w", ref.Record, ref.Door, ErrUnknownDoor)
	}
	return r, d, nil
}

// routingGrid blocks every cell side shared by two cells of one merged
// building so the search cannot cut through its interior.
func (w *World) routingGrid() *routing.Grid {
	n := w.settings.GridSize
	g := routing.NewGrid(n)
	g.Inset = w.settings.RouteInset
	for _, r := range w.Records() {
		if !r.Merged() {
			continue
		}
		cells := r.Cells()
		for i, a := range cells {
			for _, b := range cells[i+1:] {
				if side, ok := sideToward(a, b); ok {
					g.Block(routing.WallRef{Cell: a.ID(n), Side: side})
				}
			}
		}
	}
	return g
}

// doorWall returns the grid wall a door leaves through: the side its
// orientation points to, of the footprint cell it sits in.
func (w *World) doorWall(r *Record, d *campus.Door) routing.WallRef {
	n := w.settings.GridSize
	p := d.Point()
	cell := r.Building.Anchor
	if sub := r.SubCells.At(p); sub != nil {
		cell = sub.Cell
	}
	side, ok := sideOf(r.DoorState[d.ID], w.settings.YDown())
	if !ok {
		side = nearestSide(p, cell)
	}
	return routing.WallRef{Cell: cell.ID(n), Side: side}
}

func sideOf(st *DoorState, yDown bool) (routing.Side, bool) {
	if st == nil {
		return 0, false
	}
	switch st.Orientation {
	case walls.Left:
		return routing.SideLeft, true
	case walls.Right:
		return routing.SideRight, true
	case walls.Up:
		if yDown {
			return routing.SideUp, true
		}
		return routing.SideDown, true
	case walls.Down:
		if yDown {
			return routing.SideDown, true
		}
		return routing.SideUp, true
	}
	return 0, false
}

// nearestSide picks the cell side closest to p.
func nearestSide(p geo.Point, c campus.Cell) routing.Side {
	x, y := float64(c.X), float64(c.Y)
	dists := [4]float64{
		routing.SideUp:    math.Abs(p.Y - y),
		routing.SideDown:  math.Abs(y + 1 - p.Y),
		routing.SideLeft:  math.Abs(p.X - x),
		routing.SideRight: math.Abs(x + 1 - p.X),
	}
	best := routing.SideUp
	for s := routing.SideDown; s <= routing.SideRight; s++ {
		if dists[s] < dists[best] {
			best = s
		}
	}
	return best
}

func sideToward(a, b campus.Cell) (routing.Side, bool) {
	switch {
	case b.X == a.X+1 && b.Y == a.Y:
		return routing.SideRight, true
	case b.X == a.X-1 && b.Y == a.Y:
		return routing.SideLeft, true
	case b.Y == a.Y+1 && b.X == a.X:
		return routing.SideDown, true
	case b.Y == a.Y-1 && b.X == a.X:
		return routing.SideUp, true
	}
	return 0, false
}
