package engine

import (
	"fmt"

	"github.com/ChicagoDave/campusgrid/pkg/campus"
	"github.com/ChicagoDave/campusgrid/pkg/geo"
)

// defaultDoors returns the four doors of a new building: right, top, left
// and bottom of the cell center, in perimeter order.
func defaultDoors(c campus.Cell, inset float64) []campus.Door {
	ctr := c.Center()
	return []campus.Door{
		{ID: 0, X: ctr.X + inset, Y: ctr.Y, Accessible: true},
		{ID: 1, X: ctr.X, Y: ctr.Y - inset, Accessible: true},
		{ID: 2, X: ctr.X - inset, Y: ctr.Y, Accessible: true},
		{ID: 3, X: ctr.X, Y: ctr.Y + inset, Accessible: true},
	}
}

// AddBuilding places a new single-cell building with four default doors.
func (w *World) AddBuilding(c campus.Cell) (*Record, error) {
	if !w.inGrid(c) {
		return nil, fmt.Errorf("add building at (%d, %d): %w", c.X, c.Y, ErrOutOfBounds)
	}
	if w.Owner(c) != 0 {
		return nil, fmt.Errorf("add building at (%d, %d): %w", c.X, c.Y, ErrCellOccupied)
	}
	b := campus.Building{
		ID:     w.nextBuildingID(),
		Anchor: c,
		Doors:  defaultDoors(c, w.settings.DefaultDoorInset),
	}
	return w.insert(b), nil
}

// insert creates a record for b, claims its cells and runs the pipeline.
func (w *World) insert(b campus.Building) *Record {
	r := &Record{ID: w.nextID, Building: b}
	w.nextID++
	w.records[r.ID] = r
	w.claim(r.ID, r.Cells())
	w.recompute(r)
	return r
}

// DeleteBuilding removes a record and empties every cell of its footprint.
func (w *World) DeleteBuilding(id RecordID) error {
	r, err := w.Record(id)
	if err != nil {
		return err
	}
	w.claim(0, r.Cells())
	delete(w.records, id)
	return nil
}

// AddDoor adds a door to a record. A single-cell record grows it between
// its last and first doors, on the corner that joins them; a merged record
// gets it in the middle of its longest effective wall.
func (w *World) AddDoor(id RecordID) (*Record, error) {
	r, err := w.Record(id)
	if err != nil {
		return nil, err
	}
	door := campus.Door{ID: r.nextDoorID(), Accessible: true}
	p := w.newDoorPoint(r)
	door.X, door.Y = p.X, p.Y
	r.Building.Doors = append(r.Building.Doors, door)
	w.recompute(r)
	return r, nil
}

func (w *World) newDoorPoint(r *Record) geo.Point {
	doors := r.Building.Doors
	if !r.Merged() && len(doors) > 0 {
		first, last := doors[0].Point(), doors[len(doors)-1].Point()
		corner := geo.Corner(last, first, true, w.settings.YDown())
		if corner.Equal(first) {
			return geo.MidPoint(last, first)
		}
		return geo.MidPoint(corner, first)
	}
	var best geo.Segment
	bestLen := -1.0
	for _, e := range r.EffectiveWalls {
		if l := e.Length(); l > bestLen {
			best, bestLen = e.Segment, l
		}
	}
	if bestLen < 0 {
		for _, o := range r.OutlineWalls {
			if l := o.Length(); l > bestLen {
				best, bestLen = o, l
			}
		}
	}
	if bestLen < 0 {
		return r.Building.Anchor.Center()
	}
	return best.Midpoint()
}

// DeleteDoor removes a door. The last door of a building cannot go.
func (w *World) DeleteDoor(id RecordID, doorID int) (*Record, error) {
	r, err := w.Record(id)
	if err != nil {
		return nil, err
	}
	idx := -1
	for i, d := range r.Building.Doors {
		if d.ID == doorID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("record %d door %d: %w", id, doorID, ErrUnknownDoor)
	}
	if len(r.Building.Doors) == 1 {
		return nil, fmt.Errorf("record %d door %d: %w", id, doorID, ErrLastDoor)
	}
	r.Building.Doors = append(r.Building.Doors[:idx], r.Building.Doors[idx+1:]...)
	w.recompute(r)
	return r, nil
}

// MoveDoor drags a door to p and re-runs the pipeline, which snaps it back
// onto the nearest effective wall.
func (w *World) MoveDoor(id RecordID, doorID int, p geo.Point) (*Record, error) {
	r, err := w.Record(id)
	if err != nil {
		return nil, err
	}
	d, ok := r.Door(doorID)
	if !ok {
		return nil, fmt.Errorf("record %d door %d: %w", id, doorID, ErrUnknownDoor)
	}
	d.X, d.Y = p.X, p.Y
	if st, ok := r.DoorState[doorID]; ok {
		st.LastMovedAt = w.now()
	}
	w.recompute(r)
	return r, nil
}

// SetCongestion replaces the congestion samples of a record.
func (w *World) SetCongestion(id RecordID, samples []campus.CongestionSample) (*Record, error) {
	r, err := w.Record(id)
	if err != nil {
		return nil, err
	}
	r.Building.Congestion = append([]campus.CongestionSample(nil), samples...)
	return r, nil
}
