package engine

import (
	"fmt"

	"github.com/ChicagoDave/campusgrid/pkg/campus"
	"github.com/ChicagoDave/campusgrid/pkg/outline"
)

// MergeBuildings folds record b into record a where cellA (owned by a)
// touches cellB (owned by b). The outlines are spliced, b's doors are
// renumbered after a's, b's cells join a's footprint and b is destroyed.
// Invalid requests are rejected before anything changes.
func (w *World) MergeBuildings(a, b RecordID, cellA, cellB campus.Cell) (*Record, error) {
	ra, rb, err := w.checkMerge(a, b, cellA, cellB)
	if err != nil {
		return nil, err
	}

	path, err := outline.Merge(ra.OutlinePath, rb.OutlinePath, cellA, cellB, w.settings.MergeGapRatio)
	if err != nil {
		return nil, fmt.Errorf("merge %d into %d: %w", b, a, err)
	}

	next := ra.nextDoorID()
	if ra.DoorState == nil {
		ra.DoorState = make(map[int]*DoorState)
	}
	for _, d := range rb.Building.Doors {
		old := d.ID
		d.ID = next
		next++
		ra.Building.Doors = append(ra.Building.Doors, d)
		if st, ok := rb.DoorState[old]; ok {
			ra.DoorState[d.ID] = st
		}
	}
	if len(ra.Building.Congestion) == 0 {
		ra.Building.Congestion = rb.Building.Congestion
	}
	moved := rb.Cells()
	ra.Building.Merged = append(ra.Building.Merged, moved...)
	ra.OutlinePath = path

	w.claim(ra.ID, moved)
	delete(w.records, rb.ID)
	w.recompute(ra)
	return ra, nil
}

func (w *World) checkMerge(a, b RecordID, cellA, cellB campus.Cell) (*Record, *Record, error) {
	if a == b {
		return nil, nil, fmt.Errorf("merge %d into %d: %w", b, a, ErrSelfMerge)
	}
	for _, c := range []campus.Cell{cellA, cellB} {
		if !w.inGrid(c) {
			return nil, nil, fmt.Errorf("merge cell (%d, %d): %w", c.X, c.Y, ErrOutOfBounds)
		}
		if w.Owner(c) == 0 {
			return nil, nil, fmt.Errorf("merge cell (%d, %d): %w", c.X, c.Y, ErrEmptyCell)
		}
	}
	ra, err := w.Record(a)
	if err != nil {
		return nil, nil, err
	}
	rb, err := w.Record(b)
	if err != nil {
		return nil, nil, err
	}
	if w.Owner(cellA) != a {
		return nil, nil, fmt.Errorf("cell (%d, %d) of record %d: %w", cellA.X, cellA.Y, a, ErrCellNotOwned)
	}
	if w.Owner(cellB) != b {
		return nil, nil, fmt.Errorf("cell (%d, %d) of record %d: %w", cellB.X, cellB.Y, b, ErrCellNotOwned)
	}
	if !cellA.Touches(cellB) {
		return nil, nil, fmt.Errorf("cells (%d, %d) and (%d, %d): %w", cellA.X, cellA.Y, cellB.X, cellB.Y, ErrNotAdjacent)
	}
	return ra, rb, nil
}

