package engine

import (
	"fmt"

	"github.com/ChicagoDave/campusgrid/pkg/campus"
	"github.com/ChicagoDave/campusgrid/pkg/validation"
)

// Load replaces the world's contents with buildings. The input is validated
// first and nothing changes when the report holds errors. A building with
// merged cells is assembled the way an editor would build it: one default
// square per cell, each merged onto the first placed cell it touches, after
// which the input doors are restored and snapped onto the combined outline.
func (w *World) Load(buildings []campus.Building) (*validation.Report, error) {
	report := validation.ValidateBuildings(buildings, w.settings.GridSize)
	if !report.Valid {
		return report, fmt.Errorf("%w: %s", ErrInvalidInput, report.Summary)
	}

	w.grid = make([]RecordID, w.settings.Cells())
	w.records = make(map[RecordID]*Record)
	w.nextID = 1

	for _, b := range buildings {
		b.Doors = append([]campus.Door(nil), b.Doors...)
		b.Merged = append([]campus.Cell(nil), b.Merged...)
		if len(b.Merged) == 0 {
			w.insert(b)
			continue
		}
		r := w.assemble(b, report)
		report.Merge(r.Report)
	}
	return report, nil
}

func (w *World) assemble(b campus.Building, report *validation.Report) *Record {
	inset := w.settings.DefaultDoorInset
	acc := w.insert(campus.Building{ID: b.ID, Anchor: b.Anchor, Doors: defaultDoors(b.Anchor, inset)})
	done := []campus.Cell{b.Anchor}

	pending := make([]int, len(b.Merged))
	for i := range pending {
		pending[i] = i
	}
	for len(pending) > 0 {
		i, touch, ok := nextTouching(b.Merged, pending, done)
		if !ok {
			break
		}
		pending = remove(pending, i)
		c := b.Merged[i]
		part := w.insert(campus.Building{ID: b.ID, Anchor: c, Doors: defaultDoors(c, inset)})
		if _, err := w.MergeBuildings(acc.ID, part.ID, touch, c); err != nil {
			w.logf("building %d: merging cell (%d, %d): %v", b.ID, c.X, c.Y, err)
			report.AddWarning(validation.Result{
				Level:       validation.LevelGeometry,
				Message:     "merged cell could not be joined; skipped",
				Path:        fmt.Sprintf("merged[%d]", i),
				BuildingID:  b.ID,
				ActualValue: err.Error(),
			})
			_ = w.DeleteBuilding(part.ID)
			continue
		}
		done = append(done, c)
	}
	for _, i := range pending {
		report.AddWarning(validation.Result{
			Level:      validation.LevelGeometry,
			Message:    "merged cell does not touch the footprint; skipped",
			Path:       fmt.Sprintf("merged[%d]", i),
			BuildingID: b.ID,
		})
	}

	acc.Building.Doors = b.Doors
	acc.Building.Congestion = b.Congestion
	acc.DoorState = nil
	w.recompute(acc)
	return acc
}

// nextTouching returns the first pending cell, in input order, that shares
// an edge with a placed cell, along with that placed cell.
func nextTouching(cells []campus.Cell, pending []int, done []campus.Cell) (int, campus.Cell, bool) {
	for _, i := range pending {
		for _, d := range done {
			if cells[i].Touches(d) {
				return i, d, true
			}
		}
	}
	return 0, campus.Cell{}, false
}

func remove(idx []int, v int) []int {
	for k, x := range idx {
		if x == v {
			return append(idx[:k], idx[k+1:]...)
		}
	}
	return idx
}
