package engine

import (
	"fmt"

	"github.com/ChicagoDave/campusgrid/pkg/corridor"
	"github.com/ChicagoDave/campusgrid/pkg/geo"
	"github.com/ChicagoDave/campusgrid/pkg/outline"
	"github.com/ChicagoDave/campusgrid/pkg/topology"
	"github.com/ChicagoDave/campusgrid/pkg/validation"
	"github.com/ChicagoDave/campusgrid/pkg/walls"
)

// recompute runs the derivation pipeline on one record: outline (single
// cell records only), effective walls, door snap and orientation, bounding
// rect, sub-cell topology and corridors. Geometry problems are logged and
// added to the record report; they never stop the pipeline.
func (w *World) recompute(r *Record) {
	s := w.settings
	r.Report = validation.NewReport()
	outline.SortDoors(r.Building.Doors)

	if !r.Merged() {
		path, moved := outline.Reconstruct(r.Building.Doors, r.Building.Anchor.Center(), s.YDown())
		for _, id := range moved {
			w.logf("record %d: deep door %d clamped to its neighbours", r.ID, id)
			r.Report.AddInfo(validation.Result{
				Level:      validation.LevelGeometry,
				Message:    "deep door clamped to its neighbours",
				Path:       fmt.Sprintf("doors[%d]", id),
				BuildingID: r.Building.ID,
			})
		}
		r.OutlinePath = path
	}
	w.checkOutline(r)

	r.OutlineWalls = geo.Walls(r.OutlinePath)
	r.EffectiveWalls = walls.Effective(r.OutlineWalls, walls.Dims{
		DoorLength:     s.DoorLength,
		BuildingStroke: s.BuildingStroke,
		DoorStroke:     s.DoorStroke,
	})
	if len(r.EffectiveWalls) == 0 {
		w.logf("record %d: no effective walls, doors left in place", r.ID)
		r.Report.AddWarning(validation.Result{
			Level:      validation.LevelGeometry,
			Message:    "no wall is long enough for a door; doors left in place",
			Path:       "effective_walls",
			BuildingID: r.Building.ID,
		})
	}

	w.placeDoors(r)

	rect := geo.NewPolygon(r.OutlinePath...).Rect()
	r.BoundingRect = rect
	r.NormalOffset = rect[0]

	cells := r.Cells()
	r.ConnectedCells = make([]geo.Point, 0, len(cells))
	for _, c := range cells {
		r.ConnectedCells = append(r.ConnectedCells, geo.Pt(float64(c.X), float64(c.Y)))
	}
	r.SubCells, r.SplitPath = topology.Build(r.OutlinePath, cells, s.GridSize, s.PolePrecision)
	for _, id := range r.SubCells.IDs() {
		c := r.SubCells[id].Center
		if c.Method != topology.MethodFallback {
			continue
		}
		w.logf("record %d: center of cell %d fell back to vertex mean: %v", r.ID, id, c.Err)
		r.Report.AddWarning(validation.Result{
			Level:       validation.LevelGeometry,
			Message:     "pole of inaccessibility failed; using the vertex mean",
			Path:        fmt.Sprintf("sub_cell_topology[%d].center", id),
			BuildingID:  r.Building.ID,
			ActualValue: errString(c.Err),
		})
	}

	r.Network = corridor.Build(r.SubCells, r.OutlineWalls, s.GridSize, s.YDown())
	for _, d := range r.Building.Doors {
		st := r.DoorState[d.ID]
		sub := r.SubCells.At(d.Point())
		center := r.Building.Anchor.Center()
		if sub != nil {
			center = sub.Center.Point
		}
		st.CorridorPath = corridor.DoorPath(d.Point(), st.WallDirection, center, r.Network.Spine, s.YDown())
	}

	r.Open = false
	for _, d := range r.Building.Doors {
		if d.Accessible {
			r.Open = true
			break
		}
	}
}

// placeDoors snaps every door onto an effective wall and orients it. Door
// state survives across runs so move timestamps are kept.
func (w *World) placeDoors(r *Record) {
	s := w.settings
	if r.DoorState == nil {
		r.DoorState = make(map[int]*DoorState)
	}
	live := make(map[int]bool, len(r.Building.Doors))
	for i := range r.Building.Doors {
		d := &r.Building.Doors[i]
		live[d.ID] = true
		pl := walls.Snap(d.Point(), r.EffectiveWalls, r.OutlineWalls)
		d.X, d.Y = pl.Point.X, pl.Point.Y

		st, ok := r.DoorState[d.ID]
		if !ok {
			st = &DoorState{}
			r.DoorState[d.ID] = st
		}
		st.WallDirection = pl.Direction
		st.AttachedWall = pl.Wall
		st.Orientation = walls.Orient(pl.Point, pl.Direction, r.OutlineWalls, s.GridSize, s.ProbeOffset, s.YDown())
	}
	for id := range r.DoorState {
		if !live[id] {
			delete(r.DoorState, id)
		}
	}
}

func (w *World) checkOutline(r *Record) {
	if len(r.OutlinePath) < 3 {
		w.logf("record %d: outline has %d points", r.ID, len(r.OutlinePath))
		r.Report.AddWarning(validation.Result{
			Level:       validation.LevelGeometry,
			Message:     "outline is degenerate",
			Path:        "outline_path",
			BuildingID:  r.Building.ID,
			ActualValue: len(r.OutlinePath),
			Expected:    ">= 3 points",
		})
		return
	}
	if !geo.NewPolygon(r.OutlinePath...).IsSimple() {
		w.logf("record %d: outline intersects itself", r.ID)
		r.Report.AddWarning(validation.Result{
			Level:      validation.LevelGeometry,
			Message:    "outline intersects itself",
			Path:       "outline_path",
			BuildingID: r.Building.ID,
		})
	}
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
