package scene2d

import (
	"fmt"
	"time"

	"github.com/ChicagoDave/campusgrid/pkg/campus"
	"github.com/ChicagoDave/campusgrid/pkg/engine"
	"github.com/ChicagoDave/campusgrid/pkg/geo"
)

// Corridor types.
const (
	CorridorSpine  = "spine"
	CorridorBranch = "branch"
	CorridorDoor   = "door"
)

// Assemble2D converts the world's records into a 2D scene. Records are
// ordered by id; every coordinate stays in grid units.
func Assemble2D(w *engine.World) *Scene2D {
	s := w.Settings()
	records := w.Records()

	sc := &Scene2D{
		Metadata: Metadata{
			GridSize:      s.GridSize,
			YAxisDown:     s.YDown(),
			BuildingCount: len(records),
			GeneratedAt:   time.Now().UTC().Format(time.RFC3339),
		},
		Records: make([]Record2D, 0, len(records)),
	}
	for _, r := range records {
		r2 := assembleRecord(r)
		if r.Merged() {
			sc.Metadata.MergedCount++
		}
		sc.Metadata.DoorCount += len(r2.Doors)
		sc.Metadata.CorridorCount += len(r2.Corridors)
		sc.Records = append(sc.Records, r2)
	}
	return sc
}

func assembleRecord(r *engine.Record) Record2D {
	cells := r.Cells()
	out := Record2D{
		ID:           int(r.ID),
		BuildingID:   r.Building.ID,
		Cells:        make([][2]int, 0, len(cells)),
		Outline:      pointsToCoords(r.OutlinePath),
		BoundingRect: pointsToCoords(r.BoundingRect[:]),
		NormalOffset: coord(r.NormalOffset),
		Open:         r.Open,
	}
	for _, c := range cells {
		out.Cells = append(out.Cells, [2]int{c.X, c.Y})
	}

	out.EffectiveWalls = make([]Wall2D, 0, len(r.EffectiveWalls))
	for _, e := range r.EffectiveWalls {
		out.EffectiveWalls = append(out.EffectiveWalls, Wall2D{
			Start:  coord(e.A),
			End:    coord(e.B),
			Source: e.Source,
		})
	}

	out.Doors = make([]Door2D, 0, len(r.Building.Doors))
	for _, d := range r.Building.Doors {
		d2 := Door2D{
			ID:         d.ID,
			Position:   coord(d.Point()),
			Accessible: d.Accessible,
		}
		if st, ok := r.DoorState[d.ID]; ok {
			d2.WallDirection = string(st.WallDirection)
			d2.Orientation = string(st.Orientation)
			d2.CorridorPath = pointsToCoords(st.CorridorPath)
		}
		out.Doors = append(out.Doors, d2)
	}

	ids := r.SubCells.IDs()
	out.Centers = make([]Center2D, 0, len(ids))
	for _, id := range ids {
		sub := r.SubCells[id]
		out.Centers = append(out.Centers, Center2D{
			Cell:     [2]int{sub.Cell.X, sub.Cell.Y},
			Position: coord(sub.Center.Point),
			Method:   string(sub.Center.Method),
		})
	}

	out.Corridors = assembleCorridors(r)
	out.Peak = assemblePeak(r.Building.Congestion)
	return out
}

func assembleCorridors(r *engine.Record) []Corridor2D {
	result := make([]Corridor2D, 0, len(r.Network.Spine)+len(r.Network.Corridors)+len(r.DoorState))
	for i, s := range r.Network.Spine {
		result = append(result, Corridor2D{
			ID:     fmt.Sprintf("r%d-spine-%d", r.ID, i),
			Points: pointsToCoords([]geo.Point{s.A, s.B}),
			Type:   CorridorSpine,
		})
	}
	for i, c := range r.Network.Corridors {
		result = append(result, Corridor2D{
			ID:     fmt.Sprintf("r%d-branch-%d", r.ID, i),
			Points: pointsToCoords(c),
			Type:   CorridorBranch,
		})
	}
	for _, id := range r.DoorIDs() {
		st, ok := r.DoorState[id]
		if !ok || len(st.CorridorPath) == 0 {
			continue
		}
		result = append(result, Corridor2D{
			ID:     fmt.Sprintf("r%d-door-%d", r.ID, id),
			Points: pointsToCoords(st.CorridorPath),
			Type:   CorridorDoor,
		})
	}
	return result
}

func assemblePeak(samples []campus.CongestionSample) *Peak2D {
	peak, ok := campus.PeakWindow(samples)
	if !ok {
		return nil
	}
	return &Peak2D{Timestep: peak.Timestep, Avg: peak.Avg, Max: peak.Max}
}

func coord(p geo.Point) [2]float64 {
	return [2]float64{p.X, p.Y}
}

// pointsToCoords converts a []geo.Point to a [][2]float64 coordinate list.
func pointsToCoords(pts []geo.Point) [][2]float64 {
	coords := make([][2]float64, len(pts))
	for i, pt := range pts {
		coords[i] = coord(pt)
	}
	return coords
}
