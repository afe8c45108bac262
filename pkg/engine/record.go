package engine

import (
	"time"

	"github.com/ChicagoDave/campusgrid/pkg/campus"
	"github.com/ChicagoDave/campusgrid/pkg/corridor"
	"github.com/ChicagoDave/campusgrid/pkg/geo"
	"github.com/ChicagoDave/campusgrid/pkg/topology"
	"github.com/ChicagoDave/campusgrid/pkg/validation"
	"github.com/ChicagoDave/campusgrid/pkg/walls"
)

// RecordID identifies a building record. Zero marks an empty grid cell.
type RecordID int

// DoorState is the derived placement of one door.
type DoorState struct {
	WallDirection geo.Direction     `json:"wall_direction"`
	AttachedWall  geo.Segment       `json:"attached_wall"`
	Orientation   walls.Orientation `json:"orientation"`
	CorridorPath  []geo.Point       `json:"corridor_path"`
	LastMovedAt   time.Time         `json:"last_moved_at"`
}

// Record is the working geometry of one building, which may span several
// merged cells. Every cell of the footprint maps to the same record.
type Record struct {
	ID       RecordID        `json:"id"`
	Building campus.Building `json:"building"`

	OutlinePath    []geo.Point   `json:"outline_path"`
	OutlineWalls   []geo.Segment `json:"outline_walls"`
	EffectiveWalls []walls.Wall  `json:"effective_walls"`

	DoorState map[int]*DoorState `json:"door_state"`
	SubCells  topology.Topology  `json:"sub_cell_topology"`
	SplitPath []geo.Point        `json:"split_path"`
	Network   corridor.Network   `json:"network"`

	BoundingRect   [4]geo.Point `json:"bounding_rect"`
	NormalOffset   geo.Point    `json:"normal_offset"`
	Open           bool         `json:"open"`
	ConnectedCells []geo.Point  `json:"connected_cells"`

	Report *validation.Report `json:"report"`
}

// Merged reports whether the record spans more than one cell. A merged
// record keeps its outline across door edits.
func (r *Record) Merged() bool {
	return len(r.Building.Merged) > 0
}

// Cells returns the footprint, anchor first.
func (r *Record) Cells() []campus.Cell {
	return r.Building.Cells()
}

// Door returns the door with the given id.
func (r *Record) Door(id int) (*campus.Door, bool) {
	for i := range r.Building.Doors {
		if r.Building.Doors[i].ID == id {
			return &r.Building.Doors[i], true
		}
	}
	return nil, false
}

// DoorIDs returns the door ids in perimeter order.
func (r *Record) DoorIDs() []int {
	ids := make([]int, 0, len(r.Building.Doors))
	for _, d := range r.Building.Doors {
		ids = append(ids, d.ID)
	}
	return ids
}

func (r *Record) nextDoorID() int {
	next := 0
	for _, d := range r.Building.Doors {
		if d.ID >= next {
			next = d.ID + 1
		}
	}
	return next
}

// Corridors returns every corridor polyline of the record: spine paths, dead
// ends and door paths.
func (r *Record) Corridors() [][]geo.Point {
	out := make([][]geo.Point, 0, len(r.Network.Corridors)+len(r.Network.Spine)+len(r.DoorState))
	out = append(out, r.Network.Corridors...)
	for _, s := range r.Network.Spine {
		out = append(out, []geo.Point{s.A, s.B})
	}
	for _, id := range r.DoorIDs() {
		if st, ok := r.DoorState[id]; ok && len(st.CorridorPath) > 0 {
			out = append(out, st.CorridorPath)
		}
	}
	return out
}
